// Package contracts validates inbound write payloads against embedded
// JSON schemas before they reach the core.
package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

// Schema names, derived from the embedded file names.
const (
	PropertyCreateSchema = "property"
	PropertyPatchSchema  = "property-patch"
	TeamMemberSchema     = "team-member"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Register every schema as a resource first, so $ref between them
	// would resolve, then compile.
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		return compiler.AddResource(path, file)
	})
	if err != nil {
		log.Fatalf("error adding schema resources: %v", err)
	}

	err = fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			return fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		key := strings.TrimSuffix(strings.TrimPrefix(path, "schemas/"), ".json")
		compiledSchemas[key] = schema
		return nil
	})
	if err != nil {
		log.Fatalf("error compiling schemas: %v", err)
	}
}

// ValidatePayload checks the body against the named schema. The returned
// error carries the schema violation details and is safe to show to API
// clients.
func ValidatePayload(schemaName string, body []byte) error {
	schema, ok := compiledSchemas[schemaName]
	if !ok {
		return fmt.Errorf("schema '%s' not found", schemaName)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("request body is not valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload validation failed: %w", err)
	}
	return nil
}
