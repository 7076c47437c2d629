package contracts

import "testing"

func TestValidatePropertyCreate(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "minimal valid",
			body: `{"title":"Apartament 2 camere","type":"apartament","location":"Brăila","price":61000,"area":54}`,
		},
		{
			name: "full valid",
			body: `{"title":"Vilă","type":"vila","location":"Brăila","price":120000,"area":180,
				"rooms":5,"floor":1,"yearBuilt":2019,"badges":["Premium"],"amenities":["curte"],
				"agentId":"tm-1","coordinates":{"latitude":45.26,"longitude":27.95}}`,
		},
		{
			name:    "missing title",
			body:    `{"type":"apartament","location":"Brăila","price":61000,"area":54}`,
			wantErr: true,
		},
		{
			name:    "zero price",
			body:    `{"title":"X","type":"apartament","location":"Brăila","price":0,"area":54}`,
			wantErr: true,
		},
		{
			name:    "unknown type",
			body:    `{"title":"X","type":"penthouse","location":"Brăila","price":1,"area":1}`,
			wantErr: true,
		},
		{
			name:    "unknown field",
			body:    `{"title":"X","type":"casa","location":"Brăila","price":1,"area":1,"color":"red"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `{broken`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePayload(PropertyCreateSchema, []byte(tc.body))
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidatePropertyPatchHasNoRequiredFields(t *testing.T) {
	if err := ValidatePayload(PropertyPatchSchema, []byte(`{}`)); err != nil {
		t.Fatalf("empty patch must be valid: %v", err)
	}
	if err := ValidatePayload(PropertyPatchSchema, []byte(`{"price":75000}`)); err != nil {
		t.Fatalf("single-field patch must be valid: %v", err)
	}
	if err := ValidatePayload(PropertyPatchSchema, []byte(`{"price":-1}`)); err == nil {
		t.Fatal("negative price must fail the patch schema too")
	}
}

func TestValidateTeamMember(t *testing.T) {
	if err := ValidatePayload(TeamMemberSchema, []byte(`{"name":"Ana Popescu","role":"Agent imobiliar"}`)); err != nil {
		t.Fatalf("valid member rejected: %v", err)
	}
	if err := ValidatePayload(TeamMemberSchema, []byte(`{"name":"Ana Popescu"}`)); err == nil {
		t.Fatal("member without role must be rejected")
	}
	if err := ValidatePayload(TeamMemberSchema, []byte(`{"name":"Ana","role":"Agent","email":"not-an-email"}`)); err == nil {
		t.Fatal("malformed email must be rejected")
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	if err := ValidatePayload("no-such-schema", []byte(`{}`)); err == nil {
		t.Fatal("unknown schema name must error")
	}
}
