package postgres

import (
	"encoding/json"

	"listing-service/internal/core/domain"
)

// propertyColumns is the select list shared by every listing read. The
// agent columns come from the LEFT JOIN on team_members and are all NULL
// when no agent is assigned.
const propertyColumns = `
	p.id, p.title, p.description, p.type, p.location, p.address, p.city, p.county,
	p.price, p.area, p.rooms, p.floor, p.year_built,
	p.video_url, p.thumbnail_url, p.badges, p.amenities,
	p.latitude, p.longitude,
	a.id, a.name, a.email, a.phone, a.image,
	p.created_at, p.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProperty reads one joined row into a domain entity.
func scanProperty(row rowScanner) (domain.Property, error) {
	var (
		p                     domain.Property
		badgesRaw             []byte
		amenitiesRaw          []byte
		latitude, longitude   *float64
		agentID, agentName    *string
		agentEmail            *string
		agentPhone, agentImg  *string
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Type, &p.Location, &p.Address, &p.City, &p.County,
		&p.Price, &p.Area, &p.Rooms, &p.Floor, &p.YearBuilt,
		&p.VideoURL, &p.ThumbnailURL, &badgesRaw, &amenitiesRaw,
		&latitude, &longitude,
		&agentID, &agentName, &agentEmail, &agentPhone, &agentImg,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Property{}, err
	}

	p.Badges = decodeStringList(badgesRaw)
	p.Amenities = decodeStringList(amenitiesRaw)

	if latitude != nil && longitude != nil {
		p.Coordinates = &domain.Coordinates{Latitude: *latitude, Longitude: *longitude}
	}

	p.Agent = assembleAgent(agentID, agentName, agentEmail, agentPhone, agentImg)
	if p.Agent != nil {
		p.AgentID = p.Agent.ID
	}

	return p, nil
}

// assembleAgent builds the nested agent projection from the nullable join
// columns. A NULL id means the join found no team member.
func assembleAgent(id, name, email, phone, image *string) *domain.Agent {
	if id == nil {
		return nil
	}
	return &domain.Agent{
		ID:    *id,
		Name:  strOrEmpty(name),
		Email: strOrEmpty(email),
		Phone: strOrEmpty(phone),
		Image: strOrEmpty(image),
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// decodeStringList parses a JSON-text column into a slice. Malformed or
// empty cells degrade to an empty list instead of failing the whole row.
func decodeStringList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return []string{}
	}
	return list
}

func encodeStringList(list []string) []byte {
	if list == nil {
		return []byte("[]")
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return []byte("[]")
	}
	return raw
}
