package domain

import "time"

// Property categories accepted by the listing filter. "all" (or an empty
// value) on the filter side means no type constraint.
const (
	TypeApartament = "apartament"
	TypeCasa       = "casa"
	TypeVila       = "vila"
	TypeTeren      = "teren"
	TypeComercial  = "comercial"
)

// Agent is the contact person attached to a listing. It is a read-time
// projection of a team member, not an owned sub-entity.
type Agent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Image string `json:"image,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Property is the central entity of the platform.
// Agent is nil when the listing has no assigned agent; the JSON field is
// omitted entirely in that case rather than rendered as null.
type Property struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         string       `json:"type"`
	Location     string       `json:"location"`
	Address      string       `json:"address,omitempty"`
	City         string       `json:"city,omitempty"`
	County       string       `json:"county,omitempty"`
	Price        float64      `json:"price"`
	Area         float64      `json:"area"`
	Rooms        int          `json:"rooms"`
	Floor        *int         `json:"floor,omitempty"`
	YearBuilt    *int         `json:"yearBuilt,omitempty"`
	VideoURL     string       `json:"videoUrl,omitempty"`
	ThumbnailURL string       `json:"thumbnailUrl,omitempty"`
	Badges       []string     `json:"badges"`
	Amenities    []string     `json:"amenities"`
	AgentID      string       `json:"agentId,omitempty"`
	Agent        *Agent       `json:"agent,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// PropertyPatch carries a partial update. Nil fields keep the stored value.
type PropertyPatch struct {
	Title        *string
	Description  *string
	Type         *string
	Location     *string
	Address      *string
	City         *string
	County       *string
	Price        *float64
	Area         *float64
	Rooms        *int
	Floor        *int
	YearBuilt    *int
	VideoURL     *string
	ThumbnailURL *string
	Badges       *[]string
	Amenities    *[]string
	AgentID      *string
	Coordinates  *Coordinates
}

// Apply merges the patch into p, replacing only the fields that are set.
func (patch PropertyPatch) Apply(p *Property) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.County != nil {
		p.County = *patch.County
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Area != nil {
		p.Area = *patch.Area
	}
	if patch.Rooms != nil {
		p.Rooms = *patch.Rooms
	}
	if patch.Floor != nil {
		p.Floor = patch.Floor
	}
	if patch.YearBuilt != nil {
		p.YearBuilt = patch.YearBuilt
	}
	if patch.VideoURL != nil {
		p.VideoURL = *patch.VideoURL
	}
	if patch.ThumbnailURL != nil {
		p.ThumbnailURL = *patch.ThumbnailURL
	}
	if patch.Badges != nil {
		p.Badges = *patch.Badges
	}
	if patch.Amenities != nil {
		p.Amenities = *patch.Amenities
	}
	if patch.AgentID != nil {
		p.AgentID = *patch.AgentID
	}
	if patch.Coordinates != nil {
		p.Coordinates = patch.Coordinates
	}
}
