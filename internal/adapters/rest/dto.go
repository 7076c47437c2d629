package rest

import "listing-service/internal/core/domain"

// PropertyRequest is the create payload. It is validated against the
// embedded JSON Schema before decoding, so the fields here mirror the
// schema exactly.
type PropertyRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Type         string              `json:"type"`
	Location     string              `json:"location"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	County       string              `json:"county"`
	Price        float64             `json:"price"`
	Area         float64             `json:"area"`
	Rooms        int                 `json:"rooms"`
	Floor        *int                `json:"floor"`
	YearBuilt    *int                `json:"yearBuilt"`
	VideoURL     string              `json:"videoUrl"`
	ThumbnailURL string              `json:"thumbnailUrl"`
	Badges       []string            `json:"badges"`
	Amenities    []string            `json:"amenities"`
	AgentID      string              `json:"agentId"`
	Coordinates  *domain.Coordinates `json:"coordinates"`
}

func (req PropertyRequest) toDomain() domain.Property {
	return domain.Property{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Location:     req.Location,
		Address:      req.Address,
		City:         req.City,
		County:       req.County,
		Price:        req.Price,
		Area:         req.Area,
		Rooms:        req.Rooms,
		Floor:        req.Floor,
		YearBuilt:    req.YearBuilt,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Badges:       req.Badges,
		Amenities:    req.Amenities,
		AgentID:      req.AgentID,
		Coordinates:  req.Coordinates,
	}
}

// PropertyPatchRequest is the partial update payload. Absent fields stay
// nil and keep the stored values.
type PropertyPatchRequest struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Type         *string             `json:"type"`
	Location     *string             `json:"location"`
	Address      *string             `json:"address"`
	City         *string             `json:"city"`
	County       *string             `json:"county"`
	Price        *float64            `json:"price"`
	Area         *float64            `json:"area"`
	Rooms        *int                `json:"rooms"`
	Floor        *int                `json:"floor"`
	YearBuilt    *int                `json:"yearBuilt"`
	VideoURL     *string             `json:"videoUrl"`
	ThumbnailURL *string             `json:"thumbnailUrl"`
	Badges       *[]string           `json:"badges"`
	Amenities    *[]string           `json:"amenities"`
	AgentID      *string             `json:"agentId"`
	Coordinates  *domain.Coordinates `json:"coordinates"`
}

func (req PropertyPatchRequest) toDomain() domain.PropertyPatch {
	return domain.PropertyPatch{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Location:     req.Location,
		Address:      req.Address,
		City:         req.City,
		County:       req.County,
		Price:        req.Price,
		Area:         req.Area,
		Rooms:        req.Rooms,
		Floor:        req.Floor,
		YearBuilt:    req.YearBuilt,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Badges:       req.Badges,
		Amenities:    req.Amenities,
		AgentID:      req.AgentID,
		Coordinates:  req.Coordinates,
	}
}

// TeamMemberRequest covers both create and update of team members; on
// update the decoded fields are turned into a patch.
type TeamMemberRequest struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Image *string `json:"image"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TrackVisitRequest struct {
	Page    string `json:"page"`
	Country string `json:"country"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
