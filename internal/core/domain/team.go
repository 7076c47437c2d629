package domain

import "time"

// TeamMember is an agency employee shown on the team page. Agents attached
// to listings are a projection of this entity.
type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TeamMemberPatch carries a partial team member update.
type TeamMemberPatch struct {
	Name  *string
	Role  *string
	Phone *string
	Email *string
	Image *string
}

func (patch TeamMemberPatch) Apply(m *TeamMember) {
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Role != nil {
		m.Role = *patch.Role
	}
	if patch.Phone != nil {
		m.Phone = *patch.Phone
	}
	if patch.Email != nil {
		m.Email = *patch.Email
	}
	if patch.Image != nil {
		m.Image = *patch.Image
	}
}
