package dto

import "github.com/hireline/applicant-tracking-api/internal/models"

type CreateMemberRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Bio        string `json:"bio"`
	Status     string `json:"status"`
	Department string `json:"department"`
}

type UpdateMemberRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Role       *string `json:"role"`
	Bio        *string `json:"bio"`
	Status     *string `json:"status"`
	Department *string `json:"department"`
}

// Apply merges the provided fields onto an existing member.
func (r *UpdateMemberRequest) Apply(m *models.Member) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	if r.Bio != nil {
		m.Bio = *r.Bio
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.Department != nil {
		m.Department = *r.Department
	}
}
