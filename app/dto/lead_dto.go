package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateLeadRequest represents the request payload for creating a lead.
// It has no owner field; the owner is always taken from the session.
type CreateLeadRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=255" example:"Grace"`
	LastName  string  `json:"last_name" validate:"required,max=255" example:"Hopper"`
	Email     string  `json:"email" validate:"required,email,max=255" example:"grace@navy.mil"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=50" example:"+1 555 0100"`
	Company   *string `json:"company,omitempty" validate:"omitempty,max=255" example:"US Navy"`
	City      *string `json:"city,omitempty" validate:"omitempty,max=120" example:"Arlington"`
	State     *string `json:"state,omitempty" validate:"omitempty,max=120" example:"VA"`

	Source string `json:"source,omitempty" validate:"omitempty,oneof=website facebook_ads google_ads referral events other" example:"referral"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified lost won" example:"new"`

	Score          *Number    `json:"score,omitempty" swaggertype:"number" example:"72.5"`
	LeadValue      *Number    `json:"lead_value,omitempty" swaggertype:"number" example:"15000"`
	IsQualified    *bool      `json:"is_qualified,omitempty" example:"false"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty" example:"2024-01-15T10:30:00Z"`
}

// UpdateLeadRequest carries a partial lead update; nil fields are left untouched
type UpdateLeadRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=255"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=255"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company   *string `json:"company,omitempty" validate:"omitempty,max=255"`
	City      *string `json:"city,omitempty" validate:"omitempty,max=120"`
	State     *string `json:"state,omitempty" validate:"omitempty,max=120"`

	Source *string `json:"source,omitempty" validate:"omitempty,oneof=website facebook_ads google_ads referral events other"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified lost won"`

	Score          *Number    `json:"score,omitempty" swaggertype:"number"`
	LeadValue      *Number    `json:"lead_value,omitempty" swaggertype:"number"`
	IsQualified    *bool      `json:"is_qualified,omitempty"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
}

// Normalize trims the text fields so blank required values fail validation
func (r *CreateLeadRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Source = strings.TrimSpace(r.Source)
	r.Status = strings.TrimSpace(r.Status)
}

// Normalize trims the supplied text fields; a blank name or email stays set and fails validation
func (r *UpdateLeadRequest) Normalize() {
	trimPtr(r.FirstName)
	trimPtr(r.LastName)
	trimPtr(r.Email)
	trimPtr(r.Source)
	trimPtr(r.Status)
}

// ListLeadsRequest holds the raw listing query parameters. Empty strings mean "not given";
// IsQualified is a pointer because a present-but-empty value still filters (to false).
type ListLeadsRequest struct {
	Email   string
	Company string
	City    string

	Status string
	Source string

	Score       string
	ScoreGT     string
	ScoreLT     string
	LeadValue   string
	LeadValueGT string
	LeadValueLT string
	IsQualified *string

	CreatedBefore      string
	CreatedAfter       string
	LastActivityBefore string
	LastActivityAfter  string

	Page  string
	Limit string
}

// LeadDTO is the API representation of a lead
type LeadDTO struct {
	ID             uuid.UUID  `json:"id" example:"7d9f0c7e-3c1e-4b5e-9a57-8d1f2b6f0a11"`
	AccountID      uuid.UUID  `json:"account_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	FirstName      string     `json:"first_name" example:"Grace"`
	LastName       string     `json:"last_name" example:"Hopper"`
	Email          string     `json:"email" example:"grace@navy.mil"`
	Phone          *string    `json:"phone,omitempty"`
	Company        *string    `json:"company,omitempty"`
	City           *string    `json:"city,omitempty"`
	State          *string    `json:"state,omitempty"`
	Source         string     `json:"source" example:"website"`
	Status         string     `json:"status" example:"new"`
	Score          float64    `json:"score" example:"72.5"`
	LeadValue      float64    `json:"lead_value" example:"15000"`
	IsQualified    bool       `json:"is_qualified" example:"false"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ListLeadsResponse is one page of leads
type ListLeadsResponse struct {
	Data       []LeadDTO `json:"data"`
	Page       int       `json:"page" example:"1"`
	Limit      int       `json:"limit" example:"20"`
	Total      int64     `json:"total" example:"45"`
	TotalPages int       `json:"totalPages" example:"3"`
}

// LeadExport is a rendered spreadsheet of leads
type LeadExport struct {
	FileName    string
	ContentType string
	Content     []byte
	Rows        int
}
