package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead sources
const (
	LeadSourceWebsite     = "website"
	LeadSourceFacebookAds = "facebook_ads"
	LeadSourceGoogleAds   = "google_ads"
	LeadSourceReferral    = "referral"
	LeadSourceEvents      = "events"
	LeadSourceOther       = "other"
)

// Lead statuses
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusLost      = "lost"
	LeadStatusWon       = "won"
)

// LeadSources lists every accepted lead source in display order
var LeadSources = []string{
	LeadSourceWebsite,
	LeadSourceFacebookAds,
	LeadSourceGoogleAds,
	LeadSourceReferral,
	LeadSourceEvents,
	LeadSourceOther,
}

// LeadStatuses lists every accepted lead status in pipeline order
var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusLost,
	LeadStatusWon,
}

type Lead struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Owner, set from the authenticated identity only
	AccountID uuid.UUID `gorm:"type:uuid;not null;index:idx_leads_account_id" json:"account_id"`
	Account   *Account  `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	FirstName string  `gorm:"size:255;not null" json:"first_name"`
	LastName  string  `gorm:"size:255;not null" json:"last_name"`
	Email     string  `gorm:"size:255;not null;index:idx_leads_email" json:"email"`
	Phone     *string `gorm:"size:50" json:"phone,omitempty"`
	Company   *string `gorm:"size:255" json:"company,omitempty"`
	City      *string `gorm:"size:120" json:"city,omitempty"`
	State     *string `gorm:"size:120" json:"state,omitempty"`

	Source string `gorm:"size:20;not null;default:'website';index:idx_leads_source" json:"source"`
	Status string `gorm:"size:20;not null;default:'new';index:idx_leads_status" json:"status"`

	Score       float64 `gorm:"not null;default:0" json:"score"`
	LeadValue   float64 `gorm:"not null;default:0" json:"lead_value"`
	IsQualified bool    `gorm:"not null;default:false" json:"is_qualified"`

	LastActivityAt *time.Time `gorm:"index:idx_leads_last_activity_at" json:"last_activity_at,omitempty"`

	// Timestamps
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_leads_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (Lead) TableName() string {
	return "leads"
}

// BeforeCreate assigns a random ID when none was set
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// LeadFilter represents filter criteria for lead queries.
// String fields match case-insensitively as substrings; the *GreaterThan/*LessThan
// bounds are strict while the timestamp bounds are inclusive.
type LeadFilter struct {
	ID        *uuid.UUID
	AccountID *uuid.UUID

	Email   *string
	Company *string
	City    *string

	Status *string
	Source *string

	Score            *float64
	ScoreGreaterThan *float64
	ScoreLessThan    *float64

	LeadValue            *float64
	LeadValueGreaterThan *float64
	LeadValueLessThan    *float64

	IsQualified *bool

	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	LastActivityAfter  *time.Time
	LastActivityBefore *time.Time
}

// IsValidLeadSource reports whether s is a known lead source
func IsValidLeadSource(s string) bool {
	return slices.Contains(LeadSources, s)
}

// IsValidLeadStatus reports whether s is a known lead status
func IsValidLeadStatus(s string) bool {
	return slices.Contains(LeadStatuses, s)
}
