package testing

import (
	"fmt"
	"time"

	"github.com/amirphl/lead-desk/models"
	"github.com/amirphl/lead-desk/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plain-text password of every account created by the fixtures
const TestPassword = "TestPass123!"

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestAccount creates an account with a unique email and TestPassword
func (tf *TestFixtures) CreateTestAccount() (*models.Account, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        fmt.Sprintf("john.doe.%s@example.com", uuid.NewString()[:8]),
		PasswordHash: string(hashedPassword),
	}

	if err := tf.DB.DB.Create(account).Error; err != nil {
		return nil, fmt.Errorf("failed to create test account: %w", err)
	}
	return account, nil
}

// LeadOption customises a fixture lead before it is stored
type LeadOption func(*models.Lead)

func WithStatus(status string) LeadOption {
	return func(l *models.Lead) { l.Status = status }
}

func WithSource(source string) LeadOption {
	return func(l *models.Lead) { l.Source = source }
}

func WithScore(score float64) LeadOption {
	return func(l *models.Lead) { l.Score = score }
}

func WithCompany(company string) LeadOption {
	return func(l *models.Lead) { l.Company = utils.ToPtr(company) }
}

func WithCreatedAt(t time.Time) LeadOption {
	return func(l *models.Lead) { l.CreatedAt = t.UTC() }
}

// CreateTestLead stores a lead owned by accountID
func (tf *TestFixtures) CreateTestLead(accountID uuid.UUID, opts ...LeadOption) (*models.Lead, error) {
	lead := &models.Lead{
		AccountID: accountID,
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     fmt.Sprintf("grace.%s@example.com", uuid.NewString()[:8]),
		Source:    models.LeadSourceWebsite,
		Status:    models.LeadStatusNew,
	}
	for _, opt := range opts {
		opt(lead)
	}

	if err := tf.DB.DB.Create(lead).Error; err != nil {
		return nil, fmt.Errorf("failed to create test lead: %w", err)
	}
	return lead, nil
}
