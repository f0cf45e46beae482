package businessflow

import (
	"github.com/amirphl/lead-desk/app/dto"
	"github.com/amirphl/lead-desk/models"
)

// ClientMetadata holds client information used when logging authentication events
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

func (cm *ClientMetadata) String() string {
	if cm == nil {
		return "ip=- ua=-"
	}
	return "ip=" + cm.IPAddress + " ua=" + cm.UserAgent + " request_id=" + cm.RequestID
}

// ToAccountDTO converts an account model to its public representation
func ToAccountDTO(account models.Account) dto.AccountDTO {
	return dto.AccountDTO{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ToLeadDTO converts a lead model to its API representation
func ToLeadDTO(lead models.Lead) dto.LeadDTO {
	return dto.LeadDTO{
		ID:             lead.ID,
		AccountID:      lead.AccountID,
		FirstName:      lead.FirstName,
		LastName:       lead.LastName,
		Email:          lead.Email,
		Phone:          lead.Phone,
		Company:        lead.Company,
		City:           lead.City,
		State:          lead.State,
		Source:         lead.Source,
		Status:         lead.Status,
		Score:          lead.Score,
		LeadValue:      lead.LeadValue,
		IsQualified:    lead.IsQualified,
		LastActivityAt: lead.LastActivityAt,
		CreatedAt:      lead.CreatedAt,
		UpdatedAt:      lead.UpdatedAt,
	}
}

// ToLeadDTOs converts a slice of lead models, never returning nil
func ToLeadDTOs(leads []*models.Lead) []dto.LeadDTO {
	out := make([]dto.LeadDTO, 0, len(leads))
	for _, l := range leads {
		if l == nil {
			continue
		}
		out = append(out, ToLeadDTO(*l))
	}
	return out
}
