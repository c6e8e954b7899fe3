package leads

import (
	"context"
	"strings"

	"github.com/selamhomes/estate-api/internal/audit"
	domain "github.com/selamhomes/estate-api/internal/domain/leads"
	"github.com/selamhomes/estate-api/internal/httperr"
	"github.com/selamhomes/estate-api/internal/models"
)

// ValidationError carries the full per-field error list to the boundary.
type ValidationError struct {
	Fields []httperr.FieldError
}

func (e *ValidationError) Error() string {
	return "lead validation failed"
}

type CreateLead struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateLead(repo domain.Repository, audit *audit.Dispatcher) *CreateLead {
	return &CreateLead{repo: repo, audit: audit}
}

// Execute validates the submission and appends a new lead. Duplicate
// submissions are deliberately kept as separate rows; deduplication is a
// pending product decision.
func (uc *CreateLead) Execute(
	ctx context.Context,
	in domain.Intake,
) (*models.Lead, error) {

	if errs := in.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	lead := models.Lead{
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:            strings.TrimSpace(in.Phone),
		PropertyInterest: in.PropertyInterest,
		Message:          in.Message,
		Source:           strings.TrimSpace(in.Source),
		PropertyID:       in.PropertyID,
	}

	if err := uc.repo.CreateLead(ctx, &lead); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "lead_created",
		Entity:   "lead",
		EntityID: &lead.ID,
		Metadata: map[string]string{"source": lead.Source},
	})

	return &lead, nil
}
