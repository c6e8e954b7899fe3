package leads

import (
	"context"
	"strings"

	"github.com/selamhomes/estate-api/internal/httperr"
	"github.com/selamhomes/estate-api/internal/models"
	"github.com/selamhomes/estate-api/internal/validators"
)

// Intake is a public contact-form submission before validation.
type Intake struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	PropertyInterest string
	Message          string
	Source           string
	PropertyID       string
}

// Validate collects every failing field in a single pass. Clients rely on
// getting all errors in one response, so this must not stop at the first.
func (in Intake) Validate() []httperr.FieldError {
	var errs []httperr.FieldError

	if strings.TrimSpace(in.FirstName) == "" {
		errs = append(errs, httperr.FieldError{Path: "firstName", Message: "firstName is required"})
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs = append(errs, httperr.FieldError{Path: "lastName", Message: "lastName is required"})
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs = append(errs, httperr.FieldError{Path: "email", Message: "email is required"})
	} else if !validators.IsPlausibleEmail(email) {
		errs = append(errs, httperr.FieldError{Path: "email", Message: "email must be a valid address"})
	}

	return errs
}

type Repository interface {
	CreateLead(ctx context.Context, lead *models.Lead) error
}
