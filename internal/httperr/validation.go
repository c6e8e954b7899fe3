package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is one failing field in a validation response. Clients inspect
// individual entries, so the shape is part of the API contract.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// Validation writes a 400 carrying every failing field at once.
func Validation(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, ValidationError{
		Message: "Validation failed",
		Errors:  errs,
	})
}

// Binding translates a gin binding failure into the same structured payload
// manual validation produces.
func Binding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Path:    lowerFirst(fe.Field()),
				Message: tagMessage(fe),
			})
		}
		Validation(c, fields)
		return
	}

	BadRequest(c, "invalid_request", "Request body could not be parsed.")
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", lowerFirst(fe.Field()))
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
