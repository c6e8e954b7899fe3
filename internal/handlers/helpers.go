package handlers

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/selamhomes/estate-api/internal/middleware"
)

// bindPatch decodes a partial-update body. Unknown keys are rejected so a
// typoed field name fails loudly instead of silently patching nothing. An
// empty body is a valid patch that only bumps updatedAt.
func bindPatch(c *gin.Context, dest any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dest)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// actorID returns the authenticated admin's id for audit entries, nil when
// the request carries none (public lead intake).
func actorID(c *gin.Context) *string {
	v, ok := c.Get(middleware.ContextAdminID)
	if !ok {
		return nil
	}
	id, ok := v.(string)
	if !ok {
		return nil
	}
	return &id
}
