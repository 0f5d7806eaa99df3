package v1

import (
	"encoding/json"
	"strings"

	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates a request body, turning validator errors
// into readable messages.
func bindJSON(c *gin.Context, out interface{}) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatErrors(err), "; "))
	}
	return nil
}

// bindStrictJSON decodes an update payload rejecting unknown fields, so a
// typo'd or unauthorized field name fails loudly instead of being silently
// dropped.
func bindStrictJSON(c *gin.Context, out interface{}) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return apperror.BadRequest("Invalid request body: " + err.Error())
	}
	return nil
}
