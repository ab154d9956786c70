package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Single validator instance shared by all handlers; validator.Validate is
// safe for concurrent use and caches struct metadata.
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest checks a decoded request struct against its validate tags.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}
