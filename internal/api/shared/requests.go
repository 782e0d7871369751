package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance; validator.Validate caches struct metadata, so
// handlers reuse one rather than building their own per request.
var validate = validator.New()

// DecodeJSON decodes the request body into v. It decodes a single JSON
// value: login payloads, submission sheets, and the other request DTOs are
// all flat objects, so no streaming or unknown-field policy is needed here.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest validates a decoded request value. A type that carries
// its own Validate method (the domain entities do) is asked directly;
// everything else goes through the struct tag validator.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return validate.Struct(v)
}
