package validate

import "github.com/go-playground/validator/v10"

// Shared instance: validator caches struct metadata internally.
var v = validator.New()

// Struct validates the tags of a request body that bypasses the engine's
// binder, e.g. multipart forms read field by field.
func Struct(s any) error {
	return v.Struct(s)
}
