package apperror

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init wires gin's validator so error messages use json field names, and lets
// feature packages register their own validation tags on the same engine.
func Init(registrations ...func(v *validator.Validate)) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(JSONTagName)
	for _, register := range registrations {
		register(v)
	}
}

// JSONTagName reports the json name of a field (`json:"full_name"` -> full_name).
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
