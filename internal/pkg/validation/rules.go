package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of every date column
const DateLayout = "2006-01-02"

// Register installs the application's rules on gin's binding validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

// RegisterOn installs the tag name func and custom rules on v.
func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(requestFieldName)
	return v.RegisterValidation("date", validateDate)
}

// requestFieldName reports errors under the form or json name of the field.
func requestFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

func validateDate(fl validator.FieldLevel) bool {
	return IsDate(fl.Field().String())
}

// IsDate reports whether s is a calendar date in DateLayout.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
