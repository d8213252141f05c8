package validators

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/reservation-api/internal/domain/menu"
)

var phonePattern = regexp.MustCompile(`^\d{9,11}$`)

// IsPhone accepts 9 to 11 digits without separators.
func IsPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Register installs the custom binding tags on v:
//
//	phone         9 to 11 digits
//	menucategory  one of the menu categories
//
// Field errors report the json (or form) name instead of the Go name.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("menucategory", func(fl validator.FieldLevel) bool {
		return menu.Category(fl.Field().String()).Valid()
	})
}

// RegisterWithGin installs the tags on gin's default validator.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Register(v)
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
