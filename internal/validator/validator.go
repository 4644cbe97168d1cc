package validator

import (
	"net"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator/v10 instance with the service's custom rules
type Validator struct {
	structValidator *validator.Validate
}

// New creates a validator with every custom rule registered
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
	}
}

// ValidateStruct validates struct tags and reports failures as
// ValidationErrors keyed by the field's env name
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.structValidator.Struct(s)
	if err == nil {
		return nil
	}
	if errs := ToValidationErrors(err); len(errs) > 0 {
		return errs
	}
	return err
}

func registerCustomValidators(validate *validator.Validate) {
	// Comma separated host:port list
	validate.RegisterValidation("broker_list", validateBrokerList)

	// Report fields by their environment variable where one is declared
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})
}

func validateBrokerList(fl validator.FieldLevel) bool {
	found := false
	for _, broker := range strings.Split(fl.Field().String(), ",") {
		broker = strings.TrimSpace(broker)
		if broker == "" {
			continue
		}
		host, port, err := net.SplitHostPort(broker)
		if err != nil || host == "" || port == "" {
			return false
		}
		found = true
	}
	return found
}
