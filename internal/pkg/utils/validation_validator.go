package utils

import (
	"medassist-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var bloodPressureRegex = regexp.MustCompile(`^\d{2,3}\s*/\s*\d{2,3}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("language_code", validateLanguageCode)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("blood_pressure", validateBloodPressure)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateLanguageCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, code := range constvars.SupportedLanguages {
		if value == code {
			return true
		}
	}
	return false
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.GenderMale || value == constvars.GenderFemale || value == constvars.GenderOther
}

func validateBloodPressure(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return bloodPressureRegex.MatchString(value)
}
