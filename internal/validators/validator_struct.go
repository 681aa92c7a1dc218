package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/silabos-admin/models"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

// custom validation tags & texts
const (
	notBlankTag  = "notblank"
	notBlankText = "{0} no puede estar vacío"
)

// StructValidator validates structs tagged with `validate` rules.
type StructValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewStructValidator builds a validator with Spanish messages and JSON tag
// field names.
func NewStructValidator() *StructValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	_es := es.New()
	uni := ut.New(_es, _es)
	translator, _ := uni.GetTranslator("es")
	_ = es_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	registerCustomTranslation(validate, translator, notBlankTag, notBlankText)

	return &StructValidator{
		validate:   validate,
		translator: translator,
	}
}

func (s *StructValidator) Validate(ctx context.Context, v any) error {
	err := s.validate.StructCtx(ctx, v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}

	fieldErrors := make(FieldErrors, 0, len(vErrs))
	for _, vErr := range vErrs {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   vErr.Field(),
			Message: vErr.Translate(s.translator),
		})
	}
	return fieldErrors
}

func registerCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// notBlankValidation rejects strings made only of whitespace.
func notBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
