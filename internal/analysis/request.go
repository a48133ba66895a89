package analysis

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"pdfcheck/internal/domain"
)

// ChecklistRequest asks the model to propose a checklist for a document.
type ChecklistRequest struct {
	DocumentURI string `json:"pdfDataUri" validate:"required,datauri"`
}

// AnalysisRequest asks the model to verify each checklist entry against a document.
type AnalysisRequest struct {
	DocumentURI string   `json:"pdfDataUri" validate:"required,datauri"`
	Checklist   []string `json:"checklist" validate:"required,min=1,has_nonblank"`
}

// ValidationError reports a request that failed its schema check.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrValidation
}

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("has_nonblank", hasNonBlank)
	return v
}

// hasNonBlank passes for a string slice with at least one entry that is not
// empty after trimming.
func hasNonBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < field.Len(); i++ {
		if strings.TrimSpace(field.Index(i).String()) != "" {
			return true
		}
	}
	return false
}

// Validate checks the request before any model call is made.
func (r ChecklistRequest) Validate() error {
	return validateStruct(r)
}

// Validate checks the request before any model call is made.
func (r AnalysisRequest) Validate() error {
	return validateStruct(r)
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Problems: []string{err.Error()}}
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s %s", fe.Field(), describeTag(fe)))
	}
	return &ValidationError{Problems: problems}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datauri":
		return "must be a data URI of the form data:<mime>;base64,<payload>"
	case "min":
		return "must contain at least one entry"
	case "has_nonblank":
		return "must contain at least one non-empty entry"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
