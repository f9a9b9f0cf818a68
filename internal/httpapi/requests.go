package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spendwise/spendwise/pkg/httpx"
)

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type expenseRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	CategoryID  int64   `json:"category_id" validate:"required,min=1"`
	Description string  `json:"description"`
	Date        string  `json:"date"        validate:"required,datetime=2006-01-02"`
}

type categoryRequest struct {
	Name  string `json:"name"  validate:"required"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their wire names, not Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// fieldMessages maps struct field failures to the API's stable, client-facing
// validation messages.
var fieldMessages = map[string]string{
	"registerRequest.Name":     "Name is required",
	"registerRequest.Email":    "Valid email is required",
	"registerRequest.Password": "Password must be at least 6 characters",
	"loginRequest.Email":       "Valid email is required",
	"loginRequest.Password":    "Password is required",
	"expenseRequest.Title":     "Title is required",
	"expenseRequest.Amount":    "Amount must be a positive number",
	"expenseRequest.CategoryID": "Valid category ID is required",
	"expenseRequest.Date":       "Valid date is required",
	"categoryRequest.Name":      "Category name is required",
	"categoryRequest.Color":     "Color must be a valid hex color",
}

// fieldTagMessages overrides fieldMessages for fields whose message depends
// on which rule tripped.
var fieldTagMessages = map[string]string{
	"registerRequest.Password|max": "Password must be at most 72 characters",
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldTagMessages[fe.StructNamespace()+"|"+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fieldMessages[fe.StructNamespace()]; ok {
		return msg
	}
	return "Invalid value"
}

// decodeAndValidate parses the JSON body into dst and runs struct validation,
// returning field-level errors suitable for the 400 envelope. A nil return
// means the request is well-formed.
func decodeAndValidate(r *http.Request, dst any) []httpx.FieldError {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return []httpx.FieldError{{Field: "body", Message: "Invalid JSON body"}}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []httpx.FieldError{{Field: "body", Message: "Invalid request"}}
		}

		out := make([]httpx.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, httpx.FieldError{Field: fe.Field(), Message: messageFor(fe)})
		}
		return out
	}

	return nil
}
