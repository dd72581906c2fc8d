package shared

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their form key rather than the Go name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ErrBadForm indicates the request form could not be parsed or failed
// validation.
var ErrBadForm = errors.New("invalid form input")

// ParseForm parses a urlencoded or multipart body. maxMemory bounds the
// in-memory part of a multipart upload.
func ParseForm(r *http.Request, maxMemory int64) error {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return fmt.Errorf("%w: %v", ErrBadForm, err)
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadForm, err)
	}
	return nil
}

// FormInt reads an integer form value. An empty value yields def.
func FormInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrBadForm, key)
	}
	return n, nil
}

// ValidateRequest runs struct tag validation on v and reports the first
// failing field.
func ValidateRequest(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrBadForm, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrBadForm, err)
	}
	return nil
}
