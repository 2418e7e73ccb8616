package resume

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// phoneNumber is the hyphenated shape the classifier recognises as a phone number.
var phoneNumber = regexp.MustCompile(`^0[0-9]{1,3}-[0-9]{2,4}-[0-9]{4}$`)

//nolint:gochecknoglobals // validator instances cache struct metadata and are safe for concurrent use
var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the résumé-specific tags registered.
func Validator() (v *validator.Validate) {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("jp_phone", func(fl validator.FieldLevel) bool {
			return phoneNumber.MatchString(fl.Field().String())
		})
	})
	v = validate
	return v
}

// Validate checks the normalized form against its field rules.
func (f Form) Validate() (err error) {
	err = Validator().Struct(f.Normalize())
	if err != nil {
		err = errors.Wrap(err, "invalid form")
		return err
	}
	return err
}

// FieldErrors flattens a validation failure into field -> rule pairs for API responses.
func FieldErrors(err error) (fields map[string]string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fields
	}

	fields = make(map[string]string, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		fields[ns] = fe.Tag()
	}
	return fields
}
