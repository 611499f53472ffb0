// Package validation checks auth form input locally before any network call.
package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"storycrafter/internal/models"
)

const (
	MsgInvalidEmail     = "Please enter a valid email address."
	MsgPasswordRequired = "Password is required."
	MsgPasswordTooShort = "Password must be at least 8 characters long."

	MinPasswordLength = 8
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// local@domain.tld with no whitespace anywhere
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return v
}

type loginInput struct {
	Email    string `validate:"required,emailshape"`
	Password string `validate:"required"`
}

type signupInput struct {
	Email    string `validate:"required,emailshape"`
	Password string `validate:"min=8"`
}

// Login checks the login form. The returned errors are empty when the input may be sent.
func Login(email, password string) models.FieldErrors {
	return collect(validate.Struct(loginInput{Email: email, Password: password}))
}

// Signup checks the signup form, which additionally enforces the minimum password length.
func Signup(email, password string) models.FieldErrors {
	return collect(validate.Struct(signupInput{Email: email, Password: password}))
}

// ValidEmail reports whether email has the accepted shape.
func ValidEmail(email string) bool {
	return validate.Var(email, "required,emailshape") == nil
}

func collect(err error) models.FieldErrors {
	var out models.FieldErrors
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Email = MsgInvalidEmail
		return out
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "Email":
			out.Email = MsgInvalidEmail
		case "Password":
			if fe.Tag() == "min" {
				out.Password = MsgPasswordTooShort
			} else {
				out.Password = MsgPasswordRequired
			}
		}
	}
	return out
}
