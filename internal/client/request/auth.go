package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Lookahead pattern, needs regexp2 (stdlib regexp has no lookaheads).
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	errInvalidPassword = errors.New("parola trebuie să aibă minim 8 caractere, cel puțin o literă și o cifră")

	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
)

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginPayload) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type RegisterPayload struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	FacultyID string `json:"facultyId,omitempty"`
	Role      string `json:"role,omitempty"`
}

func (req *RegisterPayload) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
	)
	if err != nil {
		return err
	}

	if ok, _ := passwordExp.MatchString(req.Password); !ok {
		return errInvalidPassword
	}

	return nil
}

type LogoutPayload struct {
	RefreshToken string `json:"refreshToken"`
}
