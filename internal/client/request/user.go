package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type UpdateProfilePayload struct {
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	FacultyID    string `json:"facultyId,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Bio          string `json:"bio,omitempty"`
}

func (req *UpdateProfilePayload) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.FirstName, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Length(1, 50)),
		validation.Field(&req.Bio, validation.Length(0, 500)),
	)
}

type UpdateInterestsPayload struct {
	Interests []string `json:"interests"`
}

type UpdateRolePayload struct {
	Role string `json:"role"`
}

func (req *UpdateRolePayload) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Role, validation.Required, validation.In("student", "organizer", "admin")),
	)
}

type ListUsersQuery struct {
	Page   int
	Limit  int
	Search string
	Role   string
}

type CreateFacultyPayload struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Description  string `json:"description,omitempty"`
	Website      string `json:"website,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
}

func (req *CreateFacultyPayload) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Abbreviation, validation.Required, validation.Length(1, 15)),
		validation.Field(&req.ContactEmail, is.Email),
	)
}

type CreateDepartmentPayload struct {
	Name        string `json:"name"`
	FacultyID   string `json:"facultyId"`
	Description string `json:"description,omitempty"`
}

func (req *CreateDepartmentPayload) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.FacultyID, validation.Required),
	)
}
