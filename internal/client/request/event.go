package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEventPayload struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	ShortDescription     string   `json:"shortDescription,omitempty"`
	Type                 string   `json:"type"`
	StartDate            string   `json:"startDate"`
	EndDate              string   `json:"endDate"`
	RegistrationDeadline string   `json:"registrationDeadline,omitempty"`
	Location             string   `json:"location"`
	Address              string   `json:"address,omitempty"`
	IsOnline             bool     `json:"isOnline"`
	OnlineLink           string   `json:"onlineLink,omitempty"`
	MaxParticipants      int      `json:"maxParticipants,omitempty"`
	CoverImage           string   `json:"coverImage,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
	FacultyID            string   `json:"facultyId,omitempty"`
	DepartmentID         string   `json:"departmentId,omitempty"`
	Requirements         string   `json:"requirements,omitempty"`
	TargetAudience       string   `json:"targetAudience,omitempty"`
	Status               string   `json:"status,omitempty"`
	RejectionReason      *string  `json:"rejectionReason"`
}

func (req *CreateEventPayload) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(3, 150)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Type, validation.Required),
		validation.Field(&req.StartDate, validation.Required, validation.Date("2006-01-02T15:04:05Z07:00")),
		validation.Field(&req.EndDate, validation.Required, validation.Date("2006-01-02T15:04:05Z07:00")),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.MaxParticipants, validation.Min(0)),
	)
}

// ReviewEventPayload carries an admin decision. The reason is required only
// for rejections.
type ReviewEventPayload struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

func (req *ReviewEventPayload) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In("approved", "rejected")),
	)
	if err != nil {
		return err
	}

	if req.Status == "rejected" {
		return validation.ValidateStruct(
			req,
			validation.Field(&req.RejectionReason, validation.Required, validation.Length(3, 500)),
		)
	}

	return nil
}

type RegisterEventPayload struct {
	Notes string `json:"notes,omitempty"`
}

type CheckInPayload struct {
	TicketNumber string `json:"ticketNumber"`
}

func (req *CheckInPayload) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TicketNumber, validation.Required, validation.Length(4, 64)),
	)
}
