package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateFeedbackPayload struct {
	EventID     string `json:"eventId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment,omitempty"`
	IsAnonymous bool   `json:"isAnonymous,omitempty"`
}

func (req *CreateFeedbackPayload) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.Comment, validation.Length(0, 1000)),
	)
}

type CreateMaterialPayload struct {
	EventID     string `json:"eventId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"fileUrl"`
	FileType    string `json:"fileType"`
	FileSize    int64  `json:"fileSize,omitempty"`
	IsPublic    bool   `json:"isPublic,omitempty"`
}

func (req *CreateMaterialPayload) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(1, 150)),
		validation.Field(&req.FileURL, validation.Required),
		validation.Field(&req.FileType, validation.Required),
	)
}
