package domain

import "time"

type EventStatus string

const (
	EventDraft    EventStatus = "draft"
	EventPending  EventStatus = "pending"
	EventApproved EventStatus = "approved"
	EventRejected EventStatus = "rejected"
)

// Event mirrors the server record. Status transitions are server-owned:
// the client requests them (submit, review, update) and reflects the result.
type Event struct {
	ID                   string      `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	ShortDescription     string      `json:"shortDescription,omitempty"`
	OrganizerID          string      `json:"organizerId"`
	Location             string      `json:"location"`
	Address              string      `json:"address,omitempty"`
	StartDate            time.Time   `json:"startDate"`
	EndDate              time.Time   `json:"endDate"`
	RegistrationDeadline *time.Time  `json:"registrationDeadline,omitempty"`
	Type                 string      `json:"type"`
	Status               EventStatus `json:"status"`
	MaxParticipants      int         `json:"maxParticipants,omitempty"`
	CurrentParticipants  int         `json:"currentParticipants"`
	CoverImage           string      `json:"coverImage,omitempty"`
	RejectionReason      string      `json:"rejectionReason,omitempty"`
	IsOnline             bool        `json:"isOnline,omitempty"`
	OnlineLink           string      `json:"onlineLink,omitempty"`
	FacultyID            string      `json:"facultyId,omitempty"`
	DepartmentID         string      `json:"departmentId,omitempty"`
	Tags                 []string    `json:"tags,omitempty"`
}

// IsFull reports whether the event has reached its capacity.
// Zero MaxParticipants means unlimited.
func (e Event) IsFull() bool {
	return e.MaxParticipants > 0 && e.CurrentParticipants >= e.MaxParticipants
}
