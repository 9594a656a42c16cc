package domain

import "time"

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
	RegistrationAttended  RegistrationStatus = "attended"
)

// Participant is a registration record. Cancelling soft-invalidates it
// (status becomes cancelled); check-in sets attended plus CheckedInAt.
type Participant struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	EventID      string             `json:"eventId"`
	Status       RegistrationStatus `json:"status"`
	TicketNumber string             `json:"ticketNumber,omitempty"`
	CheckedInAt  *time.Time         `json:"checkedInAt,omitempty"`
	User         *ParticipantUser   `json:"user,omitempty"`
}

type ParticipantUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
