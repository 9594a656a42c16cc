package domain

import "time"

type Faculty struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Abbreviation string       `json:"abbreviation"`
	Description  string       `json:"description,omitempty"`
	Website      string       `json:"website,omitempty"`
	ContactEmail string       `json:"contactEmail,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	Departments  []Department `json:"departments,omitempty"`
}

type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FacultyID   string `json:"facultyId"`
	Description string `json:"description,omitempty"`
}
