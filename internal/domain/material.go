package domain

import "time"

type EventMaterial struct {
	ID            string    `json:"id"`
	EventID       string    `json:"eventId"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	FileURL       string    `json:"fileUrl"`
	FileType      string    `json:"fileType"`
	FileSize      int64     `json:"fileSize,omitempty"`
	IsPublic      bool      `json:"isPublic"`
	DownloadCount int       `json:"downloadCount"`
	CreatedAt     time.Time `json:"createdAt"`
}
