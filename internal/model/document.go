package model

import "time"

// Document represents a stored file belonging to a servidor.
// NationalID references the owning servidor by its national-ID string; the
// servidor is not required to exist when the document is written, the
// association is resolved lazily at query time.
// This is a pure domain model with no database-specific dependencies or tags.
type Document struct {
	ID           string    `json:"id"`
	NationalID   string    `json:"nationalId"`
	DocumentType string    `json:"documentType"`
	StoragePath  string    `json:"storagePath"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"contentType"`
	RegisteredAt time.Time `json:"registeredAt"`
}
