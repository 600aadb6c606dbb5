package model

import "time"

// Servidor represents a civil-servant record, the primary subject entity.
// NationalID is the natural key ("XXX.XXX.XXX-XX") linking documents to the
// servidor; both NationalID and RegistrationNumber are unique at the storage
// layer.
// This is a pure domain model with no database-specific dependencies or tags.
type Servidor struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	NationalID         string    `json:"nationalId"`
	RegistrationNumber string    `json:"registrationNumber"`
	OrgCode            string    `json:"orgCode"`
	Active             bool      `json:"active"`
	JobTitle           string    `json:"jobTitle"`
	Department         string    `json:"department"`
	CreatedAt          time.Time `json:"createdAt"`
}
