package models

import "github.com/google/uuid"

// NewID returns the opaque identifier assigned to new documents.
func NewID() string {
	return uuid.NewString()
}
