package utils

import "github.com/google/uuid"

// GenerateID returns a new random ID for any record.
func GenerateID() string {
	return uuid.New().String()
}
