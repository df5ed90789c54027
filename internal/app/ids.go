package app

import "github.com/google/uuid"

// IDGenerator returns a fresh unique identifier for a new record.
type IDGenerator func() string

func newUUID() string {
	return uuid.NewString()
}
