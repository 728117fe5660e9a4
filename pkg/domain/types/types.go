package types

import (
	"strconv"

	"github.com/google/uuid"
)

// BookID represents a catalogue record identifier
type BookID int

// String returns the string representation
func (id BookID) String() string {
	return strconv.Itoa(int(id))
}

// Int returns the int representation
func (id BookID) Int() int {
	return int(id)
}

// IsValid checks if the ID is positive
func (id BookID) IsValid() bool {
	return id > 0
}

// ParseBookID parses a decimal string into a BookID. It does not check positivity.
func ParseBookID(s string) (BookID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return BookID(n), nil
}

// SessionID represents a console session identifier
type SessionID string

// String returns the string representation
func (id SessionID) String() string {
	return string(id)
}

// NewSessionID creates a new SessionID using UUID v7
func NewSessionID() (SessionID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SessionID(id.String()), nil
}
