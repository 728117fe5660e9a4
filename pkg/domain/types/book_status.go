package types

// BookStatus represents the availability state of a catalogue record
type BookStatus string

const (
	BookStatusAvailable BookStatus = "available"
	BookStatusBorrowed  BookStatus = "borrowed"
)

// String returns the string representation of the status
func (s BookStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s BookStatus) IsValid() bool {
	switch s {
	case BookStatusAvailable, BookStatusBorrowed:
		return true
	default:
		return false
	}
}

// Label returns the human readable label of the status
func (s BookStatus) Label() string {
	switch s {
	case BookStatusAvailable:
		return "Available"
	case BookStatusBorrowed:
		return "Borrowed"
	default:
		return "Unknown"
	}
}
