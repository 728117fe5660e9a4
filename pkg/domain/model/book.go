package model

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/domain/types"
)

const (
	// MinPublicationYear is the earliest accepted publication year
	MinPublicationYear = 1000
	// MaxPublicationYear is the latest accepted publication year
	MaxPublicationYear = 2024
	// UnknownPublicationYear marks a book whose publication year is not known
	UnknownPublicationYear = 0

	// DefaultCategory is used when a book is created without a category
	DefaultCategory = "General"
)

// Book represents a single catalogue record. Fields are only changed through
// the validated setters and the Borrow/Return transitions.
type Book struct {
	id        types.BookID
	title     string
	author    string
	isbn      string
	year      int
	category  string
	available bool
}

// NewBook creates a new Book instance. Text fields are trimmed and the book
// starts out available.
func NewBook(id types.BookID, title, author, isbn string, year int, category string) (*Book, error) {
	if !id.IsValid() {
		return nil, goerr.New("book ID must be positive",
			goerr.V("id", id),
			goerr.T(ErrTagInvalidArgument))
	}
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	author, err = validateAuthor(author)
	if err != nil {
		return nil, err
	}
	if err := validateYear(year); err != nil {
		return nil, err
	}

	return &Book{
		id:        id,
		title:     title,
		author:    author,
		isbn:      strings.TrimSpace(isbn),
		year:      year,
		category:  normalizeCategory(category),
		available: true,
	}, nil
}

// NewSimpleBook creates a Book with no ISBN, an unknown publication year and
// the default category
func NewSimpleBook(id types.BookID, title, author string) (*Book, error) {
	return NewBook(id, title, author, "", UnknownPublicationYear, DefaultCategory)
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", goerr.New("book title is required", goerr.T(ErrTagInvalidArgument))
	}
	return title, nil
}

func validateAuthor(author string) (string, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return "", goerr.New("book author is required", goerr.T(ErrTagInvalidArgument))
	}
	return author, nil
}

func validateYear(year int) error {
	if year == UnknownPublicationYear {
		return nil
	}
	if year < MinPublicationYear || year > MaxPublicationYear {
		return goerr.New("publication year is out of range",
			goerr.V("year", year),
			goerr.V("min", MinPublicationYear),
			goerr.V("max", MaxPublicationYear),
			goerr.T(ErrTagInvalidArgument))
	}
	return nil
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}

// ID returns the book ID
func (b *Book) ID() types.BookID { return b.id }

// Title returns the book title
func (b *Book) Title() string { return b.title }

// Author returns the book author
func (b *Book) Author() string { return b.author }

// ISBN returns the ISBN, empty if not known
func (b *Book) ISBN() string { return b.isbn }

// PublicationYear returns the publication year, 0 if unknown
func (b *Book) PublicationYear() int { return b.year }

// Category returns the book category
func (b *Book) Category() string { return b.category }

// IsAvailable reports whether the book can be borrowed
func (b *Book) IsAvailable() bool { return b.available }

// Status returns the availability state
func (b *Book) Status() types.BookStatus {
	if b.available {
		return types.BookStatusAvailable
	}
	return types.BookStatusBorrowed
}

// SetTitle updates the title
func (b *Book) SetTitle(title string) error {
	title, err := validateTitle(title)
	if err != nil {
		return err
	}
	b.title = title
	return nil
}

// SetAuthor updates the author
func (b *Book) SetAuthor(author string) error {
	author, err := validateAuthor(author)
	if err != nil {
		return err
	}
	b.author = author
	return nil
}

// SetISBN updates the ISBN. An empty value clears it.
func (b *Book) SetISBN(isbn string) {
	b.isbn = strings.TrimSpace(isbn)
}

// SetPublicationYear updates the publication year
func (b *Book) SetPublicationYear(year int) error {
	if err := validateYear(year); err != nil {
		return err
	}
	b.year = year
	return nil
}

// SetCategory updates the category. An empty value resets it to DefaultCategory.
func (b *Book) SetCategory(category string) {
	b.category = normalizeCategory(category)
}

// WithID returns a copy of the book carrying id. The receiver is left
// unchanged; a catalogue swaps the copy in when it renumbers a record.
func (b *Book) WithID(id types.BookID) (*Book, error) {
	if !id.IsValid() {
		return nil, goerr.New("book ID must be positive",
			goerr.V("id", id),
			goerr.T(ErrTagInvalidArgument))
	}
	c := b.Clone()
	c.id = id
	return c, nil
}

// Borrow marks the book as checked out
func (b *Book) Borrow() error {
	if !b.available {
		return goerr.New("book is already borrowed",
			goerr.V("id", b.id),
			goerr.V("title", b.title),
			goerr.T(ErrTagInvalidState))
	}
	b.available = false
	return nil
}

// Return marks the book as available again
func (b *Book) Return() error {
	if b.available {
		return goerr.New("book is not borrowed",
			goerr.V("id", b.id),
			goerr.V("title", b.title),
			goerr.T(ErrTagInvalidState))
	}
	b.available = true
	return nil
}

// Equal reports whether two books share the same ID. Content is not compared.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.id == other.id
}

// Clone returns an independent copy of the book
func (b *Book) Clone() *Book {
	c := *b
	return &c
}

// Describe renders every field as a multi-line block
func (b *Book) Describe() string {
	isbn := b.isbn
	if isbn == "" {
		isbn = "not available"
	}
	year := "unknown"
	if b.year != UnknownPublicationYear {
		year = fmt.Sprintf("%d", b.year)
	}

	var sb strings.Builder
	sb.WriteString("=== BOOK DETAILS ===\n")
	fmt.Fprintf(&sb, "ID: %d\n", b.id)
	fmt.Fprintf(&sb, "Title: %s\n", b.title)
	fmt.Fprintf(&sb, "Author: %s\n", b.author)
	fmt.Fprintf(&sb, "ISBN: %s\n", isbn)
	fmt.Fprintf(&sb, "Publication Year: %s\n", year)
	fmt.Fprintf(&sb, "Category: %s\n", b.category)
	fmt.Fprintf(&sb, "Status: %s\n", b.Status().Label())
	return sb.String()
}

// String returns a one-line summary
func (b *Book) String() string {
	available := "No"
	if b.available {
		available = "Yes"
	}
	return fmt.Sprintf("Book{ID=%d, Title='%s', Author='%s', Available=%s}",
		b.id, b.title, b.author, available)
}
