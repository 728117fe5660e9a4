package interfaces

import (
	"github.com/secmon-lab/pustaka/pkg/domain/model"
	"github.com/secmon-lab/pustaka/pkg/domain/types"
)

// BookStore holds catalogue records in insertion order
type BookStore interface {
	// Put appends a book. It fails if a book with the same ID is stored.
	Put(book *model.Book) error
	// Get returns the stored book, or nil if absent
	Get(id types.BookID) *model.Book
	// Delete removes a book and keeps the order of the rest
	Delete(id types.BookID) error
	// Replace puts book in the position of the book stored under id. It fails
	// if id is absent or another stored book already has book's ID.
	Replace(id types.BookID, book *model.Book) error
	// DeleteFunc removes every book matching fn and returns how many were removed
	DeleteFunc(fn func(*model.Book) bool) int
	// List returns the stored books in insertion order
	List() []*model.Book
	// Len returns the number of stored books
	Len() int
}
