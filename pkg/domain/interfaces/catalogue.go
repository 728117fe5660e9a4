package interfaces

import (
	"github.com/secmon-lab/pustaka/pkg/domain/model"
	"github.com/secmon-lab/pustaka/pkg/domain/types"
)

// Catalogue defines the operations available to the presentation layer
type Catalogue interface {
	Name() string
	Capacity() int
	TotalBooks() int
	IsFull() bool

	// Mutations
	AddBook(title, author, isbn string, year int, category string) (*model.Book, error)
	AddRecord(book *model.Book) error
	Borrow(id types.BookID) (*model.Book, error)
	ReturnBook(id types.BookID) (*model.Book, error)
	Remove(id types.BookID) error

	// Lookups
	FindByID(id types.BookID) *model.Book
	FindByTitle(query string) ([]*model.Book, error)
	FindByAuthor(query string) ([]*model.Book, error)
	FindByCategory(category string) ([]*model.Book, error)
	ListAvailable() []*model.Book
	ListBorrowed() []*model.Book
	AllBooks() []*model.Book

	UsagePercentage() float64
	Statistics() string
}
