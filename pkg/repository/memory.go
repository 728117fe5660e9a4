package repository

import (
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/domain/interfaces"
	"github.com/secmon-lab/pustaka/pkg/domain/model"
	"github.com/secmon-lab/pustaka/pkg/domain/types"
)

// Memory implements BookStore with an insertion-ordered slice searched
// linearly
type Memory struct {
	mu    sync.RWMutex
	books []*model.Book
}

// NewMemory creates a new memory book store
func NewMemory() interfaces.BookStore {
	return &Memory{}
}

func (m *Memory) indexOf(id types.BookID) int {
	return slices.IndexFunc(m.books, func(b *model.Book) bool {
		return b.ID() == id
	})
}

// Put appends a book to the store
func (m *Memory) Put(book *model.Book) error {
	if book == nil {
		return goerr.New("book is nil", goerr.T(model.ErrTagInvalidArgument))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(book.ID()) >= 0 {
		return goerr.New("book ID already stored",
			goerr.V("id", book.ID()),
			goerr.T(model.ErrTagDuplicateID))
	}

	m.books = append(m.books, book)
	return nil
}

// Get retrieves a book by ID
func (m *Memory) Get(id types.BookID) *model.Book {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.indexOf(id); i >= 0 {
		return m.books[i]
	}
	return nil
}

// Delete removes a book by ID
func (m *Memory) Delete(id types.BookID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return goerr.New("book not found",
			goerr.V("id", id),
			goerr.T(model.ErrTagNotFound))
	}

	m.books = slices.Delete(m.books, i, i+1)
	return nil
}

// Replace swaps the book stored under id for book, keeping its position
func (m *Memory) Replace(id types.BookID, book *model.Book) error {
	if book == nil {
		return goerr.New("book is nil", goerr.T(model.ErrTagInvalidArgument))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return goerr.New("book not found",
			goerr.V("id", id),
			goerr.T(model.ErrTagNotFound))
	}
	if j := m.indexOf(book.ID()); j >= 0 && j != i {
		return goerr.New("book ID already stored",
			goerr.V("id", book.ID()),
			goerr.T(model.ErrTagDuplicateID))
	}

	m.books[i] = book
	return nil
}

// DeleteFunc removes every book for which fn returns true
func (m *Memory) DeleteFunc(fn func(*model.Book) bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := len(m.books)
	m.books = slices.DeleteFunc(m.books, fn)
	return before - len(m.books)
}

// List returns the stored books in insertion order. The slice is a snapshot
// but the elements are the stored pointers.
func (m *Memory) List() []*model.Book {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.books)
}

// Len returns the number of stored books
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.books)
}
