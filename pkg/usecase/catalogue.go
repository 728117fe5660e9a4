package usecase

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/domain/interfaces"
	"github.com/secmon-lab/pustaka/pkg/domain/model"
	"github.com/secmon-lab/pustaka/pkg/domain/types"
	"golang.org/x/text/cases"
)

// DefaultCapacity is the capacity used when none is configured
const DefaultCapacity = 1000

// Catalogue owns a bounded, insertion-ordered collection of books. It
// enforces the capacity limit and ID uniqueness and is the entry point for
// every state change that involves more than one record.
type Catalogue struct {
	mu       sync.RWMutex
	name     string
	capacity int
	nextID   types.BookID
	store    interfaces.BookStore
}

var _ interfaces.Catalogue = (*Catalogue)(nil)

// NewCatalogue creates a new Catalogue backed by store. Books already held by
// store are adopted and ID assignment continues after the highest of them.
func NewCatalogue(name string, capacity int, store interfaces.BookStore) (*Catalogue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, goerr.New("catalogue name is required", goerr.T(model.ErrTagInvalidArgument))
	}
	if capacity <= 0 {
		return nil, goerr.New("catalogue capacity must be positive",
			goerr.V("capacity", capacity),
			goerr.T(model.ErrTagInvalidArgument))
	}
	if store == nil {
		return nil, goerr.New("book store is nil", goerr.T(model.ErrTagInvalidArgument))
	}
	if store.Len() > capacity {
		return nil, goerr.New("book store exceeds catalogue capacity",
			goerr.V("books", store.Len()),
			goerr.V("capacity", capacity),
			goerr.T(model.ErrTagInvalidArgument))
	}

	c := &Catalogue{
		name:     name,
		capacity: capacity,
		nextID:   1,
		store:    store,
	}
	for _, b := range store.List() {
		c.advanceNextID(b.ID())
	}
	return c, nil
}

// advanceNextID must be called with mu held for writing
func (c *Catalogue) advanceNextID(id types.BookID) {
	if id >= c.nextID {
		c.nextID = id + 1
	}
}

// Name returns the catalogue name
func (c *Catalogue) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// SetName renames the catalogue
func (c *Catalogue) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return goerr.New("catalogue name is required", goerr.T(model.ErrTagInvalidArgument))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
	return nil
}

// Capacity returns the maximum number of books
func (c *Catalogue) Capacity() int {
	return c.capacity
}

// TotalBooks returns the number of books held
func (c *Catalogue) TotalBooks() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Len()
}

// AvailableCount returns the number of books that can be borrowed
func (c *Catalogue) AvailableCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.countAvailable()
}

func (c *Catalogue) countAvailable() int {
	n := 0
	for _, b := range c.store.List() {
		if b.IsAvailable() {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the catalogue holds no books
func (c *Catalogue) IsEmpty() bool {
	return c.TotalBooks() == 0
}

// IsFull reports whether the capacity has been reached
func (c *Catalogue) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isFull()
}

func (c *Catalogue) isFull() bool {
	return c.store.Len() >= c.capacity
}

func (c *Catalogue) errFull() error {
	return goerr.New("catalogue has reached its capacity",
		goerr.V("capacity", c.capacity),
		goerr.T(model.ErrTagInvalidState))
}

// AddBook creates a book with the next free ID and appends it. The ID is only
// consumed when the book is created successfully.
func (c *Catalogue) AddBook(title, author, isbn string, year int, category string) (*model.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isFull() {
		return nil, c.errFull()
	}

	for c.store.Get(c.nextID) != nil {
		c.nextID++
	}

	book, err := model.NewBook(c.nextID, title, author, isbn, year, category)
	if err != nil {
		return nil, err
	}
	if err := c.store.Put(book); err != nil {
		return nil, goerr.Wrap(err, "failed to store book", goerr.V("id", book.ID()))
	}
	c.nextID++

	return book, nil
}

// AddRecord appends a copy of a pre-built book, keeping its ID
func (c *Catalogue) AddRecord(book *model.Book) error {
	if book == nil {
		return goerr.New("book is nil", goerr.T(model.ErrTagInvalidArgument))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isFull() {
		return c.errFull()
	}
	if c.store.Get(book.ID()) != nil {
		return goerr.New("book ID already exists",
			goerr.V("id", book.ID()),
			goerr.T(model.ErrTagDuplicateID))
	}

	owned := book.Clone()
	if err := c.store.Put(owned); err != nil {
		return goerr.Wrap(err, "failed to store book", goerr.V("id", owned.ID()))
	}
	c.advanceNextID(owned.ID())

	return nil
}

// ReassignID renumbers a held book, keeping IDs unique. Records obtained
// before the call keep the old ID and are no longer held by the catalogue.
func (c *Catalogue) ReassignID(from, to types.BookID) error {
	if !to.IsValid() {
		return goerr.New("book ID must be positive",
			goerr.V("id", to),
			goerr.T(model.ErrTagInvalidArgument))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	book := c.store.Get(from)
	if book == nil {
		return errNotFound(from)
	}
	if from == to {
		return nil
	}
	if c.store.Get(to) != nil {
		return goerr.New("book ID already exists",
			goerr.V("id", to),
			goerr.T(model.ErrTagDuplicateID))
	}

	renumbered, err := book.WithID(to)
	if err != nil {
		return err
	}
	if err := c.store.Replace(from, renumbered); err != nil {
		return goerr.Wrap(err, "failed to renumber book", goerr.V("from", from), goerr.V("to", to))
	}
	c.advanceNextID(to)
	return nil
}

func errNotFound(id types.BookID) error {
	return goerr.New(fmt.Sprintf("book with ID %d not found", id),
		goerr.V("id", id),
		goerr.T(model.ErrTagNotFound))
}

// FindByID returns the held book with the given ID, or nil. The returned book
// is the catalogue's own record; its validated setters may be used on it, and
// none of them change the ID.
func (c *Catalogue) FindByID(id types.BookID) *model.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Get(id)
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func (c *Catalogue) filter(match func(*model.Book) bool) []*model.Book {
	var result []*model.Book
	for _, b := range c.store.List() {
		if match(b) {
			result = append(result, b.Clone())
		}
	}
	return result
}

func (c *Catalogue) findBySubstring(field, query string, value func(*model.Book) string) ([]*model.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, goerr.New(field+" query is required", goerr.T(model.ErrTagInvalidArgument))
	}
	needle := fold(query)

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.filter(func(b *model.Book) bool {
		return strings.Contains(fold(value(b)), needle)
	}), nil
}

// FindByTitle returns copies of the books whose title contains query, ignoring case
func (c *Catalogue) FindByTitle(query string) ([]*model.Book, error) {
	return c.findBySubstring("title", query, (*model.Book).Title)
}

// FindByAuthor returns copies of the books whose author contains query, ignoring case
func (c *Catalogue) FindByAuthor(query string) ([]*model.Book, error) {
	return c.findBySubstring("author", query, (*model.Book).Author)
}

// FindByCategory returns copies of the books whose category equals category, ignoring case
func (c *Catalogue) FindByCategory(category string) ([]*model.Book, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, goerr.New("category query is required", goerr.T(model.ErrTagInvalidArgument))
	}
	needle := fold(category)

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.filter(func(b *model.Book) bool {
		return fold(b.Category()) == needle
	}), nil
}

// ListAvailable returns copies of the books that can be borrowed
func (c *Catalogue) ListAvailable() []*model.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter((*model.Book).IsAvailable)
}

// ListBorrowed returns copies of the books currently checked out
func (c *Catalogue) ListBorrowed() []*model.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter(func(b *model.Book) bool { return !b.IsAvailable() })
}

// AllBooks returns copies of every held book in insertion order
func (c *Catalogue) AllBooks() []*model.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter(func(*model.Book) bool { return true })
}

// Borrow checks out the book with the given ID
func (c *Catalogue) Borrow(id types.BookID) (*model.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	book := c.store.Get(id)
	if book == nil {
		return nil, errNotFound(id)
	}
	if !book.IsAvailable() {
		return nil, goerr.New(fmt.Sprintf("book '%s' is already borrowed", book.Title()),
			goerr.V("id", id),
			goerr.T(model.ErrTagInvalidState))
	}
	if err := book.Borrow(); err != nil {
		return nil, err
	}

	return book, nil
}

// ReturnBook checks in the book with the given ID
func (c *Catalogue) ReturnBook(id types.BookID) (*model.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	book := c.store.Get(id)
	if book == nil {
		return nil, errNotFound(id)
	}
	if book.IsAvailable() {
		return nil, goerr.New(fmt.Sprintf("book '%s' is not borrowed", book.Title()),
			goerr.V("id", id),
			goerr.T(model.ErrTagInvalidState))
	}
	if err := book.Return(); err != nil {
		return nil, err
	}

	return book, nil
}

// Remove deletes the book with the given ID. Borrowed books cannot be removed.
func (c *Catalogue) Remove(id types.BookID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	book := c.store.Get(id)
	if book == nil {
		return errNotFound(id)
	}
	if !book.IsAvailable() {
		return goerr.New("cannot remove a borrowed book",
			goerr.V("id", id),
			goerr.V("title", book.Title()),
			goerr.T(model.ErrTagInvalidState))
	}

	if err := c.store.Delete(id); err != nil {
		return goerr.Wrap(err, "failed to delete book", goerr.V("id", id))
	}
	return nil
}

// ClearAvailable removes every available book and leaves borrowed ones in place
func (c *Catalogue) ClearAvailable() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.DeleteFunc((*model.Book).IsAvailable)
}

// UsagePercentage returns how much of the capacity is used, from 0 to 100
func (c *Catalogue) UsagePercentage() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.usagePercentage()
}

func (c *Catalogue) usagePercentage() float64 {
	return 100.0 * float64(c.store.Len()) / float64(c.capacity)
}

// CategoryCounts returns the number of books held per category
func (c *Catalogue) CategoryCounts() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.categoryCounts()
}

func (c *Catalogue) categoryCounts() map[string]int {
	counts := make(map[string]int)
	for _, b := range c.store.List() {
		counts[b.Category()]++
	}
	return counts
}

// Statistics renders a summary of the catalogue. Categories are listed in
// lexical order.
func (c *Catalogue) Statistics() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.store.Len()
	available := c.countAvailable()

	var sb strings.Builder
	sb.WriteString("=== CATALOGUE STATISTICS ===\n")
	fmt.Fprintf(&sb, "Name: %s\n", c.name)
	fmt.Fprintf(&sb, "Total Books: %d/%d\n", total, c.capacity)
	fmt.Fprintf(&sb, "Available Books: %d\n", available)
	fmt.Fprintf(&sb, "Borrowed Books: %d\n", total-available)
	fmt.Fprintf(&sb, "Capacity Used: %.1f%%\n", c.usagePercentage())

	counts := c.categoryCounts()
	if len(counts) > 0 {
		sb.WriteString("\n=== BOOKS PER CATEGORY ===\n")
		for _, category := range slices.Sorted(maps.Keys(counts)) {
			fmt.Fprintf(&sb, "%s: %s\n", category, pluralBooks(counts[category]))
		}
	}

	return sb.String()
}

func pluralBooks(n int) string {
	if n == 1 {
		return "1 book"
	}
	return fmt.Sprintf("%d books", n)
}

// String returns a one-line summary
func (c *Catalogue) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fmt.Sprintf("Catalogue{Name='%s', Books=%d/%d, Available=%d}",
		c.name, c.store.Len(), c.capacity, c.countAvailable())
}
