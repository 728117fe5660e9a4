package console

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/domain/model"
	"github.com/secmon-lab/pustaka/pkg/domain/types"
	"github.com/secmon-lab/pustaka/pkg/utils/apperr"
)

func parseChoice(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// readID prompts for a book ID. It reports false when input ended or the
// value was not a number; the error has already been printed then.
func (s *Session) readID(ctx context.Context, label string) (types.BookID, bool) {
	line, ok := s.prompt(ctx, label)
	if !ok {
		return 0, false
	}
	id, err := types.ParseBookID(line)
	if err != nil {
		s.printError(ctx, goerr.New("book ID must be a number",
			goerr.V("input", line),
			goerr.T(model.ErrTagInvalidArgument)))
		return 0, false
	}
	return id, true
}

// printError renders a failure and keeps the loop going. Errors that are not
// one of the catalogue kinds are also logged.
func (s *Session) printError(ctx context.Context, err error) {
	kind := model.KindOf(err)
	if kind == model.ErrorKindUnknown {
		apperr.Handle(ctx, err)
	} else {
		ctxlog.From(ctx).Debug("Operation rejected",
			slog.String("kind", kind.String()),
			slog.Any("error", err),
		)
	}
	s.printf("Error: %s\n", err.Error())
}

func (s *Session) printBooks(books []*model.Book) {
	s.println(strings.Repeat("-", listRule))
	for i, b := range books {
		s.printf("%d. %s\n", i+1, b.String())
	}
}

func (s *Session) addBook(ctx context.Context) {
	s.println("=== ADD BOOK ===")

	title, ok := s.prompt(ctx, "Title: ")
	if !ok {
		return
	}
	author, ok := s.prompt(ctx, "Author: ")
	if !ok {
		return
	}
	isbn, ok := s.prompt(ctx, "ISBN (optional): ")
	if !ok {
		return
	}
	yearInput, ok := s.prompt(ctx, "Publication year (blank if unknown): ")
	if !ok {
		return
	}
	category, ok := s.prompt(ctx, "Category: ")
	if !ok {
		return
	}

	year := model.UnknownPublicationYear
	if yearInput != "" {
		n, err := strconv.Atoi(yearInput)
		if err != nil {
			s.printError(ctx, goerr.New("publication year must be a number",
				goerr.V("input", yearInput),
				goerr.T(model.ErrTagInvalidArgument)))
			return
		}
		year = n
	}

	book, err := s.catalogue.AddBook(title, author, isbn, year, category)
	if err != nil {
		s.printError(ctx, err)
		return
	}

	ctxlog.From(ctx).Info("Book added", slog.Int("id", book.ID().Int()), slog.String("title", book.Title()))
	s.println()
	s.println("Book added.")
	s.printf("Book ID: %d\n", book.ID())
	s.printf("Details: %s\n", book.String())
}

func (s *Session) searchBooks(ctx context.Context) {
	s.println("=== SEARCH BOOKS ===")
	s.println("1. By ID")
	s.println("2. By Title")
	s.println("3. By Author")
	s.println("4. By Category")

	line, ok := s.prompt(ctx, "Choose search type: ")
	if !ok {
		return
	}
	choice, err := parseChoice(line)
	if err != nil {
		s.printError(ctx, goerr.New("input must be a number",
			goerr.V("input", line),
			goerr.T(model.ErrTagInvalidArgument)))
		return
	}

	switch choice {
	case 1:
		s.searchByID(ctx)
	case 2:
		s.searchByText(ctx, "Title", "title", s.catalogue.FindByTitle)
	case 3:
		s.searchByText(ctx, "Author", "author", s.catalogue.FindByAuthor)
	case 4:
		s.searchByText(ctx, "Category", "category", s.catalogue.FindByCategory)
	default:
		s.println("Invalid option.")
	}
}

func (s *Session) searchByID(ctx context.Context) {
	id, ok := s.readID(ctx, "Book ID: ")
	if !ok {
		return
	}

	book := s.catalogue.FindByID(id)
	if book == nil {
		s.println()
		s.printf("Book with ID %d not found.\n", id)
		return
	}
	s.println()
	s.println("Book found:")
	s.printf("%s", book.Describe())
}

func (s *Session) searchByText(ctx context.Context, label, criteria string, find func(string) ([]*model.Book, error)) {
	query, ok := s.prompt(ctx, label+": ")
	if !ok {
		return
	}

	books, err := find(query)
	if err != nil {
		s.printError(ctx, err)
		return
	}

	description := fmt.Sprintf("%s '%s'", criteria, query)
	s.println()
	if len(books) == 0 {
		s.printf("No books found for %s.\n", description)
		return
	}
	s.printf("Found %d book(s) for %s:\n", len(books), description)
	s.printBooks(books)
}

func (s *Session) borrowBook(ctx context.Context) {
	s.println("=== BORROW BOOK ===")
	id, ok := s.readID(ctx, "Book ID to borrow: ")
	if !ok {
		return
	}

	book, err := s.catalogue.Borrow(id)
	if err != nil {
		s.printError(ctx, err)
		return
	}

	ctxlog.From(ctx).Info("Book borrowed", slog.Int("id", id.Int()))
	s.println()
	s.println("Book borrowed.")
	s.printf("Details: %s\n", book.String())
}

func (s *Session) returnBook(ctx context.Context) {
	s.println("=== RETURN BOOK ===")
	id, ok := s.readID(ctx, "Book ID to return: ")
	if !ok {
		return
	}

	book, err := s.catalogue.ReturnBook(id)
	if err != nil {
		s.printError(ctx, err)
		return
	}

	ctxlog.From(ctx).Info("Book returned", slog.Int("id", id.Int()))
	s.println()
	s.println("Book returned.")
	s.printf("Details: %s\n", book.String())
}

func (s *Session) showAllBooks() {
	s.println("=== ALL BOOKS ===")
	books := s.catalogue.AllBooks()
	if len(books) == 0 {
		s.println("The catalogue is empty.")
		return
	}
	s.printf("Total: %d book(s)\n", len(books))
	s.printBooks(books)
}

func (s *Session) showStatistics() {
	s.printf("%s", s.catalogue.Statistics())
}

func (s *Session) removeBook(ctx context.Context) {
	s.println("=== REMOVE BOOK ===")
	id, ok := s.readID(ctx, "Book ID to remove: ")
	if !ok {
		return
	}

	book := s.catalogue.FindByID(id)
	if book == nil {
		s.println()
		s.printf("Book with ID %d not found.\n", id)
		return
	}

	s.println()
	s.println("Book to remove:")
	s.println(book.String())
	answer, ok := s.prompt(ctx, "Are you sure? (y/n): ")
	if !ok {
		return
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		s.println("Removal cancelled.")
		return
	}

	if err := s.catalogue.Remove(id); err != nil {
		s.printError(ctx, err)
		return
	}

	ctxlog.From(ctx).Info("Book removed", slog.Int("id", id.Int()))
	s.println()
	s.println("Book removed.")
}

func (s *Session) showBorrowedBooks() {
	s.println("=== BORROWED BOOKS ===")
	books := s.catalogue.ListBorrowed()
	if len(books) == 0 {
		s.println("No books are currently borrowed.")
		return
	}
	s.printf("Total: %d book(s) borrowed\n", len(books))
	s.printBooks(books)
}
