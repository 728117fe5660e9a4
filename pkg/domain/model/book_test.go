package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pustaka/pkg/domain/model"
	"github.com/secmon-lab/pustaka/pkg/domain/types"
)

func TestNewBook(t *testing.T) {
	t.Run("creates valid book with trimmed fields", func(t *testing.T) {
		book, err := model.NewBook(1, "  Clean Code ", " Robert Martin\t", " 978-0132350884 ", 2008, " Computing ")
		gt.NoError(t, err)
		gt.V(t, book).NotNil()
		gt.Equal(t, book.ID(), types.BookID(1))
		gt.Equal(t, book.Title(), "Clean Code")
		gt.Equal(t, book.Author(), "Robert Martin")
		gt.Equal(t, book.ISBN(), "978-0132350884")
		gt.Equal(t, book.PublicationYear(), 2008)
		gt.Equal(t, book.Category(), "Computing")
		gt.True(t, book.IsAvailable())
		gt.Equal(t, book.Status(), types.BookStatusAvailable)
	})

	t.Run("accepts unknown year", func(t *testing.T) {
		book, err := model.NewBook(1, "T", "A", "", 0, "C")
		gt.NoError(t, err)
		gt.Equal(t, book.PublicationYear(), model.UnknownPublicationYear)
	})

	t.Run("accepts year boundaries", func(t *testing.T) {
		_, err := model.NewBook(1, "T", "A", "", model.MinPublicationYear, "C")
		gt.NoError(t, err)
		_, err = model.NewBook(1, "T", "A", "", model.MaxPublicationYear, "C")
		gt.NoError(t, err)
	})

	t.Run("defaults empty category", func(t *testing.T) {
		book, err := model.NewBook(1, "T", "A", "", 0, "   ")
		gt.NoError(t, err)
		gt.Equal(t, book.Category(), model.DefaultCategory)
	})

	t.Run("fails with non-positive ID", func(t *testing.T) {
		_, err := model.NewBook(0, "T", "A", "", 0, "C")
		gt.Error(t, err)
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
		gt.S(t, err.Error()).Contains("book ID must be positive")

		_, err = model.NewBook(-3, "T", "A", "", 0, "C")
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
	})

	t.Run("fails with blank title", func(t *testing.T) {
		_, err := model.NewBook(1, "   ", "A", "", 0, "C")
		gt.Error(t, err)
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
		gt.S(t, err.Error()).Contains("book title is required")
	})

	t.Run("fails with blank author", func(t *testing.T) {
		_, err := model.NewBook(1, "T", "", "", 0, "C")
		gt.Error(t, err)
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
		gt.S(t, err.Error()).Contains("book author is required")
	})

	t.Run("fails with year out of range", func(t *testing.T) {
		for _, year := range []int{999, 2025, -1} {
			_, err := model.NewBook(1, "T", "A", "", year, "C")
			gt.Error(t, err)
			gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
		}
	})
}

func TestNewSimpleBook(t *testing.T) {
	book, err := model.NewSimpleBook(7, " Title ", " Author ")
	gt.NoError(t, err)
	gt.Equal(t, book.Title(), "Title")
	gt.Equal(t, book.Author(), "Author")
	gt.Equal(t, book.ISBN(), "")
	gt.Equal(t, book.PublicationYear(), 0)
	gt.Equal(t, book.Category(), model.DefaultCategory)
	gt.True(t, book.IsAvailable())

	_, err = model.NewSimpleBook(7, "", "Author")
	gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
}

func TestBookBorrowReturn(t *testing.T) {
	t.Run("borrow then return", func(t *testing.T) {
		book, err := model.NewSimpleBook(1, "T", "A")
		gt.NoError(t, err)

		gt.NoError(t, book.Borrow())
		gt.False(t, book.IsAvailable())
		gt.Equal(t, book.Status(), types.BookStatusBorrowed)

		gt.NoError(t, book.Return())
		gt.True(t, book.IsAvailable())
	})

	t.Run("borrow twice fails", func(t *testing.T) {
		book, err := model.NewSimpleBook(1, "T", "A")
		gt.NoError(t, err)
		gt.NoError(t, book.Borrow())

		err = book.Borrow()
		gt.Error(t, err)
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidState))
		gt.False(t, book.IsAvailable())
	})

	t.Run("return without borrow fails", func(t *testing.T) {
		book, err := model.NewSimpleBook(1, "T", "A")
		gt.NoError(t, err)

		err = book.Return()
		gt.Error(t, err)
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidState))
		gt.True(t, book.IsAvailable())
	})
}

func TestBookSetters(t *testing.T) {
	newBook := func(t *testing.T) *model.Book {
		book, err := model.NewBook(1, "Original", "Writer", "isbn", 2000, "Cat")
		gt.NoError(t, err).Required()
		return book
	}

	t.Run("SetTitle", func(t *testing.T) {
		book := newBook(t)
		gt.NoError(t, book.SetTitle("  New  "))
		gt.Equal(t, book.Title(), "New")

		err := book.SetTitle(" ")
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
		gt.Equal(t, book.Title(), "New")
	})

	t.Run("SetAuthor", func(t *testing.T) {
		book := newBook(t)
		gt.NoError(t, book.SetAuthor("Someone"))
		gt.Equal(t, book.Author(), "Someone")

		err := book.SetAuthor("")
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
		gt.Equal(t, book.Author(), "Someone")
	})

	t.Run("SetPublicationYear", func(t *testing.T) {
		book := newBook(t)
		gt.NoError(t, book.SetPublicationYear(1999))
		gt.Equal(t, book.PublicationYear(), 1999)
		gt.NoError(t, book.SetPublicationYear(0))
		gt.Equal(t, book.PublicationYear(), 0)

		err := book.SetPublicationYear(3000)
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
		gt.Equal(t, book.PublicationYear(), 0)
	})

	t.Run("SetISBN and SetCategory", func(t *testing.T) {
		book := newBook(t)
		book.SetISBN("")
		gt.Equal(t, book.ISBN(), "")
		book.SetCategory(" History ")
		gt.Equal(t, book.Category(), "History")
		book.SetCategory("")
		gt.Equal(t, book.Category(), model.DefaultCategory)
	})

	t.Run("WithID", func(t *testing.T) {
		book := newBook(t)
		original := book.ID()
		gt.NoError(t, book.Borrow())

		renumbered, err := book.WithID(5)
		gt.NoError(t, err).Required()
		gt.Equal(t, renumbered.ID(), types.BookID(5))
		gt.Equal(t, renumbered.Title(), book.Title())
		gt.False(t, renumbered.IsAvailable())
		gt.Equal(t, book.ID(), original)

		_, err = book.WithID(0)
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
	})
}

func TestBookEqual(t *testing.T) {
	a, err := model.NewBook(1, "A", "X", "111", 2000, "C")
	gt.NoError(t, err)
	b, err := model.NewBook(1, "B", "Y", "222", 1990, "D")
	gt.NoError(t, err)
	c, err := model.NewBook(2, "A", "X", "111", 2000, "C")
	gt.NoError(t, err)

	gt.True(t, a.Equal(b))
	gt.False(t, a.Equal(c))
	gt.False(t, a.Equal(nil))
}

func TestBookClone(t *testing.T) {
	book, err := model.NewSimpleBook(1, "T", "A")
	gt.NoError(t, err)

	clone := book.Clone()
	gt.NoError(t, clone.Borrow())
	gt.NoError(t, clone.SetTitle("Changed"))

	gt.True(t, book.IsAvailable())
	gt.Equal(t, book.Title(), "T")
	gt.True(t, book.Equal(clone))
}

func TestBookDescribe(t *testing.T) {
	t.Run("renders all fields", func(t *testing.T) {
		book, err := model.NewBook(3, "Bumi Manusia", "Pramoedya Ananta Toer", "978-979-433-550-5", 1980, "Fiction")
		gt.NoError(t, err)

		expected := strings.Join([]string{
			"=== BOOK DETAILS ===",
			"ID: 3",
			"Title: Bumi Manusia",
			"Author: Pramoedya Ananta Toer",
			"ISBN: 978-979-433-550-5",
			"Publication Year: 1980",
			"Category: Fiction",
			"Status: Available",
			"",
		}, "\n")
		gt.Equal(t, book.Describe(), expected)
	})

	t.Run("uses placeholders for missing values", func(t *testing.T) {
		book, err := model.NewSimpleBook(1, "T", "A")
		gt.NoError(t, err)
		gt.NoError(t, book.Borrow())

		desc := book.Describe()
		gt.S(t, desc).Contains("ISBN: not available\n")
		gt.S(t, desc).Contains("Publication Year: unknown\n")
		gt.S(t, desc).Contains("Status: Borrowed\n")
	})
}

func TestBookString(t *testing.T) {
	book, err := model.NewSimpleBook(1, "T", "A")
	gt.NoError(t, err)
	gt.Equal(t, book.String(), "Book{ID=1, Title='T', Author='A', Available=Yes}")

	gt.NoError(t, book.Borrow())
	gt.Equal(t, book.String(), "Book{ID=1, Title='T', Author='A', Available=No}")
}
