package repository_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pustaka/pkg/domain/interfaces"
	"github.com/secmon-lab/pustaka/pkg/domain/model"
	"github.com/secmon-lab/pustaka/pkg/domain/types"
	"github.com/secmon-lab/pustaka/pkg/repository"
)

func newBook(t *testing.T, id int, title string) *model.Book {
	t.Helper()
	book, err := model.NewSimpleBook(types.BookID(id), title, "Author "+title)
	gt.NoError(t, err).Required()
	return book
}

func testBookStore(t *testing.T, newStore func(t *testing.T) interfaces.BookStore) {
	t.Run("PutAndGet", func(t *testing.T) {
		store := newStore(t)
		book := newBook(t, 1, "First")

		gt.NoError(t, store.Put(book))

		retrieved := store.Get(1)
		gt.V(t, retrieved).NotNil()
		gt.Equal(t, retrieved.Title(), "First")
		gt.Equal(t, store.Len(), 1)
	})

	t.Run("Put_Nil", func(t *testing.T) {
		store := newStore(t)
		err := store.Put(nil)
		gt.Error(t, err)
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
	})

	t.Run("Put_Duplicate", func(t *testing.T) {
		store := newStore(t)
		gt.NoError(t, store.Put(newBook(t, 1, "First")))

		err := store.Put(newBook(t, 1, "Other"))
		gt.Error(t, err)
		gt.True(t, model.IsKind(err, model.ErrorKindDuplicateID))
		gt.Equal(t, store.Len(), 1)
		gt.Equal(t, store.Get(1).Title(), "First")
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		store := newStore(t)
		gt.V(t, store.Get(99)).Nil()
	})

	t.Run("List_PreservesInsertionOrder", func(t *testing.T) {
		store := newStore(t)
		for _, id := range []int{5, 2, 9} {
			gt.NoError(t, store.Put(newBook(t, id, "Book")))
		}

		books := store.List()
		gt.Equal(t, len(books), 3)
		gt.Equal(t, books[0].ID(), types.BookID(5))
		gt.Equal(t, books[1].ID(), types.BookID(2))
		gt.Equal(t, books[2].ID(), types.BookID(9))
	})

	t.Run("List_IsSnapshot", func(t *testing.T) {
		store := newStore(t)
		gt.NoError(t, store.Put(newBook(t, 1, "First")))

		books := store.List()
		books[0] = nil
		_ = append(books, newBook(t, 2, "Second"))

		gt.V(t, store.Get(1)).NotNil()
		gt.Equal(t, store.Len(), 1)
	})

	t.Run("Delete", func(t *testing.T) {
		store := newStore(t)
		for _, id := range []int{1, 2, 3} {
			gt.NoError(t, store.Put(newBook(t, id, "Book")))
		}

		gt.NoError(t, store.Delete(2))
		books := store.List()
		gt.Equal(t, len(books), 2)
		gt.Equal(t, books[0].ID(), types.BookID(1))
		gt.Equal(t, books[1].ID(), types.BookID(3))
	})

	t.Run("Delete_NotFound", func(t *testing.T) {
		store := newStore(t)
		err := store.Delete(7)
		gt.Error(t, err)
		gt.True(t, model.IsKind(err, model.ErrorKindNotFound))
	})

	t.Run("DeleteFunc", func(t *testing.T) {
		store := newStore(t)
		for _, id := range []int{1, 2, 3, 4} {
			gt.NoError(t, store.Put(newBook(t, id, "Book")))
		}

		removed := store.DeleteFunc(func(b *model.Book) bool {
			return b.ID()%2 == 0
		})
		gt.Equal(t, removed, 2)
		gt.Equal(t, store.Len(), 2)
		gt.V(t, store.Get(2)).Nil()
		gt.V(t, store.Get(3)).NotNil()
	})

	t.Run("Replace_KeepsPosition", func(t *testing.T) {
		store := newStore(t)
		for _, id := range []int{1, 2, 3} {
			gt.NoError(t, store.Put(newBook(t, id, "Book")))
		}

		renumbered, err := store.Get(2).WithID(10)
		gt.NoError(t, err).Required()
		gt.NoError(t, store.Replace(2, renumbered))

		gt.V(t, store.Get(2)).Nil()
		gt.V(t, store.Get(10)).NotNil()
		books := store.List()
		gt.Equal(t, len(books), 3)
		gt.Equal(t, books[1].ID(), types.BookID(10))
	})

	t.Run("Replace_SameID", func(t *testing.T) {
		store := newStore(t)
		gt.NoError(t, store.Put(newBook(t, 1, "First")))
		gt.NoError(t, store.Replace(1, newBook(t, 1, "Updated")))
		gt.Equal(t, store.Get(1).Title(), "Updated")
	})

	t.Run("Replace_Failures", func(t *testing.T) {
		store := newStore(t)
		gt.NoError(t, store.Put(newBook(t, 1, "First")))
		gt.NoError(t, store.Put(newBook(t, 2, "Second")))

		err := store.Replace(7, newBook(t, 8, "Missing"))
		gt.True(t, model.IsKind(err, model.ErrorKindNotFound))

		err = store.Replace(1, newBook(t, 2, "Clash"))
		gt.True(t, model.IsKind(err, model.ErrorKindDuplicateID))
		gt.Equal(t, store.Get(1).Title(), "First")
		gt.Equal(t, store.Get(2).Title(), "Second")

		err = store.Replace(1, nil)
		gt.True(t, model.IsKind(err, model.ErrorKindInvalidArgument))
	})
}

func TestMemoryBookStore(t *testing.T) {
	testBookStore(t, func(t *testing.T) interfaces.BookStore {
		return repository.NewMemory()
	})
}
