package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/domain/types"
)

// SeedBook is one entry of a bulk import file
type SeedBook struct {
	ID       int              `yaml:"id" validate:"gt=0"`
	Title    string           `yaml:"title" validate:"required"`
	Author   string           `yaml:"author" validate:"required"`
	ISBN     string           `yaml:"isbn,omitempty"`
	Year     int              `yaml:"year,omitempty" validate:"omitempty,gte=1000,lte=2024"`
	Category string           `yaml:"category,omitempty"`
	Status   types.BookStatus `yaml:"status,omitempty" validate:"omitempty,oneof=available borrowed"`
}

// Build creates the Book described by the entry
func (s *SeedBook) Build() (*Book, error) {
	book, err := NewBook(types.BookID(s.ID), s.Title, s.Author, s.ISBN, s.Year, s.Category)
	if err != nil {
		return nil, err
	}
	if s.Status == types.BookStatusBorrowed {
		if err := book.Borrow(); err != nil {
			return nil, err
		}
	}
	return book, nil
}

// SeedConfig represents a bulk import file
type SeedConfig struct {
	Books []SeedBook `yaml:"books" validate:"dive"`
}

var seedValidator = validator.New()

// Validate checks the shape of every entry and rejects IDs repeated within the file
func (c *SeedConfig) Validate() error {
	if err := seedValidator.Struct(c); err != nil {
		return goerr.Wrap(err, "invalid seed file", goerr.T(ErrTagInvalidArgument))
	}

	idMap := make(map[int]bool)
	for i, b := range c.Books {
		if idMap[b.ID] {
			return goerr.New("duplicate book ID in seed file",
				goerr.V("index", i),
				goerr.V("id", b.ID),
				goerr.T(ErrTagDuplicateID))
		}
		idMap[b.ID] = true
	}

	return nil
}
