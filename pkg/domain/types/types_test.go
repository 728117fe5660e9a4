package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pustaka/pkg/domain/types"
)

func TestBookStatusValidation(t *testing.T) {
	tests := []struct {
		name     string
		status   types.BookStatus
		expected bool
	}{
		{"Valid available", types.BookStatusAvailable, true},
		{"Valid borrowed", types.BookStatusBorrowed, true},
		{"Invalid empty", types.BookStatus(""), false},
		{"Invalid mixed case", types.BookStatus("Borrowed"), false},
		{"Invalid unknown", types.BookStatus("lost"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.status.IsValid()
			if result != tt.expected {
				t.Errorf("BookStatus(%q).IsValid() = %v, want %v", tt.status, result, tt.expected)
			}
		})
	}
}

func TestBookStatusLabel(t *testing.T) {
	gt.Equal(t, types.BookStatusAvailable.Label(), "Available")
	gt.Equal(t, types.BookStatusBorrowed.Label(), "Borrowed")
	gt.Equal(t, types.BookStatus("lost").Label(), "Unknown")
}

func TestParseBookID(t *testing.T) {
	t.Run("parses decimal", func(t *testing.T) {
		id, err := types.ParseBookID("42")
		gt.NoError(t, err)
		gt.Equal(t, id, types.BookID(42))
		gt.True(t, id.IsValid())
		gt.Equal(t, id.String(), "42")
	})

	t.Run("rejects non numeric", func(t *testing.T) {
		_, err := types.ParseBookID("abc")
		gt.Error(t, err)
	})

	t.Run("zero is parsed but not valid", func(t *testing.T) {
		id, err := types.ParseBookID("0")
		gt.NoError(t, err)
		gt.False(t, id.IsValid())
	})
}

func TestNewSessionID(t *testing.T) {
	id1, err := types.NewSessionID()
	gt.NoError(t, err)
	id2, err := types.NewSessionID()
	gt.NoError(t, err)
	gt.NotEqual(t, id1, id2)
	gt.Equal(t, len(id1.String()), 36)
}
