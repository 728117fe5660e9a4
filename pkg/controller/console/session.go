package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pustaka/pkg/domain/interfaces"
	"github.com/secmon-lab/pustaka/pkg/domain/model"
	"github.com/secmon-lab/pustaka/pkg/domain/types"
)

const (
	maxLineLength = 64 * 1024

	wideRule   = 60
	narrowRule = 40
	listRule   = 80
)

// Session runs the interactive menu for one catalogue over a reader and a
// writer. It is not safe for concurrent use.
type Session struct {
	id        types.SessionID
	catalogue interfaces.Catalogue
	reader    *bufio.Reader
	readErr   error
	out       io.Writer
	running   bool
}

// NewSession creates a new console session
func NewSession(catalogue interfaces.Catalogue, in io.Reader, out io.Writer) (*Session, error) {
	if catalogue == nil {
		return nil, goerr.New("catalogue is nil")
	}
	if in == nil || out == nil {
		return nil, goerr.New("session input and output are required")
	}

	id, err := types.NewSessionID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate session ID")
	}

	return &Session{
		id:        id,
		catalogue: catalogue,
		reader:    bufio.NewReader(in),
		out:       out,
	}, nil
}

// ID returns the session ID
func (s *Session) ID() types.SessionID {
	return s.id
}

// Running reports whether the menu loop is active
func (s *Session) Running() bool {
	return s.running
}

// Stop makes the menu loop end after the current action
func (s *Session) Stop() {
	s.running = false
}

// Start runs the menu loop until the user exits, the input is exhausted or
// ctx is cancelled. Final statistics are printed in every case.
func (s *Session) Start(ctx context.Context) error {
	logger := ctxlog.From(ctx).With(slog.String("session_id", s.id.String()))
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Console session started",
		slog.String("catalogue", s.catalogue.Name()),
		slog.Int("books", s.catalogue.TotalBooks()),
	)

	s.running = true
	s.printWelcome()

	for s.running {
		if err := ctx.Err(); err != nil {
			logger.Info("Console session cancelled", slog.Any("reason", err))
			break
		}

		s.printMainMenu()
		line, ok := s.prompt(ctx, "Choose an option (0-8): ")
		if !ok {
			logger.Info("Console input closed")
			break
		}
		s.println()

		choice, err := parseChoice(line)
		if err != nil {
			s.printError(ctx, goerr.New("input must be a number",
				goerr.V("input", line),
				goerr.T(model.ErrTagInvalidArgument)))
			continue
		}
		s.dispatch(ctx, choice)
	}
	s.Stop()
	s.printFarewell()

	if s.readErr != nil {
		return goerr.Wrap(s.readErr, "failed to read console input")
	}

	logger.Info("Console session ended")
	return nil
}

func (s *Session) dispatch(ctx context.Context, choice int) {
	switch choice {
	case 1:
		s.addBook(ctx)
	case 2:
		s.searchBooks(ctx)
	case 3:
		s.borrowBook(ctx)
	case 4:
		s.returnBook(ctx)
	case 5:
		s.showAllBooks()
	case 6:
		s.showStatistics()
	case 7:
		s.removeBook(ctx)
	case 8:
		s.showBorrowedBooks()
	case 0:
		s.Stop()
	default:
		s.println("Invalid option.")
	}
}

// prompt writes label and reads one trimmed line. ok is false once input is
// exhausted. A line over maxLineLength is reported and the label asked again.
func (s *Session) prompt(ctx context.Context, label string) (string, bool) {
	for {
		s.printf("%s", label)
		line, err := s.readLine()
		switch {
		case err == nil:
			return strings.TrimSpace(line), true
		case model.IsKind(err, model.ErrorKindInvalidArgument):
			s.println()
			s.printError(ctx, err)
		default:
			if !errors.Is(err, io.EOF) {
				s.readErr = err
			}
			s.Stop()
			return "", false
		}
	}
}

// readLine reads up to the next line break. An overlong line is consumed to
// its end so the following line is read normally.
func (s *Session) readLine() (string, error) {
	var (
		line    []byte
		tooLong bool
	)
	for {
		fragment, isPrefix, err := s.reader.ReadLine()
		if err != nil {
			return "", err
		}
		if len(line)+len(fragment) > maxLineLength {
			tooLong = true
		}
		if !tooLong {
			line = append(line, fragment...)
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", goerr.New(fmt.Sprintf("input line is too long (max %d bytes)", maxLineLength),
			goerr.T(model.ErrTagInvalidArgument))
	}
	return string(line), nil
}

func (s *Session) printWelcome() {
	rule := strings.Repeat("=", wideRule)
	s.println(rule)
	s.println("    WELCOME TO THE LIBRARY CATALOGUE")
	s.println(rule)
	s.printf("Catalogue: %s\n", s.catalogue.Name())
	s.printf("Capacity: %d books\n", s.catalogue.Capacity())
	s.printf("Books loaded: %d\n", s.catalogue.TotalBooks())
	s.println(rule)
}

func (s *Session) printMainMenu() {
	rule := strings.Repeat("=", narrowRule)
	s.println()
	s.println(rule)
	s.println("             MAIN MENU")
	s.println(rule)
	s.println("1. Add Book")
	s.println("2. Search Books")
	s.println("3. Borrow Book")
	s.println("4. Return Book")
	s.println("5. List All Books")
	s.println("6. Show Statistics")
	s.println("7. Remove Book")
	s.println("8. List Borrowed Books")
	s.println("0. Exit")
	s.println(rule)
}

func (s *Session) printFarewell() {
	s.println("=== EXIT ===")
	s.println("Thank you for using the library catalogue!")
	s.println("Final statistics:")
	s.printf("%s", s.catalogue.Statistics())
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(args ...any) {
	_, _ = fmt.Fprintln(s.out, args...)
}
