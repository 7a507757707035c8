package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/dodeleye99/car-rental-system/internal/domain/models"
	"github.com/dodeleye99/car-rental-system/internal/service/commands"
	"github.com/dodeleye99/car-rental-system/internal/service/shop"
)

const (
	greeting = "Hello! Welcome to the Car Rental System"
	farewell = "Goodbye!"
	prompt   = "What would you like to do? "
)

// Dispatcher defines the command execution surface the session needs.
type Dispatcher interface {
	HandleCommand(ctx context.Context, cmd models.Command) (string, error)
}

// Session drives the interactive prompt loop over a reader/writer pair.
// It reads one command per line, dispatches it and prints the reply or
// a user-facing error message.
type Session struct {
	dispatcher Dispatcher
	in         io.Reader
	out        io.Writer
	logger     *zap.Logger
}

// NewSession constructs a terminal session.
func NewSession(dispatcher Dispatcher, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		dispatcher: dispatcher,
		in:         in,
		out:        out,
		logger:     logger,
	}
}

// Run executes the prompt loop until the user exits, input ends or the
// context is cancelled between prompts.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, greeting)
	fmt.Fprintln(s.out, "Type 'help' to see the available commands.")

	scanner := bufio.NewScanner(s.in)

	for ctx.Err() == nil {
		fmt.Fprint(s.out, prompt)

		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}

		line := scanner.Text()
		cmd := models.ParseCommand(line)

		if strings.TrimSpace(line) == "" {
			continue
		}
		if cmd.Type == models.CommandExit {
			break
		}

		reply, err := s.dispatcher.HandleCommand(ctx, cmd)
		if err != nil {
			fmt.Fprintln(s.out, s.errorMessage(err))
			continue
		}
		fmt.Fprintln(s.out, reply)
	}

	fmt.Fprintln(s.out, farewell)

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// errorMessage phrases an error for the terminal. Expected domain
// errors become friendly messages; anything else is logged and reported
// generically.
func (s *Session) errorMessage(err error) string {
	switch {
	case errors.Is(err, commands.ErrUnsupportedCommand):
		return "Sorry, I did not understand that. Type 'help' to see the available commands."
	case errors.Is(err, commands.ErrInvalidArguments):
		return fmt.Sprintf("That does not look right: %v.", err)
	case errors.Is(err, shop.ErrInvalidRequest):
		return fmt.Sprintf("That request is not valid: %v.", err)
	case errors.Is(err, shop.ErrOutOfStock):
		return "Sorry, there are no cars of that type available right now."
	case errors.Is(err, shop.ErrUnknownRental):
		return "No matching open rental was found."
	default:
		s.logger.Error("command failed", zap.Error(err))
		return "Sorry, something went wrong while handling that request."
	}
}
