package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/CardBuilder_Go/internal/domain"
)

// gameInput is the user-typed form of a new game. Every text field must be filled.
type gameInput struct {
	Name        string `validate:"required"`
	Players     string `validate:"required"`
	Duration    string `validate:"required"`
	Rules       string `validate:"required"`
	CardIndices []int  `validate:"dive,gte=0"`
}

// gameEditInput holds the fields given to games edit; nil slots were not given
type gameEditInput struct {
	Name        *string `validate:"omitnil,min=1"`
	Players     *string `validate:"omitnil,min=1"`
	Duration    *string `validate:"omitnil,min=1"`
	Rules       *string `validate:"omitnil,min=1"`
	CardIndices []int   `validate:"dive,gte=0"`
}

// statsInput is the user-typed form of a new statistics record
type statsInput struct {
	Wins         string `validate:"required,numeric"`
	Defeats      string `validate:"required,numeric"`
	HoursPlayed  string `validate:"required,numeric"`
	FavoriteGame string `validate:"required"`
}

// statsEditInput checks a stored record after some of its fields were replaced
type statsEditInput struct {
	Wins         string `validate:"omitempty,numeric"`
	Defeats      string `validate:"omitempty,numeric"`
	HoursPlayed  string `validate:"omitempty,numeric"`
	FavoriteGame string
}

var (
	inputValidatorOnce sync.Once
	inputValidator     *validator.Validate
)

func validateInput(v any) error {
	inputValidatorOnce.Do(func() {
		inputValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := inputValidator.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// setFlags returns the names of flags given on the command line
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func parseGameID(args []string) (uuid.UUID, []string, error) {
	if len(args) == 0 {
		return uuid.Nil, nil, usageError("%s: game id", ErrMsgMissingArgument)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, nil, usageError("%s: %q", ErrMsgInvalidGameID, args[0])
	}
	return id, args[1:], nil
}

func parseCardIndex(args []string) (int, error) {
	if len(args) == 0 {
		return 0, usageError("%s: card index", ErrMsgMissingArgument)
	}
	index, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, usageError("%s: %q", ErrMsgInvalidCardIndex, args[0])
	}
	return index, nil
}

// parseCardList parses a comma-separated list typed by the user.
// Unlike the stored selection, a bad token is an error here.
func parseCardList(raw string) ([]int, error) {
	indices := []int{}
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, usageError("%s: %q", ErrMsgInvalidCardIndex, token)
		}
		indices = append(indices, n)
	}
	return indices, nil
}
