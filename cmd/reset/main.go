// Command reset erases every record the app stores: games, the card
// selection and the statistics record. The schema is left in place.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/osse101/CardBuilder_Go/internal/bootstrap"
	"github.com/osse101/CardBuilder_Go/internal/config"
	"github.com/osse101/CardBuilder_Go/internal/domain"
	"github.com/osse101/CardBuilder_Go/internal/recordstore"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, in io.Reader, out io.Writer) int {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	fs.SetOutput(out)
	force := fs.Bool("force", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return exitError
	}

	if !*force && !confirm(cfg, in, out) {
		log.Println("Aborted.")
		return exitOK
	}

	if err := reset(context.Background(), cfg); err != nil {
		log.Printf("Reset failed: %v", err)
		return exitError
	}
	log.Println("✅ Store reset complete!")
	return exitOK
}

// reset opens the configured backend, erases the app's keys and closes it again
func reset(ctx context.Context, cfg *config.Config) (err error) {
	backend, err := bootstrap.OpenBackend(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s backend: %w", cfg.StoreBackend, err)
	}

	store := recordstore.New(backend)
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close store: %w", closeErr))
		}
	}()

	return eraseAll(ctx, store)
}

// eraseAll removes every key the repositories write
func eraseAll(ctx context.Context, store *recordstore.Store) error {
	for _, key := range domain.StoreKeys {
		log.Printf("Erasing %s...\n", key)
		if err := store.Erase(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func confirm(cfg *config.Config, in io.Reader, out io.Writer) bool {
	fmt.Fprintf(out, "Erase all games and statistics from the %s store? Type 'yes' to continue: ", cfg.StoreBackend)
	var answer string
	if _, err := fmt.Fscanln(in, &answer); err != nil {
		return false
	}
	return answer == "yes"
}
