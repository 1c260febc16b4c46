// Package main is the entry point of the assistant bot, an interactive
// command-line contact manager.
//
// The layout follows Clean Architecture:
//   - Domain: contacts, phones, birthdays and the address book
//   - Application: use cases (commands and queries)
//   - Infrastructure: JSON file persistence
//   - Interface: the console read-eval-print loop
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/alem-hub/assistant-bot/config"

	// Application layer
	"github.com/alem-hub/assistant-bot/internal/application/command"
	"github.com/alem-hub/assistant-bot/internal/application/query"

	// Domain layer
	"github.com/alem-hub/assistant-bot/internal/domain/contact"

	// Infrastructure layer
	"github.com/alem-hub/assistant-bot/internal/infrastructure/persistence/file"

	// Interface layer
	"github.com/alem-hub/assistant-bot/internal/interface/console"

	// Packages
	"github.com/alem-hub/assistant-bot/pkg/logger"
	"github.com/alem-hub/assistant-bot/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	logOpts := cfg.LoggerOptions()
	if logOpts.File == "" {
		logOpts.Output = stderr
	}
	log, logCloser, err := logger.New(logOpts)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer logCloser.Close()

	sessionID := uuid.NewString()
	log = log.With(logger.SessionID(sessionID))
	ctx = logger.WithContext(ctx, log)

	log.Info("starting assistant bot",
		"env", cfg.App.Environment,
		"version", cfg.App.Version,
		"timezone", cfg.App.Timezone,
		"features", cfg.Features.EnabledNames(),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. PERSISTENCE
	// ─────────────────────────────────────────────────────────────────────────
	store, err := file.NewAddressBookRepository(file.Config{
		Path:     cfg.Storage.Path,
		FileMode: cfg.Storage.FileMode,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}

	book := contact.NewAddressBook()
	if err := store.Load(ctx, book); err != nil {
		return fmt.Errorf("failed to load address book %s: %w", store.Path(), err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. APPLICATION LAYER (Commands, Queries)
	// ─────────────────────────────────────────────────────────────────────────
	clock := timeutil.NewSystemClock(cfg.App.Location)
	wrapYear := func() bool { return cfg.Features.IsEnabled(config.FeatureBirthdaysWrapYear) }

	botDeps := console.BotDependencies{
		Book:                   book,
		Store:                  store,
		Features:               cfg.Features,
		AddContactCmd:          command.NewAddContactHandler(book),
		ChangePhoneCmd:         command.NewChangePhoneHandler(book),
		AddBirthdayCmd:         command.NewAddBirthdayHandler(book),
		DeleteContactCmd:       command.NewDeleteContactHandler(book),
		ShowPhoneQuery:         query.NewShowPhoneHandler(book),
		ListContactsQuery:      query.NewListContactsHandler(book),
		ShowBirthdayQuery:      query.NewShowBirthdayHandler(book),
		UpcomingBirthdaysQuery: query.NewUpcomingBirthdaysHandler(book, clock, wrapYear),
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. CONSOLE
	// ─────────────────────────────────────────────────────────────────────────
	bot, err := console.NewBot(console.BotConfig{
		Input:     stdin,
		Output:    stdout,
		Logger:    log,
		Debug:     cfg.App.Debug,
		SessionID: sessionID,
	}, botDeps)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	if err := bot.Run(ctx); err != nil {
		return err
	}

	log.Info("assistant bot stopped")
	return nil
}
