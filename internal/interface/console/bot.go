package console

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/alem-hub/assistant-bot/config"
	"github.com/alem-hub/assistant-bot/internal/application/command"
	"github.com/alem-hub/assistant-bot/internal/application/query"
	"github.com/alem-hub/assistant-bot/internal/domain/contact"
	"github.com/alem-hub/assistant-bot/internal/domain/shared"
	"github.com/alem-hub/assistant-bot/internal/interface/console/handler"
	"github.com/alem-hub/assistant-bot/internal/interface/console/middleware"
	"github.com/alem-hub/assistant-bot/internal/interface/console/presenter"
	"github.com/alem-hub/assistant-bot/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// BOT CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// DefaultMaxLineBytes bounds a single input line.
const DefaultMaxLineBytes = 1 << 20

// BotConfig contains configuration for the console bot.
type BotConfig struct {
	// Input is read line by line.
	Input io.Reader

	// Output receives the banner, prompts and replies.
	Output io.Writer

	// Logger for structured logging. Never write logs to Output.
	Logger *slog.Logger

	// Debug enables debug logging for routing decisions.
	Debug bool

	// SessionID identifies the session. When empty a new id is generated
	// and attached to Logger; callers passing one have tagged Logger already.
	SessionID string

	// MaxLineBytes bounds a single input line.
	MaxLineBytes int
}

// ══════════════════════════════════════════════════════════════════════════════
// BOT DEPENDENCIES
// ══════════════════════════════════════════════════════════════════════════════

// BotDependencies contains all dependencies for the bot handlers.
type BotDependencies struct {
	// Book is the in-memory address book the use cases operate on.
	Book *contact.AddressBook

	// Store persists Book when the session ends.
	Store contact.Repository

	// Features gates optional commands.
	Features FeatureChecker

	// Commands
	AddContactCmd    *command.AddContactHandler
	ChangePhoneCmd   *command.ChangePhoneHandler
	AddBirthdayCmd   *command.AddBirthdayHandler
	DeleteContactCmd *command.DeleteContactHandler

	// Queries
	ShowPhoneQuery         *query.ShowPhoneHandler
	ListContactsQuery      *query.ListContactsHandler
	ShowBirthdayQuery      *query.ShowBirthdayHandler
	UpcomingBirthdaysQuery *query.UpcomingBirthdaysHandler
}

func (d BotDependencies) validate() error {
	switch {
	case d.Book == nil:
		return errors.New("console: address book is required")
	case d.Store == nil:
		return errors.New("console: repository is required")
	case d.AddContactCmd == nil, d.ChangePhoneCmd == nil, d.AddBirthdayCmd == nil, d.DeleteContactCmd == nil:
		return errors.New("console: command handlers are required")
	case d.ShowPhoneQuery == nil, d.ListContactsQuery == nil, d.ShowBirthdayQuery == nil, d.UpcomingBirthdaysQuery == nil:
		return errors.New("console: query handlers are required")
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// BOT
// Reads command lines, dispatches them and saves the book on exit.
// ══════════════════════════════════════════════════════════════════════════════

// Bot is the console session controller.
type Bot struct {
	config BotConfig
	router *Router
	logger *slog.Logger

	book  *contact.AddressBook
	store contact.Repository

	// Middleware chain
	recoveryMiddleware *middleware.RecoveryMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware

	// Lifecycle management
	running   bool
	runningMu sync.Mutex
}

// NewBot creates a new console bot with all dependencies.
func NewBot(cfg BotConfig, deps BotDependencies) (*Bot, error) {
	if cfg.Input == nil || cfg.Output == nil {
		return nil, errors.New("console: input and output are required")
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.MaxLineBytes <= 0 {
		cfg.MaxLineBytes = DefaultMaxLineBytes
	}

	log := cfg.Logger.With(logger.Component("console"))
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
		log = log.With(logger.SessionID(cfg.SessionID))
	}

	recoveryConfig := middleware.DefaultRecoveryConfig(presenter.MsgInternalError)
	recoveryConfig.Logger = log

	router := NewRouter(RouterConfig{
		Logger:   log,
		Debug:    cfg.Debug,
		Features: deps.Features,
	})

	// Register command handlers
	router.RegisterCommand(handler.NewHelloHandler(), "hello")
	router.RegisterCommand(handler.NewAddHandler(deps.AddContactCmd), "add")
	router.RegisterCommand(handler.NewChangeHandler(deps.ChangePhoneCmd), "change")
	router.RegisterCommand(handler.NewPhoneHandler(deps.ShowPhoneQuery), "phone")
	router.RegisterCommand(handler.NewAllHandler(deps.ListContactsQuery), "all")
	router.RegisterCommand(handler.NewAddBirthdayHandler(deps.AddBirthdayCmd), "add-birthday")
	router.RegisterCommand(handler.NewShowBirthdayHandler(deps.ShowBirthdayQuery), "show-birthday")
	router.RegisterCommand(handler.NewExitHandler(), "exit", "close")
	router.RegisterFeatureCommand(config.FeatureCommandBirthdays,
		handler.NewBirthdaysHandler(deps.UpcomingBirthdaysQuery), "birthdays")
	router.RegisterFeatureCommand(config.FeatureCommandDelete,
		handler.NewDeleteHandler(deps.DeleteContactCmd), "delete")

	return &Bot{
		config:             cfg,
		router:             router,
		logger:             log,
		book:               deps.Book,
		store:              deps.Store,
		recoveryMiddleware: middleware.NewRecoveryMiddleware(recoveryConfig),
		metricsMiddleware:  middleware.NewMetricsMiddleware(),
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// LIFECYCLE MANAGEMENT
// ══════════════════════════════════════════════════════════════════════════════

// Run prints the banner and processes lines until exit, end of input or
// cancellation of ctx. The book is saved on exit and at end of input; a
// save failure is returned and the farewell is not printed. Cancellation
// returns ctx.Err() without saving. A line longer than MaxLineBytes is
// answered as an unrecognized command.
func (b *Bot) Run(ctx context.Context) error {
	b.runningMu.Lock()
	if b.running {
		b.runningMu.Unlock()
		return errors.New("console: bot is already running")
	}
	b.running = true
	b.runningMu.Unlock()

	defer func() {
		b.runningMu.Lock()
		b.running = false
		b.runningMu.Unlock()
		b.logStats()
	}()

	reader := bufio.NewReader(b.config.Input)

	b.logger.Info("session started", logger.Count("contacts", b.book.Len()))
	b.println(presenter.MsgWelcome)

	for {
		if err := ctx.Err(); err != nil {
			b.logger.Warn("session cancelled, changes not saved", logger.Err(err))
			return err
		}

		b.print(presenter.MsgPrompt)
		line, tooLong, err := readLine(reader, b.config.MaxLineBytes)
		if errors.Is(err, io.EOF) {
			b.logger.Info("end of input")
			b.println("")
			return b.shutdown(ctx, &handler.Response{Text: presenter.MsgGoodbye, Exit: true})
		}
		if err != nil {
			return fmt.Errorf("console: read input: %w", err)
		}
		if tooLong {
			b.println(b.rejectOverlong())
			continue
		}

		resp := b.handleLine(ctx, line)
		if resp.Exit {
			return b.shutdown(ctx, resp)
		}
		b.println(resp.Text)
	}
}

// IsRunning returns true while Run is active.
func (b *Bot) IsRunning() bool {
	b.runningMu.Lock()
	defer b.runningMu.Unlock()
	return b.running
}

func (b *Bot) shutdown(ctx context.Context, resp *handler.Response) error {
	if err := b.store.Save(ctx, b.book); err != nil {
		b.logger.Error("failed to save address book", logger.Err(err))
		return fmt.Errorf("console: save address book: %w", err)
	}
	b.println(resp.Text)
	b.logger.Info("session finished", logger.Count("contacts", b.book.Len()))
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// LINE HANDLING
// ══════════════════════════════════════════════════════════════════════════════

// handleLine turns one input line into one reply. It never fails: every
// error becomes a reply.
func (b *Bot) handleLine(ctx context.Context, line string) *handler.Response {
	requestID := uuid.NewString()
	reqLogger := b.logger.With(logger.RequestID(requestID))
	ctx = middleware.WithRequestID(ctx, requestID)
	ctx = logger.WithContext(ctx, reqLogger)

	req, err := ParseInput(line)
	label := req.Command
	if err != nil {
		label = "empty"
	} else if !b.router.HasCommand(req.Command) {
		label = "unknown"
	}
	tracker := b.metricsMiddleware.Start(label)

	var resp *handler.Response
	if err == nil {
		var recovery *middleware.RecoveryResult
		recovery, err = b.recoveryMiddleware.RecoverWithHandler(ctx, req.Command, func() error {
			var herr error
			resp, herr = b.router.HandleCommand(ctx, req)
			return herr
		})
		if recovery.Recovered {
			tracker.End(middleware.ErrPanic)
			return handler.Text(recovery.UserMessage)
		}
	}

	latency := tracker.End(err)
	outcome := middleware.Outcome(err)
	attrs := []any{logger.Command(label), logger.Outcome(outcome), logger.Latency(latency)}

	if err != nil {
		if outcome == middleware.OutcomeInternal {
			reqLogger.Error("command failed", append(attrs, logger.Err(err))...)
		} else {
			reqLogger.Debug("command rejected", append(attrs, logger.Err(err))...)
		}
		return handler.Text(ReplyForError(err))
	}
	if resp == nil {
		reqLogger.Error("handler returned no response", attrs...)
		return handler.Text(presenter.MsgInternalError)
	}

	reqLogger.Debug("command handled", attrs...)
	return resp
}

// rejectOverlong answers a line longer than MaxLineBytes. The line itself
// has already been discarded.
func (b *Bot) rejectOverlong() string {
	err := shared.NewDomainError("console", "ReadLine", shared.ErrParse, "input line too long")
	b.metricsMiddleware.Start("overlong").End(err)
	b.logger.Warn("input line dropped",
		logger.Command("overlong"),
		logger.Count("max_bytes", b.config.MaxLineBytes),
	)
	return ReplyForError(err)
}

// readLine reads one line without its trailing "\n" or "\r\n". A line
// longer than limit bytes is consumed up to its newline and reported as
// tooLong. io.EOF is returned only when nothing was left to read; a final
// line without a newline is returned as is.
func readLine(r *bufio.Reader, limit int) (line string, tooLong bool, err error) {
	var buf []byte
	read := 0
	for {
		chunk, rerr := r.ReadSlice('\n')
		read += len(chunk)
		if !tooLong {
			if len(buf)+len(chunk) > limit+2 {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		switch {
		case rerr == nil:
		case errors.Is(rerr, bufio.ErrBufferFull):
			continue
		case errors.Is(rerr, io.EOF):
			if read == 0 {
				return "", false, io.EOF
			}
		default:
			return "", false, rerr
		}

		if tooLong {
			return "", true, nil
		}
		buf = bytes.TrimSuffix(buf, []byte("\n"))
		buf = bytes.TrimSuffix(buf, []byte("\r"))
		if len(buf) > limit {
			return "", true, nil
		}
		return string(buf), false, nil
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// HELPER METHODS
// ══════════════════════════════════════════════════════════════════════════════

func (b *Bot) print(s string) {
	_, _ = io.WriteString(b.config.Output, s)
}

func (b *Bot) println(s string) {
	_, _ = io.WriteString(b.config.Output, s+"\n")
}

// ══════════════════════════════════════════════════════════════════════════════
// STATISTICS
// ══════════════════════════════════════════════════════════════════════════════

// GetStats returns the current session metrics.
func (b *Bot) GetStats() *middleware.MetricsSnapshot {
	return b.metricsMiddleware.Snapshot()
}

// Router returns the command router.
func (b *Bot) Router() *Router {
	return b.router
}

func (b *Bot) logStats() {
	snap := b.metricsMiddleware.Snapshot()
	perCommand := make(map[string]int64, len(snap.Commands))
	for _, c := range snap.Commands {
		perCommand[c.Name] = c.TotalCount
	}
	b.logger.Info("session statistics",
		logger.Any("uptime", snap.Uptime),
		logger.Any("requests", snap.TotalRequests),
		logger.Any("errors", snap.TotalErrors),
		logger.Any("outcomes", snap.Outcomes),
		logger.Any("commands", perCommand),
	)
}
