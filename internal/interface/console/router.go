// Package console implements the interactive command-line interface of the
// assistant bot: a read-eval-print loop over an address book.
package console

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/alem-hub/assistant-bot/internal/domain/shared"
	"github.com/alem-hub/assistant-bot/internal/interface/console/handler"
	"github.com/alem-hub/assistant-bot/internal/interface/console/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROUTER CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// FeatureChecker reports whether a feature flag is on.
// *config.FeatureFlags satisfies it.
type FeatureChecker interface {
	IsEnabled(name string) bool
}

// RouterConfig contains configuration for the router.
type RouterConfig struct {
	// Logger for structured logging.
	Logger *slog.Logger

	// Debug enables debug logging for routing decisions.
	Debug bool

	// Features gates commands registered with RegisterFeatureCommand.
	// A nil checker disables every gated command.
	Features FeatureChecker
}

// ══════════════════════════════════════════════════════════════════════════════
// ROUTER
// Maps command names to handlers and handler errors to replies.
// ══════════════════════════════════════════════════════════════════════════════

type route struct {
	handler handler.Handler
	feature string // empty when always enabled
}

// Router routes parsed command lines to handlers.
type Router struct {
	config RouterConfig
	logger *slog.Logger

	routes   map[string]route
	routesMu sync.RWMutex

	defaultCommandHandler handler.Handler
}

// NewRouter creates a new router.
func NewRouter(config RouterConfig) *Router {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	r := &Router{
		config: config,
		logger: config.Logger,
		routes: make(map[string]route),
	}
	r.defaultCommandHandler = handler.HandlerFunc(r.handleUnknownCommand)

	return r
}

// ══════════════════════════════════════════════════════════════════════════════
// REGISTRATION METHODS
// ══════════════════════════════════════════════════════════════════════════════

// RegisterCommand registers a handler for one or more command names.
// Names are matched case-insensitively.
func (r *Router) RegisterCommand(h handler.Handler, commands ...string) {
	r.register(h, "", commands)
}

// RegisterFeatureCommand registers a handler that is only reachable while
// feature is enabled. Disabled commands behave like unknown ones.
func (r *Router) RegisterFeatureCommand(feature string, h handler.Handler, commands ...string) {
	r.register(h, feature, commands)
}

func (r *Router) register(h handler.Handler, feature string, commands []string) {
	r.routesMu.Lock()
	defer r.routesMu.Unlock()

	for _, command := range commands {
		r.routes[strings.ToLower(command)] = route{handler: h, feature: feature}

		if r.config.Debug {
			r.logger.Debug("registered command handler", "command", command, "feature", feature)
		}
	}
}

// SetDefaultCommandHandler sets the handler for unknown commands.
func (r *Router) SetDefaultCommandHandler(h handler.Handler) {
	r.defaultCommandHandler = h
}

// Commands returns the sorted names of all currently reachable commands.
func (r *Router) Commands() []string {
	r.routesMu.RLock()
	defer r.routesMu.RUnlock()

	names := make([]string, 0, len(r.routes))
	for name, rt := range r.routes {
		if r.enabled(rt) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// HasCommand reports whether command resolves to a registered handler.
func (r *Router) HasCommand(command string) bool {
	_, ok := r.lookup(command)
	return ok
}

func (r *Router) lookup(command string) (handler.Handler, bool) {
	r.routesMu.RLock()
	rt, ok := r.routes[command]
	r.routesMu.RUnlock()

	if !ok || !r.enabled(rt) {
		return nil, false
	}
	return rt.handler, true
}

func (r *Router) enabled(rt route) bool {
	if rt.feature == "" {
		return true
	}
	return r.config.Features != nil && r.config.Features.IsEnabled(rt.feature)
}

// ══════════════════════════════════════════════════════════════════════════════
// ROUTING METHODS
// ══════════════════════════════════════════════════════════════════════════════

// ParseInput splits a line on whitespace. The first token, lower-cased, is
// the command; the rest are its arguments. A blank line is a parse error.
func ParseInput(line string) (handler.Request, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return handler.Request{}, shared.NewDomainError("console", "ParseInput", shared.ErrParse, "empty input")
	}
	return handler.Request{
		Command: strings.ToLower(fields[0]),
		Args:    fields[1:],
	}, nil
}

// HandleCommand routes a request to its handler.
func (r *Router) HandleCommand(ctx context.Context, req handler.Request) (*handler.Response, error) {
	h, ok := r.lookup(req.Command)
	if !ok {
		if r.config.Debug {
			r.logger.Debug("no handler for command", "command", req.Command)
		}
		return r.defaultCommandHandler.Handle(ctx, req)
	}

	return h.Handle(ctx, req)
}

func (r *Router) handleUnknownCommand(_ context.Context, req handler.Request) (*handler.Response, error) {
	return nil, shared.NewDomainError("console", req.Command, shared.ErrParse, "unknown command")
}

// ReplyForError converts a handler error into the single line shown to the
// user.
func ReplyForError(err error) string {
	if prompt, ok := shared.UsagePrompt(err); ok {
		return prompt
	}
	switch {
	case shared.IsValidation(err):
		return presenter.MsgInvalidInput
	case shared.IsNotFound(err):
		return presenter.MsgNeedName
	case shared.IsParse(err):
		return presenter.MsgUnknownCommand
	default:
		return presenter.MsgInternalError
	}
}
