// Package interpret turns free-form shopping queries into search Criteria.
//
// The primary path asks a language model for a JSON object. Any failure on
// that path (transport error, timeout, unparseable reply) falls through to a
// deterministic keyword extractor, so Interpret never returns an error.
package interpret

import (
	"context"
	"strings"
	"time"

	"github.com/spherical/saleseer/internal/domain"
	"github.com/spherical/saleseer/internal/llm"
	"github.com/spherical/saleseer/internal/observability"
)

// Fallback reasons reported alongside SourceFallback.
const (
	ReasonModelDisabled   = "model_disabled"
	ReasonEmptyQuery      = "empty_query"
	ReasonMalformedOutput = "malformed_output"
)

// Config holds the model call parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds a single completion call. Zero means no extra bound.
	Timeout time.Duration
}

// DefaultConfig returns the parameters used by the CLI and server.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   200,
		Temperature: 0.1,
		Timeout:     15 * time.Second,
	}
}

// QueryInterpreter implements domain.Interpreter on top of a Completer.
type QueryInterpreter struct {
	completer domain.Completer
	logger    *observability.Logger
	cfg       Config
}

// New creates a QueryInterpreter. A nil completer disables the model path.
func New(completer domain.Completer, logger *observability.Logger, cfg Config) *QueryInterpreter {
	if logger == nil {
		logger = observability.Nop()
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	return &QueryInterpreter{
		completer: completer,
		logger:    logger.WithComponent("interpreter"),
		cfg:       cfg,
	}
}

// Interpret extracts Criteria from query. It is safe for concurrent use.
func (i *QueryInterpreter) Interpret(ctx context.Context, query string) domain.Interpretation {
	if strings.TrimSpace(query) == "" {
		return fallback(query, ReasonEmptyQuery)
	}
	if i.completer == nil {
		return fallback(query, ReasonModelDisabled)
	}

	log := i.logger.WithContext(ctx)
	start := time.Now()

	callCtx := ctx
	if i.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, i.cfg.Timeout)
		defer cancel()
	}

	reply, err := i.completer.Complete(callCtx, SystemPrompt, query, i.cfg.MaxTokens, i.cfg.Temperature)
	if err != nil {
		reason := llm.Reason(err)
		log.Warn().
			Err(err).
			Str("reason", reason).
			Dur("elapsed", time.Since(start)).
			Msg("Model call failed, using keyword fallback")
		return fallback(query, reason)
	}

	criteria, err := ParseModelOutput(reply)
	if err != nil {
		log.Warn().
			Err(err).
			Int("reply_len", len(reply)).
			Msg("Model reply unusable, using keyword fallback")
		return fallback(query, ReasonMalformedOutput)
	}

	log.Debug().
		Dur("elapsed", time.Since(start)).
		Interface("criteria", criteria).
		Msg("Query interpreted by model")

	return domain.Interpretation{
		Criteria: criteria,
		Source:   domain.SourceModel,
	}
}

func fallback(query, reason string) domain.Interpretation {
	return domain.Interpretation{
		Criteria:       FallbackExtract(query),
		Source:         domain.SourceFallback,
		FallbackReason: reason,
	}
}

var _ domain.Interpreter = (*QueryInterpreter)(nil)
