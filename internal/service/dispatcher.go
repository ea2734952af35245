package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lexiblog/lexiblog-api/internal/domain"
	"github.com/lexiblog/lexiblog-api/internal/generation"
	"github.com/lexiblog/lexiblog-api/internal/markdown"
	"github.com/lexiblog/lexiblog-api/internal/metrics"
	"github.com/lexiblog/lexiblog-api/internal/platform/logger"
	"github.com/lexiblog/lexiblog-api/internal/prompt"
)

// ContentService dispatches generation requests. It is the port used by the
// HTTP handlers and the CLI.
type ContentService interface {
	// Dispatch validates payload for the named action, runs the operation and
	// wraps its result. Validation failures are *domain.ValidationError;
	// downstream failures wrap the generation package errors.
	Dispatch(ctx context.Context, action string, payload domain.Payload) (*Result, error)
}

// Result is the outcome of a successful dispatch.
type Result struct {
	Operation domain.Operation
	// Value is a string, a domain.Post or a []string depending on Operation.
	Value any
}

// Body returns the response object {<result field>: value}.
func (r *Result) Body() map[string]any {
	return map[string]any{r.Operation.ResultField(): r.Value}
}

// DispatcherConfig carries the settings shared by every dispatched request.
type DispatcherConfig struct {
	// Model is passed to the client for every operation. Empty means the
	// client default.
	Model string

	// Timeout bounds each model call. Zero means no deadline.
	Timeout time.Duration
}

// Dispatcher implements ContentService.
type Dispatcher struct {
	factory  generation.ClientFactory
	logger   *slog.Logger
	metrics  *metrics.Recorder
	validate *validator.Validate
	cfg      DispatcherConfig
}

var _ ContentService = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher. rec may be nil to disable metrics.
func NewDispatcher(
	factory generation.ClientFactory,
	logger *slog.Logger,
	rec *metrics.Recorder,
	cfg DispatcherConfig,
) (*Dispatcher, error) {
	if factory == nil {
		return nil, errors.New("client factory cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%w: negative timeout", generation.ErrInvalidConfig)
	}

	return &Dispatcher{
		factory:  factory,
		logger:   logger,
		metrics:  rec,
		validate: newValidator(),
		cfg:      cfg,
	}, nil
}

// Dispatch implements ContentService.
func (d *Dispatcher) Dispatch(ctx context.Context, action string, payload domain.Payload) (*Result, error) {
	start := time.Now()
	log := logger.FromContextOrDefault(ctx, d.logger).With("action", action)

	op, err := domain.ParseOperation(action)
	if err == nil {
		var value any
		value, err = d.dispatch(ctx, log, op, payload)
		if err == nil {
			d.metrics.ObserveRequest(action, Outcome(nil), time.Since(start))
			log.InfoContext(ctx, "generation request succeeded",
				"duration_ms", time.Since(start).Milliseconds())
			return &Result{Operation: op, Value: value}, nil
		}
	}

	outcome := Outcome(err)
	d.metrics.ObserveRequest(metricAction(op), outcome, time.Since(start))
	if errors.Is(err, domain.ErrValidation) {
		log.InfoContext(ctx, "generation request rejected", "error", err.Error())
	} else {
		log.ErrorContext(ctx, "generation request failed",
			"outcome", outcome,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
	}
	return nil, err
}

// dispatch runs a parsed operation: validate, check the credential, build
// the prompt, call the model and normalize the reply.
func (d *Dispatcher) dispatch(ctx context.Context, log *slog.Logger, op domain.Operation, p domain.Payload) (any, error) {
	req, err := d.decodeRequest(op, p)
	if err != nil {
		return nil, err
	}

	// An empty search query is answered without touching the model.
	if r, ok := req.(*insightRequest); ok && r.Query == "" {
		log.DebugContext(ctx, "empty search query, skipping model call")
		return "", nil
	}

	client, err := d.factory.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	switch r := req.(type) {
	case *veo3Request:
		return prompt.Veo3Prompt(r.ItemName), nil

	case *articleRequest:
		text, err := d.generateText(ctx, client, op, p)
		if err != nil {
			return nil, err
		}
		if r.Format == FormatHTML {
			return markdown.ToHTML(text)
		}
		return text, nil

	case *fullPostRequest:
		var post domain.Post
		if err := d.generateStructured(ctx, client, op, p, generation.PostSchema(), &post); err != nil {
			return nil, err
		}
		return post, nil

	case *sentencesRequest:
		var out struct {
			Sentences []string `json:"sentences"`
		}
		if err := d.generateStructured(ctx, client, op, p, generation.SentencesSchema(), &out); err != nil {
			return nil, err
		}
		return out.Sentences, nil

	default:
		return d.generateText(ctx, client, op, p)
	}
}

func (d *Dispatcher) generateText(
	ctx context.Context,
	client generation.Client,
	op domain.Operation,
	p domain.Payload,
) (string, error) {
	return d.call(ctx, client, op, p, generation.Config{
		Model:  d.cfg.Model,
		Output: generation.OutputText,
		Safety: generation.PermissiveSafety(),
	})
}

func (d *Dispatcher) generateStructured(
	ctx context.Context,
	client generation.Client,
	op domain.Operation,
	p domain.Payload,
	schema *generation.Schema,
	v any,
) error {
	raw, err := d.call(ctx, client, op, p, generation.Config{
		Model:  d.cfg.Model,
		Output: generation.OutputJSON,
		Schema: schema,
		Safety: generation.PermissiveSafety(),
	})
	if err != nil {
		return err
	}

	return generation.DecodeStructured(raw, schema, v)
}

// call renders the prompt of op and makes the single model call.
func (d *Dispatcher) call(
	ctx context.Context,
	client generation.Client,
	op domain.Operation,
	p domain.Payload,
	cfg generation.Config,
) (string, error) {
	text, err := prompt.Build(op, p)
	if err != nil {
		return "", err
	}

	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	out, err := client.Generate(ctx, text, cfg)
	d.metrics.ObserveModelCall(d.factory.Provider(), Outcome(err))
	if err != nil {
		return "", err
	}
	return out, nil
}

// metricAction keeps label cardinality bounded: unknown actions share one label.
func metricAction(op domain.Operation) string {
	if op == "" {
		return "unknown"
	}
	return op.String()
}
