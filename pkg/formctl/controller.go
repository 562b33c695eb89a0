package formctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/feedback"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/statemachine"
	"github.com/dmitrymomot/formkit/pkg/submission"
)

// Selector returns the delivery strategy for a submission of a form kind.
// *submission.Selector implements it.
type Selector interface {
	Select(kind form.Kind) submission.Strategy
}

// Controller runs submissions of one form instance.
type Controller struct {
	kind      form.Kind
	ui        *feedback.Controller
	selector  Selector
	machine   statemachine.StateMachine
	log       *slog.Logger
	messages  Messages
	observers []Observer

	mu          sync.RWMutex
	lastOutcome submission.Outcome
	hasOutcome  bool
}

// Option configures a Controller.
type Option func(*Controller)

func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMessages overrides DefaultMessages. Empty texts keep the default.
func WithMessages(m Messages) Option {
	return func(c *Controller) {
		if m.Invalid != "" {
			c.messages.Invalid = m.Invalid
		}
		if m.Success != "" {
			c.messages.Success = m.Success
		}
	}
}

// WithObserver registers obs for every state change.
func WithObserver(obs Observer) Option {
	return func(c *Controller) {
		if obs != nil {
			c.observers = append(c.observers, obs)
		}
	}
}

// New creates an idle controller for a form of kind bound to ui.
func New(kind form.Kind, ui *feedback.Controller, selector Selector, opts ...Option) (*Controller, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", form.ErrUnknownKind, kind)
	}
	if ui == nil {
		return nil, ErrNilUI
	}
	if selector == nil {
		return nil, ErrNilSelector
	}

	c := &Controller{
		kind:     kind,
		ui:       ui,
		selector: selector,
		log:      slog.Default(),
		messages: DefaultMessages(kind),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("formctl"), logger.Form(kind))

	isSuccess := func(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
		outcome, ok := data.(submission.Outcome)
		return ok && outcome.IsSuccess()
	}

	machine, err := statemachine.New(StateIdle,
		statemachine.WithTransition(StateIdle, StateValidating, eventSubmit),
		statemachine.WithTransition(StateValidating, StateIdle, eventReject),
		statemachine.WithTransition(StateValidating, StateSubmitting, eventAccept),
		statemachine.WithTransition(StateSubmitting, StateSettledSuccess, eventSettle, statemachine.WithGuard(isSuccess)),
		statemachine.WithTransition(StateSubmitting, StateSettledFailure, eventSettle),
		statemachine.WithTransition(StateSettledSuccess, StateIdle, eventRelease),
		statemachine.WithTransition(StateSettledFailure, StateIdle, eventRelease),
		statemachine.WithObserver(c.notify),
	)
	if err != nil {
		return nil, fmt.Errorf("formctl: build state machine: %w", err)
	}
	c.machine = machine

	return c, nil
}

func (c *Controller) notify(ctx context.Context, from, to statemachine.State, _ statemachine.Event) {
	f, t := State(from.Name()), State(to.Name())
	c.log.DebugContext(ctx, "form state changed", slog.String("from", f.String()), logger.State(t))
	for _, obs := range c.observers {
		obs(ctx, f, t)
	}
}

// Kind returns the form kind.
func (c *Controller) Kind() form.Kind {
	return c.kind
}

// State returns the current state.
func (c *Controller) State() State {
	return State(c.machine.Current().Name())
}

// LastOutcome returns the outcome of the most recent settled submission.
func (c *Controller) LastOutcome() (submission.Outcome, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastOutcome, c.hasOutcome
}

// CanSubmit reports whether a submission could start now.
func (c *Controller) CanSubmit(ctx context.Context) bool {
	return c.machine.CanFire(ctx, eventSubmit, nil)
}

// Submit runs one submission of the form's current field values and blocks
// until it settles.
//
// It returns ErrBusy, without touching the form, unless the controller is
// idle. Invalid input returns validator.ValidationErrors and no outcome.
// Otherwise the outcome of the delivery attempt is returned with a nil error;
// delivery failures are outcomes, not errors.
func (c *Controller) Submit(ctx context.Context) (submission.Outcome, error) {
	ctx, err := c.claim(ctx, nil)
	if err != nil {
		return submission.Outcome{}, err
	}
	return c.run(ctx)
}

// Start claims the controller, writes fields into the form's inputs and runs
// the submission in its own goroutine. A nil fields submits the inputs as
// they are.
//
// The claim and the write are one step: when the controller is not idle Start
// returns ErrBusy and the form keeps the values of the running submission.
// Once claimed, the submission settles even if ctx is canceled; the strategy
// still sees the cancellation.
func (c *Controller) Start(ctx context.Context, fields form.Fields) (*async.Future[submission.Outcome], error) {
	ctx, err := c.claim(ctx, fields)
	if err != nil {
		return nil, err
	}
	return async.Async(context.WithoutCancel(ctx), ctx, func(_ context.Context, ctx context.Context) (submission.Outcome, error) {
		return c.run(ctx)
	}), nil
}

// SubmitAsync is Start without new values. A busy controller yields a
// completed future holding ErrBusy.
func (c *Controller) SubmitAsync(ctx context.Context) *async.Future[submission.Outcome] {
	future, err := c.Start(ctx, nil)
	if err != nil {
		return async.Resolved(submission.Outcome{}, err)
	}
	return future
}

func (c *Controller) claim(ctx context.Context, fields form.Fields) (context.Context, error) {
	if _, ok := SubmissionIDFromContext(ctx); !ok {
		ctx = WithSubmissionID(ctx, uuid.NewString())
	}

	err := c.machine.Fire(ctx, eventSubmit, nil)
	switch {
	case err == nil:
		// Only the caller that left idle gets here, so fields cannot mix with
		// another submission's values.
		if fields != nil {
			c.ui.WriteFields(form.FieldNames(c.kind), fields)
		}
		return ctx, nil
	case errors.Is(err, statemachine.ErrNoTransition):
		return ctx, fmt.Errorf("%w: form is %s", ErrBusy, c.State())
	default:
		c.log.ErrorContext(ctx, "claim submission", logger.State(c.State()), logger.Error(err))
		return ctx, fmt.Errorf("formctl: claim submission: %w", err)
	}
}

// run takes a claimed submission from validating to idle.
func (c *Controller) run(ctx context.Context) (submission.Outcome, error) {
	names := form.FieldNames(c.kind)
	fields := c.ui.ReadFields(names)
	result := form.Validate(fields, form.RequiredFields(c.kind))
	c.ui.ApplyValidation(result, names)

	// BuildPayload refuses invalid input with the same validation errors.
	payload, err := form.BuildPayload(c.kind, fields)
	if err != nil {
		c.ui.ShowError(c.messages.Invalid)
		c.ui.SetFeedback(c.messages.Invalid)
		c.fire(ctx, eventReject, nil)
		c.log.DebugContext(ctx, "submission rejected by validation", logger.Fields(result.InvalidFieldNames()))
		return submission.Outcome{}, err
	}

	c.fire(ctx, eventAccept, nil)
	c.ui.SetBusy(true)

	strategy := c.selector.Select(c.kind)
	start := time.Now()

	outcome, err := async.Async(ctx, payload, func(ctx context.Context, p form.Payload) (submission.Outcome, error) {
		return strategy.Send(ctx, p), nil
	}).Await()
	if err != nil {
		outcome = failedOutcome(err)
		c.log.WarnContext(ctx, "strategy did not settle normally", logger.Strategy(strategy.Name()), logger.Error(err))
	}

	c.mu.Lock()
	c.lastOutcome, c.hasOutcome = outcome, true
	c.mu.Unlock()

	c.fire(ctx, eventSettle, outcome)

	if outcome.IsSuccess() {
		c.ui.ShowSuccess(c.messages.Success)
		c.ui.SetFeedback(c.messages.Success)
		c.ui.ClearFields(names)
	} else {
		c.ui.ShowError(outcome.Message)
		c.ui.SetFeedback(outcome.Message)
	}
	c.ui.SetBusy(false)

	c.fire(ctx, eventRelease, nil)

	c.log.InfoContext(ctx, "submission settled",
		logger.Strategy(strategy.Name()),
		logger.Outcome(outcome),
		logger.Duration(time.Since(start)),
	)

	return outcome, nil
}

// fire applies an internal transition. These are always valid while the
// controller owns the submission, so a failure is a bug and only logged.
func (c *Controller) fire(ctx context.Context, event statemachine.Event, data any) {
	if err := c.machine.Fire(ctx, event, data); err != nil {
		c.log.ErrorContext(ctx, "unexpected state transition failure",
			slog.String("event", event.Name()),
			logger.State(c.State()),
			logger.Error(err),
		)
	}
}

// failedOutcome maps an error from the async runner to an outcome. A context
// that ended before the strategy ran means the request never left.
func failedOutcome(err error) submission.Outcome {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return submission.NetworkFailure("")
	}
	return submission.ServiceFailure("")
}
