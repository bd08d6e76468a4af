package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/KeisukeTTTT/estate-management/internal/metrics"
	"github.com/KeisukeTTTT/estate-management/internal/models"
	"github.com/KeisukeTTTT/estate-management/internal/validation"
)

// SuccessPolicy decides what a committed mutation hands back to the caller.
type SuccessPolicy int

const (
	// Redirect sends the caller to the entity's listing path.
	Redirect SuccessPolicy = iota
	// Return reports {success: true, message} in place.
	Return
)

// Mutation configures the pipeline for one entity kind.
type Mutation[T any] struct {
	Kind           models.Kind
	ListingPath    string // defaults to Kind.ListingPath()
	OnSuccess      SuccessPolicy
	SuccessMessage string
	Validate       func(validation.Raw) (T, validation.FieldErrors)
	References     func(T) []validation.Reference
	Build          func(T) models.IBase
}

func (m Mutation[T]) listingPath() string {
	if m.ListingPath != "" {
		return m.ListingPath
	}
	return m.Kind.ListingPath()
}

type Inserter interface {
	Insert(ctx context.Context, kind models.Kind, entity models.IBase) error
}

type Invalidator interface {
	Invalidate(ctx context.Context, path string) error
}

// Runner holds the collaborators shared by every mutation. It keeps no state between runs.
type Runner struct {
	store          Inserter
	resolver       validation.Resolver
	invalidator    Invalidator
	logger         *zap.Logger
	storageTimeout time.Duration
}

// NewRunner builds a Runner. invalidator may be nil when no read cache is in use.
func NewRunner(store Inserter, resolver validation.Resolver, invalidator Invalidator, logger *zap.Logger, storageTimeout time.Duration) *Runner {
	return &Runner{
		store:          store,
		resolver:       resolver,
		invalidator:    invalidator,
		logger:         logger,
		storageTimeout: storageTimeout,
	}
}

// Run drives one submission through validation, reference resolution and a single
// insert. Storage failures never escape: they end the run as FAILED with a generic
// message and the cause goes to the log only.
func Run[T any](ctx context.Context, r *Runner, m Mutation[T], raw validation.Raw) (out Outcome) {
	start := time.Now()
	log := r.logger.With(zap.String("kind", string(m.Kind)))
	defer func() {
		metrics.RecordPipelineOutcome(string(m.Kind), string(out.State), time.Since(start).Seconds())
		log.Debug("mutation finished", zap.String("state", string(out.State)), zap.Duration("took", time.Since(start)))
	}()

	log.Debug("mutation received", zap.String("state", string(StateReceived)))

	input, errs := m.Validate(raw)
	if !errs.Empty() {
		log.Debug("input rejected", zap.String("state", string(StateValidating)), zap.Strings("fields", errs.Fields()))
		return rejected(errs)
	}

	if m.References != nil {
		rctx, cancel := context.WithTimeout(ctx, r.storageTimeout)
		errs, err := validation.Resolve(rctx, r.resolver, m.References(input))
		cancel()
		if err != nil {
			log.Error("reference resolution failed", zap.String("state", string(StateResolving)), zap.Error(err))
			return failed()
		}
		if !errs.Empty() {
			log.Debug("references rejected", zap.String("state", string(StateResolving)), zap.Strings("fields", errs.Fields()))
			return rejected(errs)
		}
	}

	entity := m.Build(input)
	pctx, cancel := context.WithTimeout(ctx, r.storageTimeout)
	err := r.store.Insert(pctx, m.Kind, entity)
	cancel()
	if err != nil {
		log.Error("failed to persist entity", zap.String("state", string(StatePersisting)), zap.Error(err))
		return failed()
	}

	path := m.listingPath()
	r.invalidate(ctx, path, log)

	out = Outcome{
		State:    StateCommitted,
		Result:   Result{Success: true, Message: m.SuccessMessage},
		EntityID: entity.GetID(),
	}
	if m.OnSuccess == Redirect {
		out.RedirectTo = path
	}
	return out
}

// invalidate drops cached projections of path. A cache failure is logged and the
// committed write still stands.
func (r *Runner) invalidate(ctx context.Context, path string, log *zap.Logger) {
	if r.invalidator == nil {
		return
	}
	ictx, cancel := context.WithTimeout(ctx, r.storageTimeout)
	defer cancel()
	if err := r.invalidator.Invalidate(ictx, path); err != nil {
		log.Warn("failed to invalidate listing cache", zap.String("path", path), zap.Error(err))
	}
}
