// Package reading runs a four-position event spread from card selection to
// deliverable images.
package reading

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arcanaland/eventtarot/internal/asset"
	"github.com/arcanaland/eventtarot/internal/spread"
)

// Drawer picks the card for a position
type Drawer interface {
	Draw(p spread.Position) (spread.Draw, error)
}

// Locator finds the remote id of an asset file name
type Locator interface {
	Locate(ctx context.Context, fileName string) (string, error)
}

// Acquirer fetches and orients the image with a remote id
type Acquirer interface {
	Acquire(ctx context.Context, remoteID string, reversed bool) ([]byte, error)
}

// Stage is a step of the per-position pipeline
type Stage string

const (
	StageSelect  Stage = "select"
	StageLocate  Stage = "locate"
	StageAcquire Stage = "acquire"
)

// Reading is the result of one spread. Units follow the position order.
type Reading struct {
	ID          string
	Units       []Unit
	OfferRepeat bool
}

// Failures returns the number of units that carry an error
func (r *Reading) Failures() int {
	n := 0
	for _, u := range r.Units {
		if u.Failed() {
			n++
		}
	}
	return n
}

// Orchestrator drives readings. It holds no per-reading state, so one
// orchestrator serves any number of concurrent readings.
type Orchestrator struct {
	drawer    Drawer
	locator   Locator
	acquirer  Acquirer
	positions []spread.Position
	logger    *zap.Logger
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithPositions replaces the default spread positions
func WithPositions(positions []spread.Position) Option {
	return func(o *Orchestrator) {
		o.positions = positions
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an orchestrator over the default positions
func New(drawer Drawer, locator Locator, acquirer Acquirer, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		drawer:    drawer,
		locator:   locator,
		acquirer:  acquirer,
		positions: spread.Positions,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Positions returns the positions every reading walks through
func (o *Orchestrator) Positions() []spread.Position {
	return o.positions
}

// Read runs a complete reading and returns all units
func (o *Orchestrator) Read(ctx context.Context) *Reading {
	return o.Stream(ctx, nil)
}

// Stream runs a reading, handing every unit to emit as soon as it is ready.
// Positions are processed one at a time in order; a failing position yields
// an error unit and the reading moves on. emit may be nil.
func (o *Orchestrator) Stream(ctx context.Context, emit func(Unit)) *Reading {
	r := &Reading{
		ID:    uuid.NewString(),
		Units: make([]Unit, 0, len(o.positions)),
	}
	logger := o.logger.With(zap.String("reading", r.ID))
	logger.Info("reading started")

	for _, p := range o.positions {
		u := o.runPosition(ctx, logger, p)
		r.Units = append(r.Units, u)
		if emit != nil {
			emit(u)
		}
	}

	r.OfferRepeat = true
	logger.Info("reading finished", zap.Int("failures", r.Failures()))
	return r
}

func (o *Orchestrator) runPosition(ctx context.Context, logger *zap.Logger, p spread.Position) Unit {
	u := Unit{Position: p}
	logger = logger.With(zap.String("position", p.Label))

	fail := func(stage Stage, err error) Unit {
		u.Err = fmt.Errorf("%s: %w", stage, err)
		logger.Warn("position failed",
			zap.String("stage", string(stage)),
			zap.String("card", u.CardName),
			zap.String("file", u.FileName),
			zap.Error(err))
		return u
	}

	d, err := o.drawer.Draw(p)
	if err != nil {
		return fail(StageSelect, err)
	}
	u.CardName = d.Card.Name()
	u.Reversed = d.Reversed
	u.Meaning = d.Card.Meaning(d.Reversed)

	u.FileName = asset.FileName(d.Card)

	remoteID, err := o.locator.Locate(ctx, u.FileName)
	if err != nil {
		return fail(StageLocate, err)
	}

	img, err := o.acquirer.Acquire(ctx, remoteID, d.Reversed)
	if err != nil {
		return fail(StageAcquire, err)
	}
	u.Image = img

	logger.Debug("position delivered",
		zap.String("card", u.CardName),
		zap.Bool("reversed", u.Reversed),
		zap.String("remote_id", remoteID))
	return u
}
