// Package compass implements the "which bowl today" selection engine: a
// uniform random pick over the highly-rated logs, revealed only after a
// fixed presentation delay.
package compass

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

// Engine states.
const (
	StateIdle     = "idle"
	StateSpinning = "spinning"
	StateSettled  = "settled"
)

// DefaultRevealDelay is the presentation interval between a spin request
// and the choice becoming visible. Purely cosmetic: the choice itself is
// fixed at spin time.
const DefaultRevealDelay = 3 * time.Second

// Engine errors.
var (
	ErrNoEligibleLogs = errors.New("no eligible logs to spin over")
	ErrSpinning       = errors.New("spin already in progress")
	ErrNotSettled     = errors.New("no settled choice to commit")
	ErrShopGone       = errors.New("chosen log's shop no longer exists")
)

// Engine is the compass state machine: Idle -> Spinning -> Settled ->
// Idle. Safe for concurrent use.
type Engine struct {
	mu     sync.Mutex
	state  string
	chosen types.BowlLog
	timer  *time.Timer

	delay time.Duration
	// intn draws a uniform value in [0, n). Overridable in tests.
	intn func(n int) int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRevealDelay overrides the presentation delay.
func WithRevealDelay(d time.Duration) Option {
	return func(e *Engine) { e.delay = d }
}

// WithIntn overrides the randomness source. Used by tests.
func WithIntn(intn func(n int) int) Option {
	return func(e *Engine) { e.intn = intn }
}

// NewEngine creates an idle engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		state: StateIdle,
		delay: DefaultRevealDelay,
		intn:  rand.IntN,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current engine state.
func (e *Engine) State() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Spin starts a spin over eligible, which must already be filtered to the
// logs with rating at or above the compass threshold. The choice is drawn
// uniformly and synchronously, then held back until the reveal delay
// elapses; the delay never re-rolls it. Returns ErrNoEligibleLogs for an
// empty eligible set and ErrSpinning when a spin is already in progress —
// re-entrant spins are ignored, not queued.
func (e *Engine) Spin(eligible []types.BowlLog) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateSpinning {
		return ErrSpinning
	}
	if len(eligible) == 0 {
		return ErrNoEligibleLogs
	}

	e.chosen = eligible[e.intn(len(eligible))]
	e.state = StateSpinning
	e.timer = time.AfterFunc(e.delay, e.settle)
	return nil
}

// settle transitions Spinning -> Settled when the reveal delay fires.
func (e *Engine) settle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateSpinning {
		e.state = StateSettled
	}
}

// Chosen returns the settled choice, if any. Before the reveal delay
// elapses there is no visible choice even though one is already fixed.
func (e *Engine) Chosen() (types.BowlLog, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateSettled {
		return types.BowlLog{}, false
	}
	return e.chosen, true
}

// Commit surfaces the settled choice paired with its shop, resolved via
// shopByID, and returns the engine to Idle. If the shop has been removed
// since the log was written, no result is surfaced: the settle is
// discarded, Idle is restored, and ErrShopGone is returned so the caller
// can re-enable spinning.
func (e *Engine) Commit(shopByID func(id string) (types.Shop, bool)) (types.CompassResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateSettled {
		return types.CompassResult{}, ErrNotSettled
	}

	shop, ok := shopByID(e.chosen.ShopID)
	e.state = StateIdle
	if !ok {
		return types.CompassResult{}, ErrShopGone
	}
	return types.CompassResult{Shop: shop, Bowl: e.chosen}, nil
}

// Reset cancels any pending reveal and returns the engine to Idle.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.state = StateIdle
}
