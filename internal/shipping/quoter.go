package shipping

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"storefront-backend/internal/models"
)

// State is the quoting flow state for one checkout session.
type State string

const (
	// StateIdle means no valid query has been seen yet
	StateIdle State = "idle"
	// StateQuoting means a carrier request is in flight
	StateQuoting State = "quoting"
	// StateQuoted means the last request produced a fee
	StateQuoted State = "quoted"
	// StateFailed means the last request failed; Reason says why
	StateFailed State = "failed"
)

// Snapshot is the externally visible quoter state.
type Snapshot struct {
	State  State    `json:"state"`
	Fee    *float64 `json:"fee"`
	Reason string   `json:"reason,omitempty"`
}

// FeeSink receives the quoted fee. A failed or invalidated quote clears
// the sink so it can never hold a stale fee.
type FeeSink interface {
	SetShippingFee(fee float64)
	ClearShippingFee()
}

// Quoter decides when a checkout session needs a fresh shipping-fee
// quote. It memoizes the last completed query tuple so that repeated
// calls with an unchanged tuple reuse the previous outcome instead of
// hitting the carrier again, and collapses concurrent calls for the
// same tuple into a single request.
type Quoter struct {
	client FeeCalculator
	sink   FeeSink
	log    zerolog.Logger

	sfg singleflight.Group

	mu         sync.Mutex
	state      State
	fee        *float64
	reason     string
	lastKey    string
	lastResult *models.ShippingFeeResult
}

// NewQuoter creates a quoter in the idle state.
func NewQuoter(client FeeCalculator, sink FeeSink, log zerolog.Logger) *Quoter {
	return &Quoter{
		client: client,
		sink:   sink,
		log:    log.With().Str("component", "shipping-quoter").Logger(),
		state:  StateIdle,
	}
}

// Quote runs the state machine for the given query tuple and returns the
// resulting snapshot. An invalid query drops the session back to idle
// without touching the carrier. An unchanged tuple returns the cached
// quoted/failed outcome. Anything else goes through quoting.
func (q *Quoter) Quote(ctx context.Context, query models.ShippingFeeQuery) Snapshot {
	if !query.Valid() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.toIdleLocked()
		return q.snapshotLocked()
	}

	key := query.CacheKey()

	q.mu.Lock()
	if key == q.lastKey && (q.state == StateQuoted || q.state == StateFailed) {
		snap := q.snapshotLocked()
		q.mu.Unlock()
		return snap
	}
	q.state = StateQuoting
	q.mu.Unlock()

	// Collapse concurrent requests for the same tuple into one carrier
	// call. A different tuple arriving while this one is in flight gets
	// its own call and overwrites the outcome (last write wins).
	v, err, _ := q.sfg.Do(key, func() (interface{}, error) {
		// A caller that raced past the cache check may land here after
		// the shared flight already completed; reuse its outcome.
		q.mu.Lock()
		if key == q.lastKey && q.lastResult != nil {
			result := q.lastResult
			q.mu.Unlock()
			return result, nil
		}
		q.mu.Unlock()
		return q.client.CalculateFee(ctx, query)
	})

	q.mu.Lock()
	defer q.mu.Unlock()

	if err != nil {
		q.log.Warn().Err(err).Msg("Carrier fee request failed")
		q.failLocked(key, "could not reach the shipping carrier")
		return q.snapshotLocked()
	}

	result := v.(*models.ShippingFeeResult)
	if !result.Success {
		q.log.Warn().Str("reason", result.Reason).Msg("Carrier reported fee failure")
		q.failLocked(key, result.Reason)
		q.lastResult = result
		return q.snapshotLocked()
	}

	fee := result.Fee
	q.state = StateQuoted
	q.fee = &fee
	q.reason = ""
	q.lastKey = key
	q.lastResult = result
	q.sink.SetShippingFee(fee)
	return q.snapshotLocked()
}

// Snapshot returns the current state without triggering a quote.
func (q *Quoter) Snapshot() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

func (q *Quoter) toIdleLocked() {
	q.state = StateIdle
	q.fee = nil
	q.reason = ""
	q.lastKey = ""
	q.lastResult = nil
	q.sink.ClearShippingFee()
}

func (q *Quoter) failLocked(key, reason string) {
	if reason == "" {
		reason = "shipping fee calculation failed"
	}
	q.state = StateFailed
	q.fee = nil
	q.reason = reason
	q.lastKey = key
	q.lastResult = nil
	q.sink.ClearShippingFee()
}

func (q *Quoter) snapshotLocked() Snapshot {
	return Snapshot{State: q.state, Fee: q.fee, Reason: q.reason}
}
