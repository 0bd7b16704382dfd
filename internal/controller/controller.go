// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/filelens/internal/client"
	"github.com/tomtom215/filelens/internal/config"
	"github.com/tomtom215/filelens/internal/logging"
	"github.com/tomtom215/filelens/internal/metrics"
	"github.com/tomtom215/filelens/internal/models"
)

// User-facing messages. The concrete failure cause is only logged.
const (
	MsgEnterFilename  = "Please enter a filename"
	MsgAnalysisFailed = "Failed to analyze file. Please try again."
)

var (
	// ErrEmptyFilename is returned by TrySubmit for empty or whitespace-only input.
	ErrEmptyFilename = errors.New("filename is empty")

	// ErrInFlight is returned by TrySubmit while a request is outstanding.
	ErrInFlight = errors.New("analysis already in flight")
)

// Listener receives a snapshot after every state transition.
//
// Listeners run synchronously in transition order and must not call Submit
// or TrySubmit. Snapshot is safe to call.
type Listener func(models.UIState)

// Controller owns the analysis UIState and drives it through
// idle -> loading -> result | error.
//
// All mutations happen under mu; observers only ever get value copies.
type Controller struct {
	backend  client.BackendClient
	ordering string

	// notifyMu serializes transitions with listener delivery so listeners
	// see snapshots in the order they were produced.
	notifyMu sync.Mutex

	mu        sync.RWMutex
	state     models.UIState
	listeners map[uint64]Listener
	nextID    uint64
}

// New creates a controller. An empty ordering means last-write-wins.
func New(backend client.BackendClient, ordering string) *Controller {
	if ordering == "" {
		ordering = config.OrderingLastWriteWins
	}
	return &Controller{
		backend:   backend,
		ordering:  ordering,
		listeners: make(map[uint64]Listener),
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() models.UIState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() models.UIState {
	s := c.state
	s.Result = c.state.Result.Clone()
	return s
}

// Subscribe registers fn for every future transition and returns a function
// that removes it.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// update applies fn under the state lock. When fn returns true the new state
// is delivered to listeners; when false the state is left as fn found it.
func (c *Controller) update(fn func(*models.UIState) bool) (models.UIState, bool) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	applied := fn(&c.state)
	snap := c.snapshotLocked()
	var listeners []Listener
	if applied {
		listeners = make([]Listener, 0, len(c.listeners))
		for _, l := range c.listeners {
			listeners = append(listeners, l)
		}
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
	return snap, applied
}

// Submit validates rawInput and, if it is non-blank, issues exactly one
// analysis request and waits for it. It returns the state right after this
// request's completion was handled.
//
// Submit is re-entrant: concurrent calls each issue their own request and
// the ordering policy decides which response is shown.
func (c *Controller) Submit(ctx context.Context, rawInput string) models.UIState {
	state, _ := c.submit(ctx, rawInput, false)
	return state
}

// TrySubmit is Submit with an in-flight guard. While a request is
// outstanding it returns ErrInFlight and changes nothing. Blank input returns
// ErrEmptyFilename after setting the validation message.
func (c *Controller) TrySubmit(ctx context.Context, rawInput string) (models.UIState, error) {
	return c.submit(ctx, rawInput, true)
}

func (c *Controller) submit(ctx context.Context, rawInput string, guard bool) (models.UIState, error) {
	log := logging.Ctx(ctx).With().Str("component", "controller").Logger()
	req, valid := models.NewAnalysisRequest(rawInput)

	var (
		seq      uint64
		inFlight bool
	)
	state, _ := c.update(func(s *models.UIState) bool {
		if guard && s.Loading {
			inFlight = true
			return false
		}
		s.Filename = rawInput
		if !valid {
			s.Result = nil
			s.Error = MsgEnterFilename
			return true
		}
		s.Seq++
		seq = s.Seq
		s.Result = nil
		s.Error = ""
		s.Loading = true
		return true
	})

	if inFlight {
		log.Debug().Msg("Submission ignored, analysis already in flight")
		return state, ErrInFlight
	}
	if !valid {
		metrics.RecordAnalysis(metrics.OutcomeValidation, 0)
		return state, ErrEmptyFilename
	}

	log.Debug().Uint64("seq", seq).Str("filename", req.Filename).Msg("Analysis request issued")

	metrics.TrackAnalysisInFlight(true)
	start := time.Now()
	result, err := c.backend.Analyze(ctx, req.Filename)
	elapsed := time.Since(start)
	metrics.TrackAnalysisInFlight(false)

	outcome := outcomeOf(err)
	metrics.RecordAnalysis(outcome, elapsed)

	state, applied := c.update(func(s *models.UIState) bool {
		if c.ordering == config.OrderingLatestIssued && s.Seq != seq {
			return false
		}
		s.Loading = false
		if err != nil {
			s.Result = nil
			s.Error = MsgAnalysisFailed
			return true
		}
		s.Result = result
		s.Error = ""
		return true
	})

	if !applied {
		metrics.StaleResponsesDiscarded.Inc()
		log.Info().Uint64("seq", seq).Uint64("latest_seq", state.Seq).Msg("Discarded stale analysis response")
		return state, nil
	}

	if err != nil {
		log.Warn().Err(err).Str("outcome", outcome).Uint64("seq", seq).Dur("elapsed", elapsed).Msg("Analysis request failed")
	} else {
		log.Debug().Uint64("seq", seq).Str("file_type", result.FileType).Dur("elapsed", elapsed).Msg("Analysis completed")
	}
	return state, nil
}

// outcomeOf maps a backend error to its metrics label.
func outcomeOf(err error) string {
	var statusErr *client.StatusError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &statusErr):
		return metrics.OutcomeHTTPStatus
	case errors.Is(err, client.ErrDecode):
		return metrics.OutcomeDecode
	case errors.Is(err, client.ErrBackendReported):
		return metrics.OutcomeBackendErr
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeTransport
	}
}
