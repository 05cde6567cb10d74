package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultInterval      = 7 * 24 * time.Hour
	DefaultCheckInterval = time.Hour
)

var ErrInProgress = errors.New("refresh already in progress")

type LastStatus string

const (
	StatusNever   LastStatus = "never"
	StatusSuccess LastStatus = "success"
	StatusFailed  LastStatus = "failed"
)

type Refresher interface {
	Refresh(ctx context.Context) error
}

type Status struct {
	LastUpdated   *time.Time `json:"last_updated"`
	NextUpdateDue time.Time  `json:"next_update_due"`
	InProgress    bool       `json:"in_progress"`
	LastStatus    LastStatus `json:"last_status"`
	LastError     string     `json:"last_error,omitempty"`
}

// Updater refreshes the catalog on a fixed interval. A failed refresh leaves
// the due time unchanged so the next tick retries.
type Updater struct {
	refresher     Refresher
	interval      time.Duration
	checkInterval time.Duration
	now           func() time.Time
	logger        zerolog.Logger

	mu          sync.Mutex
	lastUpdated time.Time
	nextDue     time.Time
	inProgress  bool
	lastStatus  LastStatus
	lastErr     error
}

// NewUpdater returns an updater whose first refresh is due immediately.
func NewUpdater(refresher Refresher, interval, checkInterval time.Duration, now func() time.Time, logger zerolog.Logger) *Updater {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if checkInterval <= 0 {
		checkInterval = DefaultCheckInterval
	}
	if now == nil {
		now = time.Now
	}
	return &Updater{
		refresher:     refresher,
		interval:      interval,
		checkInterval: checkInterval,
		now:           now,
		logger:        logger,
		nextDue:       now(),
		lastStatus:    StatusNever,
	}
}

func (u *Updater) Status() Status {
	u.mu.Lock()
	defer u.mu.Unlock()
	s := Status{
		NextUpdateDue: u.nextDue,
		InProgress:    u.inProgress,
		LastStatus:    u.lastStatus,
	}
	if !u.lastUpdated.IsZero() {
		t := u.lastUpdated
		s.LastUpdated = &t
	}
	if u.lastErr != nil {
		s.LastError = u.lastErr.Error()
	}
	return s
}

// Tick refreshes when the update is due and none is running. It reports
// whether a refresh ran.
func (u *Updater) Tick(ctx context.Context) (bool, error) {
	u.mu.Lock()
	if u.inProgress || u.now().Before(u.nextDue) {
		u.mu.Unlock()
		return false, nil
	}
	u.inProgress = true
	u.mu.Unlock()

	return true, u.run(ctx)
}

// RunNow refreshes regardless of the due time.
func (u *Updater) RunNow(ctx context.Context) error {
	u.mu.Lock()
	if u.inProgress {
		u.mu.Unlock()
		return ErrInProgress
	}
	u.inProgress = true
	u.mu.Unlock()

	return u.run(ctx)
}

func (u *Updater) run(ctx context.Context) error {
	err := u.refresher.Refresh(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.inProgress = false
	u.lastErr = err
	if err != nil {
		u.lastStatus = StatusFailed
		u.logger.Error().Err(err).Time("next_update_due", u.nextDue).Msg("catalog refresh failed")
		return err
	}
	u.lastUpdated = u.now()
	u.nextDue = u.lastUpdated.Add(u.interval)
	u.lastStatus = StatusSuccess
	u.logger.Info().Time("next_update_due", u.nextDue).Msg("catalog refreshed")
	return nil
}

// Run ticks at the check interval until ctx is cancelled.
func (u *Updater) Run(ctx context.Context) {
	ticker := time.NewTicker(u.checkInterval)
	defer ticker.Stop()

	_, _ = u.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = u.Tick(ctx)
		}
	}
}
