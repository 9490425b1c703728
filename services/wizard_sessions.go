package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const (
	DefaultWizardTTL    = 2 * time.Hour
	wizardSweepSchedule = "@every 10m"
)

// WizardSessions holds one BookingWizard per visitor, keyed by a random id.
// Operations on one wizard are serialized; different wizards proceed in
// parallel.
type WizardSessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*wizardSession
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

type wizardSession struct {
	mu      sync.Mutex
	wizard  *BookingWizard
	touched time.Time
}

func NewWizardSessions(ttl time.Duration, now func() time.Time, logger *slog.Logger) *WizardSessions {
	if ttl <= 0 {
		ttl = DefaultWizardTTL
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WizardSessions{
		sessions: make(map[uuid.UUID]*wizardSession),
		ttl:      ttl,
		now:      now,
		logger:   logger,
	}
}

func (r *WizardSessions) Create(w *BookingWizard) uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	r.sessions[id] = &wizardSession{wizard: w, touched: r.now()}
	r.mu.Unlock()
	return id
}

// Do runs fn on the wizard with the given id while holding that wizard's
// lock.
func (r *WizardSessions) Do(id uuid.UUID, fn func(*BookingWizard) error) error {
	r.mu.Lock()
	sess, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return ErrWizardNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touched = r.now()
	return fn(sess.wizard)
}

func (r *WizardSessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops wizards that have not been touched within the TTL and returns
// how many were removed.
func (r *WizardSessions) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, sess := range r.sessions {
		sess.mu.Lock()
		idle := sess.touched.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Info("swept idle booking sessions", "removed", removed, "remaining", len(r.sessions))
	}
	return removed
}

// Schedule registers the periodic sweep on c.
func (r *WizardSessions) Schedule(c *cron.Cron) error {
	_, err := c.AddFunc(wizardSweepSchedule, func() { r.Sweep() })
	return err
}
