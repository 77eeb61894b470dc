package store

import (
	"context"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/domain"
)

// Well-known keys inside the state bucket. Every browsing context (dashboard
// tab, CLI, another process) reads and writes these same keys; there is no
// arbitration beyond last writer wins.
const (
	KeyConfig     = "config"
	KeyAdmitted   = "patients.admitted"
	KeyDischarged = "patients.discharged"
)

// Store is the persistence contract shared by the workflows and the web
// layer. Implementations must treat an absent or unparsable value as "no
// data", never as a fatal error, and must log (not propagate) best-effort
// write failures where the method doc says so.
type Store interface {
	// LoadConfig returns the hospital configuration, or an empty config on
	// first run. Never fails on absent or corrupt data.
	LoadConfig(ctx context.Context) (*domain.HospitalConfig, error)
	// SaveConfig persists the configuration blob. Best effort.
	SaveConfig(ctx context.Context, cfg *domain.HospitalConfig) error

	// ListAdmitted returns the currently admitted patients, empty on first run.
	ListAdmitted(ctx context.Context) ([]domain.Patient, error)
	// SaveAdmitted replaces the admitted collection. A failure here is
	// reported: the admission workflow must not claim a commit that did not
	// land.
	SaveAdmitted(ctx context.Context, patients []domain.Patient) error

	// ListDischarged returns the archive, most recent first.
	ListDischarged(ctx context.Context) ([]domain.Patient, error)
	SaveDischarged(ctx context.Context, patients []domain.Patient) error

	// AppendNotification appends one notification to a staff member's feed.
	AppendNotification(ctx context.Context, staffID string, n domain.Notification) error
	// Notifications returns a staff member's feed, empty when none exist.
	Notifications(ctx context.Context, staffID string) ([]domain.Notification, error)

	// IncrStat bumps a counter, SetStat records a value, Stats dumps all
	// counters. All best effort.
	IncrStat(ctx context.Context, key string)
	SetStat(ctx context.Context, key, value string)
	Stats(ctx context.Context) (map[string]string, error)

	// Watch delivers the latest value written under key by any context,
	// including this one. Advisory only: rapid writes may be coalesced and a
	// handler may never see intermediate values. The returned stop function
	// cancels the subscription.
	Watch(ctx context.Context, key string, handler func(value []byte)) (stop func(), err error)
}
