package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/domain"
	hcnats "github.com/gudururanadheer/Hospital-command-center-Samartha/internal/nats"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/store"
)

// Store persists hospital state in JetStream KV buckets. It is the shared,
// unguarded storage of the system: every context reads and writes the same
// keys, last writer wins, and the KV watcher is the only change signal.
type Store struct {
	state  jetstream.KeyValue
	notify jetstream.KeyValue
	stats  jetstream.KeyValue
}

var _ store.Store = (*Store)(nil)

func New(ctx context.Context, js jetstream.JetStream) (*Store, error) {
	state, err := js.KeyValue(ctx, hcnats.StateBucket)
	if err != nil {
		return nil, fmt.Errorf("state bucket unavailable: %w", err)
	}
	notify, err := js.KeyValue(ctx, hcnats.NotifyBucket)
	if err != nil {
		return nil, fmt.Errorf("notify bucket unavailable: %w", err)
	}
	stats, err := js.KeyValue(ctx, hcnats.StatsBucket)
	if err != nil {
		return nil, fmt.Errorf("stats bucket unavailable: %w", err)
	}
	return &Store{state: state, notify: notify, stats: stats}, nil
}

// loadJSON reads key into v. Absent keys and unparsable values both count as
// "no data": the caller gets found=false and carries on with empty state.
func loadJSON(ctx context.Context, kv jetstream.KeyValue, key string, v any) (bool, error) {
	entry, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(entry.Value(), v); err != nil {
		slog.Warn("Discarding unparsable stored value", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func saveJSON(ctx context.Context, kv jetstream.KeyValue, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not serialize %s: %w", key, err)
	}
	if _, err := kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("could not persist %s: %w", key, err)
	}
	return nil
}

func (s *Store) LoadConfig(ctx context.Context) (*domain.HospitalConfig, error) {
	cfg := &domain.HospitalConfig{}
	// First run: absent config means an unconfigured hospital, never defaults.
	if _, err := loadJSON(ctx, s.state, store.KeyConfig, cfg); err != nil {
		slog.Warn("Config read failed, treating as empty", "error", err)
		return &domain.HospitalConfig{}, nil
	}
	return cfg, nil
}

func (s *Store) SaveConfig(ctx context.Context, cfg *domain.HospitalConfig) error {
	if err := saveJSON(ctx, s.state, store.KeyConfig, cfg); err != nil {
		slog.Error("Config save failed", "error", err)
		return err
	}
	return nil
}

func (s *Store) ListAdmitted(ctx context.Context) ([]domain.Patient, error) {
	var patients []domain.Patient
	if _, err := loadJSON(ctx, s.state, store.KeyAdmitted, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (s *Store) SaveAdmitted(ctx context.Context, patients []domain.Patient) error {
	return saveJSON(ctx, s.state, store.KeyAdmitted, patients)
}

func (s *Store) ListDischarged(ctx context.Context) ([]domain.Patient, error) {
	var patients []domain.Patient
	if _, err := loadJSON(ctx, s.state, store.KeyDischarged, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (s *Store) SaveDischarged(ctx context.Context, patients []domain.Patient) error {
	return saveJSON(ctx, s.state, store.KeyDischarged, patients)
}

func (s *Store) AppendNotification(ctx context.Context, staffID string, n domain.Notification) error {
	var feed []domain.Notification
	if _, err := loadJSON(ctx, s.notify, staffID, &feed); err != nil {
		return err
	}
	feed = append(feed, n)
	return saveJSON(ctx, s.notify, staffID, feed)
}

func (s *Store) Notifications(ctx context.Context, staffID string) ([]domain.Notification, error) {
	var feed []domain.Notification
	if _, err := loadJSON(ctx, s.notify, staffID, &feed); err != nil {
		return nil, err
	}
	return feed, nil
}

func (s *Store) IncrStat(ctx context.Context, key string) {
	val := 0
	if entry, err := s.stats.Get(ctx, key); err == nil {
		val, _ = strconv.Atoi(string(entry.Value()))
	}
	if _, err := s.stats.Put(ctx, key, []byte(strconv.Itoa(val+1))); err != nil {
		slog.Warn("Stat update failed", "key", key, "error", err)
	}
}

func (s *Store) SetStat(ctx context.Context, key, value string) {
	if _, err := s.stats.Put(ctx, key, []byte(value)); err != nil {
		slog.Warn("Stat update failed", "key", key, "error", err)
	}
}

func (s *Store) Stats(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	keys, err := s.stats.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return out, nil
		}
		return nil, err
	}
	for _, key := range keys {
		entry, err := s.stats.Get(ctx, key)
		if err != nil {
			continue
		}
		out[key] = string(entry.Value())
	}
	return out, nil
}

func (s *Store) Watch(ctx context.Context, key string, handler func(value []byte)) (func(), error) {
	watcher, err := s.state.Watch(ctx, key, jetstream.UpdatesOnly())
	if err != nil {
		return nil, fmt.Errorf("could not watch %s: %w", key, err)
	}

	go func() {
		for entry := range watcher.Updates() {
			// The watcher emits a nil marker once the initial replay is done,
			// and delete/purge entries carry no value worth forwarding.
			if entry == nil || entry.Operation() != jetstream.KeyValuePut {
				continue
			}
			handler(entry.Value())
		}
	}()

	return func() {
		if err := watcher.Stop(); err != nil {
			slog.Debug("Watcher stop failed", "key", key, "error", err)
		}
	}, nil
}
