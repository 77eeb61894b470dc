// Package memory holds an in-process Store used by tests and by any embedder
// that does not want the NATS-backed persistence. Watch handlers fire on
// every save, mirroring the advisory change feed of the KV store.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/domain"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/store"
)

type Store struct {
	mu            sync.RWMutex
	config        *domain.HospitalConfig
	admitted      []domain.Patient
	discharged    []domain.Patient
	notifications map[string][]domain.Notification
	stats         map[string]string
	watchers      map[string][]func(value []byte)
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		notifications: make(map[string][]domain.Notification),
		stats:         make(map[string]string),
		watchers:      make(map[string][]func(value []byte)),
	}
}

func (s *Store) LoadConfig(context.Context) (*domain.HospitalConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.config == nil {
		return &domain.HospitalConfig{}, nil
	}
	cp := *s.config
	return &cp, nil
}

func (s *Store) SaveConfig(_ context.Context, cfg *domain.HospitalConfig) error {
	s.mu.Lock()
	cp := *cfg
	s.config = &cp
	s.mu.Unlock()
	s.notifyWatchers(store.KeyConfig, cfg)
	return nil
}

func (s *Store) ListAdmitted(context.Context) ([]domain.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Patient(nil), s.admitted...), nil
}

func (s *Store) SaveAdmitted(_ context.Context, patients []domain.Patient) error {
	s.mu.Lock()
	s.admitted = append([]domain.Patient(nil), patients...)
	s.mu.Unlock()
	s.notifyWatchers(store.KeyAdmitted, patients)
	return nil
}

func (s *Store) ListDischarged(context.Context) ([]domain.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Patient(nil), s.discharged...), nil
}

func (s *Store) SaveDischarged(_ context.Context, patients []domain.Patient) error {
	s.mu.Lock()
	s.discharged = append([]domain.Patient(nil), patients...)
	s.mu.Unlock()
	s.notifyWatchers(store.KeyDischarged, patients)
	return nil
}

func (s *Store) AppendNotification(_ context.Context, staffID string, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[staffID] = append(s.notifications[staffID], n)
	return nil
}

func (s *Store) Notifications(_ context.Context, staffID string) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Notification(nil), s.notifications[staffID]...), nil
}

func (s *Store) IncrStat(_ context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	if v, ok := s.stats[key]; ok {
		json.Unmarshal([]byte(v), &n)
	}
	b, _ := json.Marshal(n + 1)
	s.stats[key] = string(b)
}

func (s *Store) SetStat(_ context.Context, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[key] = value
}

func (s *Store) Stats(context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.stats))
	for k, v := range s.stats {
		out[k] = v
	}
	return out, nil
}

func (s *Store) Watch(_ context.Context, key string, handler func(value []byte)) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers[key] = append(s.watchers[key], handler)
	return func() {}, nil
}

func (s *Store) notifyWatchers(key string, value any) {
	s.mu.RLock()
	handlers := append(([]func([]byte))(nil), s.watchers[key]...)
	s.mu.RUnlock()
	if len(handlers) == 0 {
		return
	}
	data, _ := json.Marshal(value)
	for _, h := range handlers {
		h(data)
	}
}
