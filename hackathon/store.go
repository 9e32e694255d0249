package hackathon

import (
	"context"
	"fmt"
	"sync"

	"github.com/xy-planning-network/hackathons/domain"
	"github.com/xy-planning-network/hackathons/logger"
)

// API is the part of the backend a Store depends on.
type API interface {
	CreateHackathon(ctx context.Context, form domain.Form) error
	ListHackathons(ctx context.Context) ([]domain.Hackathon, error)
	GetHackathon(ctx context.Context, id domain.ID) (domain.Hackathon, error)
	UpdateHackathon(ctx context.Context, id domain.ID, form domain.Form) error
	DeleteHackathon(ctx context.Context, id domain.ID) error
}

// A Store performs CRUD operations against an API and caches the results of reads.
type Store struct {
	api    API
	logger logger.Logger

	listMu     sync.Mutex
	hackathons []domain.Hackathon
	listed     bool

	itemMu    sync.Mutex
	hackathon domain.Hackathon
	viewed    bool
}

// A StoreOption configures a *Store.
type StoreOption func(*Store)

// WithLogger logs failed operations at the warn level.
func WithLogger(l logger.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore constructs a *Store with both slots unset.
func NewStore(api API, opts ...StoreOption) *Store {
	s := &Store{api: api}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create submits form to the backend then refreshes the collection.
//
// If creating fails, the refresh is skipped.
// If the refresh fails, the Hackathon has still been created
// and the collection keeps its prior value.
func (s *Store) Create(ctx context.Context, form domain.Form) error {
	if err := s.api.CreateHackathon(ctx, form); err != nil {
		s.warn("failed creating hackathon", err, nil)
		return fmt.Errorf("failed creating hackathon: %w", err)
	}

	return s.List(ctx)
}

// List replaces the cached collection with the backend's.
func (s *Store) List(ctx context.Context) error {
	hs, err := s.api.ListHackathons(ctx)
	if err != nil {
		s.warn("failed listing hackathons", err, nil)
		return fmt.Errorf("failed listing hackathons: %w", err)
	}

	s.setHackathons(hs)
	return nil
}

// View replaces the cached Hackathon with the one identified by id.
func (s *Store) View(ctx context.Context, id domain.ID) error {
	h, err := s.api.GetHackathon(ctx, id)
	if err != nil {
		s.warn("failed viewing hackathon", err, map[string]any{"id": id})
		return fmt.Errorf("failed viewing hackathon %s: %w", id, err)
	}

	s.setHackathon(h)
	return nil
}

// Update submits form as a partial update to the Hackathon identified by id.
// Neither slot is refreshed.
func (s *Store) Update(ctx context.Context, id domain.ID, form domain.Form) error {
	if err := s.api.UpdateHackathon(ctx, id, form); err != nil {
		s.warn("failed updating hackathon", err, map[string]any{"id": id})
		return fmt.Errorf("failed updating hackathon %s: %w", id, err)
	}

	return nil
}

// Delete deletes the Hackathon identified by id.
// Neither slot is refreshed and the Hackathon is not evicted from them.
func (s *Store) Delete(ctx context.Context, id domain.ID) error {
	if err := s.api.DeleteHackathon(ctx, id); err != nil {
		s.warn("failed deleting hackathon", err, map[string]any{"id": id})
		return fmt.Errorf("failed deleting hackathon %s: %w", id, err)
	}

	return nil
}

// Hackathons returns a deep copy of the cached collection
// and whether a list has ever succeeded.
func (s *Store) Hackathons() ([]domain.Hackathon, bool) {
	s.listMu.Lock()
	defer s.listMu.Unlock()

	if !s.listed {
		return nil, false
	}

	hs := make([]domain.Hackathon, len(s.hackathons))
	for i, h := range s.hackathons {
		hs[i] = h.Clone()
	}

	return hs, true
}

// Hackathon returns a copy of the cached Hackathon
// and whether a view has ever succeeded.
func (s *Store) Hackathon() (domain.Hackathon, bool) {
	s.itemMu.Lock()
	defer s.itemMu.Unlock()
	return s.hackathon.Clone(), s.viewed
}

func (s *Store) setHackathons(hs []domain.Hackathon) {
	if hs == nil {
		hs = make([]domain.Hackathon, 0)
	}

	s.listMu.Lock()
	defer s.listMu.Unlock()
	s.hackathons = hs
	s.listed = true
}

func (s *Store) setHackathon(h domain.Hackathon) {
	s.itemMu.Lock()
	defer s.itemMu.Unlock()
	s.hackathon = h
	s.viewed = true
}

func (s *Store) warn(msg string, err error, data map[string]any) {
	if s.logger == nil {
		return
	}

	s.logger.Warn(msg, &logger.LogContext{Error: err, Data: data})
}
