package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/redis/go-redis/v9"
)

// WizardStore keeps booking wizard sessions. Get returns nil, nil for an
// unknown or expired session.
type WizardStore interface {
	Get(ctx context.Context, id string) (*entities.WizardState, error)
	Save(ctx context.Context, state *entities.WizardState) error
	Delete(ctx context.Context, id string) error
	// AcquireSubmit reserves the single in-flight submission of a session.
	AcquireSubmit(ctx context.Context, id string, ttl time.Duration) (bool, error)
	ReleaseSubmit(ctx context.Context, id string) error
}

type redisWizardStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisWizardStore(client *redis.Client, ttl time.Duration) WizardStore {
	return &redisWizardStore{client: client, ttl: ttl}
}

func wizardKey(id string) string { return "wizard:" + id }
func submitKey(id string) string { return "wizard:" + id + ":submit" }

func (s *redisWizardStore) Get(ctx context.Context, id string) (*entities.WizardState, error) {
	raw, err := s.client.Get(ctx, wizardKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var state entities.WizardState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *redisWizardStore) Save(ctx context.Context, state *entities.WizardState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, wizardKey(state.ID), raw, s.ttl).Err()
}

func (s *redisWizardStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, wizardKey(id), submitKey(id)).Err()
}

func (s *redisWizardStore) AcquireSubmit(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, submitKey(id), "1", ttl).Result()
}

func (s *redisWizardStore) ReleaseSubmit(ctx context.Context, id string) error {
	return s.client.Del(ctx, submitKey(id)).Err()
}

// memoryWizardStore is used when no Redis address is configured.
type memoryWizardStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	inFlight map[string]time.Time
	now      func() time.Time
}

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

func NewMemoryWizardStore(ttl time.Duration) WizardStore {
	return &memoryWizardStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
		inFlight: make(map[string]time.Time),
		now:      time.Now,
	}
}

func (s *memoryWizardStore) Get(_ context.Context, id string) (*entities.WizardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return nil, nil
	}
	var state entities.WizardState
	if err := json.Unmarshal(entry.raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *memoryWizardStore) Save(_ context.Context, state *entities.WizardState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions[state.ID] = memoryEntry{raw: raw, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *memoryWizardStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	delete(s.inFlight, id)
	s.mu.Unlock()
	return nil
}

func (s *memoryWizardStore) AcquireSubmit(_ context.Context, id string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if until, ok := s.inFlight[id]; ok && s.now().Before(until) {
		return false, nil
	}
	s.inFlight[id] = s.now().Add(ttl)
	return true, nil
}

func (s *memoryWizardStore) ReleaseSubmit(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.inFlight, id)
	s.mu.Unlock()
	return nil
}
