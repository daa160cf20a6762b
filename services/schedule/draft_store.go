package schedule

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"tutorhive/models"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "avail:draft:"

// DraftStore persists in-progress weekly edit drafts between requests.
type DraftStore interface {
	Get(ctx context.Context, tutorID, draftID string) (*models.ScheduleDraft, error)
	Put(ctx context.Context, draft *models.ScheduleDraft) error
	Delete(ctx context.Context, tutorID, draftID string) error
}

// RedisDraftStore keeps drafts in Redis with a TTL so abandoned editing
// sessions age out on their own.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func draftKey(tutorID, draftID string) string {
	return draftKeyPrefix + tutorID + ":" + draftID
}

func (s *RedisDraftStore) Get(ctx context.Context, tutorID, draftID string) (*models.ScheduleDraft, error) {
	data, err := s.client.Get(ctx, draftKey(tutorID, draftID)).Result()
	if err == redis.Nil {
		return nil, NewDraftNotFoundError(draftID)
	}
	if err != nil {
		return nil, err
	}
	var draft models.ScheduleDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *RedisDraftStore) Put(ctx context.Context, draft *models.ScheduleDraft) error {
	b, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKey(draft.TutorID, draft.ID), b, s.ttl).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, tutorID, draftID string) error {
	return s.client.Del(ctx, draftKey(tutorID, draftID)).Err()
}

// MemoryDraftStore is an in-process DraftStore for tests and local runs
// without Redis.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string]*models.ScheduleDraft
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]*models.ScheduleDraft)}
}

func (s *MemoryDraftStore) Get(_ context.Context, tutorID, draftID string) (*models.ScheduleDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[draftKey(tutorID, draftID)]
	if !ok {
		return nil, NewDraftNotFoundError(draftID)
	}
	// Round-trip through JSON so callers cannot mutate stored state in place,
	// matching the Redis store's behavior.
	b, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}
	var out models.ScheduleDraft
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MemoryDraftStore) Put(_ context.Context, draft *models.ScheduleDraft) error {
	b, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	var out models.ScheduleDraft
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draftKey(draft.TutorID, draft.ID)] = &out
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, tutorID, draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, draftKey(tutorID, draftID))
	return nil
}
