// File: services/reception/contextStore.go
package reception

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"frontdesk/models"

	"github.com/go-redis/redis/v8"
)

const sessionContextPrefix = "reception:ctx:"

// ContextStore persists per-session conversation state between turns.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*models.ConversationContext, error)
	Set(ctx context.Context, sessionID string, sess *models.ConversationContext) error
	Clear(ctx context.Context, sessionID string) error
}

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.ConversationContext, error) {
	key := sessionContextPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ConversationContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.ConversationContext
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, sess *models.ConversationContext) error {
	key := sessionContextPrefix + sessionID
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	key := sessionContextPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}

// MemoryContextStore keeps session state in process memory. Used in tests
// and in redis-less deployments.
type MemoryContextStore struct {
	mu       sync.Mutex
	sessions map[string]models.ConversationContext
}

func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{sessions: make(map[string]models.ConversationContext)}
}

func (s *MemoryContextStore) Get(_ context.Context, sessionID string) (*models.ConversationContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return &models.ConversationContext{}, nil
	}
	out := sess
	return &out, nil
}

func (s *MemoryContextStore) Set(_ context.Context, sessionID string, sess *models.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = *sess
	return nil
}

func (s *MemoryContextStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
