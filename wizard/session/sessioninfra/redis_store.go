package sessioninfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jinhyuk-lee/resumate/pkg/kernel"
	"github.com/jinhyuk-lee/resumate/wizard/session"
)

const sessionKeyPrefix = "wizard:session:"

// RedisStore keeps sessions in Redis with a TTL. Sessions stay transient
// (the TTL bounds their lifetime) but survive process restarts, which lets
// multiple API instances share one wizard session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id kernel.SessionID) string {
	return sessionKeyPrefix + id.String()
}

func (s *RedisStore) Create(ctx context.Context, sess *session.Session) error {
	return s.write(ctx, sess)
}

func (s *RedisStore) Get(ctx context.Context, id kernel.SessionID) (*session.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, session.ErrSessionNotFound().WithDetail("session_id", id.String())
	}
	if err != nil {
		return nil, session.ErrRegistry.NewWithCause(session.CodeStoreFailure, err).
			WithDetail("session_id", id.String())
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, session.ErrRegistry.NewWithCause(session.CodeStoreFailure, err).
			WithDetail("session_id", id.String())
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *session.Session) error {
	exists, err := s.client.Exists(ctx, sessionKey(sess.ID)).Result()
	if err != nil {
		return session.ErrRegistry.NewWithCause(session.CodeStoreFailure, err).
			WithDetail("session_id", sess.ID.String())
	}
	if exists == 0 {
		return session.ErrSessionNotFound().WithDetail("session_id", sess.ID.String())
	}
	return s.write(ctx, sess)
}

func (s *RedisStore) Delete(ctx context.Context, id kernel.SessionID) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return session.ErrRegistry.NewWithCause(session.CodeStoreFailure, err).
			WithDetail("session_id", id.String())
	}
	return nil
}

func (s *RedisStore) write(ctx context.Context, sess *session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", sess.ID, err)
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), data, s.ttl).Err(); err != nil {
		return session.ErrRegistry.NewWithCause(session.CodeStoreFailure, err).
			WithDetail("session_id", sess.ID.String())
	}
	return nil
}
