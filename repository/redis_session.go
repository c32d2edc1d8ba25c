package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"negotiation-agent/domain"
)

type RedisSessionStore struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

// NewRedisSessionStore connects to Redis at addr. Sessions expire after ttl;
// a zero ttl keeps them forever.
func NewRedisSessionStore(addr string, ttl time.Duration) *RedisSessionStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisSessionStore{
		client: rdb,
		ctx:    context.Background(),
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return "negotiation:session:" + id
}

func (r *RedisSessionStore) Get(id string) (domain.NegotiationSession, bool) {
	val, err := r.client.Get(r.ctx, sessionKey(id)).Result()
	if err != nil {
		return domain.NegotiationSession{}, false
	}
	var session domain.NegotiationSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return domain.NegotiationSession{}, false
	}
	return session, true
}

func (r *RedisSessionStore) Save(id string, session domain.NegotiationSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, sessionKey(id), data, r.ttl).Err()
}
