package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a session id is unknown or has expired.
var ErrNotFound = errors.New("session not found")

// Store keeps active sessions server-side in Redis, keyed by a random session
// id. Destroying the key is what actually logs a user out, regardless of any
// cookie the client still holds.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(redisURL, password string, ttl time.Duration) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Store{client: client, ttl: ttl}, nil
}

func sessionKey(sid string) string {
	return "session:" + sid
}

// Create registers a new session for the user and returns its id.
func (s *Store) Create(ctx context.Context, userID int64) (string, error) {
	sid := uuid.New().String()
	err := s.client.Set(ctx, sessionKey(sid), strconv.FormatInt(userID, 10), s.ttl).Err()
	if err != nil {
		return "", err
	}
	return sid, nil
}

// Resolve returns the user id owning the session, or ErrNotFound.
func (s *Store) Resolve(ctx context.Context, sid string) (int64, error) {
	value, err := s.client.Get(ctx, sessionKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

// Destroy removes the session. Destroying an unknown session is not an error.
func (s *Store) Destroy(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionKey(sid)).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
