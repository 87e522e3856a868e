package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/campusbridge/campus-bridge/internal/platform/logger"
)

const revokedSessionPrefix = "campusbridge:session:revoked"

type Config struct {
	Addr     string
	Password string
	DB       int
}

// SessionRevocations is the logout list: a key per revoked token id that
// lives only as long as the token would have.
type SessionRevocations struct {
	log *logger.Logger
	rdb goredis.UniversalClient
}

func NewSessionRevocations(log *logger.Logger, cfg Config) (*SessionRevocations, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewSessionRevocationsWithClient(log, rdb), nil
}

func NewSessionRevocationsWithClient(log *logger.Logger, rdb goredis.UniversalClient) *SessionRevocations {
	return &SessionRevocations{log: log.With("client", "SessionRevocations"), rdb: rdb}
}

// Revoke marks tokenID revoked until expiresAt. Already expired tokens are
// ignored.
func (s *SessionRevocations) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, key(tokenID), "logout", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *SessionRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := s.rdb.Exists(ctx, key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check session revocation: %w", err)
	}
	return n > 0, nil
}

func (s *SessionRevocations) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *SessionRevocations) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}

func key(tokenID string) string {
	return revokedSessionPrefix + ":" + tokenID
}
