package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/campusbridge/campus-bridge/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestRevokeSkipsEmptyAndExpired(t *testing.T) {
	// nil client: any redis call would panic.
	s := &SessionRevocations{log: testLogger(t)}
	ctx := context.Background()

	if err := s.Revoke(ctx, "", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("empty id: %v", err)
	}
	if err := s.Revoke(ctx, "jti", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("expired: %v", err)
	}
	if revoked, err := s.IsRevoked(ctx, ""); err != nil || revoked {
		t.Fatalf("empty id lookup: revoked=%v err=%v", revoked, err)
	}
}

func TestNewSessionRevocationsRequiresAddr(t *testing.T) {
	if _, err := NewSessionRevocations(testLogger(t), Config{}); err == nil {
		t.Fatalf("expected error without address")
	}
}

func TestSessionRevocationsIntegration(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis integration tests")
	}
	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	s := NewSessionRevocationsWithClient(testLogger(t), rdb)
	ctx := context.Background()
	jti := uuid.NewString()

	if revoked, err := s.IsRevoked(ctx, jti); err != nil || revoked {
		t.Fatalf("before revoke: revoked=%v err=%v", revoked, err)
	}
	if err := s.Revoke(ctx, jti, time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if revoked, err := s.IsRevoked(ctx, jti); err != nil || !revoked {
		t.Fatalf("after revoke: revoked=%v err=%v", revoked, err)
	}
	ttl, err := rdb.TTL(ctx, key(jti)).Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Fatalf("ttl: %s err=%v", ttl, err)
	}
}
