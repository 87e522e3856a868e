package app

import (
	"fmt"

	"github.com/campusbridge/campus-bridge/internal/clients/redis"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
)

type Clients struct {
	SessionRevocations *redis.SessionRevocations
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis (optional)
	var revocations *redis.SessionRevocations
	if cfg.Redis.Addr != "" {
		r, err := redis.NewSessionRevocations(log, cfg.Redis)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis session revocations: %w", err)
		}
		revocations = r
	} else {
		log.Warn("REDIS_ADDR not set, logout will not revoke issued sessions")
	}

	return Clients{SessionRevocations: revocations}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.SessionRevocations != nil {
		_ = c.SessionRevocations.Close()
	}
}
