package app

import (
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
	"github.com/campusbridge/campus-bridge/internal/services"
)

type Services struct {
	Auth    services.AuthService
	Student services.StudentService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")

	// A nil *SessionRevocations must not become a non-nil interface.
	var revoker services.SessionRevoker
	if clients.SessionRevocations != nil {
		revoker = clients.SessionRevocations
	}

	return Services{
		Auth:    services.NewAuthService(log, reposet.User, revoker, cfg.JWTSecretKey, cfg.SessionTTL),
		Student: services.NewStudentService(log, reposet.Course),
	}
}
