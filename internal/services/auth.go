package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusbridge/campus-bridge/internal/data/repos"
	"github.com/campusbridge/campus-bridge/internal/platform/apierr"
	"github.com/campusbridge/campus-bridge/internal/platform/ctxutil"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
)

var errInvalidSession = apierr.Unauthorized("invalid_session", "invalid session")

// SessionRevoker remembers logged-out token ids until they expire.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	Identity  *ctxutil.Identity
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Authenticate(ctx context.Context, token string) (*ctxutil.Identity, error)
	Logout(ctx context.Context, token string) error
	SessionTTL() time.Duration
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	log          *logger.Logger
	userRepo     repos.UserRepo
	revoker      SessionRevoker
	jwtSecretKey []byte
	sessionTTL   time.Duration
	now          func() time.Time
}

// NewAuthService issues HS256 session tokens. revoker may be nil, in which
// case logout only clears the client cookie.
func NewAuthService(
	log *logger.Logger,
	userRepo repos.UserRepo,
	revoker SessionRevoker,
	jwtSecretKey string,
	sessionTTL time.Duration,
) AuthService {
	return &authService{
		log:          log.With("service", "AuthService"),
		userRepo:     userRepo,
		revoker:      revoker,
		jwtSecretKey: []byte(jwtSecretKey),
		sessionTTL:   sessionTTL,
		now:          time.Now,
	}
}

func (as *authService) SessionTTL() time.Duration { return as.sessionTTL }

func (as *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apierr.Unauthorized("invalid_credentials", "Invalid email or password")
	}

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return nil, apierr.Internal("load_user_failed", fmt.Errorf("load user by email: %w", err))
	}
	if len(users) == 0 || users[0] == nil {
		return nil, apierr.Unauthorized("invalid_credentials", "Invalid email or password")
	}
	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apierr.Unauthorized("invalid_credentials", "Invalid email or password")
	}

	now := as.now()
	expiresAt := now.Add(as.sessionTTL)
	claims := sessionClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(as.jwtSecretKey)
	if err != nil {
		return nil, apierr.Internal("sign_session_failed", fmt.Errorf("sign session: %w", err))
	}

	as.log.Info("User logged in", "user_id", user.ID, "role", user.Role)
	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Identity: &ctxutil.Identity{
			UserID:    user.ID,
			Role:      user.Role,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			TokenID:   claims.ID,
		},
	}, nil
}

// Authenticate resolves a session token to the caller. The role comes from
// the stored user, not the token, so role changes apply on the next request.
func (as *authService) Authenticate(ctx context.Context, token string) (*ctxutil.Identity, error) {
	claims, err := as.parse(token, true)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errInvalidSession
	}

	if as.revoker != nil {
		revoked, err := as.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, apierr.Internal("check_revocation_failed", err)
		}
		if revoked {
			return nil, errInvalidSession
		}
	}

	users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, apierr.Internal("load_user_failed", fmt.Errorf("load session user: %w", err))
	}
	if len(users) == 0 || users[0] == nil {
		return nil, errInvalidSession
	}
	user := users[0]
	return &ctxutil.Identity{
		UserID:    user.ID,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		TokenID:   claims.ID,
	}, nil
}

func (as *authService) Logout(ctx context.Context, token string) error {
	if as.revoker == nil || token == "" {
		return nil
	}
	claims, err := as.parse(token, false)
	if err != nil {
		// Nothing to revoke for a token we never issued.
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	if err := as.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return apierr.Internal("revoke_session_failed", err)
	}
	as.log.Info("User logged out", "user_id", claims.Subject)
	return nil
}

func (as *authService) parse(token string, validateClaims bool) (*sessionClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errInvalidSession
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(as.now),
	}
	if validateClaims {
		opts = append(opts, jwt.WithExpirationRequired())
	} else {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return as.jwtSecretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			as.log.Debug("Session expired", "user_id", claims.Subject)
		}
		return nil, errInvalidSession
	}
	return claims, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
