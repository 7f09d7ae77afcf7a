package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

type tokenAuthenticator interface {
	ObtainToken(ctx context.Context, username, password string) (models.TokenPair, error)
}

type sessionTokenStore interface {
	Access() string
	Save(access, refresh string) error
	Clear() error
}

// SessionService owns the console session: it exchanges credentials for
// upstream tokens and persists them for the transport to pick up.
type SessionService struct {
	upstream  tokenAuthenticator
	tokens    sessionTokenStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSessionService constructs a SessionService instance.
func NewSessionService(upstream tokenAuthenticator, tokens sessionTokenStore, validate *validator.Validate, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SessionService{upstream: upstream, tokens: tokens, validator: validate, logger: logger}
}

// Login exchanges credentials for tokens and persists them. On rejection
// nothing is stored and the caller always sees the same credentials error.
func (s *SessionService) Login(ctx context.Context, req dto.LoginRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	pair, err := s.upstream.ObtainToken(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, appErrors.ErrInvalidCredentials) {
			return appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return err
	}

	if err := s.tokens.Save(pair.Access, pair.Refresh); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session tokens")
	}

	s.logTokenExpiry(pair.Access)
	return nil
}

// Logout discards the persisted session tokens.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.tokens.Clear(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear session tokens")
	}
	return nil
}

// Status reports whether a session token is currently present. The token
// is not validated here; the upstream remains the authority and an expired
// token surfaces as an unauthorized error on the next request.
func (s *SessionService) Status() dto.SessionStatus {
	return dto.SessionStatus{Authenticated: s.tokens.Access() != ""}
}

// logTokenExpiry decodes the access token without verifying its signature
// purely to log when the session will lapse. The upstream signs with a key
// the gateway does not hold, so verification is impossible here.
func (s *SessionService) logTokenExpiry(access string) {
	token, _, err := jwt.NewParser().ParseUnverified(access, jwt.MapClaims{})
	if err != nil {
		s.logger.Debug("session token is not a parseable JWT", zap.Error(err))
		return
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	s.logger.Info("session established", zap.Time("token_expires_at", exp.Time))
}
