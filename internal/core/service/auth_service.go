package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopforge/commerce-api/internal/api/metrics"
	"github.com/shopforge/commerce-api/internal/core/domain"
	"github.com/shopforge/commerce-api/internal/core/password"
	"github.com/shopforge/commerce-api/internal/core/ports"
	"github.com/shopforge/commerce-api/internal/core/token"
)

// LoginLimiter throttles repeated failed logins per email. bcrypt
// verification is expensive, so the check runs before any hashing.
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
}

// AuditSink accepts auth events for asynchronous recording.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}

// AuthService implements signup and login. Limiter and audit may be nil;
// both are side channels that never gate the happy path on their own
// availability.
type AuthService struct {
	repo    ports.AuthRepository
	issuer  *token.Issuer
	limiter LoginLimiter
	audit   AuditSink
	logger  zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, issuer *token.Issuer, limiter LoginLimiter, audit AuditSink, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, limiter: limiter, audit: audit, logger: logger}
}

// Signup creates a user and returns a freshly issued token.
//
// The FindByEmail pre-check is advisory: two concurrent signups with the
// same email can both pass it. The repository's unique-email constraint
// is the real guarantee, and its duplicate error maps to ErrUserExists
// as well. Persistence failures other than a duplicate are masked as
// ErrSignupFailed so the response never reveals which step broke.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (string, *domain.User, error) {
	if !in.Role.Valid() {
		return "", nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		s.recordAudit(in.Email, domain.AuditActionSignup, domain.AuditOutcomeFailure, "duplicate email")
		return "", nil, domain.ErrUserExists
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("password hashing failed")
		return "", nil, domain.ErrSignupFailed
	}

	user := &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if err == domain.ErrUserExists {
			s.recordAudit(in.Email, domain.AuditActionSignup, domain.AuditOutcomeFailure, "duplicate email")
			return "", nil, err
		}
		s.logger.Error().Err(err).Str("email", in.Email).Msg("user creation failed")
		s.recordAudit(in.Email, domain.AuditActionSignup, domain.AuditOutcomeFailure, "storage error")
		return "", nil, domain.ErrSignupFailed
	}

	tkn, err := s.issuer.Issue(token.Claims{UserID: created.ID, Role: created.Role})
	if err != nil {
		s.logger.Error().Err(err).Msg("token issuance failed")
		return "", nil, err
	}

	metrics.SignupsTotal.WithLabelValues(string(created.Role)).Inc()
	s.recordAudit(in.Email, domain.AuditActionSignup, domain.AuditOutcomeSuccess, "")
	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user signed up")

	return tkn, created, nil
}

// Login verifies credentials and returns a token carrying the user's
// role as of now. The role inside an already-issued token is never
// refreshed; a role change takes effect only on the next login.
func (s *AuthService) Login(ctx context.Context, email, plain string) (string, *domain.User, error) {
	if s.limiter != nil {
		blocked, err := s.limiter.TooManyAttempts(ctx, email)
		if err != nil {
			// Limiter trouble must not take logins down with it.
			s.logger.Warn().Err(err).Msg("login limiter unavailable, proceeding")
		} else if blocked {
			metrics.AuthFailuresTotal.WithLabelValues("rate_limited").Inc()
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("unknown_email").Inc()
		s.recordAudit(email, domain.AuditActionLogin, domain.AuditOutcomeFailure, "unknown email")
		return "", nil, err
	}

	ok, err := password.Verify(plain, user.PasswordHash)
	if err != nil {
		// Malformed stored hash is an internal fault, not a bad password.
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("stored password hash unusable")
		return "", nil, err
	}
	if !ok {
		if s.limiter != nil {
			if err := s.limiter.RecordFailure(ctx, email); err != nil {
				s.logger.Warn().Err(err).Msg("failed to record login failure")
			}
		}
		metrics.AuthFailuresTotal.WithLabelValues("bad_password").Inc()
		s.recordAudit(email, domain.AuditActionLogin, domain.AuditOutcomeFailure, "bad password")
		return "", nil, domain.ErrInvalidPassword
	}

	tkn, err := s.issuer.Issue(token.Claims{UserID: user.ID, Role: user.Role})
	if err != nil {
		s.logger.Error().Err(err).Msg("token issuance failed")
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues(string(user.Role)).Inc()
	s.recordAudit(email, domain.AuditActionLogin, domain.AuditOutcomeSuccess, "")
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return tkn, user, nil
}

func (s *AuthService) recordAudit(email, action, outcome, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuthEvent{
		Email:     email,
		Action:    action,
		Outcome:   outcome,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}
