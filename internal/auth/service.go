package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

// Account is a privileged login provisioned from configuration. Callers
// pass only accounts that are enabled.
type Account struct {
	Email    string
	Password string
	Role     Role
}

type Service struct {
	users    UserRepository
	tokens   *Tokens
	accounts []Account
	logger   *slog.Logger
}

func NewService(users UserRepository, tokens *Tokens, logger *slog.Logger, accounts ...Account) *Service {
	list := make([]Account, len(accounts))
	for i, a := range accounts {
		a.Email = normalizeEmail(a.Email)
		list[i] = a
	}
	return &Service{users: users, tokens: tokens, accounts: list, logger: logger}
}

// Login checks the configured accounts first and then the users table. The
// same ErrInvalidCredentials is returned for an unknown email and a wrong
// password.
func (s *Service) Login(ctx context.Context, email, password string) (string, User, error) {
	email = normalizeEmail(email)

	if u, ok := s.matchAccount(email, password); ok {
		return s.issue(u)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", User{}, fmt.Errorf("repo get by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", User{}, ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *Service) Register(ctx context.Context, u User, password string) (User, error) {
	u.Email = normalizeEmail(u.Email)
	u.Role = RoleUser

	for _, a := range s.accounts {
		if a.Email == u.Email {
			return User{}, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)

	created, err := s.users.Create(ctx, u)
	if errors.Is(err, ErrEmailTaken) {
		return User{}, ErrEmailTaken
	}
	if err != nil {
		return User{}, fmt.Errorf("repo create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", created.ID)
	return created, nil
}

func (s *Service) Verify(token string) (Claims, error) {
	return s.tokens.Parse(token)
}

func (s *Service) matchAccount(email, password string) (User, bool) {
	for _, a := range s.accounts {
		emailOK := subtle.ConstantTimeCompare([]byte(a.Email), []byte(email))
		passOK := subtle.ConstantTimeCompare([]byte(a.Password), []byte(password))
		if emailOK&passOK == 1 {
			return User{
				FirstName: strings.ToUpper(string(a.Role)[:1]) + string(a.Role)[1:],
				Email:     a.Email,
				Role:      a.Role,
			}, true
		}
	}
	return User{}, false
}

func (s *Service) issue(u User) (string, User, error) {
	token, err := s.tokens.Issue(u)
	if err != nil {
		return "", User{}, err
	}
	return token, u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
