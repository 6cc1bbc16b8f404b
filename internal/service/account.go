package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/flavioscarvalho/agendamento-servico/internal/auth"
	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
	"github.com/flavioscarvalho/agendamento-servico/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 4

type AccountService struct {
	repo       ports.AccountRepo
	roles      ports.RoleResolver
	tokens     *auth.TokenManager
	accessCode string
}

func NewAccountService(
	repo ports.AccountRepo,
	roles ports.RoleResolver,
	tokens *auth.TokenManager,
	accessCode string,
) *AccountService {
	return &AccountService{
		repo:       repo,
		roles:      roles,
		tokens:     tokens,
		accessCode: accessCode,
	}
}

func (s *AccountService) Register(ctx context.Context, input domain.CreateAccountInput) (*domain.Account, error) {
	if s.accessCode != "" && input.AccessCode != s.accessCode {
		return nil, domain.ErrInvalidAccessCode
	}

	username := domain.NormalizeUsername(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Role reports how the resolver classifies an identity.
func (s *AccountService) Role(username string) domain.Role {
	return s.roles.Resolve(username)
}

// Login verifies credentials and issues a token carrying the resolved
// role. A missing account and a wrong password are indistinguishable to
// the caller.
func (s *AccountService) Login(ctx context.Context, username, password string) (*domain.Account, string, error) {
	username = domain.NormalizeUsername(username)

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Username, s.roles.Resolve(account.Username))
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return account, token, nil
}
