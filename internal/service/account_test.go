package service

import (
	"context"
	"testing"
	"time"

	"github.com/flavioscarvalho/agendamento-servico/internal/auth"
	"github.com/flavioscarvalho/agendamento-servico/internal/domain"
	"github.com/flavioscarvalho/agendamento-servico/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAccountService(t *testing.T, accessCode string) (*AccountService, *mocks.MockAccountRepo, *mocks.MockRoleResolver) {
	t.Helper()
	repo := mocks.NewMockAccountRepo(t)
	roles := mocks.NewMockRoleResolver(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := NewAccountService(repo, roles, tokens, accessCode)
	return svc, repo, roles
}

func TestAccountService_Register_Success(t *testing.T) {
	svc, repo, _ := newAccountService(t, "")

	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, account *domain.Account) {
			account.ID = 1
			account.CreatedAt = time.Now()
		}).
		Return(nil)

	account, err := svc.Register(context.Background(), domain.CreateAccountInput{
		Username: "  Ana.Paula ",
		Password: "s3nha",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana.paula", account.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("s3nha")))
}

func TestAccountService_Register_WrongAccessCode(t *testing.T) {
	svc, _, _ := newAccountService(t, "segredo")

	_, err := svc.Register(context.Background(), domain.CreateAccountInput{
		Username:   "ana",
		Password:   "s3nha",
		AccessCode: "errado",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidAccessCode)
}

func TestAccountService_Register_ShortPassword(t *testing.T) {
	svc, _, _ := newAccountService(t, "")

	_, err := svc.Register(context.Background(), domain.CreateAccountInput{
		Username: "ana",
		Password: "abc",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Register_EmptyUsername(t *testing.T) {
	svc, _, _ := newAccountService(t, "")

	_, err := svc.Register(context.Background(), domain.CreateAccountInput{
		Username: "   ",
		Password: "s3nha",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	svc, repo, _ := newAccountService(t, "")

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Register(context.Background(), domain.CreateAccountInput{
		Username: "ana",
		Password: "s3nha",
	})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAccountService_Login_Success(t *testing.T) {
	svc, repo, roles := newAccountService(t, "")

	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo.EXPECT().GetByUsername(mock.Anything, "diretor").
		Return(&domain.Account{ID: 1, Username: "diretor", PasswordHash: string(hash)}, nil)
	roles.EXPECT().Resolve("diretor").Return(domain.RoleApprover)

	account, token, err := svc.Login(context.Background(), " Diretor ", "s3nha")

	require.NoError(t, err)
	assert.Equal(t, "diretor", account.Username)
	assert.NotEmpty(t, token)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	svc, repo, _ := newAccountService(t, "")

	hash, err := bcrypt.GenerateFromPassword([]byte("certa"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo.EXPECT().GetByUsername(mock.Anything, "ana").
		Return(&domain.Account{ID: 1, Username: "ana", PasswordHash: string(hash)}, nil)

	_, _, err = svc.Login(context.Background(), "ana", "errada")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownAccount(t *testing.T) {
	svc, repo, _ := newAccountService(t, "")

	repo.EXPECT().GetByUsername(mock.Anything, "ghost").
		Return(nil, domain.ErrAccountNotFound)

	_, _, err := svc.Login(context.Background(), "ghost", "qualquer")

	// A missing account must look exactly like a wrong password.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAccountService_Role(t *testing.T) {
	svc, _, roles := newAccountService(t, "")

	roles.EXPECT().Resolve("ana").Return(domain.RoleRequester)

	assert.Equal(t, domain.RoleRequester, svc.Role("ana"))
}
