package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "taskhub/internal/auth/domain"
	authService "taskhub/internal/auth/service"
	apperrors "taskhub/internal/errors"
)

// fakeUserRepository is an in-memory UserRepository for use case tests.
type fakeUserRepository struct {
	nextID  int64
	byID    map[int64]*authDomain.User
	byEmail map[string]*authDomain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		nextID:  1,
		byID:    make(map[int64]*authDomain.User),
		byEmail: make(map[string]*authDomain.User),
	}
}

func (r *fakeUserRepository) Create(_ context.Context, user *authDomain.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return authDomain.ErrEmailAlreadyRegistered
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.nextID++
	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepository) GetByID(_ context.Context, id int64) (*authDomain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, authDomain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) GetByEmail(_ context.Context, email string) (*authDomain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, authDomain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func newTestUseCase(t *testing.T, tokenTTL time.Duration) (UseCase, *fakeUserRepository) {
	t.Helper()
	repo := newFakeUserRepository()
	uc := NewAuthUseCase(
		repo,
		authService.NewPasswordService(),
		authService.NewTokenCodec("test-secret", tokenTTL),
	)
	return uc, repo
}

func TestRegister(t *testing.T) {
	uc, _ := newTestUseCase(t, time.Hour)
	ctx := context.Background()

	user, err := uc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "Password1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "Password1", user.PasswordHash)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	uc, _ := newTestUseCase(t, time.Hour)

	user, err := uc.Register(context.Background(), RegisterInput{
		Email:    "  User@Example.COM ",
		Password: "Password1",
	})
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newTestUseCase(t, time.Hour)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "Password1"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "Password2"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
}

func TestRegister_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase(t, time.Hour)
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"missing email", RegisterInput{Password: "Password1"}},
		{"invalid email", RegisterInput{Email: "not-an-email", Password: "Password1"}},
		{"missing password", RegisterInput{Email: "a@x.com"}},
		{"weak password", RegisterInput{Email: "a@x.com", Password: "password"}},
		{"short password", RegisterInput{Email: "a@x.com", Password: "Pw1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Register(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		})
	}
}

func TestLogin(t *testing.T) {
	uc, _ := newTestUseCase(t, time.Hour)
	ctx := context.Background()

	registered, err := uc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "Password1"})
	require.NoError(t, err)

	token, err := uc.Login(ctx, LoginInput{Email: "a@x.com", Password: "Password1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The issued token resolves back to the same identity.
	user, err := uc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, registered.Email, user.Email)
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	uc, _ := newTestUseCase(t, time.Hour)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "Password1"})
	require.NoError(t, err)

	_, errUnknown := uc.Login(ctx, LoginInput{Email: "b@x.com", Password: "Password1"})
	_, errWrongPw := uc.Login(ctx, LoginInput{Email: "a@x.com", Password: "WrongPassword1"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	assert.True(t, apperrors.Is(errUnknown, apperrors.ErrUnauthorized))
	assert.True(t, apperrors.Is(errWrongPw, apperrors.ErrUnauthorized))
}

func TestLogin_InactiveUser(t *testing.T) {
	uc, repo := newTestUseCase(t, time.Hour)
	ctx := context.Background()

	user, err := uc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "Password1"})
	require.NoError(t, err)

	repo.byEmail[user.Email].IsActive = false
	repo.byID[user.ID].IsActive = false

	_, err = uc.Login(ctx, LoginInput{Email: "a@x.com", Password: "Password1"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
}

func TestValidateToken_Expired(t *testing.T) {
	uc, _ := newTestUseCase(t, -time.Minute)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "Password1"})
	require.NoError(t, err)

	token, err := uc.Login(ctx, LoginInput{Email: "a@x.com", Password: "Password1"})
	require.NoError(t, err)

	_, err = uc.ValidateToken(ctx, token)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, authDomain.ErrTokenExpired))
}

func TestValidateToken_UnknownSubject(t *testing.T) {
	repo := newFakeUserRepository()
	codec := authService.NewTokenCodec("test-secret", time.Hour)
	uc := NewAuthUseCase(repo, authService.NewPasswordService(), codec)

	// Structurally valid token for an identity that does not exist.
	token, err := codec.Issue(999)
	require.NoError(t, err)

	_, err = uc.ValidateToken(context.Background(), token)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
}

func TestValidateToken_Garbage(t *testing.T) {
	uc, _ := newTestUseCase(t, time.Hour)

	_, err := uc.ValidateToken(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
}
