package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/torfinnnome/fremgang/internal/models"
	"github.com/torfinnnome/fremgang/internal/repository"
)

type fakeUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (s *fakeUserStore) Create(_ context.Context, email, passwordHash string) (int64, error) {
	if _, ok := s.users[email]; ok {
		return 0, repository.ErrDuplicateEmail
	}
	s.nextID++
	s.users[email] = &models.User{ID: s.nextID, Email: email, PasswordHash: passwordHash}
	return s.nextID, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func TestRegisterStoresBcryptHash(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, "test-secret")

	id, err := svc.Register(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	stored := store.users["a@x.com"]
	require.NotEqual(t, "pw1", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")))

	cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
	require.NoError(t, err)
	require.Equal(t, 10, cost)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, "test-secret")

	_, err := svc.Register(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "a@x.com", "other")
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, "test-secret")

	_, err := svc.Register(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), "a@x.com", "nope")
	_, unknownEmail := svc.Login(context.Background(), "b@x.com", "pw1")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginTokenRoundTrip(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, "test-secret")

	id, err := svc.Register(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, id, userID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store, "test-secret")

	_, err := svc.Register(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)
	token, err := svc.Login(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)

	other := NewAuthService(store, "other-secret")
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), "test-secret")

	claims := tokenClaims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(expired)
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), "test-secret")

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}
