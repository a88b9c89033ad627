package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"blog-backend/internal/domains/auth/model"
	usermodel "blog-backend/internal/domains/user/model"
	"blog-backend/pkg/hashing"
	"blog-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *usermodel.User) (*usermodel.User, error) {
	args := m.Called(ctx, u)
	if v := args.Get(0); v != nil {
		return v.(*usermodel.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*usermodel.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*usermodel.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*usermodel.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*usermodel.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id int, changes usermodel.UserChanges) (*usermodel.User, error) {
	args := m.Called(ctx, id, changes)
	if v := args.Get(0); v != nil {
		return v.(*usermodel.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) DeleteByEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *mockCache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCache) IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	args := m.Called(ctx, key, window)
	return args.Get(0).(int64), args.Error(1)
}

// countingHasher records how many password comparisons a call makes.
type countingHasher struct {
	*hashing.Hasher
	verifies int
}

func (h *countingHasher) Verify(password, digest string) bool {
	h.verifies++
	return h.Hasher.Verify(password, digest)
}

const (
	testEmail    = "ada@example.com"
	testPassword = "secret1"
	testKey      = "login:failed:ada@example.com"
)

var throttle = ThrottleConfig{MaxAttempts: 3, Window: 15 * time.Minute}

func hashed(t *testing.T) string {
	t.Helper()
	digest, err := hashing.NewHasher(bcrypt.MinCost).Hash(testPassword)
	require.NoError(t, err)
	return digest
}

func newService(repo *mockUserRepo, c *mockCache) (ServiceInterface, *jwt.Manager) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	if c == nil {
		return NewAuthService(repo, hashing.NewHasher(bcrypt.MinCost), tokens, nil, throttle), tokens
	}
	return NewAuthService(repo, hashing.NewHasher(bcrypt.MinCost), tokens, c, throttle), tokens
}

func TestRegister(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("ExistsByEmail", mock.Anything, testEmail).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *usermodel.User) bool {
		return u.Email == testEmail && u.PasswordHash != testPassword
	})).Return(&usermodel.User{ID: 1, Firstname: "Ada", Lastname: "L", Email: testEmail}, nil)

	svc, _ := newService(repo, nil)
	got, err := svc.Register(context.Background(), model.RegisterRequest{
		Firstname: "Ada", Lastname: "L", Email: "Ada@Example.com", Password: testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	repo.AssertExpectations(t)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newService(repo, nil)

	_, err := svc.Register(context.Background(), model.RegisterRequest{Email: "nope", Password: "x"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	req := model.RegisterRequest{Firstname: "Ada", Lastname: "L", Email: testEmail, Password: testPassword}

	t.Run("caught by pre-check", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("ExistsByEmail", mock.Anything, testEmail).Return(true, nil)
		svc, _ := newService(repo, nil)

		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrEmailAlreadyExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("caught by unique constraint", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("ExistsByEmail", mock.Anything, testEmail).Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, usermodel.ErrEmailAlreadyExists)
		svc, _ := newService(repo, nil)

		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrEmailAlreadyExists)
	})
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, testEmail).
		Return(&usermodel.User{ID: 42, Email: testEmail, PasswordHash: hashed(t)}, nil)

	svc, tokens := newService(repo, nil)
	got, err := svc.Login(context.Background(), model.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	claims, err := tokens.VerifyToken(got.Token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.True(t, got.ExpiresAt.After(time.Now()))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, testEmail).
		Return(&usermodel.User{ID: 42, Email: testEmail, PasswordHash: hashed(t)}, nil)
	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, usermodel.ErrUserNotFound)

	svc, _ := newService(repo, nil)
	_, wrongPassword := svc.Login(context.Background(), model.LoginRequest{Email: testEmail, Password: "wrong-one"})
	_, unknownEmail := svc.Login(context.Background(), model.LoginRequest{Email: "ghost@example.com", Password: testPassword})

	assert.ErrorIs(t, wrongPassword, model.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, model.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginUnknownEmailStillComparesPassword(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, testEmail).
		Return(&usermodel.User{ID: 42, Email: testEmail, PasswordHash: hashed(t)}, nil)
	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, usermodel.ErrUserNotFound)

	hasher := &countingHasher{Hasher: hashing.NewHasher(bcrypt.MinCost)}
	svc := NewAuthService(repo, hasher, jwt.NewManager("test-secret", time.Hour), nil, throttle)

	_, err := svc.Login(context.Background(), model.LoginRequest{Email: "ghost@example.com", Password: testPassword})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	assert.Equal(t, 1, hasher.verifies)

	_, err = svc.Login(context.Background(), model.LoginRequest{Email: testEmail, Password: "wrong-one"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	assert.Equal(t, 2, hasher.verifies)
}

func TestLoginStorageErrorIsNotCredentials(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, testEmail).Return(nil, errors.New("connection refused"))

	svc, _ := newService(repo, nil)
	_, err := svc.Login(context.Background(), model.LoginRequest{Email: testEmail, Password: testPassword})
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginThrottle(t *testing.T) {
	t.Run("first failure opens the window", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, testEmail).Return(nil, usermodel.ErrUserNotFound)
		c := new(mockCache)
		c.On("Get", mock.Anything, testKey, mock.Anything).Return(false, nil)
		c.On("IncrementWindow", mock.Anything, testKey, throttle.Window).Return(int64(1), nil)

		svc, _ := newService(repo, c)
		_, err := svc.Login(context.Background(), model.LoginRequest{Email: testEmail, Password: testPassword})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		c.AssertExpectations(t)
	})

	t.Run("every failure carries the window", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, testEmail).
			Return(&usermodel.User{ID: 1, Email: testEmail, PasswordHash: hashed(t)}, nil)
		c := new(mockCache)
		c.On("Get", mock.Anything, testKey, mock.Anything).
			Run(func(args mock.Arguments) { *args.Get(2).(*int64) = 1 }).
			Return(true, nil)
		c.On("IncrementWindow", mock.Anything, testKey, throttle.Window).Return(int64(2), nil).Once()

		svc, _ := newService(repo, c)
		_, err := svc.Login(context.Background(), model.LoginRequest{Email: testEmail, Password: "wrong-one"})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		c.AssertExpectations(t)
	})

	t.Run("counter failure still rejects", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, testEmail).Return(nil, usermodel.ErrUserNotFound)
		c := new(mockCache)
		c.On("Get", mock.Anything, testKey, mock.Anything).Return(false, nil)
		c.On("IncrementWindow", mock.Anything, testKey, throttle.Window).Return(int64(0), errors.New("READONLY"))

		svc, _ := newService(repo, c)
		_, err := svc.Login(context.Background(), model.LoginRequest{Email: testEmail, Password: testPassword})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("locked email is rejected before lookup", func(t *testing.T) {
		repo := new(mockUserRepo)
		c := new(mockCache)
		c.On("Get", mock.Anything, testKey, mock.Anything).
			Run(func(args mock.Arguments) { *args.Get(2).(*int64) = 3 }).
			Return(true, nil)

		svc, _ := newService(repo, c)
		_, err := svc.Login(context.Background(), model.LoginRequest{Email: testEmail, Password: testPassword})
		assert.ErrorIs(t, err, model.ErrTooManyAttempts)
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("success clears the counter", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, testEmail).
			Return(&usermodel.User{ID: 1, Email: testEmail, PasswordHash: hashed(t)}, nil)
		c := new(mockCache)
		c.On("Get", mock.Anything, testKey, mock.Anything).
			Run(func(args mock.Arguments) { *args.Get(2).(*int64) = 2 }).
			Return(true, nil)
		c.On("Delete", mock.Anything, []string{testKey}).Return(nil)

		svc, _ := newService(repo, c)
		_, err := svc.Login(context.Background(), model.LoginRequest{Email: testEmail, Password: testPassword})
		require.NoError(t, err)
		c.AssertExpectations(t)
	})

	t.Run("cache outage fails open", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, testEmail).
			Return(&usermodel.User{ID: 1, Email: testEmail, PasswordHash: hashed(t)}, nil)
		c := new(mockCache)
		c.On("Get", mock.Anything, testKey, mock.Anything).Return(false, errors.New("dial tcp: refused"))
		c.On("Delete", mock.Anything, []string{testKey}).Return(errors.New("dial tcp: refused"))

		svc, _ := newService(repo, c)
		_, err := svc.Login(context.Background(), model.LoginRequest{Email: testEmail, Password: testPassword})
		assert.NoError(t, err)
	})
}

func TestGetMe(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByID", mock.Anything, 1).Return(&usermodel.User{ID: 1, Email: testEmail}, nil)
	repo.On("FindByID", mock.Anything, 2).Return(nil, usermodel.ErrUserNotFound)

	svc, _ := newService(repo, nil)
	got, err := svc.GetMe(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, testEmail, got.Email)

	_, err = svc.GetMe(context.Background(), 2)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
