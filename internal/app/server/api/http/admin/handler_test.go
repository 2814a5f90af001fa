package admin

import (
	"context"
	"errors"
	"testing"

	"docvault/internal/app/server/config"
	"docvault/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password string) (int, error) {
	args := m.Called(ctx, email, password)
	return args.Int(0), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) DeleteByEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockProber struct {
	mock.Mock
}

func (m *MockProber) Probe(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func newTestHandler(users user.Servicer, prober Prober, cfg *config.Config) *Handler {
	return NewHandler(users, prober, cfg, slog.Default(), nil)
}

func adminConfig() *config.Config {
	return &config.Config{
		Admin: config.Admin{
			Token:       "super-secret",
			TestUserIDs: "qa1@test.local,qa2@test.local",
		},
	}
}

func TestStorageCheck_Success(t *testing.T) {
	prober := new(MockProber)
	h := newTestHandler(new(MockUserService), prober, adminConfig())

	prober.On("Probe", mock.Anything).Return("documents", nil)

	out, err := h.storageCheck(context.Background(), &storageCheckInput{
		Authorization: "Bearer super-secret",
	})
	require.NoError(t, err)
	assert.True(t, out.Body.Success)
	assert.Equal(t, "documents", out.Body.BucketName)
	assert.NotEmpty(t, out.Body.Message)
}

func TestStorageCheck_ProbeFailure(t *testing.T) {
	prober := new(MockProber)
	h := newTestHandler(new(MockUserService), prober, adminConfig())

	prober.On("Probe", mock.Anything).Return("", errors.New("bucket unreachable"))

	out, err := h.storageCheck(context.Background(), &storageCheckInput{
		Authorization: "Bearer super-secret",
	})
	require.NoError(t, err)
	assert.False(t, out.Body.Success)
	assert.NotEmpty(t, out.Body.Error)
	assert.Empty(t, out.Body.BucketName)
}

func TestStorageCheck_WrongToken(t *testing.T) {
	prober := new(MockProber)
	h := newTestHandler(new(MockUserService), prober, adminConfig())

	_, err := h.storageCheck(context.Background(), &storageCheckInput{
		Authorization: "Bearer wrong",
	})
	require.Error(t, err)
	prober.AssertNotCalled(t, "Probe")
}

func TestStorageCheck_DisabledWithoutToken(t *testing.T) {
	prober := new(MockProber)
	cfg := adminConfig()
	cfg.Admin.Token = ""
	h := newTestHandler(new(MockUserService), prober, cfg)

	// Любой токен бесполезен: операции отключены целиком.
	_, err := h.storageCheck(context.Background(), &storageCheckInput{
		Authorization: "Bearer anything",
	})
	require.Error(t, err)
	prober.AssertNotCalled(t, "Probe")
}

func TestDeleteTestUsers(t *testing.T) {
	users := new(MockUserService)
	h := newTestHandler(users, new(MockProber), adminConfig())

	users.On("DeleteByEmail", mock.Anything, "qa1@test.local").Return(nil)
	users.On("DeleteByEmail", mock.Anything, "qa2@test.local").Return(errors.New("not found"))

	out, err := h.deleteTestUsers(context.Background(), &deleteTestUsersInput{
		Authorization: "Bearer super-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Body.Deleted)
	assert.Equal(t, 1, out.Body.Failed)
	users.AssertExpectations(t)
}

func TestDeleteTestUsers_EmptyList(t *testing.T) {
	users := new(MockUserService)
	cfg := adminConfig()
	cfg.Admin.TestUserIDs = ""
	h := newTestHandler(users, new(MockProber), cfg)

	out, err := h.deleteTestUsers(context.Background(), &deleteTestUsersInput{
		Authorization: "Bearer super-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Body.Deleted)
	assert.NotEmpty(t, out.Body.Message)
	users.AssertNotCalled(t, "DeleteByEmail")
}

func TestDeleteTestUsers_Unauthorized(t *testing.T) {
	users := new(MockUserService)
	h := newTestHandler(users, new(MockProber), adminConfig())

	_, err := h.deleteTestUsers(context.Background(), &deleteTestUsersInput{})
	require.Error(t, err)
	users.AssertNotCalled(t, "DeleteByEmail")
}
