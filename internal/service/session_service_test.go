package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-hq/uni-admin-gateway/internal/dto"
	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

type fakeAuthenticator struct {
	pair models.TokenPair
	err  error
}

func (f *fakeAuthenticator) ObtainToken(ctx context.Context, username, password string) (models.TokenPair, error) {
	if f.err != nil {
		return models.TokenPair{}, f.err
	}
	return f.pair, nil
}

type fakeTokenStore struct {
	access  string
	refresh string
	cleared bool
}

func (f *fakeTokenStore) Access() string { return f.access }

func (f *fakeTokenStore) Save(access, refresh string) error {
	f.access = access
	f.refresh = refresh
	return nil
}

func (f *fakeTokenStore) Clear() error {
	f.access = ""
	f.refresh = ""
	f.cleared = true
	return nil
}

func TestSessionLoginPersistsTokens(t *testing.T) {
	store := &fakeTokenStore{}
	auth := &fakeAuthenticator{pair: models.TokenPair{Access: "acc", Refresh: "ref"}}
	svc := NewSessionService(auth, store, nil, zap.NewNop())

	err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "acc", store.access)
	assert.Equal(t, "ref", store.refresh)
	assert.True(t, svc.Status().Authenticated)
}

func TestSessionLoginRejectedStoresNothing(t *testing.T) {
	store := &fakeTokenStore{}
	auth := &fakeAuthenticator{err: appErrors.ErrInvalidCredentials}
	svc := NewSessionService(auth, store, nil, zap.NewNop())

	err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "wrong"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Message, appErr.Message)
	assert.Empty(t, store.access)
	assert.False(t, svc.Status().Authenticated)
}

func TestSessionLoginValidation(t *testing.T) {
	store := &fakeTokenStore{}
	svc := NewSessionService(&fakeAuthenticator{}, store, nil, zap.NewNop())

	err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	assert.Empty(t, store.access)
}

func TestSessionLogoutClearsTokens(t *testing.T) {
	store := &fakeTokenStore{access: "acc", refresh: "ref"}
	svc := NewSessionService(&fakeAuthenticator{}, store, nil, zap.NewNop())

	require.NoError(t, svc.Logout(context.Background()))
	assert.True(t, store.cleared)
	assert.False(t, svc.Status().Authenticated)
}
