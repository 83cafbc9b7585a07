package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebalashova/healthapp-cli/internal/models"
)

func TestGetCurrentUserPassThrough(t *testing.T) {
	want := &models.UserProfile{ID: 7, Username: "parent1"}
	fc := &fakeClient{GetCurrentUserRet: want}
	svc := NewProfileService(fc)

	got, err := svc.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Same(t, want, got, "profile must be returned unmodified")
	assert.Equal(t, 1, fc.Calls, "exactly one network call")
}

func TestGetCurrentUserError(t *testing.T) {
	wantErr := errors.New("server unavailable")
	fc := &fakeClient{GetCurrentUserErr: wantErr}
	svc := NewProfileService(fc)

	_, err := svc.GetCurrentUser(context.Background())
	require.ErrorIs(t, err, wantErr)
}

func TestUpdateProfilePassThrough(t *testing.T) {
	want := &models.UserProfile{ID: 7, Username: "parent1"}
	fc := &fakeClient{UpdateProfileRet: want}
	svc := NewProfileService(fc)

	childName := "Sam"
	upd := &models.ProfileUpdate{ChildName: &childName}

	got, err := svc.UpdateProfile(context.Background(), 7, upd)
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.Equal(t, int64(7), fc.LastUpdateUserID)
	assert.Same(t, upd, fc.LastUpdate, "update payload must be forwarded unmodified")
	assert.Equal(t, 1, fc.Calls, "exactly one network call")
}

func TestUpdateProfileError(t *testing.T) {
	wantErr := errors.New("not found")
	fc := &fakeClient{UpdateProfileErr: wantErr}
	svc := NewProfileService(fc)

	_, err := svc.UpdateProfile(context.Background(), 404, &models.ProfileUpdate{})
	require.ErrorIs(t, err, wantErr)
}
