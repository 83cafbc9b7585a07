// Package services contains application services for the Health App CLI.
// Implemented services are thin wrappers over the API client; the posts,
// quiz and progress services are contract placeholders that always fail
// until the backend grows the matching endpoints.
package services

import (
	"context"
	"fmt"

	"github.com/ebalashova/healthapp-cli/internal/api"
	"github.com/ebalashova/healthapp-cli/internal/models"
)

// ProfileService reads and updates the authenticated user's profile.
//
// Contract:
//   - GetCurrentUser: fetch the signed-in user's profile record.
//   - UpdateProfile: apply a partial update to the given user's profile and
//     return the updated record.
//
// Both operations perform exactly one network round trip and surface
// transport/HTTP failures from the client unchanged (wrapped with context).
type ProfileService interface {
	GetCurrentUser(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, upd *models.ProfileUpdate) (*models.UserProfile, error)
}

type profileService struct {
	client api.Client
}

// NewProfileService constructs a ProfileService bound to the given API client.
func NewProfileService(client api.Client) ProfileService {
	return &profileService{client: client}
}

func (s *profileService) GetCurrentUser(ctx context.Context) (*models.UserProfile, error) {
	profile, err := s.client.GetCurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID int64, upd *models.ProfileUpdate) (*models.UserProfile, error) {
	profile, err := s.client.UpdateUserProfile(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}
