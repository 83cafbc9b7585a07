package api

import (
	"context"

	"github.com/ebalashova/healthapp-cli/internal/models"
)

// Client is the API contract with the Health App backend. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	// Auth.
	Login(ctx context.Context, username, password string) (*models.Token, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserProfile, error)
	Ping(ctx context.Context) error

	// Profile.
	GetCurrentUser(ctx context.Context) (*models.UserProfile, error)
	UpdateUserProfile(ctx context.Context, userID int64, upd *models.ProfileUpdate) (*models.UserProfile, error)

	// Catalog reads.
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID int64) (*models.CourseDetail, error)
	ListModules(ctx context.Context) ([]models.Module, error)
	GetModule(ctx context.Context, moduleID int64) (*models.ModuleDetail, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
	GetGroup(ctx context.Context, groupID int64) (*models.GroupDetail, error)

	// Token state.
	AccessToken() string
	SetAccessToken(token string)

	Close() error
}
