package services

import (
	"context"

	"github.com/ebalashova/healthapp-cli/internal/models"
)

// fakeClient implements api.Client for unit tests. It records the last call
// arguments and returns configured results; Calls counts every operation
// that would hit the network.
type fakeClient struct {
	Calls int

	LoginRet *models.Token
	LoginErr error

	RegisterRet *models.UserProfile
	RegisterErr error

	PingErr error

	GetCurrentUserRet *models.UserProfile
	GetCurrentUserErr error

	UpdateProfileRet *models.UserProfile
	UpdateProfileErr error

	ListCoursesRet []models.Course
	ListCoursesErr error
	GetCourseRet   *models.CourseDetail
	GetCourseErr   error
	ListModulesRet []models.Module
	ListModulesErr error
	GetModuleRet   *models.ModuleDetail
	GetModuleErr   error
	ListGroupsRet  []models.Group
	ListGroupsErr  error
	GetGroupRet    *models.GroupDetail
	GetGroupErr    error

	CloseErr error

	// Recorded arguments.
	LastLoginUser     string
	LastLoginPassword string
	LastRegisterReq   *models.RegisterRequest
	LastUpdateUserID  int64
	LastUpdate        *models.ProfileUpdate
	LastCourseID      int64
	LastModuleID      int64
	LastGroupID       int64

	token string
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.Token, error) {
	f.Calls++
	f.LastLoginUser = username
	f.LastLoginPassword = password
	if f.LoginErr == nil && f.LoginRet != nil {
		f.token = f.LoginRet.AccessToken
	}
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserProfile, error) {
	f.Calls++
	f.LastRegisterReq = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Ping(ctx context.Context) error {
	f.Calls++
	return f.PingErr
}

func (f *fakeClient) GetCurrentUser(ctx context.Context) (*models.UserProfile, error) {
	f.Calls++
	return f.GetCurrentUserRet, f.GetCurrentUserErr
}

func (f *fakeClient) UpdateUserProfile(ctx context.Context, userID int64, upd *models.ProfileUpdate) (*models.UserProfile, error) {
	f.Calls++
	f.LastUpdateUserID = userID
	f.LastUpdate = upd
	return f.UpdateProfileRet, f.UpdateProfileErr
}

func (f *fakeClient) ListCourses(ctx context.Context) ([]models.Course, error) {
	f.Calls++
	return f.ListCoursesRet, f.ListCoursesErr
}

func (f *fakeClient) GetCourse(ctx context.Context, courseID int64) (*models.CourseDetail, error) {
	f.Calls++
	f.LastCourseID = courseID
	return f.GetCourseRet, f.GetCourseErr
}

func (f *fakeClient) ListModules(ctx context.Context) ([]models.Module, error) {
	f.Calls++
	return f.ListModulesRet, f.ListModulesErr
}

func (f *fakeClient) GetModule(ctx context.Context, moduleID int64) (*models.ModuleDetail, error) {
	f.Calls++
	f.LastModuleID = moduleID
	return f.GetModuleRet, f.GetModuleErr
}

func (f *fakeClient) ListGroups(ctx context.Context) ([]models.Group, error) {
	f.Calls++
	return f.ListGroupsRet, f.ListGroupsErr
}

func (f *fakeClient) GetGroup(ctx context.Context, groupID int64) (*models.GroupDetail, error) {
	f.Calls++
	f.LastGroupID = groupID
	return f.GetGroupRet, f.GetGroupErr
}

func (f *fakeClient) AccessToken() string         { return f.token }
func (f *fakeClient) SetAccessToken(token string) { f.token = token }

func (f *fakeClient) Close() error { return f.CloseErr }
