package services

import (
	"context"
	"fmt"

	"github.com/ebalashova/healthapp-cli/internal/api"
	"github.com/ebalashova/healthapp-cli/internal/models"
)

// CatalogService exposes the read-only course/module/group views a signed-in
// user has in the mobile app.
type CatalogService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID int64) (*models.CourseDetail, error)
	ListModules(ctx context.Context) ([]models.Module, error)
	GetModule(ctx context.Context, moduleID int64) (*models.ModuleDetail, error)
	ListGroups(ctx context.Context) ([]models.Group, error)
	GetGroup(ctx context.Context, groupID int64) (*models.GroupDetail, error)
}

type catalogService struct {
	client api.Client
}

func NewCatalogService(client api.Client) CatalogService {
	return &catalogService{client: client}
}

func (s *catalogService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.client.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (s *catalogService) GetCourse(ctx context.Context, courseID int64) (*models.CourseDetail, error) {
	course, err := s.client.GetCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

func (s *catalogService) ListModules(ctx context.Context) ([]models.Module, error) {
	modules, err := s.client.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	return modules, nil
}

func (s *catalogService) GetModule(ctx context.Context, moduleID int64) (*models.ModuleDetail, error) {
	module, err := s.client.GetModule(ctx, moduleID)
	if err != nil {
		return nil, fmt.Errorf("get module: %w", err)
	}
	return module, nil
}

func (s *catalogService) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.client.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

func (s *catalogService) GetGroup(ctx context.Context, groupID int64) (*models.GroupDetail, error) {
	group, err := s.client.GetGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	return group, nil
}
