package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/ebalashova/healthapp-cli/internal/models"
)

type fakeCatalog struct {
	courses []models.Course
	course  *models.CourseDetail
	modules []models.Module
	module  *models.ModuleDetail
	groups  []models.Group
	group   *models.GroupDetail
	err     error

	lastID int64
}

func (f *fakeCatalog) ListCourses(ctx context.Context) ([]models.Course, error) {
	return f.courses, f.err
}
func (f *fakeCatalog) GetCourse(ctx context.Context, id int64) (*models.CourseDetail, error) {
	f.lastID = id
	return f.course, f.err
}
func (f *fakeCatalog) ListModules(ctx context.Context) ([]models.Module, error) {
	return f.modules, f.err
}
func (f *fakeCatalog) GetModule(ctx context.Context, id int64) (*models.ModuleDetail, error) {
	f.lastID = id
	return f.module, f.err
}
func (f *fakeCatalog) ListGroups(ctx context.Context) ([]models.Group, error) {
	return f.groups, f.err
}
func (f *fakeCatalog) GetGroup(ctx context.Context, id int64) (*models.GroupDetail, error) {
	f.lastID = id
	return f.group, f.err
}

func TestListCourses(t *testing.T) {
	f := &fakeCatalog{courses: []models.Course{{ID: 1, Title: "Sleep"}}}
	a := &App{catalogService: f}

	if err := a.ListCourses(context.Background()); err != nil {
		t.Fatalf("ListCourses err: %v", err)
	}
}

func TestShowCourse_ForwardsID(t *testing.T) {
	f := &fakeCatalog{course: &models.CourseDetail{Course: models.Course{ID: 5, Title: "Sleep"}}}
	a := &App{catalogService: f}

	if err := a.ShowCourse(context.Background(), 5); err != nil {
		t.Fatalf("ShowCourse err: %v", err)
	}
	if f.lastID != 5 {
		t.Fatalf("course id = %d, want 5", f.lastID)
	}
}

func TestShowGroup_ErrorPropagates(t *testing.T) {
	f := &fakeCatalog{err: errors.New("not found")}
	a := &App{catalogService: f}

	if err := a.ShowGroup(context.Background(), 9); err == nil {
		t.Fatal("want error from ShowGroup")
	}
	if f.lastID != 9 {
		t.Fatalf("group id = %d, want 9", f.lastID)
	}
}
