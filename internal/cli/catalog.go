package cli

import (
	"context"
	"fmt"
	"log"
)

// ListCourses prints one line per course visible to the user.
func (a *App) ListCourses(ctx context.Context) error {
	courses, err := a.catalogService.ListCourses(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	for _, c := range courses {
		fmt.Printf("[%d] %s (%d modules)\n", c.ID, c.Title, c.ModuleCount)
	}
	return nil
}

// ShowCourse prints a single course and its ordered modules.
func (a *App) ShowCourse(ctx context.Context, courseID int64) error {
	course, err := a.catalogService.GetCourse(ctx, courseID)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Course [%d] %s\n", course.ID, course.Title)
	if course.Description != nil {
		fmt.Println(*course.Description)
	}
	for _, m := range course.Modules {
		fmt.Printf("  %d. [%d] %s\n", m.Ordering, m.ModuleID, m.ModuleTitle)
	}
	return nil
}

// ListModules prints one line per learning module.
func (a *App) ListModules(ctx context.Context) error {
	modules, err := a.catalogService.ListModules(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	for _, m := range modules {
		fmt.Printf("[%d] %s\n", m.ID, m.Title)
	}
	return nil
}

// ShowModule prints a single module and its posts.
func (a *App) ShowModule(ctx context.Context, moduleID int64) error {
	module, err := a.catalogService.GetModule(ctx, moduleID)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Module [%d] %s\n", module.ID, module.Title)
	if module.Description != nil {
		fmt.Println(*module.Description)
	}
	for _, p := range module.Posts {
		fmt.Printf("  [%d] %s\n", p.PostID, p.PostTitle)
	}
	return nil
}

// ListGroups prints one line per community group.
func (a *App) ListGroups(ctx context.Context) error {
	groups, err := a.catalogService.ListGroups(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	for _, g := range groups {
		if g.MemberCount != nil {
			fmt.Printf("[%d] %s (%d members)\n", g.ID, g.Name, *g.MemberCount)
		} else {
			fmt.Printf("[%d] %s\n", g.ID, g.Name)
		}
	}
	return nil
}

// ShowGroup prints a single group and its member list.
func (a *App) ShowGroup(ctx context.Context, groupID int64) error {
	group, err := a.catalogService.GetGroup(ctx, groupID)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Group [%d] %s\n", group.ID, group.Name)
	if group.Description != nil {
		fmt.Println(*group.Description)
	}
	for _, m := range group.Members {
		fmt.Printf("  %s (%s)\n", m.Username, m.Role)
	}
	return nil
}
