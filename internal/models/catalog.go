package models

import "github.com/ebalashova/healthapp-cli/internal/timex"

// Course is a course as listed for the signed-in user.
type Course struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	ModuleCount int            `json:"module_count"`
	CreatedAt   timex.DateTime `json:"created_at"`
	UpdatedAt   timex.DateTime `json:"updated_at"`
}

// ModuleRef is the short module form embedded in a course detail response.
type ModuleRef struct {
	ModuleID          int64   `json:"module_id"`
	ModuleTitle       string  `json:"module_title"`
	ModuleDescription *string `json:"module_description,omitempty"`
	ModuleColor       *string `json:"module_color,omitempty"`
	Ordering          int     `json:"ordering"`
}

// CourseDetail is a single course with its ordered modules.
type CourseDetail struct {
	Course
	Modules []ModuleRef `json:"modules"`
}

// Module is a standalone learning module.
type Module struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	CreatedAt   timex.DateTime `json:"created_at"`
	UpdatedAt   timex.DateTime `json:"updated_at"`
}

// PostRef is the short post form embedded in a module detail response.
type PostRef struct {
	PostID          int64   `json:"post_id"`
	PostTitle       string  `json:"post_title"`
	PostDescription *string `json:"post_description,omitempty"`
}

// ModuleDetail is a single module with its posts.
type ModuleDetail struct {
	Module
	Posts []PostRef `json:"posts"`
}

// Group is a parent community group.
type Group struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	CreatedBy   int64          `json:"created_by"`
	MemberCount *int           `json:"member_count,omitempty"`
	CreatedAt   timex.DateTime `json:"created_at"`
	UpdatedAt   timex.DateTime `json:"updated_at"`
}

// GroupMember describes one membership row in a group detail response.
type GroupMember struct {
	UserID    int64           `json:"user_id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Role      string          `json:"role"` // member, moderator or owner
	FirstName *string         `json:"first_name,omitempty"`
	LastName  *string         `json:"last_name,omitempty"`
	AvatarURL *string         `json:"avatar_url,omitempty"`
	JoinedAt  timex.DateTime  `json:"joined_at"`
	UpdatedAt *timex.DateTime `json:"updated_at,omitempty"`
}

// GroupDetail is a single group with its member list.
type GroupDetail struct {
	Group
	Members []GroupMember `json:"members"`
}
