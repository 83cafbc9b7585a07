package models

import "github.com/ebalashova/healthapp-cli/internal/timex"

// The types below back services that are not implemented yet (posts, quizzes,
// progress tracking). They pin down the contracts the mobile app expects so
// the service layer can be filled in without breaking callers.

// Post is a content post inside a module.
type Post struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	CreatedAt   timex.DateTime `json:"created_at"`
	UpdatedAt   timex.DateTime `json:"updated_at"`
}

// Quiz is a set of questions attached to a module.
type Quiz struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizQuestion is a single question with its answer options.
type QuizQuestion struct {
	ID      int64    `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// QuizAttempt tracks one run through a quiz.
type QuizAttempt struct {
	ID        int64          `json:"id"`
	QuizID    int64          `json:"quiz_id"`
	StartedAt timex.DateTime `json:"started_at"`
}

// QuizAnswer is a single submitted answer.
type QuizAnswer struct {
	QuestionID int64 `json:"question_id"`
	Option     int   `json:"option"`
}

// QuizResult is the outcome of a submitted attempt.
type QuizResult struct {
	AttemptID int64 `json:"attempt_id"`
	Score     int   `json:"score"`
	MaxScore  int   `json:"max_score"`
}

// Progress summarizes a user's completion state across modules.
type Progress struct {
	UserID           int64           `json:"user_id"`
	ModulesCompleted int             `json:"modules_completed"`
	ModulesTotal     int             `json:"modules_total"`
	UpdatedAt        *timex.DateTime `json:"updated_at,omitempty"`
}

// ProgressUpdate marks a module as completed (or not) for a user.
type ProgressUpdate struct {
	ModuleID  int64 `json:"module_id"`
	Completed bool  `json:"completed"`
}
