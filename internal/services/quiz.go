package services

import (
	"context"
	"fmt"

	"github.com/ebalashova/healthapp-cli/internal/models"
)

// ErrQuizzesNotImplemented is returned by every QuizService operation: the
// backend has no quiz endpoints yet. Match with errors.Is.
var ErrQuizzesNotImplemented = fmt.Errorf("quizzes service is not implemented yet")

// QuizService is the contract for module quizzes and quiz attempts.
// Placeholder only; no operation performs I/O.
type QuizService interface {
	GetQuiz(ctx context.Context, quizID int64) (*models.Quiz, error)
	StartQuizAttempt(ctx context.Context, quizID int64) (*models.QuizAttempt, error)
	SubmitQuizAttempt(ctx context.Context, attemptID int64, answers []models.QuizAnswer) (*models.QuizResult, error)
}

type quizService struct{}

func NewQuizService() QuizService {
	return &quizService{}
}

func (s *quizService) GetQuiz(ctx context.Context, quizID int64) (*models.Quiz, error) {
	return nil, fmt.Errorf("get quiz: %w", ErrQuizzesNotImplemented)
}

func (s *quizService) StartQuizAttempt(ctx context.Context, quizID int64) (*models.QuizAttempt, error) {
	return nil, fmt.Errorf("start quiz attempt: %w", ErrQuizzesNotImplemented)
}

func (s *quizService) SubmitQuizAttempt(ctx context.Context, attemptID int64, answers []models.QuizAnswer) (*models.QuizResult, error) {
	return nil, fmt.Errorf("submit quiz attempt: %w", ErrQuizzesNotImplemented)
}
