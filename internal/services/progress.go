package services

import (
	"context"
	"fmt"

	"github.com/ebalashova/healthapp-cli/internal/models"
)

// ErrProgressNotImplemented is returned by every ProgressService operation:
// the backend has no progress-tracking endpoints yet. Match with errors.Is.
var ErrProgressNotImplemented = fmt.Errorf("progress tracking is not implemented yet")

// ProgressService is the contract for per-user module completion tracking.
// Placeholder only; no operation performs I/O.
type ProgressService interface {
	GetUserProgress(ctx context.Context, userID int64) (*models.Progress, error)
	UpdateProgress(ctx context.Context, userID int64, upd models.ProgressUpdate) (*models.Progress, error)
}

type progressService struct{}

func NewProgressService() ProgressService {
	return &progressService{}
}

func (s *progressService) GetUserProgress(ctx context.Context, userID int64) (*models.Progress, error) {
	return nil, fmt.Errorf("get user progress: %w", ErrProgressNotImplemented)
}

func (s *progressService) UpdateProgress(ctx context.Context, userID int64, upd models.ProgressUpdate) (*models.Progress, error) {
	return nil, fmt.Errorf("update progress: %w", ErrProgressNotImplemented)
}
