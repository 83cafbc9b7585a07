package services

import (
	"context"
	"fmt"

	"github.com/ebalashova/healthapp-cli/internal/models"
)

// ErrPostsNotImplemented is returned by every PostService operation: the
// backend has no post endpoints yet. Match with errors.Is.
var ErrPostsNotImplemented = fmt.Errorf("posts service is not implemented yet")

// PostService is the contract for module content posts. It exists as a
// placeholder so callers are already written against the final shape; no
// operation performs I/O.
type PostService interface {
	GetPost(ctx context.Context, postID int64) (*models.Post, error)
	GetPostFile(ctx context.Context, postID int64) ([]byte, error)
}

type postService struct{}

func NewPostService() PostService {
	return &postService{}
}

func (s *postService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	return nil, fmt.Errorf("get post: %w", ErrPostsNotImplemented)
}

func (s *postService) GetPostFile(ctx context.Context, postID int64) ([]byte, error) {
	return nil, fmt.Errorf("get post file: %w", ErrPostsNotImplemented)
}
