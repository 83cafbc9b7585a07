package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ebalashova/healthapp-cli/internal/models"
)

// ShowPost fetches and displays a single content post.
func (a *App) ShowPost(ctx context.Context, postID int64) error {
	post, err := a.postService.GetPost(ctx, postID)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Post [%d] %s\n", post.ID, post.Title)
	if post.Description != nil {
		fmt.Println(*post.Description)
	}
	return nil
}

// DownloadPostFile fetches a post attachment and saves it to the "download"
// directory next to the binary.
func (a *App) DownloadPostFile(ctx context.Context, postID int64) error {
	data, err := a.postService.GetPostFile(ctx, postID)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	dir := "download"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Println(err.Error())
		return err
	}

	outputFile := filepath.Join(dir, "post-"+strconv.FormatInt(postID, 10))
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		log.Println(err.Error())
		return err
	}
	log.Printf("File saved to: %s", outputFile)
	return nil
}

// TakeQuiz runs the whole quiz flow: fetch the quiz, start an attempt,
// prompt for an answer to each question and submit.
func (a *App) TakeQuiz(ctx context.Context, quizID int64) error {
	quiz, err := a.quizService.GetQuiz(ctx, quizID)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	attempt, err := a.quizService.StartQuizAttempt(ctx, quizID)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Quiz: %s\n", quiz.Title)
	answers := make([]models.QuizAnswer, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		fmt.Println(q.Text)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}
		choice, err := getSimpleText(a.reader, "Your answer", os.Stdout)
		if err != nil {
			return err
		}
		option, err := strconv.Atoi(choice)
		if err != nil || option < 1 || option > len(q.Options) {
			fmt.Println("Please answer with the option number.")
			return fmt.Errorf("invalid quiz answer %q", choice)
		}
		answers = append(answers, models.QuizAnswer{QuestionID: q.ID, Option: option})
	}

	result, err := a.quizService.SubmitQuizAttempt(ctx, attempt.ID, answers)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Score: %d/%d\n", result.Score, result.MaxScore)
	return nil
}

// ShowProgress displays the learning progress of the current user.
func (a *App) ShowProgress(ctx context.Context) error {
	progress, err := a.progressService.GetUserProgress(ctx, a.userID)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Completed %d of %d modules\n", progress.ModulesCompleted, progress.ModulesTotal)
	return nil
}

// MarkComplete records a module as completed for the current user.
func (a *App) MarkComplete(ctx context.Context, moduleID int64) error {
	progress, err := a.progressService.UpdateProgress(ctx, a.userID, models.ProgressUpdate{
		ModuleID:  moduleID,
		Completed: true,
	})
	if err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Printf("Completed %d of %d modules\n", progress.ModulesCompleted, progress.ModulesTotal)
	return nil
}
