package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/newswire-apps/newsquiz-service/internal/repositories"
	"github.com/newswire-apps/newsquiz-service/internal/utils"
	"github.com/xuri/excelize/v2"
)

// ExportService produces editorial exports of quiz attempt results.
type ExportService interface {
	// ExportAttempts writes all attempt records for an article's quiz to an
	// xlsx workbook.
	ExportAttempts(ctx context.Context, articleID uint) ([]byte, error)
}

type exportService struct {
	repo   repositories.Repository
	logger utils.Logger
}

func NewExportService(repo repositories.Repository, logger utils.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportAttempts(ctx context.Context, articleID uint) ([]byte, error) {
	quiz, err := s.repo.Quiz().GetByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up quiz: %w", err)
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	attempts, err := s.repo.Attempt().GetByQuiz(ctx, quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attempts"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{"User ID", "Score", "Passed", "Updated At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, attempt := range attempts {
		score := ""
		if attempt.Score != nil {
			score = strconv.Itoa(*attempt.Score)
		}
		values := []interface{}{
			attempt.UserID,
			score,
			attempt.Passed,
			attempt.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	s.logger.InfoContext(ctx, "exported quiz attempts",
		"article_id", articleID,
		"quiz_id", quiz.ID,
		"rows", len(attempts))

	return buf.Bytes(), nil
}
