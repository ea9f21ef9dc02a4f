package postgres

import (
	"context"
	"errors"

	"github.com/newswire-apps/newsquiz-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptPostgreSQL struct {
	db *gorm.DB
}

func NewAttemptPostgreSQL(db *gorm.DB) *AttemptPostgreSQL {
	return &AttemptPostgreSQL{db: db}
}

func (a *AttemptPostgreSQL) Get(ctx context.Context, userID, quizID uint) (*models.UserQuiz, error) {
	var record models.UserQuiz
	if err := a.db.WithContext(ctx).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Upsert writes the attempt record with last-submission-wins semantics: an
// insert on first submission, an in-place overwrite of the grading fields on
// every later one.
func (a *AttemptPostgreSQL) Upsert(ctx context.Context, record *models.UserQuiz) error {
	return a.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "quiz_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"attempted", "passed", "score", "feedback", "updated_at",
			}),
		}).
		Create(record).Error
}

func (a *AttemptPostgreSQL) GetByQuiz(ctx context.Context, quizID uint) ([]*models.UserQuiz, error) {
	var records []*models.UserQuiz
	if err := a.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("updated_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (a *AttemptPostgreSQL) HasPassed(ctx context.Context, userID, quizID uint) (bool, error) {
	var count int64
	if err := a.db.WithContext(ctx).
		Model(&models.UserQuiz{}).
		Where("user_id = ? AND quiz_id = ? AND passed = ?", userID, quizID, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
