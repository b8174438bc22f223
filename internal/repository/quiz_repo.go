package repository

import (
	"context"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	// CreateActive deactivates every existing quiz and inserts the new quiz
	// as active, all in one transaction so the single-active-quiz invariant
	// holds even under concurrent admins.
	CreateActive(ctx context.Context, quiz *model.Quiz) error
	FindActive(ctx context.Context) (*model.Quiz, error)
	FindByID(ctx context.Context, id uint) (*model.Quiz, error)
	FindAll(ctx context.Context) ([]*model.Quiz, error)
	CreateResult(ctx context.Context, result *model.QuizResult) error
	ResultsByUser(ctx context.Context, userID uuid.UUID) ([]*model.QuizResult, error)
	AllResults(ctx context.Context) ([]*model.QuizResult, error)
	// TopScorers sums scores per user across all quizzes and attempts and
	// returns the highest totals first. Secondary order among equal scores
	// is implementation-defined.
	TopScorers(ctx context.Context, limit int) ([]dto.TopScorer, error)
	CountQuizzes(ctx context.Context) (int64, error)
	CountResults(ctx context.Context) (int64, error)
	CountResultsByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) CreateActive(ctx context.Context, quiz *model.Quiz) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Quiz{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		quiz.IsActive = true
		return tx.Create(quiz).Error
	})
}

func (r *quizRepository) FindActive(ctx context.Context) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.WithContext(ctx).
		Preload("Questions").
		Where("is_active = ?", true).
		First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.WithContext(ctx).
		Preload("Questions").
		First(&quiz, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAll(ctx context.Context) ([]*model.Quiz, error) {
	var quizzes []*model.Quiz
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) CreateResult(ctx context.Context, result *model.QuizResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *quizRepository) ResultsByUser(ctx context.Context, userID uuid.UUID) ([]*model.QuizResult, error) {
	var results []*model.QuizResult
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Quiz").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizRepository) AllResults(ctx context.Context) ([]*model.QuizResult, error) {
	var results []*model.QuizResult
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Quiz").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizRepository) TopScorers(ctx context.Context, limit int) ([]dto.TopScorer, error) {
	var rows []dto.TopScorer
	if err := r.db.WithContext(ctx).
		Model(&model.QuizResult{}).
		Select("users.username AS username, SUM(quiz_results.score) AS total_score").
		Joins("JOIN users ON users.id = quiz_results.user_id").
		Group("users.username").
		Order("total_score DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *quizRepository) CountQuizzes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Quiz{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *quizRepository) CountResults(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.QuizResult{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *quizRepository) CountResultsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.QuizResult{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
