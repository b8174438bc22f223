package service

import (
	"context"
	"errors"
	"time"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/repository"
	"anoa.com/greencampus/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatService interface {
	AdminDashboard(ctx context.Context) (*dto.AdminDashboard, error)
	StudentDashboard(ctx context.Context, userID uuid.UUID) (*dto.StudentDashboard, error)
	// Certificate reports a student's best attempt. Students without any
	// attempt have nothing to certify.
	Certificate(ctx context.Context, userID uuid.UUID) (*dto.Certificate, error)
}

type statService struct {
	userRepo         repository.UserRepository
	usageRepo        repository.UsageRepository
	quizRepo         repository.QuizRepository
	contributionRepo repository.ContributionRepository
}

func NewStatService(
	userRepo repository.UserRepository,
	usageRepo repository.UsageRepository,
	quizRepo repository.QuizRepository,
	contributionRepo repository.ContributionRepository,
) StatService {
	return &statService{
		userRepo:         userRepo,
		usageRepo:        usageRepo,
		quizRepo:         quizRepo,
		contributionRepo: contributionRepo,
	}
}

func (s *statService) AdminDashboard(ctx context.Context) (*dto.AdminDashboard, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	quizzes, err := s.quizRepo.CountQuizzes(ctx)
	if err != nil {
		return nil, err
	}
	usageRecords, err := s.usageRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.quizRepo.CountResults(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboard{
		Users:        users,
		Quizzes:      quizzes,
		UsageRecords: usageRecords,
		QuizResults:  results,
	}, nil
}

func (s *statService) StudentDashboard(ctx context.Context, userID uuid.UUID) (*dto.StudentDashboard, error) {
	dashboard := &dto.StudentDashboard{}

	quiz, err := s.quizRepo.FindActive(ctx)
	if err == nil {
		dashboard.HasActiveQuiz = true
		dashboard.ActiveQuizTitle = quiz.Title
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attempts, err := s.quizRepo.CountResultsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	dashboard.Attempts = attempts

	contributions, err := s.contributionRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	dashboard.Contributions = contributions

	return dashboard, nil
}

func (s *statService) Certificate(ctx context.Context, userID uuid.UUID) (*dto.Certificate, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		// A valid token can outlive its account.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("account no longer exists")
		}
		return nil, err
	}

	results, err := s.quizRepo.ResultsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, apperror.NotFound("no quiz attempts to certify")
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Score > best.Score {
			best = r
		}
	}

	return &dto.Certificate{
		Username:  user.Username,
		BestScore: best.Score,
		Total:     best.Total,
		IssuedAt:  time.Now(),
	}, nil
}
