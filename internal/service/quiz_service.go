package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/model"
	"anoa.com/greencampus/internal/repository"
	"anoa.com/greencampus/pkg/apperror"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	DefaultTopScorers = 3
	maxTopScorers     = 10

	topScorersCacheTTL = 5 * time.Minute
)

var validAnswers = map[string]bool{"A": true, "B": true, "C": true, "D": true}

type QuizService interface {
	// CreateQuiz authors a quiz from the form's parallel arrays and makes it
	// the single active quiz.
	CreateQuiz(ctx context.Context, input dto.CreateQuizRequest) error
	ActiveQuiz(ctx context.Context) (*dto.ActiveQuizResponse, error)
	AllQuizzes(ctx context.Context) ([]*model.Quiz, error)
	// Attempt scores the active quiz for a user. Missing answers count as
	// incorrect. The result is persisted before being returned.
	Attempt(ctx context.Context, userID uuid.UUID, input dto.AttemptRequest) (*dto.AttemptResponse, error)
	TopScorers(ctx context.Context, limit int) ([]dto.TopScorer, error)
	ResultsForUser(ctx context.Context, userID uuid.UUID) ([]dto.ResultEntry, error)
	AllResults(ctx context.Context) ([]dto.ResultEntry, error)
}

type quizService struct {
	repo      repository.QuizRepository
	redis     *redis.Client
	sanitizer *bluemonday.Policy
}

// NewQuizService builds the quiz engine. redisClient may be nil; the
// leaderboard then always hits the database.
func NewQuizService(repo repository.QuizRepository, redisClient *redis.Client) QuizService {
	return &quizService{
		repo:      repo,
		redis:     redisClient,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *quizService) CreateQuiz(ctx context.Context, input dto.CreateQuizRequest) error {
	n := len(input.Questions)
	if n == 0 {
		return apperror.Invalid("a quiz needs at least one question")
	}
	if len(input.OptionA) != n || len(input.OptionB) != n ||
		len(input.OptionC) != n || len(input.OptionD) != n ||
		len(input.CorrectAnswers) != n {
		return apperror.Invalid("questions, options and answers must have the same length")
	}

	questions := make([]model.QuizQuestion, 0, n)
	for i := 0; i < n; i++ {
		if !validAnswers[input.CorrectAnswers[i]] {
			return apperror.Invalid("correct answer must be one of A, B, C, D")
		}

		questions = append(questions, model.QuizQuestion{
			Text:          s.sanitizer.Sanitize(input.Questions[i]),
			OptionA:       s.sanitizer.Sanitize(input.OptionA[i]),
			OptionB:       s.sanitizer.Sanitize(input.OptionB[i]),
			OptionC:       s.sanitizer.Sanitize(input.OptionC[i]),
			OptionD:       s.sanitizer.Sanitize(input.OptionD[i]),
			CorrectAnswer: input.CorrectAnswers[i],
		})
	}

	quiz := &model.Quiz{
		Title:     s.sanitizer.Sanitize(input.Title),
		Questions: questions,
	}

	return s.repo.CreateActive(ctx, quiz)
}

func (s *quizService) ActiveQuiz(ctx context.Context) (*dto.ActiveQuizResponse, error) {
	quiz, err := s.repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("no active quiz")
		}
		return nil, err
	}

	questions := make([]dto.QuestionView, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, dto.QuestionView{
			ID:      q.ID,
			Text:    q.Text,
			OptionA: q.OptionA,
			OptionB: q.OptionB,
			OptionC: q.OptionC,
			OptionD: q.OptionD,
		})
	}

	return &dto.ActiveQuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Questions: questions,
	}, nil
}

func (s *quizService) AllQuizzes(ctx context.Context) ([]*model.Quiz, error) {
	return s.repo.FindAll(ctx)
}

func (s *quizService) Attempt(ctx context.Context, userID uuid.UUID, input dto.AttemptRequest) (*dto.AttemptResponse, error) {
	quiz, err := s.repo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("no active quiz")
		}
		return nil, err
	}

	score := 0
	for _, q := range quiz.Questions {
		if answer, ok := input.Answers[strconv.FormatUint(uint64(q.ID), 10)]; ok && q.IsCorrect(answer) {
			score++
		}
	}

	result := &model.QuizResult{
		UserID: userID,
		QuizID: quiz.ID,
		Score:  score,
		Total:  len(quiz.Questions),
	}

	if err := s.repo.CreateResult(ctx, result); err != nil {
		return nil, err
	}

	s.invalidateTopScorers(ctx)

	return &dto.AttemptResponse{
		QuizID: quiz.ID,
		Score:  score,
		Total:  len(quiz.Questions),
	}, nil
}

func (s *quizService) TopScorers(ctx context.Context, limit int) ([]dto.TopScorer, error) {
	if limit < 1 {
		limit = DefaultTopScorers
	}
	if limit > maxTopScorers {
		limit = maxTopScorers
	}

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, topScorersKey(limit)).Result(); err == nil {
			var scorers []dto.TopScorer
			if err := json.Unmarshal([]byte(cached), &scorers); err == nil {
				return scorers, nil
			}
		}
	}

	scorers, err := s.repo.TopScorers(ctx, limit)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(scorers); err == nil {
			if err := s.redis.Set(ctx, topScorersKey(limit), payload, topScorersCacheTTL).Err(); err != nil {
				log.Printf("failed to cache top scorers: %v", err)
			}
		}
	}

	return scorers, nil
}

func (s *quizService) ResultsForUser(ctx context.Context, userID uuid.UUID) ([]dto.ResultEntry, error) {
	results, err := s.repo.ResultsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResultEntries(results), nil
}

func (s *quizService) AllResults(ctx context.Context) ([]dto.ResultEntry, error) {
	results, err := s.repo.AllResults(ctx)
	if err != nil {
		return nil, err
	}
	return toResultEntries(results), nil
}

func (s *quizService) invalidateTopScorers(ctx context.Context) {
	if s.redis == nil {
		return
	}

	keys := make([]string, 0, maxTopScorers)
	for i := 1; i <= maxTopScorers; i++ {
		keys = append(keys, topScorersKey(i))
	}

	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		log.Printf("failed to invalidate top scorers cache: %v", err)
	}
}

func topScorersKey(limit int) string {
	return "leaderboard:top:" + strconv.Itoa(limit)
}

func toResultEntries(results []*model.QuizResult) []dto.ResultEntry {
	entries := make([]dto.ResultEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, dto.ResultEntry{
			ID:        r.ID,
			UserID:    r.UserID,
			Username:  r.User.Username,
			QuizID:    r.QuizID,
			QuizTitle: r.Quiz.Title,
			Score:     r.Score,
			Total:     r.Total,
			CreatedAt: r.CreatedAt,
		})
	}
	return entries
}
