package service

import (
	"context"
	"strconv"
	"testing"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/model"
	"anoa.com/greencampus/internal/repository"
	"anoa.com/greencampus/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatService(t *testing.T) (StatService, QuizService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	usageRepo := repository.NewUsageRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	contributionRepo := repository.NewContributionRepository(db)

	stats := NewStatService(userRepo, usageRepo, quizRepo, contributionRepo)
	quizzes := NewQuizService(quizRepo, nil)
	return stats, quizzes, db
}

func TestAdminDashboardCounts(t *testing.T) {
	stats, quizzes, db := newStatService(t)
	ctx := context.Background()

	createUser(t, db, "admin", model.RoleAdmin)
	student := createUser(t, db, "alice", model.RoleStudent)
	require.NoError(t, quizzes.CreateQuiz(ctx, quizRequest("Quiz1", 2)))

	active, err := quizzes.ActiveQuiz(ctx)
	require.NoError(t, err)
	_, err = quizzes.Attempt(ctx, student.ID, dto.AttemptRequest{Answers: map[string]string{
		strconv.FormatUint(uint64(active.Questions[0].ID), 10): "A",
	}})
	require.NoError(t, err)

	dashboard, err := stats.AdminDashboard(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, dashboard.Users)
	assert.EqualValues(t, 1, dashboard.Quizzes)
	assert.EqualValues(t, 0, dashboard.UsageRecords)
	assert.EqualValues(t, 1, dashboard.QuizResults)
}

func TestStudentDashboard(t *testing.T) {
	stats, quizzes, db := newStatService(t)
	ctx := context.Background()
	student := createUser(t, db, "alice", model.RoleStudent)

	dashboard, err := stats.StudentDashboard(ctx, student.ID)
	require.NoError(t, err)
	assert.False(t, dashboard.HasActiveQuiz)
	assert.Zero(t, dashboard.Attempts)

	require.NoError(t, quizzes.CreateQuiz(ctx, quizRequest("Eco Quiz", 1)))
	_, err = quizzes.Attempt(ctx, student.ID, dto.AttemptRequest{Answers: map[string]string{}})
	require.NoError(t, err)

	dashboard, err = stats.StudentDashboard(ctx, student.ID)
	require.NoError(t, err)
	assert.True(t, dashboard.HasActiveQuiz)
	assert.Equal(t, "Eco Quiz", dashboard.ActiveQuizTitle)
	assert.EqualValues(t, 1, dashboard.Attempts)
}

func TestCertificateForDeletedAccount(t *testing.T) {
	stats, _, _ := newStatService(t)

	_, err := stats.Certificate(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestCertificateUsesBestAttempt(t *testing.T) {
	stats, quizzes, db := newStatService(t)
	ctx := context.Background()
	student := createUser(t, db, "alice", model.RoleStudent)

	_, err := stats.Certificate(ctx, student.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	req := quizRequest("Eco Quiz", 2)
	req.CorrectAnswers = []string{"A", "B"}
	require.NoError(t, quizzes.CreateQuiz(ctx, req))

	active, err := quizzes.ActiveQuiz(ctx)
	require.NoError(t, err)

	// First attempt scores 1, second scores 2; the certificate takes the best.
	_, err = quizzes.Attempt(ctx, student.ID, dto.AttemptRequest{Answers: map[string]string{
		strconv.FormatUint(uint64(active.Questions[0].ID), 10): "A",
	}})
	require.NoError(t, err)
	_, err = quizzes.Attempt(ctx, student.ID, dto.AttemptRequest{Answers: map[string]string{
		strconv.FormatUint(uint64(active.Questions[0].ID), 10): "A",
		strconv.FormatUint(uint64(active.Questions[1].ID), 10): "B",
	}})
	require.NoError(t, err)

	certificate, err := stats.Certificate(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", certificate.Username)
	assert.Equal(t, 2, certificate.BestScore)
	assert.Equal(t, 2, certificate.Total)
}
