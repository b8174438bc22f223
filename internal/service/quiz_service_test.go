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

func newQuizService(t *testing.T) (QuizService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewQuizService(repository.NewQuizRepository(db), nil), db
}

func quizRequest(title string, n int) dto.CreateQuizRequest {
	req := dto.CreateQuizRequest{Title: title}
	for i := 0; i < n; i++ {
		req.Questions = append(req.Questions, "Question "+strconv.Itoa(i+1))
		req.OptionA = append(req.OptionA, "a")
		req.OptionB = append(req.OptionB, "b")
		req.OptionC = append(req.OptionC, "c")
		req.OptionD = append(req.OptionD, "d")
		req.CorrectAnswers = append(req.CorrectAnswers, "A")
	}
	return req
}

func TestCreateQuizKeepsSingleActive(t *testing.T) {
	svc, db := newQuizService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateQuiz(ctx, quizRequest("Quiz1", 2)))
	require.NoError(t, svc.CreateQuiz(ctx, quizRequest("Quiz2", 3)))

	var activeCount int64
	require.NoError(t, db.Model(&model.Quiz{}).Where("is_active = ?", true).Count(&activeCount).Error)
	assert.EqualValues(t, 1, activeCount)

	active, err := svc.ActiveQuiz(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Quiz2", active.Title)
	assert.Len(t, active.Questions, 3)

	// Quiz1 is inactive but its questions survive.
	var quiz1 model.Quiz
	require.NoError(t, db.Preload("Questions").Where("title = ?", "Quiz1").First(&quiz1).Error)
	assert.False(t, quiz1.IsActive)
	assert.Len(t, quiz1.Questions, 2)
}

func TestCreateQuizRejectsLengthMismatch(t *testing.T) {
	svc, _ := newQuizService(t)

	req := quizRequest("Broken", 2)
	req.CorrectAnswers = req.CorrectAnswers[:1]

	err := svc.CreateQuiz(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestCreateQuizRejectsInvalidAnswerCode(t *testing.T) {
	svc, _ := newQuizService(t)

	req := quizRequest("Broken", 1)
	req.CorrectAnswers[0] = "E"

	err := svc.CreateQuiz(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestAttemptScoresAndPersists(t *testing.T) {
	svc, db := newQuizService(t)
	ctx := context.Background()
	student := createUser(t, db, "alice", model.RoleStudent)

	req := quizRequest("Eco Quiz", 3)
	req.CorrectAnswers = []string{"A", "B", "C"}
	require.NoError(t, svc.CreateQuiz(ctx, req))

	active, err := svc.ActiveQuiz(ctx)
	require.NoError(t, err)
	require.Len(t, active.Questions, 3)

	// Two correct answers, one question left unanswered.
	answers := map[string]string{
		strconv.FormatUint(uint64(active.Questions[0].ID), 10): "A",
		strconv.FormatUint(uint64(active.Questions[1].ID), 10): "B",
	}

	result, err := svc.Attempt(ctx, student.ID, dto.AttemptRequest{Answers: answers})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.Total)

	var persisted model.QuizResult
	require.NoError(t, db.Where("user_id = ?", student.ID).First(&persisted).Error)
	assert.Equal(t, 2, persisted.Score)
	assert.Equal(t, 3, persisted.Total)
	assert.Equal(t, active.ID, persisted.QuizID)
}

func TestAttemptWrongAnswersScoreZero(t *testing.T) {
	svc, db := newQuizService(t)
	ctx := context.Background()
	student := createUser(t, db, "bob", model.RoleStudent)

	require.NoError(t, svc.CreateQuiz(ctx, quizRequest("Eco Quiz", 2)))

	active, err := svc.ActiveQuiz(ctx)
	require.NoError(t, err)

	answers := map[string]string{}
	for _, q := range active.Questions {
		answers[strconv.FormatUint(uint64(q.ID), 10)] = "D"
	}

	result, err := svc.Attempt(ctx, student.ID, dto.AttemptRequest{Answers: answers})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 2, result.Total)
}

func TestAttemptWithoutActiveQuiz(t *testing.T) {
	svc, db := newQuizService(t)
	student := createUser(t, db, "carol", model.RoleStudent)

	_, err := svc.Attempt(context.Background(), student.ID, dto.AttemptRequest{Answers: map[string]string{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestActiveQuizHidesCorrectAnswers(t *testing.T) {
	svc, _ := newQuizService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateQuiz(ctx, quizRequest("Eco Quiz", 1)))

	active, err := svc.ActiveQuiz(ctx)
	require.NoError(t, err)
	require.Len(t, active.Questions, 1)
	assert.Equal(t, "Question 1", active.Questions[0].Text)
	// QuestionView has no correct-answer field at all; nothing to assert
	// beyond the options being present.
	assert.Equal(t, "a", active.Questions[0].OptionA)
}

func TestTopScorersSumsAcrossQuizzes(t *testing.T) {
	svc, db := newQuizService(t)
	ctx := context.Background()

	alice := createUser(t, db, "alice", model.RoleStudent)
	bob := createUser(t, db, "bob", model.RoleStudent)
	carol := createUser(t, db, "carol", model.RoleStudent)
	dave := createUser(t, db, "dave", model.RoleStudent)

	// Two quizzes; scores accumulate across both.
	req := quizRequest("Quiz1", 3)
	req.CorrectAnswers = []string{"A", "B", "C"}
	require.NoError(t, svc.CreateQuiz(ctx, req))
	attempt(t, svc, alice.ID, map[int]string{0: "A", 1: "B", 2: "C"}) // 3
	attempt(t, svc, bob.ID, map[int]string{0: "A"})                  // 1
	attempt(t, svc, carol.ID, map[int]string{0: "A", 1: "B"})        // 2
	attempt(t, svc, dave.ID, map[int]string{})                       // 0

	require.NoError(t, svc.CreateQuiz(ctx, quizRequest("Quiz2", 2)))
	attempt(t, svc, bob.ID, map[int]string{0: "A", 1: "A"}) // +2 -> 3
	attempt(t, svc, carol.ID, map[int]string{0: "A"})       // +1 -> 3

	scorers, err := svc.TopScorers(ctx, 3)
	require.NoError(t, err)
	require.Len(t, scorers, 3)

	// Scores descending; ties between 3-point users resolve in an
	// implementation-defined order, so only the score ordering is asserted.
	assert.Equal(t, 3, scorers[0].TotalScore)
	assert.Equal(t, 3, scorers[1].TotalScore)
	assert.Equal(t, 3, scorers[2].TotalScore)

	scorers, err = svc.TopScorers(ctx, 4)
	require.NoError(t, err)
	require.Len(t, scorers, 4)
	assert.Equal(t, "dave", scorers[3].Username)
	assert.Equal(t, 0, scorers[3].TotalScore)
}

// attempt answers the active quiz using question positions instead of IDs.
func attempt(t *testing.T, svc QuizService, userID uuid.UUID, byPosition map[int]string) {
	t.Helper()
	ctx := context.Background()

	active, err := svc.ActiveQuiz(ctx)
	require.NoError(t, err)

	answers := map[string]string{}
	for pos, letter := range byPosition {
		require.Less(t, pos, len(active.Questions))
		answers[strconv.FormatUint(uint64(active.Questions[pos].ID), 10)] = letter
	}

	_, err = svc.Attempt(ctx, userID, dto.AttemptRequest{Answers: answers})
	require.NoError(t, err)
}
