package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuanvu/snapgrade/internal/apperror"
	"github.com/tuanvu/snapgrade/internal/model"
	"github.com/tuanvu/snapgrade/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubGrader struct {
	raw   string
	err   error
	calls int
}

func (g *stubGrader) Grade(ctx context.Context, imageURL, questionText, correctAnswer string, gradeLevel int) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.raw, nil
}

func (g *stubGrader) Provider() string { return "STUB_GRADER" }

type stubStorage struct {
	err     error
	uploads int
}

func (s *stubStorage) Upload(ctx context.Context, data []byte, contentType, folder, filename string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.uploads++
	return "http://storage.local/" + folder + "/" + filename, nil
}

func (s *stubStorage) GetURL(objectName string) string {
	return "http://storage.local/" + objectName
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Submission{},
		&model.UserProgress{},
		&model.MistakeEntry{},
	))
	return db
}

func newSubmissionService(db *gorm.DB, grader GraderService, storage StorageService) *submissionService {
	return &submissionService{
		userRepo:       repository.NewUserRepository(db),
		questionRepo:   repository.NewQuestionRepository(db),
		submissionRepo: repository.NewSubmissionRepository(db),
		grader:         grader,
		storage:        storage,
		reward:         NewRewardService(),
		db:             db,
		now:            func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) },
	}
}

func seedUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{Email: "an.tran@example.com", FullName: "An Tran", GradeLevel: 7}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedQuestion(t *testing.T, db *gorm.DB, difficulty string) *model.Question {
	t.Helper()
	question := &model.Question{
		Subject:       "MATH",
		Topic:         "linear_equations",
		GradeLevel:    7,
		QuestionText:  "Solve for x: 2x + 3 = 11",
		CorrectAnswer: "x = 4",
		Difficulty:    difficulty,
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(value).Count(&n).Error)
	return n
}

func TestCreateSubmissionCorrectAnswer(t *testing.T) {
	db := newTestDB(t)
	grader := &stubGrader{raw: "```json\n" + `{"score": 9.5, "correct": true, "feedback": "Clean solution.", "correctSteps": ["2x = 8", "x = 4"], "topicTags": ["algebra"]}` + "\n```"}
	svc := newSubmissionService(db, grader, &stubStorage{})
	user := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyEasy)

	resp, err := svc.CreateSubmission(context.Background(), user.ID, question.ID, []byte("img"), "work.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, 9.5, resp.Score)
	assert.True(t, resp.Correct)
	assert.Equal(t, "Clean solution.", resp.Feedback)
	assert.Equal(t, []string{"2x = 8", "x = 4"}, resp.CorrectSteps)
	assert.Equal(t, 95, resp.XPEarned)
	assert.Equal(t, 95, resp.TotalXP)
	assert.Equal(t, 1, resp.CurrentStreak)

	var stored model.Submission
	require.NoError(t, db.First(&stored, resp.SubmissionID).Error)
	assert.Equal(t, user.ID, stored.UserID)
	assert.Equal(t, "STUB_GRADER", stored.AIProvider)
	assert.GreaterOrEqual(t, stored.ProcessingTimeMs, 0)

	assert.Equal(t, int64(0), countRows(t, db, &model.MistakeEntry{}))
}

func TestCreateSubmissionIncorrectCreatesMistakeEntry(t *testing.T) {
	db := newTestDB(t)
	grader := &stubGrader{raw: `{"score": 3.0, "correct": false, "feedback": "Sign error in step 2."}`}
	svc := newSubmissionService(db, grader, &stubStorage{})
	user := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyMedium)

	resp, err := svc.CreateSubmission(context.Background(), user.ID, question.ID, []byte("img"), "work.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.False(t, resp.Correct)
	assert.Equal(t, 45, resp.XPEarned)

	var mistakes []model.MistakeEntry
	require.NoError(t, db.Find(&mistakes).Error)
	require.Len(t, mistakes, 1)
	assert.Equal(t, user.ID, mistakes[0].UserID)
	assert.Equal(t, resp.SubmissionID, mistakes[0].SubmissionID)
	assert.False(t, mistakes[0].Reviewed)
}

func TestCreateSubmissionEmptyImage(t *testing.T) {
	db := newTestDB(t)
	grader := &stubGrader{}
	storage := &stubStorage{}
	svc := newSubmissionService(db, grader, storage)
	user := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyEasy)

	_, err := svc.CreateSubmission(context.Background(), user.ID, question.ID, nil, "work.jpg", "image/jpeg")

	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, storage.uploads)
	assert.Equal(t, 0, grader.calls)
}

func TestCreateSubmissionUnknownUserAndQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db, &stubGrader{}, &stubStorage{})
	user := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyEasy)

	_, err := svc.CreateSubmission(context.Background(), user.ID+100, question.ID, []byte("img"), "work.jpg", "image/jpeg")
	var notFoundErr *apperror.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "User", notFoundErr.Resource)

	_, err = svc.CreateSubmission(context.Background(), user.ID, question.ID+100, []byte("img"), "work.jpg", "image/jpeg")
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Question", notFoundErr.Resource)
}

func TestCreateSubmissionStorageFailureLeavesNoRows(t *testing.T) {
	db := newTestDB(t)
	grader := &stubGrader{raw: `{"score": 9.0, "correct": true, "feedback": "ok"}`}
	svc := newSubmissionService(db, grader, &stubStorage{err: fmt.Errorf("bucket unreachable")})
	user := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyEasy)

	_, err := svc.CreateSubmission(context.Background(), user.ID, question.ID, []byte("img"), "work.jpg", "image/jpeg")

	var storageErr *apperror.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, 0, grader.calls)
	assert.Equal(t, int64(0), countRows(t, db, &model.Submission{}))
	assert.Equal(t, int64(0), countRows(t, db, &model.UserProgress{}))
}

func TestCreateSubmissionGraderFailureLeavesNoRows(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db, &stubGrader{err: fmt.Errorf("model overloaded")}, &stubStorage{})
	user := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyEasy)

	_, err := svc.CreateSubmission(context.Background(), user.ID, question.ID, []byte("img"), "work.jpg", "image/jpeg")

	var gradingErr *apperror.AIGradingError
	require.ErrorAs(t, err, &gradingErr)
	assert.Equal(t, int64(0), countRows(t, db, &model.Submission{}))
	assert.Equal(t, int64(0), countRows(t, db, &model.UserProgress{}))
}

func TestCreateSubmissionUnparseableResponseLeavesNoRows(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db, &stubGrader{raw: "I cannot grade this image."}, &stubStorage{})
	user := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyEasy)

	_, err := svc.CreateSubmission(context.Background(), user.ID, question.ID, []byte("img"), "work.jpg", "image/jpeg")

	var gradingErr *apperror.AIGradingError
	require.ErrorAs(t, err, &gradingErr)
	assert.Equal(t, "I cannot grade this image.", gradingErr.Raw)
	assert.Equal(t, int64(0), countRows(t, db, &model.Submission{}))
}

func TestCreateSubmissionClampsOutOfRangeScore(t *testing.T) {
	db := newTestDB(t)
	grader := &stubGrader{raw: `{"score": 14.0, "correct": true, "feedback": "ok"}`}
	svc := newSubmissionService(db, grader, &stubStorage{})
	user := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyEasy)

	resp, err := svc.CreateSubmission(context.Background(), user.ID, question.ID, []byte("img"), "work.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, 10.0, resp.Score)
	assert.Equal(t, 100, resp.XPEarned)
}

func TestCreateSubmissionAccumulatesSameDay(t *testing.T) {
	db := newTestDB(t)
	grader := &stubGrader{raw: `{"score": 8.0, "correct": true, "feedback": "ok"}`}
	svc := newSubmissionService(db, grader, &stubStorage{})
	user := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyHard)

	first, err := svc.CreateSubmission(context.Background(), user.ID, question.ID, []byte("img"), "a.jpg", "image/jpeg")
	require.NoError(t, err)
	second, err := svc.CreateSubmission(context.Background(), user.ID, question.ID, []byte("img"), "b.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, 160, first.TotalXP)
	assert.Equal(t, 320, second.TotalXP)
	assert.Equal(t, 1, first.CurrentStreak)
	assert.Equal(t, 1, second.CurrentStreak, "same-day submissions must not grow the streak")

	assert.Equal(t, int64(1), countRows(t, db, &model.UserProgress{}))
}

func TestCreateSubmissionExtendsStreakNextDay(t *testing.T) {
	db := newTestDB(t)
	grader := &stubGrader{raw: `{"score": 7.0, "correct": true, "feedback": "ok"}`}
	svc := newSubmissionService(db, grader, &stubStorage{})
	user := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyEasy)

	_, err := svc.CreateSubmission(context.Background(), user.ID, question.ID, []byte("img"), "a.jpg", "image/jpeg")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, 3, 11, 7, 30, 0, 0, time.UTC) }
	resp, err := svc.CreateSubmission(context.Background(), user.ID, question.ID, []byte("img"), "b.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.CurrentStreak)

	var progress model.UserProgress
	require.NoError(t, db.First(&progress, "user_id = ?", user.ID).Error)
	assert.Equal(t, 2, progress.LongestStreak)
}

func TestGetSubmissionOwnership(t *testing.T) {
	db := newTestDB(t)
	grader := &stubGrader{raw: `{"score": 6.0, "correct": true, "feedback": "ok"}`}
	svc := newSubmissionService(db, grader, &stubStorage{})
	owner := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyEasy)
	other := &model.User{Email: "binh.le@example.com", FullName: "Binh Le", GradeLevel: 7}
	require.NoError(t, db.Create(other).Error)

	created, err := svc.CreateSubmission(context.Background(), owner.ID, question.ID, []byte("img"), "a.jpg", "image/jpeg")
	require.NoError(t, err)

	summary, err := svc.GetSubmission(created.SubmissionID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, question.QuestionText, summary.QuestionText)

	_, err = svc.GetSubmission(created.SubmissionID, other.ID)
	var authErr *apperror.AuthorizationError
	require.ErrorAs(t, err, &authErr)

	_, err = svc.GetSubmission(created.SubmissionID+100, owner.ID)
	var notFoundErr *apperror.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestListSubmissionsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newSubmissionService(db, &stubGrader{}, &stubStorage{})
	user := seedUser(t, db)
	question := seedQuestion(t, db, model.DifficultyEasy)

	older := model.Submission{UserID: user.ID, QuestionID: question.ID, OriginalImageURL: "u/1", AIScore: 5, CreatedAt: time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)}
	newer := model.Submission{UserID: user.ID, QuestionID: question.ID, OriginalImageURL: "u/2", AIScore: 8, CreatedAt: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	summaries, err := svc.ListSubmissions(user.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, newer.ID, summaries[0].ID)
	assert.Equal(t, older.ID, summaries[1].ID)
}
