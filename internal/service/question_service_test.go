package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/trivia-catalog-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-catalog-api/internal/pkg/errors"
)

func newTestQuestionService() (*QuestionService, *MockQuestionRepository, *MockCategoryRepository) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	return NewQuestionService(questionRepo, categoryRepo), questionRepo, categoryRepo
}

// ============================================================================
// ListQuestions
// ============================================================================

func TestListQuestions_FirstAndSecondPage(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	questionRepo.On("List").Return(testQuestions(19), nil)
	categoryRepo.On("List").Return(testCategories(), nil)

	page1, err := svc.ListQuestions(1)
	require.NoError(t, err)
	assert.Len(t, page1.Questions, 10)
	assert.Equal(t, 19, page1.TotalQuestions)
	assert.Equal(t, uint(1), page1.Questions[0].ID)
	assert.Equal(t, []string{"Art", "History", "Science", "Geography"}, page1.CurrentCategory)
	assert.Len(t, page1.Categories, 4)

	page2, err := svc.ListQuestions(2)
	require.NoError(t, err)
	assert.Len(t, page2.Questions, 9)
	assert.Equal(t, uint(11), page2.Questions[0].ID)
}

func TestListQuestions_PageOutOfRange(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	questionRepo.On("List").Return(testQuestions(19), nil)

	page, err := svc.ListQuestions(3)

	assert.Nil(t, page)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	categoryRepo.AssertNotCalled(t, "List")
}

func TestListQuestions_UnknownCategoryIsUnprocessable(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	questionRepo.On("List").Return([]entity.Question{{ID: 1, Category: 99}}, nil)
	categoryRepo.On("List").Return(testCategories(), nil)

	page, err := svc.ListQuestions(1)

	assert.Nil(t, page)
	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
	assert.ErrorIs(t, err, entity.ErrUnknownCategory)
}

func TestListQuestions_StoreFailure(t *testing.T) {
	svc, questionRepo, _ := newTestQuestionService()
	dbErr := errors.New("connection refused")
	questionRepo.On("List").Return(nil, dbErr)

	_, err := svc.ListQuestions(1)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

// ============================================================================
// CreateQuestion
// ============================================================================

func TestCreateQuestion_Success(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	q := &entity.Question{Question: "What is the name of United States's president ?", Answer: "Joe Biden", Category: 4, Difficulty: 2}

	categoryRepo.On("GetByID", uint(4)).Return(&entity.Category{ID: 4, Type: "History"}, nil)
	questionRepo.On("ExistsByText", q.Question).Return(false, nil)
	questionRepo.On("Create", q).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Question).ID = 24
	}).Return(nil)

	err := svc.CreateQuestion(q)

	require.NoError(t, err)
	assert.Equal(t, uint(24), q.ID)
	questionRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
}

func TestCreateQuestion_Duplicate(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	q := &entity.Question{
		Question:   "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?",
		Answer:     "Jackson Pollock",
		Category:   2,
		Difficulty: 2,
	}

	categoryRepo.On("GetByID", uint(2)).Return(&entity.Category{ID: 2, Type: "Art"}, nil)
	questionRepo.On("ExistsByText", q.Question).Return(true, nil)

	err := svc.CreateQuestion(q)

	assert.ErrorIs(t, err, ErrQuestionExists)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	questionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateQuestion_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		question entity.Question
	}{
		{name: "blank question", question: entity.Question{Question: "  ", Answer: "A", Category: 1, Difficulty: 1}},
		{name: "blank answer", question: entity.Question{Question: "Q?", Answer: "", Category: 1, Difficulty: 1}},
		{name: "difficulty too low", question: entity.Question{Question: "Q?", Answer: "A", Category: 1, Difficulty: 0}},
		{name: "difficulty too high", question: entity.Question{Question: "Q?", Answer: "A", Category: 1, Difficulty: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, questionRepo, categoryRepo := newTestQuestionService()

			err := svc.CreateQuestion(&tt.question)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			questionRepo.AssertNotCalled(t, "Create", mock.Anything)
			categoryRepo.AssertNotCalled(t, "GetByID", mock.Anything)
		})
	}
}

func TestCreateQuestion_UnknownCategory(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	q := &entity.Question{Question: "Q?", Answer: "A", Category: 42, Difficulty: 3}
	categoryRepo.On("GetByID", uint(42)).Return(nil, apperrors.ErrNotFound)

	err := svc.CreateQuestion(q)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound, "несуществующая категория не должна превращаться в 404")
	questionRepo.AssertNotCalled(t, "ExistsByText", mock.Anything)
}

func TestCreateQuestion_InsertFailure(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	q := &entity.Question{Question: "Q?", Answer: "A", Category: 1, Difficulty: 3}
	dbErr := errors.New("insert failed")

	categoryRepo.On("GetByID", uint(1)).Return(&entity.Category{ID: 1, Type: "Science"}, nil)
	questionRepo.On("ExistsByText", "Q?").Return(false, nil)
	questionRepo.On("Create", q).Return(dbErr)

	err := svc.CreateQuestion(q)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
}

// ============================================================================
// DeleteQuestion
// ============================================================================

func TestDeleteQuestion(t *testing.T) {
	svc, questionRepo, _ := newTestQuestionService()
	questionRepo.On("Delete", uint(15)).Return(nil)

	require.NoError(t, svc.DeleteQuestion(15))
	questionRepo.AssertExpectations(t)
}

func TestDeleteQuestion_NotFound(t *testing.T) {
	svc, questionRepo, _ := newTestQuestionService()
	questionRepo.On("Delete", uint(500)).Return(apperrors.ErrNotFound)

	err := svc.DeleteQuestion(500)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteQuestion_StoreFailure(t *testing.T) {
	svc, questionRepo, _ := newTestQuestionService()
	dbErr := errors.New("deadlock detected")
	questionRepo.On("Delete", uint(5)).Return(dbErr)

	err := svc.DeleteQuestion(5)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

// ============================================================================
// SearchQuestions / GetQuestionsByCategory
// ============================================================================

func TestSearchQuestions(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	found := []entity.Question{{ID: 23, Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: 4, Difficulty: 4}}

	questionRepo.On("Search", "Egyp").Return(found, nil)
	questionRepo.On("Count").Return(int64(19), nil)
	categoryRepo.On("List").Return(testCategories(), nil)

	result, err := svc.SearchQuestions("Egyp")

	require.NoError(t, err)
	assert.Equal(t, found, result.Questions)
	assert.Equal(t, int64(19), result.TotalQuestions)
	assert.Equal(t, []string{"History"}, result.CurrentCategory)
}

func TestSearchQuestions_NoMatches(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	questionRepo.On("Search", "highjack").Return([]entity.Question{}, nil)
	questionRepo.On("Count").Return(int64(19), nil)
	categoryRepo.On("List").Return(testCategories(), nil)

	result, err := svc.SearchQuestions("highjack")

	require.NoError(t, err)
	assert.Empty(t, result.Questions)
	assert.Empty(t, result.CurrentCategory)
}

func TestGetQuestionsByCategory(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	art := []entity.Question{{ID: 16, Category: 2}, {ID: 17, Category: 2}}

	categoryRepo.On("GetByID", uint(2)).Return(&entity.Category{ID: 2, Type: "Art"}, nil)
	questionRepo.On("GetByCategory", uint(2)).Return(art, nil)
	questionRepo.On("Count").Return(int64(19), nil)

	result, err := svc.GetQuestionsByCategory(2)

	require.NoError(t, err)
	assert.Equal(t, art, result.Questions)
	assert.Equal(t, int64(19), result.TotalQuestions)
	assert.Equal(t, "Art", result.CurrentCategory)
}

func TestGetQuestionsByCategory_UnknownCategory(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	categoryRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	result, err := svc.GetQuestionsByCategory(99)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	questionRepo.AssertNotCalled(t, "GetByCategory", mock.Anything)
}

func TestExportQuestions(t *testing.T) {
	svc, questionRepo, categoryRepo := newTestQuestionService()
	questionRepo.On("List").Return(testQuestions(3), nil)
	categoryRepo.On("List").Return(testCategories(), nil)

	questions, idx, err := svc.ExportQuestions()

	require.NoError(t, err)
	assert.Len(t, questions, 3)
	assert.Equal(t, "Art", idx[2])
}
