package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
func uintPtr(v uint) *uint    { return &v }

func TestListQuestions_SecondPage(t *testing.T) {
	// Arrange: 12 вопросов — вторая страница должна содержать вопросы 11 и 12
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetAll").Return(makeQuestions(12), nil)
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	// Act
	page, total, err := svc.ListQuestions(2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, page, 2)
	assert.Equal(t, uint(11), page[0].ID)
	assert.Equal(t, uint(12), page[1].ID)
}

func TestListQuestions_PageBeyondDataIsNotFound(t *testing.T) {
	// Исчерпанная страница дает 404, а не пустой список
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetAll").Return(makeQuestions(5), nil)
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	_, _, err := svc.ListQuestions(2)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListQuestions_EmptyStoreIsNotFound(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetAll").Return([]entity.Question{}, nil)
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	_, _, err := svc.ListQuestions(1)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteQuestion_Success(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questions := makeQuestions(3)
	questionRepo.On("GetByID", uint(2)).Return(&questions[1], nil)
	questionRepo.On("Delete", uint(2)).Return(nil)
	questionRepo.On("GetAll").Return([]entity.Question{questions[0], questions[2]}, nil)
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	page, total, err := svc.DeleteQuestion(2, 1)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, q := range page {
		assert.NotEqual(t, uint(2), q.ID, "удаленный вопрос не должен попадать в выдачу")
	}
	questionRepo.AssertCalled(t, "Delete", uint(2))
}

func TestDeleteQuestion_MissingIsNotFound(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	_, _, err := svc.DeleteQuestion(99, 1)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	questionRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteQuestion_StorageFailureIsUnprocessable(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questions := makeQuestions(1)
	questionRepo.On("GetByID", uint(1)).Return(&questions[0], nil)
	questionRepo.On("Delete", uint(1)).Return(errors.New("connection reset"))
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	_, _, err := svc.DeleteQuestion(1, 1)

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestCreateQuestion_AllFieldsPresent(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Question).ID = 13
	}).Return(nil)
	questionRepo.On("GetAll").Return(makeQuestions(13), nil)
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	created, page, total, err := svc.CreateQuestion(CreateQuestionParams{
		Question:   strPtr("Who discovered penicillin?"),
		Answer:     strPtr("Alexander Fleming"),
		Difficulty: intPtr(3),
		Category:   uintPtr(1),
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, uint(13), created)
	assert.Equal(t, 13, total)
	assert.Len(t, page, 10)
}

func TestCreateQuestion_MissingFieldFailsAfterInsert(t *testing.T) {
	// Порядок "вставить, потом проверить" сохранен от исходного API:
	// запрос без поля получает ошибку, но запись уже в хранилище
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(nil)
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	_, _, _, err := svc.CreateQuestion(CreateQuestionParams{
		Question:   strPtr("Orphan question"),
		Answer:     nil, // отсутствующее поле
		Difficulty: intPtr(1),
		Category:   uintPtr(1),
	}, 1)

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
	questionRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateQuestion_InsertFailureIsUnprocessable(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).Return(errors.New("disk full"))
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	_, _, _, err := svc.CreateQuestion(CreateQuestionParams{
		Question:   strPtr("Q"),
		Answer:     strPtr("A"),
		Difficulty: intPtr(1),
		Category:   uintPtr(1),
	}, 1)

	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
}

func TestSearchQuestions_EmptyTermIsNotFound(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	_, _, err := svc.SearchQuestions("", 1)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	questionRepo.AssertNotCalled(t, "Search", mock.Anything)
}

func TestSearchQuestions_NoMatchesIsSuccessWithEmptyList(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("Search", "zzz").Return([]entity.Question{}, nil)
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	page, total, err := svc.SearchQuestions("zzz", 1)

	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, 0, total)
}

func TestSearchQuestions_PaginatesMatches(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("Search", "what").Return(makeQuestions(11), nil)
	svc := NewQuestionService(questionRepo, new(MockCategoryRepository))

	page, total, err := svc.SearchQuestions("what", 2)

	require.NoError(t, err)
	assert.Equal(t, 11, total)
	require.Len(t, page, 1)
	assert.Equal(t, uint(11), page[0].ID)
}

func TestQuestionsByCategory_UnknownCategoryIsValidationError(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetByID", uint(42)).Return(nil, apperrors.ErrNotFound)
	svc := NewQuestionService(new(MockQuestionRepository), categoryRepo)

	_, _, _, err := svc.QuestionsByCategory(42, 1)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestQuestionsByCategory_Success(t *testing.T) {
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetByID", uint(1)).Return(&entity.Category{ID: 1, Type: "Science"}, nil)
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("GetByCategory", uint(1)).Return(makeQuestions(4), nil)
	svc := NewQuestionService(questionRepo, categoryRepo)

	page, total, categoryType, err := svc.QuestionsByCategory(1, 1)

	require.NoError(t, err)
	assert.Equal(t, "Science", categoryType)
	assert.Equal(t, 4, total)
	assert.Len(t, page, 4)
}
