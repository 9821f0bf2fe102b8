package service

import (
	"fmt"
	"math/rand"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	"github.com/yourusername/trivia-api/internal/domain/repository"
)

// QuizService выбирает очередной вопрос викторины
type QuizService struct {
	questionRepo repository.QuestionRepository
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{questionRepo: questionRepo}
}

// NextQuestion возвращает случайный вопрос, не входящий в previousIDs.
// categoryID == 0 означает выборку по всем категориям.
//
// Выбор — равномерный розыгрыш БЕЗ возвращения по заранее построенному
// подмножеству невиданных вопросов, поэтому всегда завершается за один шаг.
// Возвращает (nil, nil), когда невиданных вопросов не осталось: пул пуст,
// previousIDs покрывает весь пул, либо содержит дубликаты/чужие ID —
// во всех случаях клиент трактует это как завершение викторины.
func (s *QuizService) NextQuestion(previousIDs []uint, categoryID uint) (*entity.Question, error) {
	var pool []entity.Question
	var err error

	if categoryID == 0 {
		pool, err = s.questionRepo.GetAll()
	} else {
		pool, err = s.questionRepo.GetByCategory(categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz pool: %w", err)
	}

	if len(previousIDs) == len(pool) {
		return nil, nil
	}

	seen := make(map[uint]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}

	unseen := make([]entity.Question, 0, len(pool))
	for _, question := range pool {
		if _, ok := seen[question.ID]; !ok {
			unseen = append(unseen, question)
		}
	}

	if len(unseen) == 0 {
		return nil, nil
	}

	question := unseen[rand.Intn(len(unseen))]
	return &question, nil
}
