package dto

import (
	"github.com/yourusername/trivia-api/internal/domain/entity"
)

// CategoryListResponse — ответ GET /categories
type CategoryListResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// QuestionListResponse — ответ GET /questions
type QuestionListResponse struct {
	Success        bool                       `json:"success"`
	Questions      []entity.FormattedQuestion `json:"questions"`
	TotalQuestions int                        `json:"total_questions"`
	Categories     map[uint]string            `json:"categories"`
}

// DeleteQuestionResponse — ответ DELETE /questions/{id}
type DeleteQuestionResponse struct {
	Success        bool                       `json:"success"`
	Deleted        uint                       `json:"deleted"`
	Questions      []entity.FormattedQuestion `json:"questions"`
	TotalQuestions int                        `json:"total_questions"`
}

// CreateQuestionResponse — ответ POST /questions
type CreateQuestionResponse struct {
	Success        bool                       `json:"success"`
	Created        uint                       `json:"created"`
	Questions      []entity.FormattedQuestion `json:"questions"`
	TotalQuestions int                        `json:"total_questions"`
}

// SearchQuestionsResponse — ответ POST /questions/search
type SearchQuestionsResponse struct {
	Success        bool                       `json:"success"`
	Questions      []entity.FormattedQuestion `json:"questions"`
	TotalQuestions int                        `json:"total_questions"`
}

// CategoryQuestionsResponse — ответ GET /categories/{id}/questions
type CategoryQuestionsResponse struct {
	Success         bool                       `json:"success"`
	Questions       []entity.FormattedQuestion `json:"questions"`
	TotalQuestions  int                        `json:"total_questions"`
	CurrentCategory string                     `json:"current_category"`
}

// QuizResponse — ответ POST /quizzes. Question отсутствует в JSON,
// когда невиданных вопросов не осталось (викторина завершена).
type QuizResponse struct {
	Success  bool                      `json:"success"`
	Question *entity.FormattedQuestion `json:"question,omitempty"`
}

// NewQuestionListResponse создает DTO списка вопросов
func NewQuestionListResponse(questions []entity.Question, total int, categories map[uint]string) QuestionListResponse {
	return QuestionListResponse{
		Success:        true,
		Questions:      entity.FormatQuestions(questions),
		TotalQuestions: total,
		Categories:     categories,
	}
}

// NewQuizResponse создает DTO ответа викторины
func NewQuizResponse(question *entity.Question) QuizResponse {
	resp := QuizResponse{Success: true}
	if question != nil {
		formatted := question.Format()
		resp.Question = &formatted
	}
	return resp
}
