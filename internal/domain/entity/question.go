package entity

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"size:1000;not null" json:"question"`
	Answer     string `gorm:"size:500;not null" json:"answer"`
	Category   uint   `gorm:"index" json:"category"` // Ссылка на Category.ID (без FK-каскада)
	Difficulty int    `gorm:"not null;default:1" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// FormattedQuestion — проекция вопроса, отдаваемая клиенту
type FormattedQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Format возвращает клиентскую проекцию вопроса
func (q *Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// FormatQuestions преобразует срез вопросов в клиентские проекции.
// Всегда возвращает не-nil слайс, чтобы в JSON уходил [], а не null.
func FormatQuestions(questions []Question) []FormattedQuestion {
	formatted := make([]FormattedQuestion, 0, len(questions))
	for i := range questions {
		formatted = append(formatted, questions[i].Format())
	}
	return formatted
}
