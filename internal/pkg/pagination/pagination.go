package pagination

// QuestionsPerPage — фиксированный размер страницы для всех списочных ответов API.
const QuestionsPerPage = 10

// Paginate возвращает срез items, соответствующий странице page (1-indexed).
// Страница за пределами данных дает пустой срез, а не ошибку.
// page <= 0 трактуется как первая страница.
func Paginate[T any](items []T, page int) []T {
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}

	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
