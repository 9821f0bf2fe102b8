package entity

// Category представляет категорию вопросов. Справочные данные:
// ни один HTTP-маршрут не изменяет категории, они заводятся
// административно (cmd/seed-db или напрямую в БД).
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null;uniqueIndex" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}
