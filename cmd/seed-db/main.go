package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
	pgRepo "github.com/yourusername/trivia-api/internal/repository/postgres"
	"github.com/yourusername/trivia-api/pkg/database"
)

// Категории — неизменяемые справочные данные: API их не изменяет,
// они заводятся только этой утилитой или напрямую в БД.
var defaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

type seedQuestion struct {
	question   string
	answer     string
	category   string
	difficulty int
}

var sampleQuestions = []seedQuestion{
	{"What boxer's original name is Cassius Clay?", "Muhammad Ali", "History", 1},
	{"What is the heaviest organ in the human body?", "The Liver", "Science", 4},
	{"Who discovered penicillin?", "Alexander Fleming", "Science", 3},
	{"What is the largest lake in Africa?", "Lake Victoria", "Geography", 2},
	{"In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", "Geography", 3},
	{"La Giaconda is better known as what?", "Mona Lisa", "Art", 3},
	{"Which Dutch graphic artist was a creator of optical illusions?", "Escher", "Art", 1},
	{"Which country won the first ever soccer World Cup in 1930?", "Uruguay", "Sports", 4},
	{"What movie earned Tom Hanks his third straight Oscar nomination in 1996?", "Apollo 13", "Entertainment", 4},
	{"What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", "Entertainment", 4},
	{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", "History", 2},
	{"Hematology is a branch of medicine involving the study of what?", "Blood", "Science", 4},
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	withQuestions := flag.Bool("with-questions", false, "also seed sample questions")
	migrationsPath := flag.String("migrations", "migrations", "path to migration files")
	flag.Parse()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOr("DATABASE_HOST", "localhost"),
		envOr("DATABASE_PORT", "5432"),
		envOr("DATABASE_USER", "postgres"),
		envOr("DATABASE_PASSWORD", ""),
		envOr("DATABASE_DBNAME", "trivia_db"),
		envOr("DATABASE_SSLMODE", "disable"),
	)

	// Миграции применяем через отдельное подключение database/sql (lib/pq)
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Fatal(err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+*migrationsPath,
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Засев идет через те же репозитории, что использует API
	db, err := database.NewPostgresDB(dsn)
	if err != nil {
		log.Fatal(err)
	}

	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)

	// Повторный запуск не дублирует категории: уникальный индекс на type
	seededCategories := 0
	for _, categoryType := range defaultCategories {
		err := categoryRepo.Create(&entity.Category{Type: categoryType})
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				continue // категория уже существует
			}
			log.Fatalf("Failed to seed category %q: %v", categoryType, err)
		}
		seededCategories++
	}
	log.Printf("Seeded %d new categories", seededCategories)

	if *withQuestions {
		categories, err := categoryRepo.GetAll()
		if err != nil {
			log.Fatal(err)
		}
		categoryIDByType := make(map[string]uint, len(categories))
		for _, category := range categories {
			categoryIDByType[category.Type] = category.ID
		}

		seeded := 0
		for _, q := range sampleQuestions {
			categoryID, ok := categoryIDByType[q.category]
			if !ok {
				log.Fatalf("Unknown category %q for question %q", q.category, q.question)
			}

			// Вопрос с тем же текстом не заводим повторно
			existing, err := questionRepo.Search(q.question)
			if err != nil {
				log.Fatal(err)
			}
			if len(existing) > 0 {
				continue
			}

			question := entity.Question{
				Question:   q.question,
				Answer:     q.answer,
				Category:   categoryID,
				Difficulty: q.difficulty,
			}
			if err := questionRepo.Create(&question); err != nil {
				log.Fatalf("Failed to seed question %q: %v", q.question, err)
			}
			seeded++
		}
		log.Printf("Seeded %d new sample questions", seeded)
	}

	total, err := questionRepo.Count()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Database seed complete: %d questions total.\n", total)
}
