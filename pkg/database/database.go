package database

import (
	"fmt"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedCatalogue(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Material{},
		&model.Enrollment{},
		&model.MaterialProgress{},
		&model.CourseProgressOverride{},
		&model.QuizQuestion{},
		&model.QuizScore{},
		&model.QuizLeaderboardEntry{},
		&model.LeaderboardEntry{},
		&model.Badge{},
		&model.AwardGrant{},
		&model.ForumThread{},
		&model.ForumReply{},
		&model.MaterialComment{},
		&model.CoursePurchase{},
	)
}

// SeedCatalogue inserts the static course catalogue and quiz content if
// the tables are empty. Catalogue data is immutable at runtime.
func SeedCatalogue(db *gorm.DB) error {
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count == 0 {
		for _, c := range defaultCourses() {
			if err := db.Create(&c).Error; err != nil {
				return err
			}
		}
		log.Println("Course catalogue seeded")
	}

	var qCount int64
	db.Model(&model.QuizQuestion{}).Count(&qCount)
	if qCount == 0 {
		for _, q := range defaultQuizQuestions() {
			if err := db.Create(&q).Error; err != nil {
				return err
			}
		}
		log.Println("Quiz content seeded")
	}

	return nil
}

func defaultCourses() []model.Course {
	return []model.Course{
		{
			ID:          "1",
			Slug:        "web-fundamentals",
			Title:       "Web Fundamentals",
			Description: "Learn the basics of HTML, CSS, and JavaScript to build your first website.",
			Image:       "/file.svg",
			Premium:     false,
			Materials: []model.Material{
				{ID: "m1", Position: 1, Title: "Introduction to HTML"},
				{ID: "m2", Position: 2, Title: "CSS Basics"},
				{ID: "m3", Position: 3, Title: "JavaScript Essentials"},
			},
		},
		{
			ID:          "2",
			Slug:        "react-for-beginners",
			Title:       "React for Beginners",
			Description: "A hands-on introduction to building interactive UIs with React.",
			Image:       "/next.svg",
			Premium:     false,
			Materials: []model.Material{
				{ID: "m1", Position: 1, Title: "Getting Started with React"},
				{ID: "m2", Position: 2, Title: "JSX and Components"},
				{ID: "m3", Position: 3, Title: "State and Props"},
			},
		},
		{
			ID:          "3",
			Slug:        "fullstack-nextjs",
			Title:       "Fullstack Next.js",
			Description: "Build scalable fullstack apps using Next.js, Prisma, and PostgreSQL.",
			Image:       "/globe.svg",
			Premium:     true,
			Materials: []model.Material{
				{ID: "m1", Position: 1, Title: "Next.js Fundamentals"},
				{ID: "m2", Position: 2, Title: "API Routes & Database"},
				{ID: "m3", Position: 3, Title: "Deploying to Vercel"},
			},
		},
	}
}

func defaultQuizQuestions() []model.QuizQuestion {
	return []model.QuizQuestion{
		{CourseID: "1", MaterialID: "m1", Position: 1,
			Text:    "What does HTML stand for?",
			Options: model.StringSlice{"HyperText Markup Language", "Home Tool Markup Language", "Hyperlinks and Text Markup Language"},
			Answer:  0},
		{CourseID: "1", MaterialID: "m2", Position: 1,
			Text:    "Which property is used to change text color in CSS?",
			Options: model.StringSlice{"font-color", "color", "text-color"},
			Answer:  1},
		{CourseID: "1", MaterialID: "m3", Position: 1,
			Text:    "Which symbol is used for single-line comments in JavaScript?",
			Options: model.StringSlice{"//", "<!-- -->", "#"},
			Answer:  0},
		{CourseID: "2", MaterialID: "m1", Position: 1,
			Text:    "What is JSX?",
			Options: model.StringSlice{"A CSS preprocessor", "A syntax extension for JavaScript", "A database query language"},
			Answer:  1},
		{CourseID: "2", MaterialID: "m2", Position: 1,
			Text:    "What is a React component?",
			Options: model.StringSlice{"A function or class that returns JSX", "A CSS file", "A database"},
			Answer:  0},
		{CourseID: "2", MaterialID: "m3", Position: 1,
			Text:    "Which hook is used for state in React?",
			Options: model.StringSlice{"useState", "useEffect", "useContext"},
			Answer:  0},
		{CourseID: "3", MaterialID: "m1", Position: 1,
			Text:    "What is Next.js primarily used for?",
			Options: model.StringSlice{"Mobile apps", "Server-side rendering for React", "Game development"},
			Answer:  1},
		{CourseID: "3", MaterialID: "m2", Position: 1,
			Text:    "Which ORM does the course use?",
			Options: model.StringSlice{"Sequelize", "Prisma", "TypeORM"},
			Answer:  1},
		{CourseID: "3", MaterialID: "m3", Position: 1,
			Text:    "Where can you deploy a Next.js app for free?",
			Options: model.StringSlice{"Vercel", "AWS", "Heroku"},
			Answer:  0},
	}
}
