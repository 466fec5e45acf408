package config

import (
	"fmt"
	"log"
	"os"

	"github.com/DavidBatoDev/pup-alumni-portal-server/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// LoadEnv reads .env if present; deployments set the variables directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

// ConnectDB opens the PostgreSQL connection and migrates the schema.
func ConnectDB() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Manila",
		host, user, password, dbName, port)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	DB = db
	log.Println("Connected to PostgreSQL & migrated successfully")
}

// Migrate creates or updates every table the portal owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Alumni{},
		&models.Address{},
		&models.EmploymentHistory{},
		&models.EducationHistory{},
		&models.Survey{},
		&models.SurveySection{},
		&models.SurveyQuestion{},
		&models.SurveyOption{},
		&models.FeedbackResponse{},
		&models.QuestionResponse{},
		&models.Notification{},
		&models.AlumniNotification{},
		&models.Event{},
		&models.EventPhoto{},
		&models.AlumniEvent{},
		&models.EventFeedback{},
		&models.EventFeedbackPhoto{},
		&models.QuickSurveyResponse{},
		&models.ExportJob{},
	)
}
