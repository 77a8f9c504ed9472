package configuration

import (
	"log"
	"os"

	"virtual-healthcare/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// hold connection to db
var DB *gorm.DB

// initializing db connection
func ConfigDB() {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
	dsn := os.Getenv("DB")
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to the database")
	}

	// Unique indexes on credentials (doctor_id, username) and admin email
	// are the real uniqueness guarantee; application checks only produce
	// friendlier errors.
	DB.AutoMigrate(
		&models.Doctor{},
		&models.TimeSlot{},
		&models.Credential{},
		&models.Admin{},
		&models.Department{},
		&models.HealthTest{},
		&models.Feedback{},
	)
}
