package migration

import (
	"fmt"
	"log"

	"kaloria-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserProfile{}); err != nil {
		log.Fatalf("Error migrating user profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodEntry{}); err != nil {
		log.Fatalf("Error migrating food entry database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
