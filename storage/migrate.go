package storage

import (
	"errors"

	"gorm.io/gorm"

	"muhibacademy/models"
)

// schemaVersion is bumped whenever a model gains columns. Migrate is a no-op
// for processes that already see the current version, so concurrent
// multi-instance startups do not race on DDL.
const schemaVersion = 1

func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&models.SchemaVersion{}); err != nil {
		return err
	}

	var current models.SchemaVersion
	err := s.db.First(&current).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil && current.Version >= schemaVersion {
		return nil
	}

	s.log.Println("Running database migrations...")
	if err := s.db.AutoMigrate(
		&models.Category{},
		&models.Admin{},
		&models.Course{},
	); err != nil {
		return err
	}

	current.Version = schemaVersion
	if err := s.db.Save(&current).Error; err != nil {
		return err
	}
	s.log.Println("Database migrations completed")
	return nil
}
