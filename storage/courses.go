package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"muhibacademy/models"
)

// ListActiveCourses returns active courses newest first. A non-empty category
// name other than the "all" sentinel restricts to exact joined-name matches.
func (s *Store) ListActiveCourses(category string) ([]models.Course, error) {
	q := s.db.Preload("Category").
		Where("courses.active = ?", true).
		Order("courses.created_at DESC")

	if category != "" && category != "all" {
		q = q.Joins("JOIN categories ON categories.id = courses.category_id").
			Where("categories.name = ?", category)
	}

	var courses []models.Course
	if err := q.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse fetches one active course or gorm.ErrRecordNotFound.
func (s *Store) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	err := s.db.Preload("Category").
		First(&course, "id = ? AND active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *Store) CountActiveCourses() (int64, error) {
	var count int64
	err := s.db.Model(&models.Course{}).Where("active = ?", true).Count(&count).Error
	return count, err
}

func (s *Store) CreateCourse(course *models.Course) error {
	return s.db.Omit(clause.Associations).Create(course).Error
}

// UpdateCourse persists the full column set of an existing row in one
// statement; associations are never written through it.
func (s *Store) UpdateCourse(course *models.Course) error {
	return s.db.Omit(clause.Associations).Save(course).Error
}

// SoftDeleteCourse flips the active flag. Soft-deleted rows never come back
// through the listing or lookup queries.
func (s *Store) SoftDeleteCourse(id uint) error {
	res := s.db.Model(&models.Course{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HardDeleteCourse removes the row entirely.
func (s *Store) HardDeleteCourse(id uint) error {
	res := s.db.Delete(&models.Course{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("name").Find(&categories).Error
	return categories, err
}

func (s *Store) CategoryExists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
