package store

import (
	"strings"

	"garage/models"
)

// CreateCategory 创建支出类别
func (s *Store) CreateCategory(name, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("类别名称不能为空")
	}

	cat := models.Category{Name: name, Description: strings.TrimSpace(description)}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// ListCategories 获取所有支出类别
func (s *Store) ListCategories() ([]models.Category, error) {
	var list []models.Category
	if err := s.db.Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
