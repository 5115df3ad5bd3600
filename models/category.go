package models

// Category 支出类别
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description" gorm:"size:255"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}
