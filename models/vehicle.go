package models

import "time"

// 车辆状态
const (
	VehicleAvailable = "available"
	VehicleSold      = "sold"
	VehicleInRepair  = "in_repair"
)

// 证件办理状态
const (
	DocumentPending    = "pending"
	DocumentInProgress = "in_progress"
	DocumentObtained   = "obtained"
)

// Vehicle 库存车辆
// 售出字段仅在状态为 sold 时填写
type Vehicle struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Make           string     `json:"make" gorm:"size:50;not null"`
	Model          string     `json:"model" gorm:"size:50;not null"`
	Year           int        `json:"year"`
	Plate          string     `json:"plate" gorm:"size:20;not null;uniqueIndex"`
	Color          string     `json:"color" gorm:"size:30"`
	PurchaseAmount int64      `json:"purchase_amount"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	SaleAmount     *int64     `json:"sale_amount"`
	SaleDate       *time.Time `json:"sale_date"`
	Status         string     `json:"status" gorm:"size:20;not null;default:available"`
	Description    string     `json:"description" gorm:"size:500"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName 设置表名
func (Vehicle) TableName() string {
	return "vehicles"
}

// VehicleDocument 车辆证件（过户、行驶证等）
type VehicleDocument struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	VehicleID    uint       `json:"vehicle_id" gorm:"index;not null"`
	DocumentType string     `json:"document_type" gorm:"size:50;not null"`
	Description  string     `json:"description" gorm:"size:255"`
	ObtainedOn   *time.Time `json:"obtained_on"`
	Status       string     `json:"status" gorm:"size:20;not null;default:pending"`
	Notes        string     `json:"notes" gorm:"size:500"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Vehicle Vehicle `json:"-" gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName 设置表名
func (VehicleDocument) TableName() string {
	return "vehicle_documents"
}
