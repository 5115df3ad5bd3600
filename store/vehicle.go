package store

import (
	"errors"
	"strings"
	"time"

	"garage/models"

	"gorm.io/gorm"
)

// VehicleInput 创建/更新车辆的入参
type VehicleInput struct {
	Make           string
	Model          string
	Year           int
	Plate          string
	Color          string
	PurchaseAmount int64
	PurchaseDate   *time.Time
	SaleAmount     *int64
	SaleDate       *time.Time
	Status         string
	Description    string
}

// VehicleRow 车辆列表行，附带证件数量
type VehicleRow struct {
	models.Vehicle
	DocumentCount int64 `json:"document_count"`
}

func validVehicleStatus(status string) bool {
	switch status {
	case models.VehicleAvailable, models.VehicleSold, models.VehicleInRepair:
		return true
	}
	return false
}

func (in *VehicleInput) validate() error {
	in.Make = strings.TrimSpace(in.Make)
	in.Model = strings.TrimSpace(in.Model)
	in.Plate = strings.TrimSpace(in.Plate)
	if in.Make == "" || in.Model == "" {
		return NewValidationError("品牌和型号不能为空")
	}
	if in.Plate == "" {
		return NewValidationError("车牌号不能为空")
	}
	if in.Status != "" && !validVehicleStatus(in.Status) {
		return NewValidationError("无效的车辆状态: %s", in.Status)
	}
	return nil
}

// ListVehicles 获取车辆列表（附每辆车的证件数量），按入库时间倒序
func (s *Store) ListVehicles() ([]VehicleRow, error) {
	var rows []VehicleRow
	err := s.db.Model(&models.Vehicle{}).
		Select("vehicles.*, COUNT(vehicle_documents.id) AS document_count").
		Joins("LEFT JOIN vehicle_documents ON vehicle_documents.vehicle_id = vehicles.id").
		Group("vehicles.id").
		Order("vehicles.created_at DESC, vehicles.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetVehicle 按 ID 获取车辆
func (s *Store) GetVehicle(id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "车辆", ID: id}
		}
		return nil, err
	}
	return &v, nil
}

// CreateVehicle 创建车辆，车牌号全局唯一
func (s *Store) CreateVehicle(in VehicleInput) (uint, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	status := in.Status
	if status == "" {
		status = models.VehicleAvailable
	}
	v := models.Vehicle{
		Make:           in.Make,
		Model:          in.Model,
		Year:           in.Year,
		Plate:          in.Plate,
		Color:          in.Color,
		PurchaseAmount: in.PurchaseAmount,
		PurchaseDate:   in.PurchaseDate,
		Status:         status,
		Description:    in.Description,
	}
	if err := s.db.Create(&v).Error; err != nil {
		return 0, translateConstraint(err, "车牌号已存在: "+in.Plate)
	}
	return v.ID, nil
}

// UpdateVehicle 整条更新车辆，updated_at 随之刷新
// 非售出状态下售出金额/日期会被清空
func (s *Store) UpdateVehicle(id uint, in VehicleInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	if in.Status == "" {
		return NewValidationError("车辆状态不能为空")
	}
	saleAmount, saleDate := in.SaleAmount, in.SaleDate
	if in.Status != models.VehicleSold {
		saleAmount, saleDate = nil, nil
	}

	res := s.db.Model(&models.Vehicle{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"make":            in.Make,
			"model":           in.Model,
			"year":            in.Year,
			"plate":           in.Plate,
			"color":           in.Color,
			"purchase_amount": in.PurchaseAmount,
			"purchase_date":   in.PurchaseDate,
			"sale_amount":     saleAmount,
			"sale_date":       saleDate,
			"status":          in.Status,
			"description":     in.Description,
		})
	if res.Error != nil {
		return translateConstraint(res.Error, "车牌号已存在: "+in.Plate)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "车辆", ID: id}
	}
	return nil
}

// UpdateVehicleStatus 仅更新车辆状态
// 售出时一并记录售出金额和日期，其它状态清空售出字段
func (s *Store) UpdateVehicleStatus(id uint, status string, saleAmount *int64, saleDate *time.Time) error {
	if !validVehicleStatus(status) {
		return NewValidationError("无效的车辆状态: %s", status)
	}
	if status != models.VehicleSold {
		saleAmount, saleDate = nil, nil
	}

	res := s.db.Model(&models.Vehicle{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"sale_amount": saleAmount,
			"sale_date":   saleDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "车辆", ID: id}
	}
	return nil
}

// DeleteVehicle 删除车辆，证件随外键级联删除
func (s *Store) DeleteVehicle(id uint) error {
	res := s.db.Delete(&models.Vehicle{}, id)
	if res.Error != nil {
		return translateConstraint(res.Error, "车辆仍被引用，无法删除")
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "车辆", ID: id}
	}
	return nil
}
