package store

import (
	"strings"
	"time"

	"garage/models"
)

// DocumentInput 创建/更新车辆证件的入参
type DocumentInput struct {
	DocumentType string
	Description  string
	ObtainedOn   *time.Time
	Status       string
	Notes        string
}

func validDocumentStatus(status string) bool {
	switch status {
	case models.DocumentPending, models.DocumentInProgress, models.DocumentObtained:
		return true
	}
	return false
}

func (in *DocumentInput) validate() error {
	in.DocumentType = strings.TrimSpace(in.DocumentType)
	if in.DocumentType == "" {
		return NewValidationError("证件类型不能为空")
	}
	if in.Status != "" && !validDocumentStatus(in.Status) {
		return NewValidationError("无效的证件状态: %s", in.Status)
	}
	return nil
}

// ListDocuments 获取某辆车的全部证件，按创建时间倒序
func (s *Store) ListDocuments(vehicleID uint) ([]models.VehicleDocument, error) {
	var list []models.VehicleDocument
	err := s.db.Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CreateDocument 为指定车辆创建证件
func (s *Store) CreateDocument(vehicleID uint, in DocumentInput) (uint, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	if _, err := s.GetVehicle(vehicleID); err != nil {
		return 0, err
	}

	status := in.Status
	if status == "" {
		status = models.DocumentPending
	}
	doc := models.VehicleDocument{
		VehicleID:    vehicleID,
		DocumentType: in.DocumentType,
		Description:  in.Description,
		ObtainedOn:   in.ObtainedOn,
		Status:       status,
		Notes:        in.Notes,
	}
	if err := s.db.Create(&doc).Error; err != nil {
		return 0, translateConstraint(err, "证件引用的车辆不存在")
	}
	return doc.ID, nil
}

// UpdateDocument 整条更新证件，updated_at 随之刷新
func (s *Store) UpdateDocument(id uint, in DocumentInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	if in.Status == "" {
		return NewValidationError("证件状态不能为空")
	}

	res := s.db.Model(&models.VehicleDocument{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"document_type": in.DocumentType,
			"description":   in.Description,
			"obtained_on":   in.ObtainedOn,
			"status":        in.Status,
			"notes":         in.Notes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "证件", ID: id}
	}
	return nil
}

// UpdateDocumentStatus 仅更新证件办理状态
func (s *Store) UpdateDocumentStatus(id uint, status string) error {
	if !validDocumentStatus(status) {
		return NewValidationError("无效的证件状态: %s", status)
	}
	res := s.db.Model(&models.VehicleDocument{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "证件", ID: id}
	}
	return nil
}

// DeleteDocument 删除证件
func (s *Store) DeleteDocument(id uint) error {
	res := s.db.Delete(&models.VehicleDocument{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "证件", ID: id}
	}
	return nil
}
