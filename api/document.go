package api

import (
	"strconv"

	"garage/store"

	"github.com/gin-gonic/gin"
)

// DocumentHandler 车辆证件处理器
type DocumentHandler struct {
	store *store.Store
}

// NewDocumentHandler 创建车辆证件处理器
func NewDocumentHandler(s *store.Store) *DocumentHandler {
	return &DocumentHandler{store: s}
}

// DocumentRequest 创建/更新证件请求
type DocumentRequest struct {
	DocumentType string `json:"document_type" example:"过户"`
	Description  string `json:"description"`
	ObtainedOn   string `json:"obtained_on" example:"2025-08-01"`
	Status       string `json:"status" example:"pending"`
	Notes        string `json:"notes"`
}

// DocumentStatusRequest 更新证件状态请求
type DocumentStatusRequest struct {
	Status string `json:"status" example:"obtained"`
}

func (r *DocumentRequest) toInput() (store.DocumentInput, error) {
	obtainedOn, err := parseDate(r.ObtainedOn)
	if err != nil {
		return store.DocumentInput{}, store.NewValidationError("获得日期格式错误，应为: 2006-01-02")
	}
	return store.DocumentInput{
		DocumentType: r.DocumentType,
		Description:  r.Description,
		ObtainedOn:   obtainedOn,
		Status:       r.Status,
		Notes:        r.Notes,
	}, nil
}

// List 获取某辆车的证件列表
// @Summary 获取车辆证件列表
// @Tags 车辆证件
// @Produce json
// @Param id path int true "车辆ID"
// @Success 200 {object} map[string]interface{} "获取成功"
// @Router /api/v1/vehicles/{id}/documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	vehicleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	list, err := h.store.ListDocuments(uint(vehicleID))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, list)
}

// Create 为车辆创建证件
// @Summary 创建车辆证件
// @Tags 车辆证件
// @Accept json
// @Produce json
// @Param id path int true "车辆ID"
// @Param request body DocumentRequest true "证件信息"
// @Success 200 {object} Outcome "创建成功"
// @Failure 404 {object} Outcome "车辆不存在"
// @Router /api/v1/vehicles/{id}/documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	vehicleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	in, err := req.toInput()
	if err != nil {
		Fail(c, err)
		return
	}

	id, err := h.store.CreateDocument(uint(vehicleID), in)
	if err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, id)
}

// Update 整条更新证件
// @Summary 更新车辆证件
// @Tags 车辆证件
// @Accept json
// @Produce json
// @Param id path int true "证件ID"
// @Param request body DocumentRequest true "证件信息"
// @Success 200 {object} Outcome "更新成功"
// @Failure 404 {object} Outcome "证件不存在"
// @Router /api/v1/documents/{id} [put]
func (h *DocumentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	in, err := req.toInput()
	if err != nil {
		Fail(c, err)
		return
	}

	if err := h.store.UpdateDocument(uint(id), in); err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, uint(id))
}

// UpdateStatus 仅更新证件办理状态
// @Summary 更新证件状态
// @Tags 车辆证件
// @Accept json
// @Produce json
// @Param id path int true "证件ID"
// @Param request body DocumentStatusRequest true "状态信息"
// @Success 200 {object} Outcome "更新成功"
// @Failure 404 {object} Outcome "证件不存在"
// @Router /api/v1/documents/{id}/status [patch]
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req DocumentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if err := h.store.UpdateDocumentStatus(uint(id), req.Status); err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, uint(id))
}

// Delete 删除证件
// @Summary 删除车辆证件
// @Tags 车辆证件
// @Produce json
// @Param id path int true "证件ID"
// @Success 200 {object} Outcome "删除成功"
// @Failure 404 {object} Outcome "证件不存在"
// @Router /api/v1/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if err := h.store.DeleteDocument(uint(id)); err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, 0)
}
