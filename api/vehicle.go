package api

import (
	"strconv"
	"time"

	"garage/store"

	"github.com/gin-gonic/gin"
)

// VehicleHandler 车辆处理器
type VehicleHandler struct {
	store *store.Store
}

// NewVehicleHandler 创建车辆处理器
func NewVehicleHandler(s *store.Store) *VehicleHandler {
	return &VehicleHandler{store: s}
}

// VehicleRequest 创建/更新车辆请求，日期格式 2006-01-02
type VehicleRequest struct {
	Make           string `json:"make" example:"Toyota"`
	Model          string `json:"model" example:"Corolla"`
	Year           int    `json:"year" example:"2018"`
	Plate          string `json:"plate" example:"AB123CD"`
	Color          string `json:"color"`
	PurchaseAmount int64  `json:"purchase_amount"`
	PurchaseDate   string `json:"purchase_date" example:"2024-05-20"`
	SaleAmount     *int64 `json:"sale_amount"`
	SaleDate       string `json:"sale_date"`
	Status         string `json:"status" example:"available"`
	Description    string `json:"description"`
}

// VehicleStatusRequest 更新车辆状态请求
type VehicleStatusRequest struct {
	Status     string `json:"status" example:"sold"`
	SaleAmount *int64 `json:"sale_amount"`
	SaleDate   string `json:"sale_date" example:"2025-11-02"`
}

// parseDate 解析可选日期参数，空串返回 nil
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *VehicleRequest) toInput() (store.VehicleInput, error) {
	purchaseDate, err := parseDate(r.PurchaseDate)
	if err != nil {
		return store.VehicleInput{}, store.NewValidationError("购入日期格式错误，应为: 2006-01-02")
	}
	saleDate, err := parseDate(r.SaleDate)
	if err != nil {
		return store.VehicleInput{}, store.NewValidationError("售出日期格式错误，应为: 2006-01-02")
	}
	return store.VehicleInput{
		Make:           r.Make,
		Model:          r.Model,
		Year:           r.Year,
		Plate:          r.Plate,
		Color:          r.Color,
		PurchaseAmount: r.PurchaseAmount,
		PurchaseDate:   purchaseDate,
		SaleAmount:     r.SaleAmount,
		SaleDate:       saleDate,
		Status:         r.Status,
		Description:    r.Description,
	}, nil
}

// List 获取车辆列表
// @Summary 获取车辆列表
// @Description 附带每辆车的证件数量，按入库时间倒序
// @Tags 车辆
// @Produce json
// @Success 200 {object} map[string]interface{} "获取成功"
// @Router /api/v1/vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	rows, err := h.store.ListVehicles()
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, rows)
}

// Get 按 ID 获取车辆
// @Summary 获取车辆详情
// @Tags 车辆
// @Produce json
// @Param id path int true "车辆ID"
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 404 {object} Outcome "车辆不存在"
// @Router /api/v1/vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	v, err := h.store.GetVehicle(uint(id))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, v)
}

// Create 创建车辆
// @Summary 创建车辆
// @Description 车牌号全局唯一，重复时返回冲突
// @Tags 车辆
// @Accept json
// @Produce json
// @Param request body VehicleRequest true "车辆信息"
// @Success 200 {object} Outcome "创建成功"
// @Failure 400 {object} Outcome "参数错误"
// @Failure 409 {object} Outcome "车牌号已存在"
// @Router /api/v1/vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	in, err := req.toInput()
	if err != nil {
		Fail(c, err)
		return
	}

	id, err := h.store.CreateVehicle(in)
	if err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, id)
}

// Update 整条更新车辆
// @Summary 更新车辆
// @Tags 车辆
// @Accept json
// @Produce json
// @Param id path int true "车辆ID"
// @Param request body VehicleRequest true "车辆信息"
// @Success 200 {object} Outcome "更新成功"
// @Failure 404 {object} Outcome "车辆不存在"
// @Router /api/v1/vehicles/{id} [put]
func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	in, err := req.toInput()
	if err != nil {
		Fail(c, err)
		return
	}

	if err := h.store.UpdateVehicle(uint(id), in); err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, uint(id))
}

// UpdateStatus 仅更新车辆状态
// @Summary 更新车辆状态
// @Description 售出时一并记录售出金额和日期
// @Tags 车辆
// @Accept json
// @Produce json
// @Param id path int true "车辆ID"
// @Param request body VehicleStatusRequest true "状态信息"
// @Success 200 {object} Outcome "更新成功"
// @Failure 404 {object} Outcome "车辆不存在"
// @Router /api/v1/vehicles/{id}/status [patch]
func (h *VehicleHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var req VehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	saleDate, err := parseDate(req.SaleDate)
	if err != nil {
		BadRequest(c, "售出日期格式错误，应为: 2006-01-02")
		return
	}

	if err := h.store.UpdateVehicleStatus(uint(id), req.Status, req.SaleAmount, saleDate); err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, uint(id))
}

// Delete 删除车辆
// @Summary 删除车辆
// @Description 证件随外键级联删除
// @Tags 车辆
// @Produce json
// @Param id path int true "车辆ID"
// @Success 200 {object} Outcome "删除成功"
// @Failure 404 {object} Outcome "车辆不存在"
// @Router /api/v1/vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if err := h.store.DeleteVehicle(uint(id)); err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, 0)
}
