package api

import (
	"time"

	"garage/store"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 支出处理器
type ExpenseHandler struct {
	store *store.Store
}

// NewExpenseHandler 创建支出处理器
func NewExpenseHandler(s *store.Store) *ExpenseHandler {
	return &ExpenseHandler{store: s}
}

// CreateExpenseRequest 创建支出请求
// 金额为最小货币单位的整数
type CreateExpenseRequest struct {
	Name             string `json:"name" example:"Netflix"`
	Amount           int64  `json:"amount" example:"500000"`
	Status           string `json:"status" example:"active"`
	PaymentType      string `json:"payment_type" example:"installments"`
	BillingDay       int    `json:"billing_day" example:"15"`
	Note             string `json:"note"`
	InstallmentCount int    `json:"installment_count" example:"12"`
	InstallmentsPaid int    `json:"installments_paid" example:"0"`
	CategoryID       *uint  `json:"category_id"`
}

// List 获取支出列表
// @Summary 获取支出列表
// @Tags 支出
// @Produce json
// @Param status query string false "按状态筛选 (created/active/finished/unique_paid)"
// @Success 200 {object} map[string]interface{} "获取成功"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	list, err := h.store.ListExpenses(c.Query("status"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, list)
}

// Create 创建支出并写入首条付款记录
// @Summary 创建支出
// @Description 原子地插入支出和首条付款记录（两行同生同灭）。一次性支出创建即结清。
// @Tags 支出
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "支出信息"
// @Success 200 {object} Outcome "创建成功"
// @Failure 400 {object} Outcome "参数错误"
// @Failure 409 {object} Outcome "引用的类别不存在"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	id, err := h.store.CreateExpenseWithInitialPayment(time.Now(), store.ExpenseInput{
		Name:             req.Name,
		Amount:           req.Amount,
		Status:           req.Status,
		PaymentType:      req.PaymentType,
		BillingDay:       req.BillingDay,
		Note:             req.Note,
		InstallmentCount: req.InstallmentCount,
		InstallmentsPaid: req.InstallmentsPaid,
		CategoryID:       req.CategoryID,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, id)
}
