package api

import (
	"garage/store"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 支出类别处理器
type CategoryHandler struct {
	store *store.Store
}

// NewCategoryHandler 创建支出类别处理器
func NewCategoryHandler(s *store.Store) *CategoryHandler {
	return &CategoryHandler{store: s}
}

// CreateCategoryRequest 创建类别请求
type CreateCategoryRequest struct {
	Name        string `json:"name" example:"订阅服务"`
	Description string `json:"description" example:"每月固定扣费的订阅"`
}

// List 获取类别列表
// @Summary 获取支出类别列表
// @Tags 类别
// @Produce json
// @Success 200 {object} map[string]interface{} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.store.ListCategories()
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, list)
}

// Create 创建类别
// @Summary 创建支出类别
// @Description 名称必填，描述可选
// @Tags 类别
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "类别信息"
// @Success 200 {object} Outcome "创建成功"
// @Failure 400 {object} Outcome "参数错误"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	cat, err := h.store.CreateCategory(req.Name, req.Description)
	if err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, cat.ID)
}
