package api

import (
	"strconv"
	"time"

	"garage/store"

	"github.com/gin-gonic/gin"
)

// HistoryHandler 付款历史处理器
type HistoryHandler struct {
	store *store.Store
}

// NewHistoryHandler 创建付款历史处理器
func NewHistoryHandler(s *store.Store) *HistoryHandler {
	return &HistoryHandler{store: s}
}

// List 获取全部付款历史
// @Summary 获取付款历史
// @Description 连接支出和类别后的展示行，按付款日期倒序、同日按 ID 倒序
// @Tags 付款历史
// @Produce json
// @Success 200 {object} map[string]interface{} "获取成功"
// @Router /api/v1/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	rows, err := h.store.ListPaymentHistory()
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, rows)
}

// ListMonth 获取指定月份的付款历史
// @Summary 获取指定月份的付款历史
// @Tags 付款历史
// @Produce json
// @Param month query int true "月份 1-12"
// @Param year query int true "年份"
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 400 {object} Outcome "参数错误"
// @Router /api/v1/history/month [get]
func (h *HistoryHandler) ListMonth(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		BadRequest(c, "无效的月份")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		BadRequest(c, "无效的年份")
		return
	}

	rows, err := h.store.ListPaymentHistoryForMonth(time.Month(month), year)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, rows)
}

// MonthlyTotals 获取最近 N 个月的付款合计
// @Summary 获取最近 N 个月的月度合计
// @Description 没有付款的月份也会返回，合计为 0，按时间升序
// @Tags 付款历史
// @Produce json
// @Param months query int false "月份数" default(6)
// @Success 200 {object} map[string]interface{} "获取成功"
// @Router /api/v1/statistics/monthly [get]
func (h *HistoryHandler) MonthlyTotals(c *gin.Context) {
	months := 6
	if v := c.Query("months"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			BadRequest(c, "无效的月份数")
			return
		}
		months = n
	}
	if months > 24 {
		months = 24
	}

	totals, err := h.store.MonthlyTotals(time.Now(), months)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, totals)
}

// Delete 删除单条付款历史
// @Summary 删除付款历史记录
// @Description 人工更正用。不回写支出的已付期数。
// @Tags 付款历史
// @Produce json
// @Param id path int true "付款记录ID"
// @Success 200 {object} Outcome "删除成功"
// @Failure 404 {object} Outcome "记录不存在"
// @Router /api/v1/history/{id} [delete]
func (h *HistoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if err := h.store.DeletePaymentHistoryEntry(uint(id)); err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, 0)
}

// Synchronize 手动触发分期同步
// @Summary 推进待扣款的分期支出
// @Description 幂等：同一自然月内重复调用不会重复扣款
// @Tags 付款历史
// @Produce json
// @Success 200 {object} Outcome "同步完成"
// @Router /api/v1/sync [post]
func (h *HistoryHandler) Synchronize(c *gin.Context) {
	if err := h.store.SynchronizePendingPayments(time.Now()); err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, 0)
}
