package api

import (
	"errors"
	"net/http"

	"garage/service"
	"garage/store"

	"github.com/gin-gonic/gin"
)

// Outcome 变更类接口的统一返回结构
// 所有变更动词都返回这个形状，错误不会以异常形式穿过边界
type Outcome struct {
	Success bool   `json:"success"`
	ID      uint   `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success 查询成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Mutated 变更成功响应，id 为新建记录的 ID（没有时省略）
func Mutated(c *gin.Context, id uint) {
	c.JSON(http.StatusOK, Outcome{Success: true, ID: id})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Outcome{Success: false, Error: message})
}

// Fail 失败响应
// 内部各层只返回类型化错误，在这里统一转成 {success:false, error}
func Fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var validationErr *store.ValidationError
	var notFoundErr *store.NotFoundError
	var constraintErr *store.ConstraintError
	var ioErr *service.IOError

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &constraintErr):
		status = http.StatusConflict
	case errors.As(err, &ioErr):
		status = http.StatusInternalServerError
	}

	c.JSON(status, Outcome{Success: false, Error: err.Error()})
}
