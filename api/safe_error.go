package api

import "github.com/gin-gonic/gin"

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	if gin.Mode() == gin.ReleaseMode || err == nil {
		return fallback
	}
	return fallback + ": " + err.Error()
}
