package router

import (
	"garage/api"
	"garage/config"
	_ "garage/docs"
	"garage/service"
	"garage/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
// 边界上的每个动词对应 store/service 的一个操作，
// 所有依赖显式注入，不使用全局状态
func SetupRouter(cfg *config.Config, s *store.Store, attachments *service.AttachmentStore) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()
	r.Use(CORSMiddleware())

	categoryHandler := api.NewCategoryHandler(s)
	expenseHandler := api.NewExpenseHandler(s)
	historyHandler := api.NewHistoryHandler(s)
	vehicleHandler := api.NewVehicleHandler(s)
	documentHandler := api.NewDocumentHandler(s)
	attachmentHandler := api.NewAttachmentHandler(attachments)
	exportHandler := api.NewExportHandler(s)

	// 附件文件直接流式下发，大文件不进内存
	r.GET("/files/attachments/:name", attachmentHandler.Serve)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/categories", categoryHandler.List)
		v1.POST("/categories", categoryHandler.Create)

		v1.GET("/expenses", expenseHandler.List)
		v1.POST("/expenses", expenseHandler.Create)

		v1.GET("/history", historyHandler.List)
		v1.GET("/history/month", historyHandler.ListMonth)
		v1.DELETE("/history/:id", historyHandler.Delete)
		v1.GET("/statistics/monthly", historyHandler.MonthlyTotals)
		v1.POST("/sync", historyHandler.Synchronize)

		v1.GET("/history/:id/attachments", attachmentHandler.List)
		v1.POST("/history/:id/attachments", attachmentHandler.Upload)
		v1.GET("/attachments/:id/address", attachmentHandler.Address)
		v1.POST("/attachments/:id/open", attachmentHandler.Open)
		v1.DELETE("/attachments/:id", attachmentHandler.Delete)

		v1.GET("/vehicles", vehicleHandler.List)
		v1.GET("/vehicles/:id", vehicleHandler.Get)
		v1.POST("/vehicles", vehicleHandler.Create)
		v1.PUT("/vehicles/:id", vehicleHandler.Update)
		v1.PATCH("/vehicles/:id/status", vehicleHandler.UpdateStatus)
		v1.DELETE("/vehicles/:id", vehicleHandler.Delete)

		v1.GET("/vehicles/:id/documents", documentHandler.List)
		v1.POST("/vehicles/:id/documents", documentHandler.Create)
		v1.PUT("/documents/:id", documentHandler.Update)
		v1.PATCH("/documents/:id/status", documentHandler.UpdateStatus)
		v1.DELETE("/documents/:id", documentHandler.Delete)

		v1.GET("/export/csv", exportHandler.ExportCSV)
		v1.GET("/export/excel", exportHandler.ExportExcel)
	}

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
