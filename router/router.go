package router

import (
	"context"

	"ledger/api"
	"ledger/config"
	_ "ledger/docs"
	"ledger/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
// ctx 结束时停止限流器的后台清理
func SetupRouter(ctx context.Context, cfg *config.Config, db *gorm.DB, log *logrus.Logger) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", api.NewHealthHandler(db).Check)

	ledger := r.Group("")
	if cfg.Server.RateLimit.Enabled {
		ledger.Use(middleware.RateLimit(ctx, cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Window))
	}

	// 类别
	categoryHandler := api.NewCategoryHandler(db)
	categories := ledger.Group("/categories")
	{
		categories.POST("/", categoryHandler.Create)
		categories.GET("/", categoryHandler.List)
		categories.DELETE("/:id", categoryHandler.Delete)
	}

	// 交易
	transactionHandler := api.NewTransactionHandler(db)
	exportHandler := api.NewExportHandler(db)
	transactions := ledger.Group("/transactions")
	{
		transactions.POST("/", transactionHandler.Create)
		transactions.GET("/", transactionHandler.List)
		transactions.GET("/search/", transactionHandler.Search)
		transactions.GET("/summary/", transactionHandler.Summary)
		transactions.GET("/export/", exportHandler.Export)
		transactions.GET("/:id", transactionHandler.Get)
		transactions.PUT("/:id", transactionHandler.Update)
		transactions.DELETE("/:id", transactionHandler.Delete)
	}

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
