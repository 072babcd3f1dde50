package router

import (
	"mechshare/internal/config"
	"mechshare/internal/handler"
	"mechshare/internal/middleware"
	"mechshare/internal/repository"
	"mechshare/internal/service"
	"mechshare/internal/utils"
	"mechshare/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	limiter *ratelimit.RedisLimiter,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "机构分享平台 API",
			"version": "1.0.0",
		})
	})

	// 上传文件的静态访问
	r.Static(cfg.Upload.PublicPrefix, cfg.Upload.Dir)

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	mechRepo := repository.NewMechanismRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo, jwtManager)
	mechService := service.NewMechanismService(mechRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	uploadService := service.NewUploadService(cfg)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	mechHandler := handler.NewMechanismHandler(mechService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// API路由组
	api := r.Group("/api")
	{
		// 公开路由
		api.POST("/register", authHandler.Register)
		api.POST("/login", middleware.RateLimitMiddleware(limiter), authHandler.Login)

		api.GET("/mechanisms", mechHandler.List)
		api.GET("/mechanisms/:id", mechHandler.Get)
		api.GET("/categories", categoryHandler.List)

		// 认证路由
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager))
		{
			// 用户信息
			authorized.GET("/me", authHandler.GetMe)
			authorized.PUT("/me", authHandler.UpdateProfile)
			authorized.GET("/me/mechanisms", mechHandler.ListMine)
			authorized.POST("/logout", authHandler.Logout)

			// 机构帖子
			authorized.POST("/mechanisms", mechHandler.Create)
			authorized.PUT("/mechanisms/:id", mechHandler.Update)
			authorized.DELETE("/mechanisms/:id", mechHandler.Delete)
			authorized.POST("/mechanisms/:id/like", mechHandler.Like)

			// 分类
			authorized.POST("/categories", categoryHandler.Create)

			// 文件上传
			authorized.POST("/upload", middleware.RateLimitMiddleware(limiter), uploadHandler.Upload)
		}
	}

	return r
}
