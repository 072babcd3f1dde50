package main

import (
	"log"
	"os"
	"time"

	"mechshare/internal/config"
	"mechshare/internal/models"
	"mechshare/internal/router"
	"mechshare/internal/utils"
	"mechshare/pkg/ratelimit"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	// 加载配置(从项目根目录读取)
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// 初始化数据库
	db, err := models.InitDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 初始化验证器
	utils.InitValidator()

	// 初始化JWT管理器
	jwtManager := utils.NewJWTManager(
		cfg.JWT.SecretKey,
		cfg.JWT.Algorithm,
		cfg.JWT.GetExpireDuration(),
	)
	if cfg.JWT.SecretKey == config.DevJWTSecret {
		logger.Warn("JWT密钥使用开发环境默认值，生产部署必须在配置中设置secret_key")
	}

	// 初始化限流器(可选)
	var limiter *ratelimit.RedisLimiter
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddress(),
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		limiter = ratelimit.NewRedisLimiter(redisClient, cfg.Redis.LimitPerMinute, "ratelimit:", time.Minute)
	}

	// 设置路由
	r := router.SetupRouter(cfg, jwtManager, logger, db, limiter)

	// 启动服务器
	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}
