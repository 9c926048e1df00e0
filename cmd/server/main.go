// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bicara-go/internal/config"
	"bicara-go/internal/handler"
	"bicara-go/internal/middleware"
	"bicara-go/internal/model"
	"bicara-go/internal/repository"
	"bicara-go/internal/service"
	"bicara-go/pkg/database"
	"bicara-go/pkg/log"
	"bicara-go/pkg/storage"
	"bicara-go/pkg/tts"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库
	db := database.InitMySQL(cfg.Database.MySQL)
	if err := db.AutoMigrate(
		&model.HistoryEntry{},
		&model.MessageEntry{},
		&model.Profile{},
		&model.Feedback{},
		&model.Soundboard{},
	); err != nil {
		log.Fatal("数据库迁移失败", err)
	}

	// 4. 初始化对象存储和语音合成客户端
	store, err := storage.New(cfg.Storage, cfg.GCP)
	if err != nil {
		log.Fatal("对象存储初始化失败", err)
	}
	log.Infof("对象存储初始化成功, backend=%s, bucket=%s", cfg.Storage.Backend, cfg.Storage.BucketName)

	synthesizer, err := tts.NewClient(cfg.TTS, cfg.GCP)
	if err != nil {
		log.Fatal("语音合成客户端初始化失败", err)
	}
	defer synthesizer.Close()

	// 5. 初始化 Repository
	historyRepo := repository.NewHistoryRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	soundboardRepo := repository.NewSoundboardRepository(db)

	// 6. 初始化 Service (依赖注入)
	historyService := service.NewHistoryService(historyRepo)
	profileService := service.NewProfileService(profileRepo, store)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	soundboardService := service.NewSoundboardService(soundboardRepo, synthesizer, store)

	// 7. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	r.Use(middleware.RequestLogger(), gin.Recovery())
	r.Use(cors.Default()) // 移动端/网页客户端跨域访问

	// 8. 注册路由
	healthHandler := handler.NewHealthHandler()
	r.GET("/", healthHandler.Banner)
	r.GET("/health", healthHandler.Health)
	r.NoRoute(handler.NoRoute)

	api := r.Group("/api")
	{
		historyHandler := handler.NewHistoryHandler(historyService)
		history := api.Group("/history")
		{
			history.POST("", historyHandler.CreateEntry)
			history.GET("", historyHandler.List)
			history.POST("/email", historyHandler.CreateIdentity)
			history.POST("/:email", historyHandler.AttachMessage)
			history.GET("/:key", historyHandler.Get)
			history.DELETE("/:key", historyHandler.Delete)
		}

		profileHandler := handler.NewProfileHandler(profileService)
		api.GET("/profile", profileHandler.Get)
		api.PUT("/profile", profileHandler.Update)

		feedbackHandler := handler.NewFeedbackHandler(feedbackService)
		api.POST("/feedback", feedbackHandler.Create)
		api.GET("/feedback", feedbackHandler.List)

		soundboardHandler := handler.NewSoundboardHandler(soundboardService)
		api.POST("/soundboards", soundboardHandler.Create)
		api.GET("/soundboards", soundboardHandler.List)
	}

	// 9. 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}
	log.Info("服务已优雅关闭")
}
