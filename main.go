package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"dbgatewayapi/config"
	"dbgatewayapi/controllers"
	_ "dbgatewayapi/docs"
	"dbgatewayapi/models"
	"dbgatewayapi/pkg/logger"
	"dbgatewayapi/repository"
	"dbgatewayapi/services"
	"dbgatewayapi/services/engine"
	"dbgatewayapi/services/engine/mongodb"
	"dbgatewayapi/services/engine/mysql"
	"dbgatewayapi/services/engine/postgres"
	"dbgatewayapi/services/engine/sqlserver"
	"dbgatewayapi/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           dbgatewayapi
// @version         1.0
// @description     Query execution and schema introspection gateway for MySQL, PostgreSQL, SQL Server and MongoDB

// @BasePath  /

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init structured logger with config
	if err := logger.Init(logger.Config{
		FilePath:   config.Cfg.LogFile,
		Level:      logger.ParseLogLevel(config.Cfg.LogLevel),
		MaxSizeMB:  config.Cfg.LogMaxSize,
		MaxBackups: config.Cfg.LogMaxBackups,
		MaxAgeDays: config.Cfg.LogMaxAge,
		Compress:   config.Cfg.LogCompress,
	}); err != nil {
		log.Fatalf("Init logger error: %v", err)
	}
	logger.Infof("Starting dbgatewayapi with log level: %s", config.Cfg.LogLevel)

	// 3) Connect profile store (GORM)
	models.SetProfileTableName(config.Cfg.ProfileTable)
	if err := config.ConnectDB(); err != nil {
		logger.Fatalf("ConnectDB error: %v", err)
	}

	// 4) Wire connectors and services
	registry := engine.NewRegistry(
		mysql.NewConnector(),
		postgres.NewConnector(),
		sqlserver.NewConnector(),
		mongodb.NewConnector(),
	)
	timeouts := services.Timeouts{Connect: config.Cfg.ConnectTimeout, Query: config.Cfg.QueryTimeout}
	profiles := repository.NewConnectionRepository()

	controllers.SetQueryService(services.NewQueryService(profiles, registry, timeouts))
	controllers.SetSchemaService(services.NewSchemaService(profiles, registry, timeouts))
	controllers.SetDDLService(services.NewDDLService(profiles, registry, timeouts))
	controllers.SetConnectionTestService(services.NewConnectionTestService(profiles, registry, timeouts))
	logger.Infof("Registered engines: %v", registry.Kinds())

	// 5) Setup Gin
	gin.SetMode(config.Cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), utils.LoggerMiddleware())

	root := router.Group("/")
	controllers.RegisterQueryRoutes(root)
	controllers.RegisterSchemaRoutes(root)
	controllers.RegisterDDLRoutes(root)
	controllers.RegisterConnectionTestRoutes(root)

	// 6) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 7) Run until SIGINT/SIGTERM, then drain in-flight requests
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: "0.0.0.0:" + config.Cfg.Port, Handler: router}
	go func() {
		logger.Infof("Starting server at port %s", config.Cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("Received shutdown signal, draining requests...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Cfg.QueryTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
	if sqlDB, err := config.DB.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Infof("Application shutdown complete")
}
