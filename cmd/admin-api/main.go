package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/harmonylane/studio-admin-api/api/swagger"
	"github.com/harmonylane/studio-admin-api/internal/handler"
	"github.com/harmonylane/studio-admin-api/internal/middleware"
	"github.com/harmonylane/studio-admin-api/internal/service"
	"github.com/harmonylane/studio-admin-api/internal/store"
	"github.com/harmonylane/studio-admin-api/pkg/config"
	"github.com/harmonylane/studio-admin-api/pkg/logger"
	corsmiddleware "github.com/harmonylane/studio-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/harmonylane/studio-admin-api/pkg/middleware/requestid"
)

// @title Studio Admin API
// @version 1.0.0
// @description Admin panel backend for the Harmony Lane music school
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	students := store.NewStudentStore()
	teachers := store.NewTeacherStore()
	batches := store.NewBatchStore()
	users := store.NewUserStore()
	directory := store.NewCourseDirectory(store.DemoCatalog())

	if cfg.Seed.Demo {
		store.SeedDemo(students, teachers, batches)
		logr.Info("demo roster seeded")
	}
	if _, err := store.SeedAdmin(users, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		logr.Sugar().Fatalw("seed admin account", "error", err)
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService(service.RosterCounters{
		Students: students.Count,
		Teachers: teachers.Count,
		Batches:  batches.Count,
	})

	authSvc := service.NewAuthService(users, service.AuthConfig{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiration,
		Issuer: cfg.JWT.Issuer,
	}, validate, logr)
	studentSvc := service.NewStudentService(students, validate, logr)
	teacherSvc := service.NewTeacherService(teachers, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(students, batches, directory, metricsSvc, validate, logr)
	batchSvc := service.NewBatchService(batches, students, directory, logr)
	courseSvc := service.NewCourseService(directory)
	exportSvc := service.NewExportService(students, batches, directory, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	studentHandler := handler.NewStudentHandler(studentSvc, enrollmentSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	batchHandler := handler.NewBatchHandler(batchSvc, enrollmentSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	exportHandler := handler.NewExportHandler(exportSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.PUT("/auth/me", authHandler.UpdateProfile)
		protected.PUT("/auth/password", authHandler.ChangePassword)

		protected.GET("/students", studentHandler.List)
		protected.POST("/students", studentHandler.Create)
		protected.GET("/students/:id", studentHandler.Get)
		protected.PUT("/students/:id", studentHandler.Update)
		protected.DELETE("/students/:id", studentHandler.Delete)
		protected.POST("/students/:id/courses", studentHandler.AssignCourse)

		protected.GET("/teachers", teacherHandler.List)
		protected.POST("/teachers", teacherHandler.Create)
		protected.GET("/teachers/:id", teacherHandler.Get)
		protected.PUT("/teachers/:id", teacherHandler.Update)
		protected.DELETE("/teachers/:id", teacherHandler.Delete)

		protected.GET("/batches", batchHandler.List)
		protected.POST("/batches", batchHandler.Create)
		protected.GET("/batches/:id", batchHandler.Get)
		protected.POST("/batches/:id/students", batchHandler.AddStudents)

		protected.GET("/courses", courseHandler.List)
		protected.GET("/courses/:id", courseHandler.Get)

		protected.GET("/exports/students", exportHandler.Students)
		protected.GET("/exports/batches/:id", exportHandler.Batch)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
