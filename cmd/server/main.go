package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/gradetracker-api/api/swagger"
	"github.com/noah-isme/gradetracker-api/internal/handler"
	"github.com/noah-isme/gradetracker-api/internal/middleware"
	"github.com/noah-isme/gradetracker-api/internal/models"
	"github.com/noah-isme/gradetracker-api/internal/service"
	"github.com/noah-isme/gradetracker-api/internal/store"
	"github.com/noah-isme/gradetracker-api/pkg/config"
	"github.com/noah-isme/gradetracker-api/pkg/export"
	"github.com/noah-isme/gradetracker-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/gradetracker-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/gradetracker-api/pkg/middleware/requestid"
)

// @title Grade Tracker API
// @version 0.1.0
// @description Student grade, attendance and messaging service
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

	metricsSvc := service.NewMetricsService()

	var docStore store.Store
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		docStore = store.NewMemoryStore()
	default:
		fileStore := store.NewFileStore(cfg.Store, logr)
		logr.Sugar().Infow("using file store", "path", fileStore.Path())
		docStore = fileStore
	}
	docStore = store.NewInstrumentedStore(docStore, metricsSvc.ObserveStoreOp)

	validate := validator.New()

	authSvc := service.NewAuthService(docStore, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})
	studentSvc := service.NewStudentService(docStore, validate, logr)
	gradeSvc := service.NewGradeService(docStore, validate, logr)
	attendanceSvc := service.NewAttendanceService(docStore, validate, logr)
	assignmentSvc := service.NewAssignmentService(docStore, validate, logr)
	examSvc := service.NewExamService(docStore, validate, logr)
	messageSvc := service.NewMessageService(docStore, validate, logr)
	exportSvc := service.NewExportService(docStore, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	authHandler := handler.NewAuthHandler(authSvc)
	studentHandler := handler.NewStudentHandler(studentSvc, gradeSvc)
	gradeHandler := handler.NewGradeHandler(gradeSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc)
	examHandler := handler.NewExamHandler(examSvc)
	messageHandler := handler.NewMessageHandler(messageSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))

	authed.GET("/teachers", authHandler.ListTeachers)
	authed.GET("/parents", authHandler.ListParents)

	authed.GET("/students", studentHandler.List)
	authed.GET("/students/:id", studentHandler.Get)
	authed.GET("/students/:id/gpa", studentHandler.GPA)
	authed.GET("/students/:id/grades", gradeHandler.StudentGrades)
	authed.GET("/students/:id/attendance", attendanceHandler.StudentAttendance)
	authed.GET("/students/:id/submissions", assignmentHandler.StudentSubmissions)
	authed.GET("/students/:id/report", exportHandler.ReportCard)

	authed.GET("/assignments", assignmentHandler.List)
	authed.PUT("/assignments/:id/submissions", assignmentHandler.UpsertSubmission)
	authed.GET("/exams", examHandler.List)

	authed.GET("/messages", messageHandler.List)
	authed.POST("/messages", messageHandler.Send)
	authed.POST("/messages/:id/replies", messageHandler.Reply)
	authed.POST("/messages/:id/read", messageHandler.MarkRead)
	authed.DELETE("/messages/:id", messageHandler.Delete)

	teacherOnly := authed.Group("")
	teacherOnly.Use(middleware.RequireRoles(models.RoleTeacher))

	teacherOnly.POST("/auth/student-accounts", authHandler.CreateStudentAccount)
	teacherOnly.POST("/students", studentHandler.Create)
	teacherOnly.DELETE("/students/:id", studentHandler.Delete)
	teacherOnly.POST("/grades", gradeHandler.Add)
	teacherOnly.POST("/attendance", attendanceHandler.Add)
	teacherOnly.POST("/assignments", assignmentHandler.Create)
	teacherOnly.DELETE("/assignments/:id", assignmentHandler.Delete)
	teacherOnly.POST("/exams", examHandler.Create)
	teacherOnly.DELETE("/exams/:id", examHandler.Delete)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
