package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campus-hq/uni-admin-gateway/api/swagger"
	"github.com/campus-hq/uni-admin-gateway/internal/handler"
	"github.com/campus-hq/uni-admin-gateway/internal/middleware"
	"github.com/campus-hq/uni-admin-gateway/internal/repository"
	"github.com/campus-hq/uni-admin-gateway/internal/service"
	"github.com/campus-hq/uni-admin-gateway/internal/upstream"
	"github.com/campus-hq/uni-admin-gateway/pkg/cache"
	"github.com/campus-hq/uni-admin-gateway/pkg/config"
	"github.com/campus-hq/uni-admin-gateway/pkg/database"
	"github.com/campus-hq/uni-admin-gateway/pkg/jobs"
	"github.com/campus-hq/uni-admin-gateway/pkg/logger"
	corsmiddleware "github.com/campus-hq/uni-admin-gateway/pkg/middleware/cors"
	reqidmiddleware "github.com/campus-hq/uni-admin-gateway/pkg/middleware/requestid"
	"github.com/campus-hq/uni-admin-gateway/pkg/storage"
)

// @title University Admin Gateway
// @version 0.1.0
// @description Caching gateway in front of the university administration REST API
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

	tokens, err := storage.NewTokenStore(cfg.Session.TokenFile)
	if err != nil {
		logr.Sugar().Fatalw("failed to init token store", "error", err)
	}

	metricsSvc := service.NewMetricsService()
	client := upstream.NewClient(cfg.Upstream, tokens, metricsSvc, logr)

	var cacheRepo service.CacheRepository = repository.NewMemoryCacheRepository()
	if cfg.Cache.Enabled && cfg.Cache.Backend == config.CacheBackendRedis {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, falling back to in-memory cache", "error", err)
		} else {
			cacheRepo = repository.NewRedisCacheRepository(redisClient, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.DefaultTTL, logr, cfg.Cache.Enabled)

	var auditSvc *service.AuditService
	if cfg.Audit.Enabled {
		db, err := database.NewPostgres(cfg.Audit.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect audit database", "error", err)
		}
		defer db.Close() //nolint:errcheck
		auditSvc = service.NewAuditService(repository.NewAuditRepository(db), logr)
	}

	validate := validator.New()

	studentsCol := service.NewCollectionService("students", upstream.NewCollection(client, "students/"), cacheSvc, auditSvc, cfg.Cache.DefaultTTL, logr)
	teachersCol := service.NewCollectionService("teachers", upstream.NewCollection(client, "teachers/"), cacheSvc, auditSvc, cfg.Cache.DefaultTTL, logr)
	departmentsCol := service.NewCollectionService("departments", upstream.NewCollection(client, "departments/"), cacheSvc, auditSvc, cfg.Cache.DefaultTTL, logr)
	coursesCol := service.NewCollectionService("courses", upstream.NewCollection(client, "courses/"), cacheSvc, auditSvc, cfg.Cache.CoursesTTL, logr)
	enrollmentsCol := service.NewCollectionService("enrollments", upstream.NewCollection(client, "enrollments/"), cacheSvc, auditSvc, cfg.Cache.DefaultTTL, logr)
	schedulesCol := service.NewCollectionService("schedules", upstream.NewCollection(client, "schedules/"), cacheSvc, auditSvc, cfg.Cache.SchedulesTTL, logr)
	examsCol := service.NewCollectionService("exams", upstream.NewCollection(client, "exams/"), cacheSvc, auditSvc, cfg.Cache.DefaultTTL, logr)
	paymentsCol := service.NewCollectionService("payments", upstream.NewCollection(client, "payments/"), cacheSvc, auditSvc, cfg.Cache.DefaultTTL, logr)

	studentSvc := service.NewStudentService(studentsCol, validate)
	teacherSvc := service.NewTeacherService(teachersCol, validate)
	departmentSvc := service.NewDepartmentService(departmentsCol, validate)
	courseSvc := service.NewCourseService(coursesCol, validate)
	enrollmentSvc := service.NewEnrollmentService(enrollmentsCol, validate)
	scheduleSvc := service.NewScheduleService(schedulesCol, validate)
	examSvc := service.NewExamService(examsCol, validate)
	paymentSvc := service.NewPaymentService(paymentsCol, validate)

	sessionSvc := service.NewSessionService(client, tokens, validate, logr)
	reportSvc := service.NewReportService(client, cacheSvc, cfg.Cache.ReportTTL, cfg.Cache.DebtorsTTL)
	exportSvc := service.NewExportService(reportSvc)
	importSvc := service.NewImportService(studentSvc)

	warmers := []service.Warmer{studentsCol, teachersCol, departmentsCol, coursesCol, enrollmentsCol, schedulesCol, examsCol, paymentsCol}
	warmers = append(warmers, reportSvc.Warmers()...)
	warmSvc := service.NewWarmService(warmers, jobs.QueueConfig{Workers: cfg.Warm.Workers, Logger: logr}, logr)
	warmSvc.Start(context.Background())
	defer warmSvc.Stop()
	if cfg.Warm.OnStart {
		if _, err := warmSvc.WarmAll(); err != nil {
			logr.Sugar().Warnw("failed to schedule cache warm-up", "error", err)
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	handlers := handler.Handlers{
		Auth:        handler.NewAuthHandler(sessionSvc),
		Students:    handler.NewStudentHandler(studentSvc),
		Import:      handler.NewImportHandler(importSvc),
		Teachers:    handler.NewTeacherHandler(teacherSvc),
		Departments: handler.NewDepartmentHandler(departmentSvc),
		Courses:     handler.NewCourseHandler(courseSvc),
		Enrollments: handler.NewEnrollmentHandler(enrollmentSvc),
		Schedules:   handler.NewScheduleHandler(scheduleSvc),
		Exams:       handler.NewExamHandler(examSvc),
		Payments:    handler.NewPaymentHandler(paymentSvc),
		Reports:     handler.NewReportHandler(reportSvc, exportSvc),
		Cache:       handler.NewCacheHandler(warmSvc),
		Status:      handler.NewStatusHandler(metricsSvc),
	}
	if auditSvc != nil {
		handlers.Audit = handler.NewAuditHandler(auditSvc)
	}
	handler.Register(r, cfg.APIPrefix, handlers)

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

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("gateway starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("gateway failed", "error", err)
	}
}
