package app

import (
	"database/sql"

	"go-ats/internal/auth"
	"go-ats/internal/candidate"
	"go-ats/internal/company"
	"go-ats/internal/emailtemplate"
	"go-ats/internal/feedback"
	"go-ats/internal/interview"
	"go-ats/internal/messaging/kafka"
	"go-ats/internal/middleware"
	"go-ats/internal/offerletter"
	"go-ats/internal/rbac"
	"go-ats/internal/rbac/infra"
	"go-ats/internal/salary"
	"go-ats/internal/shared/counter"
	"go-ats/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services is the dependency graph shared by the API and the notification consumer.
type services struct {
	rbac          rbac.Service
	auth          auth.Service
	company       company.Service
	user          user.Service
	candidate     candidate.Service
	interview     interview.Service
	feedback      feedback.Service
	salary        salary.Service
	offerLetter   offerletter.Service
	emailTemplate emailtemplate.Service
}

func buildServices(
	cfg Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) (*services, error) {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	candidateRepo := candidate.NewRepository(gormDB)
	interviewRepo := interview.NewRepository(gormDB)
	feedbackRepo := feedback.NewRepository(gormDB)
	offerLetterRepo := offerletter.NewRepository(gormDB)
	emailTemplateRepo := emailtemplate.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return nil, err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	salaryService := salary.NewService(logger)
	return &services{
		rbac:          rbacService,
		auth:          auth.NewService(authRepo, rbacService, logger),
		company:       company.NewService(companyRepo, logger),
		user:          user.NewService(userRepo, rbacService, logger),
		candidate:     candidate.NewService(db, candidateRepo, counterRepo, outboxRepo, rdb, logger),
		interview:     interview.NewService(db, interviewRepo, outboxRepo, rdb, logger),
		feedback:      feedback.NewService(db, feedbackRepo, logger),
		salary:        salaryService,
		offerLetter:   offerletter.NewService(db, offerLetterRepo, candidateRepo, counterRepo, outboxRepo, salaryService, rdb, logger),
		emailTemplate: emailtemplate.NewService(db, emailTemplateRepo, rdb, logger),
	}, nil
}

func registerModules(router *gin.Engine, cfg Config, svc *services, rdb *redis.Client, logger *zap.Logger) {
	// --- Handlers ---
	authHandler := auth.NewHandler(svc.auth)
	rbacHandler := rbac.NewHandler(svc.rbac)
	companyHandler := company.NewHandler(svc.company)
	userHandler := user.NewHandler(svc.user, logger)
	candidateHandler := candidate.NewHandlerWithRedis(svc.candidate, rdb, logger)
	interviewHandler := interview.NewHandlerWithRedis(svc.interview, rdb)
	feedbackHandler := feedback.NewHandler(svc.feedback)
	salaryHandler := salary.NewHandler(svc.salary)
	offerLetterHandler := offerletter.NewHandlerWithRedis(svc.offerLetter, rdb)
	emailTemplateHandler := emailtemplate.NewHandler(svc.emailTemplate)

	router.Use(middleware.CORS(cfg.CORSAllowedOrigins), middleware.RequestID())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		rbac.RegisterRoutes(api, rbacHandler, svc.rbac)
		company.RegisterRoutes(api, companyHandler, svc.rbac)
		user.RegisterRoutes(api, userHandler, svc.rbac, logger)
		candidate.RegisterRoutes(api, candidateHandler, svc.rbac, rdb, logger)
		interview.RegisterRoutes(api, interviewHandler, svc.rbac, rdb)
		feedback.RegisterRoutes(api, feedbackHandler, svc.rbac)
		salary.RegisterRoutes(api, salaryHandler, svc.rbac)
		offerletter.RegisterRoutes(api, offerLetterHandler, svc.rbac, rdb)
		emailtemplate.RegisterRoutes(api, emailTemplateHandler, svc.rbac)
	}
}
