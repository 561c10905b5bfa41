// Package api builds the HTTP surface of the StayNest service.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staynest/staynest/internal/api/handler"
	"github.com/staynest/staynest/internal/api/middleware"
	"github.com/staynest/staynest/internal/core/domain"
	"github.com/staynest/staynest/internal/core/service"
	"github.com/staynest/staynest/internal/infrastructure/config"
	mongodb "github.com/staynest/staynest/internal/infrastructure/db/mongo"
	redisdb "github.com/staynest/staynest/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("staynest"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roomRepo := mongodb.NewRoomRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	noticeRepo := mongodb.NewNoticeRepository(db)
	documentRepo := mongodb.NewDocumentRepository(db)
	blobStore, err := mongodb.NewGridFSBlobStore(db)
	if err != nil {
		return nil, err
	}
	revoker := redisdb.NewTokenRevoker(rdb)

	authService := service.NewAuthService(userRepo, revoker, cfg.JWTSecret, cfg.TokenTTL)
	roomService := service.NewRoomService(roomRepo, userRepo, log)
	tenantService := service.NewTenantService(userRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, userRepo, log)
	requestService := service.NewRequestService(requestRepo, userRepo, roomRepo, log)
	noticeService := service.NewNoticeService(noticeRepo, log)
	documentService := service.NewDocumentService(documentRepo, blobStore, log)

	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	tenantHandler := handler.NewTenantHandler(tenantService, roomService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	requestHandler := handler.NewRequestHandler(requestService)
	noticeHandler := handler.NewNoticeHandler(noticeService)
	documentHandler := handler.NewDocumentHandler(documentService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authn := middleware.Auth(cfg.JWTSecret, revoker)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	anyRole := middleware.RequireRole(domain.RoleAdmin, domain.RoleTenant)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated, any role ---
	e.GET("/auth/me", authHandler.Me, authn, anyRole)
	e.POST("/auth/logout", authHandler.Logout, authn, anyRole)

	// --- Rooms ---
	rooms := e.Group("/rooms", authn)
	rooms.GET("", roomHandler.List, anyRole)
	rooms.GET("/tenant/:tenantID", roomHandler.TenantRoom, anyRole)
	rooms.GET("/:id", roomHandler.Get, anyRole)
	rooms.POST("", roomHandler.Create, adminOnly)
	rooms.PUT("/:id", roomHandler.Update, adminOnly)
	rooms.DELETE("/:id", roomHandler.Delete, adminOnly)
	rooms.PATCH("/:id/assign", roomHandler.Assign, adminOnly)
	rooms.PATCH("/:id/unassign", roomHandler.Unassign, adminOnly)

	// --- Users ---
	users := e.Group("/users", authn)
	users.GET("/me", tenantHandler.Me, anyRole)
	users.PUT("/me", tenantHandler.UpdateMe, anyRole)
	users.GET("", tenantHandler.List, adminOnly)
	users.GET("/:id", tenantHandler.Get, adminOnly)
	users.PUT("/:id", tenantHandler.Update, adminOnly)
	users.DELETE("/:id", tenantHandler.Delete, adminOnly)
	users.PATCH("/:id/room", tenantHandler.AssignRoom, adminOnly)

	// --- Payments ---
	payments := e.Group("/payments", authn)
	payments.GET("", paymentHandler.ListMine, anyRole)
	payments.GET("/all", paymentHandler.ListAll, adminOnly)
	payments.GET("/summary", paymentHandler.Summary, adminOnly)
	payments.POST("", paymentHandler.Record, adminOnly)
	payments.PUT("/:id", paymentHandler.UpdateStatus, adminOnly)
	payments.PATCH("/:id/mark-paid", paymentHandler.MarkPaid, adminOnly)
	payments.GET("/:id/receipt", paymentHandler.Receipt, anyRole)

	// --- Service requests ---
	requests := e.Group("/requests", authn)
	requests.GET("", requestHandler.ListAll, adminOnly)
	requests.GET("/my", requestHandler.ListMine, anyRole)
	requests.GET("/:id", requestHandler.Get, anyRole)
	requests.POST("", requestHandler.Create, middleware.RequireRole(domain.RoleTenant))
	requests.PUT("/:id", requestHandler.Update, adminOnly)
	requests.DELETE("/:id", requestHandler.Delete, anyRole)

	// --- Notices ---
	notices := e.Group("/notices", authn)
	notices.GET("", noticeHandler.List, anyRole)
	notices.GET("/:id", noticeHandler.Get, anyRole)
	notices.POST("", noticeHandler.Create, adminOnly)
	notices.PUT("/:id", noticeHandler.Update, adminOnly)
	notices.DELETE("/:id", noticeHandler.Delete, adminOnly)

	// --- Documents ---
	documents := e.Group("/documents", authn)
	documents.GET("/my", documentHandler.ListMine, anyRole)
	documents.GET("/tenant/:tenantID", documentHandler.ListForTenant, adminOnly)
	documents.POST("/upload", documentHandler.Upload, middleware.RequireRole(domain.RoleTenant))
	documents.GET("/:id/download", documentHandler.Download, anyRole)
	documents.DELETE("/:id", documentHandler.Delete, anyRole)

	return e, nil
}
