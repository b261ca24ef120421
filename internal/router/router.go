package router

import (
	"net/http"
	"time"

	"sutbazar/config"
	"sutbazar/internal/handler"
	"sutbazar/internal/middleware"
	"sutbazar/internal/repository"
	"sutbazar/internal/service"
	"sutbazar/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, sms service.SMSSender, notifier service.Notifier) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOtpRepository(db)
	kycRepo := repository.NewKycRepository(db)
	wheelRepo := repository.NewWheelRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	referralRepo := repository.NewReferralRepository(db)

	// Services
	otpSvc := service.NewOtpService(otpRepo, sms)
	authSvc := service.NewAuthService(userRepo, otpRepo, referralRepo, notifier)
	wheelSvc := service.NewWheelService(userRepo, wheelRepo, ledgerRepo, notifier, nil)
	kycSvc := service.NewKycService(userRepo, kycRepo, referralRepo, ledgerRepo, cloud, notifier)
	tradingSvc := service.NewTradingService(userRepo, ledgerRepo, notifier)

	// Handlers
	authHandler := handler.NewAuthHandler(otpSvc, authSvc)
	userHandler := handler.NewUserHandler(userRepo)
	kycHandler := handler.NewKycHandler(kycSvc)
	wheelHandler := handler.NewWheelHandler(wheelSvc)
	tradingHandler := handler.NewTradingHandler(tradingSvc)
	transactionHandler := handler.NewTransactionHandler(ledgerRepo)
	referralHandler := handler.NewReferralHandler(referralRepo)

	// SMS sends are the expensive outbound call; throttle them harder.
	otpLimit := middleware.RateLimit(middleware.NewInMemoryRateLimiter(5, 5*time.Minute))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/send-otp", otpLimit, authHandler.SendOtp)
			auth.POST("/verify-otp", authHandler.VerifyOtp)
			auth.POST("/register", authHandler.Register)
		}

		api.GET("/user", userHandler.GetUser)
		api.GET("/user/:userId", userHandler.GetUser)

		api.POST("/kyc/submit", kycHandler.Submit)

		api.GET("/wheel/can-spin", wheelHandler.CanSpin)
		api.GET("/wheel/can-spin/:userId", wheelHandler.CanSpin)
		api.POST("/wheel/spin", wheelHandler.Spin)

		api.POST("/trading/sell", tradingHandler.Sell)

		api.GET("/transactions", transactionHandler.List)
		api.GET("/transactions/:userId", transactionHandler.List)

		api.GET("/referrals", referralHandler.List)
		api.GET("/referrals/:userId", referralHandler.List)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
