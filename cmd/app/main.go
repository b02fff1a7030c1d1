package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"fitple/cmd/fx/account_fx"
	"fitple/cmd/fx/cleanup_fx"
	"fitple/cmd/fx/config_fx"
	"fitple/cmd/fx/controllers_fx"
	"fitple/cmd/fx/db_fx"
	"fitple/cmd/fx/kafka_fx"
	"fitple/cmd/fx/memcache_fx"
	"fitple/cmd/fx/pt_payment_fx"
	"fitple/cmd/fx/redis_fx"
	"fitple/cmd/fx/store_fx"
	"fitple/cmd/fx/trainer_fx"
	"fitple/internal/api/controllers"
	"fitple/internal/config"
	"fitple/internal/metrics"
	"fitple/internal/services"
	"fitple/pkg/middleware"
	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.Invoke(ConfigureLogging),
		db_fx.Module,
		redis_fx.Module,
		memcache_fx.Module,
		kafka_fx.Module,
		trainer_fx.Module,
		account_fx.Module,
		store_fx.Module,
		pt_payment_fx.Module,
		cleanup_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func ConfigureLogging(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.Env == "dev" {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	zlog.Logger = zlog.With().Str("service", "fitple").Logger()
	zerolog.DefaultContextLogger = &zlog.Logger

	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				zlog.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					zlog.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zlog.Info().Msg("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Tokens      *utils.TokenProvider
	AuthService services.AuthServiceInterface

	AuthController      *controllers.AuthController
	UserController      *controllers.UserController
	OwnerController     *controllers.OwnerController
	TrainerController   *controllers.TrainerController
	StoreController     *controllers.StoreController
	PtPaymentController *controllers.PtPaymentController
	PtPaymentFlow       *controllers.PtPaymentFlowController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	metrics.Register(prometheus.DefaultRegisterer)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware(p.Tokens, p.AuthService)
	userOnly := middleware.RoleMiddleware(utils.RoleUser)
	ownerOnly := middleware.RoleMiddleware(utils.RoleOwner)

	api := r.Group("/api")
	api.POST("/login", p.AuthController.Login)
	api.POST("/token/refresh", p.AuthController.Refresh)
	api.POST("/logout", auth, p.AuthController.Logout)

	api.POST("/user/signup", p.UserController.Signup)
	api.POST("/owners/signup", p.OwnerController.Signup)
	api.GET("/trainers", p.TrainerController.GetAllTrainers)

	userProfile := api.Group("/profile", auth, userOnly)
	userProfile.GET("/user", p.UserController.ReadProfile)
	userProfile.PUT("/user", p.UserController.UpdateProfile)
	userProfile.PUT("/users/password", p.UserController.UpdatePassword)
	userProfile.DELETE("/users/signout", p.UserController.Withdraw)

	ownerProfile := api.Group("/profile", auth, ownerOnly)
	ownerProfile.GET("/owner", p.OwnerController.ReadProfile)
	ownerProfile.PUT("/owner", p.OwnerController.UpdateProfile)
	ownerProfile.PUT("/owner/password", p.OwnerController.UpdatePassword)
	ownerProfile.DELETE("/owners/signout", p.OwnerController.Withdraw)

	stores := api.Group("/stores")
	stores.GET("", p.StoreController.FindAll)
	stores.GET("/:storeId", p.StoreController.FindByID)

	ownerStores := stores.Group("/owners", auth)
	ownerStores.POST("", p.StoreController.CreateStore)
	ownerStores.GET("", ownerOnly, p.StoreController.FindAllByOwner)
	ownerStores.GET("/:storeId", ownerOnly, p.StoreController.FindOwnerStoreByID)
	ownerStores.PUT("/:storeId", ownerOnly, p.StoreController.UpdateStore)
	ownerStores.DELETE("/:storeId", ownerOnly, p.StoreController.DeleteStore)

	payments := api.Group("/pt-payments")
	payments.POST("/select-PtTimes", p.PtPaymentController.SelectPtTimes)
	payments.POST("/process", auth, userOnly, p.PtPaymentController.ProcessPayment)
	payments.POST("/save-payment", auth, userOnly, p.PtPaymentController.SavePayment)
	payments.PUT("/:id", auth, userOnly, p.PtPaymentController.ApprovePayment)

	flow := payments.Group("/test", auth, userOnly)
	flow.GET("/validate/:trainerId/:userId", p.PtPaymentFlow.ValidateTrainerAndUser)
	flow.POST("/payment-information", p.PtPaymentFlow.SavePtInformation)
	flow.GET("/check-duplicate/:trainerId/:userId", p.PtPaymentFlow.CheckDuplicatePt)
	flow.GET("/paymentpage/:ptInformationId", p.PtPaymentFlow.ShowPaymentPage)
	flow.POST("/select-PtTimes", p.PtPaymentFlow.SelectPtTimes)
	flow.POST("/save-payment", p.PtPaymentFlow.SavePayment)
	flow.POST("/complete", p.PtPaymentFlow.CompletePayment)
	flow.POST("/save-UserPt", p.PtPaymentFlow.RecordEntitlement)
	flow.POST("/completePage", p.PtPaymentFlow.PaymentCompletePage)
	flow.POST("/all-complete", p.PtPaymentFlow.CompleteAll)
}
