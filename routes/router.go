package routes

import (
	"net/http"
	"time"

	"gin-items/config"
	"gin-items/controllers"
	"gin-items/middlewares"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func SetupRouter(cfg *config.Config, svc *Services, logger *zap.Logger) *gin.Engine {
	controllers.RegisterValidators()

	itemController := controllers.NewItemController(svc.Items, logger)
	userController := controllers.NewUserController(svc.Users, logger)
	authController := controllers.NewAuthController(svc.Auth, logger)

	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(corsMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middlewares.AuthMiddleware(svc.Auth, logger)

	api := r.Group(cfg.APIPrefix)
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)
	api.POST("/token", authController.Login)

	userRouterWithAuth := api.Group("/users", auth)
	userRouterWithAuth.GET("/me", userController.Me)
	userRouterWithAuth.PATCH("/me", userController.UpdateMe)

	userRouterWithAdminAuth := api.Group("/users", auth, middlewares.SuperuserOnly())
	userRouterWithAdminAuth.GET("", userController.FindAll)
	userRouterWithAdminAuth.GET("/", userController.FindAll)
	userRouterWithAdminAuth.POST("", userController.Create)
	userRouterWithAdminAuth.POST("/", userController.Create)
	userRouterWithAdminAuth.GET("/:id", userController.FindById)
	userRouterWithAdminAuth.PATCH("/:id", userController.Update)
	userRouterWithAdminAuth.DELETE("/:id", userController.Delete)

	itemRouterWithAuth := api.Group("/items", auth)
	itemRouterWithAuth.GET("", itemController.FindAll)
	itemRouterWithAuth.GET("/", itemController.FindAll)
	itemRouterWithAuth.POST("", itemController.Create)
	itemRouterWithAuth.POST("/", itemController.Create)
	itemRouterWithAuth.GET("/:id", itemController.FindById)
	itemRouterWithAuth.PUT("/:id", itemController.Update)
	itemRouterWithAuth.DELETE("/:id", itemController.Delete)

	return r
}

// corsMiddleware は"*"のみならcors.Default()、それ以外は指定オリジンを許可する
func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
