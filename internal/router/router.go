package router

import (
	"fmt"
	"strings"

	"github.com/finotty/duqueLoja/internal/cache"
	"github.com/finotty/duqueLoja/internal/config"
	adminhandlers "github.com/finotty/duqueLoja/internal/http/handlers/admin"
	publichandlers "github.com/finotty/duqueLoja/internal/http/handlers/public"
	"github.com/finotty/duqueLoja/internal/logger"
	"github.com/finotty/duqueLoja/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and routes
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "dq"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	api := r.Group("/api")
	{
		// open endpoints
		api.GET("/catalog", publicHandler.GetCatalog)
		api.GET("/catalog/placements/:placement", publicHandler.GetCatalogByPlacement)
		api.GET("/catalog/products/:name", publicHandler.GetCatalogItem)
		api.GET("/captcha/image", publicHandler.GetImageCaptcha)

		// account endpoints
		auth := api.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// visitor endpoints, device scoped via the X-Device-ID header
		guest := api.Group("/guest")
		{
			guest.GET("/cart", publicHandler.GetCart)
			guest.POST("/cart/items", publicHandler.AddCartItem)
			guest.PATCH("/cart/items/:index", publicHandler.ChangeCartQuantity)
			guest.DELETE("/cart/items/:index", publicHandler.RemoveCartItem)
			guest.POST("/pending/product", publicHandler.ParkPendingItem)
			guest.GET("/pending/product", publicHandler.GetPendingItem)
			guest.POST("/pending/favorite", publicHandler.ParkPendingFavorite)
		}

		// user endpoints (authenticated)
		user := api.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.GET("/me/orders", publicHandler.ListMyOrders)
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PATCH("/cart/items/:index", publicHandler.ChangeCartQuantity)
			user.DELETE("/cart/items/:index", publicHandler.RemoveCartItem)
			user.GET("/favorites", publicHandler.GetFavorites)
			user.POST("/favorites/toggle", publicHandler.ToggleFavorite)
			user.POST("/checkout/confirm", publicHandler.ConfirmCheckout)
			user.POST("/checkout/cancel", publicHandler.CancelCheckout)
		}

		// back office endpoints
		admin := api.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.AdminLogin)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.GET("/templates", adminHandler.ListProductTemplates)
				authorized.GET("/products", adminHandler.GetAdminCatalog)
				authorized.POST("/products", adminHandler.RegisterProduct)

				authorized.GET("/orders", adminHandler.AdminListOrders)
				authorized.GET("/orders/:id", adminHandler.AdminGetOrder)
				authorized.POST("/orders/:id/complete", adminHandler.AdminCompleteOrder)

				authorized.GET("/users", adminHandler.GetAdminUsers)
				authorized.PUT("/users/batch-status", adminHandler.BatchUpdateUserStatus)

				authorized.PUT("/password", adminHandler.UpdateAdminPassword)

				authorized.GET("/authz/roles", adminHandler.ListAuthzRoles)
				authorized.POST("/authz/roles", adminHandler.CreateAuthzRole)
				authorized.GET("/authz/roles/:role/policies", adminHandler.GetAuthzRolePolicies)
				authorized.POST("/authz/policies", adminHandler.GrantAuthzPolicy)
				authorized.DELETE("/authz/policies", adminHandler.RevokeAuthzPolicy)
				authorized.GET("/authz/admins/:id/roles", adminHandler.GetAuthzAdminRoles)
				authorized.PUT("/authz/admins/:id/roles", adminHandler.SetAuthzAdminRoles)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
