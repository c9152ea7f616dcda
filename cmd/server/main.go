package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"inventory/internal/api"
	"inventory/internal/config"
	"inventory/internal/entity"
	"inventory/internal/model"
	"inventory/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Local development settings live in .env; a missing file is fine.
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to parse config")
	}

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialise repository")
	}

	if err := model.SeedDefaultRoles(context.Background(), repo); err != nil {
		logrus.WithError(err).Warn("failed to seed default roles")
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialise storage")
	}

	httpHandler, err := api.NewHTTPHandler(cfg, repo, store)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialise http handler")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(LoggingMiddleware())
	r.Use(CORSMiddleware())
	r.Use(gin.CustomRecovery(api.RecoveryHandler))

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	apiGroup := r.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", httpHandler.Register)
	authGroup.POST("/login", httpHandler.Login)
	authGroup.GET("/me", httpHandler.AuthMiddleware(), httpHandler.Me)

	protected := apiGroup.Group("")
	protected.Use(httpHandler.AuthMiddleware())

	users := protected.Group("/users")
	users.GET("", httpHandler.ListUsers)
	users.POST("", httpHandler.CreateUser)
	users.GET("/admin", httpHandler.RequireRole(entity.RoleAdmin), httpHandler.AdminData)
	users.GET("/:id", httpHandler.GetUser)
	users.PUT("/:id", httpHandler.UpdateUser)
	users.DELETE("/:id", httpHandler.DeleteUser)

	roles := protected.Group("/roles")
	roles.Use(httpHandler.RequireRole(entity.RoleAdmin))
	roles.GET("", httpHandler.ListRoles)
	roles.POST("", httpHandler.CreateRole)
	roles.GET("/:id", httpHandler.GetRole)
	roles.PUT("/:id", httpHandler.UpdateRole)
	roles.DELETE("/:id", httpHandler.DeleteRole)

	products := protected.Group("/products")
	products.GET("", httpHandler.ListProducts)
	products.POST("", httpHandler.CreateProduct)
	products.GET("/:id", httpHandler.GetProduct)
	products.PUT("/:id", httpHandler.UpdateProduct)
	products.DELETE("/:id", httpHandler.DeleteProduct)
	products.POST("/:id/image", httpHandler.UploadProductImage)

	categories := protected.Group("/categories")
	categories.GET("", httpHandler.ListCategories)
	categories.POST("", httpHandler.CreateCategory)
	categories.GET("/:id", httpHandler.GetCategory)
	categories.PUT("/:id", httpHandler.UpdateCategory)
	categories.DELETE("/:id", httpHandler.DeleteCategory)

	suppliers := protected.Group("/suppliers")
	suppliers.GET("", httpHandler.ListSuppliers)
	suppliers.POST("", httpHandler.CreateSupplier)
	suppliers.GET("/:id", httpHandler.GetSupplier)
	suppliers.PUT("/:id", httpHandler.UpdateSupplier)
	suppliers.DELETE("/:id", httpHandler.DeleteSupplier)

	stocks := protected.Group("/stocks")
	stocks.GET("", httpHandler.ListStocks)
	stocks.POST("", httpHandler.CreateStock)
	stocks.GET("/:id", httpHandler.GetStock)
	stocks.PUT("/:id", httpHandler.UpdateStock)
	stocks.DELETE("/:id", httpHandler.DeleteStock)

	productTypes := protected.Group("/product-types")
	productTypes.GET("", httpHandler.ListProductTypes)
	productTypes.POST("", httpHandler.CreateProductType)
	productTypes.GET("/:id", httpHandler.GetProductType)
	productTypes.PUT("/:id", httpHandler.UpdateProductType)
	productTypes.DELETE("/:id", httpHandler.DeleteProductType)

	if localProvider, ok := store.(storage.LocalBaseDirProvider); ok {
		publicPrefix := strings.TrimSpace(cfg.StoragePublicBaseURL)
		if publicPrefix == "" {
			publicPrefix = "/files"
		}
		if !strings.HasPrefix(publicPrefix, "http://") && !strings.HasPrefix(publicPrefix, "https://") {
			if !strings.HasPrefix(publicPrefix, "/") {
				publicPrefix = "/" + publicPrefix
			}
			r.Static(publicPrefix, localProvider.LocalBaseDir())
		}
	}

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	logrus.WithField("host", serverHost).Info("server starting")
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Error("server failed")
	}
}

// CORSMiddleware allows browser clients from any origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggingMiddleware emits one structured line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  duration.String(),
			"size":      c.Writer.Size(),
			"client_ip": c.ClientIP(),
		}).Info("http_request")
	}
}
