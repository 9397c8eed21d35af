package routers

import (
	"context"
	"log"
	"os"
	"strings"

	"superapp/catalog"
	"superapp/controllers"
	"superapp/middlewares"
	"superapp/store"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func Route() *gin.Engine {
	router := gin.Default()
	router.Use(CORS())
	api := controllers.NewAPI()

	api.Store = store.New(newKV())
	api.Products = catalog.NewRepository(api.Store)
	api.Chart = catalog.NewChartRenderer(os.Getenv("CHART_RENDERER"))

	if err := api.Products.EnsureInitialData(context.Background()); err != nil {
		log.Fatal(err)
	}

	router.POST("/api/login", api.Authenticate)
	router.GET("/api/check-session", middlewares.Auth(api.Store), api.CheckSession)
	router.GET("/api/logout", middlewares.Auth(api.Store), api.Logout)
	router.GET("/api/dashboard", middlewares.Auth(api.Store), api.GetDashboard)

	product := router.Group("/api/products")
	product.Use(middlewares.Auth(api.Store))
	{
		product.GET("", api.GetProducts)
		product.GET("/export", api.ExportProducts)
		product.POST("", api.UpsertProduct)
		product.POST("/import", api.ImportProducts)
		product.DELETE("/:id", api.DeleteProduct)
	}

	settings := router.Group("/api/settings")
	settings.Use(middlewares.Auth(api.Store))
	{
		settings.GET("", api.GetSettings)
		settings.PUT("", api.UpdateSettings)
	}

	return router
}

// CORS Cross Origin Resource Sharing
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, "+
			"Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func newKV() store.KV {
	if v := os.Getenv("DEV_MODE"); v == "1" || strings.ToLower(v) == "true" {
		log.Println("DEV_MODE=true: running without redis (in-memory store)")
		return store.NewMemoryKV()
	}

	redisHost := os.Getenv("REDIS_HOST")
	redisPort := os.Getenv("REDIS_PORT")

	return store.NewRedisKV(redis.NewClient(&redis.Options{
		Addr: redisHost + ":" + redisPort,
		DB:   0,
	}))
}
