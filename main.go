package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"

	"formapi/internal/api"
	"formapi/internal/repository"
	"formapi/internal/service"
)

// Config holds the only external knob the service needs: the listen port.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := api.RegisterValidations(); err != nil {
		log.Fatalf("Failed to register validations: %v", err)
	}

	repo := repository.NewMemoryRepo()
	serv := service.NewDetailService(repo)
	handler := api.NewAPIHandler(serv)

	r := gin.Default()
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", handler.Index)
	r.POST("/postDetails", handler.PostDetails)
	r.GET("/getDetails", handler.GetDetails)
	r.GET("/getDetails/:id", handler.GetDetailByID)
	r.DELETE("/clearDetails", handler.ClearDetails)
	r.GET("/health", handler.Health)

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
