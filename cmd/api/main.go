package main

import (
	"context"
	"net/http"

	"datagen-api/internal/config"
	"datagen-api/internal/dataset"
	"datagen-api/internal/handler"
	"datagen-api/internal/repository"
	"datagen-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Initialize layers
	loader := dataset.NewLoader(config.DataDir, log.Logger)
	dataGenService := service.NewDataGenService(loader, log.Logger)

	localesHandler := handler.NewLocalesHandler(dataGenService)
	generateHandler := handler.NewGenerateHandler(dataGenService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/locales", localesHandler.List)
	r.POST("/generate", generateHandler.Generate)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Database seeding is optional; it is wired only when a source is
	// configured.
	if config.DBSource != "" {
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		seedHandler := handler.NewSeedHandler(dataGenService, repository.NewSeedRepository(conn))
		r.POST("/seed", seedHandler.Seed)
	}

	r.Run(config.ServerAddress)
}
