package main

import (
	"fmt"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/config"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/dsn"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/handler"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/pkg/auth"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	connStr, err := dsn.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	repo := repository.New(db)

	jwtSvc := auth.NewJWTService(cfg.JWTSecret)
	sessionSvc, err := auth.NewSessionService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}
	defer sessionSvc.Close()

	router := gin.Default()
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowCredentials = false
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	h := handler.NewHandler(repo, cfg, jwtSvc, sessionSvc)
	h.RegisterHandler(router)

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	log.Info("listening on ", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
