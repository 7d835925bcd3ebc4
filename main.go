package main

import (
	"log"

	"github.com/techagentng/bookxchange/config"
	"github.com/techagentng/bookxchange/db"
	"github.com/techagentng/bookxchange/logger"
	"github.com/techagentng/bookxchange/server"
	"github.com/techagentng/bookxchange/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logs := logger.New(conf.LogLevel)

	gormDB, err := db.GetDB(conf)
	if err != nil {
		logs.WithError(err).Fatal("database setup failed")
	}

	authRepo := db.NewAuthRepo(gormDB)
	listingRepo := db.NewListingRepo(gormDB)
	messageRepo := db.NewMessageRepo(gormDB)

	authService := services.NewAuthService(authRepo, conf, logs)
	listingService := services.NewListingService(listingRepo, conf, logs)
	messageService := services.NewMessageService(messageRepo, listingRepo, authRepo, conf, logs)

	s := &server.Server{
		Config:         conf,
		Log:            logs,
		DB:             gormDB,
		AuthService:    authService,
		ListingService: listingService,
		MessageService: messageService,
		SessionStore:   server.NewSessionStore(conf),
		Metrics:        server.NewMetrics(),
	}
	s.Start()
}
