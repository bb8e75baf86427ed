package main

import (
	"log"
	"net/http"

	"printmill-be/internal/config"
	"printmill-be/internal/db"
	"printmill-be/internal/logger"
	"printmill-be/internal/order"
	"printmill-be/internal/pricing"
	"printmill-be/internal/session"
	"printmill-be/internal/transport"
	"printmill-be/internal/upload"
	"printmill-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	sessionRepo := session.NewRepository(database)
	sessionSvc := session.NewService(sessionRepo, userRepo)

	engine := pricing.NewEngine(pricing.NewCatalog())

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, engine, cfg.AdminWhatsApp)

	uploadSvc, err := upload.NewService(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to init upload dir: %v", err)
	}

	router := transport.NewRouter(userSvc, sessionSvc, orderSvc, engine, uploadSvc)

	log.Printf("🚀 Printing API running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
