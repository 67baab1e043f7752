package main

import (
	"fmt"
	"log"
	"net/http"

	httpapi "phoneline/internal/api/http"
	"phoneline/internal/config"
	"phoneline/internal/printing"
	"phoneline/internal/service"
	"phoneline/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	repo, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer repo.Close()

	dispatcher := printing.FromConfig(cfg)
	qr := service.DashboardQRGenerator{BaseURL: cfg.BaseURL}

	orderSvc := service.NewOrderService(repo, dispatcher, qr)
	handler := httpapi.NewHandler(orderSvc)
	router := httpapi.NewRouter(handler, cfg.PublicDir)

	log.Printf("Phone order service starting on port %d", cfg.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), router))
}
