package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"franchise_dashboard/pkg/api/admin"
	apiconfig "franchise_dashboard/pkg/api/config"
	apiorquest "franchise_dashboard/pkg/api/orquest"
	"franchise_dashboard/pkg/api/profitloss"
	"franchise_dashboard/pkg/api/restaurants"
	"franchise_dashboard/pkg/core/config"
	"franchise_dashboard/pkg/core/notify"
	"franchise_dashboard/pkg/core/orquest"
	"franchise_dashboard/pkg/core/store"
	"franchise_dashboard/pkg/core/users"
)

func main() {
	cfg, err := config.Load("config/app.yaml")
	if err != nil {
		fmt.Printf("[FATAL] %v\n", err)
		os.Exit(1)
	}

	// Postgres is optional; P&L history falls back to SQLite without it
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.InitDB(ctx, cfg.DatabaseURL); err != nil {
		fmt.Printf("[WARNING] Database unavailable: %v\n", err)
	} else {
		fmt.Println("[STORE] Connected to Postgres")
	}
	cancel()

	pool := store.GetPool()
	pnlStore, err := store.NewProfitLossStore(pool, cfg.SQLitePath)
	if err != nil {
		fmt.Printf("[FATAL] Failed to open P&L store: %v\n", err)
		store.Close()
		os.Exit(1)
	}
	storage := "postgres"
	if pool == nil {
		storage = "sqlite"
	}

	mux := http.NewServeMux()

	configHandler := apiconfig.NewHandler(cfg, storage)
	mux.HandleFunc("GET /api/config", configHandler.HandleConfig)

	profitloss.NewHandler(pnlStore).Register(mux)
	restaurants.NewHandler(store.NewRestaurantRepo(pool)).Register(mux)

	userSvc := users.NewService(store.NewProfileRepo(pool), notify.NewMailer(cfg.Email))
	admin.NewHandler(userSvc).Register(mux)

	if cfg.Orquest.FunctionsURL == "" {
		fmt.Println("[WARNING] ORQUEST_FUNCTIONS_URL not set, sync requests will fail")
	}
	orquestSvc := orquest.NewService(orquest.NewClient(cfg.Orquest.FunctionsURL, cfg.Orquest.APIKey), store.NewOrquestRepo(pool))
	apiorquest.NewHandler(orquestSvc).Register(mux)

	fmt.Printf("API server starting on %s...\n", cfg.Addr)
	fmt.Println("  - GET    /api/config")
	fmt.Println("  - POST   /api/profitloss/parse")
	fmt.Println("  - POST   /api/profitloss/{site}/import")
	fmt.Println("  - GET    /api/profitloss/{site}[/report]")
	fmt.Println("  - GET    /api/restaurants, /api/dashboard")
	fmt.Println("  - GET    /api/admin/advisors, POST /api/admin/users")
	fmt.Println("  - DELETE /api/admin/advisors/{id}")
	fmt.Println("  - GET    /api/orquest/services, /api/orquest/employees")
	fmt.Println("  - POST   /api/orquest/sync, PATCH /api/orquest/services/{id}")

	err = http.ListenAndServe(cfg.Addr, mux)
	store.Close()
	if err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
