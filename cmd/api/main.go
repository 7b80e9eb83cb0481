package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/IWeppler/el-manantial/internal/modules/auth"
	"github.com/IWeppler/el-manantial/internal/modules/expense"
	"github.com/IWeppler/el-manantial/internal/modules/order"
	"github.com/IWeppler/el-manantial/internal/modules/production"
	"github.com/IWeppler/el-manantial/internal/modules/schedule"
	"github.com/IWeppler/el-manantial/internal/modules/settings"
	"github.com/IWeppler/el-manantial/internal/modules/stock"
	"github.com/IWeppler/el-manantial/internal/modules/user"
	"github.com/IWeppler/el-manantial/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	log, err := logger.New("el-manantial-api")
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, relying on the environment")
	}

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("ping database", zap.Error(err))
	}
	log.Info("connected to the database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(auth.Sessions(secret))

	requireAdmin := auth.RequireAdmin

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo, os.Getenv("ADMIN_PHONE"))
	user.NewHandler(userService).RegisterRoutes(router, requireAdmin)

	authService := auth.NewService(userRepo, secret)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Business configuration ──────────────────────────────
	settingsRepo := settings.NewPostgresRepository(db)
	settingsService := settings.NewService(settingsRepo)
	settings.NewHandler(settingsService).RegisterRoutes(router, requireAdmin)

	stockRepo := stock.NewPostgresRepository(db)
	stockService := stock.NewService(stockRepo)
	stock.NewHandler(stockService).RegisterRoutes(router, requireAdmin)

	scheduleRepo := schedule.NewPostgresRepository(db)
	scheduleService := schedule.NewService(scheduleRepo)
	schedule.NewHandler(scheduleService).RegisterRoutes(router, requireAdmin)

	// ── Orders ──────────────────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)
	order.NewHandler(orderService).RegisterRoutes(router, requireAdmin)

	// ── Farm records ────────────────────────────────────────
	productionRepo := production.NewPostgresRepository(db)
	productionService := production.NewService(productionRepo)
	production.NewHandler(productionService).RegisterRoutes(router, requireAdmin)

	expenseRepo := expense.NewPostgresRepository(db)
	expenseService := expense.NewService(expenseRepo)
	expense.NewHandler(expenseService).RegisterRoutes(router, requireAdmin)

	// ── Start server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("el manantial API listening", zap.String("port", port))
	log.Fatal("server stopped", zap.Error(http.ListenAndServe(":"+port, router)))
}
