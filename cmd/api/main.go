package main

import (
	"crypto/rand"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"trufapro/internal/domain/sqlite"
	"trufapro/internal/domain/sqlite/repository"
	"trufapro/internal/http/handler"
	custommw "trufapro/internal/http/middleware"
	"trufapro/internal/service"
	"trufapro/internal/service/jobs"
	"trufapro/internal/utils/uid"
	"trufapro/internal/utils/validators"
)

// DefaultPin seeds a fresh install until TRUFA_PIN_HASH is set.
const DefaultPin = "1203"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads from .env when present; a bare environment is fine too
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	uid.Init(1)
	custommw.InitMetrics()

	dbPath := os.Getenv("TRUFA_DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}
	db, err := sqlite.Init(dbPath)
	if err != nil {
		panic(err)
	}

	pinHash := loadPinHash()
	secret := loadSecret()

	// Getting repos
	truffleRepo := repository.NewTruffleRepository(db)
	pdvRepo := repository.NewPDVRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	backupRepo := repository.NewBackupRepository(db)

	// Getting services
	catalogService := service.NewCatalogService(truffleRepo, validate)
	pdvService := service.NewPDVService(pdvRepo, saleRepo, truffleRepo, validate)
	saleService := service.NewSaleService(saleRepo, truffleRepo, pdvRepo, validate)
	reportService := service.NewReportService(saleRepo, settingRepo)
	backupService := service.NewBackupService(backupRepo, saleRepo, truffleRepo, pdvRepo, settingRepo)
	settingsService := service.NewSettingsService(settingRepo, validate)
	authService := service.NewAuthService(pinHash, secret, validate)

	// Getting handlers
	catalogRoutes := handler.NewCatalogDefault(catalogService)
	pdvRoutes := handler.NewPDVDefault(pdvService)
	saleRoutes := handler.NewSaleDefault(saleService)
	reportRoutes := handler.NewReportDefault(reportService)
	backupRoutes := handler.NewBackupDefault(backupService)
	settingsRoutes := handler.NewSettingsDefault(settingsService)
	authRoutes := handler.NewAuthDefault(authService)

	reminder := jobs.NewBackupReminder(settingRepo)
	reminder.Start()
	defer reminder.Stop()

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("30M"))
	e.Use(custommw.PrometheusMiddleware())

	e.POST("/api/auth/login", authRoutes.Login)

	api := e.Group("/api", custommw.NewAuthMiddleware(&custommw.AuthMiddlewareConfig{Secret: secret}))

	// Catalog
	api.GET("/truffles", catalogRoutes.GetTruffles)
	api.POST("/truffles", catalogRoutes.CreateTruffle)
	api.PATCH("/truffles/:id", catalogRoutes.UpdateTruffle)
	api.DELETE("/truffles/:id", catalogRoutes.DeleteTruffle)

	// Partners
	api.GET("/pdvs", pdvRoutes.GetPDVs)
	api.GET("/pdvs/:id", pdvRoutes.GetPDV)
	api.POST("/pdvs", pdvRoutes.CreatePDV)
	api.PATCH("/pdvs/:id", pdvRoutes.UpdatePDV)
	api.DELETE("/pdvs/:id", pdvRoutes.DeletePDV)
	api.GET("/cities", pdvRoutes.GetCities)

	// Ledger
	api.GET("/sales", saleRoutes.GetSales)
	api.GET("/sales/today", saleRoutes.GetToday)
	api.GET("/sales/:id", saleRoutes.GetSale)
	api.POST("/sales", saleRoutes.CreateSale)
	api.PUT("/sales/:id", saleRoutes.UpdateSale)
	api.DELETE("/sales/:id", saleRoutes.DeleteSale)

	// Reports
	api.GET("/dashboard", reportRoutes.GetDashboard)
	api.GET("/reports/monthly", reportRoutes.GetMonthly)
	api.GET("/reports/annual", reportRoutes.GetAnnual)

	// Backup
	api.GET("/backup/export", backupRoutes.Export)
	api.POST("/backup/import", backupRoutes.Import)

	// Settings
	api.GET("/settings", settingsRoutes.GetSettings)
	api.PATCH("/settings", settingsRoutes.UpdateSettings)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	port := os.Getenv("TRUFA_PORT")
	if port == "" {
		port = "7070"
	}
	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("channel", validators.Channel)
}

func loadPinHash() []byte {
	if hash := os.Getenv("TRUFA_PIN_HASH"); hash != "" {
		return []byte(hash)
	}

	log.Warn("TRUFA_PIN_HASH not set, falling back to the default PIN")
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPin), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash default PIN: %v", err)
	}
	return hash
}

func loadSecret() []byte {
	if secret := os.Getenv("TRUFA_JWT_SECRET"); secret != "" {
		return []byte(secret)
	}

	// Sessions won't survive a restart without a configured secret.
	log.Warn("TRUFA_JWT_SECRET not set, using a random per-run secret")
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("failed to generate session secret: %v", err)
	}
	return secret
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
