package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"warehouse/cmd"
	httpadapter "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres/settingsrepo"
	"warehouse/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		RackZones:         goDotEnvVariable("RACK_ZONES"),
		RackRows:          goDotEnvVariable("RACK_ROWS"),
		RackColumns:       goDotEnvVariable("RACK_COLUMNS"),
		ScanSessionTTLSec: goDotEnvVariable("SCAN_SESSION_TTL_SECONDS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &settingsrepo.SettingDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateScanPieceCommandHandler(),
		app.CreateScanRackCommandHandler(),
		app.CreateCancelAssignmentCommandHandler(),
		app.CreateReleaseShipmentCommandHandler(),
		app.CreateRelocateShipmentCommandHandler(),
		app.CreateEmptyRackCommandHandler(),
		app.CreateGetRackMapQueryHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateEstimateChargesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
