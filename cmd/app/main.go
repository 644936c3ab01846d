package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"ceaseletter/cmd"
	"ceaseletter/internal/adapters/out/postgres/blogrepo"
	"ceaseletter/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)
	gormDB := mustConnectDb(configs)
	migrateDb(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	devMode, _ := strconv.ParseBool(os.Getenv("DEV_MODE"))

	return cmd.Config{
		HTTPPort:           os.Getenv("HTTP_PORT"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          os.Getenv("DB_SSLMODE"),
		LobAPIKey:          os.Getenv("LOB_API_KEY"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		AdminSessionSecret: os.Getenv("ADMIN_SESSION_SECRET"),
		DevMode:            devMode,
	}
}

// createDbIfNotExists connects to the maintenance database and creates the
// application database when it is missing, so a fresh environment comes up
// without manual steps.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec(fmt.Sprintf(`CREATE DATABASE "%s"`, configs.DBName)); err != nil {
			log.Fatalf("Failed to create database %s: %v", configs.DBName, err)
		}
	}
}

func mustConnectDb(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDb(db *gorm.DB) {
	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &blogrepo.BlogPostDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
