package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"quickdish/cmd"
	_ "quickdish/docs"
	httpadapter "quickdish/internal/adapters/in/http"
	"quickdish/internal/adapters/out/postgres"
	"quickdish/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectToDB(configs)
	if err := postgres.MigrateSchema(gormDB); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

// mustConnectToDB opens the database through lib/pq, waits for it to
// accept connections, and hands the live connection to GORM.
func mustConnectToDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}

	for attempt := 1; ; attempt++ {
		if err = sqlDB.Ping(); err == nil {
			break
		}
		if attempt >= 10 {
			log.Fatalf("Error connecting to database: %v", err)
		}
		time.Sleep(time.Second)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error initializing GORM: %v", err)
	}
	return gormDB
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateGetOrderStatsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	createOrderHandler := app.CreateCreateOrderCommandHandler()
	updateOrderStatusHandler := app.CreateUpdateOrderStatusCommandHandler()

	server := httpadapter.NewServer(
		&createOrderHandler,
		&updateOrderStatusHandler,
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderStatusQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
