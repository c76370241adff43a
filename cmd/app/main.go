package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"servicedesk/cmd"
	httpin "servicedesk/internal/adapters/in/http"
	"servicedesk/internal/adapters/out/googleauth"
	"servicedesk/internal/adapters/out/postgres"
	"servicedesk/internal/jobs"
)

const defaultTokenTTLHours = 24

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	identityProvider, err := googleauth.NewProvider(
		configs.GoogleClientID,
		configs.GoogleClientSecret,
		configs.GoogleRedirectURL,
	)
	if err != nil {
		log.Fatalf("Error creating Google identity provider: %v", err)
	}

	app := cmd.NewCompositionRoot(gormDB, identityProvider, tokenTTL(configs))

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreatePurgeExpiredTokensCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		GoogleClientID:     goDotEnvVariable("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: goDotEnvVariable("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  goDotEnvVariable("GOOGLE_REDIRECT_URL"),
		TokenTTLHours:      goDotEnvVariable("TOKEN_TTL_HOURS"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func tokenTTL(configs cmd.Config) time.Duration {
	hours, err := strconv.Atoi(configs.TokenTTLHours)
	if err != nil || hours <= 0 {
		hours = defaultTokenTTLHours
	}
	return time.Duration(hours) * time.Hour
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	server := httpin.NewServer(app.CreateHTTPHandlers(), app.IdentityProvider())
	server.RegisterRoutes(e, httpin.NewAuthMiddleware(app.UnitOfWorkFactory()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
