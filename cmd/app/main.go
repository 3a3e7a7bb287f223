package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"swifthub/cmd"
	apihttp "swifthub/internal/adapters/in/http"
	"swifthub/internal/jobs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("composition failed: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateGetSystemHealthQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("jobs failed to start: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		CMSURL:         goDotEnvVariable("CMS_URL"),
		ROSBaseURL:     goDotEnvVariable("ROS_BASE_URL"),
		WMSAddr:        goDotEnvVariable("WMS_ADDR"),
		RabbitMQURL:    goDotEnvVariable("RABBITMQ_URL"),
		BackendTimeout: backendTimeout(),
	}
}

func goDotEnvVariable(key string) string {
	_ = godotenv.Load(".env")
	return os.Getenv(key)
}

func backendTimeout() time.Duration {
	raw := goDotEnvVariable("BACKEND_TIMEOUT")
	if raw == "" {
		return 10 * time.Second
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("invalid BACKEND_TIMEOUT %q: %v", raw, err)
	}
	return timeout
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	server := apihttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderStatusQueryHandler(),
		app.CreateGetSystemHealthQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
