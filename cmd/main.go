package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profiledash/internal/handlers"
	"profiledash/internal/jsonapi"
	"profiledash/internal/logger"
	"profiledash/internal/server"
	"profiledash/internal/service"

	"github.com/spf13/viper"
)

const defaultAPIBaseURL = "https://jsonplaceholder.typicode.com"

func main() {
	// load config.yml first so the logger level can come from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"))

	// wire dependencies
	api := jsonapi.NewClient(apiBaseURL(log), viper.GetDuration("api.timeout"))
	services := service.NewService(api, viper.GetDuration("api.count_delay"))
	apiHandler := handlers.NewHandler(services, log, viper.GetString("static.dir"))

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// apiBaseURL returns the configured remote API root, defaulting to the
// public test API the dashboard was built against.
func apiBaseURL(log *logger.Logger) string {
	u := viper.GetString("api.base_url")
	if u == "" {
		log.Infow("api.base_url not set in config; using default", "default", defaultAPIBaseURL)
		u = defaultAPIBaseURL
	}
	return u
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
