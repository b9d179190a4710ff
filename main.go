// main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-gonic/gin"
	"ycfl-league/config"
	"ycfl-league/controllers"
	"ycfl-league/logger"
	"ycfl-league/metrics"
	"ycfl-league/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.InitLogger(cfg.LogDir); err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	defer logger.Close()
	logger.SetLogLevel(cfg.Env)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	controllers.RegisterValidation()

	var publisher metrics.Publisher = metrics.Noop{}
	if cfg.MetricsEnabled {
		cw, err := metrics.NewCloudWatch(cfg.MetricsNamespace, cfg.Env)
		if err != nil {
			logger.Error.Printf("main: CloudWatch unavailable, metrics disabled: %v", err)
		} else {
			publisher = cw
		}
	}

	league := services.NewLeagueStore()
	router, err := setupRouter(cfg, league, publisher, filepath.Join(cfg.TemplatesDir, "*.html"))
	if err != nil {
		logger.Error.Fatalf("Failed to set up router: %v", err)
	}

	var handler http.Handler = router
	if cfg.TracingEnabled {
		handler = xray.Handler(xray.NewFixedSegmentNamer("ycfl-league"), router)
		logger.Info.Println("main: X-Ray tracing enabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info.Printf("main: listening on %s (register at %s)", srv.Addr, cfg.RegisterURL())
	if err := runServer(ctx, srv, 5*time.Second); err != nil {
		logger.Error.Printf("main: server stopped: %v", err)
		return
	}
	logger.Info.Println("main: shut down cleanly")
}

// runServer serves until ctx is cancelled or the listener fails, then
// drains in-flight requests for at most grace.
func runServer(ctx context.Context, srv *http.Server, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info.Println("main: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
