package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/adapters/in/http"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/adapters/in/rabbitmq"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/adapters/out/cache"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/adapters/out/logger"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/adapters/out/supabase"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/config"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/out"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/services/schedule_expander_service"
	"github.com/gin-gonic/gin"
)

func main() {
	// Carga de configuración
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Inicialización del logger con zona horaria
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Modo de Gin según el entorno
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Inicialización de adaptadores
	supabaseAdapter := supabase.NewSupabaseAdapter(cfg, log.WithModule("SupabaseAdapter"))

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewCacheAdapter(cfg, log.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	}

	// Inicialización del servicio
	expanderService := schedule_expander_service.NewScheduleExpanderService(
		supabaseAdapter,
		cacheAdapter,
		cfg,
		log.WithModule("ScheduleExpanderService"),
	)

	// Servidor HTTP
	router := gin.Default()
	controller := http.NewScheduleExpanderController(expanderService, cfg)
	controller.RegisterRoutes(router)

	// Listener de RabbitMQ solo si está habilitado
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewInvalidationListener(
			expanderService,
			cfg,
			log.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
