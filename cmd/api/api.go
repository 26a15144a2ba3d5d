package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/restomenu/restomenu/docs"
	"github.com/restomenu/restomenu/internal/adapter"
	"github.com/restomenu/restomenu/internal/backend"
	"github.com/restomenu/restomenu/internal/cache"
	"github.com/restomenu/restomenu/internal/queue"
	"github.com/restomenu/restomenu/internal/ratelimiter"
	"github.com/restomenu/restomenu/internal/service"
	"github.com/restomenu/restomenu/internal/store/mongo"
	"github.com/restomenu/restomenu/internal/worker"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config         config
	logger         *zap.SugaredLogger
	rateLimiter    ratelimiter.Limiter
	storage        *mongo.Storage
	cache          *cache.MenuCache
	broker         queue.Broker
	categories     *adapter.Categories
	products       *adapter.Products
	ads            *adapter.Ads
	admin          *adapter.Admin
	menus          *adapter.Menus
	uploads        *adapter.Uploads
	importService  *service.ImportService
	metricsService *service.AdMetricsService
	importWorker   *worker.MenuImportWorker
	metricsWorker  *worker.AdMetricsWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	redis       redisConfig
	backend     backend.Config
	googleCreds string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	PrefetchCount int
}

type redisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(app.RateLimiterMiddleware)

		r.Get("/health", app.healthCheckHandler)

		r.Route("/menus/{menu_id}", func(r chi.Router) {
			r.Get("/", app.getMenuHandler)
			r.Put("/branding", app.updateBrandingHandler)
			r.Get("/ads", app.listMenuAdsHandler)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", app.listCategoriesHandler)
				r.Post("/", app.createCategoryHandler)
				r.Get("/{category_id}", app.getCategoryHandler)
				r.Put("/{category_id}", app.updateCategoryHandler)
				r.Delete("/{category_id}", app.deleteCategoryHandler)
			})

			r.Route("/items", func(r chi.Router) {
				r.Get("/", app.listItemsHandler)
				r.Post("/", app.createItemHandler)
				r.Get("/{item_id}", app.getItemHandler)
				r.Put("/{item_id}", app.updateItemHandler)
				r.Delete("/{item_id}", app.deleteItemHandler)
				r.Patch("/{item_id}/status", app.updateItemStatusHandler)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/stats", app.adminStatsHandler)
			r.Get("/users", app.listUsersHandler)
			r.Get("/users/{user_id}", app.getUserDetailsHandler)
			r.Put("/users/{user_id}/subscription", app.updateSubscriptionHandler)
			r.Post("/users/{user_id}/apply-free-limits", app.applyFreeLimitsHandler)
			r.Put("/users/{user_id}/suspend", app.suspendUserHandler)
			r.Get("/plans", app.listPlansHandler)
			r.Get("/plans/subscription", app.listSubscriptionPlansHandler)
			r.Put("/plans/{plan_id}", app.updatePlanHandler)
			r.Get("/ads", app.listAdminAdsHandler)
			r.Post("/ads", app.createAdHandler)
			r.Get("/admins", app.listAdminsHandler)
			r.Post("/admins", app.createAdminHandler)
		})

		r.Route("/ads/{ad_id}", func(r chi.Router) {
			r.Put("/", app.updateAdHandler)
			r.Delete("/", app.deleteAdHandler)
			r.Get("/metrics", app.getAdMetricsHandler)
		})

		r.Route("/public", func(r chi.Router) {
			r.Get("/menus/{menu_id}", app.getPublicMenuHandler)
			r.Get("/ads", app.listPublicAdsHandler)
			r.Post("/ads/{ad_id}/impression", app.adImpressionHandler)
			r.Post("/ads/{ad_id}/click", app.adClickHandler)
		})

		r.Post("/uploads", app.uploadImageHandler)

		r.Route("/imports", func(r chi.Router) {
			r.Post("/", app.createImportTaskHandler)
			r.Get("/{task_id}", app.getImportTaskHandler)
		})

		docsURL := fmt.Sprintf("%s/api/v1/swagger/doc.json", app.config.apiURL)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Restomenu"
	docs.SwaggerInfo.Description = "BFF API for the Restomenu dashboard and public menus"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.importWorker != nil {
		if err := app.importWorker.Start(); err != nil {
			return fmt.Errorf("failed to start import worker: %w", err)
		}
	}
	if app.metricsWorker != nil {
		if err := app.metricsWorker.Start(); err != nil {
			return fmt.Errorf("failed to start metrics worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.importWorker != nil {
			app.importWorker.Stop()
		}
		if app.metricsWorker != nil {
			app.metricsWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.cache != nil {
			if err := app.cache.Close(); err != nil {
				app.logger.Errorw("error closing Redis", "error", err)
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
