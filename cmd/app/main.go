package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/Ripeplantain/Twitter-Backend-Api/configs"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/account"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/feed"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/kafka"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/migrate"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/notification"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/db"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/httpx"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/redisx"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/social"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/tweet"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(os.Getenv("OTEL_SERVICE_NAME")),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return tp.Shutdown
}

func main() {
	ctx := context.Background()
	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	cfg := configs.LoadConfig()

	store := db.OpenFromEnv(cfg)
	_ = store.Base.Use(tracing.NewPlugin())

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := migrate.AutoMigrateAll(store); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	rdb := redisx.NewClient(cfg)

	var sink *kafka.Writer
	if cfg.KafkaBrokerURL != "" {
		var err error
		sink, err = kafka.NewWriter(cfg.KafkaBrokerURL, cfg.KafkaTopic)
		if err != nil {
			log.Fatalf("kafka writer: %v", err)
		}
		defer sink.Close()
	}

	accountRepo := account.NewRepository(store)
	accountSvc := account.NewService(accountRepo)

	tweetRepo := tweet.NewRepository(store)
	tweetSvc := tweet.NewService(tweetRepo, accountRepo)

	notifRepo := notification.NewRepository(store)
	notifSvc := notification.NewService(notifRepo, sink)

	socialRepo := social.NewRepository(store)
	socialSvc := social.NewService(socialRepo, notifSvc)

	feedRepo := feed.NewRepository(store)
	feedCache := feed.NewRedisCache(rdb, cfg.FeedCacheTTL)
	feedSvc := feed.NewService(feedRepo, feedCache)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	ah := account.NewHandler(accountSvc)
	mux.Handle("POST /accounts", httpx.Wrap(ah.Create))
	mux.Handle("GET /accounts/{account_id}", httpx.Wrap(ah.GetByID))

	th := tweet.NewHandler(tweetSvc)
	mux.Handle("GET /tweets/{tweet_id}", httpx.Wrap(th.GetByID))

	fh := feed.NewHandler(feedSvc)
	mux.Handle("GET /tweets", httpx.Wrap(fh.GetFeed))
	mux.Handle("GET /accounts/{username}/tweets", httpx.Wrap(fh.GetUserFeed))

	protect := func(pattern string, h http.Handler) {
		mux.Handle(pattern, httpx.AuthMiddleware(h))
	}

	protect("POST /tweets", httpx.Wrap(th.Create))
	protect("PUT /tweets/{tweet_id}", httpx.Wrap(th.Update))
	protect("DELETE /tweets/{tweet_id}", httpx.Wrap(th.Delete))

	sh := social.NewHandler(socialSvc)
	protect("POST /follow/{target_id}", httpx.Wrap(sh.Follow))
	protect("DELETE /follow/{target_id}", httpx.Wrap(sh.Unfollow))
	protect("POST /tweets/{tweet_id}/like", httpx.Wrap(sh.Like))
	protect("POST /tweets/{tweet_id}/retweet", httpx.Wrap(sh.Retweet))

	nh := notification.NewHandler(notifSvc)
	protect("GET /notifications", httpx.Wrap(nh.ListMine))

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(mux, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	log.Printf("twitter-backend-api listening on %s", cfg.AppPort)
	log.Fatal(srv.ListenAndServe())
}
