package app

import (
	"context"
	"log"
	"log/slog"

	"github.com/humanbelnik/screenlens/core/internal/config"
	http_explore "github.com/humanbelnik/screenlens/core/internal/delivery/http/explore"
	http_init "github.com/humanbelnik/screenlens/core/internal/delivery/http/init"
	http_sentiment "github.com/humanbelnik/screenlens/core/internal/delivery/http/sentiment"
	http_title "github.com/humanbelnik/screenlens/core/internal/delivery/http/title"
	ws_dashboard "github.com/humanbelnik/screenlens/core/internal/delivery/ws/dashboard"
	infra_classifier "github.com/humanbelnik/screenlens/core/internal/infra/classifier"
	infra_dataset "github.com/humanbelnik/screenlens/core/internal/infra/dataset"
	infra_postgres_catalog "github.com/humanbelnik/screenlens/core/internal/infra/postgres/catalog"
	infra_pg_init "github.com/humanbelnik/screenlens/core/internal/infra/postgres/init"
	infra_redis_init "github.com/humanbelnik/screenlens/core/internal/infra/redis/init"
	infra_sentiment_cache "github.com/humanbelnik/screenlens/core/internal/infra/redis/sentiment"
	"github.com/humanbelnik/screenlens/core/internal/model"
	storage_catalog "github.com/humanbelnik/screenlens/core/internal/storage/catalog"
	storage_sentiment "github.com/humanbelnik/screenlens/core/internal/storage/sentiment"
	usecase_explore "github.com/humanbelnik/screenlens/core/internal/usecase/explore"
	usecase_sentiment "github.com/humanbelnik/screenlens/core/internal/usecase/sentiment"
	usecase_title "github.com/humanbelnik/screenlens/core/internal/usecase/title"
)

func Go(cfg *config.Config) {
	catalog := storage_catalog.New(mustLoadRecords(cfg))

	var cache usecase_sentiment.Cache
	if cfg.Redis.Host != "" {
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		cache = infra_sentiment_cache.New(redisConn, "sentiment_cache")
	} else {
		cache = storage_sentiment.New()
	}

	var classifier usecase_sentiment.Classifier
	if cfg.Classifier.URL == "" {
		classifier = infra_classifier.NewMock()
	} else {
		classifier = infra_classifier.New(cfg.Classifier)
	}

	exploreUC := usecase_explore.New(catalog, cfg.Histogram)
	titleUC := usecase_title.New(catalog, cfg.Similarity)
	sentimentUC := usecase_sentiment.New(classifier, cache)

	hub := ws_dashboard.NewHub(exploreUC, titleUC, sentimentUC)
	go hub.Run()

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_explore.New(exploreUC))
	controllerPool.Add(http_title.New(titleUC))
	controllerPool.Add(http_sentiment.New(sentimentUC))
	controllerPool.Add(ws_dashboard.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}

// The dashboard cannot render without data, so any load failure here
// is fatal. Dropped rows are reported, never silent.
func mustLoadRecords(cfg *config.Config) []*model.TitleMeta {
	if cfg.Postgres.Host != "" {
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		records, err := infra_postgres_catalog.New(pgConn).Load(context.Background())
		if err != nil {
			log.Fatalf("failed to load catalog from postgres: %v", err)
		}
		slog.Info("catalog loaded from postgres", "records", len(records))
		return records
	}

	records, dropped, err := infra_dataset.New(cfg.Dataset).Load()
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	if dropped > 0 {
		slog.Warn("dropped rows with unparseable numeric fields", "count", dropped)
	}
	slog.Info("catalog loaded", "records", len(records), "dropped", dropped)
	return records
}
