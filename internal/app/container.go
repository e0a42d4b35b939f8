package app

import (
	"context"
	"time"

	"career-coach/internal/catalog"
	"career-coach/internal/config"
	"career-coach/internal/domain/matching"
	"career-coach/internal/infrastructure/cache"
	"career-coach/internal/usecase"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	Cache  *cache.Redis

	Ingest   usecase.IngestUsecase
	Matching usecase.MatchingUsecase
	Planner  usecase.PlannerUsecase
	QA       usecase.QAUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	jobs, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	logger.Info("job catalog loaded", zap.Int("jobs", len(jobs)), zap.String("path", cfg.Catalog.Path))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	redis := cache.NewRedis(ctx, cfg.Redis, logger)

	var matchCache usecase.MatchCache
	if redis.Enabled() {
		matchCache = redis
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Cache:    redis,
		Ingest:   usecase.NewIngestUsecase(logger),
		Matching: usecase.NewMatchingUsecase(matching.NewEngine(jobs), matchCache, redis.TTL(), logger),
		Planner:  usecase.NewPlannerUsecase(),
		QA:       usecase.NewQAUsecase(),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
