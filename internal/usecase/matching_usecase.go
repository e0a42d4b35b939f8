package usecase

import (
	"context"
	"fmt"
	"time"

	"career-coach/internal/domain/matching"

	"go.uber.org/zap"
)

type MatchingUsecase interface {
	MatchJobs(ctx context.Context, q matching.Query) ([]matching.Result, error)
}

type Matching struct {
	engine   *matching.Engine
	cache    MatchCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewMatchingUsecase(engine *matching.Engine, cache MatchCache, cacheTTL time.Duration, logger *zap.Logger) *Matching {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{engine: engine, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func (u *Matching) MatchJobs(ctx context.Context, q matching.Query) ([]matching.Result, error) {
	if u == nil || u.engine == nil {
		return nil, ErrInternal
	}
	if k, ok := q.TopK.Get(); ok && k < 0 {
		return nil, fmt.Errorf("%w: top_k must not be negative", ErrInvalidInput)
	}
	if jt, ok := q.JobType.Get(); ok && !jt.Valid() {
		return nil, fmt.Errorf("%w: unknown job_type %q", ErrInvalidInput, jt)
	}

	key := ""
	if u.cache != nil {
		key = MatchCacheKey(q)
		var cached []matching.Result
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		switch {
		case err != nil:
			u.logger.Warn("match cache read failed", zap.String("key", key), zap.Error(err))
		case hit:
			u.logger.Debug("match cache hit", zap.String("key", key))
			return cached, nil
		default:
			u.logger.Debug("match cache miss", zap.String("key", key))
		}
	}

	results := u.engine.Match(q)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, results, u.cacheTTL); err != nil {
			u.logger.Warn("match cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return results, nil
}
