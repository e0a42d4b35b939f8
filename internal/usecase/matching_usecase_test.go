package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"career-coach/internal/catalog"
	"career-coach/internal/domain/job"
	"career-coach/internal/domain/matching"
	"career-coach/internal/pkg/optional"

	"go.uber.org/zap/zaptest"
)

type fakeMatchCache struct {
	store  map[string][]byte
	getErr error
	setErr error
	gets   int
	sets   int
	ttl    time.Duration
}

func newFakeMatchCache() *fakeMatchCache {
	return &fakeMatchCache{store: map[string][]byte{}}
}

func (f *fakeMatchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.gets++
	if f.getErr != nil {
		return false, f.getErr
	}
	b, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeMatchCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	f.sets++
	f.ttl = ttl
	if f.setErr != nil {
		return f.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = b
	return nil
}

func TestMatchingUsecase_MatchJobs_NoCache(t *testing.T) {
	uc := NewMatchingUsecase(matching.NewEngine(catalog.Default()), nil, 0, zaptest.NewLogger(t))
	res, err := uc.MatchJobs(context.Background(), matching.Query{Skills: []string{"Python", "SQL"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res) == 0 || res[0].Job.ID != "1" || res[0].Score != 1.0 {
		t.Fatalf("expected job 1 first with score 1.0, got %+v", res)
	}
}

func TestMatchingUsecase_MatchJobs_InvalidInput(t *testing.T) {
	uc := NewMatchingUsecase(matching.NewEngine(catalog.Default()), nil, 0, nil)

	_, err := uc.MatchJobs(context.Background(), matching.Query{TopK: optional.Some(-1)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative top_k, got %v", err)
	}

	_, err = uc.MatchJobs(context.Background(), matching.Query{JobType: optional.Some(job.Type("contract"))})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown job_type, got %v", err)
	}
}

func TestMatchingUsecase_MatchJobs_CacheMissThenHit(t *testing.T) {
	cache := newFakeMatchCache()
	uc := NewMatchingUsecase(matching.NewEngine(catalog.Default()), cache, time.Minute, zaptest.NewLogger(t))
	q := matching.Query{Skills: []string{"Python"}, JobType: optional.Some(job.TypeInternship)}

	first, err := uc.MatchJobs(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 || cache.ttl != time.Minute {
		t.Fatalf("expected one write with ttl=1m, got sets=%d ttl=%s", cache.sets, cache.ttl)
	}

	// poison the stored payload to prove the second call is served from cache
	key := MatchCacheKey(q)
	cache.store[key] = []byte(`[{"job":{"id":"cached","title":"t","company":"c"},"score":0.25,"matched":[],"missing":[]}]`)

	second, err := uc.MatchJobs(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 internships, got %d", len(first))
	}
	if len(second) != 1 || second[0].Job.ID != "cached" || second[0].Score != 0.25 {
		t.Fatalf("expected cached payload, got %+v", second)
	}
	if cache.sets != 1 {
		t.Fatalf("expected no write on hit, got %d", cache.sets)
	}
}

func TestMatchingUsecase_MatchJobs_CacheErrorsBypass(t *testing.T) {
	cache := newFakeMatchCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	uc := NewMatchingUsecase(matching.NewEngine(catalog.Default()), cache, time.Minute, zaptest.NewLogger(t))

	res, err := uc.MatchJobs(context.Background(), matching.Query{Categories: optional.Some([]string{"marketing"})})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res))
	}
}

func TestMatchCacheKey(t *testing.T) {
	base := matching.Query{Skills: []string{"Python"}, Categories: optional.Some([]string{"Marketing"})}
	same := matching.Query{Skills: []string{"Python"}, TopK: optional.Some(20), Categories: optional.Some([]string{"marketing"})}
	if MatchCacheKey(base) != MatchCacheKey(same) {
		t.Fatalf("expected default top_k and category case to share a key")
	}

	differentCase := matching.Query{Skills: []string{"python"}, Categories: optional.Some([]string{"Marketing"})}
	if MatchCacheKey(base) == MatchCacheKey(differentCase) {
		t.Fatalf("skills are case-sensitive and must not share a key")
	}

	noFilter := matching.Query{Skills: []string{"Python"}}
	emptyFilter := matching.Query{Skills: []string{"Python"}, Categories: optional.Some([]string{})}
	if MatchCacheKey(noFilter) != MatchCacheKey(emptyFilter) {
		t.Fatalf("empty categories behave as no filter and should share a key")
	}

	withType := matching.Query{Skills: []string{"Python"}, JobType: optional.Some(job.TypeFullTime)}
	if MatchCacheKey(noFilter) == MatchCacheKey(withType) {
		t.Fatalf("job_type must be part of the key")
	}
}
