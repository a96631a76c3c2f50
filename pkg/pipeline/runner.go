package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cyclekit/pkg/cache"
	"github.com/matzehuels/cyclekit/pkg/errors"
	"github.com/matzehuels/cyclekit/pkg/io"
	"github.com/matzehuels/cyclekit/pkg/observability"
	"github.com/matzehuels/cyclekit/pkg/perm"
)

// Cache key types reported to observability hooks.
const (
	keyTypeAnalysis = "analysis"
	keyTypeClasses  = "classes"
)

// Runner encapsulates analysis with caching.
// Both CLI and API use it so that caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides cache.TTLAnalysis for analysis results when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Analyze decomposes opts.Table, optionally normalizes and renders it, and
// reports its cycle type and derived invariants.
func (r *Runner) Analyze(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	cacheKey := r.Keyer.AnalysisKey(opts.Table.Slice(), opts.KeyOpts())
	if !opts.Refresh {
		if result, ok := r.lookup(ctx, logger, keyTypeAnalysis, cacheKey, opts.Formats); ok {
			logger.Debug("analysis cache hit", "n", opts.Table.Len())
			return result, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnAnalyzeStart(ctx, opts.Table.Len())
	start := time.Now()
	d := perm.Decompose(opts.Table)
	if opts.Normalize {
		d.Normalize()
	}
	result := analyze(opts.Table, d, opts.Normalize)
	result.Stats.DecomposeTime = time.Since(start)
	hooks.OnAnalyzeComplete(ctx, opts.Table.Len(), result.NumCycles, result.Stats.DecomposeTime, nil)

	logger.Info("decomposed permutation",
		"n", opts.Table.Len(),
		"cycles", result.NumCycles,
		"type", result.TypeNotation,
		"duration", result.Stats.DecomposeTime)

	if len(opts.Formats) > 0 {
		renderStart := time.Now()
		artifacts, err := Render(ctx, d, opts.Formats, opts.Labels)
		if err != nil {
			return nil, err
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)

		logger.Info("rendered cycle diagram",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
	}

	ttl := cache.TTLAnalysis
	if r.TTL > 0 {
		ttl = r.TTL
	}
	r.store(ctx, logger, keyTypeAnalysis, cacheKey, result, ttl)
	return result, nil
}

// Classes lists the conjugacy classes of S_n with their sizes and
// invariants, in the order of [perm.ConjugacyClasses].
func (r *Runner) Classes(ctx context.Context, n int) ([]Class, bool, error) {
	if n < 0 || n > MaxClassesSize {
		return nil, false, errors.New(errors.ErrCodeInvalidInput, "n must be in [0, %d], got %d", MaxClassesSize, n)
	}

	cacheKey := r.Keyer.ClassesKey(n)
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err != nil {
		r.Logger.Warn("cache read failed", "key", cacheKey, "err", err)
	} else if hit {
		var classes []Class
		if err := json.Unmarshal(data, &classes); err == nil {
			observability.Cache().OnCacheHit(ctx, keyTypeClasses)
			return classes, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, keyTypeClasses)

	start := time.Now()
	types := perm.ConjugacyClasses(n)
	classes := make([]Class, len(types))
	for i, ct := range types {
		classes[i] = Class{
			Notation:  ct.Notation(),
			Partition: ct.Partition(),
			CycleType: ct.Counts(),
			Size:      ct.ClassSize().String(),
			Order:     ct.Order().String(),
			Sign:      ct.Sign(),
		}
	}
	r.Logger.Info("listed conjugacy classes", "n", n, "classes", len(classes), "duration", time.Since(start))

	r.store(ctx, r.Logger, keyTypeClasses, cacheKey, classes, cache.TTLClasses)
	return classes, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup returns the cached result for key if it exists and holds every
// requested format.
func (r *Runner) lookup(ctx context.Context, logger *log.Logger, keyType, key string, formats []string) (*Result, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "key", key, "err", err)
		return nil, false
	}
	if !hit {
		hooks.OnCacheMiss(ctx, keyType)
		return nil, false
	}
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		logger.Debug("discarding unreadable cache entry", "key", key, "err", err)
		hooks.OnCacheMiss(ctx, keyType)
		return nil, false
	}
	for _, f := range formats {
		if _, ok := result.Artifacts[f]; !ok {
			hooks.OnCacheMiss(ctx, keyType)
			return nil, false
		}
	}
	hooks.OnCacheHit(ctx, keyType)
	result.CacheHit = true
	return &result, true
}

// store writes v to the cache. Failures are logged, never returned.
func (r *Runner) store(ctx context.Context, logger *log.Logger, keyType, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("cache encode failed", "key", key, "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// analyze collects the invariants of t from its decomposition d.
func analyze(t perm.Table, d *perm.Decomposition, normalized bool) *Result {
	ct := d.CycleType()
	return &Result{
		Table:        t.Slice(),
		Cycles:       d.Lists(),
		Notation:     io.FormatCycles(d),
		Normalized:   normalized,
		CycleType:    ct.Counts(),
		Partition:    ct.Partition(),
		TypeNotation: ct.Notation(),
		NumCycles:    ct.NumCycles(),
		FixedPoints:  ct.FixedPoints(),
		Order:        ct.Order().String(),
		Sign:         ct.Sign(),
		Inverse:      perm.Invert(t).Slice(),
	}
}

// Summary returns a one-line description of the result, e.g.
// "n=4 type=1^1 3^1 order=3 sign=+1".
func (res *Result) Summary() string {
	sign := "+1"
	if res.Sign < 0 {
		sign = "-1"
	}
	return fmt.Sprintf("n=%d type=%s order=%s sign=%s", len(res.Table), res.TypeNotation, res.Order, sign)
}
