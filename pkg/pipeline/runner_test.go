package pipeline

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cyclekit/pkg/cache"
	cerrors "github.com/matzehuels/cyclekit/pkg/errors"
	"github.com/matzehuels/cyclekit/pkg/observability"
	"github.com/matzehuels/cyclekit/pkg/perm"
)

// recordingHooks counts pipeline and cache events.
type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	analyzed, rendered int
	hits, misses, sets []string
}

func (h *recordingHooks) OnAnalyzeComplete(context.Context, int, int, time.Duration, error) {
	h.analyzed++
}

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.rendered++
}

func (h *recordingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.hits = append(h.hits, keyType)
}

func (h *recordingHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.misses = append(h.misses, keyType)
}

func (h *recordingHooks) OnCacheSet(_ context.Context, keyType string, _ int) {
	h.sets = append(h.sets, keyType)
}

// failingCache fails every operation.
type failingCache struct{}

var errBackend = errors.New("backend down")

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errBackend
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errBackend
}

func (failingCache) Delete(context.Context, string) error {
	return errBackend
}

func (failingCache) Close() error {
	return nil
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, nil, log.New(&bytes.Buffer{}))
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Errorf("NewRunner should fill defaults: %+v", r)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
}

func TestAnalyze(t *testing.T) {
	r := NewRunner(nil, nil, log.New(&bytes.Buffer{}))
	res, err := r.Analyze(context.Background(), Options{Table: perm.MustNew(1, 3, 2, 0)})
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(res.Table, []int{1, 3, 2, 0}) {
		t.Errorf("Table = %v", res.Table)
	}
	if got := len(res.Cycles); got != 2 || !slices.Equal(res.Cycles[0], []int{0, 1, 3}) {
		t.Errorf("Cycles = %v", res.Cycles)
	}
	if res.Notation != "(0 1 3)" {
		t.Errorf("Notation = %q", res.Notation)
	}
	if !slices.Equal(res.CycleType, []int{1, 0, 1, 0}) {
		t.Errorf("CycleType = %v", res.CycleType)
	}
	if !slices.Equal(res.Partition, []int{3, 1}) || res.TypeNotation != "1^1 3^1" {
		t.Errorf("Partition = %v, TypeNotation = %q", res.Partition, res.TypeNotation)
	}
	if res.NumCycles != 2 || res.FixedPoints != 1 || res.Order != "3" || res.Sign != 1 {
		t.Errorf("invariants = %d cycles, %d fixed, order %s, sign %d",
			res.NumCycles, res.FixedPoints, res.Order, res.Sign)
	}
	if !slices.Equal(res.Inverse, []int{3, 0, 2, 1}) {
		t.Errorf("Inverse = %v", res.Inverse)
	}
	if res.Normalized || res.Artifacts != nil || res.CacheHit {
		t.Errorf("unexpected result flags: %+v", res)
	}
}

func TestAnalyzeNormalize(t *testing.T) {
	r := NewRunner(nil, nil, log.New(&bytes.Buffer{}))
	res, err := r.Analyze(context.Background(), Options{
		Table:     perm.MustNew(1, 3, 2, 0),
		Normalize: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Normalized || res.Notation != "(3 0 1)" {
		t.Errorf("Normalized = %v, Notation = %q", res.Normalized, res.Notation)
	}
	want := [][]int{{2}, {3, 0, 1}}
	if !slices.EqualFunc(res.Cycles, want, slices.Equal[[]int]) {
		t.Errorf("Cycles = %v, want %v", res.Cycles, want)
	}
}

func TestAnalyzeRenderDOT(t *testing.T) {
	r := NewRunner(nil, nil, log.New(&bytes.Buffer{}))
	res, err := r.Analyze(context.Background(), Options{
		Table:   perm.MustNew(1, 0, 2),
		Formats: []string{FormatDOT},
		Labels:  []string{"x", "y", "z"},
	})
	if err != nil {
		t.Fatal(err)
	}
	dot := string(res.Artifacts[FormatDOT])
	if !strings.HasPrefix(dot, "digraph Cycles {") || !strings.Contains(dot, `label="y"`) {
		t.Errorf("unexpected DOT:\n%s", dot)
	}
}

func TestAnalyzeRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping graphviz rendering in short mode")
	}
	r := NewRunner(nil, nil, log.New(&bytes.Buffer{}))
	res, err := r.Analyze(context.Background(), Options{
		Table:   perm.MustNew(1, 2, 0, 3),
		Formats: []string{FormatSVG},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(res.Artifacts[FormatSVG], []byte("<svg")) {
		t.Error("SVG artifact missing <svg> element")
	}
}

func TestAnalyzeCaching(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)
	opts := Options{Table: perm.MustNew(2, 0, 1, 4, 3), Formats: []string{FormatDOT}}

	first, err := r.Analyze(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Error("first analysis should miss the cache")
	}

	second, err := r.Analyze(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second analysis should hit the cache")
	}
	if second.Summary() != first.Summary() || !bytes.Equal(second.Artifacts[FormatDOT], first.Artifacts[FormatDOT]) {
		t.Errorf("cached result differs: %s vs %s", second.Summary(), first.Summary())
	}

	refreshed := opts
	refreshed.Refresh = true
	third, err := r.Analyze(ctx, refreshed)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit {
		t.Error("Refresh should bypass the cache")
	}

	normalized := opts
	normalized.Normalize = true
	fourth, err := r.Analyze(ctx, normalized)
	if err != nil {
		t.Fatal(err)
	}
	if fourth.CacheHit {
		t.Error("different options should not share a cache entry")
	}
}

func TestAnalyzeCacheFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(failingCache{}, nil, log.New(&buf))

	res, err := r.Analyze(context.Background(), Options{Table: perm.Identity(3)})
	if err != nil {
		t.Fatalf("cache failure should not fail the analysis: %v", err)
	}
	if res.NumCycles != 3 {
		t.Errorf("NumCycles = %d, want 3", res.NumCycles)
	}
	out := buf.String()
	if !strings.Contains(out, "cache read failed") || !strings.Contains(out, "cache write failed") {
		t.Errorf("expected cache warnings in log:\n%s", out)
	}
}

func TestAnalyzeInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, log.New(&bytes.Buffer{}))
	_, err := r.Analyze(context.Background(), Options{Table: perm.Identity(2), Formats: []string{"pdf"}})
	if !cerrors.Is(err, cerrors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestClasses(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(t)

	classes, hit, err := r.Classes(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("first listing should miss the cache")
	}
	if len(classes) != 5 {
		t.Fatalf("got %d classes, want 5", len(classes))
	}
	first := classes[0]
	if first.Notation != "4^1" || first.Size != "6" || first.Order != "4" || first.Sign != -1 {
		t.Errorf("first class = %+v", first)
	}

	cached, hit, err := r.Classes(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !hit || len(cached) != 5 || cached[1].Notation != "1^1 3^1" {
		t.Errorf("cached listing = %v, hit %v", cached, hit)
	}
}

func TestClassesOutOfRange(t *testing.T) {
	r := NewRunner(nil, nil, log.New(&bytes.Buffer{}))
	for _, n := range []int{-1, MaxClassesSize + 1} {
		if _, _, err := r.Classes(context.Background(), n); !cerrors.Is(err, cerrors.ErrCodeInvalidInput) {
			t.Errorf("Classes(%d) err = %v, want INVALID_INPUT", n, err)
		}
	}
}

func TestRender(t *testing.T) {
	d := perm.Decompose(perm.MustNew(1, 0))
	artifacts, err := Render(context.Background(), d, []string{FormatDOT}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(artifacts) != 1 || !strings.Contains(string(artifacts[FormatDOT]), "n0 -> n1;") {
		t.Errorf("artifacts = %v", artifacts)
	}

	if _, err := Render(context.Background(), d, []string{"bmp"}, nil); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestRunnerEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	ctx := context.Background()
	r := newTestRunner(t)
	opts := Options{Table: perm.MustNew(1, 0, 2), Formats: []string{FormatDOT}}
	for range 2 {
		if _, err := r.Analyze(ctx, opts); err != nil {
			t.Fatal(err)
		}
	}
	if _, _, err := r.Classes(ctx, 3); err != nil {
		t.Fatal(err)
	}

	if hooks.analyzed != 1 || hooks.rendered != 1 {
		t.Errorf("analyzed = %d, rendered = %d, want 1 each", hooks.analyzed, hooks.rendered)
	}
	if !slices.Equal(hooks.misses, []string{"analysis", "classes"}) {
		t.Errorf("misses = %v", hooks.misses)
	}
	if !slices.Equal(hooks.hits, []string{"analysis"}) {
		t.Errorf("hits = %v", hooks.hits)
	}
	if !slices.Equal(hooks.sets, []string{"analysis", "classes"}) {
		t.Errorf("sets = %v", hooks.sets)
	}
}
