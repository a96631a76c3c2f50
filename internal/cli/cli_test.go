package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/cyclekit/pkg/errors"
	pio "github.com/matzehuels/cyclekit/pkg/io"
	"github.com/matzehuels/cyclekit/pkg/pipeline"
)

// isolate points the config and cache directories at fresh temporary
// directories and returns the cache directory.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	return filepath.Join(cacheHome, appName)
}

// runCLI executes the root command with args and returns everything the
// command printed.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldStatus := out, status
	out, status = &buf, io.Discard
	t.Cleanup(func() { out, status = oldOut, oldStatus })

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestDecomposeCommand(t *testing.T) {
	isolate(t)

	got, err := runCLI(t, "", "decompose", "1 3 2 0")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"(0 1 3)(2)", "1^1 3^1", "n=4", "2 cycles", "1 fixed"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestDecomposeCommandJSON(t *testing.T) {
	isolate(t)

	got, err := runCLI(t, "", "decompose", "--json", "--normalize", "-n", "6", "(4 0)(5 3 2)")
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		N      int     `json:"n"`
		Cycles [][]int `json:"cycles"`
	}
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	want := [][]int{{1}, {4, 0}, {5, 3, 2}}
	if doc.N != 6 || !slices.EqualFunc(doc.Cycles, want, slices.Equal[[]int]) {
		t.Errorf("document = %+v, want cycles %v", doc, want)
	}
}

func TestDecomposeCommandStdin(t *testing.T) {
	isolate(t)

	got, err := runCLI(t, `{"table": [1, 0, 2]}`, "decompose", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "(0 1)(2)") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestComposeCommand(t *testing.T) {
	isolate(t)

	got, err := runCLI(t, "", "compose", "1 2 0", "1 0 2")
	if err != nil {
		t.Fatal(err)
	}
	if first := strings.SplitN(got, "\n", 2)[0]; first != "[2 1 0]" {
		t.Errorf("first line = %q, want %q", first, "[2 1 0]")
	}

	_, err = runCLI(t, "", "compose", "1 0", "0 1 2")
	if !errors.Is(err, errors.ErrCodeInvalidLength) {
		t.Errorf("size mismatch err = %v, want INVALID_LENGTH", err)
	}
}

func TestInvertCommandJSON(t *testing.T) {
	isolate(t)

	got, err := runCLI(t, "", "invert", "--json", "1 3 2 0")
	if err != nil {
		t.Fatal(err)
	}
	table, err := pio.ReadTable(strings.NewReader(got))
	if err != nil {
		t.Fatalf("invalid table document %q: %v", got, err)
	}
	if !slices.Equal(table.Slice(), []int{3, 0, 2, 1}) {
		t.Errorf("inverse = %v", table)
	}
}

func TestInvertCommandOutputFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "inverse.json")

	got, err := runCLI(t, "", "invert", "-o", path, "(0 1 2)")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, path) {
		t.Errorf("output should name the written file: %q", got)
	}
	table, err := pio.Import(path)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(table.Slice(), []int{2, 0, 1}) {
		t.Errorf("saved inverse = %v, want [2 0 1]", table)
	}
}

func TestRandomCommand(t *testing.T) {
	isolate(t)

	first, err := runCLI(t, "", "random", "6", "--count", "3", "--seed", "7")
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(first), "\n"); len(lines) != 3 {
		t.Errorf("got %d lines, want 3:\n%s", len(lines), first)
	}
	second, err := runCLI(t, "", "random", "6", "--count", "3", "--seed", "7")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same seed gave different output:\n%s\n%s", first, second)
	}

	batch, err := runCLI(t, "", "random", "4", "--count", "2", "--seed", "1", "--batch")
	if err != nil {
		t.Fatal(err)
	}
	entries, err := pio.ReadBatch(strings.NewReader(batch))
	if err != nil {
		t.Fatalf("batch output does not parse: %v\n%s", err, batch)
	}
	if len(entries) != 2 || entries[0].Name != "random-1" || entries[1].Table.Len() != 4 {
		t.Errorf("entries = %+v", entries)
	}

	if _, err := runCLI(t, "", "random", "4", "--count", "0"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("--count 0 err = %v, want INVALID_INPUT", err)
	}
}

func TestAnalyzeCommand(t *testing.T) {
	isolate(t)

	got, err := runCLI(t, "", "analyze", "1 3 2 0")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"(0 1 3)", "1^1 3^1", "even (+1)", "[3 0 2 1]", "fresh"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	got, err = runCLI(t, "", "analyze", "1 3 2 0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "cached") {
		t.Errorf("second analysis should be served from the cache:\n%s", got)
	}

	got, err = runCLI(t, "", "analyze", "--no-cache", "1 3 2 0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "fresh") {
		t.Errorf("--no-cache should recompute:\n%s", got)
	}
}

func TestAnalyzeCommandUnusableCacheDir(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CACHE_HOME", file)

	for range 2 {
		got, err := runCLI(t, "", "analyze", "1 3 2 0")
		if err != nil {
			t.Fatalf("analysis should run without a cache: %v", err)
		}
		if !strings.Contains(got, "fresh") {
			t.Errorf("uncached analysis should be fresh:\n%s", got)
		}
	}
}

func TestAnalyzeCommandJSON(t *testing.T) {
	isolate(t)

	got, err := runCLI(t, "", "analyze", "--json", "--normalize", "(0 1)(2 3 4)")
	if err != nil {
		t.Fatal(err)
	}
	var res pipeline.Result
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, got)
	}
	if res.Order != "6" || res.Sign != -1 || !res.Normalized || res.TypeNotation != "2^1 3^1" {
		t.Errorf("result = %+v", res)
	}
}

func TestAnalyzeCommandBatch(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "perms.toml")
	content := `
[[permutation]]
name = "swap"
table = [1, 0, 2]

[[permutation]]
name = "rotate"
n = 4
cycles = [[0, 1, 2, 3]]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := runCLI(t, "", "analyze", "--batch", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"swap", "n=3 type=1^1 2^1 order=2 sign=-1", "rotate", "n=4 type=4^1 order=4 sign=-1"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if _, err := runCLI(t, "", "analyze", "--batch", path, "1 0"); err == nil {
		t.Error("--batch with an argument should fail")
	}
}

func TestClassesCommand(t *testing.T) {
	isolate(t)

	got, err := runCLI(t, "", "classes", "4")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"S_4", "5 classes", "4^1", "1^2 2^1", "2+1+1"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	got, err = runCLI(t, "", "classes", "--json", "3")
	if err != nil {
		t.Fatal(err)
	}
	var classes []pipeline.Class
	if err := json.Unmarshal([]byte(got), &classes); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, got)
	}
	if len(classes) != 3 || classes[0].Notation != "3^1" || classes[0].Size != "2" {
		t.Errorf("classes = %+v", classes)
	}

	if _, err := runCLI(t, "", "classes", "65"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("classes 65 err = %v, want INVALID_INPUT", err)
	}
}

func TestRenderCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "cycles.dot")

	got, err := runCLI(t, "", "render", "-f", "dot", "-o", path, "--labels", "a,b,c", "1 0 2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, path) {
		t.Errorf("output should name the written file:\n%s", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph Cycles {") || !strings.Contains(string(data), `label="b"`) {
		t.Errorf("unexpected DOT:\n%s", data)
	}

	if _, err := runCLI(t, "", "render", "-f", "dot", "-o", path, "--labels", "a", "1 0 2"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("too few labels err = %v, want INVALID_INPUT", err)
	}
	if _, err := runCLI(t, "", "render", "-f", "gif", "1 0"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad format err = %v, want INVALID_INPUT", err)
	}
}

func TestRenderCommandConfigLabels(t *testing.T) {
	isolate(t)
	cfg := writeConfig(t, "[render]\nlabels = [\"x\", \"y\"]\n")
	path := filepath.Join(t.TempDir(), "c.dot")

	if _, err := runCLI(t, "", "--config", cfg, "render", "-f", "dot", "-o", path, "1 0"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `label="y"`) {
		t.Errorf("config labels not applied:\n%s", data)
	}
}

func TestCacheCommands(t *testing.T) {
	dir := isolate(t)

	got, err := runCLI(t, "", "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(got) != dir {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(got), dir)
	}

	got, err = runCLI(t, "", "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Cache is empty") {
		t.Errorf("unexpected output:\n%s", got)
	}

	if _, err := runCLI(t, "", "analyze", "1 0"); err != nil {
		t.Fatal(err)
	}
	got, err = runCLI(t, "", "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Cleared 1 cached entries") {
		t.Errorf("unexpected output:\n%s", got)
	}

	got, err = runCLI(t, "", "--cache", "none", "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "nothing to clear") {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestInvalidConfigFails(t *testing.T) {
	isolate(t)

	if _, err := runCLI(t, "", "--cache", "memcached", "decompose", "0"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad --cache err = %v, want INVALID_CONFIG", err)
	}

	cfg := writeConfig(t, "colour = \"blue\"\n")
	if _, err := runCLI(t, "", "--config", cfg, "decompose", "0"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("unknown key err = %v, want INVALID_CONFIG", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	isolate(t)

	got, err := runCLI(t, "", "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, appName) {
		t.Error("bash completion should mention the program name")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"decompose", "compose", "invert", "analyze", "classes", "random", "render", "serve", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.Version == "" {
		t.Error("root command should carry a version")
	}
}
