package reportstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"xwc/internal/reportstore"
)

func openStore(t *testing.T) (*reportstore.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "reports.db")
	store, err := reportstore.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestSaveAndReadRun(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	saved, err := store.SaveRun(ctx, reportstore.Run{
		Mode:      "numeric",
		Reverse:   true,
		Locale:    "fr-FR",
		Documents: []string{"A", "B"},
		Words: []reportstore.Word{
			{Word: "cat", Document: 1, Count: 2},
			{Word: "bird", Document: 2, Count: 1},
		},
	})
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected generated run id")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatal("expected creation time")
	}

	runs, err := store.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != saved.ID || got.Mode != "numeric" || !got.Reverse || got.Locale != "fr-FR" {
		t.Fatalf("unexpected run: %+v", got)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Fatalf("creation time mismatch: %v vs %v", got.CreatedAt, saved.CreatedAt)
	}
	if diff := cmp.Diff([]string{"A", "B"}, got.Documents); diff != "" {
		t.Fatalf("documents mismatch (-want +got):\n%s", diff)
	}

	words, err := store.Words(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	want := []reportstore.Word{
		{Word: "cat", Document: 1, Count: 2},
		{Word: "bird", Document: 2, Count: 1},
	}
	if diff := cmp.Diff(want, words); diff != "" {
		t.Fatalf("words mismatch (-want +got):\n%s", diff)
	}
}

func TestRunsNewestFirst(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 100000000, time.UTC)

	for i, id := range []string{"old", "newer", "newest"} {
		_, err := store.SaveRun(ctx, reportstore.Run{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * 20 * time.Millisecond),
			Mode:      "none",
			Locale:    "fr-FR",
			Documents: []string{"doc"},
		})
		if err != nil {
			t.Fatalf("SaveRun(%s): %v", id, err)
		}
	}

	runs, err := store.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	ids := make([]string, 0, len(runs))
	for _, run := range runs {
		ids = append(ids, run.ID)
	}
	if diff := cmp.Diff([]string{"newest", "newer", "old"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveRunDuplicateIDFails(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	run := reportstore.Run{ID: "dup", Mode: "none", Locale: "fr-FR"}
	if _, err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if _, err := store.SaveRun(ctx, run); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	store, path := openStore(t)
	ctx := context.Background()
	if _, err := store.SaveRun(ctx, reportstore.Run{ID: "keep", Mode: "none", Locale: "fr-FR"}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := reportstore.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if reopened.Path() != path {
		t.Fatalf("unexpected path %q", reopened.Path())
	}
	runs, err := reopened.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "keep" {
		t.Fatalf("unexpected runs: %+v", runs)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := reportstore.Open(context.Background(), " "); err == nil {
		t.Fatal("expected error")
	}
}

func TestSaveRunHonoursCancelledContext(t *testing.T) {
	store, _ := openStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.SaveRun(ctx, reportstore.Run{Mode: "none", Locale: "fr-FR"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
