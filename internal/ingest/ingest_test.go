package ingest

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sjlee-dev/feedlens/internal/database"
	"github.com/sjlee-dev/feedlens/internal/lexicon"
	"github.com/sjlee-dev/feedlens/internal/model"
	"github.com/sjlee-dev/feedlens/internal/sentiment"
)

func newTestImporter(t *testing.T) (*Importer, *database.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	classifier := sentiment.NewLexiconClassifier(lexicon.New(nil, nil))
	return NewImporter(db, classifier), db
}

func TestImportCSV(t *testing.T) {
	imp, db := newTestImporter(t)

	csvData := strings.Join([]string{
		"text,date,source",
		"Great service and friendly staff,2025-03-01,web",
		"Terrible wait time,2025-03-02,email",
		"It was fine,2025-03-03,",
	}, "\n")

	result, err := imp.importCSV(strings.NewReader(csvData), time.Now())
	if err != nil {
		t.Fatalf("importCSV: %v", err)
	}
	if result.TotalRows != 3 || result.Imported != 3 || result.Skipped != 0 {
		t.Errorf("got total=%d imported=%d skipped=%d, want 3/3/0",
			result.TotalRows, result.Imported, result.Skipped)
	}
	if result.Sentiments[model.SentimentPositive] != 1 {
		t.Errorf("positive count = %d, want 1", result.Sentiments[model.SentimentPositive])
	}
	if result.Sentiments[model.SentimentNegative] != 1 {
		t.Errorf("negative count = %d, want 1", result.Sentiments[model.SentimentNegative])
	}

	items, err := db.GetAllFeedback()
	if err != nil {
		t.Fatalf("GetAllFeedback: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d stored items, want 3", len(items))
	}
	for _, item := range items {
		if item.Sentiment == model.SentimentUnset {
			t.Errorf("item %s stored without a sentiment", item.ID)
		}
	}
	if items[0].Source == nil || *items[0].Source != "web" {
		t.Errorf("first item source = %v, want web", items[0].Source)
	}
	if items[2].Source != nil {
		t.Errorf("third item source = %v, want nil", items[2].Source)
	}
	if got := items[0].SubmittedAt.Format("2006-01-02"); got != "2025-03-01" {
		t.Errorf("first item date = %s, want 2025-03-01", got)
	}
}

func TestImportSkipsEmptyText(t *testing.T) {
	imp, _ := newTestImporter(t)

	csvData := "text,date\nGood product,2025-01-10\n   ,2025-01-11\n,\n"
	result, err := imp.importCSV(strings.NewReader(csvData), time.Now())
	if err != nil {
		t.Fatalf("importCSV: %v", err)
	}
	if result.Imported != 1 || result.Skipped != 2 {
		t.Errorf("got imported=%d skipped=%d, want 1/2", result.Imported, result.Skipped)
	}
}

func TestImportHeaderAliases(t *testing.T) {
	imp, db := newTestImporter(t)

	csvData := "Comment,Timestamp,Channel\nLoved the new release,2025-02-14,app\n"
	result, err := imp.importCSV(strings.NewReader(csvData), time.Now())
	if err != nil {
		t.Fatalf("importCSV: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("imported = %d, want 1", result.Imported)
	}

	items, err := db.GetAllFeedback()
	if err != nil {
		t.Fatalf("GetAllFeedback: %v", err)
	}
	if items[0].Source == nil || *items[0].Source != "app" {
		t.Errorf("source = %v, want app", items[0].Source)
	}
}

func TestImportMissingTextColumn(t *testing.T) {
	imp, _ := newTestImporter(t)

	_, err := imp.importCSV(strings.NewReader("date,source\n2025-01-01,web\n"), time.Now())
	if err == nil {
		t.Fatal("expected error for header without a text column")
	}
}

func TestImportBadDateFallsBackToNow(t *testing.T) {
	imp, db := newTestImporter(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := imp.importCSV(strings.NewReader("text,date\nDecent enough,not-a-date\n"), now)
	if err != nil {
		t.Fatalf("importCSV: %v", err)
	}

	items, err := db.GetAllFeedback()
	if err != nil {
		t.Fatalf("GetAllFeedback: %v", err)
	}
	if got := items[0].SubmittedAt.Format("2006-01-02"); got != "2025-06-01" {
		t.Errorf("fallback date = %s, want 2025-06-01", got)
	}
}

func TestImportEmptyFile(t *testing.T) {
	imp, _ := newTestImporter(t)

	if _, err := imp.importCSV(strings.NewReader(""), time.Now()); err == nil {
		t.Fatal("expected error for empty file")
	}
}
