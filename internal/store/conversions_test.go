package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ryk2025/pdf-transformer/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndListConversions(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	records := []*model.ConversionRecord{
		{
			ID: "job-1", Filename: "a.xlsx", SizeBytes: 1024, PDFBytes: 2048,
			SheetCount: 2, PageCount: 3, Status: model.StatusSuccess,
			DurationMS: 120, CreatedAt: base,
		},
		{
			ID: "job-2", Filename: "b.xlsx", SizeBytes: 512,
			Status: model.StatusFailed, ErrorKind: "corrupted_file",
			DurationMS: 15, CreatedAt: base.Add(time.Minute),
		},
	}
	for _, r := range records {
		if err := s.RecordConversion(r); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	list, err := s.ListRecent(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
	// 时间倒序
	if list[0].ID != "job-2" || list[1].ID != "job-1" {
		t.Fatalf("unexpected order: %s, %s", list[0].ID, list[1].ID)
	}
	if list[1].PageCount != 3 || list[1].Status != model.StatusSuccess {
		t.Fatalf("record fields lost: %+v", list[1])
	}
	if list[0].ErrorKind != "corrupted_file" {
		t.Fatalf("error kind lost: %+v", list[0])
	}
}

func TestListRecentLimit(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		if err := s.RecordConversion(&model.ConversionRecord{
			ID:        string(rune('a' + i)),
			Filename:  "f.xlsx",
			Status:    model.StatusSuccess,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	list, err := s.ListRecent(3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 records, got %d", len(list))
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("stats on empty store: %v", err)
	}
	if stats.Total != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}

	now := time.Now().UTC()
	if err := s.RecordConversion(&model.ConversionRecord{
		ID: "ok", Filename: "a.xlsx", Status: model.StatusSuccess, PageCount: 4, CreatedAt: now,
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.RecordConversion(&model.ConversionRecord{
		ID: "bad", Filename: "b.xlsx", Status: model.StatusFailed, CreatedAt: now,
	}); err != nil {
		t.Fatalf("record: %v", err)
	}

	stats, err = s.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 2 || stats.Succeeded != 1 || stats.Failed != 1 || stats.TotalPages != 4 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
