package store

import (
	"fmt"
	"time"

	"github.com/ryk2025/pdf-transformer/internal/model"
)

// RecordConversion 写入一条转换记录
func (s *Store) RecordConversion(r *model.ConversionRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO conversions (
			id, filename, size_bytes, pdf_bytes,
			sheet_count, page_count, status, error_kind,
			duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.ID, r.Filename, r.SizeBytes, r.PDFBytes,
		r.SheetCount, r.PageCount, r.Status, r.ErrorKind,
		r.DurationMS, r.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert conversion record: %w", err)
	}
	return nil
}

// ListRecent 按时间倒序返回最近的转换记录
func (s *Store) ListRecent(limit int) ([]*model.ConversionRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, filename, size_bytes, pdf_bytes,
		       sheet_count, page_count, status, error_kind,
		       duration_ms, created_at
		FROM conversions
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversions: %w", err)
	}
	defer rows.Close()

	var records []*model.ConversionRecord
	for rows.Next() {
		var r model.ConversionRecord
		var createdAt string
		if err := rows.Scan(
			&r.ID, &r.Filename, &r.SizeBytes, &r.PDFBytes,
			&r.SheetCount, &r.PageCount, &r.Status, &r.ErrorKind,
			&r.DurationMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan conversion record: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
			r.CreatedAt = t
		}
		records = append(records, &r)
	}
	return records, rows.Err()
}

// Stats 汇总转换统计
func (s *Store) Stats() (model.ConversionStats, error) {
	var stats model.ConversionStats
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(page_count), 0)
		FROM conversions
	`, model.StatusSuccess, model.StatusFailed).Scan(
		&stats.Total, &stats.Succeeded, &stats.Failed, &stats.TotalPages,
	)
	if err != nil {
		return stats, fmt.Errorf("failed to query stats: %w", err)
	}
	return stats, nil
}
