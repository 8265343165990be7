package convert

import (
	"bytes"
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ryk2025/pdf-transformer/internal/config"
	"github.com/ryk2025/pdf-transformer/internal/layout"
	"github.com/ryk2025/pdf-transformer/internal/model"
	"github.com/ryk2025/pdf-transformer/internal/service/excel"
	"github.com/ryk2025/pdf-transformer/internal/service/pdf"
	"github.com/ryk2025/pdf-transformer/internal/store"
)

// Upload 一次上传
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Result 转换结果
type Result struct {
	PDF         []byte
	PDFFilename string
	SheetCount  int
	PageCount   int
}

// Service 转换编排：校验 → 解析 → 布局 → 渲染，并落历史记录
type Service struct {
	cfg   *config.AppConfig
	store *store.Store
}

// NewService 创建转换服务
func NewService(cfg *config.AppConfig, st *store.Store) *Service {
	return &Service{cfg: cfg, store: st}
}

// Convert 执行完整转换流水线。超时由配置控制，超时后整个调用作废，
// 部分产物直接丢弃（流水线不持有任何共享状态）。
func (s *Service) Convert(ctx context.Context, up Upload) (*Result, error) {
	start := time.Now()
	jobID := uuid.New().String()

	timeout := time.Duration(s.cfg.Convert.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := s.runPipeline(ctx, up)

	s.record(jobID, up, result, err, time.Since(start))

	if err != nil {
		log.Printf("conversion failed [%s]: %v", up.Filename, err)
		return nil, err
	}
	log.Printf("conversion ok [%s]: %d sheet(s), %d page(s), %d bytes, %s",
		up.Filename, result.SheetCount, result.PageCount, len(result.PDF), time.Since(start).Round(time.Millisecond))
	return result, nil
}

// runPipeline 在独立 goroutine 中跑流水线，caller 只在 ctx 和完成之间二选一
func (s *Service) runPipeline(ctx context.Context, up Upload) (*Result, error) {
	type outcome struct {
		result *Result
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		r, err := s.convertOnce(up)
		done <- outcome{result: r, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, model.NewConvError(model.ErrConversionFailed,
			"conversion timed out", ctx.Err())
	case o := <-done:
		return o.result, o.err
	}
}

// convertOnce 单次同步转换
func (s *Service) convertOnce(up Upload) (*Result, error) {
	if err := ValidateUpload(up.Filename, up.ContentType, up.Data, s.cfg.MaxFileSizeBytes()); err != nil {
		return nil, err
	}

	parser := excel.NewParser()
	if err := parser.LoadFile(bytes.NewReader(up.Data)); err != nil {
		return nil, err
	}
	defer parser.Close()

	workbook, err := parser.ParseWorkbook(up.Filename)
	if err != nil {
		return nil, err
	}

	meta := model.DocumentMeta{
		Title:     stem(up.Filename),
		Author:    "pdf-transformer",
		CreatedAt: time.Now(),
	}

	doc, err := layout.Assemble(workbook, meta, layout.A4, s.cfg.Convert.MaxPages)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := pdf.NewRenderer().Render(doc)
	if err != nil {
		return nil, err
	}

	return &Result{
		PDF:         pdfBytes,
		PDFFilename: stem(up.Filename) + ".pdf",
		SheetCount:  len(workbook.Sheets),
		PageCount:   doc.PageCount(),
	}, nil
}

// record 落一条历史记录；记录失败只打日志，不影响转换结果
func (s *Service) record(jobID string, up Upload, result *Result, convErr error, elapsed time.Duration) {
	if s.store == nil {
		return
	}

	rec := &model.ConversionRecord{
		ID:         jobID,
		Filename:   up.Filename,
		SizeBytes:  int64(len(up.Data)),
		Status:     model.StatusSuccess,
		DurationMS: elapsed.Milliseconds(),
		CreatedAt:  time.Now(),
	}
	if convErr != nil {
		rec.Status = model.StatusFailed
		rec.ErrorKind = errorKind(convErr)
	} else if result != nil {
		rec.PDFBytes = int64(len(result.PDF))
		rec.SheetCount = result.SheetCount
		rec.PageCount = result.PageCount
	}

	if err := s.store.RecordConversion(rec); err != nil {
		log.Printf("failed to record conversion %s: %v", jobID, err)
	}
}

// errorKind 错误分类文本；未分类错误一律视为 internal_error
func errorKind(err error) string {
	var ce *model.ConvError
	if errors.As(err, &ce) {
		return model.KindName(ce.Kind)
	}
	return model.KindName(model.ErrInternal)
}

// stem 去掉扩展名的文件名
func stem(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if name == "" {
		return "converted"
	}
	return name
}
