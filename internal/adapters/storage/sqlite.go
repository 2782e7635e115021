package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

// SQLiteStore implements ports.BlobStore and ports.ReportHistory using
// GORM and SQLite.
type SQLiteStore struct {
	db *gorm.DB
}

// BlobModel is the GORM model for opaque key-value payloads. The
// payload is stored as raw JSON text and never interpreted here.
type BlobModel struct {
	Key       string `gorm:"primaryKey"`
	Payload   string
	UpdatedAt time.Time
}

// ReportRecordModel is the GORM model for generated-report history.
type ReportRecordModel struct {
	ID          string    `gorm:"primaryKey"`
	GeneratedAt time.Time `gorm:"index"`
	Path        string
	Pages       int
	TotalApps   int
	HighRisk    int
}

// NewSQLiteStore initializes the database and migrates schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&BlobModel{}, &ReportRecordModel{}); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// GetBlob returns the stored payload for key. A missing row or an
// unparsable payload degrades to an empty map; this method never
// surfaces stored-state irregularities to the caller.
func (s *SQLiteStore) GetBlob(ctx context.Context, key string) (map[string]any, error) {
	var row BlobModel
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			slog.Debug("blob read failed", "key", key, "error", err)
		}
		return map[string]any{}, nil
	}

	blob := map[string]any{}
	if err := json.Unmarshal([]byte(row.Payload), &blob); err != nil {
		slog.Debug("blob payload not parseable, using empty object", "key", key, "error", err)
		return map[string]any{}, nil
	}
	return blob, nil
}

// PutBlob upserts the payload for key.
func (s *SQLiteStore) PutBlob(ctx context.Context, key string, blob map[string]any) error {
	payload, err := json.Marshal(blob)
	if err != nil {
		return err
	}
	row := BlobModel{Key: key, Payload: string(payload), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

// RecordReport appends one generated-report row to the history.
func (s *SQLiteStore) RecordReport(ctx context.Context, rec domain.ReportRecord) error {
	row := ReportRecordModel{
		ID:          rec.ID,
		GeneratedAt: rec.GeneratedAt,
		Path:        rec.Path,
		Pages:       rec.Pages,
		TotalApps:   rec.TotalApps,
		HighRisk:    rec.HighRisk,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

// LastReport returns the most recently generated report, or nil when
// the history is empty.
func (s *SQLiteStore) LastReport(ctx context.Context) (*domain.ReportRecord, error) {
	var row ReportRecordModel
	err := s.db.WithContext(ctx).Order("generated_at DESC").First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &domain.ReportRecord{
		ID:          row.ID,
		GeneratedAt: row.GeneratedAt,
		Path:        row.Path,
		Pages:       row.Pages,
		TotalApps:   row.TotalApps,
		HighRisk:    row.HighRisk,
	}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
