package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"cinematic-vault/internal/analytics"
	"cinematic-vault/internal/config"
	"cinematic-vault/internal/metrics"
	"cinematic-vault/internal/models"
	"cinematic-vault/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var ErrObjectStoreDisabled = errors.New("object storage is not configured")

var exportHeaders = []string{
	"ID", "Title", "Director", "Release Year", "Language", "Rating", "Genre",
	"Runtime", "Box Office", "Awards", "Cinematographer", "Soundtrack Composer",
	"Critical Reception", "User Reviews", "Cultural Impact", "Trivia", "Added Date",
	"Cinematic Quotient",
}

type ExportService interface {
	BuildWorkbook(ctx context.Context) (*excelize.File, int, error)
	Publish(ctx context.Context) (*models.ExportResult, error)
}

type exportService struct {
	repo      repository.MovieRepository
	store     ObjectStore
	sheetName string
	logger    *logrus.Logger
	year      func() int
}

// NewExportService builds the exporter. store may be nil, in which case
// Publish returns ErrObjectStoreDisabled.
func NewExportService(repo repository.MovieRepository, store ObjectStore, cfg config.ExportConfig, logger *logrus.Logger) ExportService {
	sheet := cfg.SheetName
	if sheet == "" {
		sheet = "Vault"
	}
	return &exportService{
		repo:      repo,
		store:     store,
		sheetName: sheet,
		logger:    logger,
		year:      currentYear,
	}
}

func currentYear() int {
	return time.Now().Year()
}

func (s *exportService) BuildWorkbook(ctx context.Context) (*excelize.File, int, error) {
	movies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load movies: %w", err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", s.sheetName); err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(s.sheetName, "A1", &header); err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to write header: %w", err)
	}

	year := s.year()
	for i, m := range movies {
		row := []interface{}{
			m.ID, m.Title, m.Director, m.ReleaseYear, m.Language, m.Rating, m.Genre,
			m.Runtime, m.BoxOffice, m.Awards.String(), m.Cinematographer, m.SoundtrackComposer,
			m.CriticalReception, m.UserReviews, m.CulturalImpact, m.Trivia,
			m.AddedDate.Format("2006-01-02 15:04:05"),
			analytics.CinematicQuotient(m, year),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, 0, err
		}
		if err := f.SetSheetRow(s.sheetName, cell, &row); err != nil {
			f.Close()
			return nil, 0, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, len(movies), nil
}

func (s *exportService) Publish(ctx context.Context) (*models.ExportResult, error) {
	if s.store == nil {
		return nil, ErrObjectStoreDisabled
	}

	result, err := s.publish(ctx)
	metrics.RecordExport("object_store", err)
	return result, err
}

func (s *exportService) publish(ctx context.Context) (*models.ExportResult, error) {
	f, rows, err := s.BuildWorkbook(ctx)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	objectName := fmt.Sprintf("vault_%s.xlsx", uuid.New().String()[:8])
	if err := s.store.Upload(ctx, objectName, bytes.NewReader(buf.Bytes()), int64(buf.Len()), xlsxContentType); err != nil {
		return nil, err
	}

	url, err := s.store.PresignedGetURL(ctx, objectName)
	if err != nil {
		if delErr := s.store.DeleteFile(ctx, objectName); delErr != nil {
			s.logger.WithError(delErr).WithField("objectName", objectName).Warn("Failed to remove unreachable export")
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"objectName": objectName,
		"rows":       rows,
	}).Info("Vault export published")

	return &models.ExportResult{
		ObjectName:  objectName,
		DownloadURL: url,
		Rows:        rows,
	}, nil
}
