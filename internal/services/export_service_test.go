package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"cinematic-vault/internal/config"
	"cinematic-vault/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeStore struct {
	objects    map[string][]byte
	uploadErr  error
	presignErr error
}

func (f *fakeStore) Upload(_ context.Context, objectName string, r io.Reader, size int64, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if int64(len(data)) != size {
		return errors.New("size mismatch")
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[objectName] = data
	return nil
}

func (f *fakeStore) PresignedGetURL(_ context.Context, objectName string) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "http://minio.local/vault/" + objectName + "?sig=1", nil
}

func (f *fakeStore) DeleteFile(_ context.Context, objectName string) error {
	delete(f.objects, objectName)
	return nil
}

func TestBuildWorkbook(t *testing.T) {
	svc, repo := setupMovieService(t)
	ctx := context.Background()

	movie := newMovie("Memento", 2000, "English", 8.0)
	movie.Awards = models.Awards{"Oscar", "Globe"}
	movie.CulturalImpact = "groundbreaking and iconic"
	require.NoError(t, svc.CreateMovie(ctx, movie))

	exporter := NewExportService(repo, nil, config.ExportConfig{SheetName: "Vault"}, testLogger()).(*exportService)
	exporter.year = func() int { return 2024 }

	f, rows, err := exporter.BuildWorkbook(ctx)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, 1, rows)

	header, err := f.GetCellValue("Vault", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Title", header)

	title, err := f.GetCellValue("Vault", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Memento", title)

	awards, err := f.GetCellValue("Vault", "J2")
	require.NoError(t, err)
	assert.Equal(t, "Oscar,Globe", awards)

	quotient, err := f.GetCellValue("Vault", "R2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(quotient, "89.2"), quotient)
}

func TestPublishWithoutStore(t *testing.T) {
	_, repo := setupMovieService(t)

	exporter := NewExportService(repo, nil, config.ExportConfig{}, testLogger())
	_, err := exporter.Publish(context.Background())
	assert.ErrorIs(t, err, ErrObjectStoreDisabled)
}

func TestPublishUploadsWorkbook(t *testing.T) {
	svc, repo := setupMovieService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateMovie(ctx, newMovie("Heat", 1995, "English", 8.3)))

	store := &fakeStore{}
	exporter := NewExportService(repo, store, config.ExportConfig{}, testLogger())

	result, err := exporter.Publish(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Rows)
	assert.True(t, strings.HasPrefix(result.ObjectName, "vault_"))
	assert.Contains(t, result.DownloadURL, result.ObjectName)

	data, ok := store.objects[result.ObjectName]
	require.True(t, ok)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Vault", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Heat", title)
}

func TestPublishPropagatesUploadError(t *testing.T) {
	_, repo := setupMovieService(t)

	store := &fakeStore{uploadErr: errors.New("bucket gone")}
	exporter := NewExportService(repo, store, config.ExportConfig{}, testLogger())

	_, err := exporter.Publish(context.Background())
	assert.ErrorContains(t, err, "bucket gone")
}

func TestPublishRemovesObjectWhenPresignFails(t *testing.T) {
	_, repo := setupMovieService(t)

	store := &fakeStore{presignErr: errors.New("signer offline")}
	exporter := NewExportService(repo, store, config.ExportConfig{}, testLogger())

	_, err := exporter.Publish(context.Background())
	assert.ErrorContains(t, err, "signer offline")
	assert.Empty(t, store.objects)
}
