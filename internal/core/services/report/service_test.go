package report

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan-coder0/Monitor-Mate/internal/adapters/render"
	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
	"github.com/dan-coder0/Monitor-Mate/internal/core/ports"
	"github.com/dan-coder0/Monitor-Mate/internal/core/services/reporting"
)

type fakeInventory struct {
	apps []domain.AppRecord
	err  error
}

func (f *fakeInventory) ListApps(context.Context) ([]domain.AppRecord, error) {
	return f.apps, f.err
}

type fakeGate struct {
	granted bool
	err     error
}

func (f *fakeGate) Request(context.Context) (bool, error) {
	return f.granted, f.err
}

type fakeHistory struct {
	records []domain.ReportRecord
}

func (f *fakeHistory) RecordReport(_ context.Context, rec domain.ReportRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeHistory) LastReport(context.Context) (*domain.ReportRecord, error) {
	if len(f.records) == 0 {
		return nil, nil
	}
	last := f.records[len(f.records)-1]
	return &last, nil
}

func sampleApps() []domain.AppRecord {
	return []domain.AppRecord{
		{
			Name:        "Alpha",
			PackageName: "com.example.alpha",
			Permissions: []string{"CAMERA", "LOCATION"},
			RiskAnalysis: &domain.RiskAnalysis{
				RiskLevel: domain.RiskHigh,
				RiskScore: 88,
				RiskFactors: []domain.RiskFactor{
					{Permission: "CAMERA", Level: domain.FactorHigh},
				},
			},
			DataUsage: &domain.DataUsage{Total: 4096, Wifi: 3072, Mobile: 1024},
		},
		{Name: "Beta", PackageName: "com.example.beta", Permissions: []string{"INTERNET"}},
	}
}

func newTestService(t *testing.T, inv *fakeInventory, gate *fakeGate, hist *fakeHistory, inline bool) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	builder := reporting.NewReportBuilder(nil, 0)
	var history ports.ReportHistory
	if hist != nil {
		history = hist
	}
	svc := NewService(inv, gate, history, builder, render.NewHTMLSerializer(), dir, inline)
	// Keep secondary copies out of the developer's real Downloads.
	svc.downloadsDir = ""
	return svc, dir
}

func TestGenerateDeniedGate(t *testing.T) {
	svc, dir := newTestService(t, &fakeInventory{}, &fakeGate{granted: false}, nil, false)

	res, err := svc.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoragePermissionDenied))
	assert.Nil(t, res)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "denied generation must not write anything")
}

func TestGenerateGateError(t *testing.T) {
	svc, _ := newTestService(t, &fakeInventory{}, &fakeGate{err: errors.New("host unavailable")}, nil, false)

	_, err := svc.Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve storage permission")
}

func TestGenerateInventoryError(t *testing.T) {
	inv := &fakeInventory{err: errors.New("snapshot unreadable")}
	svc, _ := newTestService(t, inv, &fakeGate{granted: true}, nil, false)

	_, err := svc.Generate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load app snapshot")
}

func TestGenerateSuccess(t *testing.T) {
	hist := &fakeHistory{}
	inv := &fakeInventory{apps: sampleApps()}
	svc, dir := newTestService(t, inv, &fakeGate{granted: true}, hist, false)

	res, err := svc.Generate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Positive(t, res.Pages)
	assert.Empty(t, res.Encoded)
	assert.Equal(t, dir, filepath.Dir(res.Path))

	name := filepath.Base(res.Path)
	assert.Regexp(t, `^MonitorMate_Security_Report_\d{4}-\d{2}-\d{2}\.html$`, name)

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	require.Len(t, hist.records, 1)
	rec := hist.records[0]
	assert.Equal(t, res.Path, rec.Path)
	assert.Equal(t, res.Pages, rec.Pages)
	assert.Equal(t, 2, rec.TotalApps)
	assert.Equal(t, 1, rec.HighRisk)

	last, err := svc.LastReport(context.Background())
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, rec.ID, last.ID)
}

func TestGenerateInlineCopy(t *testing.T) {
	inv := &fakeInventory{apps: sampleApps()}
	svc, _ := newTestService(t, inv, &fakeGate{granted: true}, nil, true)

	res, err := svc.Generate(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, res.Encoded)

	decoded, err := base64.StdEncoding.DecodeString(res.Encoded)
	require.NoError(t, err)

	onDisk, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, onDisk, decoded)
}

func TestGenerateDownloadsCopy(t *testing.T) {
	inv := &fakeInventory{apps: sampleApps()}
	svc, _ := newTestService(t, inv, &fakeGate{granted: true}, nil, false)

	downloads := filepath.Join(t.TempDir(), "Downloads")
	require.NoError(t, os.MkdirAll(downloads, 0o755))
	svc.downloadsDir = downloads

	res, err := svc.Generate(context.Background())
	require.NoError(t, err)

	copyPath := filepath.Join(downloads, filepath.Base(res.Path))
	copied, err := os.ReadFile(copyPath)
	require.NoError(t, err)

	primary, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, primary, copied)
}

func TestGenerateSkipsCopyWhenSavingIntoDownloads(t *testing.T) {
	downloads := filepath.Join(t.TempDir(), "Downloads")
	nested := filepath.Join(downloads, "reports")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	for _, outputDir := range []string{downloads, nested} {
		inv := &fakeInventory{apps: sampleApps()}
		builder := reporting.NewReportBuilder(nil, 0)
		svc := NewService(inv, &fakeGate{granted: true}, nil, builder,
			render.NewHTMLSerializer(), outputDir, false)
		svc.downloadsDir = downloads

		res, err := svc.Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, outputDir, filepath.Dir(res.Path))

		// Only the primary report may exist, no duplicate at the
		// Downloads root.
		if outputDir != downloads {
			_, err := os.Stat(filepath.Join(downloads, filepath.Base(res.Path)))
			assert.True(t, os.IsNotExist(err))
		}

		require.NoError(t, os.Remove(res.Path))
	}
}

func TestGenerateNoDownloadsDirConfigured(t *testing.T) {
	inv := &fakeInventory{apps: sampleApps()}
	svc, dir := newTestService(t, inv, &fakeGate{granted: true}, nil, false)

	res, err := svc.Generate(context.Background())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(res.Path), entries[0].Name())
}

func TestWriteAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	require.NoError(t, writeAtomic(path, []byte("payload")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.bin", entries[0].Name())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestWriteAtomicOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	require.NoError(t, writeAtomic(path, []byte("first")))
	require.NoError(t, writeAtomic(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
