package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sumitsaluja27/n8n-Workflow/pkg/models"
)

// MockRecordStore satisfies repository.RecordStore
type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) Dir() string {
	return m.Called().String(0)
}

func (m *MockRecordStore) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRecordStore) Load(ctx context.Context, name string) (*models.Record, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Record), args.Error(1)
}

func (m *MockRecordStore) Save(ctx context.Context, name string, record *models.Record) error {
	args := m.Called(ctx, name, record)
	return args.Error(0)
}

func writeWorkflow(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func readWorkflow(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func mustDecode(t *testing.T, content string) *models.Record {
	t.Helper()
	rec, err := models.DecodeRecord([]byte(content))
	require.NoError(t, err)
	return rec
}
