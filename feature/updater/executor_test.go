package updater

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog-sync/core/source/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestExecutor(client *mocks.Client) *Executor {
	return NewExecutor(client, zap.NewNop(), Config{MaxConcurrent: 3})
}

func TestExecute_OneResultPerRequest(t *testing.T) {
	client := &mocks.Client{}
	client.On("UpdateProduct", mock.Anything, 3, mock.Anything).
		Return(nil, errors.New("update failed with status 500"))
	client.On("UpdateProduct", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]any{"id": float64(1)}, nil)

	requests := make([]UpdateRequest, 0, 5)
	for id := 1; id <= 5; id++ {
		req, err := NewUpdateRequest(id, "Title", 10.0, "")
		require.NoError(t, err)
		requests = append(requests, req)
	}

	results := newTestExecutor(client).Execute(context.Background(), requests)
	require.Len(t, results, 5)

	successful := 0
	for _, r := range results {
		if r.Success {
			successful++
			assert.NotNil(t, r.Data)
		} else {
			assert.Contains(t, r.Error, "500")
		}
		assert.False(t, r.Timestamp.IsZero())
	}
	assert.Equal(t, 4, successful)

	stats := ComputeStatistics(results)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 4, stats.Successful)
	assert.Equal(t, 1, stats.Failed)
	assert.InDelta(t, 80.0, stats.SuccessRate, 0.001)
}

func TestExecute_InvalidRequestSkipsNetwork(t *testing.T) {
	client := &mocks.Client{}

	results := newTestExecutor(client).Execute(context.Background(), []UpdateRequest{
		{ProductID: -1, Title: "Title", Price: 10},
	})
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Error, "product id must be positive")
	client.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_PanicIsContained(t *testing.T) {
	client := &mocks.Client{}
	client.On("UpdateProduct", mock.Anything, 2, mock.Anything).
		Run(func(mock.Arguments) { panic("connection pool corrupted") }).
		Return(nil, nil)
	client.On("UpdateProduct", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]any{"ok": true}, nil)

	requests := []UpdateRequest{
		{ProductID: 1, Title: "A", Price: 1},
		{ProductID: 2, Title: "B", Price: 2},
		{ProductID: 3, Title: "C", Price: 3},
	}

	results := newTestExecutor(client).Execute(context.Background(), requests)
	require.Len(t, results, 3)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			assert.Contains(t, r.Error, "panic during update of product 2")
		}
	}
	assert.Equal(t, 1, failed)
}

func TestExecute_EmptyBatch(t *testing.T) {
	client := &mocks.Client{}
	results := newTestExecutor(client).Execute(context.Background(), nil)
	assert.Empty(t, results)
}

func TestComputeStatistics_ZeroSpan(t *testing.T) {
	now := time.Now().UTC()
	results := []UpdateResult{
		{Success: true, Timestamp: now},
		{Success: true, Timestamp: now},
	}

	stats := ComputeStatistics(results)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, float64(0), stats.DurationSeconds)
	assert.Equal(t, float64(0), stats.RequestsPerSecond)
	assert.InDelta(t, 100.0, stats.SuccessRate, 0.001)
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := ComputeStatistics(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, float64(0), stats.SuccessRate)
}
