package catalog

import (
	"context"
	"errors"
	"testing"

	"catalog-sync/core/source"
	"catalog-sync/core/source/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func expectUpsert(dbMock sqlmock.Sqlmock, id int, exists bool) {
	dbMock.ExpectBegin()
	count := 0
	if exists {
		count = 1
	}
	dbMock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE id = \\?").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(count))
	if exists {
		dbMock.ExpectExec("UPDATE `products` SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
	} else {
		dbMock.ExpectExec("INSERT INTO `products`").
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	dbMock.ExpectExec("DELETE FROM `product_tags` WHERE product_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectExec("DELETE FROM `product_images` WHERE product_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectExec("DELETE FROM `reviews` WHERE product_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectCommit()
}

func TestRun_FullReconciliation(t *testing.T) {
	// Store holds {2, 4}; the source serves {1, 2, 3}. After the run 1 and 3
	// are created, 2 is overwritten, and 4 is evicted.
	db, dbMock := setupMockDB(t)

	dbMock.ExpectQuery("SELECT `id` FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2).AddRow(4))

	expectUpsert(dbMock, 1, false)
	expectUpsert(dbMock, 2, true)
	expectUpsert(dbMock, 3, false)

	dbMock.ExpectBegin()
	dbMock.ExpectExec("DELETE FROM `products` WHERE id IN \\(\\?\\)").
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	dbMock.ExpectQuery("SELECT count\\(\\*\\) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	client := &mocks.Client{}
	client.On("FetchPage", mock.Anything, 30, 0).
		Return(&source.Page{
			Products: []source.RawProduct{
				{ID: 1, Title: "One", Price: 1},
				{ID: 2, Title: "Two", Price: 2},
				{ID: 3, Title: "Three", Price: 3},
			},
			Total: 3,
		}, nil)

	svc := NewService(db, client, nil, "", zap.NewNop(), source.Config{}, Config{WriteMode: "upsert"})
	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalSource)
	assert.Equal(t, 2, stats.Created)
	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 1, stats.StaleRemoved)
	assert.Equal(t, 2, stats.StoreBefore)
	assert.Equal(t, 3, stats.StoreAfter)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRun_EmptySourceLeavesStoreUntouched(t *testing.T) {
	db, dbMock := setupMockDB(t)

	dbMock.ExpectQuery("SELECT `id` FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	client := &mocks.Client{}
	client.On("FetchPage", mock.Anything, 30, 0).
		Return(&source.Page{Products: []source.RawProduct{}, Total: 0}, nil)

	svc := NewService(db, client, nil, "", zap.NewNop(), source.Config{}, Config{WriteMode: "upsert"})
	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalSource)
	assert.Equal(t, 0, stats.StaleRemoved)
	assert.Equal(t, 2, stats.StoreBefore)
	assert.Equal(t, 2, stats.StoreAfter)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRun_UnreachableSourceIsFatal(t *testing.T) {
	db, dbMock := setupMockDB(t)

	dbMock.ExpectQuery("SELECT `id` FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	client := &mocks.Client{}
	client.On("FetchPage", mock.Anything, 30, 0).
		Return(nil, errors.New("connection refused"))

	svc := NewService(db, client, nil, "", zap.NewNop(), source.Config{}, Config{WriteMode: "upsert"})
	_, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrSourceUnavailable)
}

func TestRun_InsertOnlyModeSkipsEviction(t *testing.T) {
	db, dbMock := setupMockDB(t)

	dbMock.ExpectQuery("SELECT `id` FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	// Insert-only writes go straight to INSERT with no existence lookup.
	dbMock.ExpectBegin()
	dbMock.ExpectExec("INSERT INTO `products`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	dbMock.ExpectExec("DELETE FROM `product_tags` WHERE product_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectExec("DELETE FROM `product_images` WHERE product_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectExec("DELETE FROM `reviews` WHERE product_id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectCommit()

	// No stale eviction in insert-only mode; record 9 stays.
	dbMock.ExpectQuery("SELECT count\\(\\*\\) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))

	client := &mocks.Client{}
	client.On("FetchPage", mock.Anything, 30, 0).
		Return(&source.Page{
			Products: []source.RawProduct{{ID: 1, Title: "One", Price: 1}},
			Total:    1,
		}, nil)

	svc := NewService(db, client, nil, "", zap.NewNop(), source.Config{}, Config{WriteMode: "insert"})
	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Created)
	assert.Equal(t, 0, stats.StaleRemoved)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
