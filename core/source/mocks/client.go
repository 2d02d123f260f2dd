package mocks

import (
	"context"

	"catalog-sync/core/source"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of source.Client
type Client struct {
	mock.Mock
}

func (m *Client) FetchPage(ctx context.Context, limit, skip int) (*source.Page, error) {
	args := m.Called(ctx, limit, skip)
	if page, ok := args.Get(0).(*source.Page); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdateProduct(ctx context.Context, id int, payload map[string]any) (map[string]any, error) {
	args := m.Called(ctx, id, payload)
	if data, ok := args.Get(0).(map[string]any); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Close() {
	m.Called()
}
