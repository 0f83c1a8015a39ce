package api

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/hitanshu04/coldleads-ai/internal/config"
	"github.com/hitanshu04/coldleads-ai/internal/search"
)

type MockSearchProvider struct {
	mock.Mock
}

func (m *MockSearchProvider) Search(ctx context.Context, query string, opts search.Options) ([]search.Result, error) {
	args := m.Called(ctx, query, opts)
	var results []search.Result
	if value := args.Get(0); value != nil {
		results = value.([]search.Result)
	}
	return results, args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func newTestServer(t *testing.T, caps *Capabilities, cfg config.Config) *httptest.Server {
	t.Helper()
	server := NewServer(caps, cfg)
	return httptest.NewServer(server.Router())
}
