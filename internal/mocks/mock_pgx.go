package mocks

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type MockPgx struct {
	mock.Mock
}

func (m *MockPgx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	called := m.Called(append([]any{ctx, sql}, args...)...)
	return called.Get(0).(pgconn.CommandTag), called.Error(1)
}

func (m *MockPgx) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockPgx) Close() {
	m.Called()
}
