package sqldb

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Get(ctx context.Context, dest any, query string, arg any) error {
	args := m.Called(ctx, dest, query, arg)
	return args.Error(0)
}

func (m *mockExecutor) Select(ctx context.Context, dest any, query string, arg any) error {
	args := m.Called(ctx, dest, query, arg)
	return args.Error(0)
}

func (m *mockExecutor) Exec(ctx context.Context, query string, arg any) (int64, error) {
	args := m.Called(ctx, query, arg)
	return args.Get(0).(int64), args.Error(1)
}

type mockInserter struct {
	mock.Mock
}

func (m *mockInserter) InsertReturningKey(ctx context.Context, arg any) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}
