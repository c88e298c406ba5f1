package store

import (
	"context"

	"github.com/hyperengineering/stride/internal/record"
)

// mockStore is a compile-time check that the Store interface can be implemented.
type mockStore struct{}

var (
	_ Store = (*mockStore)(nil)
	_ Store = (*WorkbookStore)(nil)
)

func (m *mockStore) Add(ctx context.Context, rec record.Record) error {
	return nil
}
func (m *mockStore) List(ctx context.Context, kind record.Kind) ([]record.Record, error) {
	return nil, nil
}
func (m *mockStore) Get(ctx context.Context, kind record.Kind, id string) (record.Record, error) {
	return nil, nil
}
func (m *mockStore) Update(ctx context.Context, rec record.Record) (bool, error) {
	return false, nil
}
func (m *mockStore) Invalidate() error {
	return nil
}
func (m *mockStore) Path() string {
	return ""
}
