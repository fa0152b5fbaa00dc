package view

import (
	"context"
	"fmt"

	"api-technician/model"
	"api-technician/store"
)

// fakeStore ใช้ MemoryStore เป็นค่าเริ่มต้น และให้เทสเปลี่ยนพฤติกรรมรายเมธอดได้
type fakeStore struct {
	*store.MemoryStore
	listFn   func(ctx context.Context) ([]model.Technician, error)
	getFn    func(ctx context.Context, id string) (model.Technician, error)
	createFn func(ctx context.Context, t model.Technician) (string, error)
	updateFn func(ctx context.Context, id string, t model.Technician) error
	deleteFn func(ctx context.Context, id string) error

	creates, updates, deletes int
}

func newFakeStore(seed ...model.Technician) *fakeStore {
	return &fakeStore{MemoryStore: store.NewMemoryStore(seed...)}
}

func (f *fakeStore) List(ctx context.Context) ([]model.Technician, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return f.MemoryStore.List(ctx)
}

func (f *fakeStore) Get(ctx context.Context, id string) (model.Technician, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return f.MemoryStore.Get(ctx, id)
}

func (f *fakeStore) Create(ctx context.Context, t model.Technician) (string, error) {
	f.creates++
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return f.MemoryStore.Create(ctx, t)
}

func (f *fakeStore) Update(ctx context.Context, id string, t model.Technician) error {
	f.updates++
	if f.updateFn != nil {
		return f.updateFn(ctx, id, t)
	}
	return f.MemoryStore.Update(ctx, id, t)
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.deletes++
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return f.MemoryStore.Delete(ctx, id)
}

var errUnavailable = fmt.Errorf("rpc error: code = Unavailable desc = connection refused")

func technicians(n int) []model.Technician {
	out := make([]model.Technician, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, model.Technician{
			ID:      fmt.Sprintf("tech-%02d", i),
			Name:    fmt.Sprintf("ช่างคนที่ %d", i),
			Phone:   int64(800000000 + i),
			Address: model.Address{Street: fmt.Sprintf("%d ถ.พหลโยธิน", i), District: "จตุจักร", Province: "กรุงเทพ"},
			Skills:  []string{"ช่างยนต์"},
		})
	}
	return out
}
