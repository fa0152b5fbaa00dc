package view

import (
	"context"
	"testing"

	"api-technician/model"
	"api-technician/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestColumnsForWidth(t *testing.T) {
	cases := map[int]int{0: 1, 375: 1, 767: 1, 768: 2, 1023: 2, 1024: 3, 1920: 3}
	for width, want := range cases {
		assert.Equal(t, want, ColumnsForWidth(width), "width %d", width)
	}
}

func TestMatches(t *testing.T) {
	tech := model.Technician{
		Name:    "Somchai สมชาย",
		Phone:   812345678,
		Skills:  []string{"ช่างไฟฟ้ากำลัง", "Welding"},
		Address: model.Address{Street: "123 ถ.สุขุมวิท", District: "บางนา", Province: "กรุงเทพ"},
	}
	cases := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"somchai", true},
		{"SOMCHAI", true},
		{"สมชาย", true},
		{"welding", true},
		{"ไฟฟ้า", true},
		{"สุขุมวิท", true},
		{"บางนา", true},
		{"กรุงเทพ", true},
		{"2345", true},
		{"เชียงใหม่", false},
		{"0812", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Matches(tech, tc.query), "query %q", tc.query)
	}
}

func TestListViewCollapsedAndExpanded(t *testing.T) {
	list := NewListView(newFakeStore(technicians(14)...), &Recorder{}, zap.NewNop())
	require.NoError(t, list.Load(context.Background()))
	assert.Equal(t, ListReady, list.State())

	assert.Equal(t, 1, list.Columns())
	assert.Len(t, list.Displayed(), 6)

	list.Resize(800)
	assert.Equal(t, 12, list.PageSize())
	assert.Len(t, list.Displayed(), 12)

	list.Resize(1280)
	assert.Len(t, list.Displayed(), 14)

	list.Resize(320)
	list.ToggleExpand()
	assert.True(t, list.Expanded())
	assert.Len(t, list.Displayed(), 14)

	list.ToggleExpand()
	assert.Len(t, list.Displayed(), 6)
}

func TestListViewSearchKeepsTruncation(t *testing.T) {
	seed := technicians(9)
	seed[2].Address.Province = "เชียงใหม่"
	seed[7].Address.Province = "เชียงใหม่"

	list := NewListView(newFakeStore(seed...), &Recorder{}, zap.NewNop())
	require.NoError(t, list.Load(context.Background()))

	list.SetQuery("เชียงใหม่")
	list.Search()
	require.Len(t, list.Filtered(), 2)
	assert.Len(t, list.Displayed(), 2)
	for _, tech := range list.Filtered() {
		assert.True(t, Matches(tech, "เชียงใหม่"))
	}

	list.SetQuery("กรุงเทพ")
	list.Search()
	assert.Len(t, list.Filtered(), 7)
	assert.Len(t, list.Displayed(), 6)

	list.ToggleExpand()
	list.SetQuery("")
	list.Search()
	assert.Len(t, list.Displayed(), 9)
}

func TestListViewLoadError(t *testing.T) {
	fs := newFakeStore()
	fs.listFn = func(ctx context.Context) ([]model.Technician, error) { return nil, errUnavailable }
	rec := &Recorder{}
	list := NewListView(fs, rec, zap.NewNop())

	err := list.Load(context.Background())
	require.ErrorIs(t, err, errUnavailable)
	assert.Equal(t, ListError, list.State())
	assert.Equal(t, MsgListFailed, list.ErrorText())
	assert.Equal(t, KindError, rec.Last().Kind)

	// ลองใหม่ได้
	fs.listFn = nil
	require.NoError(t, list.Load(context.Background()))
	assert.Equal(t, ListReady, list.State())
	assert.Empty(t, list.ErrorText())
}

func TestListViewDelete(t *testing.T) {
	fs := newFakeStore(technicians(8)...)
	rec := &Recorder{}
	list := NewListView(fs, rec, zap.NewNop())
	require.NoError(t, list.Load(context.Background()))

	require.NoError(t, list.RequestDelete(context.Background(), "tech-01"))
	pending, ok := list.PendingDelete()
	require.True(t, ok)
	assert.Equal(t, "tech-01", pending)

	require.NoError(t, list.ConfirmDelete(context.Background()))
	_, ok = list.PendingDelete()
	assert.False(t, ok)
	assert.Len(t, list.All(), 7)
	assert.Len(t, list.Filtered(), 7)
	assert.Len(t, list.Displayed(), 6)
	for _, tech := range list.Displayed() {
		assert.NotEqual(t, "tech-01", tech.ID)
	}
	assert.Equal(t, success(MsgDeleted), rec.Last())

	_, err := fs.MemoryStore.Get(context.Background(), "tech-01")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListViewDeleteMissingAtRequest(t *testing.T) {
	fs := newFakeStore(technicians(3)...)
	rec := &Recorder{}
	list := NewListView(fs, rec, zap.NewNop())
	require.NoError(t, list.Load(context.Background()))

	err := list.RequestDelete(context.Background(), "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, ok := list.PendingDelete()
	assert.False(t, ok)
	assert.Equal(t, failure(MsgDeleteNotFound), rec.Last())
	assert.Equal(t, 0, fs.deletes)
}

func TestListViewDeleteVanishedBeforeConfirm(t *testing.T) {
	fs := newFakeStore(technicians(3)...)
	rec := &Recorder{}
	list := NewListView(fs, rec, zap.NewNop())
	require.NoError(t, list.Load(context.Background()))

	require.NoError(t, list.RequestDelete(context.Background(), "tech-02"))
	// มีคนอื่นลบไปก่อนกดยืนยัน
	require.NoError(t, fs.MemoryStore.Delete(context.Background(), "tech-02"))

	err := list.ConfirmDelete(context.Background())
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Len(t, list.All(), 3)
	assert.Len(t, list.Displayed(), 3)
	assert.Equal(t, failure(MsgDeleteNotFound), rec.Last())
}

func TestListViewDeleteFailures(t *testing.T) {
	cases := []struct {
		desc    string
		setup   func(fs *fakeStore)
		id      string
		wantMsg string
	}{
		{
			desc:    "blank id",
			setup:   func(fs *fakeStore) {},
			id:      "  ",
			wantMsg: MsgInvalidID,
		},
		{
			desc: "existence check fails",
			setup: func(fs *fakeStore) {
				fs.getFn = func(ctx context.Context, id string) (model.Technician, error) { return model.Technician{}, errUnavailable }
			},
			id:      "tech-01",
			wantMsg: MsgCheckFailed,
		},
		{
			desc: "delete call fails",
			setup: func(fs *fakeStore) {
				fs.deleteFn = func(ctx context.Context, id string) error { return errUnavailable }
			},
			id:      "tech-01",
			wantMsg: MsgDeleteFailed,
		},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			fs := newFakeStore(technicians(2)...)
			tc.setup(fs)
			rec := &Recorder{}
			list := NewListView(fs, rec, zap.NewNop())
			require.NoError(t, list.Load(context.Background()))

			err := list.RequestDelete(context.Background(), tc.id)
			if err == nil {
				err = list.ConfirmDelete(context.Background())
			}
			require.Error(t, err)
			assert.Equal(t, failure(tc.wantMsg), rec.Last())
			assert.Len(t, list.All(), 2)
			assert.Len(t, list.Displayed(), 2)
			assert.False(t, list.Busy())
		})
	}
}

func TestListViewCancelDelete(t *testing.T) {
	fs := newFakeStore(technicians(2)...)
	list := NewListView(fs, &Recorder{}, zap.NewNop())
	require.NoError(t, list.Load(context.Background()))

	require.NoError(t, list.RequestDelete(context.Background(), "tech-02"))
	list.CancelDelete()

	assert.ErrorIs(t, list.ConfirmDelete(context.Background()), ErrNoPendingDelete)
	assert.Equal(t, 0, fs.deletes)
	assert.Len(t, list.All(), 2)
}

func TestListViewRejectsOverlappingDelete(t *testing.T) {
	fs := newFakeStore(technicians(2)...)
	list := NewListView(fs, &Recorder{}, zap.NewNop())
	require.NoError(t, list.Load(context.Background()))

	fs.deleteFn = func(ctx context.Context, id string) error {
		assert.True(t, list.Busy())
		assert.ErrorIs(t, list.RequestDelete(ctx, "tech-02"), ErrBusy)
		return fs.MemoryStore.Delete(ctx, id)
	}

	require.NoError(t, list.RequestDelete(context.Background(), "tech-01"))
	require.NoError(t, list.ConfirmDelete(context.Background()))
	assert.False(t, list.Busy())
	assert.Equal(t, 1, fs.deletes)
}
