package view

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"api-technician/model"
	"api-technician/store"

	"go.uber.org/zap"
)

type ListState string

const (
	ListLoading ListState = "loading"
	ListReady   ListState = "ready"
	ListError   ListState = "error"
)

// rowsPerPage คือจำนวนแถวที่แสดงตอนยังไม่กด "แสดงข้อมูลทั้งหมด"
const rowsPerPage = 6

// ColumnsForWidth คำนวณจำนวนคอลัมน์จากความกว้างหน้าจอ
func ColumnsForWidth(width int) int {
	switch {
	case width >= 1024:
		return 3
	case width >= 768:
		return 2
	default:
		return 1
	}
}

// Matches ตรวจว่าช่างตรงกับคำค้นหรือไม่ (ไม่สนตัวพิมพ์เล็ก/ใหญ่)
// ค้นจากชื่อ ทักษะ ที่อยู่ และเบอร์โทร ตรงอย่างใดอย่างหนึ่งก็พอ
func Matches(t model.Technician, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Name), q) {
		return true
	}
	for _, skill := range t.Skills {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(t.Address.Street), q) ||
		strings.Contains(strings.ToLower(t.Address.District), q) ||
		strings.Contains(strings.ToLower(t.Address.Province), q) {
		return true
	}
	if t.Phone != 0 && strings.Contains(strconv.FormatInt(t.Phone, 10), q) {
		return true
	}
	return false
}

// ListView คือ state ของหน้ารายการช่าง
// all = ข้อมูลทั้งหมด, filtered = ผลค้นหา, displayed = ที่แสดงจริง
type ListView struct {
	store    store.TechnicianStore
	notifier Notifier
	logger   *zap.Logger

	state     ListState
	errorText string
	query     string
	columns   int
	expanded  bool
	busy      bool

	all       []model.Technician
	filtered  []model.Technician
	displayed []model.Technician

	pendingDelete string
}

func NewListView(s store.TechnicianStore, notifier Notifier, logger *zap.Logger) *ListView {
	return &ListView{
		store:     s,
		notifier:  notifier,
		logger:    logger,
		state:     ListLoading,
		columns:   1,
		all:       []model.Technician{},
		filtered:  []model.Technician{},
		displayed: []model.Technician{},
	}
}

// Load ดึงข้อมูลช่างทั้งหมด เรียกซ้ำได้เพื่อ "ลองใหม่" หลังเกิด error
func (v *ListView) Load(ctx context.Context) error {
	v.state = ListLoading

	technicians, err := v.store.List(ctx)
	if err != nil {
		v.logger.Error("Error fetching technicians", zap.Error(err))
		v.state = ListError
		v.errorText = MsgListFailed
		v.notifier.Notify(failure(MsgListFailed))
		return err
	}

	v.all = technicians
	v.filtered = filterTechnicians(v.all, v.query)
	v.errorText = ""
	v.state = ListReady
	v.refreshDisplay()
	return nil
}

func (v *ListView) SetQuery(query string) { v.query = query }

// Search กรองจากข้อมูลทั้งหมดด้วยคำค้นปัจจุบัน
func (v *ListView) Search() {
	v.filtered = filterTechnicians(v.all, v.query)
	v.refreshDisplay()
}

// Resize อัปเดตจำนวนคอลัมน์ตามความกว้างหน้าจอใหม่
func (v *ListView) Resize(width int) {
	v.columns = ColumnsForWidth(width)
	v.refreshDisplay()
}

func (v *ListView) ToggleExpand() {
	v.expanded = !v.expanded
	v.refreshDisplay()
}

func (v *ListView) PageSize() int { return rowsPerPage * v.columns }

func (v *ListView) refreshDisplay() {
	if v.expanded || len(v.filtered) <= v.PageSize() {
		v.displayed = append([]model.Technician{}, v.filtered...)
		return
	}
	v.displayed = append([]model.Technician{}, v.filtered[:v.PageSize()]...)
}

// RequestDelete ตรวจว่าช่างยังมีอยู่จริงก่อน แล้วจึงเปิดหน้ายืนยันการลบ
func (v *ListView) RequestDelete(ctx context.Context, id string) error {
	if v.busy {
		return ErrBusy
	}
	if strings.TrimSpace(id) == "" {
		v.logger.Error("Technician ID is empty")
		v.notifier.Notify(failure(MsgInvalidID))
		return ErrInvalidID
	}

	if _, err := v.store.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			v.logger.Error("Document not found", zap.String("id", id))
			v.notifier.Notify(failure(MsgDeleteNotFound))
			return err
		}
		v.logger.Error("Error checking document existence", zap.String("id", id), zap.Error(err))
		v.notifier.Notify(failure(MsgCheckFailed))
		return err
	}

	v.pendingDelete = id
	return nil
}

// ConfirmDelete ลบช่างที่รอยืนยันอยู่ แล้วเอาออกจากทุกรายการโดยไม่ดึงข้อมูลใหม่
// ถ้าลบไม่สำเร็จรายการจะไม่เปลี่ยน
func (v *ListView) ConfirmDelete(ctx context.Context) error {
	if v.pendingDelete == "" {
		return ErrNoPendingDelete
	}
	if v.busy {
		return ErrBusy
	}

	id := v.pendingDelete
	v.pendingDelete = ""
	v.busy = true
	defer func() { v.busy = false }()

	if err := v.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			v.logger.Error("Document not found", zap.String("id", id))
			v.notifier.Notify(failure(MsgDeleteNotFound))
			return err
		}
		v.logger.Error("Error deleting technician", zap.String("id", id), zap.Error(err))
		v.notifier.Notify(failure(MsgDeleteFailed))
		return err
	}

	v.all = removeTechnician(v.all, id)
	v.filtered = removeTechnician(v.filtered, id)
	v.refreshDisplay()
	v.notifier.Notify(success(MsgDeleted))
	return nil
}

func (v *ListView) CancelDelete() { v.pendingDelete = "" }

// PendingDelete คืน id ที่รอยืนยันการลบ
func (v *ListView) PendingDelete() (string, bool) {
	return v.pendingDelete, v.pendingDelete != ""
}

func (v *ListView) State() ListState { return v.state }

func (v *ListView) ErrorText() string { return v.errorText }

func (v *ListView) Columns() int { return v.columns }

func (v *ListView) Expanded() bool { return v.expanded }

func (v *ListView) Busy() bool { return v.busy }

func (v *ListView) All() []model.Technician { return v.all }

func (v *ListView) Filtered() []model.Technician { return v.filtered }

func (v *ListView) Displayed() []model.Technician { return v.displayed }

func filterTechnicians(technicians []model.Technician, query string) []model.Technician {
	out := make([]model.Technician, 0, len(technicians))
	for _, t := range technicians {
		if Matches(t, query) {
			out = append(out, t)
		}
	}
	return out
}

func removeTechnician(technicians []model.Technician, id string) []model.Technician {
	out := make([]model.Technician, 0, len(technicians))
	for _, t := range technicians {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
