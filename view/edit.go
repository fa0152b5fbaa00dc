package view

import (
	"context"
	"errors"
	"strings"

	"api-technician/model"
	"api-technician/store"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

type EditState string

const (
	EditLoading EditState = "loading"
	EditReady   EditState = "ready"
	EditClosed  EditState = "closed"
)

// EditView คือ state ของหน้าแก้ไขข้อมูลช่าง
type EditView struct {
	store     store.TechnicianStore
	notifier  Notifier
	navigator Navigator
	logger    *zap.Logger

	id     string
	state  EditState
	form   Form
	skills *SkillSelector
}

func NewEditView(s store.TechnicianStore, notifier Notifier, navigator Navigator, logger *zap.Logger) *EditView {
	return &EditView{
		store:     s,
		notifier:  notifier,
		navigator: navigator,
		logger:    logger,
		state:     EditLoading,
		form:      NewForm(),
		skills:    NewSkillSelector(),
	}
}

func (v *EditView) ID() string { return v.id }

func (v *EditView) State() EditState { return v.state }

func (v *EditView) Form() *Form { return &v.form }

func (v *EditView) Skills() *SkillSelector { return v.skills }

// Mount โหลดข้อมูลช่างตาม id มาใส่ฟอร์ม
// ไม่มี id หรือหาไม่เจอ: แจ้งเตือนแล้วย้อนกลับ
// ดึงข้อมูลไม่สำเร็จ: แจ้งเตือนแล้วค้างอยู่ที่ loading
func (v *EditView) Mount(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		v.notifier.Notify(failure(MsgMissingID))
		v.navigator.Back()
		v.state = EditClosed
		return ErrMissingID
	}

	v.id = id
	v.state = EditLoading

	technician, err := v.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			v.notifier.Notify(failure(MsgTechnicianMissing))
			v.navigator.Back()
			v.state = EditClosed
			return err
		}
		v.logger.Error("Error fetching technician", zap.String("id", id), zap.Error(err))
		v.notifier.Notify(failure(MsgFetchFailed))
		return err
	}

	if err := v.populate(technician); err != nil {
		v.logger.Error("Error populating technician form", zap.String("id", id), zap.Error(err))
		v.notifier.Notify(failure(MsgFetchFailed))
		return err
	}
	v.state = EditReady
	return nil
}

func (v *EditView) populate(t model.Technician) error {
	v.form = NewForm()
	if err := copier.Copy(&v.form, &t); err != nil {
		return err
	}
	v.skills.Restore(t.Skills)
	return nil
}

func (v *EditView) Apply(p model.TechnicianPayload) {
	v.form.Apply(p, v.skills)
}

// Submit ตรวจข้อมูลแบบเดียวกับหน้าเพิ่ม แล้วอัปเดต document เดิม สำเร็จแล้วย้อนกลับ
func (v *EditView) Submit(ctx context.Context) error {
	if v.state != EditReady {
		return ErrNotReady
	}
	if err := v.form.Validate(); err != nil {
		v.logger.Info("Technician form is incomplete", zap.String("id", v.id), zap.Error(err))
		v.notifier.Notify(failure(MsgRequiredFields))
		return err
	}

	record := v.form.Record(v.skills.Final())
	if err := v.store.Update(ctx, v.id, record); err != nil {
		v.logger.Error("Error updating technician", zap.String("id", v.id), zap.Error(err))
		v.notifier.Notify(failure(MsgUpdateFailed))
		return err
	}

	v.notifier.Notify(success(MsgUpdated))
	v.navigator.Back()
	v.state = EditClosed
	return nil
}
