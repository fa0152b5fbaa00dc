package view

import (
	"context"
	"time"

	"api-technician/model"
	"api-technician/store"

	"go.uber.org/zap"
)

// isoLayout ให้ผลแบบเดียวกับ toISOString เช่น 2025-01-02T03:04:05.000Z
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// CreateView คือ state ของหน้าเพิ่มข้อมูลช่าง
type CreateView struct {
	store    store.TechnicianStore
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time

	form   Form
	skills *SkillSelector
}

func NewCreateView(s store.TechnicianStore, notifier Notifier, logger *zap.Logger) *CreateView {
	return &CreateView{
		store:    s,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		form:     NewForm(),
		skills:   NewSkillSelector(),
	}
}

func (v *CreateView) Form() *Form { return &v.form }

func (v *CreateView) Skills() *SkillSelector { return v.skills }

func (v *CreateView) Apply(p model.TechnicianPayload) {
	v.form.Apply(p, v.skills)
}

// Submit ตรวจข้อมูล แล้วสร้าง document ใหม่ สำเร็จแล้วจะล้างฟอร์มทั้งหมด
// ถ้าบันทึกไม่สำเร็จ ฟอร์มจะคงค่าเดิมไว้ให้กดลองใหม่
func (v *CreateView) Submit(ctx context.Context) (string, error) {
	if err := v.form.Validate(); err != nil {
		v.logger.Info("Technician form is incomplete", zap.Error(err))
		v.notifier.Notify(failure(MsgRequiredFields))
		return "", err
	}

	now := v.now()
	record := v.form.Record(v.skills.Final())
	record.TechnicianID = now.UnixMilli()
	record.CreatedAt = now.UTC().Format(isoLayout)

	id, err := v.store.Create(ctx, record)
	if err != nil {
		v.logger.Error("Error adding technician", zap.Error(err))
		v.notifier.Notify(failure(MsgCreateFailed))
		return "", err
	}

	v.notifier.Notify(success(MsgCreated))
	v.form = NewForm()
	v.skills.Reset()
	return id, nil
}
