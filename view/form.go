package view

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"api-technician/model"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingID       = errors.New("technician id is required")
	ErrInvalidID       = errors.New("technician id is invalid")
	ErrBusy            = errors.New("another action is in progress")
	ErrNoPendingDelete = errors.New("no technician waiting for delete confirmation")
	ErrNotReady        = errors.New("form is not ready")
)

// ValidationError บอกว่าฟิลด์ที่จำเป็นตัวไหนยังไม่ได้กรอก
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Form คือค่าในช่องกรอกของหน้าเพิ่ม/แก้ไขช่าง (ไม่รวม Checkbox ทักษะ)
type Form struct {
	Name        string         `json:"name" validate:"required"`
	Age         int            `json:"age"`
	Experience  int            `json:"experience"`
	Phone       int64          `json:"phone" validate:"required"`
	Address     model.Address  `json:"address"`
	ImagePath   string         `json:"image_path"`
	IsAvailable bool           `json:"is_available"`
	Location    model.Location `json:"location"`
}

// NewForm คืนฟอร์มเปล่า สถานะเริ่มต้นคือ "ว่าง"
func NewForm() Form {
	return Form{IsAvailable: true, Location: model.Location{0, 0}}
}

// Validate ตรวจ name, phone, street, district, province ว่าไม่ว่าง
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, strings.TrimPrefix(fe.Namespace(), "Form."))
	}
	return &ValidationError{Fields: missing}
}

// Apply นำข้อมูลจาก payload มาใส่ในฟอร์ม ฟิลด์ที่ไม่ได้ส่งมาจะคงค่าเดิม
func (f *Form) Apply(p model.TechnicianPayload, skills *SkillSelector) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Age != nil {
		f.Age = int(*p.Age)
	}
	if p.Experience != nil {
		f.Experience = int(*p.Experience)
	}
	if p.Phone != nil {
		f.Phone = int64(*p.Phone)
	}
	if p.Address != nil {
		if p.Address.Street != nil {
			f.Address.Street = *p.Address.Street
		}
		if p.Address.District != nil {
			f.Address.District = *p.Address.District
		}
		if p.Address.Province != nil {
			f.Address.Province = *p.Address.Province
		}
	}
	if p.ImagePath != nil {
		f.ImagePath = *p.ImagePath
	}
	if p.IsAvailable != nil {
		f.IsAvailable = *p.IsAvailable
	}

	if p.Skills != nil {
		skills.Reset()
		for _, skill := range p.Skills {
			if skills.IsChecked(skill) {
				continue
			}
			skills.Toggle(skill)
		}
	}
	if p.OtherSkill != nil {
		skills.SetOther(*p.OtherSkill)
	}
}

// Record สร้าง Technician จากค่าในฟอร์มกับทักษะที่รวมแล้ว
func (f Form) Record(skills []string) model.Technician {
	return model.Technician{
		Name:        f.Name,
		Age:         f.Age,
		Experience:  f.Experience,
		Phone:       f.Phone,
		Address:     f.Address,
		Skills:      skills,
		ImagePath:   f.ImagePath,
		IsAvailable: f.IsAvailable,
		Location:    f.Location,
	}
}
