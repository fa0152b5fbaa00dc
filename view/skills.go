package view

import "strings"

// OtherSkill คือตัวเลือก "อื่นๆ" ที่เปิดช่องให้กรอกทักษะเอง ห้ามถูกบันทึกลง store
const OtherSkill = "อื่นๆ"

// SkillCatalog คือรายการทักษะที่เลือกได้ผ่าน Checkbox
var SkillCatalog = []string{
	"ช่างก่ออิฐ",
	"ช่างฉาบปูน",
	"ช่างไม้ก่อสร้าง",
	"ช่างปูกระเบื้องผนังและพื้น",
	"ช่างก่อและติดตั้งคอนกรีตมวลเบา",
	"ช่างติดตั้งแผ่นเหล็กเคลือบขึ้นรูป",
	"ช่างสีอาคาร",
	"ช่างเขียนแบบก่อสร้างด้วยคอมพิวเตอร์",
	"ช่างอะลูมิเนียมก่อสร้าง",
	"ช่างไม้ในอาคาร",
	"ช่างสีตกแต่ง",
	"ช่างหินขัด",
	"ช่างประกอบติดตั้งโครงหลังคาเหล็กรีดเย็น",
	"ช่างติดตั้งยิปซัม",
	"ช่างฉาบยิปซัม",
	"ช่างมุงหลังคากระเบื้องคอนกรีต",
	"ช่างก่อสร้าง",
	"ช่างยนต์",
	"ช่างกลโรงงาน",
	"ช่างเชื่อมโลหะ",
	"ช่างไฟฟ้ากำลัง",
	"ช่างอิเล็กทรอนิกส์",
	OtherSkill,
}

// SkillSelector คือ state ของ Checkbox ทักษะ และช่องกรอก "อื่นๆ"
type SkillSelector struct {
	checked   []string
	other     string
	showOther bool
}

func NewSkillSelector() *SkillSelector {
	return &SkillSelector{checked: []string{}}
}

// Toggle สลับการเลือกทักษะ
// ถ้าเป็น "อื่นๆ" จะเปิด/ปิดช่องกรอกไปพร้อมกับการเพิ่ม/ลบ "อื่นๆ" ในรายการที่เลือก
func (s *SkillSelector) Toggle(skill string) {
	if skill == OtherSkill {
		if !s.showOther {
			s.showOther = true
			if !s.IsChecked(OtherSkill) {
				s.checked = append(s.checked, OtherSkill)
			}
		} else {
			s.showOther = false
			s.checked = without(s.checked, OtherSkill)
			s.other = ""
		}
		return
	}

	if s.IsChecked(skill) {
		s.checked = without(s.checked, skill)
	} else {
		s.checked = append(s.checked, skill)
	}
}

// SetOther เก็บข้อความในช่อง "อื่นๆ"
func (s *SkillSelector) SetOther(text string) {
	s.other = text
}

func (s *SkillSelector) IsChecked(skill string) bool {
	for _, c := range s.checked {
		if c == skill {
			return true
		}
	}
	return false
}

func (s *SkillSelector) Checked() []string {
	return append([]string{}, s.checked...)
}

func (s *SkillSelector) Other() string { return s.other }

func (s *SkillSelector) ShowOther() bool { return s.showOther }

// Final รวมทักษะที่จะบันทึกจริง: ข้อความ "อื่นๆ" แทนที่ตัว "อื่นๆ"
// และกรองค่าว่างกับ "อื่นๆ" ออกเสมอ
func (s *SkillSelector) Final() []string {
	skills := append([]string{}, s.checked...)
	other := strings.TrimSpace(s.other)
	if s.IsChecked(OtherSkill) && other != "" {
		skills = without(skills, OtherSkill)
		skills = append(skills, other)
	}

	final := make([]string, 0, len(skills))
	for _, skill := range skills {
		if strings.TrimSpace(skill) == "" || skill == OtherSkill {
			continue
		}
		final = append(final, skill)
	}
	return final
}

func (s *SkillSelector) Reset() {
	s.checked = []string{}
	s.other = ""
	s.showOther = false
}

// Restore ตั้งค่าจากทักษะที่บันทึกไว้ ถ้าเจอ "อื่นๆ" จะถือว่ารายการถัดไปคือข้อความที่กรอกเอง
// วิธีนี้ขึ้นกับลำดับใน array
func (s *SkillSelector) Restore(stored []string) {
	s.Reset()
	s.checked = append(s.checked, stored...)

	for i, skill := range stored {
		if skill != OtherSkill {
			continue
		}
		if i+1 < len(stored) {
			s.other = stored[i+1]
			s.showOther = true
			s.checked = append(append([]string{}, stored[:i+1]...), stored[i+2:]...)
		}
		return
	}
}

func without(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if item != value {
			out = append(out, item)
		}
	}
	return out
}
