package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NumericText คือค่าตัวเลขที่กรอกมาจากช่องข้อความในฟอร์ม
// รับได้ทั้ง JSON number และ string ถ้าแปลงไม่ได้จะกลายเป็น 0
type NumericText int64

func (n *NumericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	var text string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	} else {
		text = string(data)
	}
	*n = NumericText(ParseNumber(text))
	return nil
}

// ParseNumber อ่านตัวเลขจำนวนเต็มที่อยู่ต้นข้อความ เช่น "12ปี" ได้ 12, "abc" ได้ 0
func ParseNumber(text string) int64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	sign := int64(1)
	switch text[0] {
	case '-':
		sign = -1
		text = text[1:]
	case '+':
		text = text[1:]
	}
	var value int64
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			break
		}
		value = value*10 + int64(c-'0')
	}
	return sign * value
}

// AddressPayload คือข้อมูลที่อยู่ที่แอปส่งมา ฟิลด์ไหนไม่ส่งมาจะไม่ถูกแก้
type AddressPayload struct {
	Street   *string `json:"street"`
	District *string `json:"district"`
	Province *string `json:"province"`
}

// TechnicianPayload คือข้อมูลฟอร์มที่แอปส่งมาตอน "สร้าง" หรือ "แก้ไข" ช่าง
// Skills คือรายการที่ติ๊กไว้ใน Checkbox (รวม "อื่นๆ" ได้) ส่วน OtherSkill คือข้อความในช่อง "อื่นๆ"
type TechnicianPayload struct {
	Name        *string         `json:"name"`
	Age         *NumericText    `json:"age"`
	Experience  *NumericText    `json:"experience"`
	Phone       *NumericText    `json:"phone"`
	Address     *AddressPayload `json:"address"`
	Skills      []string        `json:"skills"`
	OtherSkill  *string         `json:"other_skill"`
	ImagePath   *string         `json:"image_path"`
	IsAvailable *bool           `json:"is_available"`
}
