package model

import "encoding/json"

// Amphure คืออำเภอ/เขต
type Amphure struct {
	ID         int    `json:"id"`
	NameTH     string `json:"name_th"`
	ProvinceID int    `json:"province_id"`
}

// Tambon คือตำบล (แหล่งข้อมูลปัจจุบันยังไม่ได้ใช้ระดับนี้)
type Tambon struct {
	ID        int    `json:"id"`
	NameTH    string `json:"name_th"`
	AmphureID int    `json:"amphure_id"`
}

// Province คือจังหวัด พร้อมรายชื่ออำเภอ
type Province struct {
	ID       int       `json:"id"`
	NameTH   string    `json:"name_th"`
	Amphures []Amphure `json:"amphures"`
}

// UnmarshalJSON รองรับทั้ง key "amphures" และ "amphure" ตามที่ชุดข้อมูลจริงใช้
func (p *Province) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       int       `json:"id"`
		NameTH   string    `json:"name_th"`
		Amphures []Amphure `json:"amphures"`
		Amphure  []Amphure `json:"amphure"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ID = raw.ID
	p.NameTH = raw.NameTH
	p.Amphures = raw.Amphures
	if p.Amphures == nil {
		p.Amphures = raw.Amphure
	}
	return nil
}
