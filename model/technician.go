package model

import "strings"

// Address คือที่อยู่ของช่าง 1 คน (ฝังอยู่ใน document ของช่าง)
type Address struct {
	Street   string `json:"street" firestore:"street" bson:"street" validate:"required"`
	District string `json:"district" firestore:"district" bson:"district" validate:"required"`
	Province string `json:"province" firestore:"province" bson:"province" validate:"required"`
}

// Location เก็บพิกัด [latitude, longitude]
type Location [2]float64

// Technician คือโครงสร้างข้อมูลช่างเทคนิค 1 คนใน Collection "technician"
type Technician struct {
	// ID จะถูกดึงมาจาก Document ID ของ store ไม่ได้เก็บไว้ใน document
	ID           string   `json:"id,omitempty" firestore:"-" bson:"-"`
	TechnicianID int64    `json:"technician_id" firestore:"technician_id" bson:"technician_id"`
	Name         string   `json:"name" firestore:"name" bson:"name"`
	Age          int      `json:"age" firestore:"age" bson:"age"`
	Experience   int      `json:"experience" firestore:"experience" bson:"experience"`
	Phone        int64    `json:"phone" firestore:"phone" bson:"phone"`
	Address      Address  `json:"address" firestore:"address" bson:"address"`
	Skills       []string `json:"skills" firestore:"skills" bson:"skills"`
	ImagePath    string   `json:"image_path" firestore:"image_path" bson:"image_path"`
	IsAvailable  bool     `json:"is_available" firestore:"is_available" bson:"is_available"`
	Location     Location `json:"location" firestore:"location" bson:"location"`
	CreatedAt    string   `json:"created_at,omitempty" firestore:"created_at" bson:"created_at"`
}

// ImageURL คืน URL ของรูปช่าง ถ้า image_path เป็น URL เต็มอยู่แล้วจะใช้ตามเดิม
// ไม่เช่นนั้นจะต่อท้าย baseURL
func (t Technician) ImageURL(baseURL string) string {
	if strings.HasPrefix(t.ImagePath, "http") {
		return t.ImagePath
	}
	return baseURL + t.ImagePath
}

// TechnicianView คือข้อมูลที่ส่งกลับไปแสดงผลในหน้ารายการ
type TechnicianView struct {
	Technician
	ImageURL string `json:"image_url"`
}
