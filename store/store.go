package store

import (
	"context"
	"errors"

	"api-technician/model"

	"go.opentelemetry.io/otel"
)

// DefaultCollection คือชื่อ collection ที่เก็บข้อมูลช่าง
const DefaultCollection = "technician"

var ErrNotFound = errors.New("technician not found")

var tracer = otel.Tracer("api-technician/store")

// TechnicianStore คือช่องทางเดียวที่แอปใช้คุยกับฐานข้อมูล document
// ทุกเมธอดเรียกครั้งเดียว ไม่มี retry
type TechnicianStore interface {
	List(ctx context.Context) ([]model.Technician, error)
	Get(ctx context.Context, id string) (model.Technician, error)
	Create(ctx context.Context, technician model.Technician) (string, error)
	Update(ctx context.Context, id string, technician model.Technician) error
	Delete(ctx context.Context, id string) error
}

type fieldUpdate struct {
	path  string
	value interface{}
}

// editableFields คือฟิลด์ที่หน้าแก้ไขเขียนทับได้
// id, technician_id และ created_at ไม่อยู่ในนี้
func editableFields(t model.Technician) []fieldUpdate {
	skills := t.Skills
	if skills == nil {
		skills = []string{}
	}
	return []fieldUpdate{
		{path: "name", value: t.Name},
		{path: "age", value: t.Age},
		{path: "experience", value: t.Experience},
		{path: "phone", value: t.Phone},
		{path: "address", value: t.Address},
		{path: "skills", value: skills},
		{path: "image_path", value: t.ImagePath},
		{path: "is_available", value: t.IsAvailable},
		{path: "location", value: t.Location},
	}
}
