package store

import (
	"context"
	"sync"

	"api-technician/model"

	"github.com/google/uuid"
)

// MemoryStore เก็บข้อมูลไว้ในหน่วยความจำ ใช้ตอนรันในเครื่องและในเทส
// List คืนตามลำดับที่สร้าง
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]model.Technician
}

func NewMemoryStore(seed ...model.Technician) *MemoryStore {
	s := &MemoryStore{docs: map[string]model.Technician{}}
	for _, t := range seed {
		id := t.ID
		if id == "" {
			id = uuid.New().String()
		}
		t.ID = ""
		s.order = append(s.order, id)
		s.docs[id] = cloneTechnician(t)
	}
	return s
}

func (s *MemoryStore) List(_ context.Context) ([]model.Technician, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	technicians := make([]model.Technician, 0, len(s.order))
	for _, id := range s.order {
		t := cloneTechnician(s.docs[id])
		t.ID = id
		technicians = append(technicians, t)
	}
	return technicians, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (model.Technician, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.docs[id]
	if !ok {
		return model.Technician{}, ErrNotFound
	}
	t = cloneTechnician(t)
	t.ID = id
	return t, nil
}

func (s *MemoryStore) Create(_ context.Context, technician model.Technician) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	technician.ID = ""
	s.docs[id] = cloneTechnician(technician)
	s.order = append(s.order, id)
	return id, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, technician model.Technician) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.docs[id]
	if !ok {
		return ErrNotFound
	}
	technician.ID = ""
	technician.TechnicianID = current.TechnicianID
	technician.CreatedAt = current.CreatedAt
	s.docs[id] = cloneTechnician(technician)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return ErrNotFound
	}
	delete(s.docs, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneTechnician(t model.Technician) model.Technician {
	if t.Skills != nil {
		t.Skills = append([]string{}, t.Skills...)
	}
	return t
}
