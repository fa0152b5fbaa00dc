package store

import (
	"context"
	"fmt"

	"api-technician/model"

	"cloud.google.com/go/firestore"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore เก็บข้อมูลช่างไว้ใน Cloud Firestore
type FirestoreStore struct {
	client     *firestore.Client
	collection string
	logger     *zap.Logger
}

func NewFirestoreStore(client *firestore.Client, collection string, logger *zap.Logger) *FirestoreStore {
	if collection == "" {
		collection = DefaultCollection
	}
	return &FirestoreStore{client: client, collection: collection, logger: logger}
}

func (s *FirestoreStore) List(ctx context.Context) ([]model.Technician, error) {
	ctx, span := tracer.Start(ctx, "firestore.List")
	defer span.End()

	iter := s.client.Collection(s.collection).Documents(ctx)
	defer iter.Stop()

	technicians := []model.Technician{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			s.logger.Error("Failed to iterate technicians", zap.Error(err))
			return nil, fmt.Errorf("list technicians: %w", err)
		}
		var t model.Technician
		if err := doc.DataTo(&t); err != nil {
			s.logger.Error("Failed to decode technician", zap.String("id", doc.Ref.ID), zap.Error(err))
			return nil, fmt.Errorf("decode technician %s: %w", doc.Ref.ID, err)
		}
		t.ID = doc.Ref.ID
		technicians = append(technicians, t)
	}
	return technicians, nil
}

func (s *FirestoreStore) Get(ctx context.Context, id string) (model.Technician, error) {
	ctx, span := tracer.Start(ctx, "firestore.Get")
	defer span.End()
	span.SetAttributes(attribute.String("technician.id", id))

	doc, err := s.client.Collection(s.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Technician{}, ErrNotFound
		}
		return model.Technician{}, fmt.Errorf("get technician %s: %w", id, err)
	}
	var t model.Technician
	if err := doc.DataTo(&t); err != nil {
		return model.Technician{}, fmt.Errorf("decode technician %s: %w", id, err)
	}
	t.ID = doc.Ref.ID
	return t, nil
}

func (s *FirestoreStore) Create(ctx context.Context, technician model.Technician) (string, error) {
	ctx, span := tracer.Start(ctx, "firestore.Create")
	defer span.End()

	ref, _, err := s.client.Collection(s.collection).Add(ctx, technician)
	if err != nil {
		return "", fmt.Errorf("create technician: %w", err)
	}
	s.logger.Info("Technician created", zap.String("id", ref.ID), zap.Int64("technician_id", technician.TechnicianID))
	return ref.ID, nil
}

// Update เขียนทับเฉพาะฟิลด์ที่แก้ไขได้ ถ้าไม่มี document อยู่ Firestore จะตอบ NotFound
func (s *FirestoreStore) Update(ctx context.Context, id string, technician model.Technician) error {
	ctx, span := tracer.Start(ctx, "firestore.Update")
	defer span.End()
	span.SetAttributes(attribute.String("technician.id", id))

	fields := editableFields(technician)
	updates := make([]firestore.Update, 0, len(fields))
	for _, f := range fields {
		updates = append(updates, firestore.Update{Path: f.path, Value: f.value})
	}

	if _, err := s.client.Collection(s.collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("update technician %s: %w", id, err)
	}
	return nil
}

// Delete ลบได้เฉพาะ document ที่ยังมีอยู่ (precondition Exists)
func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "firestore.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("technician.id", id))

	if _, err := s.client.Collection(s.collection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("delete technician %s: %w", id, err)
	}
	s.logger.Info("Technician deleted", zap.String("id", id))
	return nil
}
