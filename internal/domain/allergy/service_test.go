package allergy

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	items []*Allergy
}

func (m *mockRepo) Create(ctx context.Context, a *Allergy) error {
	a.ID = uuid.New()
	m.items = append(m.items, a)
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	for i, a := range m.items {
		if a.ID == id && a.UserID == userID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Allergy, int, error) {
	var out []*Allergy
	for _, a := range m.items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, len(out), nil
}

func TestCreate_Success(t *testing.T) {
	svc := NewService(&mockRepo{})
	a := &Allergy{UserID: "user-1", Allergen: "Penicillin", Severity: SeveritySevere}
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
}

func TestCreate_MissingAllergen(t *testing.T) {
	svc := NewService(&mockRepo{})
	a := &Allergy{UserID: "user-1"}
	if err := svc.Create(context.Background(), a); err == nil {
		t.Error("expected error for missing allergen")
	}
}

func TestCreate_DefaultsSeverity(t *testing.T) {
	svc := NewService(&mockRepo{})
	a := &Allergy{UserID: "user-1", Allergen: "Peanuts"}
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if a.Severity != SeverityMild {
		t.Errorf("expected default severity %q, got %q", SeverityMild, a.Severity)
	}
}

func TestCreate_InvalidSeverity(t *testing.T) {
	svc := NewService(&mockRepo{})
	a := &Allergy{UserID: "user-1", Allergen: "Peanuts", Severity: "fatal"}
	if err := svc.Create(context.Background(), a); err == nil {
		t.Error("expected error for invalid severity")
	}
}

func TestList_ScopedToUser(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	for _, uid := range []string{"user-a", "user-a", "user-b"} {
		if err := svc.Create(context.Background(), &Allergy{UserID: uid, Allergen: "Latex"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	items, total, err := svc.List(context.Background(), "user-a", 20, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("expected 2 allergies for user-a, got %d (total %d)", len(items), total)
	}
}
