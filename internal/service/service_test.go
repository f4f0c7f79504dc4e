package service

import (
	"errors"
	"fmt"
	"testing"

	"formapi/internal/models"
)

type stubRepo struct {
	details []models.Detail
	nextID  int
}

func (r *stubRepo) Insert(name string, email string, message string) models.Detail {
	r.nextID++
	detail := models.Detail{
		ID:        fmt.Sprintf("stub-%d", r.nextID),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: "2026-08-27 12:00:00",
	}
	r.details = append(r.details, detail)
	return detail
}

func (r *stubRepo) ListAll() []models.Detail {
	out := make([]models.Detail, len(r.details))
	copy(out, r.details)
	return out
}

func (r *stubRepo) Get(id string) (models.Detail, error) {
	for _, d := range r.details {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Detail{}, ErrNotFound
}

func (r *stubRepo) Clear() int {
	n := len(r.details)
	r.details = nil
	return n
}

func TestCreateDetail(t *testing.T) {
	repo := &stubRepo{}
	service := NewDetailService(repo)

	req := models.CreateDetailRequest{Name: "Test User", Email: "test@example.com", Message: "Test message"}
	detail := service.CreateDetail(req)

	if detail.ID == "" {
		t.Errorf("expected an id on the created detail")
	}
	if detail.Name != req.Name || detail.Email != req.Email || detail.Message != req.Message {
		t.Errorf("created detail does not echo request fields: %+v", detail)
	}
	if len(repo.details) != 1 {
		t.Errorf("expected 1 detail in repo, got %d", len(repo.details))
	}
}

func TestListDetailsOrder(t *testing.T) {
	repo := &stubRepo{}
	service := NewDetailService(repo)

	first := service.CreateDetail(models.CreateDetailRequest{Name: "A", Email: "a@example.com", Message: "one"})
	second := service.CreateDetail(models.CreateDetailRequest{Name: "B", Email: "b@example.com", Message: "two"})

	all := service.ListDetails()
	if len(all) != 2 {
		t.Fatalf("expected 2 details, got %d", len(all))
	}
	if all[0].ID != first.ID || all[1].ID != second.ID {
		t.Errorf("expected creation order, got [%s %s]", all[0].ID, all[1].ID)
	}
}

func TestGetDetailNotFound(t *testing.T) {
	service := NewDetailService(&stubRepo{})

	_, err := service.GetDetail("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClearDetails(t *testing.T) {
	repo := &stubRepo{}
	service := NewDetailService(repo)
	service.CreateDetail(models.CreateDetailRequest{Name: "A", Email: "a@example.com", Message: "one"})
	service.CreateDetail(models.CreateDetailRequest{Name: "B", Email: "b@example.com", Message: "two"})

	if n := service.ClearDetails(); n != 2 {
		t.Errorf("expected 2 cleared, got %d", n)
	}
	if all := service.ListDetails(); len(all) != 0 {
		t.Errorf("expected empty list after clear, got %d details", len(all))
	}
}
