package service

import (
	"errors"

	"formapi/internal/models"
)

// ErrNotFound is returned when no stored detail carries the requested id.
var ErrNotFound = errors.New("detail not found")

type DetailRepository interface {
	Insert(name string, email string, message string) models.Detail
	ListAll() []models.Detail
	Get(id string) (models.Detail, error)
	Clear() int
}

type DetailService struct {
	repo DetailRepository
}

func NewDetailService(repo DetailRepository) *DetailService {
	return &DetailService{repo: repo}
}

// CreateDetail stores an already-validated submission and returns the stored
// record with its generated id and timestamp.
func (s *DetailService) CreateDetail(req models.CreateDetailRequest) models.Detail {
	return s.repo.Insert(req.Name, req.Email, req.Message)
}

func (s *DetailService) ListDetails() []models.Detail {
	return s.repo.ListAll()
}

func (s *DetailService) GetDetail(id string) (models.Detail, error) {
	return s.repo.Get(id)
}

// ClearDetails removes every stored detail and returns how many were removed.
func (s *DetailService) ClearDetails() int {
	return s.repo.Clear()
}
