package dto

import "github.com/yigit/registrar/internal/app/models"

// DashboardResponse carries every student and faculty member
type DashboardResponse struct {
	Students []*models.Student `json:"students"`
	Faculty  []*models.Faculty `json:"faculty"`
}
