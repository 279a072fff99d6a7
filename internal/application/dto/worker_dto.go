package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkerRequest entrada para crear un trabajador.
type CreateWorkerRequest struct {
	Name        string           `json:"name"`
	Role        string           `json:"role"`
	HourlyRate  decimal.Decimal  `json:"hourlyRate"`
	HoursWorked *decimal.Decimal `json:"hoursWorked"`
	Specialty   []string         `json:"specialty"`
	IsPaid      *bool            `json:"isPaid"`
	Projects    StringList       `json:"projects"`
}

// UpdateWorkerRequest entrada para actualización parcial (solo claves presentes).
type UpdateWorkerRequest struct {
	Name        *string          `json:"name"`
	Role        *string          `json:"role"`
	HourlyRate  *decimal.Decimal `json:"hourlyRate"`
	HoursWorked *decimal.Decimal `json:"hoursWorked"`
	Specialty   *[]string        `json:"specialty"`
	IsPaid      *bool            `json:"isPaid"`
	Projects    *StringList      `json:"projects"`
}

// WorkerResponse salida de un trabajador con sus proyectos resueltos un nivel.
type WorkerResponse struct {
	ID          string            `json:"_id"`
	Name        string            `json:"name"`
	Role        string            `json:"role"`
	HourlyRate  decimal.Decimal   `json:"hourlyRate"`
	HoursWorked decimal.Decimal   `json:"hoursWorked"`
	Specialty   []string          `json:"specialty"`
	IsPaid      bool              `json:"isPaid"`
	Projects    []ProjectResponse `json:"projects"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
