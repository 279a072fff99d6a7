package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkItemRequest entrada para crear una partida de trabajo.
type CreateWorkItemRequest struct {
	Project       string           `json:"project"`
	Item          string           `json:"item"`
	CostEstimate  *decimal.Decimal `json:"costEstimate"`
	Status        string           `json:"status"`
	Type          string           `json:"type"`
	Location      string           `json:"location"`
	Notes         string           `json:"notes"`
	DateAdded     *time.Time       `json:"dateAdded"`
	DateCompleted *time.Time       `json:"dateCompleted"`
	Worker        string           `json:"worker"`
}

// UpdateWorkItemRequest entrada para actualización parcial (solo claves presentes).
// El proyecto no se puede cambiar: la partida pertenece a una obra de por vida.
type UpdateWorkItemRequest struct {
	Item          *string          `json:"item"`
	CostEstimate  *decimal.Decimal `json:"costEstimate"`
	Status        *string          `json:"status"`
	Type          *string          `json:"type"`
	Location      *string          `json:"location"`
	Notes         *string          `json:"notes"`
	DateCompleted *time.Time       `json:"dateCompleted"`
	Worker        *string          `json:"worker"`
}

// WorkItemResponse salida de una partida con su proyecto resuelto un nivel.
type WorkItemResponse struct {
	ID            string           `json:"_id"`
	Item          string           `json:"item"`
	CostEstimate  decimal.Decimal  `json:"costEstimate"`
	Status        string           `json:"status"`
	Type          string           `json:"type"`
	Location      string           `json:"location"`
	Notes         string           `json:"notes,omitempty"`
	DateAdded     time.Time        `json:"dateAdded"`
	DateCompleted *time.Time       `json:"dateCompleted,omitempty"`
	ProjectID     string           `json:"projectId"`
	Project       *ProjectResponse `json:"project,omitempty"`
	Worker        string           `json:"worker,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}
