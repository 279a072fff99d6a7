package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para WorkItem.
const (
	WorkItemStatusPending    = "pending"
	WorkItemStatusInProgress = "in_progress"
	WorkItemStatusCompleted  = "completed"
)

// IsValidWorkItemStatus verifica si s es un estado de partida válido.
func IsValidWorkItemStatus(s string) bool {
	switch s {
	case WorkItemStatusPending, WorkItemStatusInProgress, WorkItemStatusCompleted:
		return true
	}
	return false
}

// WorkItem representa una partida de trabajo de una obra.
// ProjectID es obligatorio y lógicamente inmutable durante la vida del documento.
// WorkerID es la asociación opcional singular usada tanto al escribir como al filtrar.
type WorkItem struct {
	ID            string
	Item          string
	CostEstimate  decimal.Decimal
	Status        string // pending, in_progress, completed
	Type          string // tipo de trabajo
	Location      string
	Notes         string // opcional
	DateAdded     time.Time
	DateCompleted *time.Time // opcional
	ProjectID     string
	Project       *Project // poblado en lectura
	WorkerID      string   // opcional
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
