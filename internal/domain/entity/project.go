package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Project.
const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusOnHold     = "on_hold"
	ProjectStatusCompleted  = "completed"
)

// IsValidProjectStatus verifica si s es un estado de proyecto válido.
func IsValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project representa una obra en gestión.
// Owner se resuelve al leer (un nivel de profundidad); si el usuario referenciado
// fue eliminado queda en nil y la referencia se considera huérfana.
type Project struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	Owner       *User // poblado en lectura, nil si el referente no existe
	StartDate   time.Time
	EndDate     time.Time
	Budget      decimal.Decimal
	Status      string // planning, in_progress, on_hold, completed
	Location    string
	Progress    int // 0-100
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
