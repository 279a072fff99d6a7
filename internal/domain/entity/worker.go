package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker representa un trabajador asignable a obras y eventos.
type Worker struct {
	ID          string
	Name        string
	Role        string
	HourlyRate  decimal.Decimal
	HoursWorked decimal.Decimal
	Specialty   []string // subconjunto de WorkTypes
	IsPaid      bool
	ProjectIDs  []string
	Projects    []*Project // poblado en lectura; referencias huérfanas se omiten
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
