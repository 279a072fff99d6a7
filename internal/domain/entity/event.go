package entity

import "time"

// Event representa un evento agendado de una obra.
// Invariante: End siempre posterior a Start.
type Event struct {
	ID               string
	Title            string
	Start            time.Time
	End              time.Time
	ProjectID        string
	Project          *Project // poblado en lectura
	Location         string
	WorkerIDs        []string
	Workers          []*Worker // poblado en lectura; referencias huérfanas se omiten
	WorkType         string
	Description      string // opcional
	TravelTimeBefore *int   // minutos, opcional
	TravelTimeAfter  *int   // minutos, opcional
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
