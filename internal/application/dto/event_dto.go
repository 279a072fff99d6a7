package dto

import "time"

// CreateEventRequest entrada para crear un evento. Workers acepta string o arreglo.
type CreateEventRequest struct {
	Title            string     `json:"title"`
	Start            *time.Time `json:"start"`
	End              *time.Time `json:"end"`
	Project          string     `json:"project"`
	Location         string     `json:"location"`
	Workers          StringList `json:"workers"`
	WorkType         string     `json:"workType"`
	Description      string     `json:"description"`
	TravelTimeBefore *int       `json:"travelTimeBefore"`
	TravelTimeAfter  *int       `json:"travelTimeAfter"`
}

// UpdateEventRequest entrada para actualización parcial (solo claves presentes).
// El proyecto no se puede cambiar: el evento pertenece a una obra de por vida.
type UpdateEventRequest struct {
	Title            *string     `json:"title"`
	Start            *time.Time  `json:"start"`
	End              *time.Time  `json:"end"`
	Location         *string     `json:"location"`
	Workers          *StringList `json:"workers"`
	WorkType         *string     `json:"workType"`
	Description      *string     `json:"description"`
	TravelTimeBefore *int        `json:"travelTimeBefore"`
	TravelTimeAfter  *int        `json:"travelTimeAfter"`
}

// EventResponse salida de un evento con proyecto y trabajadores resueltos un nivel.
type EventResponse struct {
	ID               string           `json:"_id"`
	Title            string           `json:"title"`
	Start            time.Time        `json:"start"`
	End              time.Time        `json:"end"`
	ProjectID        string           `json:"projectId"`
	Project          *ProjectResponse `json:"project,omitempty"`
	Location         string           `json:"location"`
	Workers          []WorkerResponse `json:"workers"`
	WorkType         string           `json:"workType"`
	Description      string           `json:"description,omitempty"`
	TravelTimeBefore *int             `json:"travelTimeBefore,omitempty"`
	TravelTimeAfter  *int             `json:"travelTimeAfter,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}
