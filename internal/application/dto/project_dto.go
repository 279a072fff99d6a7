package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada para crear un proyecto. El owner no viene en el
// body: se atribuye al actor de la petición.
type CreateProjectRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	Budget      decimal.Decimal `json:"budget"`
	Status      string          `json:"status"`
	Location    string          `json:"location"`
	Progress    *int            `json:"progress"`
}

// UpdateProjectRequest entrada para actualización parcial (solo claves presentes).
type UpdateProjectRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Budget      *decimal.Decimal `json:"budget"`
	Status      *string          `json:"status"`
	Location    *string          `json:"location"`
	Progress    *int             `json:"progress"`
}

// ProjectResponse salida de un proyecto. Owner viene resuelto un nivel; si el
// usuario referenciado ya no existe se omite y queda solo ownerId.
type ProjectResponse struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	OwnerID     string          `json:"ownerId"`
	Owner       *UserResponse   `json:"owner,omitempty"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	Budget      decimal.Decimal `json:"budget"`
	Status      string          `json:"status"`
	Location    string          `json:"location"`
	Progress    int             `json:"progress"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
