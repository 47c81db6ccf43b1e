package models

import (
	"encoding/json"
	"time"
)

// OrquestService is a workplace ("servicio") configured in Orquest.
type OrquestService struct {
	ID           string     `json:"id"`
	FranchiseeID string     `json:"franchisee_id"`
	Name         string     `json:"nombre"`
	Zone         string     `json:"zona_horaria"`
	Latitude     *float64   `json:"latitud,omitempty"`
	Longitude    *float64   `json:"longitud,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type OrquestEmployee struct {
	ID           string          `json:"id"`
	ServiceID    string          `json:"service_id"`
	FranchiseeID string          `json:"franchisee_id"`
	FirstName    *string         `json:"nombre"`
	LastName     *string         `json:"apellidos"`
	Email        *string         `json:"email"`
	Phone        *string         `json:"telefono"`
	Position     *string         `json:"puesto"`
	Department   *string         `json:"departamento"`
	HireDate     *string         `json:"fecha_alta"`
	LeaveDate    *string         `json:"fecha_baja"`
	Status       *string         `json:"estado"`
	RawData      json.RawMessage `json:"datos_completos,omitempty"`
	UpdatedAt    *time.Time      `json:"updated_at"`
}

// OrquestServiceUpdate carries the editable columns of a service; nil fields are left untouched.
type OrquestServiceUpdate struct {
	Name      *string  `json:"nombre,omitempty"`
	Zone      *string  `json:"zona_horaria,omitempty"`
	Latitude  *float64 `json:"latitud,omitempty"`
	Longitude *float64 `json:"longitud,omitempty"`
}
