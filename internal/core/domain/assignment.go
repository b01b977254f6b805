package domain

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentType string

const (
	AssignmentTypeLaborables    AssignmentType = "laborables"
	AssignmentTypeFestivos      AssignmentType = "festivos"
	AssignmentTypeFlexible      AssignmentType = "flexible"
	AssignmentTypeCompleta      AssignmentType = "completa"
	AssignmentTypeDaily         AssignmentType = "daily"
	AssignmentTypePersonalizada AssignmentType = "personalizada"
)

// Viewpoint indica desde qué lado se expande la asignación:
// la vista de la trabajadora muestra al usuario como contraparte y viceversa
type Viewpoint string

const (
	ViewpointWorker Viewpoint = "worker"
	ViewpointUser   Viewpoint = "user"
)

type Assignment struct {
	ID         uuid.UUID
	Type       AssignmentType
	WorkerID   uuid.UUID
	WorkerName string
	UserID     uuid.UUID
	UserName   string
	StartDate  time.Time
	// EndDate cero significa asignación sin fecha de fin
	EndDate  time.Time
	Schedule Schedule
}

// ActiveOn comprueba si la fecha cae dentro de [StartDate, EndDate], ambos inclusive.
// Se comparan solo los días naturales, la hora se ignora
func (a Assignment) ActiveOn(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	if !a.StartDate.IsZero() {
		start := time.Date(a.StartDate.Year(), a.StartDate.Month(), a.StartDate.Day(), 0, 0, 0, 0, date.Location())
		if day.Before(start) {
			return false
		}
	}

	if !a.EndDate.IsZero() {
		end := time.Date(a.EndDate.Year(), a.EndDate.Month(), a.EndDate.Day(), 0, 0, 0, 0, date.Location())
		if day.After(end) {
			return false
		}
	}

	return true
}

// Counterpart devuelve el identificador y nombre de la contraparte según la vista
func (a Assignment) Counterpart(viewpoint Viewpoint) (uuid.UUID, string) {
	if viewpoint == ViewpointUser {
		return a.WorkerID, a.WorkerName
	}
	return a.UserID, a.UserName
}
