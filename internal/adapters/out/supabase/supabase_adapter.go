package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nurl "net/url"
	"strings"
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/config"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/json_types"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/out"
	"github.com/google/uuid"
)

// SupabaseAdapter lee asignaciones y festivos de la API REST de la base de
// datos alojada. Solo lectura: la escritura es cosa del panel de administración
type SupabaseAdapter struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  out.LoggerPort
}

func NewSupabaseAdapter(cfg *config.Config, logger out.LoggerPort) *SupabaseAdapter {
	return &SupabaseAdapter{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: cfg.Supabase.URL,
		apiKey:  cfg.Supabase.ApiKey,
		logger:  logger,
	}
}

// Filas crudas tal y como las devuelve la API. El horario llega como
// json.RawMessage porque hay datos históricos con cualquier forma
type assignmentRow struct {
	ID             uuid.UUID              `json:"id"`
	AssignmentType string                 `json:"assignment_type"`
	WorkerID       uuid.UUID              `json:"worker_id"`
	WorkerName     string                 `json:"worker_name"`
	UserID         uuid.UUID              `json:"user_id"`
	UserName       string                 `json:"user_name"`
	StartDate      json_types.Date        `json:"start_date"`
	EndDate        json_types.DateOrEmpty `json:"end_date"`
	Schedule       json.RawMessage        `json:"schedule"`
}

type holidayRow struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r assignmentRow) toDomain() domain.Assignment {
	return domain.Assignment{
		ID:         r.ID,
		Type:       domain.AssignmentType(r.AssignmentType),
		WorkerID:   r.WorkerID,
		WorkerName: r.WorkerName,
		UserID:     r.UserID,
		UserName:   r.UserName,
		StartDate:  r.StartDate.Date,
		EndDate:    r.EndDate.Date,
		Schedule:   domain.ParseSchedule(r.Schedule),
	}
}

func (a *SupabaseAdapter) getRows(ctx context.Context, path string, query nurl.Values, result interface{}) error {
	url := fmt.Sprintf("%s/rest/v1/%s?%s", a.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("apikey", a.apiKey)
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (a *SupabaseAdapter) GetAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Assignment, error) {
	a.logger.Info("supabase.assignment.fetch", out.LogFields{
		"assignmentId": assignmentID,
	})

	query := nurl.Values{}
	query.Set("id", "eq."+assignmentID.String())
	query.Set("limit", "1")

	var rows []assignmentRow
	if err := a.getRows(ctx, "assignments", query, &rows); err != nil {
		a.logger.Error("supabase.assignment.fetch_failed", out.LogFields{
			"assignmentId": assignmentID,
			"error":        err.Error(),
		})
		return nil, err
	}

	if len(rows) == 0 {
		a.logger.Error("supabase.assignment.not_found", out.LogFields{
			"assignmentId": assignmentID,
		})
		return nil, fmt.Errorf("assignment not found: %s", assignmentID)
	}

	assignment := rows[0].toDomain()
	return &assignment, nil
}

func (a *SupabaseAdapter) GetAssignmentsByWorker(ctx context.Context, workerID uuid.UUID) ([]domain.Assignment, error) {
	return a.getAssignmentsBy(ctx, "worker_id", workerID)
}

func (a *SupabaseAdapter) GetAssignmentsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Assignment, error) {
	return a.getAssignmentsBy(ctx, "user_id", userID)
}

func (a *SupabaseAdapter) getAssignmentsBy(ctx context.Context, column string, id uuid.UUID) ([]domain.Assignment, error) {
	a.logger.Info("supabase.assignments.fetch", out.LogFields{
		"column": column,
		"id":     id,
	})

	query := nurl.Values{}
	query.Set(column, "eq."+id.String())

	var rows []assignmentRow
	if err := a.getRows(ctx, "assignments", query, &rows); err != nil {
		a.logger.Error("supabase.assignments.fetch_failed", out.LogFields{
			"column": column,
			"id":     id,
			"error":  err.Error(),
		})
		return nil, err
	}

	assignments := make([]domain.Assignment, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, row.toDomain())
	}

	a.logger.Debug("supabase.assignments.fetch_success", out.LogFields{
		"column": column,
		"id":     id,
		"count":  len(assignments),
	})

	return assignments, nil
}

func (a *SupabaseAdapter) GetHolidays(ctx context.Context, years []int) ([]domain.Holiday, error) {
	a.logger.Info("supabase.holidays.fetch", out.LogFields{
		"years": years,
	})

	yearParts := make([]string, 0, len(years))
	for _, year := range years {
		yearParts = append(yearParts, fmt.Sprintf("%d", year))
	}

	query := nurl.Values{}
	query.Set("year", "in.("+strings.Join(yearParts, ",")+")")

	var rows []holidayRow
	if err := a.getRows(ctx, "holidays", query, &rows); err != nil {
		a.logger.Error("supabase.holidays.fetch_failed", out.LogFields{
			"years": years,
			"error": err.Error(),
		})
		return nil, err
	}

	holidays := make([]domain.Holiday, 0, len(rows))
	for _, row := range rows {
		holidays = append(holidays, domain.Holiday{Day: row.Day, Month: row.Month, Year: row.Year})
	}

	return holidays, nil
}
