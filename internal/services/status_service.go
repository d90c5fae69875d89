package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"

	"orderdesk/internal/apperrors"
	"orderdesk/internal/models"
	"orderdesk/internal/repositories"
)

// StatusUpdate is one normalized {id, status} pair.
type StatusUpdate struct {
	ID     uint
	Status models.OrderStatus
}

// UpdateResult reports the outcome of one status update.
type UpdateResult struct {
	ID    uint   `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// StatusService applies status transitions to existing orders, from batch
// pairs, a bulk id selection, or an imported CSV.
type StatusService struct {
	orderRepo repositories.OrderRepository
}

// NewStatusService creates a new StatusService.
func NewStatusService(orderRepo repositories.OrderRepository) *StatusService {
	return &StatusService{
		orderRepo: orderRepo,
	}
}

// Normalize converts either request form into a flat list of {id, status}
// pairs, rejecting unrecognized statuses at the boundary.
func (s *StatusService) Normalize(req models.UpdateStatusRequest) ([]StatusUpdate, error) {
	switch {
	case len(req.BatchUpdates) > 0:
		updates := make([]StatusUpdate, 0, len(req.BatchUpdates))
		for _, u := range req.BatchUpdates {
			if u.ID == 0 {
				return nil, apperrors.Validationf("batch update entry is missing an order id")
			}
			status, err := models.ParseStatus(u.Status)
			if err != nil {
				return nil, apperrors.Validationf("order %d: %v", u.ID, err)
			}
			updates = append(updates, StatusUpdate{ID: u.ID, Status: status})
		}
		return updates, nil

	case len(req.OrderIDs) > 0 && req.Status != "":
		status, err := models.ParseStatus(req.Status)
		if err != nil {
			return nil, apperrors.Validationf("%v", err)
		}
		return lo.Map(req.OrderIDs, func(id uint, _ int) StatusUpdate {
			return StatusUpdate{ID: id, Status: status}
		}), nil

	default:
		return nil, apperrors.Validationf("request must carry either batchUpdates or orderIds with a status")
	}
}

// Apply runs each update independently and reports a per-id outcome. A bad id
// never blocks the other updates from being applied.
func (s *StatusService) Apply(updates []StatusUpdate) []UpdateResult {
	results := make([]UpdateResult, 0, len(updates))
	for _, u := range updates {
		if err := s.orderRepo.UpdateStatus(u.ID, u.Status); err != nil {
			results = append(results, UpdateResult{ID: u.ID, OK: false, Error: err.Error()})
			continue
		}
		results = append(results, UpdateResult{ID: u.ID, OK: true})
	}
	return results
}

// ExportCSV writes every order as an id, order_number, status row.
func (s *StatusService) ExportCSV(w io.Writer) error {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "order_number", "status"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, o := range orders {
		row := []string{strconv.FormatUint(uint64(o.ID), 10), o.OrderNumber, string(o.Status)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseCSV reads an exported-format CSV permissively: rows missing an id or
// status are dropped silently, rows with an unrecognized status come back as
// failed results so the caller can report them without blocking the rest.
func (s *StatusService) ParseCSV(r io.Reader) ([]StatusUpdate, []UpdateResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, apperrors.Validationf("malformed csv: %v", err)
	}

	var updates []StatusUpdate
	var rejected []UpdateResult
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && rec[0] == "id" {
			continue // header row
		}
		if len(rec) < 3 || rec[0] == "" || rec[2] == "" {
			continue
		}
		id, err := strconv.ParseUint(rec[0], 10, 32)
		if err != nil {
			continue
		}
		status, err := models.ParseStatus(rec[2])
		if err != nil {
			rejected = append(rejected, UpdateResult{ID: uint(id), OK: false, Error: err.Error()})
			continue
		}
		updates = append(updates, StatusUpdate{ID: uint(id), Status: status})
	}
	return updates, rejected, nil
}
