package services

import (
	"orderdesk/internal/models"
	"orderdesk/internal/reports"
	"orderdesk/internal/repositories"
)

// ReportService loads the full order collection and runs the pure projection
// engine over it. Every call recomputes from the current store state.
type ReportService struct {
	orderRepo repositories.OrderRepository
}

// NewReportService creates a new ReportService.
func NewReportService(orderRepo repositories.OrderRepository) *ReportService {
	return &ReportService{
		orderRepo: orderRepo,
	}
}

func (s *ReportService) load() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// Detail builds the per-order detail projection.
func (s *ReportService) Detail(search string, dir reports.Direction) ([]reports.DetailRow, error) {
	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	return reports.Detail(orders, search, dir), nil
}

// ByProduct builds the per-product totals projection.
func (s *ReportService) ByProduct(search string, field reports.SortField, dir reports.Direction) ([]reports.ProductRow, error) {
	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	return reports.ByProduct(orders, search, field, dir), nil
}

// ByPhoneProduct builds the per-(phone, product) totals projection.
func (s *ReportService) ByPhoneProduct(search string, field reports.SortField, dir reports.Direction) ([]reports.PhoneProductRow, error) {
	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	return reports.ByPhoneProduct(orders, search, field, dir), nil
}

// Items builds the flattened per-line-item projection.
func (s *ReportService) Items(search string, field reports.SortField, dir reports.Direction) ([]reports.ItemRow, error) {
	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	return reports.Items(orders, search, field, dir), nil
}

// StatusLookup builds the public order-status view.
func (s *ReportService) StatusLookup(search string) ([]reports.LookupRow, error) {
	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	return reports.StatusLookup(orders, search), nil
}
