package services

import (
	"log"

	"orderdesk/internal/models"
	"orderdesk/internal/repositories"
)

// ProductService serves the read-only product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListActive returns the active catalog ordered by name. When the store is
// unreachable it degrades to the built-in fallback list so the ordering page
// stays usable; the second return value reports that degraded mode.
func (s *ProductService) ListActive() ([]models.Product, bool) {
	products, err := s.repo.GetActive()
	if err != nil {
		log.Printf("Product catalog unavailable, serving fallback list: %v", err)
		return models.FallbackProducts(), true
	}
	return products, false
}

// SeedIfEmpty populates an empty catalog with the fallback products. Used at
// startup for local and demo databases.
func (s *ProductService) SeedIfEmpty() error {
	n, err := s.repo.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, p := range models.FallbackProducts() {
		product := p
		if err := s.repo.Create(&product); err != nil {
			return err
		}
	}
	log.Println("Seeded product catalog with starter products")
	return nil
}
