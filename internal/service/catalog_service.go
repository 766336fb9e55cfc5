package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/evgear/store-backend/internal/cache"
	"github.com/evgear/store-backend/internal/domain"
	"github.com/evgear/store-backend/internal/repository"
	"golang.org/x/sync/singleflight"
)

const listingLimit = 50

// CatalogService serves the product listing (cache-aside over Redis)
// and seeds the sample catalog into an empty store.
type CatalogService struct {
	repo  repository.ProductRepository
	cache cache.ProductCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewCatalogService(repo repository.ProductRepository, cache cache.ProductCache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	// Use singleflight so concurrent cold misses trigger one fetch
	v, err, _ := s.sfg.Do("listing", func() (interface{}, error) {

		products, err := s.cache.Get(ctx)
		if err == nil {
			return products, nil // listing is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v \n", err) // log cache error but continue
		}

		products, errList := s.repo.List(ctx, listingLimit)
		if errList != nil {
			return nil, errList
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), products)
			if errSet != nil {
				log.Printf("cache set error: %v \n", errSet)
			}
		}()

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

type SeedResult struct {
	Seeded bool
	Count  int
}

// Seed inserts the sample catalog iff the product collection is empty.
// A non-empty collection is left untouched.
func (s *CatalogService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return &SeedResult{Seeded: false}, nil
	}

	for i := range sampleProducts {
		if _, errInsert := s.repo.Insert(ctx, &sampleProducts[i]); errInsert != nil {
			return nil, fmt.Errorf("failed to insert sample product: %w", errInsert)
		}
	}

	s.invalidateListing()
	return &SeedResult{Seeded: true, Count: len(sampleProducts)}, nil
}

func (s *CatalogService) invalidateListing() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx); err != nil {
		log.Printf("cache invalidate error: %v \n", err)
	}
}

var sampleProducts = []domain.Product{
	{
		Title:       "Level 2 Home Charger",
		Description: "Fast 32A wall-mounted EVSE with WiFi smart scheduling.",
		Price:       499.0,
		Category:    "charging",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1593941707882-a5bba14938c1?q=80&w=1200&auto=format&fit=crop",
	},
	{
		Title:       "Type 2 Charging Cable 7m",
		Description: "Durable T2 to T2 cable, 32A, weatherproof.",
		Price:       129.0,
		Category:    "cables",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1607860108855-0a3d85e9e599?q=80&w=1200&auto=format&fit=crop",
	},
	{
		Title:       "Portable Tire Inflator",
		Description: "Digital compressor with auto-stop and LED light.",
		Price:       59.0,
		Category:    "accessories",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1627228616588-46e0cd85f618?q=80&w=1200&auto=format&fit=crop",
	},
}
