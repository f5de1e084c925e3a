package repositories

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rendyak/karirku/internal/entities"
)

type vacancyRepository interface {
	GetAll(ctx context.Context) ([]entities.Vacancy, error)
	GetByID(ctx context.Context, id int) (*entities.Vacancy, error)
}

const catalogCacheKey = "catalog"

// CachedVacancies caches the static catalog data. The catalog is read-only
// after seeding, so staleness only matters across process restarts; applicant
// counters are derived elsewhere and are never cached here.
type CachedVacancies struct {
	repo  vacancyRepository
	cache *gocache.Cache
}

func NewCachedVacancies(repo vacancyRepository) *CachedVacancies {
	return &CachedVacancies{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedVacancies) GetAll(ctx context.Context) ([]entities.Vacancy, error) {
	if value, found := c.cache.Get(catalogCacheKey); found {
		return value.([]entities.Vacancy), nil
	}

	vacancies, err := c.repo.GetAll(ctx)
	if err == nil {
		c.cache.Set(catalogCacheKey, vacancies, gocache.DefaultExpiration)
	}
	return vacancies, err
}

func (c *CachedVacancies) GetByID(ctx context.Context, id int) (*entities.Vacancy, error) {
	key := strconv.Itoa(id)
	if value, found := c.cache.Get(key); found {
		return value.(*entities.Vacancy), nil
	}

	vacancy, err := c.repo.GetByID(ctx, id)
	if vacancy != nil {
		c.cache.Set(key, vacancy, gocache.DefaultExpiration)
	}
	return vacancy, err
}
