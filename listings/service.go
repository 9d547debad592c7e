package listings

import (
	"context"
	"errors"
	"time"

	"restaurant-listings-api/models"
	"restaurant-listings-api/store"
	"restaurant-listings-api/upstream"

	"github.com/apex/log"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound is reported when an id is absent from the fetched list.
var ErrNotFound = errors.New("restaurant not found")

// AllFilter is the sentinel value meaning "no filter on this dimension".
const AllFilter = "all"

// Service is the cache-aside reader over the restaurant list: the local
// snapshot wins, an empty or failing store falls through to the upstream
// fetch, and a successful fetch repopulates the snapshot.
type Service struct {
	store    *store.Store
	upstream *upstream.Client
	group    singleflight.Group
}

func NewService(st *store.Store, up *upstream.Client) *Service {
	return &Service{store: st, upstream: up}
}

// Restaurants returns the full list. A store error is treated as a cache
// miss, never surfaced. On a miss the snapshot write happens off the
// request path; write failures are logged and the caller still gets the
// fetched list. Concurrent cold loads share one upstream round trip.
func (s *Service) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	cached, err := s.store.All(ctx)
	if err != nil {
		log.WithError(err).Warn("snapshot read failed, treating as cache miss")
	} else if len(cached) > 0 {
		return cached, nil
	}

	v, err, _ := s.group.Do("restaurants", func() (interface{}, error) {
		list, err := s.upstream.FetchRestaurants(ctx)
		if err != nil {
			return nil, err
		}
		go s.writeSnapshot(list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Restaurant), nil
}

func (s *Service) writeSnapshot(list []models.Restaurant) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.store.ReplaceAll(ctx, list); err != nil {
		log.WithError(err).Warn("snapshot write failed")
		return
	}
	log.WithField("count", len(list)).Info("snapshot updated")
}

// RestaurantByID returns the record with the given id, or ErrNotFound.
func (s *Service) RestaurantByID(ctx context.Context, id int) (*models.Restaurant, error) {
	list, err := s.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

// ByCuisine returns every record matching the cuisine exactly.
func (s *Service) ByCuisine(ctx context.Context, cuisine string) ([]models.Restaurant, error) {
	return s.ByCuisineAndNeighborhood(ctx, cuisine, AllFilter)
}

// ByNeighborhood returns every record matching the neighborhood exactly.
func (s *Service) ByNeighborhood(ctx context.Context, neighborhood string) ([]models.Restaurant, error) {
	return s.ByCuisineAndNeighborhood(ctx, AllFilter, neighborhood)
}

// ByCuisineAndNeighborhood filters on both dimensions. Passing AllFilter
// for either parameter leaves that dimension unfiltered, so ("all", "all")
// returns the list unchanged.
func (s *Service) ByCuisineAndNeighborhood(ctx context.Context, cuisine, neighborhood string) ([]models.Restaurant, error) {
	list, err := s.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	results := list
	if cuisine != AllFilter {
		results = filter(results, func(r models.Restaurant) bool { return r.CuisineType == cuisine })
	}
	if neighborhood != AllFilter {
		results = filter(results, func(r models.Restaurant) bool { return r.Neighborhood == neighborhood })
	}
	return results, nil
}

// Neighborhoods projects the distinct neighborhood values in first-seen order.
func (s *Service) Neighborhoods(ctx context.Context) ([]string, error) {
	list, err := s.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(list, func(r models.Restaurant) string { return r.Neighborhood }), nil
}

// Cuisines projects the distinct cuisine values in first-seen order.
func (s *Service) Cuisines(ctx context.Context) ([]string, error) {
	list, err := s.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(list, func(r models.Restaurant) string { return r.CuisineType }), nil
}

// Refresh forces an upstream fetch and rewrites the snapshot synchronously.
func (s *Service) Refresh(ctx context.Context) ([]models.Restaurant, error) {
	list, err := s.upstream.FetchRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.ReplaceAll(ctx, list); err != nil {
		return nil, err
	}
	log.WithField("count", len(list)).Info("snapshot refreshed")
	return list, nil
}

// ClearCache empties the snapshot store.
func (s *Service) ClearCache(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func filter(list []models.Restaurant, keep func(models.Restaurant) bool) []models.Restaurant {
	out := make([]models.Restaurant, 0, len(list))
	for _, r := range list {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func distinct(list []models.Restaurant, field func(models.Restaurant) string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, r := range list {
		v := field(r)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
