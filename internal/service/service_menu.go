package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/adapter"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/models"
)

// placeholderImage is used for catalog entries without an image.
const placeholderImage = "placeholder.jpg"

type menuService struct {
	// upstream is nil when no menu feed is configured.
	upstream adapter.MenuAdapter
	catalog  CatalogService

	logger *logger.Logger
}

// NewMenuService returns a MenuService that prefers upstream and falls back
// to the local catalog. upstream may be nil.
func NewMenuService(upstream adapter.MenuAdapter, catalog CatalogService, logger *logger.Logger) MenuService {
	return &menuService{
		upstream: upstream,
		catalog:  catalog,
		logger:   logger,
	}
}

// GetMenu returns the upstream menu document verbatim when it is reachable,
// otherwise a {"data": [...]} document built from the catalog.
func (s *menuService) GetMenu(ctx context.Context) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if s.upstream != nil {
		document, err := s.upstream.FetchMenu(ctx)
		if err == nil {
			return document, nil
		}
		log.Warn().Err(err).Msg("upstream menu unavailable, building menu from catalog")
	}

	products, err := s.catalog.ListProducts(ctx, models.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMenuUnavailable, err)
	}

	menu := models.Menu{Data: make([]models.MenuItem, 0, len(products))}
	for _, p := range products {
		image := p.ImageURL
		if image == "" {
			image = placeholderImage
		}
		menu.Data = append(menu.Data, models.MenuItem{
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Image:       image,
		})
	}

	document, err := json.Marshal(menu)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMenuUnavailable, err)
	}
	return document, nil
}
