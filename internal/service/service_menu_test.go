package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/models"
)

type stubMenuAdapter struct {
	document json.RawMessage
	err      error
}

func (s stubMenuAdapter) FetchMenu(context.Context) (json.RawMessage, error) {
	return s.document, s.err
}

func TestMenuService_PrefersUpstream(t *testing.T) {
	catalog, _ := newTestCatalog(t)
	upstream := stubMenuAdapter{document: json.RawMessage(`{"data":[{"Nombre ":"Remote"}]}`)}

	got, err := NewMenuService(upstream, catalog, logger.Nop()).GetMenu(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"Nombre ":"Remote"}]}`, string(got))
}

func TestMenuService_FallsBackToCatalog(t *testing.T) {
	catalog, products := newTestCatalog(t)
	products.EXPECT().ListProducts(gomock.Any(), models.ProductFilter{}).Return([]models.Product{
		{ID: 1, Name: "Chocolate Cookie", Description: "Delicious", Price: 2500, ImageURL: "/img/cookie1.jpg"},
		{ID: 2, Name: "Plain Cookie", Description: "Plain", Price: 1000},
	}, nil).Times(2)

	for name, upstream := range map[string]*stubMenuAdapter{
		"upstream fails":   {err: errors.New("timeout")},
		"upstream not set": nil,
	} {
		t.Run(name, func(t *testing.T) {
			var svc MenuService
			if upstream == nil {
				svc = NewMenuService(nil, catalog, logger.Nop())
			} else {
				svc = NewMenuService(*upstream, catalog, logger.Nop())
			}

			got, err := svc.GetMenu(context.Background())
			require.NoError(t, err)

			var menu models.Menu
			require.NoError(t, json.Unmarshal(got, &menu))
			require.Len(t, menu.Data, 2)
			assert.Equal(t, "/img/cookie1.jpg", menu.Data[0].Image)
			assert.Equal(t, placeholderImage, menu.Data[1].Image)
		})
	}
}

func TestMenuService_CatalogFailure(t *testing.T) {
	catalog, products := newTestCatalog(t)
	products.EXPECT().ListProducts(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := NewMenuService(nil, catalog, logger.Nop()).GetMenu(context.Background())

	assert.ErrorIs(t, err, ErrMenuUnavailable)
}
