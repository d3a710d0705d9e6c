package router

import (
	"context"
	"errors"
	"testing"

	"coffee-fund-bot/internal/models"
)

// fakeCatalog serves products from a map and can be forced to fail.
type fakeCatalog struct {
	products map[string]models.Product
	err      error
}

func (f *fakeCatalog) GetProduct(_ context.Context, identifier string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if product, ok := f.products[identifier]; ok {
		return &product, nil
	}
	return nil, nil
}

func (f *fakeCatalog) GetProducts(context.Context) ([]models.Product, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) ReplaceProducts(context.Context, []models.Product) error {
	return errors.New("not implemented")
}

func TestRoute_Commands(t *testing.T) {
	router := New(&fakeCatalog{})

	action, err := router.Route(context.Background(), "/list")
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if cmd, ok := action.(models.CommandAction); !ok || cmd.Command != models.ListAvailableItems {
		t.Errorf("Expected ListAvailableItems, got %+v", action)
	}

	action, err = router.Route(context.Background(), "/stats")
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if cmd, ok := action.(models.CommandAction); !ok || cmd.Command != models.GetCurrentStats {
		t.Errorf("Expected GetCurrentStats, got %+v", action)
	}
}

func TestRoute_CommandBeatsProduct(t *testing.T) {
	// A product named "list" must not shadow the /list command.
	router := New(&fakeCatalog{products: map[string]models.Product{
		"list": {Identifier: "list", Name: "The List", Price: 100},
	}})

	action, err := router.Route(context.Background(), "/list")
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if _, ok := action.(models.CommandAction); !ok {
		t.Errorf("Expected a command, got %+v", action)
	}
}

func TestRoute_ProductWithAndWithoutSlash(t *testing.T) {
	product := models.Product{Identifier: "coffee", Name: "Coffee", Price: 120}
	router := New(&fakeCatalog{products: map[string]models.Product{"coffee": product}})

	for _, text := range []string{"/coffee", "coffee"} {
		action, err := router.Route(context.Background(), text)
		if err != nil {
			t.Fatalf("Route(%q) failed: %v", text, err)
		}
		pa, ok := action.(models.ProductAction)
		if !ok {
			t.Fatalf("Route(%q): expected a product action, got %+v", text, action)
		}
		if pa.Product != product {
			t.Errorf("Route(%q): unexpected product %+v", text, pa.Product)
		}
	}
}

func TestRoute_ProductBeatsAmount(t *testing.T) {
	// "1.20" parses as an amount but an identically named product wins.
	product := models.Product{Identifier: "1.20", Name: "Oddly Named", Price: 60}
	router := New(&fakeCatalog{products: map[string]models.Product{"1.20": product}})

	action, err := router.Route(context.Background(), "1.20")
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if _, ok := action.(models.ProductAction); !ok {
		t.Errorf("Expected a product action, got %+v", action)
	}
}

func TestRoute_Amount(t *testing.T) {
	router := New(&fakeCatalog{})

	action, err := router.Route(context.Background(), "1.20")
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	aa, ok := action.(models.AmountAction)
	if !ok {
		t.Fatalf("Expected an amount action, got %+v", action)
	}
	if aa.Amount != 120 {
		t.Errorf("Expected amount 120, got %d", aa.Amount)
	}
}

func TestRoute_NoMatch(t *testing.T) {
	router := New(&fakeCatalog{})

	action, err := router.Route(context.Background(), "Foo")
	if err != nil {
		t.Fatalf("Route failed: %v", err)
	}
	if action != nil {
		t.Errorf("Expected no action, got %+v", action)
	}
}

func TestRoute_CatalogErrorSurfaces(t *testing.T) {
	router := New(&fakeCatalog{err: errors.New("catalog down")})

	action, err := router.Route(context.Background(), "1.20")
	if err == nil {
		t.Fatalf("Expected an error, got action %+v", action)
	}
}
