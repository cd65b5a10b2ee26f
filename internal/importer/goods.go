package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

type StockWriter interface {
	Set(ctx context.Context, productID string, quantity int) error
}

type CategoryWriter interface {
	Ensure(ctx context.Context, name string) (*domain.Category, error)
}

// GoodsImporter loads a goods JSON file and upserts products together with
// their stock. Stock levels are overwritten with the quantities in the file.
type GoodsImporter struct {
	reader     io.Reader
	products   ProductWriter
	stock      StockWriter
	categories CategoryWriter
}

func NewGoodsImporter(r io.Reader, products ProductWriter, stock StockWriter, categories CategoryWriter) *GoodsImporter {
	return &GoodsImporter{reader: r, products: products, stock: stock, categories: categories}
}

type goodsEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
}

// Run parses the goods file and writes products, categories and stock.
// Returns the number of imported products.
func (i *GoodsImporter) Run(ctx context.Context) (int, error) {
	var entries []goodsEntry
	if err := json.NewDecoder(i.reader).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode goods file: %w", err)
	}

	imported := 0
	for _, e := range entries {
		if e.Name == "" {
			return imported, fmt.Errorf("goods entry %d: name required", imported)
		}
		if e.PriceCents < 0 {
			return imported, fmt.Errorf("goods entry %q: price must not be negative", e.Name)
		}
		if e.Quantity < 0 {
			return imported, fmt.Errorf("goods entry %q: quantity must not be negative", e.Name)
		}
		currency := e.Currency
		if currency == "" {
			currency = "USD"
		}

		var categoryID *string
		if e.Category != "" {
			cat, err := i.categories.Ensure(ctx, e.Category)
			if err != nil {
				return imported, fmt.Errorf("ensure category %q: %w", e.Category, err)
			}
			categoryID = &cat.ID
		}

		p, err := i.products.Upsert(ctx, domain.Product{
			Name:        e.Name,
			Description: e.Description,
			PriceCents:  e.PriceCents,
			Currency:    currency,
			CategoryID:  categoryID,
		})
		if err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", e.Name, err)
		}
		if err := i.stock.Set(ctx, p.ID, e.Quantity); err != nil {
			return imported, fmt.Errorf("set stock for %q: %w", e.Name, err)
		}
		imported++
	}
	return imported, nil
}
