// pkg/transform/transform.go
package transform

import (
	"github.com/saturnines/product-search/pkg/shopify"
)

// VariantRecord is one printable row: a variant with its product's title.
type VariantRecord struct {
	ProductTitle string
	VariantTitle string
	Price        float64
}

// Flatten emits one record per variant, products in input order and
// variants in input order within each product.
func Flatten(edges []shopify.ProductEdge) []VariantRecord {
	total := 0
	for _, p := range edges {
		total += len(p.Node.Variants.Edges)
	}

	records := make([]VariantRecord, 0, total)
	for _, p := range edges {
		for _, v := range p.Node.Variants.Edges {
			records = append(records, VariantRecord{
				ProductTitle: p.Node.Title,
				VariantTitle: v.Node.Title,
				Price:        ParsePrice(v.Node.Price.String()),
			})
		}
	}
	return records
}
