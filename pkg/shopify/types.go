package shopify

import (
	"bytes"
	"encoding/json"
)

// ProductEdge wraps one product of a products connection.
type ProductEdge struct {
	Node Product `json:"node"`
}

type Product struct {
	Title    string            `json:"title"`
	Variants VariantConnection `json:"variants"`
}

type VariantConnection struct {
	Edges []VariantEdge `json:"edges"`
}

type VariantEdge struct {
	Node Variant `json:"node"`
}

type Variant struct {
	Title string `json:"title"`
	Price Amount `json:"price"`
}

type ProductConnection struct {
	Edges []ProductEdge `json:"edges"`
}

// Amount keeps a money value exactly as the API sent it. Older API
// versions return prices as strings, some proxies as numbers.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	default:
		*a = Amount(data)
		return nil
	}
}

// String returns the raw amount text.
func (a Amount) String() string {
	return string(a)
}

// productSearchResponse is the "data" member of the search response.
type productSearchResponse struct {
	Products *ProductConnection `json:"products"`
}
