package shopify

import "fmt"

// Page sizes of the search. There is no pagination past the first page.
const (
	ProductLimit = 10
	VariantLimit = 10
)

// ProductSearchQuery finds products matching $name and lists their variants.
var ProductSearchQuery = fmt.Sprintf(`
  query($name: String!) {
    products(first: %d, query: $name) {
      edges {
        node {
          title
          variants(first: %d) {
            edges {
              node {
                title
                price
              }
            }
          }
        }
      }
    }
  }
`, ProductLimit, VariantLimit)
