package present

import (
	"sort"

	"github.com/saturnines/product-search/pkg/transform"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage drives collation when the caller has no preference.
var DefaultLanguage = language.English

// SortByProductTitle orders records ascending by product title using the
// collation rules of tag. The sort is stable, so variants of one product
// stay in the order the store returned them.
func SortByProductTitle(records []transform.VariantRecord, tag language.Tag) {
	c := collate.New(tag)
	sort.SliceStable(records, func(i, j int) bool {
		return c.CompareString(records[i].ProductTitle, records[j].ProductTitle) < 0
	})
}
