package cli

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/saturnines/product-search/pkg/config"
	"github.com/saturnines/product-search/pkg/errors"
	"github.com/saturnines/product-search/pkg/present"
	"github.com/saturnines/product-search/pkg/shopify"
	"github.com/saturnines/product-search/pkg/transform"
	"github.com/saturnines/product-search/pkg/transport/graphql"
	"go.uber.org/zap"
)

func run(ctx context.Context, out io.Writer, args []string, opts *Options) error {
	// Nothing touches config or the network before the arguments are valid.
	name, err := ReadName(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(args, opts.Getenv)
	if err != nil {
		return err
	}

	runID := opts.NewRunID()
	logger := opts.Logger.With(zap.String("run_id", runID))

	svc, err := shopify.NewService(cfg,
		shopify.WithLogger(logger),
		shopify.WithRequestID(runID),
		shopify.WithClientOptions(graphql.WithHTTPClient(opts.HTTPClient)),
	)
	if err != nil {
		return err
	}

	edges, err := svc.SearchProducts(ctx, name)
	if err != nil {
		return err
	}

	records := transform.Flatten(edges)
	for _, r := range records {
		if math.IsNaN(r.Price) {
			logger.Warn("price is not a number",
				zap.String("product", r.ProductTitle),
				zap.String("variant", r.VariantTitle))
		}
	}

	present.SortByProductTitle(records, opts.Language)
	logger.Debug("printing variants", zap.Int("count", len(records)))
	return present.Print(out, records)
}

func loadConfig(args []string, getenv func(string) string) (*config.Config, error) {
	loader := config.NewDefaultLoader(getenv)

	path, found := ConfigPath(args)
	if !found {
		return loader.FromEnv(getenv)
	}
	if path == "" {
		return nil, errors.WrapError(
			fmt.Errorf("%s requires a file path", ConfigFlag),
			errors.ErrUsage,
			"read arguments",
		)
	}
	return loader.Load(path)
}
