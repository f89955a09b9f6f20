package shopify

import (
	"context"
	"fmt"
	"strings"

	"github.com/saturnines/product-search/pkg/auth"
	"github.com/saturnines/product-search/pkg/config"
	"github.com/saturnines/product-search/pkg/errors"
	"github.com/saturnines/product-search/pkg/transport/graphql"
	"go.uber.org/zap"
)

// RequestIDHeader carries the run id so store-side logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// Service talks to the Admin GraphQL API of one store.
type Service struct {
	client    *graphql.Client
	logger    *zap.Logger
	requestID string
}

// Option configures the Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	logger        *zap.Logger
	requestID     string
	clientOptions []graphql.ClientOption
}

// WithLogger sets the logger used by the service and its client.
func WithLogger(logger *zap.Logger) Option {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// WithRequestID sends id in the X-Request-ID header.
func WithRequestID(id string) Option {
	return func(o *serviceOptions) {
		o.requestID = id
	}
}

// WithClientOptions passes options through to the GraphQL client.
func WithClientOptions(opts ...graphql.ClientOption) Option {
	return func(o *serviceOptions) {
		o.clientOptions = append(o.clientOptions, opts...)
	}
}

// Endpoint builds the Admin GraphQL URL for a store.
func Endpoint(store config.Store) string {
	return fmt.Sprintf("%s/admin/api/%s/graphql.json", strings.TrimRight(store.URL, "/"), store.APIVersion)
}

// NewService builds a Service from an already validated config.
func NewService(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		return nil, errors.WrapError(fmt.Errorf("config is nil"), errors.ErrConfiguration, "new shopify service")
	}

	o := serviceOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	handler, err := auth.CreateHandler(cfg.Auth)
	if err != nil {
		return nil, err
	}

	clientOpts := append([]graphql.ClientOption{
		graphql.WithAuthHandler(handler),
		graphql.WithLogger(o.logger),
	}, o.clientOptions...)

	return &Service{
		client:    graphql.NewClient(Endpoint(cfg.Store), clientOpts...),
		logger:    o.logger,
		requestID: o.requestID,
	}, nil
}

// SearchProducts runs the product search once and returns the product
// edges in the order the store sent them.
func (s *Service) SearchProducts(ctx context.Context, name string) ([]ProductEdge, error) {
	opts := []graphql.BuilderOption{graphql.WithVariable("name", name)}
	if s.requestID != "" {
		opts = append(opts, graphql.WithHeader(RequestIDHeader, s.requestID))
	}
	builder := graphql.NewBuilder(ProductSearchQuery, opts...)

	s.logger.Debug("searching products",
		zap.String("name", name),
		zap.String("endpoint", s.client.Endpoint()))

	var resp productSearchResponse
	if err := s.client.Execute(ctx, builder, &resp); err != nil {
		// data sent alongside errors[] is decoded but never printed
		if errors.Is(err, errors.ErrGraphQL) && resp.Products != nil {
			s.logger.Debug("discarding partial data",
				zap.Int("count", len(resp.Products.Edges)),
				zap.Error(err))
		}
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	if resp.Products == nil {
		return nil, errors.WrapError(
			fmt.Errorf("response has no data.products"),
			errors.ErrDecode,
			"fetch products",
		)
	}

	s.logger.Debug("products fetched", zap.Int("count", len(resp.Products.Edges)))
	if resp.Products.Edges == nil {
		return []ProductEdge{}, nil
	}
	return resp.Products.Edges, nil
}
