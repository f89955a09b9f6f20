package cli

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/saturnines/product-search/pkg/errors"
	"github.com/saturnines/product-search/pkg/present"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Options carries everything the command reads from the outside world.
type Options struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *zap.Logger
	Getenv   func(string) string
	Language language.Tag
	// HTTPClient replaces the default client, mostly for tests.
	HTTPClient *http.Client
	NewRunID   func() string
}

func (o *Options) setDefaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.Language == language.Und {
		o.Language = present.DefaultLanguage
	}
	if o.NewRunID == nil {
		o.NewRunID = uuid.NewString
	}
}

// NewRootCommand builds the product-search command. Flag parsing is left
// to ReadName so that values are taken verbatim and unknown flags ignored.
func NewRootCommand(opts *Options) *cobra.Command {
	opts.setDefaults()

	cmd := &cobra.Command{
		Use:   "product-search --name <product> [--config <file>]",
		Short: "Search store products by name and list their variants",
		Long: `Queries the store's Admin GraphQL API for up to 10 products matching
the given name and prints every variant, sorted by product title:

  <product> - <variant> - price $<price>

The store is configured through STORE_URL, API_VERSION and ADMIN_TOKEN
(a .env file in the working directory is honoured), or through a YAML
file passed with --config.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				// help is printed, but a run without --name is still a usage error
				if err := cmd.Help(); err != nil {
					return err
				}
			}
			return run(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	return cmd
}

// Execute runs the command once and is the only place errors are logged.
// It returns the process exit status.
func Execute(ctx context.Context, args []string, opts Options) int {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	cmd := NewRootCommand(&opts)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return errors.ExitOK
	}

	kind := errors.KindOf(err)
	opts.Logger.Error("product search failed",
		zap.String("kind", kind.String()),
		zap.Error(err),
	)
	return errors.ExitCode(err)
}
