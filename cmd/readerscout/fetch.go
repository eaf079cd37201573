package main

import (
	"context"
	"fmt"
	"io"
	"readerscout/internal/adapters/output"
	"readerscout/internal/adapters/util"
	"readerscout/internal/config"
	"readerscout/internal/core/domain/models"
	"readerscout/internal/core/domain/ports"
	"readerscout/internal/core/service"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type sourceFactory func(cfg *config.Config, log zerolog.Logger) ports.DocumentSource

type fetchOptions struct {
	fetch        models.FetchOptions
	days         int
	format       output.Format
	plainPreview bool
	quiet        bool
}

func newFetchCommand(stdout, stderr io.Writer, newSource sourceFactory) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "readerscout",
		Short: "Fetch documents from Readwise Reader",
		Long: `readerscout lists documents saved in Readwise Reader.

The API key is read from READWISE_API_KEY (a .env file in the working
directory is honored). Every flag can also be set through the environment
with the READERSCOUT_ prefix, e.g. READERSCOUT_LIMIT=25.`,
		Example: `  readerscout                      # recent documents
  readerscout --category tweet     # only tweets
  readerscout --limit 5            # at most 5 results
  readerscout --with-content       # include full HTML content
  readerscout --days 7 --json      # last week as raw JSON`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			opts, err := optionsFromViper(v, time.Now())
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := util.NewLogger(stderr, v.GetString("log-level"))
			return Run(cmd.Context(), opts, stdout, newSource(cfg, log), log)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.String("category", "", "filter by document category ("+models.ChoiceList(models.Categories)+")")
	flags.String("location", "", "filter by document location ("+models.ChoiceList(models.Locations)+")")
	flags.Int("days", 0, "only fetch documents updated in the last N days")
	flags.Int("limit", 10, "maximum number of documents to fetch, 0 for no limit")
	flags.Bool("with-content", false, "include full HTML content")
	flags.Bool("json", false, "output raw JSON instead of formatted text (same as --output json)")
	flags.String("output", string(output.FormatText), "output format: text, json or yaml")
	flags.Bool("plain-preview", false, "strip HTML tags from the content preview")
	flags.BoolP("quiet", "q", false, "suppress progress messages")
	flags.String("log-level", "info", "diagnostic log level (debug, info, warn, error)")

	v.SetEnvPrefix("READERSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func optionsFromViper(v *viper.Viper, now time.Time) (fetchOptions, error) {
	var opts fetchOptions

	category, err := models.ParseCategory(v.GetString("category"))
	if err != nil {
		return opts, err
	}
	location, err := models.ParseLocation(v.GetString("location"))
	if err != nil {
		return opts, err
	}

	format, err := output.ParseFormat(v.GetString("output"))
	if err != nil {
		return opts, err
	}
	asJSON, err := boolOption(v, "json")
	if err != nil {
		return opts, err
	}
	if asJSON {
		format = output.FormatJSON
	}

	limit, err := intOption(v, "limit")
	if err != nil {
		return opts, err
	}
	if limit < 0 {
		return opts, fmt.Errorf("%w: limit cannot be negative", models.ErrInvalidFlag)
	}
	days, err := intOption(v, "days")
	if err != nil {
		return opts, err
	}
	if days < 0 {
		return opts, fmt.Errorf("%w: days cannot be negative", models.ErrInvalidFlag)
	}

	withContent, err := boolOption(v, "with-content")
	if err != nil {
		return opts, err
	}
	plainPreview, err := boolOption(v, "plain-preview")
	if err != nil {
		return opts, err
	}
	quiet, err := boolOption(v, "quiet")
	if err != nil {
		return opts, err
	}

	opts = fetchOptions{
		fetch: models.FetchOptions{
			ListFilter: models.ListFilter{
				Category:    category,
				Location:    location,
				WithContent: withContent,
			},
			Limit: limit,
		},
		days:         days,
		format:       format,
		plainPreview: plainPreview,
		quiet:        quiet,
	}
	if days > 0 {
		opts.fetch.UpdatedAfter = now.AddDate(0, 0, -days)
	}
	return opts, nil
}

// intOption reads key strictly. Environment values arrive as raw strings and
// must not silently collapse to zero.
func intOption(v *viper.Viper, key string) (int, error) {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", models.ErrInvalidFlag, key, v.GetString(key))
	}
	return n, nil
}

func boolOption(v *viper.Viper, key string) (bool, error) {
	b, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		return false, fmt.Errorf("%w: %s %q is not a boolean", models.ErrInvalidFlag, key, v.GetString(key))
	}
	return b, nil
}

// Run verifies the token, fetches and prints documents. Exposed for testing.
func Run(ctx context.Context, opts fetchOptions, out io.Writer, src ports.DocumentSource, log zerolog.Logger) error {
	progress := out
	if opts.quiet {
		progress = io.Discard
	}

	fmt.Fprintln(progress, "Verifying API token...")
	ok, err := src.VerifyToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}
	if !ok {
		return models.ErrInvalidToken
	}
	fmt.Fprint(progress, "Token valid!\n\n")

	fmt.Fprintln(progress, "Fetching documents...")
	if opts.fetch.Category != "" {
		fmt.Fprintf(progress, "  Category: %s\n", opts.fetch.Category)
	}
	if opts.fetch.Location != "" {
		fmt.Fprintf(progress, "  Location: %s\n", opts.fetch.Location)
	}
	if opts.days > 0 {
		fmt.Fprintf(progress, "  From last %d days\n", opts.days)
	}
	fmt.Fprintln(progress)

	log.Debug().
		Str("category", string(opts.fetch.Category)).
		Str("location", string(opts.fetch.Location)).
		Time("updated_after", opts.fetch.UpdatedAfter).
		Int("limit", opts.fetch.Limit).
		Msg("Starting fetch")

	docs, err := service.NewFetcher(src, log).Fetch(ctx, opts.fetch)
	if err != nil {
		return err
	}

	fmt.Fprintf(progress, "Found %d documents\n\n", len(docs))

	return output.NewWriter(out, opts.format, output.Formatter{PlainPreview: opts.plainPreview}).Write(docs)
}
