package main

import (
	"fmt"

	"github.com/fwojciec/obfeed"
	"github.com/fwojciec/obfeed/dateparse"
	"github.com/fwojciec/obfeed/feeds"
	"github.com/fwojciec/obfeed/fs"
	"github.com/fwojciec/obfeed/goquery"
	obfeedhttp "github.com/fwojciec/obfeed/http"
	"github.com/fwojciec/obfeed/pipeline"
	obfeedslog "github.com/fwojciec/obfeed/slog"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	cfg, err := deps.Configs.Load(deps.Ctx, c.Config)
	if err != nil {
		if obfeed.ErrorCode(err) == obfeed.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "Hint: create %s listing the blogs to convert, or pass --config\n", c.Config)
		}
		return err
	}
	c.apply(cfg)

	format := obfeed.FormatAtom
	if cfg.Format != "" {
		if format, err = obfeed.ParseFormat(string(cfg.Format)); err != nil {
			return err
		}
	}

	dates, err := dateparse.NewParserIn(cfg.Timezone)
	if err != nil {
		return err
	}

	fetcher := obfeedslog.NewLoggingFetcher(
		obfeedhttp.NewFetcher(
			obfeedhttp.WithUserAgent(cfg.UserAgent),
			obfeedhttp.WithTimeout(c.Timeout),
		),
		deps.Logger,
	)
	defer fetcher.Close()

	runner := &pipeline.Runner{
		Fetcher:    fetcher,
		Extractor:  obfeedslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger),
		Normalizer: pipeline.NewNormalizer(dates),
		Serializer: feeds.NewSerializer(),
		Store:      obfeedslog.NewLoggingFeedStore(fs.NewFeedStore(cfg.OutputDir), deps.Logger),
		Limiter:    pipeline.NewHostLimiter(c.Rate),
		Format:     format,
		KeepGoing:  c.KeepGoing,
		Logger:     deps.Logger,
	}

	results, err := runner.Run(deps.Ctx, cfg.Sites)
	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d entries, %d dropped\n", r.Site.Name, r.Path, r.Entries, len(r.Drops))
	}
	if err != nil {
		return err
	}
	return nil
}

// apply overrides configuration values with the flags that were set.
func (c *RunCmd) apply(cfg *obfeed.Config) {
	if c.Out != "" {
		cfg.OutputDir = c.Out
	}
	if c.Format != "" {
		cfg.Format = obfeed.Format(c.Format)
	}
	if c.Timezone != "" {
		cfg.Timezone = c.Timezone
	}
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
}
