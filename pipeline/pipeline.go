// Package pipeline turns blog home pages into feeds. It runs sites one at
// a time: fetch, extract, normalize, serialize, then save.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/fwojciec/obfeed"
	"github.com/google/uuid"
)

// Runner converts the configured sites into feed files.
type Runner struct {
	Fetcher    obfeed.Fetcher
	Extractor  obfeed.PageExtractor
	Normalizer obfeed.ArticleNormalizer
	Serializer obfeed.FeedSerializer
	Store      obfeed.FeedStore

	// Limiter is optional.
	Limiter obfeed.HostLimiter

	// Format defaults to obfeed.FormatAtom.
	Format obfeed.Format

	// KeepGoing continues with the next site after a fatal site error.
	// By default the first failure aborts the batch.
	KeepGoing bool

	// Logger defaults to discarding output.
	Logger *slog.Logger
}

// Result holds the outcome of one site.
type Result struct {
	Site    obfeed.Site
	Path    string
	Entries int
	Drops   []obfeed.Drop
}

// Run processes sites in order. Without KeepGoing it stops at the first
// failing site; otherwise failures are collected and joined.
func (r *Runner) Run(ctx context.Context, sites []obfeed.Site) ([]*Result, error) {
	logger := r.logger().With("run", uuid.NewString())
	logger.Info("run started", "sites", len(sites), "format", r.format())

	var results []*Result
	var errs []error
	for _, site := range sites {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := r.runSite(ctx, site, logger.With("site", site.Name))
		if err != nil {
			err = fmt.Errorf("site %q (%s): %w", site.Name, site.URL, err)
			if !r.KeepGoing {
				logger.Error("run aborted", "err", err)
				return results, err
			}
			logger.Error("site failed", "err", err)
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}

	logger.Info("run finished", "written", len(results), "failed", len(errs))
	return results, errors.Join(errs...)
}

// RunSite processes a single site.
func (r *Runner) RunSite(ctx context.Context, site obfeed.Site) (*Result, error) {
	return r.runSite(ctx, site, r.logger().With("site", site.Name))
}

func (r *Runner) runSite(ctx context.Context, site obfeed.Site, logger *slog.Logger) (*Result, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	if r.Limiter != nil {
		u, err := url.Parse(site.URL)
		if err != nil {
			return nil, obfeed.Errorf(obfeed.EINVALID, "invalid site URL %q", site.URL)
		}
		if err := r.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := r.Fetcher.Fetch(ctx, site.URL)
	if err != nil {
		return nil, err
	}

	feed, drops, err := r.Process(html, site.URL)
	if err != nil {
		return nil, err
	}
	for _, d := range drops {
		logger.Warn("article dropped",
			"index", d.Index,
			"title", d.Title,
			"url", d.URL,
			"reasons", d.String(),
		)
	}

	doc, err := r.Serializer.Serialize(feed, r.format())
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}

	path, err := r.Store.Save(ctx, site.Name, r.format(), doc)
	if err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}

	logger.Info("feed written",
		"path", path,
		"entries", len(feed.Entries),
		"dropped", len(drops),
	)
	return &Result{Site: site, Path: path, Entries: len(feed.Entries), Drops: drops}, nil
}

// Process builds the feed for an already fetched page. It performs no I/O
// and depends only on its inputs.
func (r *Runner) Process(html, pageURL string) (*obfeed.Feed, []obfeed.Drop, error) {
	page, err := r.Extractor.Extract(html, pageURL)
	if err != nil {
		return nil, nil, err
	}

	entries, drops := r.Normalizer.Normalize(page.Articles, page.Blog.Description)
	return &obfeed.Feed{Blog: *page.Blog, Entries: entries}, drops, nil
}

func (r *Runner) format() obfeed.Format {
	if r.Format == "" {
		return obfeed.FormatAtom
	}
	return r.Format
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}
