package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/obfeed/dateparse"
	"github.com/fwojciec/obfeed/goquery"
	obfeedhttp "github.com/fwojciec/obfeed/http"
	"github.com/fwojciec/obfeed/pipeline"
	obfeedslog "github.com/fwojciec/obfeed/slog"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	dates, err := dateparse.NewParserIn(c.Timezone)
	if err != nil {
		return err
	}

	opts := []obfeedhttp.Option{obfeedhttp.WithTimeout(c.Timeout)}
	if c.UserAgent != "" {
		opts = append(opts, obfeedhttp.WithUserAgent(c.UserAgent))
	}
	fetcher := obfeedslog.NewLoggingFetcher(obfeedhttp.NewFetcher(opts...), deps.Logger)
	defer fetcher.Close()

	html, err := fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	runner := &pipeline.Runner{
		Extractor:  obfeedslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger),
		Normalizer: pipeline.NewNormalizer(dates),
	}
	feed, drops, err := runner.Process(html, c.URL)
	if err != nil {
		return err
	}

	blog := feed.Blog
	fmt.Fprintf(deps.Stdout, "Blog:        %s\n", blog.Title)
	fmt.Fprintf(deps.Stdout, "Link:        %s\n", blog.CanonicalURL)
	fmt.Fprintf(deps.Stdout, "Language:    %s\n", blog.Language)
	fmt.Fprintf(deps.Stdout, "Description: %s\n", blog.Description)
	fmt.Fprintf(deps.Stdout, "Author:      %s\n", blog.AuthorName)
	fmt.Fprintln(deps.Stdout)

	fmt.Fprintf(deps.Stdout, "%d entries:\n", len(feed.Entries))
	for _, e := range feed.Entries {
		fmt.Fprintf(deps.Stdout, "  %s  %s  (%s)\n", e.PublishedAt.Format(time.RFC3339), e.Title, e.AuthorName)
		fmt.Fprintf(deps.Stdout, "    %s\n", e.Link)
	}

	if len(drops) > 0 {
		fmt.Fprintf(deps.Stdout, "%d dropped:\n", len(drops))
		for _, d := range drops {
			title := d.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(deps.Stdout, "  #%d %s: %s\n", d.Index, title, d)
		}
	}

	return nil
}
