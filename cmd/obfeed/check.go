package main

import (
	"fmt"

	"github.com/fwojciec/obfeed"
	"github.com/fwojciec/obfeed/gofeed"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	inspector := gofeed.NewInspector()

	var failed int
	for _, path := range c.Files {
		s, err := inspector.Inspect(deps.Ctx, path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "%s: %s\n", path, obfeed.ErrorMessage(err))
			failed++
			continue
		}

		fmt.Fprintf(deps.Stdout, "%s  %s %s  %q  %d entries", s.Path, s.Type, s.Version, s.Title, s.Entries)
		if s.Incomplete > 0 {
			fmt.Fprintf(deps.Stdout, " (%d incomplete)", s.Incomplete)
		}
		fmt.Fprintln(deps.Stdout)
	}

	if failed > 0 {
		return obfeed.Errorf(obfeed.EINVALID, "%d of %d feeds could not be read", failed, len(c.Files))
	}
	return nil
}
