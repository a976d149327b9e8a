package main

import (
	"fmt"

	"github.com/mstolarski/emwiki/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	start := c.Start
	if start == "" {
		start = c.BaseURL + "/wiki/Category:Characters"
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressListing:
			fmt.Fprintf(deps.Stdout, "listing %s\n", event.URL)
		case crawl.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "  saved %s\n", event.Name)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Err)
		}
	}

	result, err := deps.Crawler.Run(deps.Ctx, start, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawl complete: %d saved, %d skipped, %d failed (%d listing pages)\n",
		result.Saved, result.Skipped, result.Failed, result.Listings)

	return nil
}
