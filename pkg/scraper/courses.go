package scraper

import (
	"context"
	"fmt"
	"sync"

	"schgen/pkg/pagereader"
)

// SelectorCourseLinks matches the course links of the catalogue table.
const SelectorCourseLinks = "table#list a.list-links__link"

// FetchCourseLinks retrieves the absolute URL of every course listed on
// the catalogue page, in page order.
func (c *Client) FetchCourseLinks(ctx context.Context, listPath string) ([]string, error) {
	if listPath == "" {
		listPath = DefaultListPath
	}
	doc, err := c.FetchPage(ctx, listPath)
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, link := range doc.Links(SelectorCourseLinks) {
		u, err := c.Resolve(link)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("no course links found on %s", listPath)
	}
	return urls, nil
}

// Page is the outcome of fetching one course page.
type Page struct {
	URL string
	Doc *pagereader.Document
	Err error
}

// FetchAll fetches urls with at most workers requests in flight and
// returns the results in the order of urls. A cancelled context stops
// the remaining fetches.
func (c *Client) FetchAll(ctx context.Context, urls []string, workers int) []Page {
	if workers < 1 {
		workers = 1
	}

	pages := make([]Page, len(urls))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, u := range urls {
		pages[i].URL = u
		if err := ctx.Err(); err != nil {
			pages[i].Err = err
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, u string) {
			defer wg.Done()
			defer func() { <-sem }()

			doc, err := c.FetchPage(ctx, u)
			if err != nil {
				pages[i].Err = err
				return
			}
			pages[i].Doc = doc
		}(i, u)
	}

	wg.Wait()
	return pages
}
