package fclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Search performs a web search and returns the result list.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	resp, err := c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   "/search",
		Query:  url.Values{"q": {query}},
		Return: ReturnJSON,
	})
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	if err := json.Unmarshal(resp.Body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}
	return results, nil
}

// ImageSearch performs an image search and returns the matching image URLs.
func (c *Client) ImageSearch(ctx context.Context, query string) ([]string, error) {
	resp, err := c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   "/imagesearch",
		Query:  url.Values{"q": {query}},
		Return: ReturnJSON,
	})
	if err != nil {
		return nil, err
	}

	var urls []string
	if err := json.Unmarshal(resp.Body, &urls); err != nil {
		return nil, fmt.Errorf("failed to parse image search results: %w", err)
	}
	return urls, nil
}

// Dictionary looks up a word and returns its entry.
func (c *Client) Dictionary(ctx context.Context, word string) (*DictionaryEntry, error) {
	resp, err := c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   "/dictionary/" + url.PathEscape(word),
		Return: ReturnJSON,
	})
	if err != nil {
		return nil, err
	}

	var entry DictionaryEntry
	if err := json.Unmarshal(resp.Body, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary entry: %w", err)
	}
	return &entry, nil
}

// Screenshot renders the page at the given URL and returns it as an image.
func (c *Client) Screenshot(ctx context.Context, pageURL string) ([]byte, error) {
	return c.imageFromText(ctx, "/screenshot", pageURL)
}

// Proxy forwards an arbitrary JSON body through the service and returns the
// parsed response. Both sides are opaque; there is no compile-time shape
// checking for this endpoint.
func (c *Client) Proxy(ctx context.Context, body any) (any, error) {
	resp, err := c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   "/proxy",
		Body:   body,
		Return: ReturnJSON,
	})
	if err != nil {
		return nil, err
	}
	return resp.Value(), nil
}
