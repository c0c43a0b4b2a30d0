package scraper

import (
	"bytes"
	"context"
	"fmt"

	readability "github.com/go-shiori/go-readability"
)

const maxArticleLength = 4000

// ArticleText fetches an article and extracts its readable text, truncated
// to 4000 characters. Used to feed content analysis with real article
// bodies instead of raw HTML.
func (c *Client) ArticleText(ctx context.Context, rawURL string) (string, error) {
	body, err := c.Get(ctx, rawURL)
	if err != nil {
		return "", err
	}

	article, err := readability.FromReader(bytes.NewReader(body), nil)
	if err != nil {
		return "", fmt.Errorf("scraper: extract content from %s: %w", rawURL, err)
	}

	content := article.TextContent
	if len(content) > maxArticleLength {
		content = content[:maxArticleLength]
	}
	return content, nil
}
