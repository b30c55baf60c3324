package browser

import (
	"context"
	"fmt"
	"strings"
)

const (
	extractMaxChars    = 3000
	extractMaxSnippets = 5
)

// ExtractContent - pulls the meaningful visible content off the current
// page. Known sites get targeted rules; everything else falls back to the
// main content region and then the body text.
func (b *browserController) ExtractContent(ctx context.Context) (string, error) {
	url := strings.ToLower(b.page.URL())
	switch {
	case strings.Contains(url, "wikipedia"):
		if content := b.extractWikipedia(); content != "" {
			return content, nil
		}
	case strings.Contains(url, "google"):
		if content := b.extractGoogle(); content != "" {
			return content, nil
		}
	case strings.Contains(url, "amazon"):
		if content := b.extractAmazon(); content != "" {
			return content, nil
		}
	}
	return b.extractGeneric(ctx)
}

func (b *browserController) extractWikipedia() string {
	var parts []string

	if heading, err := b.page.Locator("#firstHeading").First().InnerText(); err == nil && heading != "" {
		parts = append(parts, heading)
	}
	if paras, err := b.page.Locator(".mw-parser-output > p").AllInnerTexts(); err == nil {
		count := 0
		for _, p := range paras {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			parts = append(parts, p)
			if count++; count >= 3 {
				break
			}
		}
	}
	if headings, err := b.page.Locator(".mw-parser-output h2").AllInnerTexts(); err == nil && len(headings) > 0 {
		if len(headings) > 6 {
			headings = headings[:6]
		}
		parts = append(parts, "Sections: "+strings.Join(headings, ", "))
	}

	return clip(strings.Join(parts, "\n\n"))
}

func (b *browserController) extractGoogle() string {
	var parts []string

	if stats, err := b.page.Locator("#result-stats").First().InnerText(); err == nil && stats != "" {
		parts = append(parts, stats)
	}
	if snippets, err := b.page.Locator(".VwiC3b").AllInnerTexts(); err == nil {
		count := 0
		for _, s := range snippets {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			parts = append(parts, s)
			if count++; count >= extractMaxSnippets {
				break
			}
		}
	}

	return clip(strings.Join(parts, "\n"))
}

func (b *browserController) extractAmazon() string {
	// Product page first, then the search results list.
	if title, err := b.page.Locator("#productTitle").First().InnerText(); err == nil && title != "" {
		parts := []string{strings.TrimSpace(title)}
		if price, err := b.page.Locator(".a-price .a-offscreen").First().InnerText(); err == nil && price != "" {
			parts = append(parts, "Price: "+price)
		}
		if rating, err := b.page.Locator("#acrPopover").First().GetAttribute("title"); err == nil && rating != "" {
			parts = append(parts, "Rating: "+rating)
		}
		return clip(strings.Join(parts, "\n"))
	}

	if results, err := b.page.Locator("div[data-component-type='s-search-result'] h2").AllInnerTexts(); err == nil && len(results) > 0 {
		if len(results) > extractMaxSnippets {
			results = results[:extractMaxSnippets]
		}
		var lines []string
		for i, r := range results {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, strings.TrimSpace(r)))
		}
		return clip("Search results:\n" + strings.Join(lines, "\n"))
	}
	return ""
}

func (b *browserController) extractGeneric(ctx context.Context) (string, error) {
	for _, selector := range []string{"main", "article", "#main", ".content"} {
		locator := b.page.Locator(selector).First()
		if count, err := locator.Count(); err != nil || count == 0 {
			continue
		}
		if text, err := locator.InnerText(); err == nil {
			if text = strings.TrimSpace(text); text != "" {
				return clip(text), nil
			}
		}
	}

	if paras, err := b.page.Locator("p").AllInnerTexts(); err == nil && len(paras) > 0 {
		var parts []string
		for _, p := range paras {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
			if len(parts) >= extractMaxSnippets {
				break
			}
		}
		if len(parts) > 0 {
			return clip(strings.Join(parts, "\n")), nil
		}
	}

	text, err := b.PageText(ctx)
	if err != nil {
		return "", err
	}
	return clip(text), nil
}

func clip(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > extractMaxChars {
		return s[:extractMaxChars] + "..."
	}
	return s
}
