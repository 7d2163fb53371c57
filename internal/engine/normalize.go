package engine

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// Page is the normalized form of one fetched document: the parsed markup for
// structural (selector) extraction and a linear markdown rendering for
// pattern extraction. Link destinations survive the markdown conversion, so
// extractors never re-parse HTML ad hoc.
type Page struct {
	doc  *goquery.Document // nil when the markup is unparseable
	Text string
}

// Normalize converts raw HTML into a Page. It never fails: when the markdown
// converter rejects the input the text falls back to stripped tag content,
// and an unparseable document leaves doc nil (selector strategies then
// simply find nothing).
func Normalize(rawHTML string) *Page {
	p := &Page{}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML)); err == nil {
		p.doc = doc
	}

	md, err := htmltomarkdown.ConvertString(rawHTML)
	if err != nil || strings.TrimSpace(md) == "" {
		md = StripTags(rawHTML)
	}
	p.Text = strings.TrimSpace(md)
	return p
}

// Title returns the contents of the document's <title> tag, or "".
func (p *Page) Title() string {
	if p.doc == nil {
		return ""
	}
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// selectText returns the trimmed text of the first node matching selector.
func (p *Page) selectText(selector string) string {
	if p.doc == nil {
		return ""
	}
	return strings.TrimSpace(p.doc.Find(selector).First().Text())
}
