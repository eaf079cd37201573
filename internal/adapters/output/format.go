package output

import (
	"fmt"
	"readerscout/internal/core/domain/models"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
)

const (
	separatorWidth = 60
	previewLength  = 500
	previewMarker  = "..."
)

var separator = strings.Repeat("=", separatorWidth)

// Formatter renders a single document as a fixed-layout text block.
type Formatter struct {
	// PlainPreview strips markup from html_content before it is truncated.
	PlainPreview bool
}

// FormatDocument renders doc with the default options.
func FormatDocument(doc models.Document) string {
	return Formatter{}.Format(doc)
}

func (f Formatter) Format(doc models.Document) string {
	lines := []string{
		separator,
		"Title: " + doc.StringOr("title", "No title"),
		"Category: " + doc.StringOr("category", "unknown"),
		"Author: " + doc.StringOr("author", "Unknown"),
		"Source URL: " + doc.StringOr("source_url", "N/A"),
		"Saved at: " + doc.StringOr("saved_at", "N/A"),
		"Location: " + doc.StringOr("location", "N/A"),
		fmt.Sprintf("Reading progress: %.0f%%", doc.Get("reading_progress").Float()*100),
	}

	if summary := doc.Get("summary"); truthy(summary) {
		lines = append(lines, "\nSummary: "+summary.String())
	}

	if notes := doc.Get("notes"); truthy(notes) {
		lines = append(lines, "\nNotes: "+notes.String())
	}

	if names := tagNames(doc.Get("tags")); len(names) > 0 {
		lines = append(lines, "Tags: "+strings.Join(names, ", "))
	}

	if content := doc.Get("html_content"); truthy(content) {
		text := content.String()
		if f.PlainPreview {
			text = htmlToText(text)
		}
		lines = append(lines, "\nContent preview:\n"+preview(text))
	}

	lines = append(lines, separator+"\n")
	return strings.Join(lines, "\n")
}

// preview cuts s to previewLength characters, marking the cut.
func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLength {
		return s
	}
	return string(runes[:previewLength]) + previewMarker
}

// tagNames accepts the object form ({"name": {...}}) and the plain list form.
// Scalars and empty names yield nothing.
func tagNames(tags gjson.Result) []string {
	var names []string
	switch {
	case tags.IsObject():
		tags.ForEach(func(key, _ gjson.Result) bool {
			if key.Str != "" {
				names = append(names, key.Str)
			}
			return true
		})
	case tags.IsArray():
		tags.ForEach(func(_, value gjson.Result) bool {
			if truthy(value) {
				names = append(names, value.String())
			}
			return true
		})
	}
	return names
}

// truthy reports whether a value is present and not empty, zero or false.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	case gjson.JSON:
		nonEmpty := false
		r.ForEach(func(_, _ gjson.Result) bool {
			nonEmpty = true
			return false
		})
		return nonEmpty
	default:
		return true
	}
}

func htmlToText(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
