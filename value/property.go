// Package value provides primitives for extracting typed values from
// polymorphic content-service properties.
//
// These helpers solve common problems:
//   - Schema drift (the same logical field stored as title, rich_text,
//     select, date, number or url depending on when it was authored)
//   - Null/missing handling (every accessor is total: nil in, zero out)
//   - Index tokens that may be free text ("2,3", "full") or formula output
//   - Relation ID lists
package value

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/studio-edul/dul-works/notion"
)

// Find returns the first property present under any of the given field
// names, or nil when none exist. Lookup is exact: case and spacing variants
// must be passed as separate aliases.
func Find(props map[string]notion.Property, aliases ...string) *notion.Property {
	for _, name := range aliases {
		if p, ok := props[name]; ok {
			prop := p
			return &prop
		}
	}
	return nil
}

// TitleProperty returns the property whose type tag is "title", regardless
// of its field name. Field names are scanned in sorted order so the result
// is deterministic even though map iteration is not.
func TitleProperty(props map[string]notion.Property) *notion.Property {
	if len(props) == 0 {
		return nil
	}
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if p := props[name]; p.Type == "title" {
			prop := p
			return &prop
		}
	}
	return nil
}

// Text extracts a display string from a property. Representation priority:
// title > rich_text > select > date > number > url. Missing input yields "".
func Text(p *notion.Property) string {
	if p == nil {
		return ""
	}
	if len(p.Title) > 0 {
		return notion.PlainText(p.Title)
	}
	if len(p.RichText) > 0 {
		return notion.PlainText(p.RichText)
	}
	if p.Select != nil {
		return p.Select.Name
	}
	if p.Date != nil && p.Date.Start != "" {
		if p.Date.End != "" {
			return p.Date.Start + " - " + p.Date.End
		}
		return p.Date.Start
	}
	if p.Number != nil {
		return formatNumber(*p.Number)
	}
	if p.URL != "" {
		return p.URL
	}
	return ""
}

// Date extracts a date or period string. A date range renders as
// "start - end". Text representations are accepted as-is for legacy rows
// that recorded periods in plain text.
func Date(p *notion.Property) string {
	if p == nil {
		return ""
	}
	if p.Date != nil && p.Date.Start != "" {
		if p.Date.End != "" {
			return p.Date.Start + " - " + p.Date.End
		}
		return p.Date.Start
	}
	if len(p.RichText) > 0 {
		return notion.PlainText(p.RichText)
	}
	if len(p.Title) > 0 {
		return notion.PlainText(p.Title)
	}
	if p.Select != nil {
		return p.Select.Name
	}
	return ""
}

// Number extracts a numeric value, or nil when the property holds nothing
// numeric. Text representations parse their leading integer, matching how
// ordering indexes were typed into legacy text fields.
func Number(p *notion.Property) *float64 {
	if p == nil {
		return nil
	}
	if p.Number != nil {
		n := *p.Number
		return &n
	}
	if len(p.RichText) > 0 {
		return leadingInt(p.RichText[0].PlainText)
	}
	if len(p.Title) > 0 {
		return leadingInt(p.Title[0].PlainText)
	}
	return nil
}

// IndexToken extracts an ordering token, which may be free text such as
// "2,3" or "full" rather than a plain number. Formula-derived string and
// number payloads are accepted. Whitespace is trimmed; an empty result is
// normalized to "" (absent).
func IndexToken(p *notion.Property) string {
	if p == nil {
		return ""
	}
	if len(p.RichText) > 0 {
		return strings.TrimSpace(notion.PlainText(p.RichText))
	}
	if len(p.Title) > 0 {
		return strings.TrimSpace(notion.PlainText(p.Title))
	}
	if p.Number != nil {
		return formatNumber(*p.Number)
	}
	if p.Select != nil {
		return strings.TrimSpace(p.Select.Name)
	}
	if p.Formula != nil {
		if p.Formula.String != "" {
			return strings.TrimSpace(p.Formula.String)
		}
		if p.Formula.Number != nil {
			return formatNumber(*p.Formula.Number)
		}
	}
	return ""
}

// RelationIDs returns the related page IDs of a relation property. Any
// other property shape yields an empty slice.
func RelationIDs(p *notion.Property) []string {
	if p == nil || p.Type != "relation" || len(p.Relation) == 0 {
		return nil
	}
	ids := make([]string, 0, len(p.Relation))
	for _, r := range p.Relation {
		ids = append(ids, r.ID)
	}
	return ids
}

// Checkbox extracts a boolean. Missing input yields false.
func Checkbox(p *notion.Property) bool {
	return p != nil && p.Checkbox != nil && *p.Checkbox
}

// CoverFilename derives a filename from a record's cover image URL.
// Returns "" when the record has no usable cover.
func CoverFilename(page *notion.Page) string {
	if page == nil || page.Cover == nil {
		return ""
	}
	return FilenameFromURL(page.Cover.ResolveURL())
}

// FilenameFromURL extracts the decoded final path segment of a URL. A URL
// that fails to parse falls back to plain string splitting so one malformed
// asset reference never aborts an extraction.
func FilenameFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		path := u.Path
		if decoded, derr := url.PathUnescape(path); derr == nil {
			path = decoded
		}
		return lastSegment(path)
	}
	path := raw
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	return lastSegment(path)
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// formatNumber renders a number the way a person typed it: integers
// without a decimal point.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var leadingIntRegex = regexp.MustCompile(`^\s*-?\d+`)

func leadingInt(s string) *float64 {
	m := leadingIntRegex.FindString(s)
	if m == "" {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return nil
	}
	return &n
}
