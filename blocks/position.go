// Package blocks extracts page-ready text and images from the recursive
// block trees that make up record bodies: the language-marker walk that
// selects the English section of bilingual documents, the column-layout
// extractors, and the filename position parser for the two-column image
// grid.
package blocks

import (
	"regexp"
	"strconv"
	"strings"
)

// Position is a 1-based (column, row) placement in the image grid.
// Columns 1 and 2 are the only ones the layout renders; larger values
// parse but have no consumer.
type Position struct {
	Column int
	Row    int
}

var positionSuffixRegex = regexp.MustCompile(`(?i)-(\d+)-(\d+)(?:\.(jpg|jpeg|png|gif|webp))?$`)

// ParsePosition derives a grid placement from an image filename carrying a
// trailing -<col>-<row> token, e.g. "artwork-foo-2-3.jpg". When posterRule
// is set, filenames starting with "poster" anchor top-left regardless of
// any suffix; exhibitions use that rule, artworks must not.
func ParsePosition(filename string, posterRule bool) *Position {
	if posterRule && strings.HasPrefix(strings.ToLower(filename), "poster") {
		return &Position{Column: 1, Row: 1}
	}

	m := positionSuffixRegex.FindStringSubmatch(filename)
	if m == nil {
		return nil
	}
	col, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	row, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	return &Position{Column: col, Row: row}
}
