package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/studio-edul/dul-works/blocks"
	"github.com/studio-edul/dul-works/notion"
)

// StatementBlock is one artist-statement entry with its block type
// preserved so headings and list items keep their rendering. A nil entry
// marks a blank line.
type StatementBlock struct {
	Type     string            `json:"type"`
	RichText []notion.RichText `json:"rich_text"`
}

const statementHeading = "artist statement"

var headingTypes = map[string]bool{
	notion.TypeHeading1: true,
	notion.TypeHeading2: true,
	notion.TypeHeading3: true,
}

// ArtistStatement locates the free-text statement hosted on the work
// database's parent page: the section under an "Artist Statement" heading,
// either the left column of a column layout directly below it, or the run
// of text blocks up to the next heading. Returns nil when the page or the
// heading does not exist.
func (a *Assembler) ArtistStatement(ctx context.Context) ([]*StatementBlock, error) {
	meta, err := a.src.DatabaseMeta(ctx, a.workDB)
	if err != nil {
		return nil, fmt.Errorf("loading database metadata: %w", err)
	}
	if meta.Parent.Type != "page_id" || meta.Parent.PageID == "" {
		return nil, nil
	}

	body, err := a.src.PageBlocks(ctx, meta.Parent.PageID)
	if err != nil {
		return nil, fmt.Errorf("loading parent page: %w", err)
	}

	headingIdx := -1
	for i := range body {
		b := &body[i]
		if !headingTypes[b.Type] {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(notion.PlainText(b.RichTextRuns())))
		if label == statementHeading {
			headingIdx = i
			break
		}
	}
	if headingIdx == -1 {
		return nil, nil
	}

	// A column layout right below the heading holds the statement in its
	// left column; otherwise the statement is the run of text blocks up to
	// the next heading.
	if next := headingIdx + 1; next < len(body) && body[next].Type == notion.TypeColumnList {
		return a.statementFromColumns(ctx, &body[next])
	}

	var out []*StatementBlock
	for i := headingIdx + 1; i < len(body); i++ {
		b := &body[i]
		if headingTypes[b.Type] {
			break
		}
		switch b.Type {
		case notion.TypeParagraph, notion.TypeBulletedListItem, notion.TypeNumberedListItem, notion.TypeQuote:
			out = append(out, statementBlockOf(b))
		}
	}
	return out, nil
}

func (a *Assembler) statementFromColumns(ctx context.Context, columnList *notion.Block) ([]*StatementBlock, error) {
	columns, err := a.src.BlockChildren(ctx, columnList.ID)
	if err != nil {
		return nil, fmt.Errorf("loading statement columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, nil
	}

	content, err := a.src.BlockChildren(ctx, columns[0].ID)
	if err != nil {
		return nil, fmt.Errorf("loading statement column content: %w", err)
	}

	var out []*StatementBlock
	for i := range content {
		b := &content[i]
		if !blocks.IsTextBlock(b.Type) {
			continue
		}
		out = append(out, statementBlockOf(b))
	}
	return out, nil
}

func statementBlockOf(b *notion.Block) *StatementBlock {
	runs := b.RichTextRuns()
	if len(runs) == 0 {
		return nil
	}
	return &StatementBlock{Type: b.Type, RichText: runs}
}
