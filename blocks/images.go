package blocks

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/studio-edul/dul-works/notion"
	"github.com/studio-edul/dul-works/value"
)

// Image is one extracted image placement. Path starts out as the transient
// service URL; the page assemblers rewrite it to a stable asset path.
// Column and Row are nil when no position could be inferred.
type Image struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Column   *int   `json:"column"`
	Row      *int   `json:"row"`
}

var imageExtRegex = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)

// ColumnImages extracts the images of the first column_list among the
// given siblings. The layout convention is text in the first column and
// images in the second and third, which map to frontend columns 1 and 2.
// Later column_lists (the parallel-language section) are deliberately
// skipped so the same images are not collected twice.
func ColumnImages(ctx context.Context, src ChildSource, siblings []notion.Block) ([]Image, error) {
	var columnList *notion.Block
	for i := range siblings {
		if siblings[i].Type == notion.TypeColumnList {
			columnList = &siblings[i]
			break
		}
	}
	if columnList == nil {
		return nil, nil
	}

	columns, err := src.BlockChildren(ctx, columnList.ID)
	if err != nil {
		return nil, err
	}

	// Source column index 1 feeds frontend column 1, index 2 feeds column 2.
	var images []Image
	for frontendCol, sourceIdx := 1, 1; sourceIdx <= 2; frontendCol, sourceIdx = frontendCol+1, sourceIdx+1 {
		if len(columns) <= sourceIdx {
			continue
		}
		content, err := src.BlockChildren(ctx, columns[sourceIdx].ID)
		if err != nil {
			return nil, err
		}
		images = append(images, columnImages(content, frontendCol)...)
	}
	return images, nil
}

// SkippedColumnImages reports whether any column_list after the first
// among the given siblings contains image blocks. ColumnImages reads only
// the first layout, so images placed in a later one are never extracted;
// this surfaces such records to content authors.
func SkippedColumnImages(ctx context.Context, src ChildSource, siblings []notion.Block) (bool, error) {
	seen := false
	for i := range siblings {
		if siblings[i].Type != notion.TypeColumnList {
			continue
		}
		if !seen {
			seen = true
			continue
		}

		columns, err := src.BlockChildren(ctx, siblings[i].ID)
		if err != nil {
			return false, err
		}
		for j := range columns {
			content, err := src.BlockChildren(ctx, columns[j].ID)
			if err != nil {
				return false, err
			}
			for k := range content {
				if content[k].Type == notion.TypeImage {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

func columnImages(siblings []notion.Block, frontendCol int) []Image {
	var out []Image
	for i := range siblings {
		b := &siblings[i]
		if b.Type != notion.TypeImage || b.Image == nil {
			continue
		}
		url := b.Image.URL()
		if url == "" {
			continue
		}

		filename := ""
		if len(b.Image.Caption) > 0 {
			filename = strings.TrimSpace(b.Image.Caption[0].PlainText)
		}
		if filename == "" {
			filename = value.FilenameFromURL(url)
		}
		if filename == "" {
			// Synthetic placeholder so one bad URL never drops the image.
			filename = fmt.Sprintf("image-%d.jpg", time.Now().UnixMilli())
		}
		if !imageExtRegex.MatchString(filename) {
			filename += ".jpg"
		}

		col := frontendCol
		row := 0
		out = append(out, Image{
			Filename: filename,
			Path:     url,
			Column:   &col,
			Row:      &row,
		})
	}
	return out
}
