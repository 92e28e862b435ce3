package gallery

import (
	"sort"

	"github.com/studio-edul/dul-works/blocks"
	"github.com/studio-edul/dul-works/helpers"
	"github.com/studio-edul/dul-works/notion"
)

func slugOf(name string) string {
	return helpers.Slug(name)
}

// filterClass keeps the records whose class matches any of the targets.
func (e *Extractor) filterClass(records []notion.Page, targets ...string) []notion.Page {
	var out []notion.Page
	for i := range records {
		class := e.Class(&records[i])
		for _, t := range targets {
			if class == t {
				out = append(out, records[i])
				break
			}
		}
	}
	return out
}

// sortByIndex orders entities ascending by index with null-last semantics:
// entries without an index sort after every indexed entry, and keep their
// input order relative to each other.
func sortByIndex[T any](items []T, index func(T) *float64) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := index(items[i]), index(items[j])
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})
}

// Projects filters the work records down to projects, drops nameless
// entries, and sorts by index with null-last semantics.
func (e *Extractor) Projects(records []notion.Page) []Project {
	filtered := e.filterClass(records, ClassProject)
	projects := make([]Project, 0, len(filtered))
	for i := range filtered {
		p := e.Project(&filtered[i])
		if p.Name == "" {
			continue
		}
		projects = append(projects, p)
	}
	sortByIndex(projects, func(p Project) *float64 { return p.Index })
	return projects
}

// Exhibitions filters the work records down to exhibitions, partitions
// them into solo and group, sorts each independently by index, and
// concatenates solo before group. The concatenation order is a
// presentation contract, not incidental.
func (e *Extractor) Exhibitions(records []notion.Page, basePath string) []Exhibition {
	filtered := e.filterClass(records, ClassSoloExhibition, ClassGroupExhibition)

	var solo, group []Exhibition
	for i := range filtered {
		ex := e.Exhibition(&filtered[i], basePath)
		if ex.Name == "" {
			continue
		}
		if ex.Class == ClassSoloExhibition {
			solo = append(solo, ex)
		} else {
			group = append(group, ex)
		}
	}

	sortByIndex(solo, func(x Exhibition) *float64 { return x.Index })
	sortByIndex(group, func(x Exhibition) *float64 { return x.Index })
	return append(solo, group...)
}

// Timelines filters the work records down to timeline entries and sorts
// them by index with null-last semantics.
func (e *Extractor) Timelines(records []notion.Page) []TimelineEntry {
	filtered := e.filterClass(records, ClassTimeline)
	timelines := make([]TimelineEntry, 0, len(filtered))
	for i := range filtered {
		t := e.Timeline(&filtered[i])
		if t.Name == "" {
			continue
		}
		timelines = append(timelines, t)
	}
	sortByIndex(timelines, func(t TimelineEntry) *float64 { return t.Index })
	return timelines
}

// sortImages orders placements column-major then row-minor ascending.
// Unpositioned entries keep their arrival order at the end.
func sortImages(images []blocks.Image) {
	sort.SliceStable(images, func(i, j int) bool {
		a, b := images[i], images[j]
		if a.Column == nil || b.Column == nil {
			return a.Column != nil && b.Column == nil
		}
		if *a.Column != *b.Column {
			return *a.Column < *b.Column
		}
		if a.Row == nil || b.Row == nil {
			return a.Row != nil && b.Row == nil
		}
		return *a.Row < *b.Row
	})
}
