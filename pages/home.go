package pages

import (
	"context"

	"github.com/studio-edul/dul-works/gallery"
)

// HomePage is the landing page's prop shape: the artist statement plus the
// projects and exhibitions flagged as current.
type HomePage struct {
	ArtistStatement    []*StatementBlock    `json:"artistStatement"`
	CurrentProjects    []gallery.Project    `json:"currentProjects"`
	CurrentExhibitions []gallery.Exhibition `json:"currentExhibitions"`
}

func emptyHomePage() *HomePage {
	return &HomePage{
		ArtistStatement:    []*StatementBlock{},
		CurrentProjects:    []gallery.Project{},
		CurrentExhibitions: []gallery.Exhibition{},
	}
}

// Home assembles the landing page. A failed fetch yields an empty page.
func (a *Assembler) Home(ctx context.Context) *HomePage {
	work, err := a.src.QueryDatabase(ctx, a.workDB)
	if err != nil {
		a.log.Error("loading work records", "error", err)
		return emptyHomePage()
	}

	page := emptyHomePage()

	statement, err := a.ArtistStatement(ctx)
	if err != nil {
		a.log.Warn("loading artist statement", "error", err)
	} else if statement != nil {
		page.ArtistStatement = statement
	}

	for _, p := range a.ex.Projects(work) {
		if p.Current {
			page.CurrentProjects = append(page.CurrentProjects, p)
		}
	}
	for _, ex := range a.ex.Exhibitions(work, a.basePath) {
		if ex.Current {
			page.CurrentExhibitions = append(page.CurrentExhibitions, ex)
		}
	}
	return page
}
