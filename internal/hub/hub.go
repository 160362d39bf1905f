// Package hub assembles the five category repositories over one
// collection store.
package hub

import (
	"log/slog"

	"github.com/jezweb/hub/internal/domain/project"
	"github.com/jezweb/hub/internal/store"
)

// Hub holds one repository per project category, all sharing the same
// injected store.
type Hub struct {
	Websites *project.Repository[project.WebsiteExtension]
	Apps     *project.Repository[project.AppExtension]
	Graphics *project.Repository[project.GraphicsExtension]
	SEO      *project.Repository[project.SEOExtension]
	Content  *project.Repository[project.ContentExtension]
}

// New creates the category repositories over the given store.
func New(s store.Store, logger *slog.Logger) *Hub {
	return &Hub{
		Websites: project.NewRepository(s, project.Website, logger),
		Apps:     project.NewRepository(s, project.App, logger),
		Graphics: project.NewRepository(s, project.Graphics, logger),
		SEO:      project.NewRepository(s, project.SEO, logger),
		Content:  project.NewRepository(s, project.Content, logger),
	}
}
