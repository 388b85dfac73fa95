package missions

import (
	"errors"
	"fmt"
	"strings"

	"mission-stats/src/models"
)

// ErrMissionNotFound is returned by Registry.Get for unknown slugs.
var ErrMissionNotFound = errors.New("mission not found")

// Builtin returns the mission categories shipped with the dashboard.
func Builtin() []models.MMission {
	list := []models.MMission{
		{Slug: "dance-film", Title: "DANCE FILM MISSION", WindowDays: 3},
		{Slug: "api-mission", Title: "API MISSION", WindowDays: 3},
		{Slug: "crew-cheer", Title: "CREW CHEER MISSION", WindowDays: 3},
	}
	for i := range list {
		FillRoutes(&list[i])
	}
	return list
}

// FillRoutes derives missing page paths from the slug.
func FillRoutes(m *models.MMission) {
	if m.ListRoute == "" {
		m.ListRoute = "/" + m.Slug
	}
	if m.ChartRoute == "" {
		m.ChartRoute = strings.TrimSuffix(m.ListRoute, "/") + "/video/:videoId"
	}
}

// -----------------------------------------------------------------------------

// Registry resolves missions by slug and exposes the page route table.
type Registry struct {
	missions []models.MMission
	bySlug   map[string]models.MMission
}

func NewRegistry(list []models.MMission) *Registry {
	r := &Registry{
		missions: make([]models.MMission, len(list)),
		bySlug:   make(map[string]models.MMission, len(list)),
	}
	copy(r.missions, list)
	for _, m := range list {
		r.bySlug[m.Slug] = m
	}
	return r
}

// -----------------------------------------------------------------------------

// Get returns the mission for slug.
func (r *Registry) Get(slug string) (models.MMission, error) {
	m, ok := r.bySlug[slug]
	if !ok {
		return models.MMission{}, fmt.Errorf("%w: %s", ErrMissionNotFound, slug)
	}
	return m, nil
}

// All returns missions in configuration order.
func (r *Registry) All() []models.MMission {
	out := make([]models.MMission, len(r.missions))
	copy(out, r.missions)
	return out
}

// -----------------------------------------------------------------------------

// Routes lists the home page followed by each mission's list and chart pages.
func (r *Registry) Routes() []models.MRoute {
	routes := []models.MRoute{{Name: "home", Path: "/", Page: "home"}}
	for _, m := range r.missions {
		routes = append(routes,
			models.MRoute{Name: m.Slug + "-list", Path: m.ListRoute, Mission: m.Slug, Page: "list"},
			models.MRoute{Name: m.Slug + "-chart", Path: m.ChartRoute, Mission: m.Slug, Page: "chart"},
		)
	}
	return routes
}

// -----------------------------------------------------------------------------

// FilterVideos keeps the videos that belong to slug. An empty slug keeps all.
func FilterVideos(videos []models.MVideoStat, slug string) []models.MVideoStat {
	if slug == "" {
		return videos
	}
	out := make([]models.MVideoStat, 0, len(videos))
	for _, v := range videos {
		if v.Mission == slug {
			out = append(out, v)
		}
	}
	return out
}
