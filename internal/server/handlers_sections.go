package server

import (
	"encoding/json"
	"net/http"

	"github.com/renz/portfolio/internal/sections"
)

const maxSectionsBody = 4 << 10

// SectionInfo describes one page section.
type SectionInfo struct {
	ID        sections.Section `json:"id"`
	Label     string           `json:"label"`
	Anchor    string           `json:"anchor"`
	Threshold float64          `json:"threshold"`
}

// SectionsResponse lists the sections in priority order.
type SectionsResponse struct {
	Sections        []SectionInfo `json:"sections"`
	ScrollThreshold float64       `json:"scroll_threshold"`
}

// ActiveSectionRequest carries one visibility report from the page.
// Visible and Fractions may both be given; a section counts as visible if either says so.
type ActiveSectionRequest struct {
	Current   string             `json:"current"`
	Visible   map[string]bool    `json:"visible,omitempty"`
	Fractions map[string]float64 `json:"fractions,omitempty"`
	ScrollY   *float64           `json:"scroll_y,omitempty"`
}

// ActiveSectionResponse is the reduced active section.
type ActiveSectionResponse struct {
	Active   sections.Section `json:"active"`
	Changed  bool             `json:"changed"`
	Scrolled *bool            `json:"scrolled,omitempty"`
}

func (s *Server) handleListSections(w http.ResponseWriter, _ *http.Request) {
	all := sections.All()
	resp := SectionsResponse{
		Sections:        make([]SectionInfo, 0, len(all)),
		ScrollThreshold: sections.ScrollThreshold,
	}
	for _, sec := range all {
		resp.Sections = append(resp.Sections, SectionInfo{
			ID:        sec,
			Label:     sections.Label(sec),
			Anchor:    sections.Anchor(sec),
			Threshold: sections.Threshold(sec),
		})
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleActiveSection(w http.ResponseWriter, r *http.Request) {
	var req ActiveSectionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSectionsBody)).Decode(&req); err != nil {
		err = &ErrBadRequest{Cause: err}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	tracker, visibility, err := req.parse()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := ActiveSectionResponse{Changed: tracker.Observe(visibility)}
	resp.Active = tracker.Active()
	if req.ScrollY != nil {
		scrolled := sections.Scrolled(*req.ScrollY)
		resp.Scrolled = &scrolled
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// parse validates the section ids in the request.
func (req *ActiveSectionRequest) parse() (*sections.Tracker, sections.Visibility, error) {
	tracker := sections.NewTracker()
	if req.Current != "" {
		current, err := sections.Parse(req.Current)
		if err != nil {
			return nil, nil, err
		}
		tracker = sections.NewTrackerAt(current)
	}

	visibility := make(sections.Visibility, len(req.Visible)+len(req.Fractions))
	for id, visible := range req.Visible {
		sec, err := sections.Parse(id)
		if err != nil {
			return nil, nil, err
		}
		visibility[sec] = visibility[sec] || visible
	}
	for id, fraction := range req.Fractions {
		sec, err := sections.Parse(id)
		if err != nil {
			return nil, nil, err
		}
		visibility[sec] = visibility[sec] || sections.InView(sec, fraction)
	}
	return tracker, visibility, nil
}
