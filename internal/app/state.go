package app

import "github.com/Qadosh7/Fit-Flow/internal/models"

// State is a copy of everything the UI renders.
type State struct {
	View       View                     `json:"view"`
	ReturnView View                     `json:"returnView"`
	Identity   *Identity                `json:"identity,omitempty"`
	Guest      bool                     `json:"guest"`
	Profile    *models.Profile          `json:"profile,omitempty"`
	Plans      []models.Plan            `json:"plans"`
	ActivePlan *models.Plan             `json:"activePlan,omitempty"`
	DayIndex   int                      `json:"dayIndex"`
	History    []models.Session         `json:"history"`
	Favorites  []models.LibraryExercise `json:"favorites"`
	Replace    *ReplaceState            `json:"replace,omitempty"`
	Rest       *RestStatus              `json:"rest,omitempty"`
	Notice     string                   `json:"notice,omitempty"`
}

// Snapshot returns the current state. Mutating it does not affect the
// controller.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		View:       c.views.Current(),
		ReturnView: c.returnView,
		DayIndex:   c.dayIdx,
		Plans:      make([]models.Plan, 0, len(c.plans)),
		History:    append([]models.Session{}, c.history...),
		Favorites:  []models.LibraryExercise{},
		Rest:       c.timer.Status(),
		Notice:     c.notice,
	}
	if c.identity != nil {
		id := *c.identity
		s.Identity = &id
		s.Guest = id.ID == models.GuestID
	}
	if c.profile != nil {
		p := c.cloneProfile()
		s.Profile = &p
		for _, ex := range c.library {
			if p.IsFavorite(ex.ID) {
				s.Favorites = append(s.Favorites, ex)
			}
		}
	}
	for _, p := range c.plans {
		s.Plans = append(s.Plans, p.Clone())
	}
	if active := c.activePlan(); active != nil {
		ap := active.Clone()
		s.ActivePlan = &ap
	}
	if c.replace != nil {
		r := *c.replace
		r.Alternatives = append([]models.Exercise{}, c.replace.Alternatives...)
		s.Replace = &r
	}
	return s
}

// Library returns the shared exercise catalog.
func (c *Controller) Library() []models.LibraryExercise {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.LibraryExercise{}, c.library...)
}
