package ui

import (
	"context"
	"sync"

	"github.com/sanjayvyas/portfolio/internal/models"
)

const (
	HamburgerTarget = "hamburger"
	NavLinkTarget   = "nav-link"

	scrolledThreshold = 100
	mobileBreakpoint  = 768
	navbarHeight      = 70
)

// Navigation tracks the mobile menu and the navbar's scrolled style.
type Navigation struct {
	mu    sync.Mutex
	state models.NavState
}

func NewNavigation(state models.NavState) *Navigation {
	return &Navigation{state: state}
}

func (n *Navigation) Bind(s Surface) {
	s.On(Click, HamburgerTarget, func(ctx context.Context, ev Event) error {
		n.update(func(st *models.NavState) { st.MenuOpen = !st.MenuOpen })
		return nil
	})
	s.On(Click, NavLinkTarget, func(ctx context.Context, ev Event) error {
		n.update(func(st *models.NavState) { st.MenuOpen = false })
		return nil
	})
	s.On(Scroll, "", func(ctx context.Context, ev Event) error {
		n.update(func(st *models.NavState) { st.Scrolled = ev.ScrollY > scrolledThreshold })
		return nil
	})
	s.On(Resize, "", func(ctx context.Context, ev Event) error {
		if ev.Width > mobileBreakpoint {
			n.update(func(st *models.NavState) { st.MenuOpen = false })
		}
		return nil
	})
}

func (n *Navigation) State() models.NavState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *Navigation) update(fn func(*models.NavState)) {
	n.mu.Lock()
	fn(&n.state)
	n.mu.Unlock()
}

// ScrollOffset is where to scroll so a section starting at top clears the
// fixed navbar.
func ScrollOffset(top int) int {
	return max(top-navbarHeight, 0)
}
