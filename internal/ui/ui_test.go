package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjayvyas/portfolio/internal/models"
)

func TestDispatchOrderAndTargets(t *testing.T) {
	d := NewDispatcher()
	var calls []string

	d.On(Click, "a", func(ctx context.Context, ev Event) error {
		calls = append(calls, "a1")
		return nil
	})
	d.On(Click, "", func(ctx context.Context, ev Event) error {
		calls = append(calls, "any")
		return nil
	})
	d.On(Click, "b", func(ctx context.Context, ev Event) error {
		calls = append(calls, "b")
		return nil
	})
	d.On(Click, "a", func(ctx context.Context, ev Event) error {
		calls = append(calls, "a2")
		return nil
	})

	require.NoError(t, d.Dispatch(context.Background(), Event{Type: Click, Target: "a"}))
	assert.Equal(t, []string{"a1", "any", "a2"}, calls)
}

func TestDispatchStopsAtFirstError(t *testing.T) {
	d := NewDispatcher()
	boom := errors.New("boom")
	second := false

	d.On(Submit, "form", func(ctx context.Context, ev Event) error { return boom })
	d.On(Submit, "form", func(ctx context.Context, ev Event) error {
		second = true
		return nil
	})

	err := d.Dispatch(context.Background(), Event{Type: Submit, Target: "form"})
	assert.ErrorIs(t, err, boom)
	assert.False(t, second)
}

func TestDispatchWithoutHandlersIsNoop(t *testing.T) {
	d := NewDispatcher()
	assert.NoError(t, d.Dispatch(context.Background(), Event{Type: Resize, Width: 1024}))
	assert.False(t, d.Handles(Resize, ""))
}

func TestNavigationTransitions(t *testing.T) {
	d := NewDispatcher()
	nav := NewNavigation(models.NavState{})
	nav.Bind(d)
	ctx := context.Background()

	require.NoError(t, d.Dispatch(ctx, Event{Type: Click, Target: HamburgerTarget}))
	assert.True(t, nav.State().MenuOpen)

	require.NoError(t, d.Dispatch(ctx, Event{Type: Click, Target: NavLinkTarget}))
	assert.False(t, nav.State().MenuOpen)

	require.NoError(t, d.Dispatch(ctx, Event{Type: Click, Target: HamburgerTarget}))
	require.NoError(t, d.Dispatch(ctx, Event{Type: Resize, Width: 500}))
	assert.True(t, nav.State().MenuOpen, "narrow resize keeps the menu open")

	require.NoError(t, d.Dispatch(ctx, Event{Type: Resize, Width: 1024}))
	assert.False(t, nav.State().MenuOpen)

	require.NoError(t, d.Dispatch(ctx, Event{Type: Scroll, ScrollY: 100}))
	assert.False(t, nav.State().Scrolled)
	require.NoError(t, d.Dispatch(ctx, Event{Type: Scroll, ScrollY: 101}))
	assert.True(t, nav.State().Scrolled)
	require.NoError(t, d.Dispatch(ctx, Event{Type: Scroll, ScrollY: 0}))
	assert.False(t, nav.State().Scrolled)

	assert.True(t, d.Handles(Click, HamburgerTarget))
	assert.False(t, d.Handles(Click, "logo"))
}

func TestScrollOffset(t *testing.T) {
	assert.Equal(t, 430, ScrollOffset(500))
	assert.Equal(t, 0, ScrollOffset(70))
	assert.Equal(t, 0, ScrollOffset(10))
}
