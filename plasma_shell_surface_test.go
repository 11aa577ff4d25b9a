package plasma_shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// surfaceRecorder implements every shell surface handler interface and
// records the notifications in arrival order.
type surfaceRecorder struct {
	order []string

	positions   []PlasmaShellSurfacePositionChangedEvent
	roles       []PlasmaShellSurfaceRoleChangedEvent
	behaviors   []PlasmaShellSurfacePanelBehaviorChangedEvent
	taskbars    []PlasmaShellSurfaceSkipTaskbarChangedEvent
	switchers   []PlasmaShellSurfaceSkipSwitcherChangedEvent
	focuses     []PlasmaShellSurfacePanelTakesFocusChangedEvent
	windowTypes []PlasmaShellSurfaceWindowTypeChangedEvent
	visibles    []PlasmaShellSurfaceVisibleChangedEvent
	hideReqs    int
	showReqs    int
}

func (r *surfaceRecorder) HandlePlasmaShellSurfacePositionChanged(ev PlasmaShellSurfacePositionChangedEvent) {
	r.order = append(r.order, "position")
	r.positions = append(r.positions, ev)
}

func (r *surfaceRecorder) HandlePlasmaShellSurfaceRoleChanged(ev PlasmaShellSurfaceRoleChangedEvent) {
	r.order = append(r.order, "role")
	r.roles = append(r.roles, ev)
}

func (r *surfaceRecorder) HandlePlasmaShellSurfacePanelBehaviorChanged(ev PlasmaShellSurfacePanelBehaviorChangedEvent) {
	r.order = append(r.order, "panel_behavior")
	r.behaviors = append(r.behaviors, ev)
}

func (r *surfaceRecorder) HandlePlasmaShellSurfaceSkipTaskbarChanged(ev PlasmaShellSurfaceSkipTaskbarChangedEvent) {
	r.order = append(r.order, "skip_taskbar")
	r.taskbars = append(r.taskbars, ev)
}

func (r *surfaceRecorder) HandlePlasmaShellSurfaceSkipSwitcherChanged(ev PlasmaShellSurfaceSkipSwitcherChangedEvent) {
	r.order = append(r.order, "skip_switcher")
	r.switchers = append(r.switchers, ev)
}

func (r *surfaceRecorder) HandlePlasmaShellSurfacePanelTakesFocusChanged(ev PlasmaShellSurfacePanelTakesFocusChangedEvent) {
	r.order = append(r.order, "panel_takes_focus")
	r.focuses = append(r.focuses, ev)
}

func (r *surfaceRecorder) HandlePlasmaShellSurfaceWindowTypeChanged(ev PlasmaShellSurfaceWindowTypeChangedEvent) {
	r.order = append(r.order, "window_type")
	r.windowTypes = append(r.windowTypes, ev)
}

func (r *surfaceRecorder) HandlePlasmaShellSurfaceVisibleChanged(ev PlasmaShellSurfaceVisibleChangedEvent) {
	r.order = append(r.order, "visible")
	r.visibles = append(r.visibles, ev)
}

func (r *surfaceRecorder) HandlePlasmaShellSurfacePanelAutoHideHideRequested(PlasmaShellSurfacePanelAutoHideHideRequestedEvent) {
	r.order = append(r.order, "auto_hide_hide_requested")
	r.hideReqs++
}

func (r *surfaceRecorder) HandlePlasmaShellSurfacePanelAutoHideShowRequested(PlasmaShellSurfacePanelAutoHideShowRequestedEvent) {
	r.order = append(r.order, "auto_hide_show_requested")
	r.showReqs++
}

// fakeSender captures the wire events emitted to the client.
type fakeSender struct {
	opcodes []uint32
}

func (f *fakeSender) SendRequest(p Proxy, opcode uint32, args ...interface{}) error {
	f.opcodes = append(f.opcodes, opcode)
	return nil
}

func newTestShellSurface(t *testing.T) (*PlasmaShell, *PlasmaShellSurface, *surfaceRecorder) {
	t.Helper()
	sh := NewPlasmaShell(nil)
	s, err := sh.GetSurface(testProxyId(), new(WlSurface))
	require.NoError(t, err)
	rec := &surfaceRecorder{}
	PlasmaShellSurfaceAddListener(s, rec)
	return sh, s, rec
}

func TestShellSurfaceDefaults(t *testing.T) {
	_, s, _ := newTestShellSurface(t)

	assert.False(t, s.IsPositionSet())
	assert.Equal(t, RoleNormal, s.Role())
	assert.Equal(t, PanelBehaviorAlwaysVisible, s.PanelBehavior())
	assert.False(t, s.SkipTaskbar())
	assert.False(t, s.SkipSwitcher())
	assert.False(t, s.PanelTakesFocus())
	assert.Equal(t, WindowTypeUnknown, s.WindowType())
	assert.False(t, s.Visible())
	assert.Equal(t, AutoHideShown, s.AutoHideState())
	assert.Nil(t, s.Output())
}

func TestSetPosition(t *testing.T) {
	_, s, rec := newTestShellSurface(t)

	s.SetPosition(100, 200)
	assert.True(t, s.IsPositionSet())
	x, y := s.Position()
	assert.Equal(t, int32(100), x)
	assert.Equal(t, int32(200), y)
	require.Len(t, rec.positions, 1)
	assert.Equal(t, PlasmaShellSurfacePositionChangedEvent{X: 100, Y: 200}, rec.positions[0])

	// identical repeat is suppressed
	s.SetPosition(100, 200)
	assert.Len(t, rec.positions, 1)

	s.SetPosition(-5, 200)
	require.Len(t, rec.positions, 2)
	x, y = s.Position()
	assert.Equal(t, int32(-5), x)
	assert.Equal(t, int32(200), y)
	assert.True(t, s.IsPositionSet())
}

func TestSetRole(t *testing.T) {
	tests := []struct {
		name string
		code uint32
		role Role
	}{
		{name: "normal", code: 0, role: RoleNormal},
		{name: "desktop", code: 1, role: RoleDesktop},
		{name: "panel", code: 2, role: RolePanel},
		{name: "on screen display", code: 3, role: RoleOnScreenDisplay},
		{name: "notification", code: 4, role: RoleNotification},
		{name: "tooltip", code: 5, role: RoleToolTip},
		{name: "critical notification", code: 6, role: RoleCriticalNotification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s, rec := newTestShellSurface(t)
			require.NoError(t, s.SetRole(tt.code))
			assert.Equal(t, tt.role, s.Role())
			if tt.role == RoleNormal {
				assert.Empty(t, rec.roles)
			} else {
				require.Len(t, rec.roles, 1)
				assert.Equal(t, tt.role, rec.roles[0].Role)
			}
		})
	}
}

func TestSetRoleInvalid(t *testing.T) {
	_, s, rec := newTestShellSurface(t)

	err := s.SetRole(7)
	var perr *PlasmaShellError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, SurfaceErrorInvalidRole, perr.Code)
	assert.Equal(t, RoleNormal, s.Role())
	assert.Empty(t, rec.roles)
}

func TestSetRoleRepeated(t *testing.T) {
	_, s, rec := newTestShellSurface(t)

	require.NoError(t, s.SetRole(uint32(RolePanel)))
	require.NoError(t, s.SetRole(uint32(RolePanel)))
	assert.Len(t, rec.roles, 1)

	require.NoError(t, s.SetRole(uint32(RoleDesktop)))
	require.NoError(t, s.SetRole(uint32(RolePanel)))
	assert.Len(t, rec.roles, 3)
}

func TestSetPanelBehavior(t *testing.T) {
	tests := []struct {
		name     string
		code     uint32
		behavior PanelBehavior
	}{
		{name: "always visible", code: 1, behavior: PanelBehaviorAlwaysVisible},
		{name: "auto hide", code: 2, behavior: PanelBehaviorAutoHide},
		{name: "windows can cover", code: 3, behavior: PanelBehaviorWindowsCanCover},
		{name: "windows go below", code: 4, behavior: PanelBehaviorWindowsGoBelow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s, rec := newTestShellSurface(t)
			require.NoError(t, s.SetPanelBehavior(tt.code))
			assert.Equal(t, tt.behavior, s.PanelBehavior())
			if tt.behavior == PanelBehaviorAlwaysVisible {
				assert.Empty(t, rec.behaviors)
			} else {
				require.Len(t, rec.behaviors, 1)
				assert.Equal(t, tt.behavior, rec.behaviors[0].PanelBehavior)
			}
		})
	}
}

func TestSetPanelBehaviorInvalid(t *testing.T) {
	for _, code := range []uint32{0, 5, 99} {
		_, s, rec := newTestShellSurface(t)
		err := s.SetPanelBehavior(code)
		var perr *PlasmaShellError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, SurfaceErrorInvalidPanelBehavior, perr.Code)
		assert.Equal(t, PanelBehaviorAlwaysVisible, s.PanelBehavior())
		assert.Empty(t, rec.behaviors)
	}
}

func TestSetPanelBehaviorWithoutPanelRole(t *testing.T) {
	// the behavior is stored and announced regardless of the current role
	_, s, rec := newTestShellSurface(t)
	require.Equal(t, RoleNormal, s.Role())

	require.NoError(t, s.SetPanelBehavior(uint32(PanelBehaviorWindowsGoBelow)))
	assert.Equal(t, PanelBehaviorWindowsGoBelow, s.PanelBehavior())
	assert.Len(t, rec.behaviors, 1)

	// and it is retained across role changes
	require.NoError(t, s.SetRole(uint32(RolePanel)))
	assert.Equal(t, PanelBehaviorWindowsGoBelow, s.PanelBehavior())
	require.NoError(t, s.SetRole(uint32(RoleNormal)))
	assert.Equal(t, PanelBehaviorWindowsGoBelow, s.PanelBehavior())
	assert.Len(t, rec.behaviors, 1)
}

func TestFlagIndependence(t *testing.T) {
	_, s, rec := newTestShellSurface(t)

	s.SetSkipTaskbar(true)
	assert.True(t, s.SkipTaskbar())
	assert.False(t, s.SkipSwitcher())
	assert.Equal(t, []string{"skip_taskbar"}, rec.order)

	s.SetSkipSwitcher(true)
	assert.True(t, s.SkipTaskbar())
	assert.True(t, s.SkipSwitcher())
	assert.Equal(t, []string{"skip_taskbar", "skip_switcher"}, rec.order)

	// repeats are suppressed
	s.SetSkipTaskbar(true)
	s.SetSkipSwitcher(true)
	assert.Len(t, rec.order, 2)

	s.SetSkipTaskbar(false)
	require.Len(t, rec.taskbars, 2)
	assert.False(t, rec.taskbars[1].SkipTaskbar)
	assert.Len(t, rec.switchers, 1)
}

func TestSetPanelTakesFocus(t *testing.T) {
	_, s, rec := newTestShellSurface(t)

	s.SetPanelTakesFocus(true)
	assert.True(t, s.PanelTakesFocus())
	require.Len(t, rec.focuses, 1)
	assert.True(t, rec.focuses[0].PanelTakesFocus)

	s.SetPanelTakesFocus(true)
	assert.Len(t, rec.focuses, 1)

	s.SetPanelTakesFocus(false)
	assert.Len(t, rec.focuses, 2)
}

func TestSetWindowType(t *testing.T) {
	_, s, rec := newTestShellSurface(t)

	s.SetWindowType(2005)
	assert.Equal(t, WindowTypeNotification, s.WindowType())
	require.Len(t, rec.windowTypes, 1)
	assert.Equal(t, WindowTypeNotification, rec.windowTypes[0].WindowType)

	// identical repeat is a no-op
	s.SetWindowType(2005)
	assert.Len(t, rec.windowTypes, 1)
}

func TestSetWindowTypeUnknownValuePreserved(t *testing.T) {
	_, s, rec := newTestShellSurface(t)

	s.SetWindowType(1234)
	assert.Equal(t, WindowType(1234), s.WindowType())
	require.Len(t, rec.windowTypes, 1)
	assert.Equal(t, WindowType(1234), rec.windowTypes[0].WindowType)
}

func TestSetVisible(t *testing.T) {
	_, s, rec := newTestShellSurface(t)

	s.SetVisible(true)
	assert.True(t, s.Visible())
	require.Len(t, rec.visibles, 1)
	assert.True(t, rec.visibles[0].Visible)

	s.SetVisible(true)
	assert.Len(t, rec.visibles, 1)

	s.SetVisible(false)
	assert.Len(t, rec.visibles, 2)
}

func TestPanelAutoHideHappyPath(t *testing.T) {
	_, s, rec := newTestShellSurface(t)
	sender := &fakeSender{}
	s.events = sender

	require.NoError(t, s.SetRole(uint32(RolePanel)))
	require.NoError(t, s.SetPanelBehavior(uint32(PanelBehaviorAutoHide)))
	assert.Equal(t, []string{"role", "panel_behavior"}, rec.order)

	require.NoError(t, s.PanelAutoHideHide())
	assert.Equal(t, 1, rec.hideReqs)
	assert.Equal(t, AutoHideHideRequested, s.AutoHideState())
	assert.Empty(t, sender.opcodes)

	s.HideAutoHidingPanel()
	assert.Equal(t, AutoHideHidden, s.AutoHideState())
	assert.Equal(t, []uint32{SurfaceEventAutoHiddenPanelHidden}, sender.opcodes)

	require.NoError(t, s.PanelAutoHideShow())
	assert.Equal(t, 1, rec.showReqs)
	assert.Equal(t, AutoHideShowRequested, s.AutoHideState())

	s.ShowAutoHidingPanel()
	assert.Equal(t, AutoHideShown, s.AutoHideState())
	assert.Equal(t, []uint32{SurfaceEventAutoHiddenPanelHidden, SurfaceEventAutoHiddenPanelShown}, sender.opcodes)

	assert.Equal(t, []string{"role", "panel_behavior", "auto_hide_hide_requested", "auto_hide_show_requested"}, rec.order)
}

// answeringCompositor answers auto-hide requests synchronously from
// inside the notification, the way a single-threaded compositor does.
type answeringCompositor struct {
	s *PlasmaShellSurface
}

func (c *answeringCompositor) HandlePlasmaShellSurfacePanelAutoHideHideRequested(PlasmaShellSurfacePanelAutoHideHideRequestedEvent) {
	c.s.HideAutoHidingPanel()
}

func (c *answeringCompositor) HandlePlasmaShellSurfacePanelAutoHideShowRequested(PlasmaShellSurfacePanelAutoHideShowRequestedEvent) {
	c.s.ShowAutoHidingPanel()
}

func TestPanelAutoHideAnsweredWithinNotification(t *testing.T) {
	_, s, _ := newTestShellSurface(t)
	sender := &fakeSender{}
	s.events = sender
	PlasmaShellSurfaceAddListener(s, &answeringCompositor{s: s})

	require.NoError(t, s.SetRole(uint32(RolePanel)))
	require.NoError(t, s.SetPanelBehavior(uint32(PanelBehaviorAutoHide)))

	// the compositor hides the panel before the request returns
	require.NoError(t, s.PanelAutoHideHide())
	assert.Equal(t, AutoHideHidden, s.AutoHideState())
	assert.Equal(t, []uint32{SurfaceEventAutoHiddenPanelHidden}, sender.opcodes)

	require.NoError(t, s.PanelAutoHideShow())
	assert.Equal(t, AutoHideShown, s.AutoHideState())
	assert.Equal(t, []uint32{SurfaceEventAutoHiddenPanelHidden, SurfaceEventAutoHiddenPanelShown}, sender.opcodes)
}

// subscribingHandler registers another handler from inside a notification.
type subscribingHandler struct {
	s    *PlasmaShellSurface
	next *surfaceRecorder
}

func (h *subscribingHandler) HandlePlasmaShellSurfaceRoleChanged(PlasmaShellSurfaceRoleChangedEvent) {
	h.s.AddRoleChangedHandler(h.next)
}

func TestAddHandlerWithinNotification(t *testing.T) {
	_, s, _ := newTestShellSurface(t)
	next := &surfaceRecorder{}
	s.AddRoleChangedHandler(&subscribingHandler{s: s, next: next})

	require.NoError(t, s.SetRole(uint32(RolePanel)))
	assert.Empty(t, next.roles)

	require.NoError(t, s.SetRole(uint32(RoleDesktop)))
	require.Len(t, next.roles, 1)
	assert.Equal(t, RoleDesktop, next.roles[0].Role)
}

func TestPanelAutoHideRefused(t *testing.T) {
	_, s, _ := newTestShellSurface(t)
	sender := &fakeSender{}
	s.events = sender

	require.NoError(t, s.SetRole(uint32(RolePanel)))
	require.NoError(t, s.SetPanelBehavior(uint32(PanelBehaviorAutoHide)))
	require.NoError(t, s.PanelAutoHideHide())

	// compositor cannot hide the panel and answers with shown
	s.ShowAutoHidingPanel()
	assert.Equal(t, AutoHideShown, s.AutoHideState())
	assert.Equal(t, []uint32{SurfaceEventAutoHiddenPanelShown}, sender.opcodes)
}

func TestPanelAutoHideMisuse(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		behavior PanelBehavior
	}{
		{name: "normal role", role: RoleNormal, behavior: PanelBehaviorAutoHide},
		{name: "panel without auto hide", role: RolePanel, behavior: PanelBehaviorAlwaysVisible},
		{name: "desktop role", role: RoleDesktop, behavior: PanelBehaviorWindowsCanCover},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s, rec := newTestShellSurface(t)
			require.NoError(t, s.SetRole(uint32(tt.role)))
			require.NoError(t, s.SetPanelBehavior(uint32(tt.behavior)))

			var perr *PlasmaShellError
			require.ErrorAs(t, s.PanelAutoHideHide(), &perr)
			assert.Equal(t, SurfaceErrorPanelNotAutoHidden, perr.Code)
			require.ErrorAs(t, s.PanelAutoHideShow(), &perr)
			assert.Equal(t, SurfaceErrorPanelNotAutoHidden, perr.Code)

			assert.Zero(t, rec.hideReqs)
			assert.Zero(t, rec.showReqs)
			assert.Equal(t, AutoHideShown, s.AutoHideState())
		})
	}
}

func TestSetOutput(t *testing.T) {
	_, s, _ := newTestShellSurface(t)

	output := new(WlOutput)
	s.SetOutput(output)
	assert.Same(t, output, s.Output())
}

func TestDestroySilencesSurface(t *testing.T) {
	sh, s, rec := newTestShellSurface(t)
	sender := &fakeSender{}
	s.events = sender

	s.SetPosition(10, 20)
	require.NoError(t, s.SetRole(uint32(RolePanel)))
	before := len(rec.order)

	s.Destroy()
	assert.Empty(t, sh.Surfaces())

	// further requests are no-ops and raise nothing
	s.SetPosition(30, 40)
	require.NoError(t, s.SetRole(uint32(RoleDesktop)))
	require.NoError(t, s.SetPanelBehavior(uint32(PanelBehaviorAutoHide)))
	s.SetSkipTaskbar(true)
	s.SetSkipSwitcher(true)
	s.SetPanelTakesFocus(true)
	s.SetWindowType(2005)
	s.SetVisible(true)
	require.NoError(t, s.PanelAutoHideHide())
	s.HideAutoHidingPanel()

	assert.Len(t, rec.order, before)
	assert.Empty(t, sender.opcodes)

	// accessors keep returning the last-known values
	x, y := s.Position()
	assert.Equal(t, int32(10), x)
	assert.Equal(t, int32(20), y)
	assert.Equal(t, RolePanel, s.Role())
}

func TestSurfaceDestroyedTeardown(t *testing.T) {
	sh, s, rec := newTestShellSurface(t)

	s.SurfaceDestroyed()
	assert.Empty(t, sh.Surfaces())
	assert.Nil(t, GetPlasmaShellSurface(s))

	s.SetSkipTaskbar(true)
	assert.Empty(t, rec.order)
}

func TestGetPlasmaShellSurface(t *testing.T) {
	_, s, _ := newTestShellSurface(t)

	assert.Same(t, s, GetPlasmaShellSurface(s))

	// lookup through a separate handle with the same identity
	var handle BaseProxy
	handle.SetId(s.Id())
	assert.Same(t, s, GetPlasmaShellSurface(&handle))

	var unknown BaseProxy
	unknown.SetId(testProxyId())
	assert.Nil(t, GetPlasmaShellSurface(&unknown))
	assert.Nil(t, GetPlasmaShellSurface(nil))

	s.Destroy()
	assert.Nil(t, GetPlasmaShellSurface(s))
}

func TestRemoveSurfaceHandlers(t *testing.T) {
	_, s, rec := newTestShellSurface(t)

	s.RemoveSkipTaskbarChangedHandler(rec)
	s.SetSkipTaskbar(true)
	assert.Empty(t, rec.taskbars)

	// the other handlers stay subscribed
	s.SetSkipSwitcher(true)
	assert.Len(t, rec.switchers, 1)
}
