// Package plasma_shell implements the server side of the org_kde_plasma_shell protocol
package plasma_shell

import (
	"log/slog"
	"sync"
)

// eventSender delivers protocol events to the client owning a resource.
// *wl.Context implements it.
type eventSender interface {
	SendRequest(p Proxy, opcode uint32, args ...interface{}) error
}

// PlasmaShellSurface represents an org_kde_plasma_shell_surface resource.
// It decorates exactly one base surface with desktop shell metadata for
// the lifetime of the resource. The compositor reads the metadata through
// the accessors and subscribes to the change notifications; clients
// mutate it through the protocol requests dispatched here.
type PlasmaShellSurface struct {
	BaseProxy
	mu    sync.RWMutex
	shell *PlasmaShell

	surface *WlSurface
	output  *WlOutput

	x, y        int32
	positionSet bool

	role            Role
	panelBehavior   PanelBehavior
	skipTaskbar     bool
	skipSwitcher    bool
	panelTakesFocus bool
	windowType      WindowType
	visible         bool
	autoHide        AutoHideState

	destroyed bool

	events eventSender

	privatePlasmaShellSurfacePositionChanged            []PlasmaShellSurfacePositionChangedHandler
	privatePlasmaShellSurfaceRoleChanged                []PlasmaShellSurfaceRoleChangedHandler
	privatePlasmaShellSurfacePanelBehaviorChanged       []PlasmaShellSurfacePanelBehaviorChangedHandler
	privatePlasmaShellSurfaceSkipTaskbarChanged         []PlasmaShellSurfaceSkipTaskbarChangedHandler
	privatePlasmaShellSurfaceSkipSwitcherChanged        []PlasmaShellSurfaceSkipSwitcherChangedHandler
	privatePlasmaShellSurfacePanelTakesFocusChanged     []PlasmaShellSurfacePanelTakesFocusChangedHandler
	privatePlasmaShellSurfaceWindowTypeChanged          []PlasmaShellSurfaceWindowTypeChangedHandler
	privatePlasmaShellSurfaceVisibleChanged             []PlasmaShellSurfaceVisibleChangedHandler
	privatePlasmaShellSurfacePanelAutoHideHideRequested []PlasmaShellSurfacePanelAutoHideHideRequestedHandler
	privatePlasmaShellSurfacePanelAutoHideShowRequested []PlasmaShellSurfacePanelAutoHideShowRequestedHandler
}

func newPlasmaShellSurface(shell *PlasmaShell, base *WlSurface) *PlasmaShellSurface {
	return &PlasmaShellSurface{
		shell:         shell,
		surface:       base,
		role:          RoleNormal,
		panelBehavior: PanelBehaviorAlwaysVisible,
		windowType:    WindowTypeUnknown,
		autoHide:      AutoHideShown,
	}
}

// Surface returns the base surface this shell surface was created for.
func (s *PlasmaShellSurface) Surface() *WlSurface {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.surface
}

// Output returns the output the client asked the surface to be placed on,
// or nil if none was requested.
func (s *PlasmaShellSurface) Output() *WlOutput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.output
}

// Position returns the requested position in global coordinates. The
// value is meaningful only once IsPositionSet reports true.
func (s *PlasmaShellSurface) Position() (x, y int32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.x, s.y
}

// IsPositionSet reports whether a global position has been requested.
func (s *PlasmaShellSurface) IsPositionSet() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.positionSet
}

// Role returns the requested role, RoleNormal if none was requested.
func (s *PlasmaShellSurface) Role() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// PanelBehavior returns the requested panel behavior. It is relevant to
// the compositor only while the role is RolePanel.
func (s *PlasmaShellSurface) PanelBehavior() PanelBehavior {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.panelBehavior
}

// SkipTaskbar reports whether the surface asked to stay out of the taskbar.
func (s *PlasmaShellSurface) SkipTaskbar() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skipTaskbar
}

// SkipSwitcher reports whether the surface asked to stay out of window switchers.
func (s *PlasmaShellSurface) SkipSwitcher() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skipSwitcher
}

// PanelTakesFocus reports whether the surface wants focus despite having
// a role that normally does not receive it.
func (s *PlasmaShellSurface) PanelTakesFocus() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.panelTakesFocus
}

// WindowType returns the last requested window type, WindowTypeUnknown if
// none was requested. Values outside the known set are preserved verbatim.
func (s *PlasmaShellSurface) WindowType() WindowType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windowType
}

// Visible reports the compositor-observed visibility of the surface.
func (s *PlasmaShellSurface) Visible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}

// AutoHideState returns the current state of the auto-hide handshake. It
// is meaningful only while the role is RolePanel with PanelBehaviorAutoHide.
func (s *PlasmaShellSurface) AutoHideState() AutoHideState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.autoHide
}

// SetOutput handles the set_output request. The association is advisory;
// it is stored for the compositor to read.
func (s *PlasmaShellSurface) SetOutput(output *WlOutput) {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		s.logStale("set_output")
		return
	}
	s.output = output
	s.mu.Unlock()
}

// SetPosition handles the set_position request. The first request marks
// the position as set; repeats with identical coordinates are suppressed.
func (s *PlasmaShellSurface) SetPosition(x, y int32) {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		s.logStale("set_position")
		return
	}
	if s.positionSet && s.x == x && s.y == y {
		s.mu.Unlock()
		return
	}
	s.x, s.y = x, y
	s.positionSet = true
	s.mu.Unlock()
	s.emitPositionChanged(PlasmaShellSurfacePositionChangedEvent{X: x, Y: y})
}

// SetRole handles the set_role request. Codes outside the role enum fail
// with SurfaceErrorInvalidRole. The stored panel behavior is retained
// across role changes.
func (s *PlasmaShellSurface) SetRole(code uint32) error {
	role, ok := roleFromWire(code)
	if !ok {
		return &PlasmaShellError{Code: SurfaceErrorInvalidRole, Message: "invalid role"}
	}
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		s.logStale("set_role")
		return nil
	}
	if s.role == role {
		s.mu.Unlock()
		return nil
	}
	s.role = role
	s.mu.Unlock()
	s.emitRoleChanged(PlasmaShellSurfaceRoleChangedEvent{Role: role})
	return nil
}

// SetPanelBehavior handles the set_panel_behavior request. The behavior
// is stored regardless of the current role; codes outside the enum fail
// with SurfaceErrorInvalidPanelBehavior.
func (s *PlasmaShellSurface) SetPanelBehavior(code uint32) error {
	behavior, ok := panelBehaviorFromWire(code)
	if !ok {
		return &PlasmaShellError{Code: SurfaceErrorInvalidPanelBehavior, Message: "invalid panel behavior"}
	}
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		s.logStale("set_panel_behavior")
		return nil
	}
	if s.panelBehavior == behavior {
		s.mu.Unlock()
		return nil
	}
	s.panelBehavior = behavior
	s.mu.Unlock()
	s.emitPanelBehaviorChanged(PlasmaShellSurfacePanelBehaviorChangedEvent{PanelBehavior: behavior})
	return nil
}

// SetSkipTaskbar handles the set_skip_taskbar request.
func (s *PlasmaShellSurface) SetSkipTaskbar(skip bool) {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		s.logStale("set_skip_taskbar")
		return
	}
	if s.skipTaskbar == skip {
		s.mu.Unlock()
		return
	}
	s.skipTaskbar = skip
	s.mu.Unlock()
	s.emitSkipTaskbarChanged(PlasmaShellSurfaceSkipTaskbarChangedEvent{SkipTaskbar: skip})
}

// SetSkipSwitcher handles the set_skip_switcher request.
func (s *PlasmaShellSurface) SetSkipSwitcher(skip bool) {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		s.logStale("set_skip_switcher")
		return
	}
	if s.skipSwitcher == skip {
		s.mu.Unlock()
		return
	}
	s.skipSwitcher = skip
	s.mu.Unlock()
	s.emitSkipSwitcherChanged(PlasmaShellSurfaceSkipSwitcherChangedEvent{SkipSwitcher: skip})
}

// SetPanelTakesFocus handles the set_panel_takes_focus request.
func (s *PlasmaShellSurface) SetPanelTakesFocus(takesFocus bool) {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		s.logStale("set_panel_takes_focus")
		return
	}
	if s.panelTakesFocus == takesFocus {
		s.mu.Unlock()
		return
	}
	s.panelTakesFocus = takesFocus
	s.mu.Unlock()
	s.emitPanelTakesFocusChanged(PlasmaShellSurfacePanelTakesFocusChangedEvent{PanelTakesFocus: takesFocus})
}

// SetWindowType handles the set_window_type request. Unknown integers are
// an open set and stored verbatim.
func (s *PlasmaShellSurface) SetWindowType(v int32) {
	windowType := WindowType(v)
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		s.logStale("set_window_type")
		return
	}
	if s.windowType == windowType {
		s.mu.Unlock()
		return
	}
	s.windowType = windowType
	s.mu.Unlock()
	s.emitWindowTypeChanged(PlasmaShellSurfaceWindowTypeChangedEvent{WindowType: windowType})
}

// PanelAutoHideHide handles the panel_auto_hide_hide request. It is valid
// only on an auto-hiding panel and asks the compositor to hide it.
func (s *PlasmaShellSurface) PanelAutoHideHide() error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		s.logStale("panel_auto_hide_hide")
		return nil
	}
	if s.role != RolePanel || s.panelBehavior != PanelBehaviorAutoHide {
		s.mu.Unlock()
		return &PlasmaShellError{Code: SurfaceErrorPanelNotAutoHidden, Message: "panel_auto_hide_hide requires an auto-hiding panel"}
	}
	s.autoHide = AutoHideHideRequested
	s.mu.Unlock()
	s.emitPanelAutoHideHideRequested(PlasmaShellSurfacePanelAutoHideHideRequestedEvent{})
	return nil
}

// PanelAutoHideShow handles the panel_auto_hide_show request. It is valid
// only on an auto-hiding panel and asks the compositor to show it again.
func (s *PlasmaShellSurface) PanelAutoHideShow() error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		s.logStale("panel_auto_hide_show")
		return nil
	}
	if s.role != RolePanel || s.panelBehavior != PanelBehaviorAutoHide {
		s.mu.Unlock()
		return &PlasmaShellError{Code: SurfaceErrorPanelNotAutoHidden, Message: "panel_auto_hide_show requires an auto-hiding panel"}
	}
	s.autoHide = AutoHideShowRequested
	s.mu.Unlock()
	s.emitPanelAutoHideShowRequested(PlasmaShellSurfacePanelAutoHideShowRequestedEvent{})
	return nil
}

// HideAutoHidingPanel informs the client that its auto-hiding panel got
// hidden. The compositor invokes it after carrying out a hide request.
// Once the panel is shown again ShowAutoHidingPanel should be used.
func (s *PlasmaShellSurface) HideAutoHidingPanel() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.autoHide = AutoHideHidden
	s.mu.Unlock()
	s.sendEvent(SurfaceEventAutoHiddenPanelHidden)
}

// ShowAutoHidingPanel informs the client that its auto-hiding panel got
// shown again, either after a show request, after an edge trigger, or
// because the compositor refused to hide it.
func (s *PlasmaShellSurface) ShowAutoHidingPanel() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.autoHide = AutoHideShown
	s.mu.Unlock()
	s.sendEvent(SurfaceEventAutoHiddenPanelShown)
}

// SetVisible records the compositor-observed visibility of the surface.
func (s *PlasmaShellSurface) SetVisible(visible bool) {
	s.mu.Lock()
	if s.destroyed || s.visible == visible {
		s.mu.Unlock()
		return
	}
	s.visible = visible
	s.mu.Unlock()
	s.emitVisibleChanged(PlasmaShellSurfaceVisibleChangedEvent{Visible: visible})
}

// Destroy handles the destroy request. The resource becomes invalid; any
// further request on it is a no-op.
func (s *PlasmaShellSurface) Destroy() {
	s.invalidate()
}

// SurfaceDestroyed invalidates the shell surface after its base surface
// was torn down. The shell surface must never outlive the base surface;
// the display glue invokes this from the base surface destructor.
func (s *PlasmaShellSurface) SurfaceDestroyed() {
	s.invalidate()
}

func (s *PlasmaShellSurface) invalidate() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	base := s.surface
	s.mu.Unlock()

	if s.shell != nil {
		s.shell.forget(base)
	}
	unregisterShellSurface(s)
}

func (s *PlasmaShellSurface) sendEvent(opcode uint32) {
	s.mu.RLock()
	sender := s.events
	s.mu.RUnlock()
	if sender == nil {
		return
	}
	if err := sender.SendRequest(s, opcode); err != nil {
		slog.Debug("org_kde_plasma_shell_surface event send failed",
			"opcode", opcode, "id", s.Id(), "err", err)
	}
}

func (s *PlasmaShellSurface) logStale(request string) {
	slog.Debug("org_kde_plasma_shell_surface request on destroyed surface",
		"request", request, "id", s.Id())
}

// postError routes a protocol error raised during dispatch to the shell
// global's error hook.
func (s *PlasmaShellSurface) postError(err error) {
	if s.shell != nil {
		s.shell.postError(s, err)
	}
}

// Dispatch dispatches a client request for PlasmaShellSurface
func (s *PlasmaShellSurface) Dispatch(event *Event) {
	switch event.Opcode {
	case SurfaceRequestDestroy:
		s.Destroy()
	case SurfaceRequestSetOutput:
		output, _ := event.Proxy(s.Context()).(*WlOutput)
		s.SetOutput(output)
	case SurfaceRequestSetPosition:
		x := event.Int32()
		y := event.Int32()
		s.SetPosition(x, y)
	case SurfaceRequestSetRole:
		if err := s.SetRole(event.Uint32()); err != nil {
			s.postError(err)
		}
	case SurfaceRequestSetPanelBehavior:
		if err := s.SetPanelBehavior(event.Uint32()); err != nil {
			s.postError(err)
		}
	case SurfaceRequestSetSkipTaskbar:
		s.SetSkipTaskbar(event.Uint32() != 0)
	case SurfaceRequestSetSkipSwitcher:
		s.SetSkipSwitcher(event.Uint32() != 0)
	case SurfaceRequestSetPanelTakesFocus:
		s.SetPanelTakesFocus(event.Uint32() != 0)
	case SurfaceRequestSetWindowType:
		s.SetWindowType(event.Int32())
	case SurfaceRequestPanelAutoHideHide:
		if err := s.PanelAutoHideHide(); err != nil {
			s.postError(err)
		}
	case SurfaceRequestPanelAutoHideShow:
		if err := s.PanelAutoHideShow(); err != nil {
			s.postError(err)
		}
	}
}

// Side table from resource handle to shell surface, for the compositor's
// "which shell surface does this resource belong to" lookups. It also
// holds the per-base-surface association, which is what makes the
// one-shell-surface-per-base-surface invariant hold across every bound
// global, not just within one.

type shellSurfaceKey struct {
	ctx *Context
	id  ProxyId
}

var (
	shellSurfacesMu     sync.RWMutex
	shellSurfaces       = make(map[shellSurfaceKey]*PlasmaShellSurface)
	shellSurfacesByBase = make(map[*WlSurface]*PlasmaShellSurface)
)

// registerShellSurface claims the base surface for s. It reports false
// when another live shell surface already decorates the base surface.
func registerShellSurface(s *PlasmaShellSurface) bool {
	shellSurfacesMu.Lock()
	defer shellSurfacesMu.Unlock()
	if _, ok := shellSurfacesByBase[s.surface]; ok {
		return false
	}
	shellSurfacesByBase[s.surface] = s
	shellSurfaces[shellSurfaceKey{ctx: s.Context(), id: s.Id()}] = s
	return true
}

func unregisterShellSurface(s *PlasmaShellSurface) {
	shellSurfacesMu.Lock()
	delete(shellSurfaces, shellSurfaceKey{ctx: s.Context(), id: s.Id()})
	if shellSurfacesByBase[s.surface] == s {
		delete(shellSurfacesByBase, s.surface)
	}
	shellSurfacesMu.Unlock()
}

// GetPlasmaShellSurface returns the PlasmaShellSurface for the native
// resource handle, or nil if the handle does not belong to one.
func GetPlasmaShellSurface(p Proxy) *PlasmaShellSurface {
	if p == nil {
		return nil
	}
	shellSurfacesMu.RLock()
	defer shellSurfacesMu.RUnlock()
	return shellSurfaces[shellSurfaceKey{ctx: p.Context(), id: p.Id()}]
}

// PlasmaShellSurfacePositionChangedEvent carries a requested change of
// global position.
type PlasmaShellSurfacePositionChangedEvent struct {
	X int32
	Y int32
}

// PlasmaShellSurfacePositionChangedHandler is the handler interface for PlasmaShellSurfacePositionChangedEvent
type PlasmaShellSurfacePositionChangedHandler interface {
	HandlePlasmaShellSurfacePositionChanged(PlasmaShellSurfacePositionChangedEvent)
}

// AddPositionChangedHandler adds the PositionChanged handler
func (s *PlasmaShellSurface) AddPositionChangedHandler(h PlasmaShellSurfacePositionChangedHandler) {
	if h != nil {
		s.mu.Lock()
		s.privatePlasmaShellSurfacePositionChanged = append(s.privatePlasmaShellSurfacePositionChanged, h)
		s.mu.Unlock()
	}
}

// RemovePositionChangedHandler removes the PositionChanged handler
func (s *PlasmaShellSurface) RemovePositionChangedHandler(h PlasmaShellSurfacePositionChangedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.privatePlasmaShellSurfacePositionChanged {
		if e == h {
			s.privatePlasmaShellSurfacePositionChanged = append(s.privatePlasmaShellSurfacePositionChanged[:i], s.privatePlasmaShellSurfacePositionChanged[i+1:]...)
			break
		}
	}
}

func (s *PlasmaShellSurface) emitPositionChanged(ev PlasmaShellSurfacePositionChangedEvent) {
	s.mu.RLock()
	handlers := append([]PlasmaShellSurfacePositionChangedHandler(nil), s.privatePlasmaShellSurfacePositionChanged...)
	s.mu.RUnlock()
	for _, h := range handlers {
		h.HandlePlasmaShellSurfacePositionChanged(ev)
	}
}

// PlasmaShellSurfaceRoleChangedEvent carries a requested change of role.
type PlasmaShellSurfaceRoleChangedEvent struct {
	Role Role
}

// PlasmaShellSurfaceRoleChangedHandler is the handler interface for PlasmaShellSurfaceRoleChangedEvent
type PlasmaShellSurfaceRoleChangedHandler interface {
	HandlePlasmaShellSurfaceRoleChanged(PlasmaShellSurfaceRoleChangedEvent)
}

// AddRoleChangedHandler adds the RoleChanged handler
func (s *PlasmaShellSurface) AddRoleChangedHandler(h PlasmaShellSurfaceRoleChangedHandler) {
	if h != nil {
		s.mu.Lock()
		s.privatePlasmaShellSurfaceRoleChanged = append(s.privatePlasmaShellSurfaceRoleChanged, h)
		s.mu.Unlock()
	}
}

// RemoveRoleChangedHandler removes the RoleChanged handler
func (s *PlasmaShellSurface) RemoveRoleChangedHandler(h PlasmaShellSurfaceRoleChangedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.privatePlasmaShellSurfaceRoleChanged {
		if e == h {
			s.privatePlasmaShellSurfaceRoleChanged = append(s.privatePlasmaShellSurfaceRoleChanged[:i], s.privatePlasmaShellSurfaceRoleChanged[i+1:]...)
			break
		}
	}
}

func (s *PlasmaShellSurface) emitRoleChanged(ev PlasmaShellSurfaceRoleChangedEvent) {
	s.mu.RLock()
	handlers := append([]PlasmaShellSurfaceRoleChangedHandler(nil), s.privatePlasmaShellSurfaceRoleChanged...)
	s.mu.RUnlock()
	for _, h := range handlers {
		h.HandlePlasmaShellSurfaceRoleChanged(ev)
	}
}

// PlasmaShellSurfacePanelBehaviorChangedEvent carries a requested change
// of panel behavior.
type PlasmaShellSurfacePanelBehaviorChangedEvent struct {
	PanelBehavior PanelBehavior
}

// PlasmaShellSurfacePanelBehaviorChangedHandler is the handler interface for PlasmaShellSurfacePanelBehaviorChangedEvent
type PlasmaShellSurfacePanelBehaviorChangedHandler interface {
	HandlePlasmaShellSurfacePanelBehaviorChanged(PlasmaShellSurfacePanelBehaviorChangedEvent)
}

// AddPanelBehaviorChangedHandler adds the PanelBehaviorChanged handler
func (s *PlasmaShellSurface) AddPanelBehaviorChangedHandler(h PlasmaShellSurfacePanelBehaviorChangedHandler) {
	if h != nil {
		s.mu.Lock()
		s.privatePlasmaShellSurfacePanelBehaviorChanged = append(s.privatePlasmaShellSurfacePanelBehaviorChanged, h)
		s.mu.Unlock()
	}
}

// RemovePanelBehaviorChangedHandler removes the PanelBehaviorChanged handler
func (s *PlasmaShellSurface) RemovePanelBehaviorChangedHandler(h PlasmaShellSurfacePanelBehaviorChangedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.privatePlasmaShellSurfacePanelBehaviorChanged {
		if e == h {
			s.privatePlasmaShellSurfacePanelBehaviorChanged = append(s.privatePlasmaShellSurfacePanelBehaviorChanged[:i], s.privatePlasmaShellSurfacePanelBehaviorChanged[i+1:]...)
			break
		}
	}
}

func (s *PlasmaShellSurface) emitPanelBehaviorChanged(ev PlasmaShellSurfacePanelBehaviorChangedEvent) {
	s.mu.RLock()
	handlers := append([]PlasmaShellSurfacePanelBehaviorChangedHandler(nil), s.privatePlasmaShellSurfacePanelBehaviorChanged...)
	s.mu.RUnlock()
	for _, h := range handlers {
		h.HandlePlasmaShellSurfacePanelBehaviorChanged(ev)
	}
}

// PlasmaShellSurfaceSkipTaskbarChangedEvent carries a requested change of
// the skip-taskbar flag.
type PlasmaShellSurfaceSkipTaskbarChangedEvent struct {
	SkipTaskbar bool
}

// PlasmaShellSurfaceSkipTaskbarChangedHandler is the handler interface for PlasmaShellSurfaceSkipTaskbarChangedEvent
type PlasmaShellSurfaceSkipTaskbarChangedHandler interface {
	HandlePlasmaShellSurfaceSkipTaskbarChanged(PlasmaShellSurfaceSkipTaskbarChangedEvent)
}

// AddSkipTaskbarChangedHandler adds the SkipTaskbarChanged handler
func (s *PlasmaShellSurface) AddSkipTaskbarChangedHandler(h PlasmaShellSurfaceSkipTaskbarChangedHandler) {
	if h != nil {
		s.mu.Lock()
		s.privatePlasmaShellSurfaceSkipTaskbarChanged = append(s.privatePlasmaShellSurfaceSkipTaskbarChanged, h)
		s.mu.Unlock()
	}
}

// RemoveSkipTaskbarChangedHandler removes the SkipTaskbarChanged handler
func (s *PlasmaShellSurface) RemoveSkipTaskbarChangedHandler(h PlasmaShellSurfaceSkipTaskbarChangedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.privatePlasmaShellSurfaceSkipTaskbarChanged {
		if e == h {
			s.privatePlasmaShellSurfaceSkipTaskbarChanged = append(s.privatePlasmaShellSurfaceSkipTaskbarChanged[:i], s.privatePlasmaShellSurfaceSkipTaskbarChanged[i+1:]...)
			break
		}
	}
}

func (s *PlasmaShellSurface) emitSkipTaskbarChanged(ev PlasmaShellSurfaceSkipTaskbarChangedEvent) {
	s.mu.RLock()
	handlers := append([]PlasmaShellSurfaceSkipTaskbarChangedHandler(nil), s.privatePlasmaShellSurfaceSkipTaskbarChanged...)
	s.mu.RUnlock()
	for _, h := range handlers {
		h.HandlePlasmaShellSurfaceSkipTaskbarChanged(ev)
	}
}

// PlasmaShellSurfaceSkipSwitcherChangedEvent carries a requested change
// of the skip-switcher flag.
type PlasmaShellSurfaceSkipSwitcherChangedEvent struct {
	SkipSwitcher bool
}

// PlasmaShellSurfaceSkipSwitcherChangedHandler is the handler interface for PlasmaShellSurfaceSkipSwitcherChangedEvent
type PlasmaShellSurfaceSkipSwitcherChangedHandler interface {
	HandlePlasmaShellSurfaceSkipSwitcherChanged(PlasmaShellSurfaceSkipSwitcherChangedEvent)
}

// AddSkipSwitcherChangedHandler adds the SkipSwitcherChanged handler
func (s *PlasmaShellSurface) AddSkipSwitcherChangedHandler(h PlasmaShellSurfaceSkipSwitcherChangedHandler) {
	if h != nil {
		s.mu.Lock()
		s.privatePlasmaShellSurfaceSkipSwitcherChanged = append(s.privatePlasmaShellSurfaceSkipSwitcherChanged, h)
		s.mu.Unlock()
	}
}

// RemoveSkipSwitcherChangedHandler removes the SkipSwitcherChanged handler
func (s *PlasmaShellSurface) RemoveSkipSwitcherChangedHandler(h PlasmaShellSurfaceSkipSwitcherChangedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.privatePlasmaShellSurfaceSkipSwitcherChanged {
		if e == h {
			s.privatePlasmaShellSurfaceSkipSwitcherChanged = append(s.privatePlasmaShellSurfaceSkipSwitcherChanged[:i], s.privatePlasmaShellSurfaceSkipSwitcherChanged[i+1:]...)
			break
		}
	}
}

func (s *PlasmaShellSurface) emitSkipSwitcherChanged(ev PlasmaShellSurfaceSkipSwitcherChangedEvent) {
	s.mu.RLock()
	handlers := append([]PlasmaShellSurfaceSkipSwitcherChangedHandler(nil), s.privatePlasmaShellSurfaceSkipSwitcherChanged...)
	s.mu.RUnlock()
	for _, h := range handlers {
		h.HandlePlasmaShellSurfaceSkipSwitcherChanged(ev)
	}
}

// PlasmaShellSurfacePanelTakesFocusChangedEvent carries a requested
// change of the panel-takes-focus flag.
type PlasmaShellSurfacePanelTakesFocusChangedEvent struct {
	PanelTakesFocus bool
}

// PlasmaShellSurfacePanelTakesFocusChangedHandler is the handler interface for PlasmaShellSurfacePanelTakesFocusChangedEvent
type PlasmaShellSurfacePanelTakesFocusChangedHandler interface {
	HandlePlasmaShellSurfacePanelTakesFocusChanged(PlasmaShellSurfacePanelTakesFocusChangedEvent)
}

// AddPanelTakesFocusChangedHandler adds the PanelTakesFocusChanged handler
func (s *PlasmaShellSurface) AddPanelTakesFocusChangedHandler(h PlasmaShellSurfacePanelTakesFocusChangedHandler) {
	if h != nil {
		s.mu.Lock()
		s.privatePlasmaShellSurfacePanelTakesFocusChanged = append(s.privatePlasmaShellSurfacePanelTakesFocusChanged, h)
		s.mu.Unlock()
	}
}

// RemovePanelTakesFocusChangedHandler removes the PanelTakesFocusChanged handler
func (s *PlasmaShellSurface) RemovePanelTakesFocusChangedHandler(h PlasmaShellSurfacePanelTakesFocusChangedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.privatePlasmaShellSurfacePanelTakesFocusChanged {
		if e == h {
			s.privatePlasmaShellSurfacePanelTakesFocusChanged = append(s.privatePlasmaShellSurfacePanelTakesFocusChanged[:i], s.privatePlasmaShellSurfacePanelTakesFocusChanged[i+1:]...)
			break
		}
	}
}

func (s *PlasmaShellSurface) emitPanelTakesFocusChanged(ev PlasmaShellSurfacePanelTakesFocusChangedEvent) {
	s.mu.RLock()
	handlers := append([]PlasmaShellSurfacePanelTakesFocusChangedHandler(nil), s.privatePlasmaShellSurfacePanelTakesFocusChanged...)
	s.mu.RUnlock()
	for _, h := range handlers {
		h.HandlePlasmaShellSurfacePanelTakesFocusChanged(ev)
	}
}

// PlasmaShellSurfaceWindowTypeChangedEvent carries a requested change of
// the window type.
type PlasmaShellSurfaceWindowTypeChangedEvent struct {
	WindowType WindowType
}

// PlasmaShellSurfaceWindowTypeChangedHandler is the handler interface for PlasmaShellSurfaceWindowTypeChangedEvent
type PlasmaShellSurfaceWindowTypeChangedHandler interface {
	HandlePlasmaShellSurfaceWindowTypeChanged(PlasmaShellSurfaceWindowTypeChangedEvent)
}

// AddWindowTypeChangedHandler adds the WindowTypeChanged handler
func (s *PlasmaShellSurface) AddWindowTypeChangedHandler(h PlasmaShellSurfaceWindowTypeChangedHandler) {
	if h != nil {
		s.mu.Lock()
		s.privatePlasmaShellSurfaceWindowTypeChanged = append(s.privatePlasmaShellSurfaceWindowTypeChanged, h)
		s.mu.Unlock()
	}
}

// RemoveWindowTypeChangedHandler removes the WindowTypeChanged handler
func (s *PlasmaShellSurface) RemoveWindowTypeChangedHandler(h PlasmaShellSurfaceWindowTypeChangedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.privatePlasmaShellSurfaceWindowTypeChanged {
		if e == h {
			s.privatePlasmaShellSurfaceWindowTypeChanged = append(s.privatePlasmaShellSurfaceWindowTypeChanged[:i], s.privatePlasmaShellSurfaceWindowTypeChanged[i+1:]...)
			break
		}
	}
}

func (s *PlasmaShellSurface) emitWindowTypeChanged(ev PlasmaShellSurfaceWindowTypeChangedEvent) {
	s.mu.RLock()
	handlers := append([]PlasmaShellSurfaceWindowTypeChangedHandler(nil), s.privatePlasmaShellSurfaceWindowTypeChanged...)
	s.mu.RUnlock()
	for _, h := range handlers {
		h.HandlePlasmaShellSurfaceWindowTypeChanged(ev)
	}
}

// PlasmaShellSurfaceVisibleChangedEvent carries a change of the
// compositor-observed visibility.
type PlasmaShellSurfaceVisibleChangedEvent struct {
	Visible bool
}

// PlasmaShellSurfaceVisibleChangedHandler is the handler interface for PlasmaShellSurfaceVisibleChangedEvent
type PlasmaShellSurfaceVisibleChangedHandler interface {
	HandlePlasmaShellSurfaceVisibleChanged(PlasmaShellSurfaceVisibleChangedEvent)
}

// AddVisibleChangedHandler adds the VisibleChanged handler
func (s *PlasmaShellSurface) AddVisibleChangedHandler(h PlasmaShellSurfaceVisibleChangedHandler) {
	if h != nil {
		s.mu.Lock()
		s.privatePlasmaShellSurfaceVisibleChanged = append(s.privatePlasmaShellSurfaceVisibleChanged, h)
		s.mu.Unlock()
	}
}

// RemoveVisibleChangedHandler removes the VisibleChanged handler
func (s *PlasmaShellSurface) RemoveVisibleChangedHandler(h PlasmaShellSurfaceVisibleChangedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.privatePlasmaShellSurfaceVisibleChanged {
		if e == h {
			s.privatePlasmaShellSurfaceVisibleChanged = append(s.privatePlasmaShellSurfaceVisibleChanged[:i], s.privatePlasmaShellSurfaceVisibleChanged[i+1:]...)
			break
		}
	}
}

func (s *PlasmaShellSurface) emitVisibleChanged(ev PlasmaShellSurfaceVisibleChangedEvent) {
	s.mu.RLock()
	handlers := append([]PlasmaShellSurfaceVisibleChangedHandler(nil), s.privatePlasmaShellSurfaceVisibleChanged...)
	s.mu.RUnlock()
	for _, h := range handlers {
		h.HandlePlasmaShellSurfaceVisibleChanged(ev)
	}
}

// PlasmaShellSurfacePanelAutoHideHideRequestedEvent signals that an
// auto-hiding panel asked to be hidden. The compositor should answer with
// HideAutoHidingPanel once the surface is hidden, or ShowAutoHidingPanel
// if it cannot hide it.
type PlasmaShellSurfacePanelAutoHideHideRequestedEvent struct {
}

// PlasmaShellSurfacePanelAutoHideHideRequestedHandler is the handler interface for PlasmaShellSurfacePanelAutoHideHideRequestedEvent
type PlasmaShellSurfacePanelAutoHideHideRequestedHandler interface {
	HandlePlasmaShellSurfacePanelAutoHideHideRequested(PlasmaShellSurfacePanelAutoHideHideRequestedEvent)
}

// AddPanelAutoHideHideRequestedHandler adds the PanelAutoHideHideRequested handler
func (s *PlasmaShellSurface) AddPanelAutoHideHideRequestedHandler(h PlasmaShellSurfacePanelAutoHideHideRequestedHandler) {
	if h != nil {
		s.mu.Lock()
		s.privatePlasmaShellSurfacePanelAutoHideHideRequested = append(s.privatePlasmaShellSurfacePanelAutoHideHideRequested, h)
		s.mu.Unlock()
	}
}

// RemovePanelAutoHideHideRequestedHandler removes the PanelAutoHideHideRequested handler
func (s *PlasmaShellSurface) RemovePanelAutoHideHideRequestedHandler(h PlasmaShellSurfacePanelAutoHideHideRequestedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.privatePlasmaShellSurfacePanelAutoHideHideRequested {
		if e == h {
			s.privatePlasmaShellSurfacePanelAutoHideHideRequested = append(s.privatePlasmaShellSurfacePanelAutoHideHideRequested[:i], s.privatePlasmaShellSurfacePanelAutoHideHideRequested[i+1:]...)
			break
		}
	}
}

func (s *PlasmaShellSurface) emitPanelAutoHideHideRequested(ev PlasmaShellSurfacePanelAutoHideHideRequestedEvent) {
	s.mu.RLock()
	handlers := append([]PlasmaShellSurfacePanelAutoHideHideRequestedHandler(nil), s.privatePlasmaShellSurfacePanelAutoHideHideRequested...)
	s.mu.RUnlock()
	for _, h := range handlers {
		h.HandlePlasmaShellSurfacePanelAutoHideHideRequested(ev)
	}
}

// PlasmaShellSurfacePanelAutoHideShowRequestedEvent signals that an
// auto-hiding panel asked to be shown again. The compositor should answer
// with ShowAutoHidingPanel once the surface is shown.
type PlasmaShellSurfacePanelAutoHideShowRequestedEvent struct {
}

// PlasmaShellSurfacePanelAutoHideShowRequestedHandler is the handler interface for PlasmaShellSurfacePanelAutoHideShowRequestedEvent
type PlasmaShellSurfacePanelAutoHideShowRequestedHandler interface {
	HandlePlasmaShellSurfacePanelAutoHideShowRequested(PlasmaShellSurfacePanelAutoHideShowRequestedEvent)
}

// AddPanelAutoHideShowRequestedHandler adds the PanelAutoHideShowRequested handler
func (s *PlasmaShellSurface) AddPanelAutoHideShowRequestedHandler(h PlasmaShellSurfacePanelAutoHideShowRequestedHandler) {
	if h != nil {
		s.mu.Lock()
		s.privatePlasmaShellSurfacePanelAutoHideShowRequested = append(s.privatePlasmaShellSurfacePanelAutoHideShowRequested, h)
		s.mu.Unlock()
	}
}

// RemovePanelAutoHideShowRequestedHandler removes the PanelAutoHideShowRequested handler
func (s *PlasmaShellSurface) RemovePanelAutoHideShowRequestedHandler(h PlasmaShellSurfacePanelAutoHideShowRequestedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.privatePlasmaShellSurfacePanelAutoHideShowRequested {
		if e == h {
			s.privatePlasmaShellSurfacePanelAutoHideShowRequested = append(s.privatePlasmaShellSurfacePanelAutoHideShowRequested[:i], s.privatePlasmaShellSurfacePanelAutoHideShowRequested[i+1:]...)
			break
		}
	}
}

func (s *PlasmaShellSurface) emitPanelAutoHideShowRequested(ev PlasmaShellSurfacePanelAutoHideShowRequestedEvent) {
	s.mu.RLock()
	handlers := append([]PlasmaShellSurfacePanelAutoHideShowRequestedHandler(nil), s.privatePlasmaShellSurfacePanelAutoHideShowRequested...)
	s.mu.RUnlock()
	for _, h := range handlers {
		h.HandlePlasmaShellSurfacePanelAutoHideShowRequested(ev)
	}
}
