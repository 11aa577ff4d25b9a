// Package plasma_shell implements the server side of the org_kde_plasma_shell protocol
package plasma_shell

import (
	"github.com/neurlang/wayland/wl"
)

// Basic type aliases for compatibility
type BaseProxy = wl.BaseProxy
type Event = wl.Event
type Context = wl.Context
type Proxy = wl.Proxy
type ProxyId = wl.ProxyId
type WlSurface = wl.Surface
type WlOutput = wl.Output

// Interface names and the advertised version
const (
	PlasmaShellInterfaceName        = "org_kde_plasma_shell"
	PlasmaShellSurfaceInterfaceName = "org_kde_plasma_shell_surface"
	PlasmaShellInterfaceVersion     = 6
)

// Helper functions to add listeners

// PlasmaShellAddListener adds all listeners for plasma shell events
func PlasmaShellAddListener(sh *PlasmaShell, h interface{}) {
	if handler, ok := h.(PlasmaShellSurfaceCreatedHandler); ok {
		sh.AddSurfaceCreatedHandler(handler)
	}
}

// PlasmaShellSurfaceAddListener adds all listeners for plasma shell surface events
func PlasmaShellSurfaceAddListener(s *PlasmaShellSurface, h interface{}) {
	if handler, ok := h.(PlasmaShellSurfacePositionChangedHandler); ok {
		s.AddPositionChangedHandler(handler)
	}
	if handler, ok := h.(PlasmaShellSurfaceRoleChangedHandler); ok {
		s.AddRoleChangedHandler(handler)
	}
	if handler, ok := h.(PlasmaShellSurfacePanelBehaviorChangedHandler); ok {
		s.AddPanelBehaviorChangedHandler(handler)
	}
	if handler, ok := h.(PlasmaShellSurfaceSkipTaskbarChangedHandler); ok {
		s.AddSkipTaskbarChangedHandler(handler)
	}
	if handler, ok := h.(PlasmaShellSurfaceSkipSwitcherChangedHandler); ok {
		s.AddSkipSwitcherChangedHandler(handler)
	}
	if handler, ok := h.(PlasmaShellSurfacePanelTakesFocusChangedHandler); ok {
		s.AddPanelTakesFocusChangedHandler(handler)
	}
	if handler, ok := h.(PlasmaShellSurfaceWindowTypeChangedHandler); ok {
		s.AddWindowTypeChangedHandler(handler)
	}
	if handler, ok := h.(PlasmaShellSurfaceVisibleChangedHandler); ok {
		s.AddVisibleChangedHandler(handler)
	}
	if handler, ok := h.(PlasmaShellSurfacePanelAutoHideHideRequestedHandler); ok {
		s.AddPanelAutoHideHideRequestedHandler(handler)
	}
	if handler, ok := h.(PlasmaShellSurfacePanelAutoHideShowRequestedHandler); ok {
		s.AddPanelAutoHideShowRequestedHandler(handler)
	}
}
