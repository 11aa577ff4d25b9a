// Package plasma_shell implements the server side of the org_kde_plasma_shell protocol
package plasma_shell

import (
	"fmt"
	"sync"
)

// Error constants for org_kde_plasma_shell
const (
	ShellErrorRole uint32 = iota
	ShellErrorInvalidSurface
)

// Error constants for org_kde_plasma_shell_surface
const (
	SurfaceErrorPanelNotAutoHidden uint32 = iota
	SurfaceErrorInvalidRole
	SurfaceErrorInvalidPanelBehavior
)

// Protocol request constants for org_kde_plasma_shell
const (
	ShellRequestGetSurface uint32 = iota
)

// Protocol request constants for org_kde_plasma_shell_surface
const (
	SurfaceRequestDestroy uint32 = iota
	SurfaceRequestSetOutput
	SurfaceRequestSetPosition
	SurfaceRequestSetRole
	SurfaceRequestSetPanelBehavior
	SurfaceRequestSetSkipTaskbar
	SurfaceRequestSetSkipSwitcher
	SurfaceRequestSetPanelTakesFocus
	SurfaceRequestSetWindowType
	SurfaceRequestPanelAutoHideHide
	SurfaceRequestPanelAutoHideShow
)

// Protocol event constants for org_kde_plasma_shell_surface
const (
	SurfaceEventAutoHiddenPanelHidden uint32 = iota
	SurfaceEventAutoHiddenPanelShown
)

// Role categorizes a surface for stacking, focus and placement decisions.
type Role uint32

const (
	RoleNormal Role = iota
	RoleDesktop
	RolePanel
	RoleOnScreenDisplay
	RoleNotification
	RoleToolTip
	RoleCriticalNotification
)

// PanelBehavior is the visibility sub-policy for surfaces with RolePanel.
// The values match the wire encoding of the panel_behavior enum.
type PanelBehavior uint32

const (
	PanelBehaviorAlwaysVisible PanelBehavior = iota + 1
	PanelBehaviorAutoHide
	PanelBehaviorWindowsCanCover
	PanelBehaviorWindowsGoBelow
)

// AutoHideState tracks the auto-hide handshake between an auto-hiding
// panel and the compositor.
type AutoHideState uint32

const (
	AutoHideShown AutoHideState = iota
	AutoHideHideRequested
	AutoHideHidden
	AutoHideShowRequested
)

// WindowType is a coarse window classification carried verbatim from the
// wire. Values outside the known set are preserved as-is.
type WindowType int32

const (
	WindowTypeUnknown               WindowType = -1
	WindowTypeBaseApplication       WindowType = 1
	WindowTypeApplication           WindowType = 2
	WindowTypeApplicationStarting   WindowType = 3
	WindowTypeApplicationOverlay    WindowType = 4
	WindowTypeLastApplicationWindow WindowType = 99
	WindowTypeWallpaper             WindowType = 2000
	WindowTypeDesktop               WindowType = 2001
	WindowTypeDialog                WindowType = 2002
	WindowTypeSysSplash             WindowType = 2003
	WindowTypeSearchBar             WindowType = 2004
	WindowTypeNotification          WindowType = 2005
	WindowTypeCriticalNotification  WindowType = 2006
	WindowTypeInputMethod           WindowType = 2007
	WindowTypeInputMethodDialog     WindowType = 2008
	WindowTypeDnd                   WindowType = 2009
	WindowTypeDock                  WindowType = 2010
	WindowTypeStatusBar             WindowType = 2011
	WindowTypeStatusBarPanel        WindowType = 2012
	WindowTypeToast                 WindowType = 2013
	WindowTypeKeyguard              WindowType = 2014
	WindowTypePhone                 WindowType = 2015
	WindowTypeSystemDialog          WindowType = 2016
	WindowTypeSystemError           WindowType = 2017
	WindowTypeVoiceInteraction      WindowType = 2018
	WindowTypeSystemOverlay         WindowType = 2019
	WindowTypeScreenshot            WindowType = 2020
	WindowTypeBootProgress          WindowType = 2021
	WindowTypePointer               WindowType = 2022
	WindowTypeLastSysLayer          WindowType = 2099
)

// roleFromWire decodes a role code received from the wire.
func roleFromWire(code uint32) (Role, bool) {
	if code > uint32(RoleCriticalNotification) {
		return RoleNormal, false
	}
	return Role(code), true
}

// panelBehaviorFromWire decodes a panel_behavior code received from the wire.
func panelBehaviorFromWire(code uint32) (PanelBehavior, bool) {
	if code < uint32(PanelBehaviorAlwaysVisible) || code > uint32(PanelBehaviorWindowsGoBelow) {
		return PanelBehaviorAlwaysVisible, false
	}
	return PanelBehavior(code), true
}

// PlasmaShellError is a protocol error raised by a request on the shell
// global or on one of its surfaces. The display glue is expected to post
// it to the offending client and kill the resource.
type PlasmaShellError struct {
	Code    uint32
	Message string
}

func (e *PlasmaShellError) Error() string {
	return fmt.Sprintf("org_kde_plasma_shell error %d: %s", e.Code, e.Message)
}

// PlasmaShell represents an org_kde_plasma_shell global bound by a client.
// It hands out one PlasmaShellSurface per base surface and announces each
// creation to the compositor.
type PlasmaShell struct {
	BaseProxy
	mu sync.RWMutex
	// surfaces is the non-owning per-global view for enumeration. The
	// one-shell-surface-per-base-surface invariant spans all bound
	// globals and is claimed in the package side table instead.
	surfaces map[*WlSurface]*PlasmaShellSurface

	privatePlasmaShellSurfaceCreated []PlasmaShellSurfaceCreatedHandler

	// OnProtocolError, when set, receives protocol errors raised while
	// dispatching requests so the display glue can post them to the
	// offending client. A nil hook drops them silently.
	OnProtocolError func(p Proxy, code uint32, message string)
}

// NewPlasmaShell is a constructor for the PlasmaShell object. The context
// is the connection to the client that bound the global; it may be nil
// when the display glue does its own resource registration.
func NewPlasmaShell(ctx *Context) *PlasmaShell {
	ret := new(PlasmaShell)
	ret.surfaces = make(map[*WlSurface]*PlasmaShellSurface)
	if ctx != nil {
		ctx.Register(ret)
		ret.SetContext(ctx)
	}
	return ret
}

// GetSurface creates the PlasmaShellSurface decorating the given base
// surface. At most one shell surface may exist per base surface at any
// time, no matter through which bound global it was requested; a second
// request for the same base surface fails with ShellErrorRole.
func (sh *PlasmaShell) GetSurface(id ProxyId, base *WlSurface) (*PlasmaShellSurface, error) {
	if base == nil {
		return nil, &PlasmaShellError{Code: ShellErrorInvalidSurface, Message: "get_surface on invalid surface"}
	}
	s := newPlasmaShellSurface(sh, base)
	s.SetId(id)
	if ctx := sh.Context(); ctx != nil {
		s.SetContext(ctx)
		s.events = ctx
	}
	if !registerShellSurface(s) {
		return nil, &PlasmaShellError{Code: ShellErrorRole, Message: "surface already has a plasma shell surface role assigned"}
	}
	sh.mu.Lock()
	sh.surfaces[base] = s
	sh.mu.Unlock()

	sh.emitSurfaceCreated(PlasmaShellSurfaceCreatedEvent{Surface: s})
	return s, nil
}

// Surfaces returns a snapshot of the live shell surfaces created through
// this global. The global does not own them; entries disappear as the
// client or the base surface tears them down.
func (sh *PlasmaShell) Surfaces() []*PlasmaShellSurface {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	out := make([]*PlasmaShellSurface, 0, len(sh.surfaces))
	for _, s := range sh.surfaces {
		out = append(out, s)
	}
	return out
}

// forget drops the bookkeeping entry for a dying shell surface.
func (sh *PlasmaShell) forget(base *WlSurface) {
	sh.mu.Lock()
	delete(sh.surfaces, base)
	sh.mu.Unlock()
}

// Dispatch dispatches a client request for PlasmaShell
func (sh *PlasmaShell) Dispatch(event *Event) {
	switch event.Opcode {
	case ShellRequestGetSurface:
		id := ProxyId(event.Uint32())
		base, _ := event.Proxy(sh.Context()).(*WlSurface)
		if _, err := sh.GetSurface(id, base); err != nil {
			sh.postError(sh, err)
		}
	}
}

// postError routes a protocol error to the OnProtocolError hook.
func (sh *PlasmaShell) postError(p Proxy, err error) {
	if sh.OnProtocolError == nil {
		return
	}
	if perr, ok := err.(*PlasmaShellError); ok {
		sh.OnProtocolError(p, perr.Code, perr.Message)
	}
}

// PlasmaShellSurfaceCreatedEvent announces a freshly created shell surface
// to the compositor.
type PlasmaShellSurfaceCreatedEvent struct {
	Surface *PlasmaShellSurface
}

// PlasmaShellSurfaceCreatedHandler is the handler interface for PlasmaShellSurfaceCreatedEvent
type PlasmaShellSurfaceCreatedHandler interface {
	HandlePlasmaShellSurfaceCreated(PlasmaShellSurfaceCreatedEvent)
}

// AddSurfaceCreatedHandler adds the SurfaceCreated handler
func (sh *PlasmaShell) AddSurfaceCreatedHandler(h PlasmaShellSurfaceCreatedHandler) {
	if h != nil {
		sh.mu.Lock()
		sh.privatePlasmaShellSurfaceCreated = append(sh.privatePlasmaShellSurfaceCreated, h)
		sh.mu.Unlock()
	}
}

// RemoveSurfaceCreatedHandler removes the SurfaceCreated handler
func (sh *PlasmaShell) RemoveSurfaceCreatedHandler(h PlasmaShellSurfaceCreatedHandler) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	for i, e := range sh.privatePlasmaShellSurfaceCreated {
		if e == h {
			sh.privatePlasmaShellSurfaceCreated = append(sh.privatePlasmaShellSurfaceCreated[:i], sh.privatePlasmaShellSurfaceCreated[i+1:]...)
			break
		}
	}
}

func (sh *PlasmaShell) emitSurfaceCreated(ev PlasmaShellSurfaceCreatedEvent) {
	sh.mu.RLock()
	handlers := append([]PlasmaShellSurfaceCreatedHandler(nil), sh.privatePlasmaShellSurfaceCreated...)
	sh.mu.RUnlock()
	for _, h := range handlers {
		h.HandlePlasmaShellSurfaceCreated(ev)
	}
}
