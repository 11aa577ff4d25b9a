// Command panel_compositor shows the compositor-facing side of the
// org_kde_plasma_shell server objects: it wires up the shell global,
// subscribes to the change notifications a window manager would consume,
// and walks a panel through the auto-hide handshake. The display glue
// that normally feeds Dispatch from a client connection is stood in for
// by direct request calls.
package main

import (
	"log/slog"
	"os"

	plasma "github.com/tuxx/wayland-plasma-shell-go"
)

// windowManager is a stand-in for the part of a compositor that consumes
// plasma shell metadata for stacking and placement decisions.
type windowManager struct {
	log *slog.Logger
}

func (wm *windowManager) HandlePlasmaShellSurfaceCreated(ev plasma.PlasmaShellSurfaceCreatedEvent) {
	wm.log.Info("shell surface created", "id", ev.Surface.Id())
	plasma.PlasmaShellSurfaceAddListener(ev.Surface, wm)
}

func (wm *windowManager) HandlePlasmaShellSurfacePositionChanged(ev plasma.PlasmaShellSurfacePositionChangedEvent) {
	wm.log.Info("position requested", "x", ev.X, "y", ev.Y)
}

func (wm *windowManager) HandlePlasmaShellSurfaceRoleChanged(ev plasma.PlasmaShellSurfaceRoleChangedEvent) {
	wm.log.Info("role requested", "role", ev.Role)
}

func (wm *windowManager) HandlePlasmaShellSurfacePanelBehaviorChanged(ev plasma.PlasmaShellSurfacePanelBehaviorChangedEvent) {
	wm.log.Info("panel behavior requested", "behavior", ev.PanelBehavior)
}

func (wm *windowManager) HandlePlasmaShellSurfacePanelAutoHideHideRequested(plasma.PlasmaShellSurfacePanelAutoHideHideRequestedEvent) {
	wm.log.Info("panel asked to be hidden")
}

func (wm *windowManager) HandlePlasmaShellSurfacePanelAutoHideShowRequested(plasma.PlasmaShellSurfacePanelAutoHideShowRequestedEvent) {
	wm.log.Info("panel asked to be shown")
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	wm := &windowManager{log: log}

	// In a compositor the global is created per bound client with the
	// client's connection context; the demo runs without one.
	shell := plasma.NewPlasmaShell(nil)
	plasma.PlasmaShellAddListener(shell, wm)

	base := new(plasma.WlSurface)
	surface, err := shell.GetSurface(1, base)
	if err != nil {
		log.Error("get_surface failed", "err", err)
		os.Exit(1)
	}

	// What a plasmashell panel client would request.
	surface.SetPosition(0, 1160)
	if err := surface.SetRole(uint32(plasma.RolePanel)); err != nil {
		log.Error("set_role failed", "err", err)
		os.Exit(1)
	}
	if err := surface.SetPanelBehavior(uint32(plasma.PanelBehaviorAutoHide)); err != nil {
		log.Error("set_panel_behavior failed", "err", err)
		os.Exit(1)
	}
	surface.SetSkipTaskbar(true)

	// The auto-hide handshake: the panel asks to hide, the compositor
	// hides it and confirms; an edge trigger later shows it again.
	if err := surface.PanelAutoHideHide(); err != nil {
		log.Error("panel_auto_hide_hide failed", "err", err)
		os.Exit(1)
	}
	surface.HideAutoHidingPanel()
	log.Info("auto-hide state", "state", surface.AutoHideState())

	surface.ShowAutoHidingPanel()
	log.Info("auto-hide state", "state", surface.AutoHideState())
}
