package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Keymap binds keys to viewer commands. Bindings carry help text so
// the TUI help overlay can render them without a second table.
type Keymap struct {
	Previous key.Binding
	Next     key.Binding

	RotateCW  key.Binding
	RotateCCW key.Binding
	FlipH     key.Binding
	FlipV     key.Binding

	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ZoomReset key.Binding
	ToggleFit key.Binding

	PanLeft  key.Binding
	PanRight key.Binding
	PanUp    key.Binding
	PanDown  key.Binding
	PanReset key.Binding

	CropMode  key.Binding
	ScaleMode key.Binding

	ToggleInfo key.Binding
	ToggleNav  key.Binding
	CopyPath   key.Binding
	Quit       key.Binding
}

// DefaultKeymap mirrors the desktop viewer's shortcuts: bare arrows
// navigate, ctrl+arrows pan, single letters drive transforms.
func DefaultKeymap() Keymap {
	return Keymap{
		Previous: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotate cw"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rotate ccw"),
		),
		FlipH: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "flip horizontal"),
		),
		FlipV: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "flip vertical"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "zoom out"),
		),
		ZoomReset: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "actual size"),
		),
		ToggleFit: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fit / last zoom"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("ctrl+←", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("ctrl+→", "pan right"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("ctrl+up"),
			key.WithHelp("ctrl+↑", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("ctrl+down"),
			key.WithHelp("ctrl+↓", "pan down"),
		),
		PanReset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "center"),
		),
		CropMode: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "crop mode"),
		),
		ScaleMode: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scale mode"),
		),
		ToggleInfo: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info panel"),
		),
		ToggleNav: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "file panel"),
		),
		CopyPath: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy path"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CommandFor resolves a key press to a command, or CmdNone when the
// key is unbound.
func (k Keymap) CommandFor(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, k.Previous):
		return CmdPreviousDocument
	case key.Matches(msg, k.Next):
		return CmdNextDocument
	case key.Matches(msg, k.RotateCW):
		return CmdRotateCW
	case key.Matches(msg, k.RotateCCW):
		return CmdRotateCCW
	case key.Matches(msg, k.FlipH):
		return CmdFlipHorizontal
	case key.Matches(msg, k.FlipV):
		return CmdFlipVertical
	case key.Matches(msg, k.ZoomIn):
		return CmdZoomIn
	case key.Matches(msg, k.ZoomOut):
		return CmdZoomOut
	case key.Matches(msg, k.ZoomReset):
		return CmdZoomReset
	case key.Matches(msg, k.ToggleFit):
		return CmdToggleFit
	case key.Matches(msg, k.PanLeft):
		return CmdPanLeft
	case key.Matches(msg, k.PanRight):
		return CmdPanRight
	case key.Matches(msg, k.PanUp):
		return CmdPanUp
	case key.Matches(msg, k.PanDown):
		return CmdPanDown
	case key.Matches(msg, k.PanReset):
		return CmdPanReset
	case key.Matches(msg, k.CropMode):
		return CmdToggleCropMode
	case key.Matches(msg, k.ScaleMode):
		return CmdToggleScaleMode
	case key.Matches(msg, k.ToggleInfo):
		return CmdToggleInfo
	case key.Matches(msg, k.ToggleNav):
		return CmdToggleNav
	case key.Matches(msg, k.CopyPath):
		return CmdCopyPath
	case key.Matches(msg, k.Quit):
		return CmdQuit
	}
	return CmdNone
}

// HelpBindings returns the bindings in display order for the help
// overlay.
func (k Keymap) HelpBindings() []key.Binding {
	return []key.Binding{
		k.Previous, k.Next,
		k.RotateCW, k.RotateCCW, k.FlipH, k.FlipV,
		k.ZoomIn, k.ZoomOut, k.ZoomReset, k.ToggleFit,
		k.PanLeft, k.PanRight, k.PanUp, k.PanDown, k.PanReset,
		k.ToggleInfo, k.ToggleNav, k.CopyPath, k.Quit,
	}
}
