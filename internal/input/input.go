// Package input is the single translation layer between raw input
// events and the viewer's state operations. Keyboard commands and
// pointer gestures both resolve to the same public calls on one owned
// state, so the two paths cannot drift apart.
package input

// Command is a discrete viewer action. Keyboard keys, header buttons
// and pointer gestures all reduce to these.
type Command int

const (
	CmdNone Command = iota

	CmdPreviousDocument
	CmdNextDocument

	CmdRotateCW
	CmdRotateCCW
	CmdFlipHorizontal
	CmdFlipVertical

	CmdZoomIn
	CmdZoomOut
	CmdZoomReset
	CmdToggleFit

	CmdPanLeft
	CmdPanRight
	CmdPanUp
	CmdPanDown
	CmdPanReset

	// Reserved tool modes: they toggle a flag but no editing exists
	// behind them yet.
	CmdToggleCropMode
	CmdToggleScaleMode

	CmdToggleInfo
	CmdToggleNav
	CmdCopyPath
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdPreviousDocument:
		return "previous-document"
	case CmdNextDocument:
		return "next-document"
	case CmdRotateCW:
		return "rotate-cw"
	case CmdRotateCCW:
		return "rotate-ccw"
	case CmdFlipHorizontal:
		return "flip-horizontal"
	case CmdFlipVertical:
		return "flip-vertical"
	case CmdZoomIn:
		return "zoom-in"
	case CmdZoomOut:
		return "zoom-out"
	case CmdZoomReset:
		return "zoom-reset"
	case CmdToggleFit:
		return "toggle-fit"
	case CmdPanLeft:
		return "pan-left"
	case CmdPanRight:
		return "pan-right"
	case CmdPanUp:
		return "pan-up"
	case CmdPanDown:
		return "pan-down"
	case CmdPanReset:
		return "pan-reset"
	case CmdToggleCropMode:
		return "toggle-crop-mode"
	case CmdToggleScaleMode:
		return "toggle-scale-mode"
	case CmdToggleInfo:
		return "toggle-info"
	case CmdToggleNav:
		return "toggle-nav"
	case CmdCopyPath:
		return "copy-path"
	case CmdQuit:
		return "quit"
	default:
		return "none"
	}
}

// DefaultPanStep is the keyboard pan distance in screen pixels.
const DefaultPanStep = 50.0
