// Package tui renders the viewer in the terminal: a half-block pixel
// canvas for the document, a file panel, an info panel and a status
// line, all driven by one update loop.
package tui

import (
	"image"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pictor/internal/document"
	"pictor/internal/geom"
	"pictor/internal/input"
	"pictor/internal/session"
	"pictor/internal/transform"
	"pictor/internal/tui/widgets/filelist"
	"pictor/internal/tui/widgets/helpoverlay"
	"pictor/internal/tui/widgets/infopanel"
	"pictor/internal/tui/widgets/statusbar"
)

const (
	navPanelWidth  = 24
	infoPanelWidth = 28
)

// Run drives the viewer until quit. initial is the decode request for
// the document chosen on the command line, or nil to start empty.
func Run(sess *session.Session, initial *session.DecodeRequest) error {
	m := newModel(sess, initial)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// ===== Messages =====

type decodedMsg struct {
	gen uint64
	doc document.Document
	err error
}

// decodeCmd opens the document off the update loop. The generation
// travels with the result so stale decodes can be discarded.
func decodeCmd(req *session.DecodeRequest) tea.Cmd {
	return func() tea.Msg {
		doc, err := document.Open(req.Path)
		return decodedMsg{gen: req.Gen, doc: doc, err: err}
	}
}

// ===== Model =====

type model struct {
	sess *session.Session
	keys input.Keymap

	width  int
	height int

	showHelp bool
	notice   string

	// Rendered frame cache, invalidated when the document or its
	// transform changes.
	frame     image.Image
	framePath string
	frameT    transform.State

	status  statusbar.StatusBar
	files   filelist.FileList
	info    infopanel.InfoPanel
	help    helpoverlay.HelpOverlay
	initial *session.DecodeRequest
}

func newModel(sess *session.Session, initial *session.DecodeRequest) model {
	return model{
		sess:    sess,
		keys:    input.DefaultKeymap(),
		status:  statusbar.NewStatusBar(),
		files:   filelist.NewFileList(),
		info:    infopanel.NewInfoPanel(),
		help:    helpoverlay.NewHelpOverlay(),
		initial: initial,
	}
}

func (m *model) Init() tea.Cmd {
	if m.initial == nil {
		return nil
	}
	return decodeCmd(m.initial)
}

// canvasArea returns the cell rectangle left for the document between
// the side panels and above the status bar.
func (m *model) canvasArea() (x0, cols, rows int) {
	cols = m.width
	rows = m.height - 1
	if m.sess.NavVisible {
		x0 = navPanelWidth
		cols -= navPanelWidth
	}
	if m.sess.InfoVisible {
		cols -= infoPanelWidth
	}
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return x0, cols, rows
}

func (m *model) syncViewport() {
	_, cols, rows := m.canvasArea()
	w, h := canvasViewport(cols, rows)
	m.sess.Resize(geom.Size{W: w, H: h})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.syncViewport()
		return m, nil

	case decodedMsg:
		m.sess.Deliver(msg.gen, msg.doc, msg.err)
		m.frame = nil
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if msg.String() == "?" {
		m.showHelp = true
		return m, nil
	}

	cmd := m.keys.CommandFor(msg)
	if cmd == input.CmdQuit {
		return m, tea.Quit
	}

	panelsBefore := [2]bool{m.sess.NavVisible, m.sess.InfoVisible}
	req, err := m.sess.Apply(cmd)
	if err != nil {
		// Boundary hits and rejected transforms leave the state
		// unchanged; show them on the status line until the next key.
		m.notice = err.Error()
		return m, nil
	}
	m.notice = ""
	if [2]bool{m.sess.NavVisible, m.sess.InfoVisible} != panelsBefore {
		m.syncViewport()
	}
	switch cmd {
	case input.CmdRotateCW, input.CmdRotateCCW,
		input.CmdFlipHorizontal, input.CmdFlipVertical:
		m.frame = nil
	}
	if req != nil {
		return m, decodeCmd(req)
	}
	return m, nil
}

func (m *model) updateMouse(msg tea.MouseMsg) {
	x0, cols, rows := m.canvasArea()
	inCanvas := msg.X >= x0 && msg.X < x0+cols && msg.Y < rows
	pos := geom.Vec{
		X: float64(msg.X-x0) + 0.5,
		Y: float64(msg.Y*pixelsPerCell) + 1,
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if inCanvas {
			m.sess.Wheel(pos, 1)
		}
	case tea.MouseButtonWheelDown:
		if inCanvas {
			m.sess.Wheel(pos, -1)
		}
	case tea.MouseButtonLeft:
		switch msg.Action {
		case tea.MouseActionPress:
			if inCanvas {
				m.sess.DragStart(pos)
			}
		case tea.MouseActionMotion:
			m.sess.DragMove(pos)
		case tea.MouseActionRelease:
			m.sess.DragEnd()
		}
	default:
		// Motion with no button still arrives here while dragging.
		if msg.Action == tea.MouseActionMotion && m.sess.Pointer.Dragging() {
			m.sess.DragMove(pos)
		} else if msg.Action == tea.MouseActionRelease {
			m.sess.DragEnd()
		}
	}
}

// ===== Views =====

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	_, cols, rows := m.canvasArea()

	var center string
	if m.showHelp {
		center = m.help.View(m.helpSections())
	} else {
		center = renderCanvas(m.currentFrame(), m.sess.Viewport, cols, rows)
	}

	panels := []string{}
	if m.sess.NavVisible {
		panels = append(panels,
			m.files.View(m.sess.Nav.Entries(), m.sess.Nav.Current(), navPanelWidth, rows))
	}
	panels = append(panels, lipgloss.NewStyle().Width(cols).Height(rows).Render(center))
	if m.sess.InfoVisible && m.sess.Document() != nil {
		panels = append(panels,
			m.info.View(m.sess.Document().Metadata(), infoPanelWidth))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	st := m.sess.Status()
	if m.notice != "" && st.Message == "" {
		st.Message = m.notice
	}
	bar := m.status.View(st, m.width)
	return lipgloss.JoinVertical(lipgloss.Left, body, bar)
}

// currentFrame re-renders only when the document or transform changed
// since the cached frame.
func (m *model) currentFrame() image.Image {
	doc := m.sess.Document()
	if doc == nil {
		return nil
	}
	if m.frame != nil && m.framePath == m.sess.Path() && m.frameT == m.sess.Transform {
		return m.frame
	}
	frame, err := m.sess.Render()
	if err != nil {
		return nil
	}
	m.frame = frame
	m.framePath = m.sess.Path()
	m.frameT = m.sess.Transform
	return frame
}

func (m *model) helpSections() []helpoverlay.Section {
	k := m.keys
	return []helpoverlay.Section{
		{Title: "Navigation", Keys: []key.Binding{k.Previous, k.Next, k.ToggleNav}},
		{Title: "Transform", Keys: []key.Binding{k.RotateCW, k.RotateCCW, k.FlipH, k.FlipV}},
		{Title: "Zoom", Keys: []key.Binding{k.ZoomIn, k.ZoomOut, k.ZoomReset, k.ToggleFit}},
		{Title: "Pan", Keys: []key.Binding{k.PanLeft, k.PanRight, k.PanUp, k.PanDown, k.PanReset}},
		{Title: "Misc", Keys: []key.Binding{k.ToggleInfo, k.CopyPath, k.Quit}},
	}
}
