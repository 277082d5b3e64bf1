package dialogs

import (
	"fmt"
	"path/filepath"

	"github.com/andareed/wrwatch/logging"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
	ExportErrorMsg     struct{ Err error }
	ExportOKMsg        struct {
		Path  string
		Count int
	}
)

// Export asks for the file the records summary is written to.
type Export struct {
	input   textinput.Model
	visible bool
	dir     string // relative names are placed here
}

func (d Export) Init() tea.Cmd { return textinput.Blink }

func NewExportDialog(defaultName, dir string) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Export records to: "
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &Export{input: ti, visible: true, dir: dir}
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.resolve(d.input.Value())
			if path == "" {
				return d, nil
			}
			logging.Debugf("ExportDialog: confirmed %s", path)
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			logging.Debugf("ExportDialog: canceled")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// resolve falls back to the placeholder and anchors bare file names in dir.
func (d *Export) resolve(val string) string {
	if val == "" {
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if d.dir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(d.dir, filepath.Base(val))
	}
	return val
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	help := hintStyle.Render("enter to export • esc to cancel")
	return boxStyle().Render(fmt.Sprintf("%s\n\n%s", d.input.View(), help))
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
