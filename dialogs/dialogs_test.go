package dialogs

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_Resolve(t *testing.T) {
	d := NewExportDialog("records.txt", "/exports")

	assert.Equal(t, filepath.Join("/exports", "records.txt"), d.resolve(""))
	assert.Equal(t, filepath.Join("/exports", "mine.txt"), d.resolve("mine.txt"))
	assert.Equal(t, filepath.Join("sub", "mine.txt"), d.resolve(filepath.Join("sub", "mine.txt")))
	assert.Equal(t, "/abs/mine.txt", d.resolve("/abs/mine.txt"))

	assert.Equal(t, "mine.txt", NewExportDialog("records.txt", "").resolve("mine.txt"))
	assert.Equal(t, "", NewExportDialog("", "").resolve(""))
}

func TestExport_EnterConfirms(t *testing.T) {
	d := NewExportDialog("records.txt", "")
	require.True(t, d.IsVisible())

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ExportConfirmedMsg{Path: "records.txt"}, cmd())
}

func TestExport_TypingEditsPath(t *testing.T) {
	d := NewExportDialog("", "")
	for _, r := range "a.txt" {
		d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ExportConfirmedMsg{Path: "a.txt"}, cmd())
}

func TestExport_EscCancels(t *testing.T) {
	d := NewExportDialog("records.txt", "")
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, ExportCanceledMsg{}, cmd())
}

func TestExport_HiddenIgnoresKeys(t *testing.T) {
	d := NewExportDialog("records.txt", "")
	d.Hide()
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestHelp(t *testing.T) {
	d := NewHelpDialog([]key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	})
	assert.Contains(t, d.View(), "refresh")

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.True(t, d.IsVisible())

	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())
}
