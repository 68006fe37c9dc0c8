package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRunes(m *passwordModel, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// TestPasswordModel_Enter verifies that typed text is kept, masked in the
// view, and accepted with enter.
func TestPasswordModel_Enter(t *testing.T) {
	m := newPasswordModel("Password for origin:")
	typeRunes(m, "s3cr3t")

	view := m.View()
	assert.Contains(t, view, "Password for origin:")
	assert.NotContains(t, view, "s3cr3t")
	assert.Contains(t, view, "******")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.done)
	assert.False(t, m.canceled)
	assert.Equal(t, "s3cr3t", m.Value())
	assert.Empty(t, m.View())
}

func TestPasswordModel_Cancel(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{name: "esc", key: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "ctrl+c", key: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPasswordModel("Password:")
			typeRunes(m, "abc")

			_, cmd := m.Update(tt.key)
			require.NotNil(t, cmd)
			assert.True(t, m.canceled)
			assert.False(t, m.done)
		})
	}
}

func TestPasswordModel_Backspace(t *testing.T) {
	m := newPasswordModel("Password:")
	typeRunes(m, "abcd")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, "abc", m.Value())
	assert.True(t, strings.HasPrefix(m.View(), "Password:"))
}
