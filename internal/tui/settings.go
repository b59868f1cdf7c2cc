package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faithdive/faith-dive/models"
)

func (m appModel) updateSettings(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.importing {
		return m.updateImportPath(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.backToMenu()
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.translationIdx > 0 {
			m.translationIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.translationIdx < len(m.translations)-1 {
			m.translationIdx++
		}
	case key.Matches(keyMsg, keys.theme):
		return m, m.cmdToggleTheme()
	case key.Matches(keyMsg, keys.export):
		m.status = "Exporting..."
		return m, m.cmdExport()
	case key.Matches(keyMsg, keys.restore):
		m.importing = true
		m.input = newPromptInput("/path/to/faithdive-export.json")
		m.errMsg = ""
		m.status = ""
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.enter):
		if len(m.translations) == 0 {
			return m, nil
		}
		return m, m.cmdSelectTranslation(m.translations[m.translationIdx].ID)
	}
	return m, nil
}

func (m appModel) updateImportPath(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.importing = false
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			m.errMsg = "Enter a backup file path"
			return m, nil
		}
		m.errMsg = ""
		m.status = "Importing..."
		return m, m.cmdImport(path)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m appModel) onTranslationsLoaded(msg translationsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil
	}
	m.errMsg = ""
	m.translations = msg.items
	for i, t := range m.translations {
		if t.ID == m.translationID {
			m.translationIdx = i
			break
		}
	}
	return m, nil
}

func (m appModel) onTranslationSelected(msg translationSelectedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if isQuotaFailure(msg.err) {
			m.quotaWarning = true
		} else {
			m.errMsg = msg.err.Error()
			return m, nil
		}
	}
	m.translationID = msg.id
	m.status = "Default translation updated"
	m.errMsg = ""
	return m, nil
}

func (m appModel) onThemeToggled(msg themeToggledMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if isQuotaFailure(msg.err) {
			// the in-memory flip succeeded, only the flush failed
			m.quotaWarning = true
			return m, m.cmdLoadSettings()
		}
		m.errMsg = msg.err.Error()
		return m, nil
	}
	m.theme = msg.theme
	m.status = "Theme set to " + msg.theme
	m.errMsg = ""
	return m, nil
}

func (m appModel) onExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = fmt.Sprintf("Export failed: %v", msg.err)
		m.status = ""
		return m, nil
	}
	m.errMsg = ""
	m.status = "Exported to " + msg.path
	return m, nil
}

func (m appModel) onImportDone(msg importDoneMsg) (tea.Model, tea.Cmd) {
	m.importing = false
	if msg.err != nil {
		if isQuotaFailure(msg.err) {
			m.quotaWarning = true
		} else {
			m.errMsg = fmt.Sprintf("Import failed: %v", msg.err)
			m.status = ""
			return m, nil
		}
	}
	m.errMsg = ""
	m.status = "Backup imported"
	// imported settings may have changed the theme and translation
	return m, m.cmdLoadSettings()
}

func (m appModel) cmdLoadSettings() tea.Cmd {
	ctx := m.ctx
	settings := m.storages.Settings

	return func() tea.Msg {
		theme, err := settings.Theme(ctx)
		if err != nil {
			return settingsLoadedMsg{err: err}
		}
		translationID, err := settings.Translation(ctx)
		if err != nil {
			return settingsLoadedMsg{err: err}
		}
		return settingsLoadedMsg{theme: theme, translationID: translationID}
	}
}

func (m appModel) cmdLoadTranslations() tea.Cmd {
	ctx := m.ctx
	bible := m.bible

	return func() tea.Msg {
		items, err := bible.ListTranslations(ctx)
		return translationsLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdToggleTheme() tea.Cmd {
	ctx := m.ctx
	settings := m.storages.Settings

	return func() tea.Msg {
		theme, err := settings.ToggleTheme(ctx)
		return themeToggledMsg{theme: theme, err: err}
	}
}

func (m appModel) cmdExport() tea.Cmd {
	ctx := m.ctx
	porter := m.storages.Porter

	return func() tea.Msg {
		doc, err := porter.ExportAll(ctx)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return exportDoneMsg{err: err}
		}

		path := fmt.Sprintf("faithdive-export-%s.json", time.Now().Format("2006-01-02"))
		if err = os.WriteFile(path, data, 0600); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m appModel) cmdImport(path string) tea.Cmd {
	ctx := m.ctx
	porter := m.storages.Porter

	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return importDoneMsg{err: err}
		}

		var doc models.ExportDocument
		if err = json.Unmarshal(data, &doc); err != nil {
			return importDoneMsg{err: err}
		}

		return importDoneMsg{err: porter.ImportAll(ctx, doc, true)}
	}
}

func (m appModel) cmdSelectTranslation(id string) tea.Cmd {
	ctx := m.ctx
	settings := m.storages.Settings

	return func() tea.Msg {
		return translationSelectedMsg{id: id, err: settings.SetTranslation(ctx, id)}
	}
}

func (m appModel) viewSettings() string {
	if m.importing {
		out := m.banner()
		out += "Backup file : [ " + m.input.View() + " ]\n\n"
		out += "Importing replaces your journals and favorites with the\n"
		out += "backup's contents. Settings are merged, not deleted.\n"
		return renderPage("IMPORT BACKUP", strings.TrimRight(out, "\n"), "enter: import │ esc: cancel")
	}

	out := m.banner()
	out += "Theme       : " + m.theme + "  [t: toggle]\n"
	out += "Translation : " + m.translationLabel(m.translationID) + "\n\n"

	if m.loading {
		out += "Loading translations...\n"
	} else if len(m.translations) == 0 {
		out += "Translation list unavailable while offline.\n"
	} else {
		out += "[ TRANSLATIONS ]\n"
		for i, t := range m.translations {
			cursor := " "
			if i == m.translationIdx {
				cursor = ">"
			}
			marker := " "
			if t.ID == m.translationID {
				marker = "*"
			}
			out += fmt.Sprintf("%s %s %-6s │ %s\n", cursor, marker, fitText(t.Abbreviation, 6), fitText(t.Name, 44))
		}
	}

	return renderPage(
		"SETTINGS",
		strings.TrimRight(out, "\n"),
		"t: theme │ enter: set translation │ x: export │ i: import │ esc: back",
	)
}
