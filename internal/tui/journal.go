package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faithdive/faith-dive/internal/utils"
	"github.com/faithdive/faith-dive/models"
)

func (m appModel) updateJournalList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.backToMenu()
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.journalIdx > 0 {
			m.journalIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.journalIdx < len(m.journal)-1 {
			m.journalIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.currentEntry(); !ok {
			m.status = "No journal entries yet"
			return m, nil
		}
		m.mode = modeJournalDetail
	case key.Matches(keyMsg, keys.delete):
		entry, ok := m.currentEntry()
		if !ok {
			m.status = "No journal entries yet"
			return m, nil
		}
		return m, m.cmdDeleteJournal(entry.ID)
	}
	return m, nil
}

func (m appModel) updateJournalDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry, ok := m.currentEntry()
	if !ok {
		m.mode = modeJournalList
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modeJournalList
		m.status = ""
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		m.startNotes(entry.ID, models.Verse{Reference: entry.Reference, Text: entry.VerseText}, entry.Notes)
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.mode = modeJournalList
		return m, m.cmdDeleteJournal(entry.ID)
	case key.Matches(keyMsg, keys.copy):
		text := shareText(models.Verse{Reference: entry.Reference, Text: entry.VerseText})
		if err := clipboard.WriteAll(text); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, nil
	}
	return m, nil
}

func (m appModel) updateJournalNotes(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		if m.editEntryID > 0 {
			m.mode = modeJournalDetail
		} else {
			m.mode = modeVerse
		}
		m.notesSaving = false
		return m, nil
	case key.Matches(keyMsg, keys.save):
		if m.notesSaving {
			return m, nil
		}

		notes := strings.TrimSpace(m.notesArea.Value())
		if notes == "" {
			m.errMsg = "Notes cannot be empty"
			return m, nil
		}

		m.errMsg = ""
		m.notesSaving = true
		return m, m.cmdSaveJournal(m.editEntryID, m.notesVerse, notes)
	}

	var cmd tea.Cmd
	m.notesArea, cmd = m.notesArea.Update(keyMsg)
	return m, cmd
}

// startNotes opens the notes editor, either for a new entry built from a
// fetched verse (entryID zero) or for an existing one.
func (m *appModel) startNotes(entryID int64, verse models.Verse, existingNotes string) {
	ta := textarea.New()
	ta.Placeholder = "What is this verse saying to you?"
	ta.SetWidth(54)
	ta.SetHeight(6)
	ta.SetValue(existingNotes)
	ta.Focus()

	m.notesArea = ta
	m.notesSaving = false
	m.editEntryID = entryID
	m.notesVerse = verse
	m.mode = modeJournalNotes
	m.errMsg = ""
	m.status = ""
}

func (m appModel) currentEntry() (models.JournalEntry, bool) {
	if len(m.journal) == 0 || m.journalIdx < 0 || m.journalIdx >= len(m.journal) {
		return models.JournalEntry{}, false
	}
	return m.journal[m.journalIdx], true
}

func (m appModel) onJournalLoaded(msg journalLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		return m, nil
	}
	m.errMsg = ""
	m.journal = msg.entries
	if m.journalIdx >= len(m.journal) {
		m.journalIdx = len(m.journal) - 1
	}
	if m.journalIdx < 0 {
		m.journalIdx = 0
	}
	return m, nil
}

func (m appModel) onJournalSaved(msg journalSavedMsg) (tea.Model, tea.Cmd) {
	m.notesSaving = false
	if msg.err != nil && !isQuotaFailure(msg.err) {
		m.errMsg = msg.err.Error()
		return m, nil
	}
	if isQuotaFailure(msg.err) {
		m.quotaWarning = true
	}

	if m.editEntryID > 0 {
		m.status = "Journal entry updated"
	} else {
		m.status = "Saved to journal"
	}
	m.editEntryID = 0
	m.errMsg = ""
	m.mode = modeJournalList
	m.loading = true
	return m, m.cmdLoadJournal()
}

func (m appModel) onJournalDeleted(msg journalDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil && !isQuotaFailure(msg.err) {
		m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
		return m, nil
	}
	if isQuotaFailure(msg.err) {
		m.quotaWarning = true
	}

	m.status = "Journal entry deleted"
	m.errMsg = ""
	m.loading = true
	return m, m.cmdLoadJournal()
}

func (m appModel) cmdLoadJournal() tea.Cmd {
	ctx := m.ctx
	journals := m.storages.Journals

	return func() tea.Msg {
		entries, err := journals.GetAll(ctx, "timestamp", "DESC")
		return journalLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdSaveJournal(entryID int64, verse models.Verse, notes string) tea.Cmd {
	ctx := m.ctx
	journals := m.storages.Journals

	return func() tea.Msg {
		var err error
		if entryID > 0 {
			err = journals.Update(ctx, entryID, verse.Reference, verse.Text, notes)
		} else {
			_, err = journals.Create(ctx, verse.Reference, verse.Text, notes)
		}
		return journalSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteJournal(id int64) tea.Cmd {
	ctx := m.ctx
	journals := m.storages.Journals

	return func() tea.Msg {
		return journalDeletedMsg{err: journals.Delete(ctx, id)}
	}
}

func (m appModel) viewJournalList() string {
	out := m.banner()

	if m.loading {
		out += "Loading journal...\n"
		return renderPage("JOURNAL", strings.TrimRight(out, "\n"), "esc: back")
	}

	if len(m.journal) == 0 {
		out += "No journal entries yet. Look up a verse and press j to start.\n"
	} else {
		now := time.Now()
		out += "Reference      │ When         │ Notes\n"
		out += "───────────────┼──────────────┼──────────────────────────────\n"
		for i, entry := range m.journal {
			cursor := " "
			if i == m.journalIdx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s%-14s │ %-12s │ %s\n",
				cursor,
				fitText(entry.Reference, 14),
				fitText(utils.FormatDate(now, entry.Timestamp), 12),
				fitText(entry.Notes, 30),
			)
		}
	}

	return renderPage(
		"JOURNAL",
		strings.TrimRight(out, "\n"),
		"enter: open │ ctrl+d: delete │ ↑/↓: navigate │ esc: back",
	)
}

func (m appModel) viewJournalDetail() string {
	entry, ok := m.currentEntry()
	if !ok {
		return renderPage("JOURNAL ENTRY", "Entry not found", "esc: back")
	}

	out := m.banner()
	out += entry.Reference + "  (" + utils.FormatDate(time.Now(), entry.Timestamp) + ")\n\n"
	out += wrapText(entry.VerseText, 60) + "\n\n"
	out += "[ NOTES ]\n"
	out += wrapText(entry.Notes, 60) + "\n"

	return renderPage(
		"JOURNAL ENTRY",
		strings.TrimRight(out, "\n"),
		"e: edit │ c: copy verse │ ctrl+d: delete │ esc: back",
	)
}

func (m appModel) viewJournalNotes() string {
	out := m.banner()
	out += m.notesVerse.Reference + "\n"
	out += fitText(m.notesVerse.Text, 60) + "\n\n"
	out += "[ NOTES ]\n"
	out += m.notesArea.View()
	if m.notesSaving {
		out += "\n\nSaving...\n"
	}

	return renderPage(
		"JOURNAL NOTES",
		strings.TrimRight(out, "\n"),
		"enter: new line │ ctrl+s: save │ esc: cancel",
	)
}
