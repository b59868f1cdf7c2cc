package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faithdive/faith-dive/internal/adapter"
	"github.com/faithdive/faith-dive/internal/store"
	"github.com/faithdive/faith-dive/models"
)

type uiMode int

const (
	modeMenu uiMode = iota
	modeLookup
	modeSearch
	modeVerse
	modeJournalList
	modeJournalDetail
	modeJournalNotes
	modeFavorites
	modeSettings
)

var menuItems = []string{
	"Search scripture",
	"Look up a verse",
	"Journal",
	"Favorites",
	"Settings",
}

type appModel struct {
	ctx      context.Context
	storages *store.Storages
	bible    adapter.BibleAPI
	version  string

	mode    uiMode
	menuIdx int

	status       string
	errMsg       string
	quotaWarning bool

	theme         string
	translationID string

	input   textinput.Model
	loading bool

	searchResults []models.Verse
	searchIdx     int

	verse     models.Verse
	verseFrom uiMode

	journal    []models.JournalEntry
	journalIdx int

	notesArea   textarea.Model
	notesSaving bool
	// editEntryID is zero when journaling a freshly fetched verse and the
	// entry id when editing an existing one.
	editEntryID int64
	notesVerse  models.Verse

	favorites    []models.Favorite
	favoritesIdx int

	translations   []models.Translation
	translationIdx int
	importing      bool
}

func newAppModel(ctx context.Context, storages *store.Storages, bible adapter.BibleAPI, version string) appModel {
	return appModel{
		ctx:      ctx,
		storages: storages,
		bible:    bible,
		version:  version,
		theme:    models.ThemeLight,
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadSettings()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.theme = msg.theme
		m.translationID = msg.translationID
		return m, nil
	case verseLoadedMsg:
		return m.onVerseLoaded(msg)
	case searchDoneMsg:
		return m.onSearchDone(msg)
	case journalLoadedMsg:
		return m.onJournalLoaded(msg)
	case journalSavedMsg:
		return m.onJournalSaved(msg)
	case journalDeletedMsg:
		return m.onJournalDeleted(msg)
	case favoritesLoadedMsg:
		return m.onFavoritesLoaded(msg)
	case favoriteSavedMsg:
		return m.onFavoriteSaved(msg)
	case favoriteDeletedMsg:
		return m.onFavoriteDeleted(msg)
	case translationsLoadedMsg:
		return m.onTranslationsLoaded(msg)
	case translationSelectedMsg:
		return m.onTranslationSelected(msg)
	case themeToggledMsg:
		return m.onThemeToggled(msg)
	case exportDoneMsg:
		return m.onExportDone(msg)
	case importDoneMsg:
		return m.onImportDone(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateTextInputs(msg)
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	switch m.mode {
	case modeMenu:
		return m.updateMenu(keyMsg)
	case modeLookup:
		return m.updateLookup(keyMsg)
	case modeSearch:
		return m.updateSearch(keyMsg)
	case modeVerse:
		return m.updateVerse(keyMsg)
	case modeJournalList:
		return m.updateJournalList(keyMsg)
	case modeJournalDetail:
		return m.updateJournalDetail(keyMsg)
	case modeJournalNotes:
		return m.updateJournalNotes(keyMsg)
	case modeFavorites:
		return m.updateFavorites(keyMsg)
	case modeSettings:
		return m.updateSettings(keyMsg)
	}

	return m, nil
}

// updateTextInputs forwards non-key messages (blink ticks and the like) to
// whichever text widget is live in the current mode.
func (m appModel) updateTextInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.mode == modeLookup || m.mode == modeSearch:
		m.input, cmd = m.input.Update(msg)
	case m.mode == modeSettings && m.importing:
		m.input, cmd = m.input.Update(msg)
	case m.mode == modeJournalNotes:
		m.notesArea, cmd = m.notesArea.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateMenu(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menuIdx < len(menuItems)-1 {
			m.menuIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.openMenuItem(m.menuIdx)
	case key.Matches(keyMsg, keys.search):
		return m.openMenuItem(0)
	case key.Matches(keyMsg, keys.lookup):
		return m.openMenuItem(1)
	case key.Matches(keyMsg, keys.journal):
		return m.openMenuItem(2)
	case key.Matches(keyMsg, keys.favorite):
		return m.openMenuItem(3)
	case key.Matches(keyMsg, keys.settings):
		return m.openMenuItem(4)
	}
	return m, nil
}

func (m appModel) openMenuItem(idx int) (tea.Model, tea.Cmd) {
	m.menuIdx = idx
	m.status = ""
	m.errMsg = ""

	switch idx {
	case 0:
		m.mode = modeSearch
		m.searchResults = nil
		m.searchIdx = 0
		m.input = newPromptInput("love one another")
		return m, textinput.Blink
	case 1:
		m.mode = modeLookup
		m.input = newPromptInput("John 3:16")
		return m, textinput.Blink
	case 2:
		m.mode = modeJournalList
		m.loading = true
		return m, m.cmdLoadJournal()
	case 3:
		m.mode = modeFavorites
		m.loading = true
		return m, m.cmdLoadFavorites()
	case 4:
		m.mode = modeSettings
		m.loading = true
		m.importing = false
		m.translationIdx = 0
		return m, m.cmdLoadTranslations()
	}
	return m, nil
}

func newPromptInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	in.Focus()
	return in
}

func (m *appModel) backToMenu() {
	m.mode = modeMenu
	m.loading = false
	m.errMsg = ""
}

func (m appModel) View() string {
	switch m.mode {
	case modeLookup:
		return m.viewLookup()
	case modeSearch:
		return m.viewSearch()
	case modeVerse:
		return m.viewVerse()
	case modeJournalList:
		return m.viewJournalList()
	case modeJournalDetail:
		return m.viewJournalDetail()
	case modeJournalNotes:
		return m.viewJournalNotes()
	case modeFavorites:
		return m.viewFavorites()
	case modeSettings:
		return m.viewSettings()
	}
	return m.viewMenu()
}

func (m appModel) viewMenu() string {
	out := m.banner()

	for i, item := range menuItems {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		out += fmt.Sprintf("%s %d. %s\n", cursor, i+1, item)
	}

	out += "\nVersion: " + m.version + "\n"

	return renderPage(
		"FAITH DIVE",
		strings.TrimRight(out, "\n"),
		"enter: open │ ↑/↓: navigate │ s/v/j/f/g: shortcuts",
	)
}

// banner renders the shared status and warning lines shown above lists.
func (m appModel) banner() string {
	out := ""
	if m.quotaWarning {
		out += warningStyle.Render("WARNING: storage limit reached, latest changes may not survive a restart") + "\n"
	}
	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}
	return out
}
