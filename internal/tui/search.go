package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faithdive/faith-dive/models"
)

const searchResultLimit = 10

func (m appModel) updateLookup(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.backToMenu()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		reference := strings.TrimSpace(m.input.Value())
		if reference == "" {
			m.errMsg = "Enter a verse reference"
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLookup(reference)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m appModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		if len(m.searchResults) > 0 {
			m.searchResults = nil
			m.searchIdx = 0
			return m, nil
		}
		m.backToMenu()
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.searchIdx > 0 {
			m.searchIdx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.searchIdx < len(m.searchResults)-1 {
			m.searchIdx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if len(m.searchResults) > 0 {
			m.verse = m.searchResults[m.searchIdx]
			m.verseFrom = modeSearch
			m.mode = modeVerse
			return m, nil
		}

		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			m.errMsg = "Enter a search phrase"
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdSearch(query)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m appModel) updateVerse(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = m.verseFrom
		m.status = ""
		return m, nil
	case key.Matches(keyMsg, keys.favorite):
		return m, m.cmdSaveFavorite(m.verse)
	case key.Matches(keyMsg, keys.journal):
		m.startNotes(0, m.verse, "")
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if err := clipboard.WriteAll(shareText(m.verse)); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, nil
	}
	return m, nil
}

func (m appModel) onVerseLoaded(msg verseLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil
	}
	m.errMsg = ""
	m.status = ""
	m.verse = msg.verse
	m.verseFrom = modeLookup
	m.mode = modeVerse
	return m, nil
}

func (m appModel) onSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errMsg = humanizeServerUnavailableError(msg.err)
		return m, nil
	}
	m.errMsg = ""
	m.searchResults = msg.verses
	m.searchIdx = 0
	if len(msg.verses) == 0 {
		m.status = "No verses found"
	} else {
		m.status = fmt.Sprintf("%d result(s)", len(msg.verses))
	}
	return m, nil
}

func (m appModel) onFavoriteSaved(msg favoriteSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if isQuotaFailure(msg.err) {
			m.quotaWarning = true
			m.status = "Added to favorites"
			return m, nil
		}
		m.errMsg = msg.err.Error()
		return m, nil
	}

	if msg.result.IsDuplicate() {
		m.status = "Already in favorites"
		return m, nil
	}
	if !msg.result.Success() {
		m.errMsg = msg.result.Message
		return m, nil
	}
	m.errMsg = ""
	m.status = "Added to favorites"
	return m, nil
}

func (m appModel) cmdLookup(reference string) tea.Cmd {
	ctx := m.ctx
	bible := m.bible
	translationID := m.translationID

	return func() tea.Msg {
		verse, err := bible.GetVerse(ctx, reference, translationID)
		return verseLoadedMsg{verse: verse, err: err}
	}
}

func (m appModel) cmdSearch(query string) tea.Cmd {
	ctx := m.ctx
	bible := m.bible
	translationID := m.translationID

	return func() tea.Msg {
		verses, err := bible.Search(ctx, query, translationID, searchResultLimit)
		return searchDoneMsg{verses: verses, err: err}
	}
}

func (m appModel) cmdSaveFavorite(verse models.Verse) tea.Cmd {
	ctx := m.ctx
	favorites := m.storages.Favorites
	translationID := m.translationID

	return func() tea.Msg {
		translation := verse.Translation
		if translation == "" {
			translation = translationID
		}
		result, err := favorites.Create(ctx, verse.Reference, verse.Text, translation)
		return favoriteSavedMsg{result: result, err: err}
	}
}

func (m appModel) viewLookup() string {
	out := m.banner()
	out += "Reference : [ " + m.input.View() + " ]\n"
	if m.loading {
		out += "\nLooking up...\n"
	}

	return renderPage("LOOK UP A VERSE", strings.TrimRight(out, "\n"), "enter: look up │ esc: back")
}

func (m appModel) viewSearch() string {
	out := m.banner()
	out += "Search    : [ " + m.input.View() + " ]\n"

	if m.loading {
		out += "\nSearching...\n"
	}

	if len(m.searchResults) > 0 {
		out += "\n"
		for i, verse := range m.searchResults {
			cursor := " "
			if i == m.searchIdx {
				cursor = ">"
			}
			out += fmt.Sprintf("%s %-14s │ %s\n", cursor, fitText(verse.Reference, 14), fitText(verse.Text, 48))
		}
	}

	return renderPage(
		"SEARCH SCRIPTURE",
		strings.TrimRight(out, "\n"),
		"enter: search/open │ ↑/↓: navigate │ esc: back",
	)
}

func (m appModel) viewVerse() string {
	out := m.banner()
	out += m.verse.Reference
	if m.verse.Translation != "" {
		out += "  (" + m.translationLabel(m.verse.Translation) + ")"
	}
	out += "\n\n"
	out += wrapText(m.verse.Text, 60) + "\n"

	return renderPage(
		"VERSE",
		strings.TrimRight(out, "\n"),
		"f: favorite │ j: journal │ c: copy │ esc: back",
	)
}

// translationLabel maps a translation id to its short display name.
func (m appModel) translationLabel(id string) string {
	return m.storages.Favorites.TranslationDisplayName(id)
}

func shareText(verse models.Verse) string {
	return fmt.Sprintf("\"%s\" - %s", strings.TrimSpace(verse.Text), verse.Reference)
}
