package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faithdive/faith-dive/internal/utils"
	"github.com/faithdive/faith-dive/models"
)

func (m appModel) updateFavorites(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.backToMenu()
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.favoritesIdx > 0 {
			m.favoritesIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.favoritesIdx < len(m.favorites)-1 {
			m.favoritesIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		fav, ok := m.currentFavorite()
		if !ok {
			m.status = "No favorites yet"
			return m, nil
		}
		m.verse = models.Verse{Reference: fav.Reference, Text: fav.VerseText, Translation: fav.Translation}
		m.verseFrom = modeFavorites
		m.mode = modeVerse
	case key.Matches(keyMsg, keys.delete):
		fav, ok := m.currentFavorite()
		if !ok {
			m.status = "No favorites yet"
			return m, nil
		}
		return m, m.cmdDeleteFavorite(fav.ID)
	case key.Matches(keyMsg, keys.copy):
		fav, ok := m.currentFavorite()
		if !ok {
			m.status = "No favorites yet"
			return m, nil
		}
		text := shareText(models.Verse{Reference: fav.Reference, Text: fav.VerseText})
		if err := clipboard.WriteAll(text); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, nil
	}
	return m, nil
}

func (m appModel) currentFavorite() (models.Favorite, bool) {
	if len(m.favorites) == 0 || m.favoritesIdx < 0 || m.favoritesIdx >= len(m.favorites) {
		return models.Favorite{}, false
	}
	return m.favorites[m.favoritesIdx], true
}

func (m appModel) onFavoritesLoaded(msg favoritesLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		return m, nil
	}
	m.errMsg = ""
	m.favorites = msg.items
	if m.favoritesIdx >= len(m.favorites) {
		m.favoritesIdx = len(m.favorites) - 1
	}
	if m.favoritesIdx < 0 {
		m.favoritesIdx = 0
	}
	return m, nil
}

func (m appModel) onFavoriteDeleted(msg favoriteDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil && !isQuotaFailure(msg.err) {
		m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
		return m, nil
	}
	if isQuotaFailure(msg.err) {
		m.quotaWarning = true
	}

	if !msg.result.Success() && msg.result.Kind != "" {
		m.status = msg.result.Message
	} else {
		m.status = "Removed from favorites"
	}
	m.errMsg = ""
	m.loading = true
	return m, m.cmdLoadFavorites()
}

func (m appModel) cmdLoadFavorites() tea.Cmd {
	ctx := m.ctx
	favorites := m.storages.Favorites

	return func() tea.Msg {
		items, err := favorites.GetAll(ctx, "created_at", "DESC")
		return favoritesLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdDeleteFavorite(id int64) tea.Cmd {
	ctx := m.ctx
	favorites := m.storages.Favorites

	return func() tea.Msg {
		result, err := favorites.Delete(ctx, id)
		return favoriteDeletedMsg{result: result, err: err}
	}
}

func (m appModel) viewFavorites() string {
	out := m.banner()

	if m.loading {
		out += "Loading favorites...\n"
		return renderPage("FAVORITES", strings.TrimRight(out, "\n"), "esc: back")
	}

	if len(m.favorites) == 0 {
		out += "No favorites yet. Open a verse and press f to save it.\n"
	} else {
		now := time.Now()
		out += "Reference      │ Translation │ Saved\n"
		out += "───────────────┼─────────────┼──────────────\n"
		for i, fav := range m.favorites {
			cursor := " "
			if i == m.favoritesIdx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s%-14s │ %-11s │ %s\n",
				cursor,
				fitText(fav.Reference, 14),
				fitText(m.translationLabel(fav.Translation), 11),
				utils.FormatDate(now, fav.CreatedAt),
			)
		}
	}

	return renderPage(
		"FAVORITES",
		strings.TrimRight(out, "\n"),
		"enter: open │ c: copy │ ctrl+d: delete │ ↑/↓: navigate │ esc: back",
	)
}
