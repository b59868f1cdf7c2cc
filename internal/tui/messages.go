package tui

import (
	"github.com/faithdive/faith-dive/models"
)

type settingsLoadedMsg struct {
	theme         string
	translationID string
	err           error
}

type translationsLoadedMsg struct {
	items []models.Translation
	err   error
}

type verseLoadedMsg struct {
	verse models.Verse
	err   error
}

type searchDoneMsg struct {
	verses []models.Verse
	err    error
}

type journalLoadedMsg struct {
	entries []models.JournalEntry
	err     error
}

type journalSavedMsg struct {
	err error
}

type journalDeletedMsg struct {
	err error
}

type favoritesLoadedMsg struct {
	items []models.Favorite
	err   error
}

type favoriteSavedMsg struct {
	result models.Result
	err    error
}

type favoriteDeletedMsg struct {
	result models.Result
	err    error
}

type themeToggledMsg struct {
	theme string
	err   error
}

type translationSelectedMsg struct {
	id  string
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type importDoneMsg struct {
	err error
}
