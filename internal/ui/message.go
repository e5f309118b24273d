package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/polyglotfm/plx/internal/flows"
	"github.com/polyglotfm/plx/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgLibraryFetched MsgKind = iota
	MsgAuditProgress
	MsgAuditComplete
)

type libraryData struct {
	podcasts     []models.Podcast
	translations []models.Translation
	err          string
}

// libraryFetchedMsg is the constructor for [MsgLibraryFetched]
func libraryFetchedMsg(podcasts []models.Podcast, translations []models.Translation, errText string) Msg {
	return Msg{
		kind: MsgLibraryFetched,
		data: libraryData{podcasts, translations, errText},
	}
}

// auditProgressMsg is the constructor for [MsgAuditProgress]
func auditProgressMsg(update flows.ProgressUpdate) Msg {
	return Msg{kind: MsgAuditProgress, data: update}
}

type auditData struct {
	result *flows.AuditResult
	err    error
}

// auditCompleteMsg is the constructor for [MsgAuditComplete]
func auditCompleteMsg(result *flows.AuditResult, err error) Msg {
	return Msg{kind: MsgAuditComplete, data: auditData{result, err}}
}
