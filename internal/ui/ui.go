package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/polyglotfm/plx/internal/flows"
	"github.com/polyglotfm/plx/internal/models"
	"github.com/polyglotfm/plx/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PodcastListView ViewState = iota
	TranslationListView
	AuditView
	AuditResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx             context.Context
	view            ViewState
	engine          *flows.Engine
	library         store.LibraryView
	width           int
	height          int
	podcastList     list.Model
	translationList list.Model
	selected        *models.Podcast
	progressChan    chan flows.ProgressUpdate
	auditDone       chan Msg
	progress        flows.ProgressUpdate
	auditResult     *flows.AuditResult
	auditErr        error
	errText         string
	help            help.Model
	keys            keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, engine *flows.Engine) *Model {
	return &Model{
		ctx:     ctx,
		view:    PodcastListView,
		engine:  engine,
		library: store.NewLibraryView(engine.Store()),
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init loads the library before the first render.
func (m *Model) Init() tea.Cmd {
	return m.fetchLibrary()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.podcastList.Width() == 0 {
			m.podcastList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.translationList.Width() == 0 {
			m.translationList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PodcastListView:
			return m.handlePodcastListKeys(msg)
		case TranslationListView:
			return m.handleTranslationListKeys(msg)
		case AuditResultView:
			return m.handleAuditResultKeys(msg)
		}

	case Msg:
		return m.handleAppMsg(msg)
	}

	return m.updateLists(msg)
}

func (m *Model) handleAppMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgLibraryFetched:
		data := msg.data.(libraryData)
		m.errText = data.err
		items := make([]list.Item, len(data.podcasts))
		for i, podcast := range data.podcasts {
			items[i] = podcastItem{podcast: podcast}
		}
		m.podcastList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.podcastList.Title = "Podcasts"
		m.podcastList.SetSize(m.width-4, m.height-8)
		return m, nil

	case MsgAuditProgress:
		m.progress = msg.data.(flows.ProgressUpdate)
		return m, m.waitForProgress()

	case MsgAuditComplete:
		data := msg.data.(auditData)
		m.auditResult = data.result
		m.auditErr = data.err
		m.view = AuditResultView
		m.progressChan = nil
		return m, nil
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.errText != "" && m.view == PodcastListView && m.podcastList.Items() == nil {
		return styles.err.Render(fmt.Sprintf("Error: %s\n\nPress q to quit", m.errText))
	}

	switch m.view {
	case PodcastListView:
		return m.renderPodcastList()
	case TranslationListView:
		return m.renderTranslationList()
	case AuditView:
		return m.renderAudit()
	case AuditResultView:
		return m.renderAuditResult()
	default:
		return ""
	}
}

func (m *Model) handlePodcastListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		return m, m.fetchLibrary()
	case "a":
		m.view = AuditView
		return m, m.startAudit()
	case "enter":
		selected := m.podcastList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(podcastItem); ok {
				m.openTranslations(item.podcast)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.podcastList, cmd = m.podcastList.Update(msg)
	return m, cmd
}

func (m *Model) handleTranslationListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PodcastListView
		m.selected = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.translationList, cmd = m.translationList.Update(msg)
	return m, cmd
}

func (m *Model) handleAuditResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PodcastListView
		m.auditResult = nil
		m.auditErr = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PodcastListView:
		m.podcastList, cmd = m.podcastList.Update(msg)
	case TranslationListView:
		m.translationList, cmd = m.translationList.Update(msg)
	}
	return m, cmd
}

func (m *Model) openTranslations(podcast models.Podcast) {
	m.selected = &podcast

	translations := m.library.TranslationsFor(podcast.ID)
	items := make([]list.Item, len(translations))
	for i, translation := range translations {
		items[i] = translationItem{translation: translation}
	}
	m.translationList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.translationList.Title = fmt.Sprintf("Translations of '%s'", podcast.Title)
	m.translationList.SetSize(m.width-4, m.height-8)
	m.view = TranslationListView
}

func (m *Model) fetchLibrary() tea.Cmd {
	return func() tea.Msg {
		m.engine.RefreshData(m.ctx)
		return libraryFetchedMsg(m.library.Podcasts(), m.library.Translations(), m.library.Error())
	}
}

func (m *Model) startAudit() tea.Cmd {
	m.progressChan = make(chan flows.ProgressUpdate, 50)
	progress := m.progressChan

	done := make(chan Msg, 1)
	go func() {
		result, err := m.engine.AuditFeeds(m.ctx, progress, flows.AuditOpts{})
		done <- auditCompleteMsg(result, err)
		close(progress)
	}()
	m.auditDone = done

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return auditCompleteMsg(m.auditResult, m.auditErr)
		}

		update, ok := <-m.progressChan
		if !ok {
			return <-m.auditDone
		}
		return auditProgressMsg(update)
	}
}

func (m *Model) renderPodcastList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.audit, m.keys.refresh, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	stats := m.library.Stats()
	header := styles.title.Render(fmt.Sprintf("Library — %d podcasts, %d translations (%d published)",
		stats.Podcasts, stats.Translations, stats.Published))

	return fmt.Sprintf("%s\n%s\n\n%s", header, m.podcastList.View(), helpView)
}

func (m *Model) renderTranslationList() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.translationList.View(), helpView)
}

func (m *Model) renderAudit() string {
	title := styles.title.Render("Auditing RSS Feeds")

	var phase string
	switch m.progress.Phase {
	case flows.FetchLibrary:
		phase = "Preparing audit..."
	case flows.ValidateFeeds:
		phase = fmt.Sprintf("Validating feeds (%d/%d)", m.progress.Step, m.progress.Total)
	default:
		phase = "Processing..."
	}

	return fmt.Sprintf("%s\n\n%s\n%s", title, phase, m.progress.Message)
}

func (m *Model) renderAuditResult() string {
	if m.auditErr != nil {
		return styles.err.Render(fmt.Sprintf("Audit failed: %v\n\nPress esc to go back, q to quit", m.auditErr))
	}

	if m.auditResult == nil {
		return styles.err.Render("No result available\n\nPress esc to go back, q to quit")
	}

	title := styles.ok.Render("✓ Audit Complete")
	info := fmt.Sprintf(
		"\nFeeds checked: %d\nHealthy: %d\nUnhealthy: %d\nFailed: %d",
		m.auditResult.Total,
		m.auditResult.Healthy,
		m.auditResult.Unhealthy,
		m.auditResult.Failed,
	)

	var unhealthy string
	if m.auditResult.Unhealthy > 0 || m.auditResult.Failed > 0 {
		unhealthy = fmt.Sprintf("\n\n%s", styles.warn.Render("Feeds needing attention:"))
		for _, verdict := range m.auditResult.Results {
			switch {
			case verdict.Err != nil:
				unhealthy += fmt.Sprintf("\n  • %s (check failed: %v)", verdict.Podcast.Title, verdict.Err)
			case !verdict.Healthy:
				unhealthy += fmt.Sprintf("\n  • %s (%s)", verdict.Podcast.Title, verdict.Detail)
			}
		}
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, info, unhealthy, helpView)
}
