package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusSyncing = "syncing"
	statusFetched = "fetched"
	statusCached  = "cached"
	statusFailed  = "failed"
)

// ArtifactState represents the sync progress of one artifact in the TUI.
type ArtifactState struct {
	ID     string
	Name   string
	Status string // statusSyncing, statusFetched, statusCached, statusFailed
}

type styles struct {
	syncing lipgloss.Style
	fetched lipgloss.Style
	cached  lipgloss.Style
	failed  lipgloss.Style
	summary lipgloss.Style
}

// Model is the Bubble Tea model for the TUI, tracking one line per synced
// artifact plus a summary footer.
type Model struct {
	source    Source
	artifacts []ArtifactState
	width     int
	height    int
	spinner   spinner.Model
	styles    styles
}

// NewModel creates a new TUI model reading from the given source.
func NewModel(source Source) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		source:  source,
		spinner: s,
		styles: styles{
			syncing: lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			fetched: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			cached:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
			failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			summary: lipgloss.NewStyle().Bold(true),
		},
	}
}

// Init initializes the model and starts reading from the source.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForUpdate(m.source),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case MsgUpdate:
		return m.handleUpdate(msg)
	case MsgStreamEnded:
		return m, tea.Quit
	}
	return m, nil
}

// handleKeyMsg handles keyboard input messages.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	return m, nil
}

// handleWindowSizeMsg handles window resize messages.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

// handleSpinnerTick handles spinner animation tick messages.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleUpdate applies a status update and schedules the next read.
func (m *Model) handleUpdate(msg MsgUpdate) (tea.Model, tea.Cmd) {
	for _, v := range msg.Update.Vertexes {
		m.updateOrAddArtifact(v)
	}
	return m, WaitForUpdate(m.source)
}

// updateOrAddArtifact updates an existing artifact line or adds a new one.
func (m *Model) updateOrAddArtifact(v *progrock.Vertex) {
	status := vertexStatus(v)
	for i, existing := range m.artifacts {
		if existing.ID == v.Id {
			m.artifacts[i].Status = status
			return
		}
	}
	m.artifacts = append(m.artifacts, ArtifactState{
		ID:     v.Id,
		Name:   v.Name,
		Status: status,
	})
}

// vertexStatus maps a progrock vertex onto a display status.
func vertexStatus(v *progrock.Vertex) string {
	switch {
	case v.Completed == nil:
		return statusSyncing
	case v.Error != nil:
		return statusFailed
	case v.Cached:
		return statusCached
	default:
		return statusFetched
	}
}

// View renders the artifact lines and the summary footer.
func (m *Model) View() string {
	var s strings.Builder

	// Reserve one line for the summary and window the rest.
	visible := m.height - 1
	start := 0
	if visible > 0 && len(m.artifacts) > visible {
		start = len(m.artifacts) - visible
	}

	for i := start; i < len(m.artifacts); i++ {
		a := m.artifacts[i]

		var icon string
		var style lipgloss.Style
		switch a.Status {
		case statusSyncing:
			icon = m.spinner.View()
			style = m.styles.syncing
		case statusFetched:
			icon = "✓"
			style = m.styles.fetched
		case statusCached:
			icon = "•"
			style = m.styles.cached
		default:
			icon = "✗"
			style = m.styles.failed
		}

		s.WriteString(fmt.Sprintf("%s %s\n", style.Render(icon), m.truncate(a.Name)))
	}

	s.WriteString(m.styles.summary.Render(m.summary()))
	s.WriteString("\n")

	return s.String()
}

// summary counts artifacts per terminal state.
func (m *Model) summary() string {
	var fetched, cached, failed, syncing int
	for _, a := range m.artifacts {
		switch a.Status {
		case statusFetched:
			fetched++
		case statusCached:
			cached++
		case statusFailed:
			failed++
		default:
			syncing++
		}
	}
	if syncing > 0 {
		return fmt.Sprintf("%d syncing, %d fetched, %d cached, %d failed",
			syncing, fetched, cached, failed)
	}
	return fmt.Sprintf("%d fetched, %d cached, %d failed", fetched, cached, failed)
}

// truncate trims an artifact name to the terminal width, keeping the tail:
// the end of a path is the distinguishing part.
func (m *Model) truncate(name string) string {
	// Icon and space take two cells.
	limit := m.width - 2
	if limit <= 3 || len(name) <= limit {
		return name
	}
	return "…" + name[len(name)-limit+1:]
}
