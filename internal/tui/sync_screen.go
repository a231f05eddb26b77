// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/progress-sync/internal/service"
	"github.com/MKhiriev/progress-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type syncModel struct {
	engine   service.SyncEngine
	provider service.FingerprintProvider

	states   <-chan models.SyncState
	statuses <-chan models.AccountStatus

	state         models.SyncState
	accountStatus models.AccountStatus

	spinner   spinner.Model
	buildInfo models.AppBuildInfo

	status string

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm bool
	confirm     confirmModel

	showBuildInfo bool
}

func newSyncModel(services *service.ClientServices, states <-chan models.SyncState, statuses <-chan models.AccountStatus, buildInfo models.AppBuildInfo) syncModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return syncModel{
		engine:        services.Engine,
		provider:      services.Fingerprint,
		states:        states,
		statuses:      statuses,
		state:         services.Engine.State(),
		accountStatus: services.Account.Status(),
		spinner:       s,
		buildInfo:     buildInfo,
	}
}

func (m syncModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForState(m.states), waitForAccount(m.statuses))
}

func (m syncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		return m, waitForState(m.states)

	case accountMsg:
		m.accountStatus = msg.status
		return m, waitForAccount(m.statuses)

	case intentDoneMsg:
		if msg.err != nil {
			m.showError = true
			m.errorOverlay = errorOverlayModel{message: describeRejection(msg.err)}
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied data id " + msg.dataID
		}
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m syncModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showError:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.showError = false
		}
		return m, nil

	case m.showConfirm:
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			return m, submitIntent(m.engine, models.ResolveConflictIntent(m.confirm.strategy))
		case key.Matches(msg, keys.no):
			m.showConfirm = false
		}
		return m, nil

	case m.showBuildInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.refresh):
		return m, submitIntent(m.engine, models.RefreshIntent())
	case key.Matches(msg, keys.sync):
		return m, submitIntent(m.engine, models.SyncIntent())
	case key.Matches(msg, keys.upload):
		return m.askResolve(models.UploadLocal)
	case key.Matches(msg, keys.download):
		return m.askResolve(models.DownloadRemote)
	case key.Matches(msg, keys.cancel):
		return m, cancelTask(m.engine)
	case key.Matches(msg, keys.copyID):
		return m, copyDataID(m.provider)
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

// askResolve opens the confirmation for a conflict resolution. Outside a
// conflict the intent goes straight to the engine, which rejects it with a
// reason the error overlay can show.
func (m syncModel) askResolve(strategy models.ConflictStrategy) (tea.Model, tea.Cmd) {
	if m.state.Session.Kind != models.SessionConflict {
		return m, submitIntent(m.engine, models.ResolveConflictIntent(strategy))
	}

	m.showConfirm = true
	m.confirm = confirmModel{strategy: strategy}
	return m, nil
}

func (m syncModel) View() string {
	switch {
	case m.showError:
		return appStyle.Render(m.errorOverlay.View())
	case m.showConfirm:
		return appStyle.Render(m.confirm.View())
	case m.showBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.provider.SupportedVersion()))
	}

	var b strings.Builder
	b.WriteString(m.accountView())
	b.WriteString("\n\n")
	b.WriteString(m.stateView())
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(okStyle.Render(m.status))
	}

	return appStyle.Render(renderPage("PROGRESS SYNC", b.String(), m.hotKeys()))
}

func (m syncModel) accountView() string {
	s := m.accountStatus
	if !s.Resolved {
		return "Account: checking..."
	}

	var lines []string
	if s.LoggedIn {
		lines = append(lines, "Account: user #"+strconv.FormatInt(s.UserID, 10))
	} else {
		lines = append(lines, "Account: not logged in")
	}

	if s.SubscriptionActive {
		lines = append(lines, "Subscription: "+okStyle.Render("active"))
	} else {
		lines = append(lines, "Subscription: "+warnStyle.Render("inactive"))
	}

	switch s.Notice {
	case models.NoticeAuthExpired:
		lines = append(lines, warnStyle.Render("The server rejected your session. Log in again."))
	case models.NoticeNoSubscription:
		lines = append(lines, warnStyle.Render("The server reported that your subscription has ended."))
	}

	return strings.Join(lines, "\n")
}

func (m syncModel) stateView() string {
	switch m.state.Kind {
	case models.StateLoading:
		return m.spinner.View() + " Loading account..."
	case models.StateDisabled:
		return "Sync is off. Log in with an active subscription to enable it."
	}

	session := m.state.Session
	switch session.Kind {
	case models.SessionRefreshing:
		return m.spinner.View() + " Checking the server..."
	case models.SessionUploading:
		return m.spinner.View() + " Uploading your progress..."
	case models.SessionDownloading:
		return m.spinner.View() + " Downloading progress from the server..."
	case models.SessionCanceled:
		return "Canceled."
	case models.SessionError:
		return errorStyle.Render(describeIssue(session.Issue))
	case models.SessionConflict:
		return m.conflictView(session.Conflict)
	default:
		if session.UploadRecommended {
			return warnStyle.Render("You have local changes that are not on the server yet.")
		}
		return okStyle.Render("Up to date.")
	}
}

func (m syncModel) conflictView(c *models.ConflictInfo) string {
	if c == nil {
		return errorStyle.Render("Conflict")
	}

	var reason string
	if c.Diff == models.DiffRemoteUnsupported {
		reason = "The server copy was written by a newer app version."
	} else {
		reason = "Your progress and the server copy were both changed."
	}

	rows := []string{
		errorStyle.Render("Conflict") + "  " + reason,
		"",
		"This device:  " + describeFingerprint(&c.Local),
		"Last synced:  " + describeFingerprint(c.Cached),
		"Server:       " + describeFingerprint(c.Remote),
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m syncModel) hotKeys() string {
	if !m.state.IsEnabled() {
		return helpLine(keys.copyID, keys.info)
	}

	switch {
	case m.state.IsBusy():
		return helpLine(keys.cancel, keys.copyID, keys.info)
	case m.state.Session.Kind == models.SessionConflict:
		if m.state.Session.Conflict != nil && m.state.Session.Conflict.CanDownload() {
			return helpLine(keys.upload, keys.download, keys.refresh, keys.info)
		}
		return helpLine(keys.upload, keys.refresh, keys.info)
	default:
		return helpLine(keys.refresh, keys.sync, keys.copyID, keys.info)
	}
}

func waitForState(states <-chan models.SyncState) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return nil
		}
		return stateMsg{state: s}
	}
}

func waitForAccount(statuses <-chan models.AccountStatus) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-statuses
		if !ok {
			return nil
		}
		return accountMsg{status: s}
	}
}

func submitIntent(engine service.SyncEngine, intent models.Intent) tea.Cmd {
	return func() tea.Msg {
		return intentDoneMsg{intent: intent, err: engine.SubmitIntent(intent)}
	}
}

// cancelTask runs off the update loop because Cancel waits for the task's
// cleanup.
func cancelTask(engine service.SyncEngine) tea.Cmd {
	return func() tea.Msg {
		engine.Cancel()
		return nil
	}
}

func copyDataID(provider service.FingerprintProvider) tea.Cmd {
	return func() tea.Msg {
		fp, err := provider.Local()
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{dataID: fp.DataID, err: writeClipboard(fp.DataID)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
