package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainState int

const (
	stateList mainState = iota
	stateDetail
	stateNoteForm
	stateCategoryForm
	stateSearch
	stateConfirmDelete
	stateConfirmAccount
	stateBuildInfo
)

const statusTTL = 3 * time.Second

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	user      models.User
	buildInfo models.AppBuildInfo

	state     mainState
	prevState mainState

	list         listModel
	detail       detailModel
	noteForm     noteFormModel
	categoryForm categoryFormModel
	search       textinput.Model
	overlay      *errorOverlay

	status        string
	serverVersion string

	logout      bool
	sessionLost bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User, buildInfo models.AppBuildInfo) mainLoopModel {
	search := textinput.New()
	search.Placeholder = "поиск по заголовку и тексту"
	search.Width = 40

	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		user:      user,
		buildInfo: buildInfo,
		list:      newListModel(),
		search:    search,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(
		m.list.spinner.Tick,
		m.cmdLoadCategories(),
		m.cmdLoadNotes(),
		m.cmdServerVersion(),
		m.cmdWaitForRefresh(),
	)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.overlay != nil {
			if key.Matches(msg, keys.enter, keys.esc) {
				m.overlay = nil
			}
			return m, nil
		}
		return m.updateKey(msg)

	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd

	case notesLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.list.setNotes(msg.notes)
		return m, nil

	case refreshMsg:
		if msg.Err == nil {
			m.list.setNotes(msg.Notes)
		} else if isSessionLost(msg.Err) {
			return m.fail(msg.Err)
		}
		return m, m.cmdWaitForRefresh()

	case categoriesLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.list.categories = msg.categories
		if m.list.categoryIdx >= len(msg.categories) {
			m.list.categoryIdx = -1
		}
		return m, nil

	case noteLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.detail = detailModel{note: msg.note}
		m.state = stateDetail
		return m, nil

	case noteSavedMsg:
		m.noteForm.submitting = false
		if msg.err != nil {
			if isSessionLost(msg.err) {
				return m.fail(msg.err)
			}
			m.noteForm.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.detail = detailModel{note: msg.note}
		m.state = stateDetail
		status := "Заметка сохранена"
		if msg.created {
			status = "Заметка создана"
		}
		clearCmd := m.setStatus(status)
		return m, tea.Batch(clearCmd, m.cmdLoadNotes())

	case noteDeletedMsg:
		m.state = stateList
		if msg.err != nil {
			return m.fail(msg.err)
		}
		clearCmd := m.setStatus("Заметка удалена")
		return m, tea.Batch(clearCmd, m.cmdLoadNotes())

	case categoryCreatedMsg:
		m.categoryForm.submitting = false
		if msg.err != nil {
			m.categoryForm.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.list.categories = append(m.list.categories, msg.category)
		m.state = m.prevState
		if m.state == stateNoteForm {
			m.noteForm.categories = m.list.categories
			m.noteForm.categoryIdx = len(m.list.categories) - 1
		}
		clearCmd := m.setStatus("Категория " + msg.category.Name + " создана")
		return m, clearCmd

	case accountDeletedMsg:
		if msg.err != nil {
			m.state = stateList
			return m.fail(msg.err)
		}
		m.logout = true
		return m, tea.Quit

	case loggedOutMsg:
		m.logout = true
		return m, tea.Quit

	case serverVersionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.fail(fmt.Errorf("буфер обмена недоступен: %w", msg.err))
		}
		clearCmd := m.setStatus("Скопировано в буфер обмена")
		return m, clearCmd

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m.forwardToActive(msg)
}

func (m mainLoopModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateDetail:
		return m.updateDetail(msg)
	case stateNoteForm:
		return m.updateNoteForm(msg)
	case stateCategoryForm:
		return m.updateCategoryForm(msg)
	case stateSearch:
		return m.updateSearch(msg)
	case stateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case stateConfirmAccount:
		return m.updateConfirmAccount(msg)
	case stateBuildInfo:
		if key.Matches(msg, keys.esc, keys.version) {
			m.state = stateList
		}
	}
	return m, nil
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list.move(1)
	case key.Matches(msg, keys.enter):
		if note, ok := m.list.current(); ok {
			return m, m.cmdOpenNote(note.ID)
		}
	case key.Matches(msg, keys.newItem):
		m.noteForm = newNoteFormModel(m.list.categories)
		if m.list.categoryIdx >= 0 {
			m.noteForm.categoryIdx = m.list.categoryIdx
		}
		m.state = stateNoteForm
		return m, textinput.Blink
	case key.Matches(msg, keys.category):
		m.list.nextCategory()
		return m.reload()
	case key.Matches(msg, keys.search):
		m.search.SetValue(m.list.search)
		m.search.Focus()
		m.state = stateSearch
		return m, textinput.Blink
	case key.Matches(msg, keys.refresh):
		return m.reload()
	case key.Matches(msg, keys.newCat):
		return m.openCategoryForm()
	case key.Matches(msg, keys.version):
		m.state = stateBuildInfo
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(msg, keys.account):
		m.state = stateConfirmAccount
	}
	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note := m.detail.note

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.state = stateList
	case key.Matches(msg, keys.edit):
		m.noteForm = newEditNoteFormModel(note, m.list.categories)
		m.state = stateNoteForm
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		m.state = stateConfirmDelete
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(note.Body)
	case key.Matches(msg, keys.copyTitle):
		return m, cmdCopyToClipboard(note.Title)
	}
	return m, nil
}

func (m mainLoopModel) updateNoteForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.noteForm.editing {
			m.state = stateDetail
		} else {
			m.state = stateList
		}
		return m, nil
	case msg.String() == "C" && m.noteForm.focus == noteFieldCategory:
		return m.openCategoryForm()
	case key.Matches(msg, keys.save):
		if m.noteForm.submitting {
			return m, nil
		}
		if errMsg := m.noteForm.validate(); errMsg != "" {
			m.noteForm.errMsg = errMsg
			return m, nil
		}
		m.noteForm.errMsg = ""

		if !m.noteForm.editing {
			m.noteForm.submitting = true
			return m, m.cmdCreateNote(m.noteForm.request())
		}

		patch := m.noteForm.patch()
		if patch.IsEmpty() {
			m.state = stateDetail
			clearCmd := m.setStatus("Нет изменений")
			return m, clearCmd
		}
		m.noteForm.submitting = true
		return m, m.cmdPatchNote(m.noteForm.original.ID, patch)
	}

	var cmd tea.Cmd
	m.noteForm, cmd = m.noteForm.Update(msg)
	return m, cmd
}

func (m mainLoopModel) openCategoryForm() (tea.Model, tea.Cmd) {
	m.prevState = m.state
	m.categoryForm = newCategoryFormModel()
	m.state = stateCategoryForm
	return m, textinput.Blink
}

func (m mainLoopModel) updateCategoryForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.state = m.prevState
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.categoryForm.submitting {
			return m, nil
		}
		name, color := m.categoryForm.values()
		if name == "" {
			m.categoryForm.errMsg = "Название обязательно"
			return m, nil
		}
		m.categoryForm.errMsg = ""
		m.categoryForm.submitting = true
		return m, m.cmdCreateCategory(name, color)
	}

	var cmd tea.Cmd
	m.categoryForm, cmd = m.categoryForm.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.search.Blur()
		m.state = stateList
		return m, nil
	case key.Matches(msg, keys.enter):
		m.search.Blur()
		m.list.search = strings.TrimSpace(m.search.Value())
		m.state = stateList
		return m.reload()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		return m, m.cmdDeleteNote(m.detail.note.ID)
	case key.Matches(msg, keys.no):
		m.state = stateDetail
	}
	return m, nil
}

func (m mainLoopModel) updateConfirmAccount(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		return m, m.cmdDeleteAccount()
	case key.Matches(msg, keys.no):
		m.state = stateList
	}
	return m, nil
}

// forwardToActive passes non-key messages such as cursor blinks to the
// focused widget.
func (m mainLoopModel) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateNoteForm:
		m.noteForm, cmd = m.noteForm.Update(msg)
	case stateCategoryForm:
		m.categoryForm, cmd = m.categoryForm.Update(msg)
	case stateSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

// reload applies the current filter to the list and to the refresh job.
func (m mainLoopModel) reload() (tea.Model, tea.Cmd) {
	m.list.loading = true
	m.services.RefreshJob.SetFilter(m.list.filter())
	return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadNotes())
}

// fail shows err in an overlay, or ends the loop when the session is gone.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	if isSessionLost(err) {
		m.sessionLost = true
		return m, tea.Quit
	}
	m.overlay = &errorOverlay{message: humanizeError(err)}
	return m, nil
}

func (m *mainLoopModel) setStatus(status string) tea.Cmd {
	m.status = status
	return cmdClearStatus()
}

func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}

	switch m.state {
	case stateDetail:
		return m.page("ЗАМЕТКА", m.detail.View(), "e: редакт. │ d: удалить │ c: копир. текст │ t: копир. заголовок │ esc: назад")
	case stateNoteForm:
		title := "НОВАЯ ЗАМЕТКА"
		if m.noteForm.editing {
			title = "РЕДАКТИРОВАНИЕ"
		}
		return m.page(title, m.noteForm.View(), "tab: след. поле │ ←/→: категория │ C: новая категория │ ctrl+s: сохранить │ esc: отмена")
	case stateCategoryForm:
		return m.page("НОВАЯ КАТЕГОРИЯ", m.categoryForm.View(), "tab: след. поле │ enter: создать │ esc: отмена")
	case stateSearch:
		return m.page("ПОИСК", formLine("Поиск", m.search.View()), "enter: применить │ esc: отмена")
	case stateConfirmDelete:
		return appStyle.Render(renderConfirm("Удалить \"" + m.detail.note.Title + "\"?"))
	case stateConfirmAccount:
		return appStyle.Render(renderConfirm("Удалить аккаунт " + m.user.Email + " со всеми заметками?"))
	case stateBuildInfo:
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	return m.page("ЗАМЕТКИ: "+m.user.Email, m.list.View(),
		"enter: открыть │ n: новая │ f: категория │ /: поиск │ r: обновить │ C: категория+ │ L: выйти │ X: удалить аккаунт │ q: выход")
}

func (m mainLoopModel) page(title, body, hotKeys string) string {
	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	return renderPage(title, body, hotKeys)
}

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	ctx, svc, filter := m.ctx, m.services.NoteService, m.list.filter()
	return func() tea.Msg {
		notes, err := svc.List(ctx, filter)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m mainLoopModel) cmdLoadCategories() tea.Cmd {
	ctx, svc := m.ctx, m.services.CategoryService
	return func() tea.Msg {
		categories, err := svc.List(ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m mainLoopModel) cmdOpenNote(noteID int64) tea.Cmd {
	ctx, svc := m.ctx, m.services.NoteService
	return func() tea.Msg {
		note, err := svc.Get(ctx, noteID)
		return noteLoadedMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdCreateNote(req models.NoteRequest) tea.Cmd {
	ctx, svc := m.ctx, m.services.NoteService
	return func() tea.Msg {
		note, err := svc.Create(ctx, req)
		return noteSavedMsg{note: note, created: true, err: err}
	}
}

func (m mainLoopModel) cmdPatchNote(noteID int64, patch models.NotePatch) tea.Cmd {
	ctx, svc := m.ctx, m.services.NoteService
	return func() tea.Msg {
		note, err := svc.Patch(ctx, noteID, patch)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdDeleteNote(noteID int64) tea.Cmd {
	ctx, svc := m.ctx, m.services.NoteService
	return func() tea.Msg {
		return noteDeletedMsg{noteID: noteID, err: svc.Delete(ctx, noteID)}
	}
}

func (m mainLoopModel) cmdCreateCategory(name, color string) tea.Cmd {
	ctx, svc := m.ctx, m.services.CategoryService
	return func() tea.Msg {
		category, err := svc.Create(ctx, name, color)
		return categoryCreatedMsg{category: category, err: err}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx, svc := m.ctx, m.services.AuthService
	return func() tea.Msg {
		// the local session is gone either way
		_ = svc.Logout(ctx)
		return loggedOutMsg{}
	}
}

func (m mainLoopModel) cmdDeleteAccount() tea.Cmd {
	ctx, svc := m.ctx, m.services.AuthService
	return func() tea.Msg {
		return accountDeletedMsg{err: svc.DeleteAccount(ctx)}
	}
}

func (m mainLoopModel) cmdServerVersion() tea.Cmd {
	return cmdServerVersion(m.ctx, m.services.ServerAdapter)
}

// cmdWaitForRefresh blocks until the refresh job delivers the next result.
func (m mainLoopModel) cmdWaitForRefresh() tea.Cmd {
	ctx, updates := m.ctx, m.services.RefreshJob.Updates()
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case refresh := <-updates:
			return refreshMsg(refresh)
		}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
