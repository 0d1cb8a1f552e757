package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCategories = []models.Category{
	{ID: 1, Name: "Work", Color: "#FF0000"},
	{ID: 2, Name: "Personal", Color: "#00FF00"},
}

func newTestMainLoop(t *testing.T) (mainLoopModel, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	services := service.NewClientServices(mockAdapter, logger.Nop())

	m := newMainLoopModel(context.Background(), services, models.User{UserID: 1, Email: "me@example.com"}, models.AppBuildInfo{})
	m.list.categories = testCategories
	m.list.loading = false
	return m, mockAdapter
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs to m one by one and returns the model with the last command.
func send(t *testing.T, m mainLoopModel, msgs ...tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(mainLoopModel)
	}
	return m, cmd
}

func TestMainLoop_NotesLoadedFillsList(t *testing.T) {
	m, mockAdapter := newTestMainLoop(t)
	mockAdapter.EXPECT().ListNotes(gomock.Any(), models.NoteFilter{}).Return([]models.Note{
		{ID: 1, Title: "Buy milk"},
		{ID: 2, Title: "Call mom"},
	}, nil)

	m, _ = send(t, m, m.cmdLoadNotes()())

	require.Len(t, m.list.notes, 2)
	assert.Contains(t, m.View(), "Buy milk")

	m, _ = send(t, m, runes("j"))
	note, ok := m.list.current()
	require.True(t, ok)
	assert.Equal(t, int64(2), note.ID)
}

func TestMainLoop_CategoryFilterCycles(t *testing.T) {
	m, mockAdapter := newTestMainLoop(t)

	mockAdapter.EXPECT().ListNotes(gomock.Any(), models.NoteFilter{Category: "Work"}).Return(nil, nil)

	m, cmd := send(t, m, runes("f"))
	require.NotNil(t, cmd)
	assert.Equal(t, "Work", m.list.filter().Category)
	m, _ = send(t, m, m.cmdLoadNotes()())

	m, _ = send(t, m, runes("f"), runes("f"))
	assert.Empty(t, m.list.filter().Category)
}

func TestMainLoop_SearchAppliesOnEnter(t *testing.T) {
	m, mockAdapter := newTestMainLoop(t)
	mockAdapter.EXPECT().ListNotes(gomock.Any(), models.NoteFilter{Search: "milk"}).Return([]models.Note{{ID: 1, Title: "Buy milk"}}, nil)

	m, _ = send(t, m, runes("/"))
	require.Equal(t, stateSearch, m.state)

	m, _ = send(t, m, runes("milk"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateList, m.state)
	assert.Equal(t, "milk", m.list.search)

	m, _ = send(t, m, m.cmdLoadNotes()())
	assert.Len(t, m.list.notes, 1)
}

func TestMainLoop_CreateNote(t *testing.T) {
	m, mockAdapter := newTestMainLoop(t)
	want := models.NoteRequest{Title: "Title", Body: "Body", CategoryID: 1}

	mockAdapter.EXPECT().CreateNote(gomock.Any(), want).Return(models.Note{ID: 10, Title: "Title", Body: "Body"}, nil)

	m, _ = send(t, m, runes("n"))
	require.Equal(t, stateNoteForm, m.state)

	m, cmd := send(t, m,
		runes("Title"),
		tea.KeyMsg{Type: tea.KeyTab},
		runes("Body"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)
	require.NotNil(t, cmd)
	assert.True(t, m.noteForm.submitting)

	m, _ = send(t, m, cmd())
	assert.Equal(t, stateDetail, m.state)
	assert.Equal(t, int64(10), m.detail.note.ID)
	assert.Equal(t, "Заметка создана", m.status)
}

func TestMainLoop_CreateNoteRequiresTitle(t *testing.T) {
	m, _ := newTestMainLoop(t)

	m, cmd := send(t, m, runes("n"), tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Equal(t, "Заголовок обязателен", m.noteForm.errMsg)
}

func TestMainLoop_EditSendsOnlyChangedFields(t *testing.T) {
	m, mockAdapter := newTestMainLoop(t)
	note := models.Note{ID: 5, Title: "Old", Body: "Body", Category: models.CategoryRef{ID: 2, Name: "Personal"}}
	m.detail = detailModel{note: note}
	m.state = stateDetail

	newTitle := "OldNew"
	mockAdapter.EXPECT().PatchNote(gomock.Any(), int64(5), models.NotePatch{Title: &newTitle}).
		Return(models.Note{ID: 5, Title: newTitle, Body: "Body"}, nil)

	m, _ = send(t, m, runes("e"))
	require.Equal(t, stateNoteForm, m.state)
	assert.Equal(t, 1, m.noteForm.categoryIdx)

	m, cmd := send(t, m, runes("New"), tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.Equal(t, newTitle, m.detail.note.Title)
}

func TestMainLoop_EditWithoutChanges(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.detail = detailModel{note: models.Note{ID: 5, Title: "T", Body: "B", Category: models.CategoryRef{ID: 1}}}
	m.state = stateDetail

	m, _ = send(t, m, runes("e"), tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, stateDetail, m.state)
	assert.Equal(t, "Нет изменений", m.status)
}

func TestMainLoop_DeleteNeedsConfirmation(t *testing.T) {
	m, mockAdapter := newTestMainLoop(t)
	m.detail = detailModel{note: models.Note{ID: 7, Title: "Gone"}}
	m.state = stateDetail

	m, _ = send(t, m, runes("d"))
	require.Equal(t, stateConfirmDelete, m.state)
	assert.Contains(t, m.View(), "Gone")

	m, _ = send(t, m, runes("n"))
	require.Equal(t, stateDetail, m.state)

	mockAdapter.EXPECT().DeleteNote(gomock.Any(), int64(7)).Return(nil)

	m, cmd := send(t, m, runes("d"), runes("y"))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.Equal(t, stateList, m.state)
	assert.Equal(t, "Заметка удалена", m.status)
}

func TestMainLoop_CopyBody(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m, _ := newTestMainLoop(t)
	m.detail = detailModel{note: models.Note{ID: 1, Title: "T", Body: "secret body"}}
	m.state = stateDetail

	m, cmd := send(t, m, runes("c"))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.Equal(t, "secret body", copied)
	assert.Equal(t, "Скопировано в буфер обмена", m.status)
}

func TestMainLoop_SessionLostQuits(t *testing.T) {
	m, mockAdapter := newTestMainLoop(t)
	mockAdapter.EXPECT().ListNotes(gomock.Any(), gomock.Any()).
		Return(nil, adapter.NewAPIError(401, models.ErrorResponse{Kind: models.ErrorKindUnauthenticated}))

	m, cmd := send(t, m, m.cmdLoadNotes()())

	assert.True(t, m.sessionLost)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMainLoop_ErrorOverlay(t *testing.T) {
	m, mockAdapter := newTestMainLoop(t)
	mockAdapter.EXPECT().GetNote(gomock.Any(), int64(3)).
		Return(models.Note{}, adapter.NewAPIError(404, models.ErrorResponse{Kind: models.ErrorKindNotFound}))

	m, _ = send(t, m, m.cmdOpenNote(3)())
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "Заметка не найдена")

	m, _ = send(t, m, runes("j"))
	require.NotNil(t, m.overlay)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.overlay)
}

func TestMainLoop_RefreshKeepsSelection(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.list.setNotes([]models.Note{{ID: 1}, {ID: 2}, {ID: 3}})
	m.list.move(2)

	m, cmd := send(t, m, refreshMsg{Notes: []models.Note{{ID: 4}, {ID: 3}, {ID: 1}}})

	require.NotNil(t, cmd)
	note, ok := m.list.current()
	require.True(t, ok)
	assert.Equal(t, int64(3), note.ID)
}

func TestMainLoop_LogoutEndsLoop(t *testing.T) {
	m, mockAdapter := newTestMainLoop(t)
	mockAdapter.EXPECT().Token().Return("tok")
	mockAdapter.EXPECT().Logout(gomock.Any()).Return(nil)

	m, cmd := send(t, m, runes("L"))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.True(t, m.logout)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Приве...", fitText("Привет, мир", 8))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}

func TestMainLoop_ClearStatus(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.status = "done"

	m, _ = send(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}
