package http

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// mockAuthService implements service.AuthService. ResolveToken accepts
// "valid-token" as user 1 unless resolveFn is set.
type mockAuthService struct {
	registerFn      func(ctx context.Context, email, password string) (models.User, models.Token, error)
	loginFn         func(ctx context.Context, email, password string) (models.User, models.Token, error)
	resolveFn       func(ctx context.Context, token string) (int64, error)
	logoutFn        func(ctx context.Context, token string) error
	getUserFn       func(ctx context.Context, userID int64) (models.User, error)
	deleteAccountFn func(ctx context.Context, userID int64) error
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (models.User, models.Token, error) {
	return m.registerFn(ctx, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) ResolveToken(ctx context.Context, token string) (int64, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, token)
	}
	if token == testToken {
		return testUserID, nil
	}
	return 0, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFn(ctx, token)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, userID int64) error {
	return m.deleteAccountFn(ctx, userID)
}

type mockCategoryService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Category, error)
	createFn func(ctx context.Context, category models.Category) (models.Category, error)
}

func (m *mockCategoryService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	return m.listFn(ctx, userID)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return m.createFn(ctx, category)
}

func (m *mockCategoryService) CreateDefaultCategories(context.Context, models.User) error {
	return nil
}

type mockNoteService struct {
	listFn   func(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	getFn    func(ctx context.Context, userID, noteID int64) (models.Note, error)
	createFn func(ctx context.Context, note models.Note) (models.Note, error)
	updateFn func(ctx context.Context, note models.Note) (models.Note, error)
	patchFn  func(ctx context.Context, userID, noteID int64, patch models.NotePatch) (models.Note, error)
	deleteFn func(ctx context.Context, userID, noteID int64) error
}

func (m *mockNoteService) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	return m.listFn(ctx, filter)
}

// GetNote reports every note as missing unless getFn is set.
func (m *mockNoteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	if m.getFn == nil {
		return models.Note{}, store.ErrNoteNotFound
	}
	return m.getFn(ctx, userID, noteID)
}

func (m *mockNoteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return m.createFn(ctx, note)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return m.updateFn(ctx, note)
}

func (m *mockNoteService) PatchNote(ctx context.Context, userID, noteID int64, patch models.NotePatch) (models.Note, error) {
	return m.patchFn(ctx, userID, noteID, patch)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	return m.deleteFn(ctx, userID, noteID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

const (
	testToken  = "valid-token"
	testUserID = int64(1)
)

// newTestHandler builds a Handler over the given services. Nil services
// are replaced with empty mocks.
func newTestHandler(svcs *service.Services) *Handler {
	if svcs == nil {
		svcs = &service.Services{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.CategoryService == nil {
		svcs.CategoryService = &mockCategoryService{}
	}
	if svcs.NoteService == nil {
		svcs.NoteService = &mockNoteService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}
