package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	getByIDFn     func(ctx context.Context, userID int64) (models.User, error)
	deleteFn      func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.UserID = 1
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.SessionRepository
// ─────────────────────────────────────────────

type mockSessionRepository struct {
	sessions map[string]models.Session

	createErr error
	getErr    error
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: make(map[string]models.Session)}
}

func (m *mockSessionRepository) CreateSession(_ context.Context, session models.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.sessions[session.TokenHash] = session
	return nil
}

func (m *mockSessionRepository) GetSession(_ context.Context, tokenHash string) (models.Session, error) {
	if m.getErr != nil {
		return models.Session{}, m.getErr
	}
	session, ok := m.sessions[tokenHash]
	if !ok {
		return models.Session{}, store.ErrSessionNotFound
	}
	return session, nil
}

func (m *mockSessionRepository) DeleteSession(_ context.Context, tokenHash string) error {
	delete(m.sessions, tokenHash)
	return nil
}

func (m *mockSessionRepository) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for hash, session := range m.sessions {
		if session.IsExpired(now) {
			delete(m.sessions, hash)
			n++
		}
	}
	return n, nil
}

// ─────────────────────────────────────────────
// Mock: store.CategoryRepository
// ─────────────────────────────────────────────

type mockCategoryRepository struct {
	createFn     func(ctx context.Context, category models.Category) (models.Category, error)
	createManyFn func(ctx context.Context, categories []models.Category) ([]models.Category, error)
	listFn       func(ctx context.Context, userID int64) ([]models.Category, error)
	getByIDFn    func(ctx context.Context, categoryID int64) (models.Category, error)
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if m.createFn != nil {
		return m.createFn(ctx, category)
	}
	category.ID = 1
	return category, nil
}

func (m *mockCategoryRepository) CreateCategories(ctx context.Context, categories []models.Category) ([]models.Category, error) {
	if m.createManyFn != nil {
		return m.createManyFn(ctx, categories)
	}
	return categories, nil
}

func (m *mockCategoryRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetCategoryByID(ctx context.Context, categoryID int64) (models.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, categoryID)
	}
	return models.Category{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.NoteRepository
// ─────────────────────────────────────────────

type mockNoteRepository struct {
	listFn   func(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	getFn    func(ctx context.Context, userID, noteID int64) (models.Note, error)
	createFn func(ctx context.Context, note models.Note) (models.Note, error)
	updateFn func(ctx context.Context, note models.Note) (models.Note, error)
	deleteFn func(ctx context.Context, userID, noteID int64) error
}

func (m *mockNoteRepository) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockNoteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, noteID)
	}
	return models.Note{ID: noteID, UserID: userID}, nil
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.createFn != nil {
		return m.createFn(ctx, note)
	}
	note.ID = 1
	return note, nil
}

func (m *mockNoteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, noteID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: TokenProvider
// ─────────────────────────────────────────────

type mockTokenProvider struct {
	issueFn   func(ctx context.Context, userID int64) (models.Token, error)
	resolveFn func(ctx context.Context, token string) (int64, error)
	revoked   []string
}

func (m *mockTokenProvider) Issue(ctx context.Context, userID int64) (models.Token, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, userID)
	}
	return models.Token{SignedString: "token", UserID: userID}, nil
}

func (m *mockTokenProvider) Resolve(ctx context.Context, token string) (int64, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, token)
	}
	return 0, ErrTokenIsExpiredOrInvalid
}

func (m *mockTokenProvider) Revoke(_ context.Context, token string) error {
	m.revoked = append(m.revoked, token)
	return nil
}
