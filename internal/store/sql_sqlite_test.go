package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newSQLiteStorages(t *testing.T) (*Storages, *DB) {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnect(ctx, config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate(ctx))

	return NewStorages(db, logger.Nop()), db
}

func seedUser(t *testing.T, s *Storages, email string) (models.User, []models.Category) {
	t.Helper()
	ctx := context.Background()

	user, err := s.UserRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)

	defaults := make([]models.Category, 0, len(models.DefaultCategories))
	for _, c := range models.DefaultCategories {
		c.UserID = user.UserID
		defaults = append(defaults, c)
	}
	categories, err := s.CategoryRepository.CreateCategories(ctx, defaults)
	require.NoError(t, err)

	return user, categories
}

func TestSQLite_UserLifecycle(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	user, _ := seedUser(t, s, "a@example.com")

	_, err := s.UserRepository.CreateUser(ctx, models.User{Email: "a@example.com", PasswordHash: "x", CreatedAt: time.Now().UTC()})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := s.UserRepository.FindUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)

	expires := time.Now().UTC().Add(time.Hour).Truncate(time.Microsecond)
	require.NoError(t, s.SessionRepository.CreateSession(ctx, models.Session{
		TokenHash: "h1", UserID: user.UserID, CreatedAt: time.Now().UTC(), ExpiresAt: &expires,
	}))

	require.NoError(t, s.UserRepository.DeleteUser(ctx, user.UserID))

	_, err = s.SessionRepository.GetSession(ctx, "h1")
	assert.ErrorIs(t, err, ErrSessionNotFound, "sessions cascade with the user")

	categories, err := s.CategoryRepository.ListCategories(ctx, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, categories, "categories cascade with the user")
}

func TestSQLite_ExpiredSessionsSweep(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()
	user, _ := seedUser(t, s, "s@example.com")

	now := time.Now().UTC().Truncate(time.Microsecond)
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	require.NoError(t, s.SessionRepository.CreateSession(ctx, models.Session{TokenHash: "old", UserID: user.UserID, CreatedAt: now, ExpiresAt: &past}))
	require.NoError(t, s.SessionRepository.CreateSession(ctx, models.Session{TokenHash: "new", UserID: user.UserID, CreatedAt: now, ExpiresAt: &future}))
	require.NoError(t, s.SessionRepository.CreateSession(ctx, models.Session{TokenHash: "forever", UserID: user.UserID, CreatedAt: now}))

	n, err := s.SessionRepository.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.SessionRepository.GetSession(ctx, "new")
	assert.NoError(t, err)
	_, err = s.SessionRepository.GetSession(ctx, "forever")
	assert.NoError(t, err)
}

func TestSQLite_CategoryUniquePerUser(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	alice, _ := seedUser(t, s, "alice@example.com")
	bob, _ := seedUser(t, s, "bob@example.com")

	_, err := s.CategoryRepository.CreateCategory(ctx, models.Category{UserID: alice.UserID, Name: "School", Color: "#000000"})
	assert.ErrorIs(t, err, ErrCategoryAlreadyExists)

	_, err = s.CategoryRepository.CreateCategory(ctx, models.Category{UserID: bob.UserID, Name: "Work", Color: "#000000"})
	assert.NoError(t, err)
}

func TestSQLite_NotesScopingAndFilters(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	alice, aliceCategories := seedUser(t, s, "alice@example.com")
	bob, bobCategories := seedUser(t, s, "bob@example.com")

	day := func(d int) time.Time { return time.Date(2024, 5, d, 12, 0, 0, 0, time.UTC) }

	create := func(user models.User, category models.Category, title, body string, at time.Time) models.Note {
		note, err := s.NoteRepository.CreateNote(ctx, models.Note{
			UserID: user.UserID, CategoryID: category.ID, Title: title, Body: body, CreatedAt: at, UpdatedAt: at,
		})
		require.NoError(t, err)
		return note
	}

	n1 := create(alice, aliceCategories[0], "Grocery list", "milk, eggs", day(1))
	n2 := create(alice, aliceCategories[1], "Homework", "math 100% done", day(3))
	n3 := create(alice, aliceCategories[1], "Exam", "study hard", day(5))
	create(bob, bobCategories[0], "Bob secret", "milk", day(3))

	all, err := s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: alice.UserID})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{n3.ID, n2.ID, n1.ID}, []int64{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, aliceCategories[1].Name, all[0].Category.Name)

	byCategory, err := s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: alice.UserID, Category: "school"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	bySearch, err := s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: alice.UserID, Search: "MILK"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, n1.ID, bySearch[0].ID)

	literalPercent, err := s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: alice.UserID, Search: "100%"})
	require.NoError(t, err)
	require.Len(t, literalPercent, 1)
	assert.Equal(t, n2.ID, literalPercent[0].ID)

	from, to := day(3), day(3)
	byDate, err := s.NoteRepository.ListNotes(ctx, models.NoteFilter{UserID: alice.UserID, DateFrom: &from, DateTo: &to})
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, n2.ID, byDate[0].ID)

	_, err = s.NoteRepository.GetNote(ctx, bob.UserID, n1.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	err = s.NoteRepository.DeleteNote(ctx, bob.UserID, n1.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	categories, err := s.CategoryRepository.ListCategories(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, int64(1), categories[0].NoteCount)
	assert.Equal(t, int64(2), categories[1].NoteCount)
	assert.Equal(t, int64(0), categories[2].NoteCount)
}

func TestSQLite_UpdateNote(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	user, categories := seedUser(t, s, "u@example.com")
	created := time.Now().UTC().Truncate(time.Microsecond)

	note, err := s.NoteRepository.CreateNote(ctx, models.Note{
		UserID: user.UserID, CategoryID: categories[0].ID, Title: "t", Body: "b", CreatedAt: created, UpdatedAt: created,
	})
	require.NoError(t, err)

	note.Title = "changed"
	note.CategoryID = categories[2].ID
	note.UpdatedAt = created.Add(time.Second)

	updated, err := s.NoteRepository.UpdateNote(ctx, note)
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Title)
	assert.Equal(t, categories[2].ID, updated.Category.ID)
	assert.True(t, updated.CreatedAt.Equal(created))
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	note.CategoryID = 9999
	_, err = s.NoteRepository.UpdateNote(ctx, note)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestSQLite_ListNotesCombinedFilters(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	user, _ := seedUser(t, s, "carol@example.com")

	newCategory := func(name string) models.Category {
		c, err := s.CategoryRepository.CreateCategory(ctx, models.Category{UserID: user.UserID, Name: name, Color: "#123456"})
		require.NoError(t, err)
		return c
	}
	catA, catB := newCategory("catA"), newCategory("catB")

	now := time.Now().UTC()
	create := func(category models.Category, title, body string) {
		_, err := s.NoteRepository.CreateNote(ctx, models.Note{
			UserID: user.UserID, CategoryID: category.ID, Title: title, Body: body, CreatedAt: now, UpdatedAt: now,
		})
		require.NoError(t, err)
	}
	create(catA, "Work Meeting", "agenda")
	create(catB, "Grocery List", "bread")
	create(catA, "Work Report", "quarterly numbers")
	create(catB, "Élan Vital", "Über notes")

	titles := func(filter models.NoteFilter) []string {
		filter.UserID = user.UserID
		notes, err := s.NoteRepository.ListNotes(ctx, filter)
		require.NoError(t, err)
		out := make([]string, 0, len(notes))
		for _, n := range notes {
			out = append(out, n.Title)
		}
		return out
	}

	tests := []struct {
		name   string
		filter models.NoteFilter
		want   []string
	}{
		{name: "category only", filter: models.NoteFilter{Category: "catA"}, want: []string{"Work Meeting", "Work Report"}},
		{name: "category case-insensitive", filter: models.NoteFilter{Category: "CATA"}, want: []string{"Work Meeting", "Work Report"}},
		{name: "search only", filter: models.NoteFilter{Search: "grocery"}, want: []string{"Grocery List"}},
		{name: "search mixed case", filter: models.NoteFilter{Search: "gRoCeRy"}, want: []string{"Grocery List"}},
		{name: "category and search", filter: models.NoteFilter{Category: "catA", Search: "report"}, want: []string{"Work Report"}},
		{name: "category and search disjoint", filter: models.NoteFilter{Category: "catB", Search: "report"}, want: []string{}},
		{name: "non-ascii exact case", filter: models.NoteFilter{Search: "Élan"}, want: []string{"Élan Vital"}},
		{name: "non-ascii lower case", filter: models.NoteFilter{Search: "élan"}, want: []string{"Élan Vital"}},
		{name: "non-ascii upper case", filter: models.NoteFilter{Search: "ÉLAN VITAL"}, want: []string{"Élan Vital"}},
		{name: "non-ascii body", filter: models.NoteFilter{Search: "über"}, want: []string{"Élan Vital"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, titles(tt.filter))
		})
	}
}
