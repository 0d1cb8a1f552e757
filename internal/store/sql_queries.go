package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	usersTable      = "users"
	sessionsTable   = "sessions"
	categoriesTable = "categories"
	notesTable      = "notes"
)

var (
	userColumns     = []string{"user_id", "email", "password_hash", "created_at"}
	sessionColumns  = []string{"token_hash", "user_id", "created_at", "expires_at"}
	categoryColumns = []string{"id", "user_id", "name", "color"}
	noteColumns     = []string{
		"n.id", "n.user_id", "n.category_id", "n.title", "n.body", "n.created_at", "n.updated_at",
		"c.id", "c.name", "c.color",
	}
)

// users

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password_hash", "created_at").
		Values(user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// sessions

func buildInsertSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return b.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(session.TokenHash, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()
}

func buildSelectSessionQuery(b sq.StatementBuilderType, tokenHash string) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, tokenHash string) (string, []any, error) {
	return b.Delete(sessionsTable).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete(sessionsTable).
		Where(sq.And{
			sq.NotEq{"expires_at": nil},
			sq.LtOrEq{"expires_at": now},
		}).
		ToSql()
}

// categories

func buildInsertCategoryQuery(b sq.StatementBuilderType, category models.Category) (string, []any, error) {
	return b.Insert(categoriesTable).
		Columns("user_id", "name", "color").
		Values(category.UserID, category.Name, category.Color).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectCategoryByIDQuery(b sq.StatementBuilderType, categoryID int64) (string, []any, error) {
	return b.Select(categoryColumns...).
		From(categoriesTable).
		Where(sq.Eq{"id": categoryID}).
		ToSql()
}

// buildListCategoriesQuery selects the user's categories together with the
// number of notes filed under each one.
func buildListCategoriesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	if userID <= 0 {
		return "", nil, ErrMissingUserScope
	}

	return b.Select("c.id", "c.user_id", "c.name", "c.color", "COUNT(n.id) AS note_count").
		From("categories c").
		LeftJoin("notes n ON n.category_id = c.id").
		Where(sq.Eq{"c.user_id": userID}).
		GroupBy("c.id", "c.user_id", "c.name", "c.color").
		OrderBy("c.id ASC").
		ToSql()
}

// notes

func buildSelectNoteQuery(b sq.StatementBuilderType, userID, noteID int64) (string, []any, error) {
	if userID <= 0 {
		return "", nil, ErrMissingUserScope
	}

	return b.Select(noteColumns...).
		From("notes n").
		Join("categories c ON c.id = n.category_id").
		Where(sq.Eq{"n.user_id": userID}).
		Where(sq.Eq{"n.id": noteID}).
		ToSql()
}

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return b.Insert(notesTable).
		Columns("user_id", "category_id", "title", "body", "created_at", "updated_at").
		Values(note.UserID, note.CategoryID, note.Title, note.Body, note.CreatedAt, note.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	if note.UserID <= 0 {
		return "", nil, ErrMissingUserScope
	}

	return b.Update(notesTable).
		Set("title", note.Title).
		Set("body", note.Body).
		Set("category_id", note.CategoryID).
		Set("updated_at", note.UpdatedAt).
		Where(sq.Eq{"user_id": note.UserID}).
		Where(sq.Eq{"id": note.ID}).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, userID, noteID int64) (string, []any, error) {
	if userID <= 0 {
		return "", nil, ErrMissingUserScope
	}

	return b.Delete(notesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": noteID}).
		ToSql()
}
