package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

// buildListNotesQuery builds the note list query for a filter. The owner
// predicate is always the first condition; every other filter narrows it.
//
// Category names compare case-insensitively. Search is a case-insensitive
// substring match over title or body with LIKE wildcards escaped. Date bounds
// select whole days of updated_at: DateFrom at or after its midnight, DateTo
// strictly before the following midnight.
func buildListNotesQuery(b sq.StatementBuilderType, filter models.NoteFilter) (string, []any, error) {
	if filter.UserID <= 0 {
		return "", nil, ErrMissingUserScope
	}

	query := b.Select(noteColumns...).
		From("notes n").
		Join("categories c ON c.id = n.category_id").
		Where(sq.Eq{"n.user_id": filter.UserID})

	if filter.Category != "" {
		query = query.Where("LOWER(c.name) = LOWER(?)", filter.Category)
	}

	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where(sq.Or{
			sq.Expr(`LOWER(n.title) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(n.body) LIKE ? ESCAPE '\'`, pattern),
		})
	}

	if filter.DateFrom != nil {
		query = query.Where(sq.GtOrEq{"n.updated_at": startOfDay(*filter.DateFrom)})
	}

	if filter.DateTo != nil {
		query = query.Where(sq.Lt{"n.updated_at": startOfDay(*filter.DateTo).AddDate(0, 0, 1)})
	}

	return query.OrderBy("n.updated_at DESC", "n.id DESC").ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input safe for a LIKE pattern with '\' as the escape
// character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
