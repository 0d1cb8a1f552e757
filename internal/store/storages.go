package store

import "github.com/MKhiriev/go-note-keeper/internal/logger"

// Storages groups every repository built on one database connection.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	CategoryRepository CategoryRepository
	NoteRepository     NoteRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SessionRepository:  NewSessionRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
		NoteRepository:     NewNoteRepository(db, logger),
	}
}
