package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type ClientServices struct {
	AuthService     ClientAuthService
	CategoryService ClientCategoryService
	NoteService     ClientNoteService
	RefreshJob      ClientRefreshJob
	ServerAdapter   adapter.ServerAdapter
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	noteSvc := NewClientNoteService(serverAdapter, logger)

	return &ClientServices{
		AuthService:     NewClientAuthService(serverAdapter, logger),
		CategoryService: NewClientCategoryService(serverAdapter),
		NoteService:     noteSvc,
		RefreshJob:      NewClientRefreshJob(noteSvc, logger),
		ServerAdapter:   serverAdapter,
	}
}
