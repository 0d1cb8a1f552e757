package service

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

type Services struct {
	AuthService     AuthService
	CategoryService CategoryService
	NoteService     NoteService
	AppInfoService  AppInfoService
}

// NewServices wires the services over storages. Default categories are
// provisioned by a registration hook and every note write passes through
// NoteValidationService.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	categoryService := NewCategoryService(storages.CategoryRepository, logger)

	tokens, err := NewTokenProvider(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	authService, err := NewAuthService(storages.UserRepository, tokens, cfg.App, logger, categoryService.CreateDefaultCategories)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	noteService := NewNoteValidationService(validators.NewOwnershipValidator(storages.CategoryRepository)).
		Wrap(NewNoteService(storages.NoteRepository, logger))

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     authService,
		CategoryService: categoryService,
		NoteService:     noteService,
		AppInfoService:  appInfoService,
	}, nil
}
