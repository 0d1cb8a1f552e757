// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// categoryRepository is the SQL implementation of [CategoryRepository]
// over the "categories" table.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by db.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCategory inserts one category and returns it with its ID.
//
// A name already used by the same user yields [ErrCategoryAlreadyExists].
// An unknown owner yields [ErrUserNotFound].
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCategoryQuery(r.db.builder(), category)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&category.ID); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Int64("user_id", category.UserID).Msg("error inserting category")
		return models.Category{}, r.mapWriteError(err)
	}

	return category, nil
}

// CreateCategories inserts all categories in a single transaction: either
// every category is stored or none is.
func (r *categoryRepository) CreateCategories(ctx context.Context, categories []models.Category) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	if len(categories) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategories").Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	created := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		query, args, err := buildInsertCategoryQuery(r.db.builder(), category)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = tx.QueryRowContext(ctx, query, args...).Scan(&category.ID); err != nil {
			log.Err(err).Str("func", "*categoryRepository.CreateCategories").Str("name", category.Name).Msg("error inserting category")
			return nil, r.mapWriteError(err)
		}
		created = append(created, category)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategories").Msg("error committing transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// ListCategories returns the user's categories in creation order, each with
// the number of notes it holds.
func (r *categoryRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCategoriesQuery(r.db.builder(), userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var categories []models.Category
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		categories = make([]models.Category, 0)
		for rows.Next() {
			var category models.Category
			if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Color, &category.NoteCount); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			categories = append(categories, category)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Int64("user_id", userID).Msg("error listing categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return categories, nil
}

// GetCategoryByID returns the category with the given ID whoever owns it.
func (r *categoryRepository) GetCategoryByID(ctx context.Context, categoryID int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCategoryByIDQuery(r.db.builder(), categoryID)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var category models.Category
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&category.ID, &category.UserID, &category.Name, &category.Color)
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Category{}, ErrCategoryNotFound
	case err != nil:
		log.Err(err).Str("func", "*categoryRepository.GetCategoryByID").Int64("category_id", categoryID).Msg("error selecting category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return category, nil
}

func (r *categoryRepository) mapWriteError(err error) error {
	switch r.db.classify(err) {
	case UniqueViolation:
		return ErrCategoryAlreadyExists
	case ForeignKeyViolation:
		return ErrUserNotFound
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
