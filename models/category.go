// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultCategoryColor is the color assigned to a category created without
// an explicit one (opaque white).
const DefaultCategoryColor = "#FFFFFF"

// Category is a named, colored grouping of notes owned by a single user.
// The pair (UserID, Name) is unique.
type Category struct {
	// ID is the server-assigned identifier of the category.
	ID int64 `json:"id"`

	// UserID is the owner of the category. It is never exposed to clients.
	UserID int64 `json:"-"`

	// Name is the free-text label shown to the user.
	Name string `json:"name"`

	// Color is a hex color, optionally with an alpha channel
	// ("#RRGGBB" or "#RRGGBBAA").
	Color string `json:"color"`

	// NoteCount is the number of notes currently referencing the category.
	// It is filled only by list queries.
	NoteCount int64 `json:"note_count"`
}

// CategoryRef is the short form of a category embedded into notes.
type CategoryRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Ref returns the short form of c.
func (c Category) Ref() CategoryRef {
	return CategoryRef{ID: c.ID, Name: c.Name, Color: c.Color}
}

// DefaultCategories lists the categories provisioned for every new user.
var DefaultCategories = []Category{
	{Name: "Random Thoughts", Color: "#FFCCB6"},
	{Name: "School", Color: "#FDFD96"},
	{Name: "Personal", Color: "#B8E0D2"},
}
