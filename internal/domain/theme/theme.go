package theme

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	LayoutMinimal = "minimal"
	LayoutCards   = "cards"
	LayoutDark    = "dark"
	LayoutModern  = "modern"
)

type Theme struct {
	OwnerID         uuid.UUID `json:"owner_id"`
	PrimaryColor    string    `json:"primary_color"`
	SecondaryColor  string    `json:"secondary_color"`
	BackgroundColor string    `json:"background_color"`
	TextColor       string    `json:"text_color"`
	AccentColor     string    `json:"accent_color"`
	FontFamily      string    `json:"font_family"`
	Layout          string    `json:"layout"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Default returns the palette every portfolio starts from. Colors are kept
// as opaque strings, hex format is not enforced.
func Default(ownerID uuid.UUID) *Theme {
	return &Theme{
		OwnerID:         ownerID,
		PrimaryColor:    "#10b981",
		SecondaryColor:  "#14b8a6",
		BackgroundColor: "#ffffff",
		TextColor:       "#1f2937",
		AccentColor:     "#f59e0b",
		FontFamily:      "Inter",
		Layout:          LayoutModern,
	}
}

// Merge overlays the non-empty fields of patch onto t and returns t.
func (t *Theme) Merge(patch *Theme) *Theme {
	if patch.PrimaryColor != "" {
		t.PrimaryColor = patch.PrimaryColor
	}
	if patch.SecondaryColor != "" {
		t.SecondaryColor = patch.SecondaryColor
	}
	if patch.BackgroundColor != "" {
		t.BackgroundColor = patch.BackgroundColor
	}
	if patch.TextColor != "" {
		t.TextColor = patch.TextColor
	}
	if patch.AccentColor != "" {
		t.AccentColor = patch.AccentColor
	}
	if patch.FontFamily != "" {
		t.FontFamily = patch.FontFamily
	}
	if patch.Layout != "" {
		t.Layout = patch.Layout
	}
	return t
}

type Repository interface {
	Upsert(ctx context.Context, t *Theme) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Theme, error)
}
