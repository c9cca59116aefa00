package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/thenoetrevino/keks/internal/models"
)

// SettingsRepo handles the two singleton settings rows. Field names are never
// interpolated from input: each enumeration value maps to a fixed statement.
type SettingsRepo struct {
	h *handle
}

func settingQueries(field models.SettingField) (get, set string, err error) {
	switch field {
	case models.SettingDisplayName:
		return `SELECT display_name FROM settings WHERE id = 1`,
			`UPDATE settings SET display_name = ? WHERE id = 1`, nil
	default:
		return "", "", &models.UnknownFieldError{Name: field.String()}
	}
}

func mascotQueries(field models.MascotField) (get, set string, err error) {
	switch field {
	case models.MascotName:
		return `SELECT mascot_name FROM mascot_settings WHERE id = 1`,
			`UPDATE mascot_settings SET mascot_name = ? WHERE id = 1`, nil
	case models.MascotColor:
		return `SELECT mascot_color FROM mascot_settings WHERE id = 1`,
			`UPDATE mascot_settings SET mascot_color = ? WHERE id = 1`, nil
	default:
		return "", "", &models.UnknownFieldError{Name: field.String()}
	}
}

// Get reads a settings field. ok is false when the value is NULL.
func (r *SettingsRepo) Get(ctx context.Context, field models.SettingField) (string, bool, error) {
	query, _, err := settingQueries(field)
	if err != nil {
		return "", false, err
	}
	return r.getValue(ctx, query)
}

// Set writes a settings field and commits immediately
func (r *SettingsRepo) Set(ctx context.Context, field models.SettingField, value string) error {
	_, query, err := settingQueries(field)
	if err != nil {
		return err
	}
	return r.setValue(ctx, query, value)
}

// GetMascot reads a mascot settings field. ok is false when the value is NULL.
func (r *SettingsRepo) GetMascot(ctx context.Context, field models.MascotField) (string, bool, error) {
	query, _, err := mascotQueries(field)
	if err != nil {
		return "", false, err
	}
	return r.getValue(ctx, query)
}

// SetMascot writes a mascot settings field and commits immediately
func (r *SettingsRepo) SetMascot(ctx context.Context, field models.MascotField, value string) error {
	_, query, err := mascotQueries(field)
	if err != nil {
		return err
	}
	return r.setValue(ctx, query, value)
}

// GetAll returns the whole settings row
func (r *SettingsRepo) GetAll(ctx context.Context) (*models.Settings, error) {
	db, err := r.h.conn()
	if err != nil {
		return nil, err
	}

	var name sql.NullString
	if err := db.QueryRowContext(ctx,
		`SELECT display_name FROM settings WHERE id = 1`,
	).Scan(&name); err != nil {
		return nil, err
	}

	return &models.Settings{DisplayName: name.String}, nil
}

// GetMascotAll returns the whole mascot settings row
func (r *SettingsRepo) GetMascotAll(ctx context.Context) (*models.MascotSettings, error) {
	db, err := r.h.conn()
	if err != nil {
		return nil, err
	}

	var name, color sql.NullString
	if err := db.QueryRowContext(ctx,
		`SELECT mascot_name, mascot_color FROM mascot_settings WHERE id = 1`,
	).Scan(&name, &color); err != nil {
		return nil, err
	}

	return &models.MascotSettings{Name: name.String, Color: color.String}, nil
}

func (r *SettingsRepo) getValue(ctx context.Context, query string) (string, bool, error) {
	db, err := r.h.conn()
	if err != nil {
		return "", false, err
	}

	var value sql.NullString
	err = db.QueryRowContext(ctx, query).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value.String, value.Valid, nil
}

func (r *SettingsRepo) setValue(ctx context.Context, query, value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyValue
	}

	db, err := r.h.conn()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, query, value)
	return err
}
