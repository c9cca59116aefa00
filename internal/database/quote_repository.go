package database

import (
	"context"
	"database/sql"
	"math/rand/v2"

	"github.com/thenoetrevino/keks/internal/models"
)

// NoQuotesText is returned by Random when no quote matches the language
const NoQuotesText = "No quotes available in this language."

// QuoteRepo handles quote persistence
type QuoteRepo struct {
	h *handle

	// pick returns an index in [0, n). Replaced in tests.
	pick func(n int) int
}

// Random returns the text of a uniformly chosen quote whose language equals
// lang exactly. It returns NoQuotesText when nothing matches.
func (r *QuoteRepo) Random(ctx context.Context, lang string) (string, error) {
	db, err := r.h.conn()
	if err != nil {
		return "", err
	}

	var count int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM quotes WHERE language = ?`, lang,
	).Scan(&count); err != nil {
		return "", err
	}
	if count == 0 {
		return NoQuotesText, nil
	}

	var text string
	err = db.QueryRowContext(ctx,
		`SELECT text FROM quotes WHERE language = ? ORDER BY id LIMIT 1 OFFSET ?`,
		lang, r.pick(count),
	).Scan(&text)
	if err != nil {
		return "", err
	}

	return text, nil
}

// Create inserts a quote. Language and text are stored exactly as given.
func (r *QuoteRepo) Create(ctx context.Context, lang, text string) (*models.Quote, error) {
	db, err := r.h.conn()
	if err != nil {
		return nil, err
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO quotes (language, text) VALUES (?, ?)`,
		lang, text,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Quote{ID: int(id), Language: lang, Text: text}, nil
}

// CreateBatch inserts all texts under one language in a single transaction.
// onInsert, if set, is called after each row with the number inserted so far.
// Nothing is committed if any insert fails.
func (r *QuoteRepo) CreateBatch(ctx context.Context, lang string, texts []string, onInsert func(done int)) (int, error) {
	db, err := r.h.conn()
	if err != nil {
		return 0, err
	}

	inserted := 0
	err = withTx(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO quotes (language, text) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer func() { _ = stmt.Close() }()

		for _, text := range texts {
			if _, err := stmt.ExecContext(ctx, lang, text); err != nil {
				return err
			}
			inserted++
			if onInsert != nil {
				onInsert(inserted)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// Count returns the number of quotes stored for lang
func (r *QuoteRepo) Count(ctx context.Context, lang string) (int, error) {
	db, err := r.h.conn()
	if err != nil {
		return 0, err
	}

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quotes WHERE language = ?`, lang).Scan(&count)
	return count, err
}

// Languages returns every distinct language tag with its quote count, ordered by tag
func (r *QuoteRepo) Languages(ctx context.Context) ([]models.LanguageCount, error) {
	db, err := r.h.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT language, COUNT(*) FROM quotes GROUP BY language ORDER BY language`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var counts []models.LanguageCount
	for rows.Next() {
		var lc models.LanguageCount
		if err := rows.Scan(&lc.Language, &lc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, lc)
	}

	return counts, rows.Err()
}

func defaultPick(n int) int {
	return rand.IntN(n)
}
