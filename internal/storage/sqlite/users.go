package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anyafi/anya/internal/core"
)

// Ledger implements core.Ledger on top of sqlite.
type Ledger struct {
	db *sql.DB
}

func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

func (l *Ledger) GetOrCreateUser(ctx context.Context, externalID string) (core.User, error) {
	user, err := l.getUser(ctx, externalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return core.User{}, err
	}

	res, err := l.db.ExecContext(ctx, `INSERT INTO users (external_id) VALUES (?)`, externalID)
	if err != nil {
		return core.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.User{}, err
	}

	user = core.User{ID: id, ExternalID: externalID}
	return user, nil
}

func (l *Ledger) getUser(ctx context.Context, externalID string) (core.User, error) {
	var user core.User
	row := l.db.QueryRowContext(ctx,
		`SELECT id, external_id, created_at FROM users WHERE external_id = ?`, externalID)
	if err := row.Scan(&user.ID, &user.ExternalID, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.User{}, err
		}
		return core.User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}
