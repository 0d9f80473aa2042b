package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/anyafi/anya/internal/core"
)

func (l *Ledger) CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now().UTC()
	}
	if tx.Category == "" {
		tx.Category = core.CategoryOther
	}

	query := `INSERT INTO transactions (user_id, amount, merchant, category, is_essential, timestamp)
	          VALUES (?, ?, ?, ?, ?, ?)`
	res, err := l.db.ExecContext(ctx, query,
		tx.UserID, tx.Amount, tx.Merchant, tx.Category, tx.IsEssential, tx.Timestamp)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, err
	}
	tx.ID = id
	return tx, nil
}

func (l *Ledger) ListTransactions(ctx context.Context, userID int64, since time.Time) ([]core.Transaction, error) {
	query := `SELECT id, user_id, amount, merchant, category, is_essential, timestamp
	          FROM transactions WHERE user_id = ? AND timestamp >= ? ORDER BY timestamp DESC`

	rows, err := l.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var tx core.Transaction
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Merchant,
			&tx.Category, &tx.IsEssential, &tx.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
