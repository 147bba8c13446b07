package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	domain "github.com/RoshanShah43/rs-bazar/internal/entity"
	"github.com/RoshanShah43/rs-bazar/internal/usecase"
)

// MySQLCartSnapshots is the durable alternative to the Redis snapshot
// store. One row per scope, cart serialized as a JSON document:
//
//	CREATE TABLE cart_snapshots (
//	    scope      VARCHAR(64) PRIMARY KEY,
//	    items_json MEDIUMTEXT NOT NULL,
//	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	        ON UPDATE CURRENT_TIMESTAMP
//	);
type MySQLCartSnapshots struct{ db *sql.DB }

func NewMySQLCartSnapshots(db *sql.DB) *MySQLCartSnapshots { return &MySQLCartSnapshots{db: db} }

func (r *MySQLCartSnapshots) Load(ctx context.Context, scope string) ([]domain.LineItem, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT items_json FROM cart_snapshots WHERE scope=?`, scope)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return items, nil
}

func (r *MySQLCartSnapshots) Save(ctx context.Context, scope string, items []domain.LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO cart_snapshots (scope, items_json) VALUES (?,?)
ON DUPLICATE KEY UPDATE items_json=VALUES(items_json)`, scope, raw)
	return err
}

func (r *MySQLCartSnapshots) Delete(ctx context.Context, scope string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_snapshots WHERE scope=?`, scope)
	return err
}

var _ usecase.CartSnapshots = (*MySQLCartSnapshots)(nil)
