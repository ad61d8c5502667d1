package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jroosing/dnsname/internal/dname"
	"github.com/jroosing/dnsname/internal/octets"
)

// ErrNotFound is returned when a name is not in the index.
var ErrNotFound = errors.New("name not found")

// NameEntry is one row of the name index.
type NameEntry struct {
	ID         int64
	Name       dname.Dname
	LabelCount int
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ListOptions narrows ListNames.
type ListOptions struct {
	// Under restricts the result to Under itself and the names below it.
	// The zero Dname is the root and matches everything.
	Under dname.Dname
	// Limit caps the number of rows; zero means no limit.
	Limit int
}

// rowKey is the stored form of a name's canonical key. The root has an
// empty canonical key, so every key is tagged with a leading 0x01 to keep
// the column non-empty without disturbing the order.
func rowKey(n dname.Name) []byte {
	return append([]byte{1}, dname.CanonicalKey(n)...)
}

const entryColumns = "id, wire, label_count, note, created_at, updated_at"

// AddName inserts n into the index or, if a name equal to it (ignoring
// case) is already present, replaces its spelling and note.
func (db *DB) AddName(ctx context.Context, n dname.Dname, note string) (NameEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO names (canonical_key, wire, label_count, note)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(canonical_key) DO UPDATE SET
			wire = excluded.wire,
			note = excluded.note,
			updated_at = CURRENT_TIMESTAMP
	`, rowKey(n), n.Slice(), n.LabelCount(), note)
	if err != nil {
		return NameEntry{}, fmt.Errorf("failed to add name %s: %w", n, err)
	}
	return db.getName(ctx, n)
}

// GetName returns the entry for n.
func (db *DB) GetName(ctx context.Context, n dname.Dname) (NameEntry, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.getName(ctx, n)
}

func (db *DB) getName(ctx context.Context, n dname.Dname) (NameEntry, error) {
	row := db.conn.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM names WHERE canonical_key = ?", rowKey(n))
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return NameEntry{}, fmt.Errorf("%w: %s", ErrNotFound, n)
	}
	if err != nil {
		return NameEntry{}, fmt.Errorf("failed to get name %s: %w", n, err)
	}
	return e, nil
}

// DeleteName removes n from the index.
func (db *DB) DeleteName(ctx context.Context, n dname.Dname) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	res, err := db.conn.ExecContext(ctx, "DELETE FROM names WHERE canonical_key = ?", rowKey(n))
	if err != nil {
		return fmt.Errorf("failed to delete name %s: %w", n, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete name %s: %w", n, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, n)
	}
	return nil
}

// ListNames returns the indexed names in canonical order.
func (db *DB) ListNames(ctx context.Context, opts ListOptions) ([]NameEntry, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	// The canonical key of every name below a zone starts with the key of
	// the zone itself.
	prefix := rowKey(opts.Under)
	query := "SELECT " + entryColumns + " FROM names WHERE substr(canonical_key, 1, ?) = ? ORDER BY canonical_key"
	args := []any{len(prefix), prefix}
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}
	defer rows.Close()

	var out []NameEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list names: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}
	return out, nil
}

// CountNames returns the number of indexed names.
func (db *DB) CountNames(ctx context.Context) (int, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var n int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM names").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count names: %w", err)
	}
	return n, nil
}

// Successor returns the indexed name that follows n in canonical order,
// wrapping around to the first name after the last one as an NSEC chain
// does (RFC 4034 Section 4.1.1). n itself need not be indexed.
func (db *DB) Successor(ctx context.Context, n dname.Dname) (NameEntry, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM names WHERE canonical_key > ? ORDER BY canonical_key LIMIT 1", rowKey(n))
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		row := db.conn.QueryRowContext(ctx,
			"SELECT "+entryColumns+" FROM names ORDER BY canonical_key LIMIT 1")
		e, err = scanEntry(row)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NameEntry{}, fmt.Errorf("%w: index is empty", ErrNotFound)
	}
	if err != nil {
		return NameEntry{}, fmt.Errorf("failed to find successor of %s: %w", n, err)
	}
	return e, nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(s rowScanner) (NameEntry, error) {
	var (
		e    NameEntry
		wire []byte
	)
	if err := s.Scan(&e.ID, &wire, &e.LabelCount, &e.Note, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return NameEntry{}, err
	}
	n, err := dname.FromBytes(octets.NewBytes(wire))
	if err != nil {
		return NameEntry{}, fmt.Errorf("corrupt name in row %d: %w", e.ID, err)
	}
	e.Name = n
	return e, nil
}
