package content

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS script_names (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS spell_scripts (
	spell_id    INTEGER NOT NULL,
	script_name TEXT NOT NULL,
	UNIQUE (spell_id, script_name)
);
CREATE TABLE IF NOT EXISTS maps (
	id       INTEGER PRIMARY KEY,
	name     TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL
);`

// Store keeps directory content in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens the database at path and creates the content tables.
func OpenStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create content schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads every row into a new Directory. Spell bindings keep the order
// they were inserted in.
func (s *Store) Load(ctx context.Context) (*Directory, error) {
	var doc Document

	rows, err := s.db.QueryContext(ctx, `SELECT name, id FROM script_names ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query script names: %w", err)
	}
	for rows.Next() {
		var row ScriptRow
		if err := rows.Scan(&row.Name, &row.ID); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan script name: %w", err)
		}
		doc.Scripts = append(doc.Scripts, row)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("read script names: %w", err)
	}

	rows, err = s.db.QueryContext(ctx, `SELECT spell_id, script_name FROM spell_scripts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query spell scripts: %w", err)
	}
	for rows.Next() {
		var row SpellScriptRow
		if err := rows.Scan(&row.Spell, &row.Script); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan spell script: %w", err)
		}
		doc.SpellScripts = append(doc.SpellScripts, row)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("read spell scripts: %w", err)
	}

	rows, err = s.db.QueryContext(ctx, `SELECT id, name, category FROM maps ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query maps: %w", err)
	}
	for rows.Next() {
		var row MapRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Category); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan map: %w", err)
		}
		doc.Maps = append(doc.Maps, row)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("read maps: %w", err)
	}

	return doc.Directory()
}

// Save writes d in one transaction. Existing script ids and maps are
// overwritten; spell bindings already present are kept.
func (s *Store) Save(ctx context.Context, d *Directory) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, id := range slices.Sorted(maps.Keys(d.names)) {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO script_names (id, name) VALUES (?, ?)
			 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
			id, d.names[id],
		); err != nil {
			return fmt.Errorf("save script %q: %w", d.names[id], err)
		}
	}
	for _, spellID := range slices.Sorted(maps.Keys(d.spells)) {
		for _, name := range d.spells[spellID] {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO spell_scripts (spell_id, script_name) VALUES (?, ?)`,
				spellID, name,
			); err != nil {
				return fmt.Errorf("save spell script %d/%q: %w", spellID, name, err)
			}
		}
	}
	for _, id := range slices.Sorted(maps.Keys(d.maps)) {
		e := d.maps[id]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO maps (id, name, category) VALUES (?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET name = excluded.name, category = excluded.category`,
			e.ID, e.Name, e.Category.String(),
		); err != nil {
			return fmt.Errorf("save map %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit content: %w", err)
	}
	return nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	return rows.Close()
}
