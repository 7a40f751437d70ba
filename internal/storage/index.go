/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/namuan/zeus/internal/domain"
	applog "github.com/namuan/zeus/internal/log"
	"github.com/namuan/zeus/internal/version"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	// IndexDirName stores per-project ephemeral index data under the project root.
	IndexDirName  = ".zeus"
	IndexFileName = "index.sqlite"

	// schemaVersion tracks the local SQLite schema for the embedded index.
	schemaVersion = 1
)

// IndexPath returns the full path to the project's index database file.
func IndexPath(projectRoot string) string {
	return filepath.Join(projectRoot, IndexDirName, IndexFileName)
}

// InitOrOpenIndex ensures the per-project SQLite index exists, opens it in
// WAL mode and brings the schema up to date. Callers close the returned DB.
func InitOrOpenIndex(projectRoot string) (*sql.DB, error) {
	l := applog.WithOperation(applog.WithComponent("storage"), "index_init").With(
		slog.String("root", projectRoot),
	)
	if strings.TrimSpace(projectRoot) == "" {
		return nil, errors.New("project root is required")
	}
	if err := os.MkdirAll(filepath.Join(projectRoot, IndexDirName), 0o755); err != nil {
		l.Error("create .zeus dir failed", slog.Any("err", err))
		return nil, fmt.Errorf("create .zeus dir: %w", err)
	}

	path := IndexPath(projectRoot)
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		l.Error("sqlite open failed", slog.Any("err", err))
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		l.Error("enable WAL failed", slog.Any("err", err))
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := ensureIndexSchema(ctx, db); err != nil {
		_ = db.Close()
		l.Error("ensure index schema failed", slog.Any("err", err))
		return nil, err
	}
	l.Info("index ready", slog.String("path", path))
	return db, nil
}

func ensureIndexSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS version (
			id          INTEGER PRIMARY KEY CHECK(id=1),
			schema      INTEGER NOT NULL,
			app         TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);`,
		// One row per component; text collects the human-visible string
		// properties (text, label, placeholder, value, alt_text).
		`CREATE TABLE IF NOT EXISTS components (
			id           INTEGER PRIMARY KEY,
			component_id TEXT NOT NULL UNIQUE,
			page_id      TEXT NOT NULL,
			page_name    TEXT NOT NULL,
			type         TEXT NOT NULL,
			text         TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_components_page ON components(page_id);`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS fts_components USING fts5(
			text,
			content='',
			tokenize = 'unicode61'
		);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	appv := version.String()
	var curSchema int
	err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&curSchema)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.ExecContext(ctx, `INSERT INTO version (id, schema, app, created_at, updated_at) VALUES(1, ?, ?, ?, ?)`, schemaVersion, appv, now, now); err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	default:
		if _, err := db.ExecContext(ctx, `UPDATE version SET app=?, updated_at=? WHERE id=1`, appv, now); err != nil {
			return fmt.Errorf("update version: %w", err)
		}
	}
	return nil
}

// textProperties are the property names whose values feed the search index.
var textProperties = []string{"text", "label", "placeholder", "value", "alt_text"}

func componentText(rec *domain.ComponentRecord) string {
	var parts []string
	for _, name := range textProperties {
		if v, ok := rec.Properties[name]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, " ")
}

// RebuildIndex replaces the index contents with the current project state.
func RebuildIndex(ctx context.Context, db *sql.DB, p *domain.Project) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	// contentless FTS tables only support the 'delete-all' command
	for _, q := range []string{
		`DELETE FROM components;`,
		`INSERT INTO fts_components(fts_components) VALUES('delete-all');`,
	} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("clear index: %w", err)
		}
	}
	for pi := range p.Pages {
		pg := &p.Pages[pi]
		for ci := range pg.Components {
			rec := &pg.Components[ci]
			res, err := tx.ExecContext(ctx,
				`INSERT INTO components (component_id, page_id, page_name, type, text) VALUES (?, ?, ?, ?, ?)`,
				rec.ID, pg.ID, pg.Name, rec.Type, componentText(rec))
			if err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("index component %s: %w", rec.ID, err)
			}
			rowid, err := res.LastInsertId()
			if err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("component rowid: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO fts_components (rowid, text) VALUES (?, ?)`,
				rowid, componentText(rec)); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("index fts %s: %w", rec.ID, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}
	return nil
}

// SearchResult is a single component match.
type SearchResult struct {
	ComponentID string
	PageID      string
	PageName    string
	Type        string
	Snippet     string
}

// SearchComponents runs a full-text query over indexed component text.
// Query uses FTS5 syntax; an empty query returns nothing.
func SearchComponents(ctx context.Context, db *sql.DB, query string, limit int) ([]SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.QueryContext(ctx, `
		SELECT c.component_id, c.page_id, c.page_name, c.type,
		       snippet(fts_components, 0, '[', ']', '...', 10)
		FROM fts_components
		JOIN components c ON fts_components.rowid = c.id
		WHERE fts_components MATCH ?
		LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer rows.Close()
	var out []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ComponentID, &r.PageID, &r.PageName, &r.Type, &r.Snippet); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RebuildAndSearch opens the index for a project root, rebuilds it from the
// project and runs one query. Convenience for the CLI.
func RebuildAndSearch(ctx context.Context, projectRoot string, p *domain.Project, query string) ([]SearchResult, error) {
	db, err := InitOrOpenIndex(projectRoot)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if err := RebuildIndex(ctx, db, p); err != nil {
		return nil, err
	}
	return SearchComponents(ctx, db, query, 0)
}
