package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

// PostgresStore keeps plan documents in two key→jsonb tables. Reads go
// through an LRU cache; writes invalidate by overwriting the cached entry.
type PostgresStore struct {
	db    *sql.DB
	cache *lru.Cache[string, []byte]

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, []byte](1024)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db, cache: cache}, nil
}

func (s *PostgresStore) Close() error { return s.db.Close() }

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS wbs_snapshots (
    wbs_id TEXT PRIMARY KEY,
    doc JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS risk_registers (
    project_id TEXT PRIMARY KEY,
    doc JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`)
	})
	return s.schemaErr
}

func (s *PostgresStore) SaveWBS(ctx context.Context, wbsID string, wbs *types.WBS) error {
	return s.save(ctx, "wbs_snapshots", "wbs_id", wbsID, wbs)
}

func (s *PostgresStore) LoadWBS(ctx context.Context, wbsID string) (*types.WBS, error) {
	var wbs types.WBS
	if err := s.load(ctx, "wbs_snapshots", "wbs_id", wbsID, &wbs); err != nil {
		return nil, err
	}
	return &wbs, nil
}

func (s *PostgresStore) SaveRisks(ctx context.Context, projectID string, reg *types.RiskRegister) error {
	return s.save(ctx, "risk_registers", "project_id", projectID, reg)
}

func (s *PostgresStore) LoadRisks(ctx context.Context, projectID string) (*types.RiskRegister, error) {
	var reg types.RiskRegister
	if err := s.load(ctx, "risk_registers", "project_id", projectID, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *PostgresStore) save(ctx context.Context, table, keyCol, id string, v any) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO `+table+` (`+keyCol+`, doc, updated_at) VALUES ($1, $2, now())
         ON CONFLICT (`+keyCol+`) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		id, doc)
	if err != nil {
		return err
	}
	s.cache.Add(table+"/"+id, doc)
	return nil
}

func (s *PostgresStore) load(ctx context.Context, table, keyCol, id string, v any) error {
	if doc, ok := s.cache.Get(table + "/" + id); ok {
		return json.Unmarshal(doc, v)
	}
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	var doc []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM `+table+` WHERE `+keyCol+` = $1`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	s.cache.Add(table+"/"+id, doc)
	return json.Unmarshal(doc, v)
}
