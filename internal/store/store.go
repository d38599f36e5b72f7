// Package store persists plan documents as a flat key→document space: one
// WBS snapshot per wbs id and one risk register per project id. Concurrent
// writers of the same id race with last-write-wins semantics; there is no
// locking across requests.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

// ErrNotFound reports a missing document for the given id.
var ErrNotFound = errors.New("store: not found")

// Store is the persistence contract the handlers depend on.
type Store interface {
	SaveWBS(ctx context.Context, wbsID string, wbs *types.WBS) error
	LoadWBS(ctx context.Context, wbsID string) (*types.WBS, error)
	SaveRisks(ctx context.Context, projectID string, reg *types.RiskRegister) error
	LoadRisks(ctx context.Context, projectID string) (*types.RiskRegister, error)
	Close() error
}

// Config selects the persistence backend. All values come from the
// application configuration; this package never reads the environment.
type Config struct {
	DataDir     string
	PostgresDSN string
	Archive     *S3Config
}

// New builds the store: postgres when a DSN is set (falling back to files
// when the connection fails), the file backend otherwise. When an archive
// target is given and reachable the primary is wrapped in a best-effort
// mirror.
func New(cfg Config) Store {
	var primary Store
	if dsn := strings.TrimSpace(cfg.PostgresDSN); dsn != "" {
		if pg, err := NewPostgresStore(dsn); err == nil {
			primary = pg
		}
	}
	if primary == nil {
		primary = NewFileStore(cfg.DataDir)
	}

	if cfg.Archive != nil {
		if archive, err := NewS3Store(*cfg.Archive); err == nil {
			return NewMirror(primary, archive)
		}
	}
	return primary
}
