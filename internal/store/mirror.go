package store

import (
	"context"
	"log"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

// Mirror writes every document to a primary and an archive backend. The
// primary is authoritative: archive write failures are logged and dropped,
// and reads only fall back to the archive when the primary has no copy.
type Mirror struct {
	primary Store
	archive Store
}

func NewMirror(primary, archive Store) *Mirror {
	return &Mirror{primary: primary, archive: archive}
}

func (m *Mirror) Close() error {
	aerr := m.archive.Close()
	if err := m.primary.Close(); err != nil {
		return err
	}
	return aerr
}

func (m *Mirror) SaveWBS(ctx context.Context, wbsID string, wbs *types.WBS) error {
	if err := m.primary.SaveWBS(ctx, wbsID, wbs); err != nil {
		return err
	}
	if err := m.archive.SaveWBS(ctx, wbsID, wbs); err != nil {
		log.Printf("store: archive wbs %s: %v", wbsID, err)
	}
	return nil
}

func (m *Mirror) LoadWBS(ctx context.Context, wbsID string) (*types.WBS, error) {
	wbs, err := m.primary.LoadWBS(ctx, wbsID)
	if err == ErrNotFound {
		return m.archive.LoadWBS(ctx, wbsID)
	}
	return wbs, err
}

func (m *Mirror) SaveRisks(ctx context.Context, projectID string, reg *types.RiskRegister) error {
	if err := m.primary.SaveRisks(ctx, projectID, reg); err != nil {
		return err
	}
	if err := m.archive.SaveRisks(ctx, projectID, reg); err != nil {
		log.Printf("store: archive risks %s: %v", projectID, err)
	}
	return nil
}

func (m *Mirror) LoadRisks(ctx context.Context, projectID string) (*types.RiskRegister, error) {
	reg, err := m.primary.LoadRisks(ctx, projectID)
	if err == ErrNotFound {
		return m.archive.LoadRisks(ctx, projectID)
	}
	return reg, err
}
