package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/jsonutil"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

// FileStore writes one JSON document per id under a data directory:
// wbs_<id>.json and project_<id>_risks.json. Documents are written with
// HTML escaping off so Arabic text stays readable on disk.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "data"
	}
	return &FileStore{dir: dir}
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) SaveWBS(_ context.Context, wbsID string, wbs *types.WBS) error {
	return s.write(s.wbsPath(wbsID), wbs)
}

func (s *FileStore) LoadWBS(_ context.Context, wbsID string) (*types.WBS, error) {
	var wbs types.WBS
	if err := s.read(s.wbsPath(wbsID), &wbs); err != nil {
		return nil, err
	}
	return &wbs, nil
}

func (s *FileStore) SaveRisks(_ context.Context, projectID string, reg *types.RiskRegister) error {
	return s.write(s.risksPath(projectID), reg)
}

func (s *FileStore) LoadRisks(_ context.Context, projectID string) (*types.RiskRegister, error) {
	var reg types.RiskRegister
	if err := s.read(s.risksPath(projectID), &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *FileStore) wbsPath(id string) string {
	return filepath.Join(s.dir, fmt.Sprintf("wbs_%s.json", id))
}

func (s *FileStore) risksPath(id string) string {
	return filepath.Join(s.dir, fmt.Sprintf("project_%s_risks.json", id))
}

func (s *FileStore) write(path string, v any) error {
	b, err := jsonutil.MarshalNoEscapeIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func (s *FileStore) read(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return jsonutil.UnmarshalFlex(b, v)
}
