package store

import (
	"testing"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/tester"
)

func TestNewPicksFileBackend(t *testing.T) {
	st := New(Config{DataDir: t.TempDir()})
	defer st.Close()

	_, ok := st.(*FileStore)
	tester.True(t, ok, "no DSN must select the file backend")
}

func TestNewSkipsInvalidArchive(t *testing.T) {
	st := New(Config{
		DataDir: t.TempDir(),
		Archive: &S3Config{Endpoint: "minio:9000"},
	})
	defer st.Close()

	_, ok := st.(*FileStore)
	tester.True(t, ok, "incomplete archive credentials must leave the primary unwrapped")
}
