package config

import (
	"testing"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/tester"
)

func TestLoadArchiveConfigDisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("ARCHIVE_S3_ENDPOINT", "")
	tester.False(t, loadArchiveConfig().Enabled)
}

func TestLoadArchiveConfig(t *testing.T) {
	t.Setenv("ARCHIVE_S3_ENDPOINT", "minio:9000")
	t.Setenv("ARCHIVE_S3_REGION", "")
	t.Setenv("ARCHIVE_S3_ACCESS_KEY", "ak")
	t.Setenv("ARCHIVE_S3_SECRET_KEY", "sk")
	t.Setenv("ARCHIVE_S3_BUCKET", "plans")
	t.Setenv("ARCHIVE_S3_USE_SSL", "TRUE")

	got := loadArchiveConfig()
	tester.True(t, got.Enabled)
	tester.Eq(t, got.Endpoint, "minio:9000")
	tester.Eq(t, got.Region, "us-east-1", "region must default when unset")
	tester.Eq(t, got.AccessKey, "ak")
	tester.Eq(t, got.SecretKey, "sk")
	tester.Eq(t, got.Bucket, "plans")
	tester.True(t, got.UseSSL)
}
