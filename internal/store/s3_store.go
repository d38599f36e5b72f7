package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/jsonutil"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/types"
)

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3Store archives plan documents as JSON objects under wbs/<id>.json and
// risks/<id>.json. Bucket creation is lazy and happens at most once.
type S3Store struct {
	client     *minio.Client
	bucketName string
	region     string
	initOnce   sync.Once
	initErr    error
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &S3Store{
		client:     client,
		bucketName: bucket,
		region:     region,
	}, nil
}

func (s *S3Store) Close() error { return nil }

func (s *S3Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucketName)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

func (s *S3Store) SaveWBS(ctx context.Context, wbsID string, wbs *types.WBS) error {
	return s.put(ctx, wbsKey(wbsID), wbs)
}

func (s *S3Store) LoadWBS(ctx context.Context, wbsID string) (*types.WBS, error) {
	var wbs types.WBS
	if err := s.get(ctx, wbsKey(wbsID), &wbs); err != nil {
		return nil, err
	}
	return &wbs, nil
}

func (s *S3Store) SaveRisks(ctx context.Context, projectID string, reg *types.RiskRegister) error {
	return s.put(ctx, risksKey(projectID), reg)
}

func (s *S3Store) LoadRisks(ctx context.Context, projectID string) (*types.RiskRegister, error) {
	var reg types.RiskRegister
	if err := s.get(ctx, risksKey(projectID), &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *S3Store) put(ctx context.Context, key string, v any) error {
	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}
	content, err := jsonutil.MarshalNoEscape(v)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, s.bucketName, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	return err
}

func (s *S3Store) get(ctx context.Context, key string, v any) error {
	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket: %w", err)
	}
	obj, err := s.client.GetObject(ctx, s.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
			return ErrNotFound
		}
		return err
	}
	return jsonutil.UnmarshalFlex(data, v)
}

func wbsKey(id string) string   { return "wbs/" + strings.TrimSpace(id) + ".json" }
func risksKey(id string) string { return "risks/" + strings.TrimSpace(id) + ".json" }
