package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sbilibin2017/petpal-api/internal/logger"
)

//go:generate mockgen -source=minio.go -destination=mock_minio.go -package=storage

// DefaultURLExpiry is the lifetime of a presigned download link.
const DefaultURLExpiry = 15 * time.Minute

// ErrForeignObject is returned when a key does not belong to the requesting user.
var ErrForeignObject = errors.New("object not found")

// ObjectClient is the part of *minio.Client the store uses.
type ObjectClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// NewMinioClient connects to an S3 compatible endpoint with static credentials.
func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
}

// AttachmentStore keeps user uploads (pet photos, record attachments) under
// a per-owner prefix of one bucket.
type AttachmentStore struct {
	client    ObjectClient
	bucket    string
	urlExpiry time.Duration
}

func NewAttachmentStore(client ObjectClient, bucket string) *AttachmentStore {
	return &AttachmentStore{client: client, bucket: bucket, urlExpiry: DefaultURLExpiry}
}

// EnsureBucket creates the bucket when it is missing.
func (s *AttachmentStore) EnsureBucket(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if found {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("make bucket %s: %w", s.bucket, err)
	}
	logger.Log.Infow("bucket created", "bucket", s.bucket)
	return nil
}

// Upload stores the object and returns its key, "<owner>/<uuid><ext>".
func (s *AttachmentStore) Upload(ctx context.Context, ownerID uuid.UUID, filename, contentType string, r io.Reader, size int64) (string, error) {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, `\`, "/"))))
	if len(ext) > 10 {
		ext = ""
	}
	key := ownerID.String() + "/" + uuid.NewString() + ext

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	logger.Log.Infow("object upload",
		"bucket", s.bucket,
		"key", key,
		"size", info.Size,
		"error", err,
	)
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return key, nil
}

// DownloadURL returns a presigned link for a key owned by ownerID.
func (s *AttachmentStore) DownloadURL(ctx context.Context, ownerID uuid.UUID, key string) (string, error) {
	if !strings.HasPrefix(key, ownerID.String()+"/") || strings.Contains(key, "..") {
		return "", ErrForeignObject
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.urlExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object: %w", err)
	}
	return u.String(), nil
}
