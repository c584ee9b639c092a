package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"inventory-checker/core/ledger"
	"inventory-checker/core/storage"

	"github.com/minio/minio-go/v7"
)

// objectName is the key of the ledger record inside the bucket.
const objectName = ledger.RecordKey + ".json"

// ObjectStore persists the ledger as a single JSON object in an S3-compatible
// bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
}

// NewObjectStore creates an ObjectStore writing to the given bucket.
func NewObjectStore(client storage.Client, bucket string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket}
}

// Load reads the persisted entries. A missing object or bucket yields an
// empty ledger.
func (s *ObjectStore) Load(ctx context.Context) ([]ledger.Entry, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ledger object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// Minio defers the existence check to the first read.
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ledger object: %w", err)
	}

	var entries []ledger.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode ledger object: %w", err)
	}
	return entries, nil
}

// Save replaces the record, creating the bucket on first use.
func (s *ObjectStore) Save(ctx context.Context, entries []ledger.Entry) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to put ledger object: %w", err)
	}
	return nil
}

// Erase removes the record. Erasing an absent record is a no-op.
func (s *ObjectStore) Erase(ctx context.Context) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to remove ledger object: %w", err)
	}
	return nil
}

// isNotFound reports whether err is a missing-object or missing-bucket
// response from the storage service.
func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}
