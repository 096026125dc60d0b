package contestsrvc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/teamwork-challenge/backend/s3bucket"
)

// SubmArchive copies every committed submission to S3 as a zstd-compressed
// JSON document. It runs outside the engine's transactions: a failed upload
// is logged and forgotten, the submission itself is already durable.
type SubmArchive struct {
	bucket  *s3bucket.S3Bucket
	encoder *zstd.Encoder
}

func NewSubmArchive(bucket *s3bucket.S3Bucket) (*SubmArchive, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	return &SubmArchive{
		bucket:  bucket,
		encoder: encoder,
	}, nil
}

func (a *SubmArchive) Store(subm Submission) {
	payload, err := json.Marshal(subm)
	if err != nil {
		slog.Error("failed to marshal submission for archive",
			"subm_id", subm.ID.String(), "error", err)
		return
	}
	compressed := a.encoder.EncodeAll(payload, nil)

	key := fmt.Sprintf("subm/%s/%s.json.zst", subm.RoundID, subm.ID)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err = a.bucket.Upload(ctx, compressed, key, "application/zstd")
	if err != nil {
		slog.Error("failed to archive submission",
			"subm_id", subm.ID.String(), "error", err)
	}
}
