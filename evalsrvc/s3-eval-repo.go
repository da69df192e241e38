package evalsrvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// S3EvalRepo stores finished evaluations as zstd-compressed JSON objects.
type S3EvalRepo struct {
	client     *s3.Client
	bucketName string
}

func NewS3EvalRepo(client *s3.Client, bucketName string) *S3EvalRepo {
	return &S3EvalRepo{
		client:     client,
		bucketName: bucketName,
	}
}

func (r *S3EvalRepo) key(id uuid.UUID) string {
	return fmt.Sprintf("%s.json.zst", id.String())
}

func (r *S3EvalRepo) Save(ctx context.Context, eval Evaluation) error {
	data, err := json.Marshal(eval)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation: %w", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer encoder.Close()
	compressed := encoder.EncodeAll(data, make([]byte, 0, len(data)))

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(r.key(eval.UUID)),
		Body:   bytes.NewReader(compressed),
	})
	if err != nil {
		return fmt.Errorf("failed to store evaluation in S3: %w", err)
	}
	return nil
}

func (r *S3EvalRepo) Get(ctx context.Context, id uuid.UUID) (Evaluation, error) {
	output, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucketName),
		Key:    aws.String(r.key(id)),
	})
	if err != nil {
		return Evaluation{}, ErrEvalNotFound().SetDebug(err)
	}
	defer output.Body.Close()

	compressed, err := io.ReadAll(output.Body)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to read evaluation object: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer decoder.Close()
	data, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to decompress evaluation: %w", err)
	}

	var eval Evaluation
	if err := json.Unmarshal(data, &eval); err != nil {
		return Evaluation{}, fmt.Errorf("failed to unmarshal evaluation: %w", err)
	}
	return eval, nil
}
