package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Repo stores one JSON object per phone number under a key prefix.
type S3Repo struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Repo creates an S3-backed resume repository.
func NewS3Repo(ctx context.Context, region, bucket, prefix string) (*S3Repo, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Repo{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: normalizePrefix(prefix),
	}, nil
}

// Put uploads the resume JSON to <prefix>/<phoneNumber>.json.
func (r *S3Repo) Put(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !fileKeyRe.MatchString(resume.PhoneNumber) {
		return ErrInvalidPhone
	}

	payload, err := json.Marshal(toStored(resume))
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}

	objectKey := r.objectKey(resume.PhoneNumber)
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(r.bucket),
		Key:                  aws.String(objectKey),
		Body:                 bytes.NewReader(payload),
		ContentType:          aws.String("application/json"),
		ServerSideEncryption: s3types.ServerSideEncryptionAes256,
	})
	if err != nil {
		return fmt.Errorf("s3 put object bucket=%s key=%s: %w", r.bucket, objectKey, err)
	}
	return nil
}

// Get downloads and decodes the resume stored for a phone number.
func (r *S3Repo) Get(ctx context.Context, phoneNumber string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	if !fileKeyRe.MatchString(phoneNumber) {
		return Resume{}, ErrInvalidPhone
	}

	objectKey := r.objectKey(phoneNumber)
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var noKey *s3types.NoSuchKey
		if errors.As(err, &noKey) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, fmt.Errorf("s3 get object bucket=%s key=%s: %w", r.bucket, objectKey, err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return Resume{}, fmt.Errorf("read object body: %w", err)
	}

	var stored storedResume
	if err := json.Unmarshal(raw, &stored); err != nil {
		return Resume{}, fmt.Errorf("decode resume: %w", err)
	}
	return fromStored(stored)
}

func (r *S3Repo) objectKey(phoneNumber string) string {
	return applyPrefix(r.prefix, phoneNumber+".json")
}

func normalizePrefix(prefix string) string {
	trimmed := strings.Trim(strings.TrimSpace(prefix), "/")
	return trimmed
}

func applyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return path.Join(prefix, key)
}

var _ ResumesRepo = (*S3Repo)(nil)
