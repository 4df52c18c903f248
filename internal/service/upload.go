package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/mealscope/backend/config"
	"github.com/mealscope/backend/internal/types"
)

// UploadService stores uploaded files in S3 under collision-resistant keys.
type UploadService struct {
	s3Config *config.S3Config
}

// NewUploadService creates a new UploadService instance
func NewUploadService(s3Config *config.S3Config) *UploadService {
	return &UploadService{s3Config: s3Config}
}

// ObjectKey builds the storage key for an uploaded file name. The random
// UUID prefix guarantees uniqueness; existing keys are never inspected.
func ObjectKey(fileName string) string {
	return fmt.Sprintf("%s-%s", uuid.New().String(), fileName)
}

// Upload reads the file and puts it in the configured bucket. Faults are
// logged and converted into a failure envelope; callers branch on Success
// rather than handling an error.
func (s *UploadService) Upload(ctx context.Context, fileHeader *multipart.FileHeader) types.UploadResult {
	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[UploadService] Failed to open uploaded file: %v", err)
		return types.UploadResult{Success: false, Error: err.Error()}
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[UploadService] Failed to read uploaded file: %v", err)
		return types.UploadResult{Success: false, Error: err.Error()}
	}

	key := ObjectKey(fileHeader.Filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.s3Config.Client.PutObject(ctx, input); err != nil {
		log.Printf("[UploadService] Failed to upload to S3: %v", err)
		return types.UploadResult{Success: false, Error: err.Error()}
	}

	url := s.s3Config.ObjectURL(key)
	log.Printf("[UploadService] Successfully uploaded %s to S3: %s", fileHeader.Filename, url)

	return types.UploadResult{Success: true, URL: url}
}

// PresignedURL returns a presigned GET URL for a stored object key
func (s *UploadService) PresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return s.s3Config.GeneratePresignedURL(ctx, key, expiration)
}
