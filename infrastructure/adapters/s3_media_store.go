package adapters

import (
	"bytes"
	"context"
	"fmt"

	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
)

type s3MediaStore struct {
	s3Svc    *s3.S3
	s3Config *config.S3Config
	logger   outbound.LoggerPort
}

func NewS3MediaStore(s3Svc *s3.S3, s3Config *config.S3Config, logger outbound.LoggerPort) outbound.MediaStorePort {
	return &s3MediaStore{
		s3Svc:    s3Svc,
		s3Config: s3Config,
		logger:   logger,
	}
}

func (s *s3MediaStore) Save(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(contentType),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    key,
		})
		return "", err
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.s3Config.BucketName, s.s3Config.Region, key)
	s.logger.DebugWithFields("Uploaded object to S3", map[string]interface{}{
		"url": url,
	})
	return url, nil
}
