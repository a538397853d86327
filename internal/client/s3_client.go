package client

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	appConfig "campaign-space-api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MediaFolder identifies where an uploaded image belongs
const (
	FolderCharacters = "characters"
	FolderPhotos     = "photos"
	FolderComments   = "comments"
)

// S3ClientInterface defines the interface for media storage operations
type S3ClientInterface interface {
	GenerateFileKey(folder, characterID, fileExt string) (string, error)
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	GetFileURL(key string) string
}

// S3Client wraps AWS S3 client and implements S3ClientInterface
type S3Client struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string // set when running against local MinIO
}

// NewS3Client creates a new S3 client
func NewS3Client(cfg *appConfig.S3Config) (*S3Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		// MinIO requires explicit credentials
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for MinIO endpoint")
		}

		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
			config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{
						URL:               cfg.Endpoint,
						HostnameImmutable: true,
						SigningRegion:     cfg.Region,
					}, nil
				},
			)),
		)
	} else {
		// Use AWS SDK default credential chain (IAM role on EC2, ~/.aws/credentials locally)
		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true // Required for MinIO
		}
	})

	return &S3Client{
		client:   s3Client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
	}, nil
}

// GenerateFileKey generates a unique S3 file key
// Format: campaign/{folder}/{characterId}/{year}/{month}/{uuid}_{timestamp}.ext
// folder: "characters", "photos" or "comments"
func (c *S3Client) GenerateFileKey(folder, characterID, fileExt string) (string, error) {
	validFolders := map[string]bool{
		FolderCharacters: true,
		FolderPhotos:     true,
		FolderComments:   true,
	}
	if !validFolders[folder] {
		return "", fmt.Errorf("invalid media folder: %s (must be 'characters', 'photos' or 'comments')", folder)
	}

	now := time.Now()
	year := now.Format("2006")
	month := now.Format("01")
	fileUUID := uuid.New().String()
	timestamp := now.Unix()

	key := fmt.Sprintf("campaign/%s/%s/%s/%s/%s_%d%s",
		folder, characterID, year, month, fileUUID, timestamp, fileExt)

	return key, nil
}

// UploadFile uploads a file to S3 and returns its public URL
func (c *S3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return c.GetFileURL(key), nil
}

// DeleteFile deletes a file from S3
func (c *S3Client) DeleteFile(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

// GetFileURL returns the public URL for a file
func (c *S3Client) GetFileURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpoint, "/"), c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

// FileExt extracts the extension (including the dot) from an upload filename
func FileExt(fileName string) string {
	return strings.ToLower(path.Ext(fileName))
}
