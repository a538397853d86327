package client

import (
	"context"
	"fmt"
	"io"
)

// MockS3Client is a mock implementation of S3ClientInterface for testing
type MockS3Client struct {
	GenerateFileKeyFunc func(folder, characterID, fileExt string) (string, error)
	UploadFileFunc      func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc      func(ctx context.Context, key string) error
	GetFileURLFunc      func(key string) string

	UploadedKeys []string
	DeletedKeys  []string
}

// NewMockS3Client creates a new mock S3 client with default behaviors
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{}
}

func (m *MockS3Client) GenerateFileKey(folder, characterID, fileExt string) (string, error) {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(folder, characterID, fileExt)
	}
	return fmt.Sprintf("campaign/%s/%s/test-key%s", folder, characterID, fileExt), nil
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	m.UploadedKeys = append(m.UploadedKeys, key)
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	return "https://test-bucket.s3.us-east-1.amazonaws.com/" + key, nil
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	m.DeletedKeys = append(m.DeletedKeys, key)
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return "https://test-bucket.s3.us-east-1.amazonaws.com/" + key
}
