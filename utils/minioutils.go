package utils

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/pelayanandata/portal-go/minio"
)

// UploadObject stores one document (application letter, payment proof,
// data deliverable) and returns its object URL. The lifecycle engine only
// ever sees the returned URL, never the bytes.
func UploadObject(ctx context.Context, objectName string, contentType string, contentReader io.Reader, contentSize int64) (string, error) {
	if strings.TrimSpace(objectName) == "" {
		return "", fmt.Errorf("object name cannot be empty")
	}

	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectName, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", minio.Client.EndpointURL(), minio.BucketName, objectName), nil
}

// ObjectName builds a collision-free name preserving the original extension.
func ObjectName(prefix, filename string) string {
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), filepath.Ext(filename))
}

// DeleteObject removes a stored document.
func DeleteObject(ctx context.Context, objectName string) error {
	return minio.Client.RemoveObject(ctx, minio.BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
