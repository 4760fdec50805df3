package repository

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/shenikar/drone_analytics_dashboard/internal/service"
)

// MinioReportArchive хранит исходные файлы отчетов в бакете MinIO
type MinioReportArchive struct {
	client *minio.Client
	bucket string
}

func NewMinioReportArchive(client *minio.Client, bucket string) service.ReportArchive {
	return &MinioReportArchive{
		client: client,
		bucket: bucket,
	}
}

// Store загружает файл отчета под ключом reports/<report_id>/<filename>
func (a *MinioReportArchive) Store(ctx context.Context, reportID uuid.UUID, filename string, data []byte) (string, error) {
	key := archiveKey(reportID, filename)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
		UserMetadata: map[string]string{
			"report-id": reportID.String(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive report %s: %w", reportID, err)
	}
	return key, nil
}

// Remove удаляет ранее сохраненный файл отчета
func (a *MinioReportArchive) Remove(ctx context.Context, key string) error {
	if err := a.client.RemoveObject(ctx, a.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove archived report %s: %w", key, err)
	}
	return nil
}

// archiveKey строит ключ объекта; из имени файла берется только последний элемент пути
func archiveKey(reportID uuid.UUID, filename string) string {
	return path.Join("reports", reportID.String(), path.Base("/"+filename))
}
