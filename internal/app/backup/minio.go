// Package backup copies the episode archive to S3-compatible object storage.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"suomicast/internal/app/model"
	"suomicast/internal/app/repository"
	"suomicast/internal/config"
)

// MinioBackup uploads stored episodes to a MinIO bucket
type MinioBackup struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

// NewMinioBackup creates a backup client from settings and ensures the
// target bucket exists.
func NewMinioBackup(ctx context.Context, settings *config.Settings, logger *zap.Logger) (*MinioBackup, error) {
	if !settings.HasBackupTarget() {
		return nil, fmt.Errorf("backup requires MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY")
	}

	client, err := minio.New(settings.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(settings.MinioAccessKey, settings.MinioSecretKey, ""),
		Secure: settings.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, settings.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, settings.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioBackup{
		client: client,
		bucket: settings.MinioBucket,
		logger: logger,
	}, nil
}

// Upload stores one episode as an audio object plus a metadata object
func (b *MinioBackup) Upload(ctx context.Context, stored model.StoredEpisode) error {
	metadata, err := json.Marshal(stored.Episode)
	if err != nil {
		return fmt.Errorf("failed to marshal episode %s: %w", stored.DateKey, err)
	}

	metaKey := MetadataKey(stored.DateKey)
	_, err = b.client.PutObject(ctx, b.bucket, metaKey,
		bytes.NewReader(metadata), int64(len(metadata)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", metaKey, err)
	}

	if len(stored.AudioData) > 0 {
		audioKey := AudioKey(stored.DateKey)
		_, err = b.client.PutObject(ctx, b.bucket, audioKey,
			bytes.NewReader(stored.AudioData), int64(len(stored.AudioData)),
			minio.PutObjectOptions{ContentType: "audio/wav"})
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", audioKey, err)
		}
	}

	return nil
}

// UploadAll backs up every stored episode, continuing past per-episode
// failures, and returns the number uploaded.
func (b *MinioBackup) UploadAll(ctx context.Context, dao repository.EpisodeDAO) (int, error) {
	episodes, err := dao.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to list episodes: %w", err)
	}

	uploaded := 0
	for _, stored := range episodes {
		if err := b.Upload(ctx, stored); err != nil {
			b.logger.Warn("episode backup failed",
				zap.String("date_key", stored.DateKey),
				zap.Error(err))
			continue
		}
		uploaded++
		b.logger.Info("episode backed up", zap.String("date_key", stored.DateKey))
	}
	return uploaded, nil
}

// MetadataKey returns the object key for an episode's metadata
func MetadataKey(dateKey string) string {
	return fmt.Sprintf("episodes/%s/episode.json", dateKey)
}

// AudioKey returns the object key for an episode's audio
func AudioKey(dateKey string) string {
	return fmt.Sprintf("episodes/%s/audio.wav", dateKey)
}
