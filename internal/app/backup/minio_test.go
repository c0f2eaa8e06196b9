package backup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"suomicast/internal/config"
)

func TestObjectKeys(t *testing.T) {
	assert.Equal(t, "episodes/2025-03-10/episode.json", MetadataKey("2025-03-10"))
	assert.Equal(t, "episodes/2025-03-10/audio.wav", AudioKey("2025-03-10"))
}

func TestNewMinioBackupRequiresTarget(t *testing.T) {
	settings := &config.Settings{MinioBucket: "suomicast-episodes"}
	_, err := NewMinioBackup(context.Background(), settings, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MINIO_ENDPOINT")
}
