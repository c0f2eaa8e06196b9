package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"suomicast/internal/app/api/openai"
	appconfig "suomicast/internal/app/config"
	"suomicast/internal/config"
)

func writeProvidersYAML(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestProvideProvidersConfigFallsBackToDefaults(t *testing.T) {
	t.Setenv("PROVIDERS_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	providersConfig := provideProvidersConfig(zap.NewNop())
	require.NotNil(t, providersConfig)
	assert.Equal(t, "gemini", providersConfig.DefaultProvider)
	assert.True(t, providersConfig.ProviderEnabled("gemini"))
}

func TestProvideProvidersConfigReadsFile(t *testing.T) {
	path := writeProvidersYAML(t, `
default_provider: gemini
providers:
  gemini:
    type: gemini
    enabled: true
  openai:
    type: openai
    enabled: true
translation:
  provider: openai
`)
	t.Setenv("PROVIDERS_CONFIG_PATH", path)

	providersConfig := provideProvidersConfig(zap.NewNop())
	assert.Equal(t, "openai", providersConfig.TranslationProvider())
	assert.True(t, providersConfig.ProviderEnabled("openai"))
}

func TestProvideContentProviderDisabledByConfig(t *testing.T) {
	providersConfig := appconfig.CreateDefaultConfig()
	geminiEntry := providersConfig.Providers["gemini"]
	geminiEntry.Enabled = false
	providersConfig.Providers["gemini"] = geminiEntry

	apiKeys := &config.APIKeys{Gemini: "AIzaTest-1234567890abcdef1234567890"}
	provider, err := provideContentProvider(apiKeys, providersConfig, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, provider, "a disabled provider must not be constructed even with a credential")
}

func TestProvideContentProviderWithoutCredential(t *testing.T) {
	provider, err := provideContentProvider(&config.APIKeys{}, appconfig.CreateDefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, provider)
}

func TestProvideTranslatorHonorsConfigOverride(t *testing.T) {
	providersConfig := appconfig.CreateDefaultConfig()
	providersConfig.Translation.Provider = "openai"

	apiKeys := &config.APIKeys{
		Gemini: "AIzaTest-1234567890abcdef1234567890",
		OpenAI: "sk-test-1234567890abcdef",
	}
	translator, err := provideTranslator(apiKeys, providersConfig, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &openai.Translator{}, translator,
		"translation.provider override selects OpenAI over the Gemini credential")
}

func TestProvideTranslatorFallsBackToOpenAICredential(t *testing.T) {
	apiKeys := &config.APIKeys{OpenAI: "sk-test-1234567890abcdef"}
	translator, err := provideTranslator(apiKeys, appconfig.CreateDefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &openai.Translator{}, translator)
}

func TestProvideTranslatorWithoutCredentials(t *testing.T) {
	translator, err := provideTranslator(&config.APIKeys{}, appconfig.CreateDefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, translator)
}
