package cli_test

import (
	"bytes"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/commitfiles/cmd/cli"
)

const (
	embeddedDefaultLogLevelConstant  = "info"
	embeddedDefaultLogFormatConstant = "structured"
)

type embeddedConfigurationDocument struct {
	Common map[string]string `yaml:"common"`
}

func TestEmbeddedDefaultConfigurationDeclaresCommonKeys(t *testing.T) {
	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(t, "yaml", configurationType)

	var document embeddedConfigurationDocument
	require.NoError(t, yaml.Unmarshal(configurationData, &document))
	require.Equal(t, map[string]string{"log_level": embeddedDefaultLogLevelConstant, "log_format": embeddedDefaultLogFormatConstant}, document.Common)
}

func TestEmbeddedDefaultConfigurationReturnsCopy(t *testing.T) {
	firstCopy, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEmpty(t, firstCopy)
	firstCopy[0] = '#'

	secondCopy, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEqual(t, firstCopy[0], secondCopy[0])
}

func TestEmbeddedDefaultConfigurationDecodesIntoApplicationConfiguration(t *testing.T) {
	configuration := decodeEmbeddedApplicationConfiguration(t)

	require.Equal(t, embeddedDefaultLogLevelConstant, configuration.Common.LogLevel)
	require.Equal(t, embeddedDefaultLogFormatConstant, configuration.Common.LogFormat)
}

func TestApplicationConfigurationMapstructureTags(t *testing.T) {
	var configuration cli.ApplicationConfiguration
	decodeConfigurationValues(t, map[string]any{
		"common": map[string]any{
			"log_level":  "debug",
			"log_format": "console",
		},
	}, &configuration)

	require.Equal(t, cli.ApplicationConfiguration{
		Common: cli.ApplicationCommonConfiguration{LogLevel: "debug", LogFormat: "console"},
	}, configuration)
}

func decodeEmbeddedApplicationConfiguration(testingInstance testing.TB) cli.ApplicationConfiguration {
	testingInstance.Helper()

	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	viperInstance := viper.New()
	viperInstance.SetConfigType(configurationType)

	readError := viperInstance.ReadConfig(bytes.NewReader(configurationData))
	require.NoError(testingInstance, readError)

	var configuration cli.ApplicationConfiguration
	unmarshalError := viperInstance.Unmarshal(&configuration)
	require.NoError(testingInstance, unmarshalError)

	return configuration
}

func decodeConfigurationValues(testingInstance testing.TB, values map[string]any, target any) {
	testingInstance.Helper()

	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "mapstructure", Result: target})
	require.NoError(testingInstance, decoderError)

	decodeError := decoder.Decode(values)
	require.NoError(testingInstance, decodeError)
}
