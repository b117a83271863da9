package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("warn")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	configPath, logLevel, grpcAddr, httpAddr = "", "debug", ":7000", ""
	t.Cleanup(func() {
		configPath, logLevel, grpcAddr, httpAddr = "", "", "", ""
	})

	conf, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, ":7000", conf.GRPCAddr)
	assert.Equal(t, ":8080", conf.HTTPAddr)
}

func TestRootCommand(t *testing.T) {
	names := make([]string, 0, 2)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "play")
	assert.Contains(t, names, "serve")

	assert.NotNil(t, serveCmd.Flags().Lookup("config"))
}
