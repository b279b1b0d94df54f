package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/ecocycle/ecocycle-ims/pkg/logger"
)

// Cada línea lleva el nombre del servicio y, si aplica, el componente.
func TestLogger_CamposFijos(t *testing.T) {
	log := logger.New(logger.Config{Service: "ecocycle-ims", Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := log.Component("postgres").Zerolog().Output(&buf)
	zl.Info().Msg("pool listo")

	out := buf.String()
	assert.Contains(t, out, `"service":"ecocycle-ims"`)
	assert.Contains(t, out, `"component":"postgres"`)
	assert.Contains(t, out, `"message":"pool listo"`)
}

// Un nivel desconocido no rompe el arranque: se cae a info.
func TestLogger_NivelDesconocido(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "ruidoso"})

	assert.Equal(t, zerolog.InfoLevel, log.Zerolog().GetLevel())
}
