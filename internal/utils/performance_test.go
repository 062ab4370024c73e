package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestOperationTimer(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	stop := OperationTimer("generate_text", 0, log)
	duration := stop()

	assert.GreaterOrEqual(t, duration, time.Duration(0))
	assert.Contains(t, buf.String(), `"operation":"generate_text"`)
	assert.Contains(t, buf.String(), "Operation completed")
	assert.NotContains(t, buf.String(), "Slow operation detected")
}

func TestOperationTimer_Slow(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	stop := OperationTimer("render_image", time.Nanosecond, log)
	time.Sleep(time.Millisecond)
	stop()

	assert.Contains(t, buf.String(), "Slow operation detected")
}
