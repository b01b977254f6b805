package logger

import (
	"sync"
	"testing"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/out"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLoggerLogDoesNotMutateModule(t *testing.T) {
	log, err := NewConsoleLogger("UTC")
	require.NoError(t, err)

	// Loguear sin módulo usa "unknown" sin escribir en el struct compartido
	log.Info("test.event", out.LogFields{})
	assert.Equal(t, "", log.module)
}

func TestConsoleLoggerConcurrentUse(t *testing.T) {
	log, err := NewConsoleLogger("UTC")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Debug("test.event", out.LogFields{"n": 1})
		}()
	}
	wg.Wait()

	assert.Equal(t, "", log.module)
}

func TestConsoleLoggerWithModule(t *testing.T) {
	log, err := NewConsoleLogger("UTC")
	require.NoError(t, err)

	scoped := log.WithModule("Test")
	scoped.Info("test.event", out.LogFields{})

	// El logger original no cambia de módulo
	assert.Equal(t, "", log.module)
}
