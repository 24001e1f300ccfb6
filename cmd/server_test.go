package cmd

import (
	"context"
	"net/http"
	"testing"
	"time"

	"filmorate/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestServe_StopsOnCancel(t *testing.T) {
	config := &utils.Config{
		App:  utils.AppConfig{Port: "0"},
		HTTP: utils.HTTPConfig{ShutdownTimeout: time.Second},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, http.NotFoundHandler(), config, zap.NewNop())
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServe_ReportsListenError(t *testing.T) {
	config := &utils.Config{
		App:  utils.AppConfig{Port: "not-a-port"},
		HTTP: utils.HTTPConfig{ShutdownTimeout: time.Second},
	}

	err := serve(context.Background(), http.NotFoundHandler(), config, zap.NewNop())
	assert.Error(t, err)
}
