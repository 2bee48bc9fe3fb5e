package quietzone

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"go.afab.re/quietzone/pixel"
)

func TestLoggerDefaultSilent(t *testing.T) {
	require.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	r, err := New(Matrix{Modules: []Color{Dark}, Width: 1, Height: 1}, 1, pixel.Luma)
	require.NoError(t, err)
	_, err = r.MaxDimensions(9, 6).Build()
	require.NoError(t, err)

	require.Contains(t, buf.String(), "rendered matrix")
	require.Contains(t, buf.String(), "sizing=max")
	require.Contains(t, buf.String(), "scale_w=3")
	require.Contains(t, buf.String(), "scale_h=2")

	SetLogger(nil)
	require.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
