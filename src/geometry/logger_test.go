package geometry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	h := nopHandler{}
	require.False(t, h.Enabled(context.Background(), slog.LevelError))
	require.NoError(t, h.Handle(context.Background(), slog.Record{}))
	require.IsType(t, nopHandler{}, h.WithAttrs(nil))
	require.IsType(t, nopHandler{}, h.WithGroup("g"))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	_, err := NewContourExtractor().Extract(unitQuad(down))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "contours extracted")
	require.Contains(t, buf.String(), "segments=1")

	_, err = NewShellExtruder().Extract(singleTriangle())
	require.NoError(t, err)
	require.Contains(t, buf.String(), "points=24")

	SetLogger(nil)
	require.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
