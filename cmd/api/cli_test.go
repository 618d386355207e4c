package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosdac/assistant/internal/graph"
	"github.com/mosdac/assistant/internal/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAskCommand(t *testing.T) {
	t.Run("prints the response", func(t *testing.T) {
		out, err := execute(t, "ask", "How", "to", "download", "CARTOSAT", "imagery?")
		require.NoError(t, err)

		var resp models.Response
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, models.QueryDownload, resp.QueryType)
		assert.Contains(t, resp.Entities, "CARTOSAT")
	})

	t.Run("requires a query", func(t *testing.T) {
		_, err := execute(t, "ask")
		assert.Error(t, err)
	})
}

func TestRenderCommand(t *testing.T) {
	t.Run("png to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "graph.png")
		_, err := execute(t, "render", "--variant", "ai", "--format", "png", "--out", path, "--select", "300,450")
		require.NoError(t, err)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		img, err := png.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, 500, img.Bounds().Dy())
	})

	t.Run("svg to stdout", func(t *testing.T) {
		out, err := execute(t, "render", "--format", "svg")
		require.NoError(t, err)
		assert.Contains(t, out, "<svg")
		assert.Contains(t, out, "INSAT Series")
	})

	t.Run("bad flags", func(t *testing.T) {
		_, err := execute(t, "render", "--variant", "3d")
		assert.ErrorIs(t, err, graph.ErrUnknownVariant)

		_, err = execute(t, "render", "--format", "gif")
		assert.Error(t, err)

		_, err = execute(t, "render", "--select", "12")
		assert.Error(t, err)
	})
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 150, 100 ")
	require.NoError(t, err)
	assert.Equal(t, graph.Point{X: 150, Y: 100}, p)

	for _, bad := range []string{"", "1", "a,2", "1,b"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}

	_, err = parsePoint("x")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid point"))
}
