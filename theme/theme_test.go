// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillui/quill/object"
	"github.com/quillui/quill/widgets"
)

const tomlTheme = `
name = "test"

[widgets.canvas]
background = "#112233"
border = "#ff0000"
border-width = 2
opacity = 0.5

[widgets.object]
padding = 4
`

const yamlTheme = `
name: test
widgets:
  canvas:
    background: "#112233"
`

func writeTheme(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	th, err := Load(writeTheme(t, "a.toml", tomlTheme))
	require.NoError(t, err)
	assert.Equal(t, "test", th.Name)
	require.Contains(t, th.Widgets, "canvas")
	assert.Equal(t, "#112233", th.Widgets["canvas"].Background)
	require.NotNil(t, th.Widgets["canvas"].BorderWidth)
	assert.Equal(t, 2, *th.Widgets["canvas"].BorderWidth)
}

func TestLoadYAML(t *testing.T) {
	th, err := Load(writeTheme(t, "a.yaml", yamlTheme))
	require.NoError(t, err)
	assert.Equal(t, "#112233", th.Widgets["canvas"].Background)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	_, err = Load(writeTheme(t, "a.ini", "x"))
	assert.ErrorContains(t, err, "unsupported file extension")
	_, err = Load(writeTheme(t, "bad.toml", "= not toml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	th, err := Load(writeTheme(t, "a.toml", tomlTheme))
	require.NoError(t, err)

	root := object.New[object.Object](nil)
	c := widgets.NewCanvas(root)
	require.NoError(t, th.Apply(root))

	assert.Equal(t, 4, root.Style.Padding)
	st := c.AsObject().Style
	assert.Equal(t, uint8(0x11), st.Background.R)
	assert.Equal(t, uint8(0x33), st.Background.B)
	assert.Equal(t, uint8(0xff), st.Background.A)
	assert.Equal(t, 2, st.BorderWidth)
	assert.Equal(t, float32(0.5), st.Opacity)
}

func TestApplyBadColor(t *testing.T) {
	th := &Theme{Widgets: map[string]Entry{"canvas": {Background: "nope"}}}
	c := widgets.NewCanvas(nil)
	err := th.Apply(c)
	assert.ErrorContains(t, err, "bad color")
}

func TestWatcher(t *testing.T) {
	path := writeTheme(t, "w.toml", tomlTheme)

	var reloads atomic.Int32
	w, err := Watch(path, 20*time.Millisecond, func(th *Theme) {
		if th.Name == "changed" {
			reloads.Add(1)
		}
	}, func(err error) { t.Log(err) })
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("name = \"changed\"\n"), 0o644))
	assert.Eventually(t, func() bool {
		return reloads.Load() > 0
	}, 5*time.Second, 10*time.Millisecond)
}
