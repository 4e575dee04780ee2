package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitgrid/internal/config"
	"github.com/bnema/splitgrid/internal/domain/build"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/infrastructure/persistence/sqlite"
)

func isolateXDG(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("SPLITGRID_LOG_LEVEL", "")
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	layoutsJSON = false
	configSchemaStdout = false
	versionShort = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func seedLayout(t *testing.T, id entity.WorkspaceID) {
	t.Helper()
	path, err := config.GetDatabaseFile()
	require.NoError(t, err)

	db := sqlite.NewLazyDB(path)
	defer func() { require.NoError(t, db.Close()) }()

	ws := entity.NewWorkspace(id, "pane-1")
	require.NoError(t, ws.Center.Split("pane-1", "pane-2", entity.SplitRight))
	require.NoError(t, sqlite.NewLazyLayoutRepository(db).Save(context.Background(), entity.SnapshotWorkspace(ws)))
}

func TestVersionShort(t *testing.T) {
	isolateXDG(t)
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc123", BuildDate: "today", GoVersion: "go1.25"})

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Contains(t, out, "splitgrid 1.2.3")
}

func TestLayoutsListJSON(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "layouts", "list", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)

	seedLayout(t, "main")
	out, err = execute(t, "layouts", "list", "--json")
	require.NoError(t, err)

	var items []layoutJSON
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "main", items[0].Workspace)
	assert.Equal(t, 2, items[0].Panes)
}

func TestLayoutsShowAndDelete(t *testing.T) {
	isolateXDG(t)
	seedLayout(t, "main")

	out, err := execute(t, "layouts", "show", "main")
	require.NoError(t, err)
	assert.Contains(t, out, "pane-1")
	assert.Contains(t, out, "pane-2")

	out, err = execute(t, "layouts", "delete", "main")
	require.NoError(t, err)
	assert.Contains(t, out, "main")

	_, err = execute(t, "layouts", "show", "main")
	assert.ErrorContains(t, err, "layout not found")
}

func TestConfigCommands(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")
	assert.Contains(t, out, "layouts.sqlite")

	out, err = execute(t, "config", "schema", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "splitgrid configuration")

	out, err = execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "config.schema.json")
	assert.FileExists(t, mustSchemaFile(t))
}

func mustSchemaFile(t *testing.T) string {
	t.Helper()
	path, err := config.GetSchemaFile()
	require.NoError(t, err)
	return path
}

func TestLayoutOptionsFromConfig(t *testing.T) {
	opts := layoutOptions(config.LayoutConfig{MinWidth: 120, MinHeight: 90, HandleSize: 6, DividerSize: 2})
	assert.Equal(t, 120.0, opts.MinWidth)
	assert.Equal(t, 90.0, opts.MinHeight)
	assert.Equal(t, 6.0, opts.HandleSize)
	assert.Equal(t, 2.0, opts.DividerSize)
}
