//go:build unit

package sources_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/infrastructure/repositories/sources"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func collectPaths(t *testing.T, root string, extensions, ignoreDirs []string) []string {
	t.Helper()
	files, err := sources.NewSourceRepository().FindCandidates(context.Background(), root, extensions, ignoreDirs)
	require.NoError(t, err)
	paths := make([]string, 0, len(files))
	for _, f := range files {
		rel, relErr := filepath.Rel(root, f.Path)
		require.NoError(t, relErr)
		paths = append(paths, filepath.ToSlash(rel))
	}
	return paths
}

func TestFindCandidates(t *testing.T) {
	t.Parallel()

	t.Run("should collect files matching the default allow-list", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeFile(t, dir, "Program.cs", "class Program { }")
		writeFile(t, dir, "View.cshtml", "@page")
		writeFile(t, dir, "notes.txt", "not a candidate")

		// when
		paths := collectPaths(t, dir, nil, nil)

		// then
		assert.ElementsMatch(t, []string{"Program.cs", "View.cshtml"}, paths)
	})

	t.Run("should skip build output and VCS directories", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeFile(t, dir, "Program.cs", "class Program { }")
		writeFile(t, dir, filepath.Join("bin", "Generated.cs"), "class Generated { }")
		writeFile(t, dir, filepath.Join("obj", "Temp.cs"), "class Temp { }")
		writeFile(t, dir, filepath.Join(".git", "hook.cs"), "class Hook { }")

		// when
		paths := collectPaths(t, dir, nil, nil)

		// then
		assert.Equal(t, []string{"Program.cs"}, paths)
	})

	t.Run("should exclude project metadata and runtime manifests", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeFile(t, dir, "App.csproj", "<Project />")
		writeFile(t, dir, "packages.config", "<packages />")
		writeFile(t, dir, "App.deps.json", "{}")
		writeFile(t, dir, "appsettings.json", "{}")

		// when
		paths := collectPaths(t, dir, nil, nil)

		// then
		assert.Equal(t, []string{"appsettings.json"}, paths)
	})

	t.Run("should honor a custom extension allow-list", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeFile(t, dir, "Program.cs", "class Program { }")
		writeFile(t, dir, "script.sql", "SELECT 1;")

		// when
		paths := collectPaths(t, dir, []string{".sql"}, nil)

		// then
		assert.Equal(t, []string{"script.sql"}, paths)
	})

	t.Run("should read file content once", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeFile(t, dir, "Program.cs", "using Acme.Widgets;")

		// when
		files, err := sources.NewSourceRepository().FindCandidates(context.Background(), dir, nil, nil)

		// then
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "using Acme.Widgets;", files[0].Content)
	})
}
