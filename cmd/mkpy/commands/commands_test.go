package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/mkpy/internal/config"
	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("mkpy"))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = ctx.Run(&Global{Out: &out}, &cli)
	return out.String(), err
}

func writeDocs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "docs")
	for rel, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return dir
}

func TestBuildCommand(t *testing.T) {
	docs := writeDocs(t, map[string]string{
		"index.md":         "# Home\n",
		"about.md":         "# About\n",
		"guide/install.md": "# Install\n",
	})
	out := filepath.Join(t.TempDir(), "site")

	stdout, err := run(t, "build", "-f", docs, "-o", out, "--base-url", "https://docs.example.com")
	require.NoError(t, err)
	require.Contains(t, stdout, "converting 3 markdown files")
	require.Contains(t, stdout, "Files created: 3")
	require.Contains(t, stdout, "guide/install.html")

	for _, name := range []string{"index.html", "about.html", "guide/install.html", "sitemap.xml"} {
		require.FileExists(t, filepath.Join(out, filepath.FromSlash(name)))
	}
}

func TestBuildCommandWithoutBaseURLSkipsSitemap(t *testing.T) {
	docs := writeDocs(t, map[string]string{"index.md": "# Home\n"})
	out := filepath.Join(t.TempDir(), "site")

	stdout, err := run(t, "build", "-f", docs, "-o", out)
	require.NoError(t, err)
	require.NotContains(t, stdout, "Sitemap:")
	require.NoFileExists(t, filepath.Join(out, "sitemap.xml"))
}

func TestBuildCommandMissingFolder(t *testing.T) {
	_, err := run(t, "build", "-f", filepath.Join(t.TempDir(), "nope"), "-o", t.TempDir())
	require.Error(t, err)
	require.Equal(t, ferrors.CategoryNotFound, ferrors.GetCategory(err))
}

func TestBuildCommandInvalidTheme(t *testing.T) {
	docs := writeDocs(t, map[string]string{"index.md": "# Home\n"})
	_, err := run(t, "build", "-f", docs, "--theme", "solarized", "-o", t.TempDir())
	require.ErrorIs(t, err, config.ErrInvalidTheme)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mkpy.yaml")

	stdout, err := run(t, "--config", path, "init")
	require.NoError(t, err)
	require.Contains(t, stdout, "initialized successfully")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "My Project", cfg.Title)

	_, err = run(t, "--config", path, "init")
	require.Error(t, err)

	_, err = run(t, "--config", path, "init", "--force")
	require.NoError(t, err)
}

func TestCheckCommand(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		docs := writeDocs(t, map[string]string{
			"index.md": "# Home\n\n[About](/about) and [external](https://example.com)\n",
			"about.md": "# About\n",
		})
		stdout, err := run(t, "check", "-f", docs)
		require.NoError(t, err)
		require.Contains(t, stdout, "no broken links")
	})

	t.Run("broken", func(t *testing.T) {
		docs := writeDocs(t, map[string]string{
			"index.md": "# Home\n\n[Gone](/gone)\n",
		})
		stdout, err := run(t, "check", "-f", docs)
		require.Error(t, err)
		require.Equal(t, ferrors.CategoryValidation, ferrors.GetCategory(err))
		require.Contains(t, stdout, `"/gone"`)
	})
}

func TestCheckCommandReadsConfigFile(t *testing.T) {
	docs := writeDocs(t, map[string]string{"index.md": "# Home\n"})
	cfgPath := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("folder: "+docs+"\n"), 0o600))

	stdout, err := run(t, "check", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Checked 1 pages")
}

func TestServeCommandMissingConfigFile(t *testing.T) {
	_, err := run(t, "serve", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Equal(t, ferrors.CategoryConfig, ferrors.GetCategory(err))
}

func TestServeFlagsOverrideConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "mkpy.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("title: From File\nport: 9000\nshow_nav: true\n"), 0o600))

	cmd := ServeCmd{File: cfgPath, Port: 9100, SiteFlags: SiteFlags{Title: "From Flag", NoNav: true}}
	cfg, err := cmd.config(&CLI{})
	require.NoError(t, err)
	require.Equal(t, "From Flag", cfg.Title)
	require.Equal(t, 9100, cfg.Port)
	require.False(t, cfg.ShowNav)
	require.Equal(t, config.DefaultHost, cfg.Host)
}

func TestVersionCommand(t *testing.T) {
	stdout, err := run(t, "version")
	require.NoError(t, err)
	require.NotEmpty(t, stdout)
}
