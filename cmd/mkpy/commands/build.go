package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"git.home.luguber.info/inful/mkpy/internal/config"
	"git.home.luguber.info/inful/mkpy/internal/export"
	"git.home.luguber.info/inful/mkpy/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	SiteFlags

	Output     string `short:"o" help:"Output directory for static files"`
	BaseURL    string `name:"base-url" help:"Base URL; also writes sitemap.xml"`
	CopyStatic bool   `name:"copy-static" help:"Copy the static directory into the output"`
}

func (b *BuildCmd) config(root *CLI) (config.Config, error) {
	cfg, err := loadConfig(root, "")
	if err != nil {
		return cfg, err
	}
	b.SiteFlags.apply(&cfg)
	if b.Output != "" {
		cfg.Output = b.Output
	}
	if b.BaseURL != "" {
		cfg.BaseURL = b.BaseURL
	}
	if b.CopyStatic {
		cfg.CopyStatic = true
	}
	return cfg, nil
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := b.config(root)
	if err != nil {
		return err
	}

	st, err := site.New(cfg)
	if err != nil {
		return err
	}

	out := g.out()
	_, _ = fmt.Fprintf(out, "MKPY Build: converting %d markdown files to HTML\n\n", st.Routes().Len())

	exporter := export.New(export.Options{SitemapBaseURL: cfg.BaseURL, CopyStatic: cfg.CopyStatic})
	report, err := exporter.Export(context.Background(), st, cfg.Output)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "STATUS\tSOURCE\tOUTPUT\tFINGERPRINT")
	for _, p := range report.Pages {
		_, _ = fmt.Fprintf(tw, "ok\t%s\t%s\t%s\n", p.Source, p.Output, shortFingerprint(p.Fingerprint))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	abs, err := filepath.Abs(report.OutputDir)
	if err != nil {
		abs = report.OutputDir
	}
	_, _ = fmt.Fprintf(out, "\nBuild complete!\nOutput directory: %s\nFiles created: %d\n", abs, len(report.Pages))
	if report.Sitemap != "" {
		_, _ = fmt.Fprintf(out, "Sitemap: %s\n", filepath.Join(abs, report.Sitemap))
	}
	return nil
}

func shortFingerprint(fp string) string {
	const n = 12
	if len(fp) > n {
		return fp[:n]
	}
	return fp
}
