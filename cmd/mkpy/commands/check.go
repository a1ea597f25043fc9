package commands

import (
	"context"
	"fmt"

	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
	"git.home.luguber.info/inful/mkpy/internal/linkverify"
	"git.home.luguber.info/inful/mkpy/internal/site"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	File string `arg:"" optional:"" help:"YAML configuration file"`
	SiteFlags
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root, c.File)
	if err != nil {
		return err
	}
	c.SiteFlags.apply(&cfg)

	st, err := site.New(cfg)
	if err != nil {
		return err
	}
	broken, err := linkverify.Check(context.Background(), st)
	if err != nil {
		return err
	}

	out := g.out()
	for _, b := range broken {
		_, _ = fmt.Fprintf(out, "%s: broken %s link %q (resolves to %s)\n", b.Page, b.Tag, b.URL, b.Target)
	}
	if len(broken) > 0 {
		return ferrors.ValidationError(fmt.Sprintf("%d broken internal links", len(broken))).
			WithContext("count", len(broken)).Build()
	}
	_, _ = fmt.Fprintf(out, "Checked %d pages, no broken links\n", st.Routes().Len())
	return nil
}
