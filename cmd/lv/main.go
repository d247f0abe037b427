package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	urfave "github.com/urfave/cli/v2"

	"github.com/bunchhieng/lv/internal/app"
	"github.com/bunchhieng/lv/internal/cli"
	"github.com/bunchhieng/lv/internal/config"
	"github.com/bunchhieng/lv/internal/logger"
	"github.com/bunchhieng/lv/internal/tui"
)

var version = "dev"

func main() {
	r := &runner{}
	if err := r.newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runner carries the opened application between the Before hook, the
// command actions and the After hook.
type runner struct {
	app     *app.App
	cmds    *cli.Commands
	logFile *os.File
}

func (r *runner) newApp() *urfave.App {
	return &urfave.App{
		Name:    "lv",
		Usage:   "keep, tag and search your links",
		Version: version,
		Flags: []urfave.Flag{
			&urfave.StringFlag{Name: "config", Usage: "config file (default: platform config directory)"},
			&urfave.StringFlag{Name: "db-path", Usage: "database file path"},
			&urfave.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&urfave.StringFlag{Name: "log-format", Usage: "pretty, json or text"},
		},
		Before: r.open,
		After:  r.close,
		Action: r.root,
		Commands: []*urfave.Command{
			{
				Name:      "add",
				Usage:     "Add a link",
				ArgsUsage: "<url>",
				Flags: []urfave.Flag{
					&urfave.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "title for the link (required)"},
					&urfave.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "description for the link"},
					&urfave.StringFlag{Name: "tags", Usage: "comma-separated tags"},
				},
				Action: func(c *urfave.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("usage: lv add <url> --title \"...\" [--description \"...\"] [--tags \"t1,t2\"]")
					}
					return r.cmds.Add(c.Context, c.Args().First(), c.String("title"), c.String("description"), c.String("tags"))
				},
			},
			{
				Name:      "edit",
				Usage:     "Replace fields of a link",
				ArgsUsage: "<id>",
				Flags: []urfave.Flag{
					&urfave.StringFlag{Name: "title", Aliases: []string{"t"}},
					&urfave.StringFlag{Name: "url", Aliases: []string{"u"}},
					&urfave.StringFlag{Name: "description", Aliases: []string{"d"}},
					&urfave.StringFlag{Name: "tags"},
				},
				Action: func(c *urfave.Context) error {
					id, err := firstID(c, "usage: lv edit <id> [--title ...] [--url ...] [--description ...] [--tags ...]")
					if err != nil {
						return err
					}
					return r.cmds.Edit(c.Context, id, cli.Changes{
						Title:       optional(c, "title"),
						URL:         optional(c, "url"),
						Description: optional(c, "description"),
						Tags:        optional(c, "tags"),
					})
				},
			},
			{
				Name:      "rm",
				Usage:     "Delete one or more links",
				ArgsUsage: "<id> [id...]",
				Action: func(c *urfave.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("usage: lv rm <id> [id...]")
					}
					ids := make([]string, 0, c.NArg())
					for _, arg := range c.Args().Slice() {
						id, err := cli.ParseID(arg)
						if err != nil {
							return err
						}
						ids = append(ids, id)
					}
					return r.cmds.Remove(c.Context, ids...)
				},
			},
			{
				Name:  "list",
				Usage: "List links",
				Flags: []urfave.Flag{
					&urfave.StringFlag{Name: "tag", Usage: "only links with this tag"},
				},
				Action: func(c *urfave.Context) error {
					return r.cmds.List(c.String("tag"))
				},
			},
			{
				Name:      "search",
				Usage:     "Search titles, URLs, descriptions and tags",
				ArgsUsage: "<query>",
				Action: func(c *urfave.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("usage: lv search \"<query>\"")
					}
					return r.cmds.Search(c.Args().First())
				},
			},
			{
				Name:      "show",
				Usage:     "Show every field of a link",
				ArgsUsage: "<id>",
				Action: func(c *urfave.Context) error {
					id, err := firstID(c, "usage: lv show <id>")
					if err != nil {
						return err
					}
					return r.cmds.Show(id)
				},
			},
			{
				Name:      "open",
				Usage:     "Open a link in the browser",
				ArgsUsage: "<id>",
				Action: func(c *urfave.Context) error {
					id, err := firstID(c, "usage: lv open <id>")
					if err != nil {
						return err
					}
					return r.cmds.Open(id)
				},
			},
			{
				Name:  "export",
				Usage: "Write all links to stdout",
				Flags: []urfave.Flag{
					&urfave.StringFlag{Name: "format", Aliases: []string{"f"}, Value: cli.FormatJSON, Usage: "json or yaml"},
				},
				Action: func(c *urfave.Context) error {
					return r.cmds.Export(c.App.Writer, c.String("format"))
				},
			},
			{
				Name:      "import",
				Usage:     "Merge links from a JSON or YAML file",
				ArgsUsage: "<file>",
				Action: func(c *urfave.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("usage: lv import <file.json|file.yaml>")
					}
					return r.cmds.Import(c.Context, c.Args().First())
				},
			},
			{
				Name:   "ui",
				Usage:  "Browse and edit links interactively (default)",
				Action: r.ui,
			},
		},
	}
}

func (r *runner) open(c *urfave.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("db-path") {
		cfg.DBPath = c.String("db-path")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}

	// The TUI owns the terminal, so its logs go to a file.
	logOut := c.App.ErrWriter
	if isUI(c) {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		r.logFile = f
		logOut = f
	}
	log := logger.Init(logOut, logger.ParseFormat(cfg.LogFormat), logger.ParseLevel(cfg.LogLevel))

	a, err := app.New(ctx(c), cfg, log)
	if err != nil {
		return err
	}
	r.app = a
	r.cmds = cli.NewCommands(a.Links, c.App.Writer)
	return nil
}

func (r *runner) close(*urfave.Context) error {
	if r.logFile != nil {
		defer r.logFile.Close()
	}
	if r.app != nil {
		return r.app.Close()
	}
	return nil
}

func (r *runner) root(c *urfave.Context) error {
	if c.NArg() > 0 {
		return fmt.Errorf("unknown command: %s", c.Args().First())
	}
	return r.ui(c)
}

func (r *runner) ui(c *urfave.Context) error {
	return tui.Run(ctx(c), r.app.Links)
}

// isUI reports whether the invocation ends up in the TUI.
func isUI(c *urfave.Context) bool {
	if c.NArg() == 0 {
		return true
	}
	return c.Args().First() == "ui"
}

func ctx(c *urfave.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}

func firstID(c *urfave.Context, usage string) (string, error) {
	if c.NArg() == 0 {
		return "", fmt.Errorf("%s", usage)
	}
	return cli.ParseID(c.Args().First())
}

// optional returns the flag value only when the user set it.
func optional(c *urfave.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	v := c.String(name)
	return &v
}
