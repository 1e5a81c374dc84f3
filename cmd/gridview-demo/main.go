// Command gridview-demo shows a catalog of items in a virtualized grid.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/xqrs/gridview"
	"github.com/xqrs/gridview/internal/catalog"
	"github.com/xqrs/gridview/internal/config"
	"github.com/xqrs/gridview/listmodel"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("gridview-demo", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (default $XDG_CONFIG_HOME/gridview/config.toml)")
	itemsPath := fs.String("items", "", "TOML file with [[item]] tables")
	count := fs.Int("n", -1, "number of generated items when no item file is given")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *itemsPath != "" {
		cfg.Catalog.Path = *itemsPath
	}
	if *count >= 0 {
		cfg.Catalog.Generate = *count
	}

	logger, closeLog, err := openLog(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	items, err := loadItems(cfg.Catalog)
	if err != nil {
		return err
	}
	logger.Info("starting", "items", len(items), "rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols)

	app := gridview.NewApplication().EnableMouse(true)
	d := newDemo(app, listmodel.NewSlice(items...), logger)
	if err := d.apply(cfg); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Watch {
		path := *configPath
		if path == "" {
			path = config.DefaultPath()
		}
		err := config.Watch(ctx, path, func(next config.Config, err error) {
			if err != nil {
				logger.Error("reload config", "err", err)
				return
			}
			app.QueueUpdateDraw(func() {
				if err := d.apply(next); err != nil {
					logger.Error("apply config", "err", err)
				}
			})
		})
		if err != nil {
			logger.Warn("config watch disabled", "err", err)
		}
	}

	app.SetRoot(d.root)
	return app.Run()
}

func openLog(c config.LogConfig) (*slog.Logger, func(), error) {
	level, err := config.Config{Log: c}.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if c.Path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(c.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

func loadItems(c config.CatalogConfig) ([]catalog.Item, error) {
	if c.Path != "" {
		return catalog.Load(c.Path)
	}
	return catalog.Generate(1, c.Generate), nil
}
