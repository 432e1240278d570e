// Command migrate applies the versioned SQL migrations with the Atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"venue-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	status := flag.Bool("status", false, "report pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, cfg.DB.BuildDSN(), *dir, *status); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, url, dir string, statusOnly bool) error {
	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return err
	}

	if statusOnly {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url, DirURL: dir})
		if err != nil {
			return err
		}
		slog.Info("migration status", "current", st.Current, "next", st.Next, "pending", len(st.Pending))
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: url, DirURL: dir})
	if err != nil {
		return err
	}
	slog.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}
