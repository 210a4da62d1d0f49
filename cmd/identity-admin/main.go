// Command identity-admin is an operator CLI for the identity subsystem:
// migrations, development seeding, and inspection of a person's profile set,
// active context, and activity log.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/gigwire/identity-go/config"
	"github.com/gigwire/identity-go/internal/bootstrap"
	"github.com/gigwire/identity-go/internal/devseed"
	"github.com/gigwire/identity-go/internal/domain/model"
	"github.com/gigwire/identity-go/internal/service"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultMigrationTimeout = 5 * time.Minute

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrate,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed development data",
			run:         runDBSeed,
		},
		"profiles": {
			name:        "profiles",
			description: "List every profile linked to a person",
			run:         runProfiles,
		},
		"active": {
			name:        "active",
			description: "Show a person's currently active profile",
			run:         runActive,
		},
		"switch": {
			name:        "switch",
			description: "Switch a person's active profile",
			run:         runSwitch,
		},
		"activity": {
			name:        "activity",
			description: "List a person's activity log, newest first",
			run:         runActivity,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: identity-admin <command> [flags]\n\nAvailable commands:\n"); err != nil {
		return err
	}
	for _, cmd := range commands() {
		if err := writef(os.Stdout, "  %-12s %s\n", cmd.name, cmd.description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// connect opens the database and hands back a cleanup func.
func connect(ctx *commandContext) (*sql.DB, func(), error) {
	db, err := bootstrap.ConnectDB(ctx.Config.Postgres, ctx.Logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if cerr := db.Close(); cerr != nil {
			ctx.Logger.Error("close database failed", "error", cerr)
		}
	}
	return db, cleanup, nil
}

func runMigrate(ctx *commandContext, _ []string) error {
	db, cleanup, err := connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	mctx, cancel := context.WithTimeout(ctx.Ctx, defaultMigrationTimeout)
	defer cancel()
	return bootstrap.RunMigrations(mctx, db, ctx.Logger)
}

func runDBSeed(ctx *commandContext, _ []string) error {
	db, cleanup, err := connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	mctx, cancel := context.WithTimeout(ctx.Ctx, defaultMigrationTimeout)
	defer cancel()
	if err := bootstrap.RunMigrations(mctx, db, ctx.Logger); err != nil {
		return err
	}
	return devseed.Run(ctx.Ctx, devseed.NewServices(db), ctx.Logger)
}

// personFlag parses the required -person flag shared by inspection commands.
func personFlag(name string, args []string, extra func(*flag.FlagSet)) (*flag.FlagSet, *string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	person := fs.String("person", "", "person id (required)")
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if *person == "" {
		return nil, nil, errors.New("-person is required")
	}
	return fs, person, nil
}

func runProfiles(ctx *commandContext, args []string) error {
	_, person, err := personFlag("profiles", args, nil)
	if err != nil {
		return err
	}

	db, cleanup, err := connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	svcs := bootstrap.NewServices(&bootstrap.ServiceDeps{Config: &ctx.Config, DB: db, Logger: ctx.Logger})
	profiles, err := svcs.Profiles.Profiles(ctx.Ctx, *person)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "TYPE\tID\tNAME\tACTIVE\n"); err != nil {
		return err
	}
	for _, p := range profiles {
		if err := writef(w, "%s\t%s\t%s\t%t\n", p.Type, p.ID, p.DisplayName, p.Active); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runActive(ctx *commandContext, args []string) error {
	_, person, err := personFlag("active", args, nil)
	if err != nil {
		return err
	}

	db, cleanup, err := connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	svcs := bootstrap.NewServices(&bootstrap.ServiceDeps{Config: &ctx.Config, DB: db, Logger: ctx.Logger})
	active, err := svcs.ActiveContext.Active(ctx.Ctx, *person)
	if err != nil {
		return err
	}
	return writef(os.Stdout, "%s\t%s\t%s\n", active.Type, active.ID, active.DisplayName)
}

func runSwitch(ctx *commandContext, args []string) error {
	var profileID, profileType string
	_, person, err := personFlag("switch", args, func(fs *flag.FlagSet) {
		fs.StringVar(&profileID, "profile", "", "profile id to switch to (required)")
		fs.StringVar(&profileType, "type", "", "profile type: general, artist, venue, organizer (required)")
	})
	if err != nil {
		return err
	}
	if profileID == "" || profileType == "" {
		return errors.New("-profile and -type are required")
	}
	pt, ok := model.ParseProfileType(profileType)
	if !ok {
		return fmt.Errorf("invalid profile type %q", profileType)
	}

	db, cleanup, err := connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	svcs := bootstrap.NewServices(&bootstrap.ServiceDeps{Config: &ctx.Config, DB: db, Logger: ctx.Logger})
	ok, err = svcs.ActiveContext.Switch(ctx.Ctx, service.SwitchParams{
		PersonID: *person,
		Ref:      model.ProfileRef{ID: profileID, Type: pt},
	})
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("switch was not applied")
	}
	return writef(os.Stdout, "switched %s to %s/%s\n", *person, profileType, profileID)
}

func runActivity(ctx *commandContext, args []string) error {
	var limit int
	_, person, err := personFlag("activity", args, func(fs *flag.FlagSet) {
		fs.IntVar(&limit, "limit", 20, "max records to show")
	})
	if err != nil {
		return err
	}

	db, cleanup, err := connect(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	svcs := bootstrap.NewServices(&bootstrap.ServiceDeps{Config: &ctx.Config, DB: db, Logger: ctx.Logger})
	records, err := svcs.Activity.Feed(ctx.Ctx, *person, model.ActivityListOptions{Limit: limit})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "WHEN\tACTION\tACTOR\tDETAILS\n"); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writef(w, "%s\t%s\t%s/%s\t%s\n",
			rec.CreatedAt.Format(time.RFC3339), rec.ActionType,
			rec.ActorProfileType, rec.ActorProfileID, string(rec.ActionDetails)); err != nil {
			return err
		}
	}
	return w.Flush()
}
