package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/acrispim/vidaplan/internal/cli"
	"github.com/acrispim/vidaplan/internal/logger"
	"github.com/acrispim/vidaplan/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/vidaplan/vidaplan.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init cli.InitCmd `cmd:"" help:"Initialize vidaplan storage."`
	Plan struct {
		Sleep     cli.PlanSleepCmd     `cmd:"" help:"Set the sleep window."`
		Job       cli.PlanJobCmd       `cmd:"" help:"Add a job time slot."`
		Study     cli.PlanStudyCmd     `cmd:"" help:"Add a study time slot."`
		Project   cli.PlanProjectCmd   `cmd:"" help:"Add a project time slot."`
		Hobby     cli.PlanHobbyCmd     `cmd:"" help:"Add a hobby time block."`
		Cleaning  cli.PlanCleaningCmd  `cmd:"" help:"Set the cleaning window."`
		Exercise  cli.PlanExerciseCmd  `cmd:"" help:"Set the exercise window."`
		Meals     cli.PlanMealsCmd     `cmd:"" help:"Set the meal count or explicit meal times."`
		Hydration cli.PlanHydrationCmd `cmd:"" help:"Set the hydration window."`
		Edit      cli.PlanEditCmd      `cmd:"" help:"Edit the day plan interactively."`
		Show      cli.PlanShowCmd      `cmd:"" help:"Show the staged plan."`
		Clear     cli.PlanClearCmd     `cmd:"" help:"Discard the staged plan."`
	} `cmd:"" help:"Stage day plan inputs."`
	Finalize cli.FinalizeCmd `cmd:"" help:"Generate, validate and commit a day's schedule."`
	Day      cli.DayCmd      `cmd:"" help:"Show the committed schedule for a day."`
	Now      cli.NowCmd      `cmd:"" help:"Show what is scheduled right now."`
	Track    cli.TrackCmd    `cmd:"" help:"Mark an activity complete."`
	Water    cli.WaterCmd    `cmd:"" help:"Log water intake."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Remove a day's schedule."`
	Export   struct {
		Create cli.ExportCreateCmd `cmd:"" help:"Write a JSON snapshot of the day-plan store." default:"1"`
		List   cli.ExportListCmd   `cmd:"" help:"List existing snapshots."`
	} `cmd:"" help:"Export the day-plan store."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("vidaplan"),
		kong.Description("Personal lifestyle planner: stage daily categories, generate a conflict-free activity timeline, track completion."),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage backend based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
