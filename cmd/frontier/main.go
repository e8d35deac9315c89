package main

import (
	"fmt"
	"os"

	"github.com/osuushi/frontier/config"
	"github.com/osuushi/frontier/dbg"
	"github.com/osuushi/frontier/geom"
	"github.com/osuushi/frontier/hull"
	"github.com/osuushi/frontier/internal/draw"
	"github.com/osuushi/frontier/pointset"
	"github.com/osuushi/frontier/scheduler"
	"github.com/osuushi/frontier/sim"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end. `hull` reads newline separated points in the form
// "x y" on stdin and prints the concave hull the same way. `simulate` lets a
// survey agent explore a generated world and reports the hull it ends up
// with. `schema` prints the JSON schema of the config file.

var (
	app        = kingpin.New("frontier", "Incremental concave hulls for exploring agents.")
	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	verbose    = app.Flag("verbose", "Log trace lines.").Short('v').Bool()

	hullCmd    = app.Command("hull", "Compute the hull of points read from stdin.")
	hullK0     = hullCmd.Flag("k0", "Neighbour count of the first attempt.").Int()
	hullMaxK   = hullCmd.Flag("max-k", "Neighbour count ceiling before the convex fallback.").Int()
	hullBudget = hullCmd.Flag("budget", "Micro-steps per step call.").Default("25").Int()
	hullPNG    = hullCmd.Flag("png", "Render the points and hull to this PNG file.").String()
	hullShow   = hullCmd.Flag("show", "Print the PNG to the terminal.").Bool()
	hullOut    = hullCmd.Flag("out", "Save the hull to this YAML file.").String()

	simCmd     = app.Command("simulate", "Explore a generated world and build its coverage hull.")
	simTicks   = simCmd.Flag("ticks", "Ticks to simulate.").Default("5000").Int64()
	simSeed    = simCmd.Flag("seed", "World seed, overriding the config.").Int64()
	simResume  = simCmd.Flag("resume", "Start from a hull saved with --out.").ExistingFile()
	simPNG     = simCmd.Flag("png", "Render the final state to this PNG file.").String()
	simShow    = simCmd.Flag("show", "Print the PNG to the terminal.").Bool()
	simOut     = simCmd.Flag("out", "Save the final hull to this YAML file.").String()
	simProfile = simCmd.Flag("profile", "Write a CPU profile to the current directory.").Bool()

	schemaCmd = app.Command("schema", "Print the JSON schema of the config file.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		app.FatalIfError(err, "")
	}
	if *verbose {
		cfg.Log.Verbose = true
	}
	log := cfg.Logger(os.Stderr)

	switch command {
	case hullCmd.FullCommand():
		app.FatalIfError(runHull(cfg, log), "hull")
	case simCmd.FullCommand():
		app.FatalIfError(runSimulate(cfg, log), "simulate")
	case schemaCmd.FullCommand():
		data, err := config.Schema()
		app.FatalIfError(err, "schema")
		os.Stdout.Write(data)
	}
}

func runHull(cfg config.Config, log *dbg.Logger) error {
	if *hullK0 > 0 {
		cfg.K0 = *hullK0
	}
	if *hullMaxK > 0 {
		cfg.MaxK = *hullMaxK
	}

	points, err := readPoints(os.Stdin)
	if err != nil {
		return err
	}
	points = pointset.Dedupe(pointset.Quantizer{Step: cfg.Quantum}.Points(points))
	log.Infof("read %d distinct points", len(points))

	job := hull.Start(points, cfg.K0, cfg.MaxK)
	calls := 0
	var result []geom.Point
	for {
		calls++
		done, h := job.Step(*hullBudget)
		if done {
			result = h
			break
		}
	}
	log.Infof("job %s finished in phase %s: %d vertices, k=%d, %d attempts, %d steps over %d calls",
		log.Name(job), job.Phase(), len(result), job.K(), job.Attempts(), job.Steps(), calls)

	if err := writePoints(os.Stdout, result); err != nil {
		return err
	}
	if *hullOut != "" {
		saved := savedHull{
			Fingerprint: pointset.FingerprintOf(points, cfg.Quantum),
			Points:      result,
			Fallback:    job.Fallback(),
		}
		if err := saveHull(*hullOut, saved); err != nil {
			return err
		}
	}
	return render(*hullPNG, *hullShow, draw.Scene{Points: points, Hull: result})
}

func runSimulate(cfg config.Config, log *dbg.Logger) error {
	if *simProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	worldCfg := cfg.WorldConfig()
	if *simSeed != 0 {
		worldCfg.Seed = *simSeed
	}

	tracker := scheduler.NewTracker(cfg.Scheduler(), log)
	if *simResume != "" {
		saved, err := loadHull(*simResume)
		if err != nil {
			return err
		}
		tracker.ReportPoints(saved.Points)
		tracker.Scheduler().LoadHull(saved.Points, 0)
		log.Infof("resumed from %s: %d vertices", *simResume, len(saved.Points))
	}

	world := sim.NewWorld(worldCfg)
	agent := sim.NewAgent(cfg.AgentConfig(), world, tracker, uint64(worldCfg.Seed), log)
	summary := sim.Run(agent, *simTicks)

	stats := summary.Scheduler
	fmt.Printf("ticks: %d\n", summary.Ticks)
	fmt.Printf("features reported: %d\n", summary.Reported)
	fmt.Printf("targets: %d (%d on the frontier)\n", summary.Targets, summary.FrontierTarget)
	fmt.Printf("evaluations: %d, rebuilds: %d, covered skips: %d, published: %d, fallbacks: %d\n",
		stats.Evaluations, stats.RebuildsStarted, stats.CoveredSkips, stats.Published, stats.Fallbacks)
	fmt.Printf("hull: %d vertices, area %.1f\n", len(summary.Hull), summary.Hull.Area())

	if *simOut != "" && summary.Hull != nil {
		saved := savedHull{
			Fingerprint: tracker.Scheduler().Committed(),
			Tick:        summary.Ticks,
			Points:      summary.Hull,
		}
		if published := tracker.Scheduler().Published(); published != nil {
			saved.Fallback = published.Fallback
		}
		if err := saveHull(*simOut, saved); err != nil {
			return err
		}
	}

	pos := agent.Position()
	return render(*simPNG, *simShow, draw.Scene{
		Points: tracker.Points(),
		Hull:   summary.Hull,
		Trail:  agent.Trail(),
		Agent:  &pos,
	})
}

func render(path string, show bool, scene draw.Scene) error {
	if path == "" {
		return nil
	}
	lo, hi := geom.Polygon(scene.Points).Bounds()
	scale := 800 / max(hi.X-lo.X, hi.Y-lo.Y, 1)
	if err := draw.Save(path, scene, scale); err != nil {
		return err
	}
	if show {
		draw.Show(path)
	}
	return nil
}
