package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/jamiealquiza/tachymeter"
	"github.com/pingcap/go-ycsb/pkg/generator"
	"github.com/rodaine/table"

	"jumpring/internal/baseline"
	"jumpring/internal/config"
	"jumpring/internal/diag"
	"jumpring/internal/node"
	"jumpring/internal/placement"
	"jumpring/internal/rebalance"
	"jumpring/internal/registry"
	"jumpring/internal/ring"
)

func main() {
	var (
		listenAddr = flag.String("listen", "", "serve a ring over gRPC on this address instead of running experiments")
		servers    = flag.Int("servers", 1000, "number of servers")
		duplicates = flag.Int("duplicates", 1, "ring slots per server")
		objects    = flag.Int("objects", 10000, "initial object population")
		epsilon    = flag.Float64("epsilon", 0.3, "capacity slack above the mean load")
		ringBits   = flag.Int("ring-bits", 20, "ring size as a power of two")
		maxProbes  = flag.Int("max-probes", 0, "probe budget per placement, 0 for unbounded")
		seed       = flag.Int64("seed", 1, "base random seed")
		trials     = flag.Int("trials", 3, "experiment trials")
		churn      = flag.Int("churn", 1000, "remove/add cycles per trial")
		strategy   = flag.String("strategy", "multi", "placement strategy: single or multi")
	)
	flag.Parse()

	cfg := config.Config{
		Servers:    *servers,
		Duplicates: *duplicates,
		Objects:    *objects,
		Epsilon:    *epsilon,
		RingBits:   *ringBits,
		MaxProbes:  *maxProbes,
		Seed:       *seed,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	var strat placement.Strategy
	switch *strategy {
	case "single":
		strat = placement.SingleProbe
	case "multi":
		strat = placement.MultiProbe
	default:
		log.Fatalf("unknown strategy %q", *strategy)
	}

	if *listenAddr != "" {
		serve(*listenAddr, cfg)
		return
	}

	runExperiments(cfg, strat, *trials, *churn)
}

func serve(addr string, cfg config.Config) {
	n, err := node.NewNode(addr, cfg)
	if err != nil {
		log.Fatalf("failed to create node: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		n.Stop()
	}()

	if err := n.Start(); err != nil {
		log.Fatalf("node exited: %v", err)
	}
}

// trialResult holds the figures reported for one trial.
type trialResult struct {
	variance     float64
	fractionFull float64
	underFilled  int
	placeP99     time.Duration
	churnP99     time.Duration
	serversTried int
	slotsProbed  int
	firstFull    string
}

// firstFullLabel formats the first-full onset for the report.
func firstFullLabel(n int, ok bool) string {
	if !ok {
		return "never"
	}
	return fmt.Sprintf("%d", n)
}

func runExperiments(cfg config.Config, strat placement.Strategy, trials, churn int) {
	results := make([]trialResult, 0, trials)

	for trial := 0; trial < trials; trial++ {
		trialCfg := cfg
		trialCfg.Seed = cfg.Seed + int64(trial)
		res, err := runTrial(trialCfg, strat, churn)
		if err != nil {
			log.Fatalf("trial %d failed: %v", trial, err)
		}
		results = append(results, res)
	}

	base, err := runBaseline(cfg)
	if err != nil {
		log.Fatalf("baseline failed: %v", err)
	}

	printResults(cfg, results, base)
}

func runTrial(cfg config.Config, strat placement.Strategy, churn int) (trialResult, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	tbl, err := ring.Build(cfg.Servers, cfg.Duplicates, cfg.RingSize(), rng)
	if err != nil {
		return trialResult{}, err
	}
	servers, err := registry.NewServerSet(cfg.Servers, cfg.LoadCap())
	if err != nil {
		return trialResult{}, err
	}
	objects := registry.NewObjectSet()
	engine := placement.NewEngine(tbl, servers, objects, rng, strat, cfg.MaxProbes)
	rebal := rebalance.NewRebalancer(tbl, servers, objects, rng)

	ctx := context.Background()

	placeTimer := tachymeter.New(&tachymeter.Config{Size: cfg.Objects})
	for i := 0; i < cfg.Objects; i++ {
		start := time.Now()
		if _, err := engine.AddObject(ctx); err != nil {
			return trialResult{}, fmt.Errorf("initial placement %d: %w", i, err)
		}
		placeTimer.AddTime(time.Since(start))
	}

	churnTimer := tachymeter.New(&tachymeter.Config{Size: max(churn, 1)})
	victims := generator.NewScrambledZipfian(0, int64(cfg.Objects-1), generator.ZipfianConstant)
	for i := 0; i < churn; i++ {
		ids := objects.IDs()
		slices.Sort(ids)
		victim := ids[int(victims.Next(rng))%len(ids)]

		start := time.Now()
		if _, err := rebal.RemoveObject(victim); err != nil {
			return trialResult{}, fmt.Errorf("churn remove %d: %w", i, err)
		}
		if _, err := engine.AddObject(ctx); err != nil {
			return trialResult{}, fmt.Errorf("churn add %d: %w", i, err)
		}
		churnTimer.AddTime(time.Since(start))
	}

	sample, err := diag.SampleProbes(tbl, servers, rng)
	if err != nil {
		return trialResult{}, err
	}

	firstFull, filled := servers.AssignsAtFirstFull()
	res := trialResult{
		variance:     diag.LoadVariance(servers),
		fractionFull: diag.FractionFull(servers),
		underFilled:  diag.UnderFilled(servers),
		placeP99:     placeTimer.Calc().Time.P99,
		serversTried: sample.ServersTried,
		slotsProbed:  sample.SlotsProbed,
		firstFull:    firstFullLabel(firstFull, filled),
	}
	if churn > 0 {
		res.churnP99 = churnTimer.Calc().Time.P99
	}
	return res, nil
}

// runBaseline plays the same population through the slotless random
// model for comparison.
func runBaseline(cfg config.Config) (*baseline.Model, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	m, err := baseline.New(cfg.Servers, cfg.Objects, cfg.Epsilon, rng)
	if err != nil {
		return nil, err
	}
	m.Run()
	return m, nil
}

func printResults(cfg config.Config, results []trialResult, base *baseline.Model) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.
		New("Trial", "Variance", "Full", "UnderFilled", "First Full", "Place P99", "Churn P99", "Servers Tried", "Slots Probed").
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)

	for i, r := range results {
		tbl.AddRow(
			fmt.Sprintf("#%d", i),
			fmt.Sprintf("%.4f", r.variance),
			fmt.Sprintf("%.2f%%", 100*r.fractionFull),
			r.underFilled,
			r.firstFull,
			r.placeP99,
			r.churnP99,
			r.serversTried,
			r.slotsProbed,
		)
	}
	baseFirst, baseFilled := base.ObjectsTillFirstFull()
	tbl.AddRow(
		"baseline",
		fmt.Sprintf("%.4f", base.Variance()),
		fmt.Sprintf("%.2f%%", 100*base.FractionFull()),
		"-",
		firstFullLabel(baseFirst, baseFilled),
		"-", "-", "-", "-",
	)
	tbl.Print()

	fmt.Printf("\n%d servers, %d objects, load cap %d, ring 2^%d\n",
		cfg.Servers, cfg.Objects, cfg.LoadCap(), cfg.RingBits)
}
