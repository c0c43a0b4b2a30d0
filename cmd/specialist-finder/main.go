package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"specialist-finder/config"
	"specialist-finder/export"
	"specialist-finder/finder"
	"specialist-finder/profile"
	"specialist-finder/rank"
	"specialist-finder/relevance"
	"specialist-finder/reputation"
	"specialist-finder/scheduler"
	"specialist-finder/scraper"
	"specialist-finder/storage"
)

func main() {
	// Structured JSON logging to stdout
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	var (
		configPath     = flag.String("config", "./config.yaml", "path to config file")
		runSearch      = flag.Bool("search", false, "run a full discovery batch across all sources")
		specialization = flag.String("specialization", "", "filter by specialization substring")
		minReputation  = flag.Float64("min-reputation", -1, "minimum reputation score (overrides config)")
		minRelevance   = flag.Float64("min-relevance", -1, "minimum AI relevance score (overrides config)")
		country        = flag.String("country", "", "filter by country (comma-separated for multiple)")
		platform       = flag.String("platform", "", "filter by source platform")
		limit          = flag.Int("limit", 20, "maximum number of results")
		thresholds     = flag.String("thresholds", "", "threshold preset: strict, moderate, inclusive, all")
		exportFormat   = flag.String("export", "", "export results to file: json, csv, md")
		exportFile     = flag.String("output", "", "export filename (default: timestamped)")
		showStats      = flag.Bool("stats", false, "print database statistics")
		reportID       = flag.Int64("report", 0, "print a scoring breakdown for one stored profile")
		rescore        = flag.Bool("rescore", false, "recompute scores for stored profiles")
		daemon         = flag.Bool("schedule", false, "run as a daemon on the configured daily schedule")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	switch cfg.LogLevel {
	case "debug":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))
	case "warn":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})))
	case "error":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))
	}

	if *thresholds != "" {
		if err := cfg.ApplyThresholdPreset(*thresholds); err != nil {
			slog.Error("invalid threshold preset", "error", err)
			os.Exit(1)
		}
	}

	store, err := storage.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "db_path", cfg.DBPath)

	client := scraper.NewClient(cfg.FetchTimeout())
	sources := []finder.Source{
		scraper.NewNewsSite(client, cfg.NewsSites),
	}

	reputationScorer := reputation.NewScorer(reputation.DefaultWeights())
	relevanceScorer := relevance.NewScorer(relevance.DefaultTables())

	runner := finder.NewRunner(
		store,
		reputationScorer,
		relevanceScorer,
		sources,
		finder.Config{Workers: cfg.Workers},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	switch {
	case *daemon:
		runDaemon(ctx, runner, cfg)

	case *runSearch:
		summary, err := runner.Run(ctx)
		if err != nil {
			slog.Error("batch failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Fetched %d records, stored %d (%.1fs)\n",
			summary.Fetched, summary.Stored, summary.Duration.Seconds())

	case *showStats:
		printStats(ctx, store)

	case *reportID > 0:
		printReport(ctx, store, relevanceScorer, reputationScorer, *reportID)

	case *rescore:
		updated, err := runner.Rescore(ctx, 1000)
		if err != nil {
			slog.Error("rescore failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Rescored %d profiles\n", updated)

	default:
		criteria := rank.Criteria{
			MinReputation:  cfg.MinReputation,
			MinRelevance:   cfg.MinRelevance,
			Specialization: *specialization,
			Country:        *country,
			Platform:       *platform,
		}
		if *minReputation >= 0 {
			criteria.MinReputation = *minReputation
		}
		if *minRelevance >= 0 {
			criteria.MinRelevance = *minRelevance
		}

		start := time.Now()
		results, err := runner.SearchByCriteria(ctx, criteria, *limit)
		if err != nil {
			slog.Error("search failed", "error", err)
			os.Exit(1)
		}

		logErr := store.LogSearch(ctx, &storage.SearchRecord{
			QueryText:     *specialization,
			Platform:      *platform,
			ResultsCount:  len(results),
			MinReputation: criteria.MinReputation,
			Duration:      time.Since(start),
			Success:       true,
		})
		if logErr != nil {
			slog.Warn("failed to log search", "error", logErr)
		}

		if *exportFormat != "" {
			exportResults(results, *exportFormat, *exportFile)
			return
		}
		printResults(results)
	}
}

// runDaemon schedules the daily batch and blocks until the context is
// cancelled.
func runDaemon(ctx context.Context, runner *finder.Runner, cfg config.Config) {
	if cfg.ScheduleTime == "" {
		slog.Error("schedule_time must be set to run as a daemon")
		os.Exit(1)
	}

	sched, err := scheduler.New(cfg.Timezone)
	if err != nil {
		slog.Error("failed to create scheduler", "error", err)
		os.Exit(1)
	}

	batch := func() {
		summary, err := runner.Run(ctx)
		if err != nil {
			slog.Error("scheduled batch failed", "error", err)
			return
		}
		slog.Info("scheduled batch complete", "fetched", summary.Fetched, "stored", summary.Stored)
	}

	if err := sched.Schedule(cfg.ScheduleTime, batch); err != nil {
		slog.Error("failed to schedule batch", "error", err)
		os.Exit(1)
	}
	sched.Start()
	slog.Info("scheduler started", "time", cfg.ScheduleTime, "timezone", cfg.Timezone)

	<-ctx.Done()
	sched.Stop()
	slog.Info("shutdown complete")
}

func exportResults(results []profile.Profile, format, filename string) {
	f, err := export.ParseFormat(format)
	if err != nil {
		slog.Error("invalid export format", "error", err)
		os.Exit(1)
	}
	if filename == "" {
		filename = export.DefaultFilename(f, time.Now())
	}

	file, err := os.Create(filename)
	if err != nil {
		slog.Error("failed to create export file", "error", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := export.Write(file, f, results); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d profiles to %s\n", len(results), filename)
}

func printResults(results []profile.Profile) {
	if len(results) == 0 {
		fmt.Println("No profiles matched the criteria.")
		return
	}
	for i := range results {
		p := &results[i]
		fmt.Printf("%3d. %-30s %-25s rep=%.2f rel=%.2f", i+1, p.Name, p.CurrentPublication, p.ReputationScore, p.AIRelevanceScore)
		if p.Country != "" {
			fmt.Printf("  [%s]", p.Country)
		}
		fmt.Println()
	}
}

func printReport(ctx context.Context, store *storage.Store, rel *relevance.Scorer, rep *reputation.Scorer, id int64) {
	p, err := store.GetByID(ctx, id)
	if err != nil {
		slog.Error("failed to load profile", "id", id, "error", err)
		os.Exit(1)
	}
	if p == nil {
		fmt.Printf("No profile with ID %d\n", id)
		os.Exit(1)
	}

	report := rel.ProfileReport(p)
	portfolio := rep.AnalyzePortfolio(p, report.OverallScore)

	fmt.Printf("%s (%s)\n", p.Name, p.CurrentPublication)
	fmt.Printf("AI relevance: %.2f   Reputation: %.2f\n", report.OverallScore, portfolio.OverallScore)
	if report.BioAnalysis != nil {
		fmt.Printf("Technical depth: %s   Sentiment: %s\n", report.BioAnalysis.TechnicalDepth, report.BioAnalysis.Sentiment)
	}
	for _, s := range portfolio.Strengths {
		fmt.Printf("  + %s\n", s)
	}
	for _, w := range portfolio.Weaknesses {
		fmt.Printf("  - %s\n", w)
	}
	for _, r := range append(report.Recommendations, portfolio.Recommendations...) {
		fmt.Printf("  * %s\n", r)
	}
}

func printStats(ctx context.Context, store *storage.Store) {
	stats, err := store.Stats(ctx)
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Profiles:         %d\n", stats.TotalProfiles)
	fmt.Printf("Articles:         %d\n", stats.TotalArticles)
	fmt.Printf("Verified:         %d\n", stats.VerifiedProfiles)
	fmt.Printf("Avg reputation:   %.3f\n", stats.AvgReputation)
	fmt.Printf("Avg AI relevance: %.3f\n", stats.AvgRelevance)
	fmt.Printf("Countries:        %d\n", stats.CountriesCovered)
	fmt.Printf("Platforms:        %d\n", stats.PlatformsUsed)
	if len(stats.TopPublications) > 0 {
		fmt.Printf("Top publications: %v\n", stats.TopPublications)
	}
}
