package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brogergvhs/shinydex/internal/config"
	"github.com/brogergvhs/shinydex/internal/providers"
	"github.com/brogergvhs/shinydex/internal/providers/pokemondb"
	"github.com/brogergvhs/shinydex/internal/shiny"
	"github.com/brogergvhs/shinydex/internal/ui"
	"github.com/brogergvhs/shinydex/internal/util"

	"github.com/spf13/cobra"
)

var (
	// selection
	flagSpecies string
	flagRange   string
	flagList    string

	// runtime
	flagOutput    string
	flagBaseURL   string
	flagImageHost string
	flagTimeout   int
	flagDryRun    bool
	flagProgress  bool
	flagSummary   bool
	flagReport    string

	// headers
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
	flagCloudflare bool
)

func init() {
	scrapeCmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape the shiny sprite links of every species and write them to a text file",
		RunE:  runScrape,
	}

	// selection
	scrapeCmd.Flags().StringVar(&flagSpecies, "species", "", "scrape a single species by name or index (e.g. minior or 52)")
	scrapeCmd.Flags().StringVar(&flagRange, "range", "", "scrape a range of species by index (e.g. 5-12)")
	scrapeCmd.Flags().StringVar(&flagList, "list", "", "scrape specific species by index or name (e.g. 1,3,silvally)")

	// runtime
	scrapeCmd.Flags().StringVar(&flagOutput, "output", "", "output text file, overwritten on every run")
	scrapeCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "sprite page base URL, the species id is appended")
	scrapeCmd.Flags().StringVar(&flagImageHost, "image-host", "", "required prefix of sprite image URLs")
	scrapeCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "per-page timeout in seconds")
	scrapeCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the selected species, don't fetch anything")
	scrapeCmd.Flags().BoolVar(&flagProgress, "progress", false, "show a progress bar on stderr")
	scrapeCmd.Flags().BoolVar(&flagSummary, "summary", false, "print a summary table after the run")
	scrapeCmd.Flags().StringVar(&flagReport, "report", "", "also write the run summary as a Markdown file")

	// headers
	scrapeCmd.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	scrapeCmd.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	scrapeCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	scrapeCmd.Flags().BoolVar(&flagCloudflare, "cloudflare-bypass", false, "use a Cloudflare-friendly TLS transport")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		Store:            &store,
		IgnoreConfig:     flagIgnoreConfig,
		Debug:            flagDebug,
		Output:           flagOutput,
		BaseURL:          flagBaseURL,
		ImageHost:        flagImageHost,
		TimeoutSeconds:   flagTimeout,
		Progress:         flagProgress,
		Cookie:           flagCookie,
		CookieFile:       flagCookieFile,
		UserAgent:        flagUserAgent,
		CloudflareBypass: flagCloudflare,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Debugf("Config file: %s\n", usedPath)

	all := shiny.Species()
	selected := providers.Filter(all, flagSpecies, flagRange, flagList)
	if flagSpecies != "" {
		if guess := providers.Suggest(all, flagSpecies); guess != "" {
			logSvc.Infof("%q is not a gen 7 species, did you mean %q?\n", flagSpecies, guess)
		}
	}
	if len(selected) == 0 {
		return fmt.Errorf("no species selected")
	}

	if flagDryRun {
		fmt.Fprintf(out, "Dry-run: %d species selected.\n\n", len(selected))
		for i, sp := range selected {
			mark := ""
			if shiny.IsExcluded(sp, cfg.Exclude) {
				mark = "  (excluded)"
			}
			fmt.Fprintf(out, "%3d) %s%s\n    %s\n", i+1, sp, mark, cfg.BaseURL+sp)
		}
		return nil
	}

	if err := util.EnsureParentDir(cfg.Output); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}

	client := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout(),
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})

	ctx, stop := util.SetupInterruptHandler(context.Background(), cfg.Output)
	defer stop()

	src := pokemondb.NewScraper(client, cfg.BaseURL, logSvc)
	runner := &shiny.Runner{
		Source:  src,
		Host:    cfg.ImageHost,
		Exclude: cfg.Exclude,
		Out:     out,
	}

	var bar *ui.SpeciesProgress
	if cfg.Progress {
		bar = ui.NewSpeciesProgress(os.Stderr, len(selected))
		runner.Progress = bar
	}

	start := time.Now()
	res := runner.Run(ctx, selected)
	if bar != nil {
		bar.Close()
	}

	if err := runner.Flush(res, cfg.Output); err != nil {
		return err
	}

	stats := ui.Stats{
		Species: len(res.Counts),
		Failed:  res.Failed,
		Skipped: res.Skipped,
		Records: len(res.Lines),
		Bytes:   src.BytesRead(),
		Elapsed: time.Since(start),
	}

	if flagSummary {
		fmt.Fprintln(out)
		stats.Render(out)
	}

	if flagReport != "" {
		if err := writeReport(flagReport, stats, selected, res.Counts); err != nil {
			logSvc.Errorf("cannot write report %s: %v\n", flagReport, err)
		}
	}

	return nil
}

func writeReport(path string, stats ui.Stats, order []string, counts map[string]int) error {
	if err := util.EnsureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	var per []ui.SpeciesCount
	for _, sp := range order {
		if n, ok := counts[sp]; ok {
			per = append(per, ui.SpeciesCount{Species: sp, Count: n})
		}
	}

	return stats.WriteMarkdown(f, per)
}
