package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/tychoish/lazy"
	"github.com/tychoish/lazy/internal/bench"
)

func run(ctx context.Context, cfg Config, logger *slog.Logger, out io.Writer) error {
	selected, err := selectScenarios(cfg.Scenarios)
	if err != nil {
		return err
	}

	data := lazy.Naturals().Take(cfg.Length).Collect()

	reports := make([]bench.Report, 0, len(selected))
	for _, sc := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}

		logger.Debug("running scenario", "scenario", sc.name, "length", cfg.Length, "runs", cfg.Runs)
		report, err := sc.suite(data).Run(cfg.Runs)
		if err != nil {
			return err
		}
		logger.Debug("scenario complete",
			"scenario", sc.name,
			"average", report.Candidate.Average,
			"fastest", report.Fastest().Name,
		)

		reports = append(reports, report)
	}

	logger.Info("benchmarks complete",
		"scenarios", len(reports),
		"lazy_faster", lazy.Slice(reports).Filter(bench.Report.Faster).Count(),
	)

	return writeReports(out, cfg.Output, reports)
}

type jsonReport struct {
	bench.Report
	Faster  bool   `json:"faster"`
	Fastest string `json:"fastest"`
}

func writeReports(out io.Writer, format string, reports []bench.Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(lazy.Map(lazy.Slice(reports), func(r bench.Report) jsonReport {
			return jsonReport{Report: r, Faster: r.Faster(), Fastest: r.Fastest().Name}
		}).Collect())
	case "text", "":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SCENARIO\tCASE\tRUNS\tAVERAGE\t")
		for _, r := range reports {
			fastest := r.Fastest().Name
			for _, res := range append([]bench.Result{r.Candidate}, r.Baselines...) {
				mark := ""
				if res.Name == fastest {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", r.Suite, res.Name, res.Runs, res.Average, mark)
			}
		}
		return tw.Flush()
	default:
		return fmt.Errorf("'%s' is not a valid output (one of text|json)", format)
	}
}

func writeScenarioList(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, sc := range registry {
		fmt.Fprintf(tw, "%s\t%s\n", sc.name, sc.description)
	}
	return tw.Flush()
}
