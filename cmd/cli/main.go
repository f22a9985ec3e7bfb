package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"godrsa/adapters/tabular"
	"godrsa/app"
	"godrsa/internal"
	"godrsa/internal/report"
)

func main() {
	_ = godotenv.Load()

	var (
		file       = flag.String("file", "", "table file to analyze (.csv or .xlsx)")
		calculator = flag.String("calculator", "classical", "classical or variable_consistency")
		measure    = flag.String("measure", "rough_membership", "rough_membership or epsilon_consistency")
		threshold  = flag.Float64("threshold", 1.0, "consistency threshold for variable_consistency")
		format     = flag.String("format", "markdown", "output format: markdown, html or json")
		out        = flag.String("out", "", "write output to this file instead of stdout")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: cli -file table.csv [-calculator classical|variable_consistency] [-measure ...] [-threshold ...] [-format markdown|html|json]")
		os.Exit(2)
	}

	if err := run(*file, *calculator, *measure, *threshold, *format, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(file, calculator, measure string, threshold float64, format, out string) error {
	calc, err := app.NewCalculatorFromSettings(calculator, measure, threshold)
	if err != nil {
		return err
	}

	logger := internal.NewDefaultLogger()
	service := app.NewApproximationService(tabular.NewDataReader(), nil, logger)
	result, err := service.AnalyzeFile(context.Background(), file, calc)
	if err != nil {
		return err
	}

	output := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		output = f
	}

	switch format {
	case "json":
		return tabular.WriteResultJSON(output, result)
	case "html":
		html, err := report.RenderHTML(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(output, html)
		return err
	case "markdown":
		md, err := report.RenderMarkdown(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(output, md)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}
