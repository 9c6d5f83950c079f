package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"copulagof/adapters/evaluator"
	"copulagof/adapters/excel"
	stats "copulagof/adapters/stats/gof"
	"copulagof/domain/copula"
	"copulagof/domain/gof"
	"copulagof/internal"
	"copulagof/internal/preprocess"
	"copulagof/internal/testkit"
)

func main() {
	input := flag.String("input", "", "path to .csv or .xlsx file with two pseudo-observation columns")
	familyList := flag.String("families", "", "comma-separated family codes (default: all)")
	alpha := flag.Float64("alpha", gof.DefaultAlpha, "significance level")
	correction := flag.String("correction", "none", "correction mode: none, akaike, schwarz")
	rotations := flag.Bool("rotations", false, "include rotated variants of each family")
	indep := flag.Bool("indep", false, "also run the independence test on the data")
	xlsxOut := flag.String("xlsx", "", "optional path to export the score matrix as .xlsx")
	parallel := flag.Int("parallel", 1, "number of reference families scored concurrently")
	seed := flag.Int64("seed", 42, "seed for the synthetic demo models")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: cli -input data.csv [-families 1,3,4,5] [-alpha 0.05] [-correction akaike]")
		os.Exit(2)
	}

	logger := internal.NewDefaultLogger()

	rawU, rawV, err := excel.NewPairReader(*input).ReadPairs()
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	u, v, err := preprocess.Clean(rawU, rawV)
	if err != nil {
		log.Fatalf("cleaning input: %v", err)
	}
	logger.Info("loaded %d complete observation pairs", len(u))

	var families []copula.Family
	if *familyList != "" {
		families, err = copula.Parse(*familyList)
		if err != nil {
			log.Fatalf("parsing family set: %v", err)
		}
	}

	corr, err := gof.ParseCorrection(*correction)
	if err != nil {
		log.Fatalf("parsing correction: %v", err)
	}

	params, err := gof.NewParams(families, corr, *alpha, *rotations)
	if err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}

	// Demo registry: synthetic models stand in for an external density
	// catalog so the scoring loop can be exercised end to end
	registry := testkit.NewSyntheticRegistry(params.Families(), *seed)
	engine := stats.NewEngine(evaluator.NewClampedEvaluator(registry), logger)
	engine.MaxParallel = *parallel

	ctx := context.Background()

	if *indep {
		result, err := stats.IndependenceTest(u, v)
		if err != nil {
			log.Fatalf("independence test: %v", err)
		}
		fmt.Printf("Independence test: tau=%.4f statistic=%.4f p=%.4g\n\n", result.Tau, result.Statistic, result.PValue)
	}

	matrix, err := engine.ScoreMatrix(ctx, u, v, params)
	if err != nil {
		log.Fatalf("scoring: %v", err)
	}

	run := gof.NewScoringRun(len(u), params, matrix)
	printMatrix(run)

	if *xlsxOut != "" {
		if err := excel.NewScoreWriter().Write(*xlsxOut, run); err != nil {
			log.Fatalf("exporting xlsx: %v", err)
		}
		logger.Info("score matrix exported to %s", *xlsxOut)
	}
}

func printMatrix(run *gof.ScoringRun) {
	w := tabwriter.NewWriter(os.Stdout, 6, 2, 2, ' ', 0)

	header := make([]string, 0, len(run.Matrix.Families)+1)
	header = append(header, "test")
	for _, family := range run.Matrix.Families {
		header = append(header, family.Name())
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	writeRow := func(label string, scores []int) {
		cells := make([]string, 0, len(scores)+1)
		cells = append(cells, label)
		for _, s := range scores {
			cells = append(cells, fmt.Sprintf("%d", s))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	writeRow("Vuong", run.Matrix.Vuong)
	writeRow("Clarke", run.Matrix.Clarke)

	w.Flush()
}
