package main

import (
	"fmt"
	"log"
	"os"

	"roboadvisor/cmd"
	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/domain"
	"roboadvisor/internal/repository"

	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

type portfolioRow struct {
	ID          string  `csv:"id"`
	MinInterest float64 `csv:"min_interest"`
	MaxInterest float64 `csv:"max_interest"`
	RiskLevel   int32   `csv:"risk_level"`
}

// The catalog the original system shipped with.
var defaultPortfolios = []portfolioRow{
	{ID: "A", MinInterest: 0.1, MaxInterest: 0.2, RiskLevel: 1},
	{ID: "B", MinInterest: -0.05, MaxInterest: 0.05, RiskLevel: 3},
	{ID: "C", MinInterest: 0, MaxInterest: 0.045, RiskLevel: 2},
}

func main() {
	var csvPath string

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Provision the portfolio catalog",
		Long:  "Inserts portfolio catalog rows from a CSV file, or the built-in defaults when no file is given.",
		RunE: func(c *cobra.Command, args []string) error {
			return runSeed(csvPath)
		},
	}
	rootCmd.Flags().StringVarP(&csvPath, "file", "f", "", "CSV file with columns id,min_interest,max_interest,risk_level")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runSeed(csvPath string) error {
	rows := defaultPortfolios
	if csvPath != "" {
		f, err := os.Open(csvPath)
		if err != nil {
			return fmt.Errorf("failed to open csv file: %w", err)
		}
		defer f.Close()

		rows = []portfolioRow{}
		if err := gocsv.UnmarshalFile(f, &rows); err != nil {
			return fmt.Errorf("failed to parse csv file: %w", err)
		}
	}

	for _, row := range rows {
		if err := validatePortfolioRow(row); err != nil {
			return err
		}
	}

	handler, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(handler)

	portfolioRepository := repository.NewPortfolioRepository()
	for _, row := range rows {
		out, err := portfolioRepository.Add(handler.Db, model.Portfolio{
			ID:          row.ID,
			MaxInterest: row.MaxInterest,
			MinInterest: row.MinInterest,
			RiskLevel:   row.RiskLevel,
		})
		if err != nil {
			return err
		}
		fmt.Printf("seeded portfolio %s (risk %d)\n", out.ID, out.RiskLevel)
	}

	return nil
}

func validatePortfolioRow(row portfolioRow) error {
	if row.ID == "" {
		return fmt.Errorf("portfolio id is required")
	}
	if row.MinInterest > row.MaxInterest {
		return fmt.Errorf("portfolio %s: min_interest %f exceeds max_interest %f", row.ID, row.MinInterest, row.MaxInterest)
	}
	if !domain.ValidRiskLevel(int(row.RiskLevel)) {
		return fmt.Errorf("portfolio %s: risk_level must be one of 1, 2, 3", row.ID)
	}
	return nil
}
