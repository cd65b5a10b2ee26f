package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/exporter"
	"storefront/internal/repository/stock"

	"github.com/joho/godotenv"
)

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "stock_residue.xlsx", "Path for the exported workbook")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.FromEnv()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	entries, err := stock.NewPostgres(pool).Residue(ctx)
	if err != nil {
		log.Fatalf("load stock residue: %v", err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("create output file: %v", err)
	}
	defer f.Close()

	if err := exporter.WriteResidue(entries, f); err != nil {
		log.Fatalf("export failed: %v", err)
	}

	fmt.Printf("Exported %d stock rows to %s\n", len(entries), outPath)
}
