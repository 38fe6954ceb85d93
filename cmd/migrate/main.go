package main

import (
	"fmt"
	"os"

	"github.com/pratik-mahalle/gigmarket/internal/config"
	"github.com/pratik-mahalle/gigmarket/internal/repository/postgres"
	"github.com/pratik-mahalle/gigmarket/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db, migrations.Files); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("migrations applied")
}
