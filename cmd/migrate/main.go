package main

import (
	"context"
	"flag"
	"log"

	"github.com/fieldteam/attendance-backend-go/internal/config"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	rollback := flag.Bool("rollback", false, "rollback the latest migration instead of migrating up")
	dir := flag.String("dir", "db/migrations", "sql migrations directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("goose: failed to open DB: %v", err)
	}
	defer db.Close()

	goose.SetTableName("schema_migrations")

	ctx := context.Background()
	command := "up"
	if *rollback {
		command = "down"
	}

	if err := goose.RunContext(ctx, command, db, *dir); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}
}
