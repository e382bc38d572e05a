package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/osse101/CateringPlanner_Go/internal/catalog"
	"github.com/osse101/CateringPlanner_Go/internal/database"
	"github.com/osse101/CateringPlanner_Go/internal/database/postgres"
)

func main() {
	seedPath := pflag.String("seed", "", "catalog file (JSON or YAML) to load after migrating")
	force := pflag.Bool("force", false, "sync the seed even if it is unchanged")
	pflag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getEnv("DB_NAME", "catering")

	ctx := context.Background()

	// 1. Connect to the default 'postgres' database to create the target database
	conn, err := pgx.Connect(ctx, connString(user, password, host, port, "postgres"))
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	// 2. Create it unless it exists
	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbname).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", dbname)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{dbname}.Sanitize()); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", dbname)
	}
	conn.Close(ctx)

	// 3. Apply migrations on the target database
	pool, err := database.NewPool(connString(user, password, host, port, dbname), 2, time.Minute, 5*time.Minute)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", dbname, err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	version, err := database.MigrationStatus(ctx, pool)
	if err != nil {
		log.Fatalf("Failed to read migration version: %v", err)
	}
	fmt.Printf("Migrations completed, schema version %d.\n", version)

	// 4. Optionally seed the catalog
	if *seedPath == "" {
		return
	}
	loader := catalog.NewLoader(postgres.NewCatalogRepository(pool), nil)
	result, err := loader.Sync(ctx, *seedPath, *force)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	if result.Unchanged {
		fmt.Println("Catalog seed unchanged.")
		return
	}
	fmt.Printf("Catalog seeded: %d inserted, %d updated, %d skipped.\n",
		result.Inserted(), result.Updated(), result.Skipped())
}

func connString(user, password, host, port, dbname string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     host + ":" + port,
		Path:     "/" + dbname,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
