// seed inserts a demo account and a handful of dog profiles into the local
// dev database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/jquinonez7/DogTracker/internal/auth"
	"github.com/jquinonez7/DogTracker/internal/infrastructure/postgres"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "hunter2"
)

type seedDog struct {
	name  string
	breed string
	sex   string
}

var dogs = []seedDog{
	{"Rex", "german shepherd", "M"},
	{"Bella", "corgi", "F"},
	{"Moose", "bernese mountain dog", "M"},
	{"Pip", "jack russell terrier", "F"},
	{"Waffles", "golden retriever", "M"},
}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := postgres.Migrate(dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := auth.NewHasher().Hash(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Upsert demo account (idempotent re-runs keep the same password)
	var userID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id`,
		seedEmail, hash,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	var inserted, skipped int
	for _, d := range dogs {
		var exists bool
		if err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM dogs WHERE user_id = $1 AND name = $2)`,
			userID, d.name,
		).Scan(&exists); err != nil {
			log.Fatalf("check dog %s: %v", d.name, err)
		}
		if exists {
			skipped++
			continue
		}

		if _, err := pool.Exec(ctx,
			`INSERT INTO dogs (user_id, name, breed, sex) VALUES ($1, $2, $3, $4)`,
			userID, d.name, d.breed, d.sex,
		); err != nil {
			log.Fatalf("insert dog %s: %v", d.name, err)
		}
		inserted++
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Account:      %s / %s\n", seedEmail, seedPassword)
	fmt.Printf("  User ID:      %d\n", userID)
	fmt.Printf("  Dogs created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1, log in:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/auth/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedEmail, seedPassword)
	fmt.Println()
	fmt.Println("    # → {\"access_token\":\"eyJ...\",\"token_type\":\"bearer\",...}")
	fmt.Println()
	fmt.Println("  Step 2, list the dogs:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/dogs -H \"Authorization: Bearer $JWT\"")
}
