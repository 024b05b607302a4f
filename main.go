package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"click4news/auth"
	"click4news/config"
	"click4news/cronjobs"
	"click4news/fetch"
	"click4news/moderation"
	"click4news/routes"
	"click4news/session"
	"click4news/types"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Print and check env
	if os.Getenv("OPENAI_API_KEY") != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}
	if os.Getenv("MAPS_CREDENTIALS") != "" {
		fmt.Println("MAPS_CREDENTIALS loaded")
	}

	// Firebase token verifier for the session middleware
	verifier, err := auth.InitVerifier(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize Firebase auth: %v", err)
	}

	// Identity provider adapter and the observable session
	authSession := auth.NewSession()
	provider := auth.NewProvider(cfg.FirebaseAPIKey, authSession)
	authSession.Subscribe(func(u *types.User) {
		if u == nil {
			log.Println("Auth state: signed out")
			return
		}
		log.Printf("Auth state: signed in as %s", u.UID)
	})

	client := fetch.NewClient(
		cfg.Endpoints.GeoJSON,
		cfg.Endpoints.Stats,
		cfg.Endpoints.Vote,
		cfg.Endpoints.Submission,
	)

	// Snapshot cache primed now, refreshed on a schedule
	cache := cronjobs.NewSnapshotCache()
	cronjobs.InitCronJobs(client, cache)

	sessions := session.NewManager(cache, client)
	checker := moderation.NewChecker(os.Getenv("OPENAI_API_KEY"))

	r := routes.SetupRouter(provider, verifier, sessions, client, checker)
	if err := r.Run(cfg.ListenAddress); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
