package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/aetherhq/synthesis/internal/api"
	"github.com/aetherhq/synthesis/internal/auth"
	"github.com/aetherhq/synthesis/internal/contradiction"
	"github.com/aetherhq/synthesis/internal/embeddings"
	"github.com/aetherhq/synthesis/internal/evidence"
	"github.com/aetherhq/synthesis/internal/explain"
	"github.com/aetherhq/synthesis/internal/synthesis"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Auth is enabled only when a database is configured; without one
	// the service runs open, heuristic paths included.
	var authService *auth.Service
	var db *sql.DB
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		var err error
		db, err = sql.Open("postgres", dbURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}

		authService = auth.NewService(auth.Config{
			SecretKey: os.Getenv("JWT_SECRET"),
		}, auth.NewPostgresRepository(db))
	} else {
		log.Println("DATABASE_URL not set, running without authentication")
	}

	var nli *contradiction.NLIClient
	if nliURL := os.Getenv("NLI_URL"); nliURL != "" {
		nli = contradiction.NewNLIClient(contradiction.NLIConfig{
			BaseURL: nliURL,
			Model:   os.Getenv("NLI_MODEL"),
		})
	}

	var judge *evidence.Judge
	if judgeURL := os.Getenv("JUDGE_URL"); judgeURL != "" {
		classifier := evidence.NewClassifierClient(evidence.ClassifierConfig{
			BaseURL: judgeURL,
			Model:   os.Getenv("JUDGE_MODEL"),
		})

		var encoder evidence.Encoder
		if apiKey := os.Getenv("OPENROUTER_API_KEY"); apiKey != "" {
			var cache embeddings.Cache
			if db != nil {
				cache = embeddings.NewPostgresCache(db)
			}
			encoder = embeddings.NewCachedClient(embeddings.NewClient(apiKey), cache)
		}

		judge = evidence.NewJudge(classifier, encoder)
	}

	var explainer *explain.Client
	if apiKey := os.Getenv("OPENROUTER_API_KEY"); apiKey != "" {
		explainer = explain.NewClient(apiKey)
	}

	synthesizer := synthesis.NewService(synthesis.Config{
		Contradictions: contradiction.NewService(contradiction.NewEstimator(), nli),
		Judge:          judge,
		Explainer:      explainer,
	})

	server := api.NewServer(api.ServerConfig{
		Synthesizer: synthesizer,
		AuthService: authService,
	})

	fmt.Printf("Starting synthesis server on port %s\n", port)
	if err := server.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
