// backend/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gewnthar/eaterhistory/backend/config"
	"github.com/gewnthar/eaterhistory/backend/database"
	"github.com/gewnthar/eaterhistory/backend/handlers"
	"github.com/gewnthar/eaterhistory/backend/services"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting Eater Vancouver History Backend...")

	// .env is optional; it usually carries DB_PASSWORD and EATER_CONFIG.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment overrides from .env")
	}

	configPath := os.Getenv("EATER_CONFIG")
	if configPath == "" {
		configPath = "backend/config/config.yaml"
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/config.yaml"
			if _, errFallback := os.Stat(configPath); os.IsNotExist(errFallback) {
				log.Fatalf("Config file not found at default paths. Error: %v", errFallback)
			}
		}
	}

	err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Target list: %s", config.AppConfig.Eater.TargetURL)
	log.Printf("Version artifact path: %s", config.AppConfig.Sync.OutputPath)

	if config.AppConfig.Database.Host != "" {
		err = database.InitDB(config.AppConfig.Database)
		if err != nil {
			log.Fatalf("Error initializing database: %v", err)
		}
		defer database.CloseDB()
	} else {
		log.Println("No database host configured; running without MySQL persistence.")
	}

	// One full sync at startup. A live-capture failure is fatal: the live
	// snapshot is mandatory, everything historical is best-effort.
	history, err := services.RunSync()
	if err != nil {
		log.Fatalf("Sync failed: %v", err)
	}
	log.Printf("Sync complete: %d unique versions.", len(history.Versions))

	if config.AppConfig.Server.Port == "" {
		log.Println("No server port configured; exiting after one-shot sync.")
		return
	}

	// --- Setup HTTP routes ---
	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if database.DB != nil {
			if err := database.DB.Ping(); err != nil {
				http.Error(w, `{"status": "error", "message": "database connection error"}`, http.StatusInternalServerError)
				log.Printf("Health check failed: DB ping error: %v", err)
				return
			}
		}
		fmt.Fprintln(w, `{"status": "ok", "message": "eater history backend is healthy"}`)
	})

	http.HandleFunc("/api/versions", handlers.ListVersionsHandler)
	http.HandleFunc("/api/versions/", handlers.VersionRestaurantsHandler) // Path ends with / to catch sub-paths
	http.HandleFunc("/api/admin/sync", handlers.SyncHandler)
	http.HandleFunc("/api/admin/status", handlers.SyncStatusHandler)

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	err = http.ListenAndServe(serverAddr, nil)
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
