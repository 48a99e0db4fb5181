package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/example/signlearn/internal/authsvc"
	"github.com/example/signlearn/internal/catalog"
	"github.com/example/signlearn/internal/database"
	"github.com/example/signlearn/internal/excel"
	"github.com/example/signlearn/internal/kvstore"
	"github.com/example/signlearn/internal/scheduler"
	"github.com/example/signlearn/internal/server"
	"github.com/example/signlearn/internal/session"
	"github.com/joho/godotenv"
)

func main() {
	importLessons := flag.String("import-lessons", "", "import lessons from an .xlsx or .csv file and exit")
	importResources := flag.String("import-resources", "", "import resources from an .xlsx or .csv file and exit")
	flag.Parse()

	// Load optional .env; a missing file is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	cfg := server.FromEnv()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if *importLessons != "" || *importResources != "" {
		runImports(*importLessons, *importResources)
		return
	}

	kv, err := newSessionKV()
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer kv.Close()

	sessions := session.New(kv, newAuthService(cfg))
	sessions.Initialize()

	// A restored session in database mode is only as good as its token:
	// it may have been revoked or swept while the process was down.
	if cfg.AuthMode == server.AuthModeDatabase && sessions.IsAuthenticated() {
		if _, err := database.NewTokenRepository().UserFor(sessions.Token()); err != nil {
			log.Printf("Restored session token is no longer valid, signing out: %v", err)
			if err := sessions.Logout(); err != nil {
				log.Printf("Error clearing stale session: %v", err)
			}
		}
	}
	if sessions.IsAuthenticated() {
		log.Printf("Restored session for %s", sessions.CurrentUser().Email)
	}

	sched := scheduler.New(database.NewTokenRepository(), database.NewActivityRepository())
	sched.Start()
	defer sched.Stop()

	srv := server.New(cfg, sessions, loadCatalog(), database.NewActivityRepository())
	if cfg.AuthMode == server.AuthModeDatabase {
		srv.UseAccountDatabase(database.NewUserRepository(), database.NewTokenRepository())
	}

	// Shut down on SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		close(done)
	}()

	log.Println("Server started. Press Ctrl+C to stop.")
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	<-done
	log.Println("Server stopped successfully")
}

// newSessionKV picks the persistence store behind the session manager.
// KV_BACKEND selects it: "file" keeps a JSON file under data/, anything
// else stores rows in the application database.
func newSessionKV() (kvstore.Store, error) {
	if os.Getenv("KV_BACKEND") == "file" {
		return kvstore.NewFile(filepath.Join("data", "session.json"))
	}
	return kvstore.NewSQL(database.DB)
}

// newAuthService picks the authentication service per configuration
func newAuthService(cfg *server.Config) authsvc.Service {
	switch cfg.AuthMode {
	case server.AuthModeDatabase:
		return authsvc.NewDatabase(
			database.NewUserRepository(),
			database.NewTokenRepository(),
			cfg.JWTSecret,
			cfg.TokenTTL,
		)
	case server.AuthModeRemote:
		if cfg.RemoteAuthURL == "" {
			log.Fatal("AUTH_MODE=remote requires AUTH_REMOTE_URL")
		}
		return authsvc.NewClient(cfg.RemoteAuthURL)
	default:
		return authsvc.NewMock(cfg.MockDelay)
	}
}

// runImports seeds the catalog tables from spreadsheet files
func runImports(lessonsPath, resourcesPath string) {
	if lessonsPath != "" {
		config := excel.DefaultImportConfig()
		config.FilePath = lessonsPath

		result, err := excel.ImportLessons(config)
		if err != nil {
			log.Fatalf("Lesson import failed: %v", err)
		}
		logImportResult("Lessons", result)

		if count, err := database.NewLessonRepository().Count(); err == nil {
			log.Printf("Lesson catalog now holds %d entries", count)
		}
	}

	if resourcesPath != "" {
		config := excel.DefaultImportConfig()
		config.FilePath = resourcesPath

		result, err := excel.ImportResources(config)
		if err != nil {
			log.Fatalf("Resource import failed: %v", err)
		}
		logImportResult("Resources", result)

		if count, err := database.NewResourceRepository().Count(); err == nil {
			log.Printf("Resource catalog now holds %d entries", count)
		}
	}
}

func logImportResult(label string, result *excel.ImportResult) {
	log.Printf("%s: processed %d, imported %d, skipped %d",
		label, result.TotalProcessed, result.Imported, result.Skipped)
	for _, msg := range result.Errors {
		log.Printf("  %s", msg)
	}
}

// loadCatalog prefers imported catalog content from the database and falls
// back to the built-in seed data
func loadCatalog() *catalog.Catalog {
	lessonRepo := database.NewLessonRepository()
	resourceRepo := database.NewResourceRepository()

	lessons, err := lessonRepo.GetAll()
	if err != nil {
		log.Printf("Error loading lessons, using built-in catalog: %v", err)
		return catalog.Default()
	}
	resources, err := resourceRepo.GetAll()
	if err != nil {
		log.Printf("Error loading resources, using built-in catalog: %v", err)
		return catalog.Default()
	}

	if len(lessons) == 0 {
		lessons = catalog.SeedLessons()
	}
	if len(resources) == 0 {
		resources = catalog.SeedResources()
	}
	return catalog.New(lessons, resources)
}
