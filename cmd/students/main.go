// main runs the student-records demo.
//
// SEQUENCE:
//  1. Load configuration (defaults when no file is given)
//  2. Initialise the logger
//  3. Open the configured storage backend
//  4. Add two students, list them, look one up, delete the other,
//     list again
//
// RUNNING:
//
//	go run ./cmd/students
//
// or with a config file:
//
//	go run ./cmd/students --config=config/local.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/service/student"
	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/aanand-mishra/student-records/internal/storage/memory"
	"github.com/aanand-mishra/student-records/internal/storage/sqlite"
	"github.com/aanand-mishra/student-records/internal/types"
)

func main() {
	cfg := config.MustLoad()

	// Logs go to stderr; stdout carries only the demo output.
	log := setupLogger(cfg.Env, os.Stderr)

	log.Info("starting student-records",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
	)

	store, closeStore, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	if err := run(os.Stdout, student.New(store, log)); err != nil {
		log.Error("demo failed", slog.String("error", err.Error()))
		closeStore()
		os.Exit(1)
	}

	log.Info("done")
}

// run is the scripted demo. It writes only to w.
func run(w io.Writer, svc *student.Service) error {
	if err := svc.Add(types.NewStudent(1, "Aadarsh", 20, "CSE", 85, "aadarsh@email.com")); err != nil {
		return err
	}
	if err := svc.Add(types.NewStudent(2, "Rahul", 21, "ECE", 78, "rahul@email.com")); err != nil {
		return err
	}

	fmt.Fprintln(w, "All Students:")
	if err := svc.Display(w); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nSearching for student with ID 1:")
	s, found, err := svc.SearchByID(1)
	if err != nil {
		return err
	}
	if found {
		fmt.Fprintln(w, "Found: "+s.Name)
	} else {
		fmt.Fprintln(w, "Student not found.")
	}

	fmt.Fprintln(w, "\nDeleting student with ID 2")
	if _, err := svc.Delete(2); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nAfter Deletion:")
	return svc.Display(w)
}

// openStorage returns the backend named by cfg.Storage.Driver and a
// function that releases it.
func openStorage(cfg *config.Config) (storage.Storage, func() error, error) {
	switch cfg.Storage.Driver {
	case storage.DriverSQLite:
		db, err := sqlite.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case storage.DriverMemory:
		return memory.New(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
