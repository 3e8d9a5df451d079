package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"aluno-sync/internal/config"
	"aluno-sync/internal/export"
	"aluno-sync/internal/transform"
)

// Offline consolidation: re-runs the normalization pass over the datasets
// already scraped under data/, without touching the portal. Useful after
// editing the curriculum table.
func main() {
	outPath := flag.String("out", "", "snapshot output path (default from ALUNO_SNAPSHOT_PATH)")
	flag.Parse()

	cfg := config.Load()
	if *outPath != "" {
		cfg.SnapshotPath = *outPath
	}

	in, err := transform.LoadInputs(
		cfg.DisciplinasAprovadasPath,
		cfg.RequisitosPath,
		cfg.TurmasDisponiveisPath,
		cfg.TurmasMatriculaPath,
	)
	if err != nil {
		log.Fatalf("load inputs: %v", err)
	}

	snap, err := transform.Consolidate(in, time.Now())
	if err != nil {
		log.Fatalf("consolidation error: %v", err)
	}

	if err := export.WriteSnapshot(cfg.SnapshotPath, snap, cfg.CompressSnapshot); err != nil {
		log.Fatalf("snapshot error: %v", err)
	}
	fmt.Printf("dados salvos em %s (%d turmas, semestre %s)\n",
		cfg.SnapshotPath, len(snap.Courses), snap.Metadata.Semester)
}
