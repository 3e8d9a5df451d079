package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"aluno-sync/internal/config"
	"aluno-sync/internal/domain"
	"aluno-sync/internal/export"
	"aluno-sync/internal/ics"
)

// Offline agenda generation from the saved quadro-de-horário dataset.
func main() {
	outPath := flag.String("out", "", "agenda output path (default from ALUNO_AGENDA_PATH)")
	flag.Parse()

	cfg := config.Load()
	if *outPath != "" {
		cfg.AgendaPath = *outPath
	}

	b, err := os.ReadFile(cfg.TurmasMatriculaPath)
	if err != nil {
		log.Fatalf("read %s: %v", cfg.TurmasMatriculaPath, err)
	}

	var turmas map[string]domain.RawTurma
	if err := json.Unmarshal(b, &turmas); err != nil {
		log.Fatalf("parse %s: %v", cfg.TurmasMatriculaPath, err)
	}

	agenda := ics.Export(turmas)
	if err := export.WriteFileAtomic(cfg.AgendaPath, []byte(agenda)); err != nil {
		log.Fatalf("write agenda: %v", err)
	}
	fmt.Printf("agenda salva em %s\n", cfg.AgendaPath)
}
