package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"aluno-sync/internal/config"
	"aluno-sync/internal/devutil"
	"aluno-sync/internal/portal"
)

// Scrape-only helper: logs in and dumps a compact summary of either a single
// turma page (-turma) or the whole quadro de horário. Handy to eyeball what
// the portal is currently rendering without running the full pipeline.
func main() {
	turmaID := flag.String("turma", "", "fetch a single turma page by id")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cfg := config.Load()

	client := portal.New(cfg.PortalBaseURL)
	user, err := client.Login(ctx, cfg.User, cfg.Password)
	if err != nil {
		log.Fatalf("login error: %v", err)
	}
	fmt.Printf("logado: %s | %s\n", user.Nome, user.Matricula)

	if *turmaID != "" {
		raw, err := client.TurmaData(ctx, *turmaID)
		if err != nil {
			log.Fatalf("turma error: %v", err)
		}
		fmt.Printf("%s) %v\n", *turmaID, devutil.Pick(raw,
			"Disciplina", "Nome", "Curso", "Ano", "Vagas Totais", "Total de Matrículas"))
		return
	}

	turmas, err := client.TurmasMatricula(ctx, user.Matricula)
	if err != nil {
		log.Fatalf("quadro de horário error: %v", err)
	}

	fmt.Printf("OK: fetched %d turmas\n", len(turmas))
	for id, raw := range turmas {
		fmt.Printf("%s) %v\n", id, devutil.Pick(raw, "Disciplina", "Matrícula", "Vagas Totais"))
	}
}
