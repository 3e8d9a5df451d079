package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"aluno-sync/internal/config"
	"aluno-sync/internal/curriculum"
	"aluno-sync/internal/domain"
	"aluno-sync/internal/export"
	"aluno-sync/internal/ics"
	"aluno-sync/internal/portal"
	"aluno-sync/internal/sftpclient"
	"aluno-sync/internal/transform"
)

func main() {
	var (
		skipDisponiveis = flag.Bool("skip-disponiveis", false, "skip the oferta scrape (much faster; snapshot only carries enrolled turmas)")
		uploadSFTP      = flag.Bool("sftp", false, "upload snapshot and agenda via SFTP after a successful run")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Hour)
	defer cancel()

	cfg := config.Load()

	fmt.Println("=== aluno-sync ===")

	client := portal.New(cfg.PortalBaseURL)
	user, err := client.Login(ctx, cfg.User, cfg.Password)
	if err != nil {
		if errors.Is(err, portal.ErrInvalidCredentials) {
			log.Fatal("invalid ALUNO_USER / ALUNO_PASSWORD in .env")
		}
		log.Fatalf("login error: %v", err)
	}
	fmt.Printf("logado: %s | %s\n", user.Nome, user.Matricula)

	fmt.Println("\n[1/3] raspando disciplinas aprovadas...")
	aprovadas, err := client.DisciplinasAprovadas(ctx, user.Matricula)
	if err != nil {
		log.Fatalf("disciplinas aprovadas error: %v", err)
	}
	saveJSON(cfg.DisciplinasAprovadasPath, aprovadas)

	fmt.Println("\n[2/3] raspando turmas matriculadas/solicitadas...")
	matriculadas, err := client.TurmasMatricula(ctx, user.Matricula)
	if err != nil {
		log.Fatalf("quadro de horário error: %v", err)
	}
	saveJSON(cfg.TurmasMatriculaPath, matriculadas)

	turmasDisponiveis, err := fetchDisponiveis(ctx, client, cfg, user.Matricula, *skipDisponiveis)
	if err != nil {
		log.Fatalf("turmas disponíveis error: %v", err)
	}
	if turmasDisponiveis != nil {
		saveJSON(cfg.TurmasDisponiveisPath, turmasDisponiveis)
	}

	fmt.Println("\n=== raspagem finalizada ===")

	fmt.Println("\nconsolidando dados...")
	requisitos, err := curriculum.ReadFile(cfg.RequisitosPath)
	if err != nil {
		log.Fatalf("requisitos error: %v", err)
	}

	snap, err := transform.Consolidate(transform.Inputs{
		DisciplinasAprovadas: aprovadas,
		Requisitos:           requisitos,
		TurmasDisponiveis:    turmasDisponiveis,
		TurmasMatricula:      matriculadas,
	}, time.Now())
	if err != nil {
		log.Fatalf("consolidation error: %v", err)
	}

	if err := export.WriteSnapshot(cfg.SnapshotPath, snap, cfg.CompressSnapshot); err != nil {
		log.Fatalf("snapshot error: %v", err)
	}
	fmt.Printf("snapshot salvo em %s (%d turmas)\n", cfg.SnapshotPath, len(snap.Courses))

	fmt.Println("\nsalvando agenda...")
	agenda := ics.Export(matriculadas)
	if err := export.WriteFileAtomic(cfg.AgendaPath, []byte(agenda)); err != nil {
		log.Fatalf("agenda error: %v", err)
	}
	fmt.Printf("agenda salva em %s\n", cfg.AgendaPath)

	if *uploadSFTP {
		if !cfg.SFTP.Enabled() {
			log.Fatal("missing env vars: SFTP_HOST / SFTP_USER / SFTP_PASS")
		}
		if err := sftpclient.UploadArtifacts(ctx, cfg.SFTP, cfg.SnapshotPath, cfg.AgendaPath); err != nil {
			log.Fatalf("sftp error: %v", err)
		}
		fmt.Printf("artefatos enviados para %s:%s\n", cfg.SFTP.Host, cfg.SFTP.RemoteDir)
	}
}

// fetchDisponiveis scrapes the oferta listing. The listing only exists while
// the enrollment phase is open; outside it, the last saved curso ids are
// tried before giving up, matching how the pipeline is actually used right
// after the window closes.
func fetchDisponiveis(ctx context.Context, client *portal.Client, cfg config.Config, matricula string, skip bool) (map[string]domain.RawTurma, error) {
	if skip {
		fmt.Println("\n[3/3] turmas disponíveis: pulado (-skip-disponiveis)")
		return nil, nil
	}

	fmt.Println("\n[3/3] raspando turmas disponíveis (isso pode demorar)...")

	cursoIDs, err := client.CursosDisponiveis(ctx, matricula)
	if err != nil {
		log.Printf("WARN: %v", err)
		cursoIDs = loadSavedCursos(cfg.CursosDisponiveisPath)
		if cursoIDs == nil {
			log.Print("WARN: no saved curso ids either; skipping disponíveis")
			return nil, nil
		}
		log.Printf("using saved curso ids from %s", cfg.CursosDisponiveisPath)
	} else {
		saveJSON(cfg.CursosDisponiveisPath, cursoIDs)
	}

	return client.TurmasDisponiveis(ctx, matricula, cursoIDs)
}

func loadSavedCursos(path string) []string {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return nil
	}
	return ids
}

func saveJSON(path string, v any) {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		log.Fatalf("marshal %s: %v", path, err)
	}
	if err := export.WriteFileAtomic(path, b); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	fmt.Printf("dados salvos em %s\n", path)
}
