package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"aluno-sync/internal/sftpclient"
)

// Config gathers everything the pipeline needs at its call boundary: portal
// credentials, every input/output path, and the optional artifact drop.
// Components receive values from here and never read env or path globals
// themselves.
type Config struct {
	// Portal
	PortalBaseURL string
	User          string
	Password      string

	// Input datasets
	DisciplinasAprovadasPath string
	RequisitosPath           string
	TurmasDisponiveisPath    string
	TurmasMatriculaPath      string
	CursosDisponiveisPath    string

	// Output artifacts
	SnapshotPath     string
	AgendaPath       string
	CompressSnapshot bool

	// Optional SFTP drop for the artifacts
	SFTP sftpclient.Config
}

// Load reads .env (when present) and the environment. Defaults mirror the
// repo's conventional layout: scraped data under data/, the hand-maintained
// curriculum table under curriculum/, artifacts under output/.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		PortalBaseURL: getenv("ALUNO_PORTAL_URL", "https://alunos.cefet-rj.br"),
		User:          os.Getenv("ALUNO_USER"),
		Password:      os.Getenv("ALUNO_PASSWORD"),

		DisciplinasAprovadasPath: getenv("ALUNO_APROVADAS_PATH", "data/disciplinas_aprovadas.json"),
		RequisitosPath:           getenv("ALUNO_REQUISITOS_PATH", "curriculum/requisitos.json"),
		TurmasDisponiveisPath:    getenv("ALUNO_DISPONIVEIS_PATH", "data/turmas_disponiveis_data.json"),
		TurmasMatriculaPath:      getenv("ALUNO_MATRICULA_PATH", "data/turmas_matricula_data.json"),
		CursosDisponiveisPath:    getenv("ALUNO_CURSOS_PATH", "data/cursos_disponiveis_id.json"),

		SnapshotPath:     getenv("ALUNO_SNAPSHOT_PATH", "output/matricula_data.json"),
		AgendaPath:       getenv("ALUNO_AGENDA_PATH", "output/agenda.ics"),
		CompressSnapshot: getbool("ALUNO_COMPRESS_SNAPSHOT", false),

		SFTP: sftpclient.Config{
			Host:      os.Getenv("SFTP_HOST"),
			Port:      getint("SFTP_PORT", 22),
			User:      os.Getenv("SFTP_USER"),
			Pass:      os.Getenv("SFTP_PASS"),
			RemoteDir: getenv("SFTP_REMOTE_DIR", "/"),
		},
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getbool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
