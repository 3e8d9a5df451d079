package sftpclient

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// Config holds the SFTP drop destination for generated artifacts. Populated
// from SFTP_* env vars; upload is skipped entirely when Host is empty.
type Config struct {
	Host      string
	Port      int
	User      string
	Pass      string
	RemoteDir string
}

// Enabled reports whether an SFTP destination is configured.
func (c Config) Enabled() bool {
	return c.Host != ""
}

// UploadArtifacts pushes each local file to cfg.RemoteDir, keeping the base
// file name. Used to drop matricula_data.json and agenda.ics on a remote
// host after a successful run.
func UploadArtifacts(ctx context.Context, cfg Config, localPaths ...string) error {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return fmt.Errorf("sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS")
	}
	if cfg.Port <= 0 {
		cfg.Port = 22
	}
	if cfg.RemoteDir == "" {
		cfg.RemoteDir = "/"
	}

	sshClient, err := dial(ctx, cfg)
	if err != nil {
		return err
	}
	defer sshClient.Close()

	cli, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("sftp: new client: %w", err)
	}
	defer cli.Close()

	if err := cli.MkdirAll(cfg.RemoteDir); err != nil {
		return fmt.Errorf("sftp: mkdir %s: %w", cfg.RemoteDir, err)
	}

	for _, localPath := range localPaths {
		if err := uploadOne(cli, cfg.RemoteDir, localPath); err != nil {
			return err
		}
	}
	return nil
}

// dial wraps ssh.Dial so ctx cancellation is honored; the ssh package has no
// context-aware dialer.
func dial(ctx context.Context, cfg Config) (*ssh.Client, error) {
	sshCfg := &ssh.ClientConfig{
		User: cfg.User,
		Auth: []ssh.AuthMethod{ssh.Password(cfg.Pass)},
		// TODO: swap for a known_hosts callback once the drop host is fixed.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         20 * time.Second,
	}

	type dialRes struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialRes, 1)
	go func() {
		c, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), sshCfg)
		ch <- dialRes{client: c, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("sftp: dial error: %w", r.err)
		}
		return r.client, nil
	}
}

func uploadOne(cli *sftp.Client, remoteDir, localPath string) error {
	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("sftp: open local file: %w", err)
	}
	defer src.Close()

	dst, err := cli.Create(path.Join(remoteDir, filepath.Base(localPath)))
	if err != nil {
		return fmt.Errorf("sftp: create remote file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("sftp: upload copy: %w", err)
	}
	return nil
}
