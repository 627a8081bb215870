// Package ftp mirrors ARGO NetCDF archives from a data assembly centre
// onto local disk.
package ftp

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
	"go.uber.org/zap"
)

type Client struct {
	host    string
	timeout time.Duration
	logger  *zap.Logger
}

func NewClient(host string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		host:    host,
		timeout: timeout,
		logger:  logger,
	}
}

// MirrorDirectory walks remotePath recursively and downloads every .nc
// file that does not exist under localDir yet. The remote directory tree
// is flattened: files land directly in localDir, keyed by base name.
// Per-entry failures are logged and skipped so one bad file does not
// abort a sync. Returns the number of files downloaded.
func (c *Client) MirrorDirectory(ctx context.Context, remotePath, localDir string) (int, error) {
	conn, err := ftp.Dial(c.host, ftp.DialWithTimeout(c.timeout), ftp.DialWithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to dial ftp %s: %w", c.host, err)
	}
	defer conn.Quit()

	if err := conn.Login("anonymous", "anonymous"); err != nil {
		return 0, fmt.Errorf("failed to login to ftp: %w", err)
	}

	if err := os.MkdirAll(localDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create data dir: %w", err)
	}

	c.logger.Info("Mirroring FTP directory",
		zap.String("host", c.host),
		zap.String("remote_path", remotePath),
		zap.String("local_dir", localDir),
	)

	downloaded, err := c.mirror(ctx, conn, remotePath, localDir)
	if err != nil {
		return downloaded, err
	}

	c.logger.Info("FTP mirror complete",
		zap.String("remote_path", remotePath),
		zap.Int("downloaded", downloaded),
	)
	return downloaded, nil
}

func (c *Client) mirror(ctx context.Context, conn *ftp.ServerConn, remotePath, localDir string) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	entries, err := conn.List(remotePath)
	if err != nil {
		return 0, fmt.Errorf("failed to list %s: %w", remotePath, err)
	}

	downloaded := 0
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return downloaded, ctx.Err()
		default:
		}

		if entry.Name == "." || entry.Name == ".." {
			continue
		}
		remote := path.Join(remotePath, entry.Name)

		switch entry.Type {
		case ftp.EntryTypeFolder:
			n, err := c.mirror(ctx, conn, remote, localDir)
			downloaded += n
			if err != nil {
				if err == ctx.Err() {
					return downloaded, err
				}
				c.logger.Warn("Skipping remote directory",
					zap.String("remote", remote), zap.Error(err))
			}
		case ftp.EntryTypeFile:
			if !strings.HasSuffix(entry.Name, ".nc") {
				continue
			}
			local := filepath.Join(localDir, entry.Name)
			if _, err := os.Stat(local); err == nil {
				continue // already mirrored
			}
			if err := c.fetch(conn, remote, local); err != nil {
				c.logger.Warn("Failed to download file",
					zap.String("remote", remote), zap.Error(err))
				continue
			}
			downloaded++
		}
	}

	return downloaded, nil
}

func (c *Client) fetch(conn *ftp.ServerConn, remote, local string) error {
	resp, err := conn.Retr(remote)
	if err != nil {
		return fmt.Errorf("retr %s: %w", remote, err)
	}
	defer resp.Close()

	tmp := local + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}

	if _, err := io.Copy(f, resp); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("copy %s: %w", remote, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}

	// Rename after a full write so a crash never leaves a truncated .nc.
	if err := os.Rename(tmp, local); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	c.logger.Debug("Downloaded file", zap.String("remote", remote), zap.String("local", local))
	return nil
}
