// Package ftp wraps the campus FTP server behind the small file-store
// surface the document pipeline needs: store, rename, delete by path.
package ftp

import (
	"bytes"
	"fmt"
	"path"
	"time"

	"github.com/jlaffaye/ftp"
)

type Client struct {
	addr     string
	user     string
	password string
	baseDir  string
	timeout  time.Duration
}

func NewClient(addr, user, password, baseDir string) *Client {
	return &Client{
		addr:     addr,
		user:     user,
		password: password,
		baseDir:  path.Clean("/" + baseDir),
		timeout:  30 * time.Second,
	}
}

// connect dials and logs in. FTP control connections are stateful, so each
// operation uses a fresh one and quits when done.
func (c *Client) connect() (*ftp.ServerConn, error) {
	conn, err := ftp.Dial(c.addr, ftp.DialWithTimeout(c.timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to dial ftp server: %w", err)
	}
	if err := conn.Login(c.user, c.password); err != nil {
		conn.Quit()
		return nil, fmt.Errorf("failed to log in to ftp server: %w", err)
	}
	return conn, nil
}

// DocumentPath builds the remote path for a student document:
// <base>/<studentNumber>/<fileName>
func (c *Client) DocumentPath(studentNumber, fileName string) string {
	return path.Join(c.baseDir, studentNumber, fileName)
}

func (c *Client) Store(remotePath string, data []byte) error {
	conn, err := c.connect()
	if err != nil {
		return err
	}
	defer conn.Quit()

	// The student's directory may not exist yet; MakeDir fails harmlessly
	// when it already does.
	_ = conn.MakeDir(path.Dir(remotePath))

	if err := conn.Stor(remotePath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to store %s: %w", remotePath, err)
	}
	return nil
}

// Rename moves a stored file. It fails when the source is absent.
func (c *Client) Rename(oldPath, newPath string) error {
	conn, err := c.connect()
	if err != nil {
		return err
	}
	defer conn.Quit()

	if err := conn.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}

func (c *Client) Delete(remotePath string) error {
	conn, err := c.connect()
	if err != nil {
		return err
	}
	defer conn.Quit()

	if err := conn.Delete(remotePath); err != nil {
		return fmt.Errorf("failed to delete %s: %w", remotePath, err)
	}
	return nil
}
