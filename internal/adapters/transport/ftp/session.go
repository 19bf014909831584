package ftp

import (
	"context"
	"fmt"
	"io"
	"time"

	ftpclient "github.com/jlaffaye/ftp"

	"github.com/hskwon/tdocfetch/internal/ports"
)

const anonymousUser = "anonymous"

// Session is an FTP control connection implementing ports.Transport. All
// calls share the connection's current directory; the connection-level
// timeout supplied to Dial is the only timeout applied.
type Session struct {
	conn *ftpclient.ServerConn
}

var _ ports.Transport = (*Session)(nil)

// Dial connects and logs in. Empty user means anonymous login.
func Dial(addr, user, password string, timeout time.Duration) (*Session, error) {
	conn, err := ftpclient.Dial(addr, ftpclient.DialWithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	if user == "" {
		user = anonymousUser
		password = anonymousUser
	}
	if err := conn.Login(user, password); err != nil {
		_ = conn.Quit()
		return nil, fmt.Errorf("login to %s: %w", addr, err)
	}

	return &Session{conn: conn}, nil
}

func (s *Session) ChangeDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.conn.ChangeDir(path)
}

func (s *Session) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.conn.NameList("")
}

func (s *Session) Retrieve(ctx context.Context, name string, dst io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	response, err := s.conn.Retr(name)
	if err != nil {
		return err
	}
	defer response.Close()

	_, err = io.Copy(dst, response)
	return err
}

func (s *Session) Close() error {
	return s.conn.Quit()
}
