package ports

import (
	"context"
	"io"
)

// Transport is a sequential remote file session with a single cursor: the
// current remote directory is shared state across all calls. Listings return
// plain entry names with no file/directory distinction.
type Transport interface {
	ChangeDir(ctx context.Context, path string) error
	List(ctx context.Context) ([]string, error)
	Retrieve(ctx context.Context, name string, dst io.Writer) error
}
