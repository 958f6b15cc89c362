package ports

import (
	"context"
	"io"
	"time"
)

// RemoteStore is a peer object store that holds cache entries published by
// other hosts.
//
//go:generate mockgen -source=remote.go -destination=mocks/mock_remote.go -package=mocks
type RemoteStore interface {
	// Connect opens a connection to the peer store. It returns
	// domain.ErrRemoteUnavailable when the peer cannot be reached.
	Connect(ctx context.Context) (RemoteConn, error)
}

// RemoteConn is one connection to a remote store.
type RemoteConn interface {
	// Download streams the object at key into sink and returns its
	// modification time. A missing object yields domain.ErrRemoteObjectMissing.
	Download(ctx context.Context, key string, sink io.Writer) (time.Time, error)

	// Upload publishes the object at key.
	Upload(ctx context.Context, key string, source io.Reader) error

	// Commit finalizes all uploads made on this connection.
	Commit(ctx context.Context) error

	// Close releases the connection.
	Close() error
}
