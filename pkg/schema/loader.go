package schema

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/goliatone/go-richparams/pkg/parameter"
)

const maxDocumentBytes = 4 << 20

var (
	// ErrHTTPDisabled is returned for URL sources when no HTTP client is
	// configured.
	ErrHTTPDisabled = errors.New("schema: http support disabled")

	// ErrNilSource is returned when Load receives a nil Source.
	ErrNilSource = errors.New("schema: source is nil")

	// ErrDocumentTooLarge is returned when a fetched document exceeds the
	// loader's size limit.
	ErrDocumentTooLarge = errors.New("schema: document too large")
)

// Option configures a Loader.
type Option func(*Loader)

// WithFileSystem sets the fs.FS used by SourceFromFS sources.
func WithFileSystem(files fs.FS) Option {
	return func(l *Loader) {
		l.fs = files
	}
}

// WithHTTPClient enables URL sources using client.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.http = client
	}
}

// WithRequestTimeout caps remote fetches. It applies to clients without their
// own timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		l.timeout = timeout
	}
}

// WithMaxDocumentBytes caps the size of documents fetched over HTTP.
// Non-positive values keep the default of 4 MiB.
func WithMaxDocumentBytes(n int64) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

// Loader reads schema documents from files, fs.FS entries or HTTP.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration

	maxBytes int64
}

// NewLoader builds a Loader.
func NewLoader(options ...Option) *Loader {
	l := &Loader{maxBytes: maxDocumentBytes}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}
	if l.http != nil && l.timeout > 0 && l.http.Timeout == 0 {
		clone := *l.http
		clone.Timeout = l.timeout
		l.http = &clone
	}
	return l
}

// Load fetches and decodes the schema list behind src.
func (l *Loader) Load(ctx context.Context, src Source) ([]parameter.Schema, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case SourceKindFS:
		if l.fs == nil {
			return nil, fmt.Errorf("schema: fs source %q without file system", src.Location())
		}
		data, err = fs.ReadFile(l.fs, src.Location())
	case SourceKindURL:
		data, err = l.fetch(ctx, src.Location())
	default:
		err = fmt.Errorf("schema: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return nil, fmt.Errorf("schema: load %s: %w", src.Location(), err)
	}

	schemas, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("schema: decode %s: %w", src.Location(), err)
	}
	return schemas, nil
}

func (l *Loader) fetch(ctx context.Context, location string) ([]byte, error) {
	if l.http == nil {
		return nil, ErrHTTPDisabled
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrDocumentTooLarge, l.maxBytes)
	}
	return data, nil
}
