package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Source abstracts where the raw CSV bytes come from so the store can be
// backed by a local file, a remote URL, or an in-memory buffer in tests.
type Source interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
	Describe() string
}

// ErrMissingSource indicates neither a dataset path nor URL was configured.
var ErrMissingSource = errors.New("dataset source is required")

// ErrEmptyDataset indicates the source was readable but contained no data rows.
var ErrEmptyDataset = errors.New("dataset contains no data rows")

// SourceError wraps failures reaching or reading the backing dataset. Any
// query is fatal while the error persists; a reset followed by a fresh load
// is the retry path.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("dataset source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// FileSource reads the dataset from a local CSV file.
type FileSource struct {
	Path string
}

// NewFileSource constructs a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Fetch(_ context.Context) (io.ReadCloser, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, &SourceError{Source: s.Path, Err: err}
	}
	return file, nil
}

func (s *FileSource) Describe() string { return s.Path }

// HTTPSource downloads the dataset from a remote URL. The client timeout
// bounds the whole fetch so a stalled transfer fails instead of hanging
// callers that share the in-flight load.
type HTTPSource struct {
	URL    string
	client *http.Client
}

// NewHTTPSource constructs an HTTPSource with the given fetch timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &HTTPSource{
		URL:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &SourceError{Source: s.URL, Err: err}
	}
	req.Header.Set("Accept", "text/csv,application/csv,text/plain")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &SourceError{Source: s.URL, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &SourceError{Source: s.URL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	return resp.Body, nil
}

func (s *HTTPSource) Describe() string { return s.URL }
