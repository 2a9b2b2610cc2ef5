package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/unicodetools/ucdsync/internal/utils"
)

// ErrNotUTF8 is returned when a downloaded payload is not valid UTF-8 text.
var ErrNotUTF8 = errors.New("response body is not valid UTF-8")

// Fetcher downloads UCD files relative to a base URL and writes normalized
// copies into a local directory.
type Fetcher struct {
	baseURL string
	client  utils.HTTPDoer
}

func New(baseURL string, client utils.HTTPDoer) *Fetcher {
	return &Fetcher{baseURL: baseURL, client: client}
}

// ResolveURL concatenates the base URL and a relative path. Descriptors are
// required to be URL-safe already, so no escaping happens here.
func (f *Fetcher) ResolveURL(descriptor string) string {
	return f.baseURL + descriptor
}

// OutputName returns the final path segment of a descriptor. The descriptor
// must be non-empty.
func OutputName(descriptor string) string {
	if idx := strings.LastIndex(descriptor, "/"); idx >= 0 {
		return descriptor[idx+1:]
	}
	return descriptor
}

// FetchAndWrite downloads one descriptor and writes its normalized content to
// outputDir. The destination file is created or truncated in place; a failed
// write may leave it truncated.
func (f *Fetcher) FetchAndWrite(ctx context.Context, descriptor, outputDir string) error {
	url := f.ResolveURL(descriptor)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating GET request: %v", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("error executing GET request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}
	if !utf8.Valid(body) {
		return ErrNotUTF8
	}
	normalized := Normalize(string(body))
	outPath := filepath.Join(outputDir, OutputName(descriptor))
	outFile, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer outFile.Close()
	if _, err := outFile.WriteString(normalized); err != nil {
		return fmt.Errorf("error writing to output file: %v", err)
	}
	return nil
}

// Run fetches every descriptor sequentially in list order. The first failure
// aborts the remaining descriptors; the returned error carries the failing
// descriptor so the caller can tell which file broke the sync.
func (f *Fetcher) Run(ctx context.Context, descriptors []string, outputDir string) error {
	runID := uuid.New().String()[:8]
	logger := log.With().Str("op", "fetcher/run").Str("run", runID).Logger()
	for _, descriptor := range descriptors {
		logger.Debug().Msgf("Fetching %s", f.ResolveURL(descriptor))
		if err := f.FetchAndWrite(ctx, descriptor, outputDir); err != nil {
			return fmt.Errorf("%s: %w", descriptor, err)
		}
		logger.Info().Msgf("Wrote %s", OutputName(descriptor))
	}
	return nil
}
