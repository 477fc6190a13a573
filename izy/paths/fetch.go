package paths

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

func NewClient(userAgent string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)
}

// Fetch downloads url into the file, with a default client when client is
// nil. When sum is not empty the SHA-256 of the body must match it, otherwise
// the file is removed and ErrChecksum recorded.
func (f FilePath) Fetch(ctx context.Context, client *resty.Client, url, sum string) FilePath {
	if f.err != nil {
		return f
	}

	if client == nil {
		client = resty.New()
	}

	req := client.R().SetContext(ctx)
	req.SetDoNotParseResponse(true)

	resp, err := req.Get(url)
	if err != nil {
		return f.wrap(f.fail(err))
	}

	raw := resp.RawBody()
	defer raw.Close()

	if resp.StatusCode() != 200 {
		return f.wrap(f.fail(fmt.Errorf("%w: %s", ErrHTTPStatus, resp.Status())))
	}

	hasher := sha256.New()
	hashed := io.TeeReader(raw, hasher)

	written := f.write(os.O_TRUNC, func(w io.Writer) error {
		_, err := io.Copy(w, hashed)
		return err
	})

	if written.err != nil {
		return written
	}

	if sum == "" {
		return written
	}

	if hash := hex.EncodeToString(hasher.Sum(nil)); !strings.EqualFold(hash, sum) {
		f.Unlink(true)
		return f.wrap(f.fail(fmt.Errorf("%w: got %s, want %s", ErrChecksum, hash, sum)))
	}

	return written
}
