package ledger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// DefaultInfoPort is the bootstrap peer port serving the genesis endpoint.
const DefaultInfoPort = 8001

// genesisFileName is the fixed temp file the fetched genesis set is written
// to; the pool configuration is rewritten to point at it.
const genesisFileName = "pool_transactions_genesis"

// fetchGenesis downloads the genesis transaction set from the bootstrap
// peer's info endpoint and persists it under the OS temp directory.
func (p *Pool) fetchGenesis(ctx context.Context) (string, error) {
	url := fmt.Sprintf("http://%s:%d/pool_transactions_genesis", p.cfg.PoolIP, p.cfg.InfoPort)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build genesis request: %w", err)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch genesis from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch genesis from %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read genesis body: %w", err)
	}

	path := filepath.Join(os.TempDir(), genesisFileName)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		return "", fmt.Errorf("write genesis file %s: %w", path, err)
	}
	return path, nil
}
