// Package mirror reads eventually-consistent ledger state from a Hedera
// mirror-node REST API. All lookups are plain GETs with identifiers as
// query parameters; a miss (no entries yet) is not an error.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Bamzhie/hedera/internal/core/ports"

	"github.com/rs/zerolog"
)

// Client implements ports.MirrorClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a mirror-node client. baseURL has no trailing slash,
// e.g. "https://testnet.mirrornode.hedera.com".
func NewClient(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

type balancesResponse struct {
	Balances []ports.MirrorAccountBalance `json:"balances"`
}

type tokensResponse struct {
	Tokens []struct {
		TokenID string `json:"token_id"`
		Balance int64  `json:"balance"`
	} `json:"tokens"`
}

// BalanceURL returns the public balance lookup URL for an account or EVM address.
func (c *Client) BalanceURL(account string) string {
	return fmt.Sprintf("%s/api/v1/balances?account.id=%s&limit=1&order=asc",
		c.baseURL, url.QueryEscape(account))
}

// TokenBalanceURL returns the public token balance lookup URL for an account.
func (c *Client) TokenBalanceURL(accountID, tokenID string) string {
	return fmt.Sprintf("%s/api/v1/accounts/%s/tokens?token.id=%s&limit=1&order=desc",
		c.baseURL, url.PathEscape(accountID), url.QueryEscape(tokenID))
}

// AccountBalance looks up the balance entry for an account id or EVM address.
// Returns nil, nil when the mirror node has no entry for it yet.
func (c *Client) AccountBalance(ctx context.Context, account string) (*ports.MirrorAccountBalance, error) {
	var resp balancesResponse
	if err := c.get(ctx, c.BalanceURL(account), &resp); err != nil {
		return nil, err
	}
	if len(resp.Balances) == 0 {
		return nil, nil
	}
	return &resp.Balances[0], nil
}

// TokenBalance looks up the balance accountID holds for tokenID.
// Returns nil, nil when the mirror node has not ingested the token yet.
func (c *Client) TokenBalance(ctx context.Context, accountID, tokenID string) (*int64, error) {
	var resp tokensResponse
	if err := c.get(ctx, c.TokenBalanceURL(accountID, tokenID), &resp); err != nil {
		return nil, err
	}
	for _, tok := range resp.Tokens {
		if tok.TokenID == tokenID {
			balance := tok.Balance
			return &balance, nil
		}
	}
	return nil, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build mirror request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mirror request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mirror request: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode mirror response: %w", err)
	}
	return nil
}
