package goplus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/neoxbridge"
	"golang.org/x/sync/errgroup"
)

// Interface compliance check.
var _ neoxbridge.SecurityChecker = (*Client)(nil)

const defaultTimeout = 10 * time.Second

// Client implements [neoxbridge.SecurityChecker] for GoPlus Labs.
type Client struct {
	apiKey     string
	baseURL    string
	chain      string
	timeout    time.Duration
	httpClient *http.Client
	logger     *log.Logger
	now        func() time.Time
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each check.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithChain sets the chain ID used for token checks.
func WithChain(id string) Option {
	return func(c *Client) {
		if id != "" {
			c.chain = id
		}
	}
}

// WithLogger sets the logger used for absorbed failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithClock sets the time source for CheckedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a [Client]. An empty apiKey sends unauthenticated requests.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		chain:      defaultChain,
		timeout:    defaultTimeout,
		httpClient: http.DefaultClient,
		logger:     log.New(io.Discard),
		now:        time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Check scores target according to its type.
func (c *Client) Check(ctx context.Context, target string, tt neoxbridge.TargetType) neoxbridge.SecurityResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var (
		details map[string]neoxbridge.CheckDetail
		err     error
	)
	switch tt {
	case neoxbridge.TargetAddress:
		details, err = c.checkAddress(ctx, target)
	case neoxbridge.TargetToken:
		details, err = c.checkToken(ctx, target)
	case neoxbridge.TargetURL:
		details, err = c.checkURL(ctx, target)
	default:
		err = fmt.Errorf("%q: %w", tt, neoxbridge.ErrUnsupportedTarget)
	}
	if err != nil {
		c.logger.Warn("security check failed", "target", target, "type", tt, "err", err)
		return neoxbridge.UnknownSecurityResult(target, tt, err.Error(), Source, c.now())
	}
	return neoxbridge.NewSecurityResult(target, tt, details, Source, c.now())
}

func (c *Client) checkAddress(ctx context.Context, addr string) (map[string]neoxbridge.CheckDetail, error) {
	var res map[string]any
	if err := c.get(ctx, addressPath+url.PathEscape(addr), nil, &res); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errors.New("goplus: address_security: empty result")
	}
	var flagged []string
	for _, f := range addressFlags {
		if flagValue(res[f]) == "1" {
			flagged = append(flagged, f)
		}
	}
	d := neoxbridge.CheckDetail{Passed: len(flagged) == 0, Message: "No malicious indicators"}
	if !d.Passed {
		d.Message = "Flagged: " + strings.Join(flagged, ", ")
		d.Flags = flagged
	}
	return map[string]neoxbridge.CheckDetail{"address_security": d}, nil
}

func (c *Client) checkToken(ctx context.Context, contract string) (map[string]neoxbridge.CheckDetail, error) {
	var res map[string]map[string]any
	q := url.Values{"contract_addresses": {contract}}
	if err := c.get(ctx, tokenPath+url.PathEscape(c.chain), q, &res); err != nil {
		return nil, err
	}
	data, ok := res[strings.ToLower(contract)]
	if !ok {
		return nil, fmt.Errorf("goplus: token_security: no data for %s", contract)
	}

	buyTax, sellTax := taxValue(data["buy_tax"]), taxValue(data["sell_tax"])
	var flags []string
	if flagValue(data["is_honeypot"]) == "1" {
		flags = append(flags, "is_honeypot")
	}
	if flagValue(data["cannot_sell_all"]) == "1" || sellTax == 1 {
		flags = append(flags, "cannot_sell")
	}
	if buyTax >= maxTax {
		flags = append(flags, "buy_tax")
	}
	if sellTax >= maxTax {
		flags = append(flags, "sell_tax")
	}
	d := neoxbridge.CheckDetail{
		Passed:  len(flags) == 0,
		Message: fmt.Sprintf("buy tax %.1f%%, sell tax %.1f%%", buyTax*100, sellTax*100),
		Flags:   flags,
	}
	return map[string]neoxbridge.CheckDetail{"token_security": d}, nil
}

// checkURL runs the dApp and phishing lookups concurrently. Both must
// succeed for the result to count.
func (c *Client) checkURL(ctx context.Context, target string) (map[string]neoxbridge.CheckDetail, error) {
	var dapp, phishing map[string]any
	q := url.Values{"url": {target}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.get(gctx, dappPath, q, &dapp) })
	g.Go(func() error { return c.get(gctx, phishingPath, q, &phishing) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dappOK := flagValue(dapp["malicious_activity"]) != "1"
	phishingOK := flagValue(phishing["phishing_site"]) != "1"
	details := map[string]neoxbridge.CheckDetail{
		"dapp_security":  {Passed: dappOK, Message: "No malicious activity reported"},
		"phishing_check": {Passed: phishingOK, Message: "Not a known phishing site"},
	}
	if !dappOK {
		details["dapp_security"] = neoxbridge.CheckDetail{Message: "Malicious activity reported", Flags: []string{"malicious_activity"}}
	}
	if !phishingOK {
		details["phishing_check"] = neoxbridge.CheckDetail{Message: "Known phishing site", Flags: []string{"phishing_site"}}
	}
	return details, nil
}

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("goplus: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("goplus: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("goplus: %s: HTTP %d", path, resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("goplus: %s: decode response: %w", path, err)
	}
	if len(apiResp.Result) == 0 || string(apiResp.Result) == "null" {
		if apiResp.Message != "" {
			return fmt.Errorf("goplus: %s: %s", path, apiResp.Message)
		}
		return fmt.Errorf("goplus: %s: empty result", path)
	}
	if err := json.Unmarshal(apiResp.Result, out); err != nil {
		return fmt.Errorf("goplus: %s: decode result: %w", path, err)
	}
	return nil
}

// flagValue normalizes the "0"/"1" indicators GoPlus returns as strings or
// numbers.
func flagValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}

// taxValue parses a tax fraction. Missing or malformed values are 0.
func taxValue(v any) float64 {
	f, err := strconv.ParseFloat(flagValue(v), 64)
	if err != nil {
		return 0
	}
	return f
}
