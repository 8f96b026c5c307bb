package verification

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/models"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultMaxPolls     = 60
)

// etherscanResponse is the envelope of every Etherscan API reply
type etherscanResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

// EtherscanVerifier submits standard JSON input to the Etherscan v2 API
type EtherscanVerifier struct {
	apiURL       string
	apiKey       string
	client       *retryablehttp.Client
	pollInterval time.Duration
	maxPolls     int
	log          *slog.Logger
}

// NewEtherscanVerifier creates a verifier against apiURL. Transient HTTP
// failures are retried.
func NewEtherscanVerifier(apiURL, apiKey string, log *slog.Logger) *EtherscanVerifier {
	log = log.With("component", "etherscan")

	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = log

	return &EtherscanVerifier{
		apiURL:       apiURL,
		apiKey:       apiKey,
		client:       client,
		pollInterval: defaultPollInterval,
		maxPolls:     defaultMaxPolls,
		log:          log,
	}
}

// Verify submits the contract and waits for Etherscan's verdict. A rejected
// verification returns the failed info along with an error.
func (v *EtherscanVerifier) Verify(ctx context.Context, req *usecase.VerificationRequest) (*models.VerificationInfo, error) {
	if v.apiKey == "" {
		return nil, fmt.Errorf("etherscan API key is not configured (set etherscan.api_key in mkt.toml or ETHERSCAN_API_KEY)")
	}
	if req.BuildInfo == nil || len(req.BuildInfo.Input) == 0 {
		return nil, fmt.Errorf("no compiler input for %s", req.Contract.Name)
	}

	form := url.Values{
		"module":                {"contract"},
		"action":                {"verifysourcecode"},
		"apikey":                {v.apiKey},
		"codeformat":            {"solidity-standard-json-input"},
		"sourceCode":            {string(req.BuildInfo.Input)},
		"contractaddress":       {req.Address.Hex()},
		"contractname":          {req.Contract.FullyQualifiedName()},
		"compilerversion":       {compilerVersion(req.BuildInfo)},
		"constructorArguements": {hex.EncodeToString(req.ConstructorArgs)}, // sic
	}

	submitted, err := v.do(ctx, http.MethodPost, req.ChainID, nil, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	info := &models.VerificationInfo{EtherscanURL: contractURL(req.ExplorerURL, req.Address.Hex())}
	if submitted.Status != "1" {
		if isAlreadyVerified(submitted.Result) {
			return v.verified(info), nil
		}
		return v.failed(info, submitted.Result)
	}

	info.GUID = submitted.Result
	v.log.Debug("verification submitted", "guid", info.GUID, "address", req.Address.Hex())
	return v.poll(ctx, req.ChainID, info)
}

func (v *EtherscanVerifier) poll(ctx context.Context, chainID uint64, info *models.VerificationInfo) (*models.VerificationInfo, error) {
	query := url.Values{
		"module": {"contract"},
		"action": {"checkverifystatus"},
		"guid":   {info.GUID},
		"apikey": {v.apiKey},
	}

	for i := 0; i < v.maxPolls; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(v.pollInterval):
		}

		status, err := v.do(ctx, http.MethodGet, chainID, query, nil)
		if err != nil {
			return nil, err
		}
		v.log.Debug("verification status", "guid", info.GUID, "result", status.Result)

		switch {
		case strings.HasPrefix(status.Result, "Pass"), isAlreadyVerified(status.Result):
			return v.verified(info), nil
		case strings.HasPrefix(status.Result, "Pending"), strings.Contains(status.Result, "in queue"):
			continue
		case status.Status == "0":
			return v.failed(info, status.Result)
		}
	}

	info.Status = models.VerificationStatusPending
	return info, fmt.Errorf("verification %s still pending after %d checks", info.GUID, v.maxPolls)
}

func (v *EtherscanVerifier) verified(info *models.VerificationInfo) *models.VerificationInfo {
	now := time.Now().UTC()
	info.Status = models.VerificationStatusVerified
	info.VerifiedAt = &now
	info.Reason = ""
	return info
}

func (v *EtherscanVerifier) failed(info *models.VerificationInfo, reason string) (*models.VerificationInfo, error) {
	info.Status = models.VerificationStatusFailed
	info.Reason = reason
	return info, fmt.Errorf("%w: %s", domain.ErrVerificationFailed, reason)
}

func (v *EtherscanVerifier) do(ctx context.Context, method string, chainID uint64, query url.Values, body io.Reader) (*etherscanResponse, error) {
	endpoint, err := url.Parse(v.apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid etherscan API URL: %w", err)
	}
	q := endpoint.Query()
	q.Set("chainid", strconv.FormatUint(chainID, 10))
	for key, values := range query {
		q[key] = values
	}
	endpoint.RawQuery = q.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("etherscan request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("etherscan returned HTTP %d", resp.StatusCode)
	}
	var out etherscanResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode etherscan response: %w", err)
	}
	return &out, nil
}

func compilerVersion(info *models.BuildInfo) string {
	version := info.SolcLongVersion
	if version == "" {
		version = info.SolcVersion
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return version
}

func isAlreadyVerified(result string) bool {
	return strings.Contains(strings.ToLower(result), "already verified")
}

func contractURL(explorer, address string) string {
	if explorer == "" {
		return ""
	}
	return fmt.Sprintf("%s/address/%s#code", strings.TrimSuffix(explorer, "/"), address)
}

var _ usecase.ContractVerifier = (*EtherscanVerifier)(nil)
