package credential

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TwilioClient requests scoped TURN credentials from the Twilio Network
// Traversal Service.
type TwilioClient struct {
	baseURL    string
	accountSID string
	authToken  string
	client     *http.Client
}

// NewTwilioClient returns a client for the given account, or nil when either
// credential is blank so callers can treat the vendor as absent.
func NewTwilioClient(accountSID, authToken string) *TwilioClient {
	if accountSID == "" || authToken == "" {
		return nil
	}
	return &TwilioClient{
		baseURL:    "https://api.twilio.com",
		accountSID: accountSID,
		authToken:  authToken,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Twilio returns ttl as a string and date_created in RFC 1123 form.
type twilioTokenResponse struct {
	Username   string      `json:"username"`
	Password   string      `json:"password"`
	TTL        string      `json:"ttl"`
	ICEServers []ICEServer `json:"ice_servers"`
}

// CreateToken mints TURN credentials valid for ttl seconds.
func (c *TwilioClient) CreateToken(ctx context.Context, ttl int) (*TURNCredentials, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Tokens.json", c.baseURL, c.accountSID)
	form := url.Values{}
	form.Set("Ttl", strconv.Itoa(ttl))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build twilio token request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twilio token request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read twilio token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("twilio tokens API error (status %d): %s", resp.StatusCode, string(data))
	}

	var token twilioTokenResponse
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("decode twilio token: %w", err)
	}

	grantedTTL := ttl
	if n, err := strconv.Atoi(token.TTL); err == nil && n > 0 {
		grantedTTL = n
	}

	urls := make([]string, 0, len(token.ICEServers))
	seen := make(map[string]bool)
	for _, srv := range token.ICEServers {
		for _, u := range append([]string{srv.URL}, srv.URLs...) {
			if u != "" && !seen[u] {
				seen[u] = true
				urls = append(urls, u)
			}
		}
	}

	return &TURNCredentials{
		Username:   token.Username,
		Password:   token.Password,
		TTL:        grantedTTL,
		Expiration: time.Now().Add(time.Duration(grantedTTL) * time.Second).Unix(),
		URLs:       urls,
		ICEServers: token.ICEServers,
	}, nil
}
