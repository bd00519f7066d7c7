package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TurnstileContactAction is the action name the contact form widget is rendered with.
const TurnstileContactAction = "contact"

// turnstileVerifyURL is a variable so tests can point it at a local server
var turnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

var turnstileClient = &http.Client{Timeout: 10 * time.Second}

// ErrTurnstileRejected is returned when Cloudflare answers but does not accept the token.
var ErrTurnstileRejected = errors.New("turnstile challenge rejected")

type TurnstileResponse struct {
	Success     bool      `json:"success"`
	ChallengeTS time.Time `json:"challenge_ts"`
	Hostname    string    `json:"hostname"`
	Action      string    `json:"action"`
	ErrorCodes  []string  `json:"error-codes"`
}

// TurnstileCheck is one siteverify request.
type TurnstileCheck struct {
	Token  string
	Secret string
	IP     string
	// Action, when set, must match the action reported by Cloudflare.
	Action string
}

// VerifyTurnstile verifies a challenge token with Cloudflare. It reports true
// only for an accepted token; rejected tokens return ErrTurnstileRejected.
func VerifyTurnstile(ctx context.Context, check TurnstileCheck) (bool, error) {
	if check.Token == "" || check.Secret == "" {
		return false, fmt.Errorf("%w: missing token or secret key", ErrTurnstileRejected)
	}

	form := url.Values{
		"secret":   {check.Secret},
		"response": {check.Token},
	}
	if check.IP != "" {
		form.Set("remoteip", check.IP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, turnstileVerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to build turnstile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := turnstileClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("turnstile verification returned status %d", resp.StatusCode)
	}

	var result TurnstileResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to decode turnstile response: %w", err)
	}

	if !result.Success {
		return false, fmt.Errorf("%w, error codes: %v", ErrTurnstileRejected, result.ErrorCodes)
	}
	if check.Action != "" && result.Action != "" && result.Action != check.Action {
		return false, fmt.Errorf("%w: action %q, want %q", ErrTurnstileRejected, result.Action, check.Action)
	}

	return true, nil
}
