package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/microblog/platform/internal/api/metrics"
	"github.com/microblog/platform/internal/core/domain"
)

const defaultVerifyTimeout = 10 * time.Second

// RemoteVerifier delegates token verification to the auth service over
// HTTP. A 2xx response yields the identity, a non-2xx response means the
// token was rejected, and a transport failure is surfaced as
// domain.ErrDependencyUnavailable — the caller cannot tell whether the
// credential was actually bad, so it must not be reported as 401.
type RemoteVerifier struct {
	authBaseURL string
	client      *http.Client
}

// NewRemoteVerifier builds a RemoteVerifier against the auth service's
// base URL. timeout <= 0 falls back to 10s.
func NewRemoteVerifier(authBaseURL string, timeout time.Duration) *RemoteVerifier {
	if timeout <= 0 {
		timeout = defaultVerifyTimeout
	}
	return &RemoteVerifier{
		authBaseURL: authBaseURL,
		client:      &http.Client{Timeout: timeout},
	}
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (v *RemoteVerifier) Authenticate(ctx context.Context, header string) (*domain.Identity, error) {
	raw, err := bearerToken(header)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("remote", "unauthorized").Inc()
		return nil, err
	}

	payload, err := json.Marshal(verifyRequest{Token: raw})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.authBaseURL+"/auth/verify", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("remote", "unavailable").Inc()
		return nil, domain.ErrDependencyUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.TokenVerificationsTotal.WithLabelValues("remote", "invalid").Inc()
		return nil, domain.ErrInvalidToken
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.UserID == "" {
		metrics.TokenVerificationsTotal.WithLabelValues("remote", "invalid").Inc()
		return nil, domain.ErrInvalidToken
	}

	metrics.TokenVerificationsTotal.WithLabelValues("remote", "ok").Inc()
	return &domain.Identity{UserID: body.UserID, Email: body.Email}, nil
}
