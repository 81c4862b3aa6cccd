package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/siegecord/r6-bot-discord/internal/domain/stats"
	apperrors "github.com/siegecord/r6-bot-discord/internal/errors"
	"github.com/siegecord/r6-bot-discord/internal/uuid"
)

const defaultBaseURL = "https://api.tracker.gg/api/v2/r6siege/standard"

type client struct {
	httpClient *http.Client
	baseURL    string
	requestID  uuid.Generator
}

// Config holds configuration for the tracker client
type Config struct {
	HttpClient *http.Client
	BaseURL    string         // Optional, defaults to the public tracker.gg endpoint
	RequestID  uuid.Generator // Optional, used for outbound request correlation
}

// New creates a tracker.gg API client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperrors.Validation("cfg is required")
	}
	if cfg.HttpClient == nil {
		return nil, apperrors.Validation("cfg.HttpClient is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	requestID := cfg.RequestID
	if requestID == nil {
		requestID = uuid.NewGoogleUUIDGenerator()
	}

	return &client{
		httpClient: cfg.HttpClient,
		baseURL:    baseURL,
		requestID:  requestID,
	}, nil
}

// profileResponse mirrors the slice of the tracker.gg payload we need
type profileResponse struct {
	Data struct {
		Segments []segment `json:"segments"`
	} `json:"data"`
}

type segment struct {
	Type  string `json:"type"`
	Stats struct {
		RankedRating *statValue `json:"rankedRating"`
		KD           *statValue `json:"kd"`
		SeasonalKD   *statValue `json:"seasonalKd"`
		SeasonalRank *statValue `json:"seasonalRank"`
	} `json:"stats"`
}

type statValue struct {
	Value        *float64 `json:"value"`
	DisplayValue string   `json:"displayValue"`
}

// Profile implements Client.Profile
func (c *client) Profile(ctx context.Context, username string) (*stats.Record, error) {
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}

	endpoint := fmt.Sprintf("%s/profile/ubi/%s", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build profile request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", c.requestID.New())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnknown, "profile request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return nil, apperrors.NotFoundf("no profile for username %q", username)
	case http.StatusTooManyRequests:
		return nil, apperrors.RateLimited("tracker.gg is rate limiting requests")
	default:
		return nil, apperrors.Newf(apperrors.CodeUnknown, "unexpected status %d from tracker.gg", resp.StatusCode)
	}

	var payload profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnknown, "failed to decode profile response")
	}

	return recordFromPayload(&payload), nil
}

// recordFromPayload normalizes the overview segment into a stats
// record. Any stat the payload does not carry stays unreported.
func recordFromPayload(payload *profileResponse) *stats.Record {
	record := &stats.Record{
		MaxRank:     stats.NotReported(),
		LifetimeKD:  stats.NotReported(),
		CurrentKD:   stats.NotReported(),
		CurrentRank: stats.NotReported(),
	}

	for _, seg := range payload.Data.Segments {
		if seg.Type != "overview" {
			continue
		}
		record.MaxRank = fromValue(seg.Stats.RankedRating)
		record.LifetimeKD = fromDisplayValue(seg.Stats.KD)
		record.CurrentKD = fromDisplayValue(seg.Stats.SeasonalKD)
		record.CurrentRank = fromValue(seg.Stats.SeasonalRank)
		break
	}

	return record
}

func fromValue(v *statValue) stats.Stat {
	if v == nil || v.Value == nil {
		return stats.NotReported()
	}
	return stats.Numeric(*v.Value)
}

func fromDisplayValue(v *statValue) stats.Stat {
	if v == nil {
		return stats.NotReported()
	}
	parsed, err := strconv.ParseFloat(v.DisplayValue, 64)
	if err != nil {
		// Some profiles report display values like "-"; treat them
		// the same as a missing stat.
		return stats.NotReported()
	}
	return stats.Numeric(parsed)
}
