package board

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Mergington-Activities/src/models"

	"github.com/tidwall/gjson"
)

// Gateway is the board's view of the activities API.
type Gateway interface {
	ListActivities(ctx context.Context) (*models.Activities, error)
	// Signup returns the server message on success (possibly empty).
	Signup(ctx context.Context, activity, email string) (string, error)
	// RemoveParticipant returns the server message on success (possibly empty).
	RemoveParticipant(ctx context.Context, activity, email string) (string, error)
}

// HTTPGateway talks to the activities API over HTTP.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGateway(baseURL string, timeout time.Duration) (*HTTPGateway, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", baseURL)
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (g *HTTPGateway) ListActivities(ctx context.Context) (*models.Activities, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/activities", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read activities: %w", err)
	}
	activities := models.NewActivities()
	if err := activities.UnmarshalJSON(body); err != nil {
		return nil, err
	}
	return activities, nil
}

func (g *HTTPGateway) Signup(ctx context.Context, activity, email string) (string, error) {
	return g.mutate(ctx, http.MethodPost, g.activityURL(activity, "signup", email))
}

func (g *HTTPGateway) RemoveParticipant(ctx context.Context, activity, email string) (string, error) {
	return g.mutate(ctx, http.MethodDelete, g.activityURL(activity, "participants", email))
}

func (g *HTTPGateway) activityURL(activity, action, email string) string {
	return g.baseURL + "/activities/" + url.PathEscape(activity) + "/" + action +
		"?email=" + url.QueryEscape(email)
}

// mutate sends a body-less request and reads "message"/"detail" from the JSON
// reply. A reply that is not JSON is reported as a plain error, whatever the status.
func (g *HTTPGateway) mutate(ctx context.Context, method, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("invalid JSON in %d response", res.StatusCode)
	}
	reply := gjson.ParseBytes(body)
	message := stringField(reply, "message")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &StatusError{Code: res.StatusCode, Detail: stringField(reply, "detail"), Message: message}
	}
	return message, nil
}

// stringField ignores non-string values, such as the list form of "detail".
func stringField(reply gjson.Result, key string) string {
	if v := reply.Get(key); v.Type == gjson.String {
		return v.Str
	}
	return ""
}
