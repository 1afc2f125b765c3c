package taskflow

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/interfaces"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

// maxBodySize bounds how much of a response body is read
const maxBodySize = 4 << 20

// Endpoints are the base URLs of the backend
type Endpoints struct {
	API  string // e.g. https://taskflow.example.com/api
	Auth string // e.g. https://taskflow.example.com/api/auth
	Web  string // e.g. https://taskflow.example.com
}

// Client talks to the TaskFlow API, auth and web endpoints
type Client struct {
	endpoints Endpoints
	api       *http.Client
	web       *http.Client
}

var _ interfaces.TaskflowClient = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the client used for JSON endpoints
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.api = hc
	}
}

// New creates a client. jar is shared with the cookie credential store so
// that the anti-forgery cookie set by the web front is paired with form
// submissions; nil gives the web client a jar of its own.
func New(endpoints Endpoints, jar http.CookieJar, opts ...Option) (*Client, error) {
	for name, raw := range map[string]string{"api": endpoints.API, "auth": endpoints.Auth, "web": endpoints.Web} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, goerr.New("invalid endpoint URL", goerr.V("endpoint", name), goerr.V("url", raw))
		}
	}

	c := &Client{
		endpoints: Endpoints{
			API:  strings.TrimRight(endpoints.API, "/"),
			Auth: strings.TrimRight(endpoints.Auth, "/"),
			Web:  strings.TrimRight(endpoints.Web, "/"),
		},
		api: cleanhttp.DefaultPooledClient(),
		web: cleanhttp.DefaultPooledClient(),
	}
	if jar == nil {
		// cookiejar.New fails only on a broken public suffix list, and none is given
		jar, _ = cookiejar.New(nil)
	}
	c.web.Jar = jar

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Login exchanges a username and password for a token pair
func (c *Client) Login(ctx context.Context, username, password string) (*model.APIResponse, error) {
	body := map[string]string{"username": username, "password": password}
	return c.doJSON(ctx, http.MethodPost, c.endpoints.Auth+"/login/", "", body)
}

// Refresh exchanges a refresh token for a new access token
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*model.APIResponse, error) {
	body := map[string]string{"refresh": refreshToken}
	return c.doJSON(ctx, http.MethodPost, c.endpoints.Auth+"/refresh/", "", body)
}

// ListCandidates fetches the users that can be added to the project
func (c *Client) ListCandidates(ctx context.Context, accessToken string, projectID types.ProjectID) (*model.APIResponse, error) {
	return c.doJSON(ctx, http.MethodGet, c.projectURL(projectID)+"members/list/", accessToken, nil)
}

// AddMember adds the user to the project
func (c *Client) AddMember(ctx context.Context, accessToken string, projectID types.ProjectID, userID types.UserID) (*model.APIResponse, error) {
	body := map[string]string{"user_id": userID.String()}
	return c.doJSON(ctx, http.MethodPost, c.projectURL(projectID)+"members/", accessToken, body)
}

// RemoveMember removes the user from the project
func (c *Client) RemoveMember(ctx context.Context, accessToken string, projectID types.ProjectID, userID types.UserID) (*model.APIResponse, error) {
	u := c.projectURL(projectID) + "members/" + url.PathEscape(userID.String()) + "/"
	return c.doJSON(ctx, http.MethodDelete, u, accessToken, nil)
}

// GetProject fetches the project with its owner and members
func (c *Client) GetProject(ctx context.Context, accessToken string, projectID types.ProjectID) (*model.APIResponse, error) {
	return c.doJSON(ctx, http.MethodGet, c.projectURL(projectID), accessToken, nil)
}

// PrimeCSRF visits the project list of the web front so that it issues the
// anti-forgery cookie into the jar
func (c *Client) PrimeCSRF(ctx context.Context) error {
	u := c.endpoints.Web + "/projects/"
	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.web.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch page", goerr.V("url", u), goerr.T(model.ErrTagTransport))
	}
	defer safeClose(ctx, resp.Body)
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	ctxlog.From(ctx).Debug("Primed anti-forgery cookie", "url", u, "status", resp.StatusCode)
	if resp.StatusCode >= 400 {
		return goerr.New("failed to fetch page",
			goerr.V("url", u),
			goerr.V("status", resp.StatusCode),
			goerr.T(model.ErrTagTransport),
		)
	}
	return nil
}

// DeleteProject submits the project deletion form of the web front and
// follows the redirect to the destination page
func (c *Client) DeleteProject(ctx context.Context, csrfToken string, projectID types.ProjectID) (*model.Navigation, error) {
	u := c.endpoints.Web + "/projects/" + url.PathEscape(projectID.String()) + "/delete/"
	form := url.Values{"csrfmiddlewaretoken": {csrfToken}}

	req, err := c.newRequest(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", c.endpoints.Web+"/")

	resp, err := c.web.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to submit form", goerr.V("url", u), goerr.T(model.ErrTagTransport))
	}
	defer safeClose(ctx, resp.Body)
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	nav := &model.Navigation{
		StatusCode: resp.StatusCode,
		Location:   resp.Request.URL.String(),
	}
	ctxlog.From(ctx).Debug("Submitted project deletion form",
		"url", u,
		"status", nav.StatusCode,
		"location", nav.Location,
	)
	return nav, nil
}

func (c *Client) projectURL(projectID types.ProjectID) string {
	return c.endpoints.API + "/projects/" + url.PathEscape(projectID.String()) + "/"
}

func (c *Client) newRequest(ctx context.Context, method, u string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", u))
	}
	req.Header.Set("X-Request-ID", types.NewRequestID().String())
	return req, nil
}

// doJSON sends a JSON request and decodes the response. A body that is not
// JSON leaves Payload nil; only a failure to get a response is an error.
func (c *Client) doJSON(ctx context.Context, method, u, accessToken string, body any) (*model.APIResponse, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to marshal request body", goerr.V("url", u))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.api.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "request failed",
			goerr.V("method", method),
			goerr.V("url", u),
			goerr.T(model.ErrTagTransport),
		)
	}
	defer safeClose(ctx, resp.Body)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body",
			goerr.V("url", u),
			goerr.T(model.ErrTagTransport),
		)
	}

	result := &model.APIResponse{
		StatusCode: resp.StatusCode,
		Body:       raw,
	}
	var payload model.Payload
	if err := json.Unmarshal(raw, &payload); err == nil {
		result.Payload = &payload
	}

	ctxlog.From(ctx).Debug("API response",
		"method", method,
		"url", u,
		"status", resp.StatusCode,
		"request_id", req.Header.Get("X-Request-ID"),
		"parsed", result.Payload != nil,
	)
	return result, nil
}

func safeClose(ctx context.Context, c io.Closer) {
	if err := c.Close(); err != nil {
		ctxlog.From(ctx).Warn("failed to close response body", "error", err)
	}
}
