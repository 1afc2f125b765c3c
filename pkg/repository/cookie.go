package repository

import (
	"context"
	"crypto/sha256"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/gorilla/securecookie"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

// cookieFileName is the securecookie name the jar file is encoded under
const cookieFileName = "memberctl-cookies"

// CookieJar implements CredentialStore on an HTTP cookie jar scoped to the
// web front. The same jar is handed to the HTTP client, so cookies set by
// the server (csrftoken) are readable here and values stored here are sent
// with web requests. When a file and a secret are configured, the jar is
// persisted between invocations, encrypted with securecookie.
type CookieJar struct {
	mu    sync.Mutex
	base  *url.URL
	jar   *cookiejar.Jar
	path  string
	codec *securecookie.SecureCookie
}

// CookieJarOption configures a CookieJar store
type CookieJarOption func(*CookieJar)

// WithCookieFile persists the jar to path, encrypted with a key derived
// from secret. Without a secret the jar is kept in memory only.
func WithCookieFile(path, secret string) CookieJarOption {
	return func(c *CookieJar) {
		c.path = path
		if secret == "" {
			return
		}
		hashKey := sha256.Sum256([]byte("hash:" + secret))
		blockKey := sha256.Sum256([]byte("block:" + secret))
		c.codec = securecookie.New(hashKey[:], blockKey[:]).
			SetSerializer(securecookie.JSONEncoder{}).
			MaxAge(0).
			MaxLength(0)
	}
}

// NewCookieJar creates a cookie store for the site at baseURL and loads the
// persisted jar when one exists
func NewCookieJar(ctx context.Context, baseURL string, opts ...CookieJarOption) (*CookieJar, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, goerr.New("invalid cookie base URL", goerr.V("url", baseURL))
	}
	// Cookies are scoped to the site root
	base := &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create cookie jar")
	}

	c := &CookieJar{base: base, jar: jar}
	for _, opt := range opts {
		opt(c)
	}

	if c.path != "" && c.codec == nil {
		ctxlog.From(ctx).Warn("Cookie secret is not set, cookies will not be persisted",
			"file", c.path,
		)
	}

	if err := c.load(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Jar returns the cookie jar to be shared with the HTTP client
func (c *CookieJar) Jar() http.CookieJar {
	return c.jar
}

// Get returns the value of the cookie named name, or an empty string
func (c *CookieJar) Get(ctx context.Context, name types.CredentialName) (string, error) {
	if name == "" {
		return "", goerr.New("credential name is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, cookie := range c.jar.Cookies(c.base) {
		if cookie.Name == name.String() {
			return cookie.Value, nil
		}
	}
	return "", nil
}

// Set stores value as a site-wide cookie and persists the jar. An empty
// value removes the cookie.
func (c *CookieJar) Set(ctx context.Context, name types.CredentialName, value string) error {
	if name == "" {
		return goerr.New("credential name is empty")
	}
	if value == "" {
		return c.Delete(ctx, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.jar.SetCookies(c.base, []*http.Cookie{{Name: name.String(), Value: value, Path: "/"}})
	return c.save()
}

// Delete expires the cookie named name and persists the jar
func (c *CookieJar) Delete(ctx context.Context, name types.CredentialName) error {
	if name == "" {
		return goerr.New("credential name is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.jar.SetCookies(c.base, []*http.Cookie{{Name: name.String(), Path: "/", MaxAge: -1}})
	return c.save()
}

// Save persists the jar, including cookies set by the server since the
// last write
func (c *CookieJar) Save(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save()
}

func (c *CookieJar) save() error {
	if c.path == "" || c.codec == nil {
		return nil
	}

	values := make(map[string]string)
	for _, cookie := range c.jar.Cookies(c.base) {
		values[cookie.Name] = cookie.Value
	}

	encoded, err := c.codec.Encode(cookieFileName, values)
	if err != nil {
		return goerr.Wrap(err, "failed to encode cookie jar")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return goerr.Wrap(err, "failed to create cookie directory", goerr.V("file", c.path))
	}
	if err := os.WriteFile(c.path, []byte(encoded), 0o600); err != nil {
		return goerr.Wrap(err, "failed to write cookie file", goerr.V("file", c.path))
	}
	return nil
}

func (c *CookieJar) load(ctx context.Context) error {
	if c.path == "" || c.codec == nil {
		return nil
	}

	raw, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return goerr.Wrap(err, "failed to read cookie file", goerr.V("file", c.path))
	}

	var values map[string]string
	if err := c.codec.Decode(cookieFileName, string(raw), &values); err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			// A changed secret or a corrupted file starts a fresh jar
			ctxlog.From(ctx).Warn("Cookie file cannot be decoded, starting with an empty jar",
				"file", c.path,
				"error", err,
			)
			return nil
		}
		return goerr.Wrap(err, "failed to decode cookie file", goerr.V("file", c.path))
	}

	cookies := make([]*http.Cookie, 0, len(values))
	for name, value := range values {
		cookies = append(cookies, &http.Cookie{Name: name, Value: value, Path: "/"})
	}
	c.jar.SetCookies(c.base, cookies)
	return nil
}
