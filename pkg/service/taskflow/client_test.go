package taskflow_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/taskflow/memberctl/pkg/domain/model"
	"github.com/taskflow/memberctl/pkg/domain/types"
	"github.com/taskflow/memberctl/pkg/repository"
	"github.com/taskflow/memberctl/pkg/service/taskflow"
)

type recorded struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	RequestID     string
	Referer       string
	Body          string
	CSRFCookie    string
}

type backend struct {
	mu       sync.Mutex
	requests []recorded
}

func (b *backend) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	rec := recorded{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
		RequestID:     r.Header.Get("X-Request-ID"),
		Referer:       r.Header.Get("Referer"),
		Body:          string(body),
	}
	if c, err := r.Cookie("csrftoken"); err == nil {
		rec.CSRFCookie = c.Value
	}

	b.mu.Lock()
	b.requests = append(b.requests, rec)
	b.mu.Unlock()
}

func (b *backend) last() recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[len(b.requests)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newBackend(t *testing.T) (*backend, *httptest.Server) {
	b := &backend{}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			b.record(req)
			next.ServeHTTP(w, req)
		})
	})

	r.Post("/api/auth/refresh/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"access": "new-access"})
	})
	r.Post("/api/auth/login/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"access":  "a",
			"refresh": "r",
			"user":    map[string]any{"id": 1, "username": "admin", "email": "admin@example.com"},
		})
	})
	r.Get("/api/projects/{projectID}/members/list/", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "projectID") == "404" {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Proyecto no encontrado"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"users": []map[string]any{
				{"id": 3, "username": "ana", "email": "ana@example.com"},
				{"id": "7", "username": "bob", "email": "bob@example.com"},
			},
		})
	})
	r.Post("/api/projects/{projectID}/members/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Miembro agregado exitosamente"})
	})
	r.Delete("/api/projects/{projectID}/members/{userID}/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "No tienes permisos"})
	})
	r.Get("/api/projects/{projectID}/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not json</html>"))
	})
	r.Get("/projects/", func(w http.ResponseWriter, req *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "server-csrf", Path: "/"})
		_, _ = w.Write([]byte("<html>projects</html>"))
	})
	r.Post("/projects/{projectID}/delete/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/projects/", http.StatusFound)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return b, srv
}

func newClient(t *testing.T, srv *httptest.Server, jar http.CookieJar) *taskflow.Client {
	client, err := taskflow.New(taskflow.Endpoints{
		API:  srv.URL + "/api/",
		Auth: srv.URL + "/api/auth",
		Web:  srv.URL,
	}, jar, taskflow.WithHTTPClient(srv.Client()))
	gt.NoError(t, err).Required()
	return client
}

func TestNewValidatesEndpoints(t *testing.T) {
	_, err := taskflow.New(taskflow.Endpoints{API: "https://x.example.com", Auth: "", Web: "https://x.example.com"}, nil)
	gt.Error(t, err)
}

func TestListCandidates(t *testing.T) {
	b, srv := newBackend(t)
	client := newClient(t, srv, nil)

	resp, err := client.ListCandidates(context.Background(), "token-1", "42")
	gt.NoError(t, err).Required()
	gt.True(t, resp.OK())
	gt.V(t, resp.Payload).NotNil()
	gt.True(t, resp.Payload.Succeeded())
	gt.A(t, resp.Payload.Users).Length(2)
	gt.Equal(t, types.UserID("3"), resp.Payload.Users[0].ID)
	gt.Equal(t, types.UserID("7"), resp.Payload.Users[1].ID)

	req := b.last()
	gt.Equal(t, http.MethodGet, req.Method)
	gt.Equal(t, "/api/projects/42/members/list/", req.Path)
	gt.Equal(t, "Bearer token-1", req.Authorization)
	gt.Equal(t, "application/json", req.ContentType)
	gt.False(t, req.RequestID == "")
}

func TestListCandidatesNotFound(t *testing.T) {
	_, srv := newBackend(t)
	client := newClient(t, srv, nil)

	resp, err := client.ListCandidates(context.Background(), "token", "404")
	gt.NoError(t, err).Required()
	gt.False(t, resp.OK())
	gt.Equal(t, http.StatusNotFound, resp.StatusCode)
	gt.Equal(t, "Proyecto no encontrado", resp.FailureText())
}

func TestAddMember(t *testing.T) {
	b, srv := newBackend(t)
	client := newClient(t, srv, nil)

	resp, err := client.AddMember(context.Background(), "token", "42", "7")
	gt.NoError(t, err).Required()
	gt.True(t, resp.OK())
	gt.True(t, resp.Payload.HasMarker([]string{"exitosamente"}))

	req := b.last()
	gt.Equal(t, http.MethodPost, req.Method)
	gt.Equal(t, "/api/projects/42/members/", req.Path)
	gt.Equal(t, `{"user_id":"7"}`, req.Body)
}

func TestRemoveMember(t *testing.T) {
	b, srv := newBackend(t)
	client := newClient(t, srv, nil)

	resp, err := client.RemoveMember(context.Background(), "token", "42", "7")
	gt.NoError(t, err).Required()
	gt.Equal(t, http.StatusForbidden, resp.StatusCode)
	gt.Equal(t, "No tienes permisos", resp.FailureText())

	req := b.last()
	gt.Equal(t, http.MethodDelete, req.Method)
	gt.Equal(t, "/api/projects/42/members/7/", req.Path)
}

func TestGetProjectUnparseableBody(t *testing.T) {
	_, srv := newBackend(t)
	client := newClient(t, srv, nil)

	resp, err := client.GetProject(context.Background(), "token", "42")
	gt.NoError(t, err).Required()
	gt.True(t, resp.OK())
	gt.V(t, resp.Payload).Nil()
	gt.Equal(t, "<html>not json</html>", string(resp.Body))
}

func TestRefresh(t *testing.T) {
	b, srv := newBackend(t)
	client := newClient(t, srv, nil)

	resp, err := client.Refresh(context.Background(), "refresh-1")
	gt.NoError(t, err).Required()
	gt.Equal(t, "new-access", resp.Payload.Access)

	req := b.last()
	gt.Equal(t, "/api/auth/refresh/", req.Path)
	gt.Equal(t, `{"refresh":"refresh-1"}`, req.Body)
	gt.Equal(t, "", req.Authorization)
}

func TestLogin(t *testing.T) {
	_, srv := newBackend(t)
	client := newClient(t, srv, nil)

	resp, err := client.Login(context.Background(), "admin", "secret")
	gt.NoError(t, err).Required()
	gt.Equal(t, "a", resp.Payload.Access)
	gt.Equal(t, "r", resp.Payload.Refresh)
	gt.V(t, resp.Payload.User).NotNil()
	gt.Equal(t, "admin", resp.Payload.User.Username)
}

func TestTransportError(t *testing.T) {
	_, srv := newBackend(t)
	client := newClient(t, srv, nil)
	srv.Close()

	_, err := client.ListCandidates(context.Background(), "token", "42")
	gt.Error(t, err)
	gt.B(t, goerr.HasTag(err, model.ErrTagTransport)).True()
}

func TestDeleteProjectWithSharedJar(t *testing.T) {
	ctx := context.Background()
	b, srv := newBackend(t)

	store, err := repository.NewCookieJar(ctx, srv.URL)
	gt.NoError(t, err).Required()
	client := newClient(t, srv, store.Jar())

	gt.NoError(t, client.PrimeCSRF(ctx))

	token, err := store.Get(ctx, types.CredentialCSRF)
	gt.NoError(t, err)
	gt.Equal(t, "server-csrf", token)

	nav, err := client.DeleteProject(ctx, token, "42")
	gt.NoError(t, err).Required()
	gt.Equal(t, http.StatusOK, nav.StatusCode)
	gt.Equal(t, srv.URL+"/projects/", nav.Location)

	var post recorded
	b.mu.Lock()
	for _, req := range b.requests {
		if req.Method == http.MethodPost && req.Path == "/projects/42/delete/" {
			post = req
		}
	}
	b.mu.Unlock()

	gt.Equal(t, "application/x-www-form-urlencoded", post.ContentType)
	gt.Equal(t, srv.URL+"/", post.Referer)
	gt.Equal(t, "server-csrf", post.CSRFCookie)
	form, err := url.ParseQuery(post.Body)
	gt.NoError(t, err)
	gt.Equal(t, "server-csrf", form.Get("csrfmiddlewaretoken"))
}
