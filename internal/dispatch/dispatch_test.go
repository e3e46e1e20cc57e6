package dispatch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futdash/futdash/internal/apitest"
	"github.com/futdash/futdash/internal/credential"
	"github.com/futdash/futdash/internal/dispatch"
	"github.com/futdash/futdash/internal/notify"
)

type env struct {
	backend  *apitest.Server
	creds    *credential.Store
	notifier *notify.Recorder
	api      *dispatch.Dispatcher
}

func setup(t *testing.T) *env {
	t.Helper()

	backend := apitest.New()
	t.Cleanup(backend.Close)

	creds := credential.NewStore(filepath.Join(t.TempDir(), "credential.json"), 30*time.Minute)
	notifier := &notify.Recorder{}
	api := dispatch.New(backend.URL, creds, notifier)

	return &env{backend: backend, creds: creds, notifier: notifier, api: api}
}

// --- Outbound Interceptor Tests ---

func TestOutbound_NoCredentialNoAuthHeader(t *testing.T) {
	e := setup(t)
	e.backend.Seed("alice", "secret1", "alice@x.com", "Flamengo")

	var out map[string]any
	err := e.api.Post(context.Background(), "/users/login", map[string]string{
		"username": "alice",
		"password": "secret1",
	}, &out)
	require.NoError(t, err)

	assert.Empty(t, e.backend.LastAuthHeader, "no credential stored, so no Authorization header")
}

func TestOutbound_CredentialAttachedAsBearer(t *testing.T) {
	e := setup(t)
	e.backend.Seed("alice", "secret1", "alice@x.com", "Flamengo")
	token := e.backend.IssueToken("alice")
	_, err := e.creds.Save(token)
	require.NoError(t, err)

	var out map[string]any
	err = e.api.Get(context.Background(), "/users/me", &out)
	require.NoError(t, err)

	assert.Equal(t, "Bearer "+token, e.backend.LastAuthHeader)
}

func TestOutbound_RequestIDAttached(t *testing.T) {
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	creds := credential.NewStore(filepath.Join(t.TempDir(), "credential.json"), 30*time.Minute)
	api := dispatch.New(srv.URL, creds, notify.Discard)

	require.NoError(t, api.Get(context.Background(), "/anything", nil))
	assert.NotEmpty(t, gotRequestID)
}

func TestOutbound_CustomInterceptorRuns(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Custom")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	creds := credential.NewStore(filepath.Join(t.TempDir(), "credential.json"), 30*time.Minute)
	api := dispatch.New(srv.URL, creds, notify.Discard)
	api.Use(func(req *http.Request) error {
		req.Header.Set("X-Custom", "yes")
		return nil
	})

	require.NoError(t, api.Get(context.Background(), "/anything", nil))
	assert.Equal(t, "yes", gotHeader)
}

// --- Inbound Interceptor Tests ---

func TestInbound_401ClearsCredentialAndInvalidates(t *testing.T) {
	e := setup(t)
	e.backend.Seed("alice", "secret1", "alice@x.com", "Flamengo")
	token := e.backend.IssueToken("alice")
	_, err := e.creds.Save(token)
	require.NoError(t, err)

	invalidated := 0
	e.api.SetInvalidateHook(func() { invalidated++ })

	e.backend.RevokeAll()

	err = e.api.Get(context.Background(), "/teams/brasileirao", nil)
	require.Error(t, err)
	assert.True(t, dispatch.IsInvalidated(err))

	var apiErr *dispatch.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, dispatch.KindUnauthorized, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	cred, err := e.creds.Load()
	require.NoError(t, err)
	assert.Nil(t, cred, "401 must empty the credential slot")
	assert.Equal(t, 1, invalidated, "invalidation hook should fire once per failing call")
}

func TestInbound_Concurrent401sDoNotFail(t *testing.T) {
	e := setup(t)
	e.backend.Seed("alice", "secret1", "alice@x.com", "Flamengo")
	_, err := e.creds.Save(e.backend.IssueToken("alice"))
	require.NoError(t, err)
	e.backend.RevokeAll()

	e.api.SetInvalidateHook(func() {})

	// Both calls see a 401; the second clears an already-empty slot.
	err1 := e.api.Get(context.Background(), "/teams/brasileirao", nil)
	err2 := e.api.Get(context.Background(), "/indicadores", nil)

	assert.True(t, dispatch.IsInvalidated(err1))
	assert.True(t, dispatch.IsInvalidated(err2))
}

func TestInbound_ServerFaultNotifiesAndRejects(t *testing.T) {
	e := setup(t)
	e.backend.FailNext(http.StatusInternalServerError)

	err := e.api.Get(context.Background(), "/indicadores", nil)
	require.Error(t, err)

	var apiErr *dispatch.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, dispatch.KindServerFault, apiErr.Kind)
	assert.Len(t, e.notifier.Errors, 1, "server fault should emit one global notice")
	assert.False(t, dispatch.IsInvalidated(err))
}

func TestInbound_NotFoundNotifiesAndRejects(t *testing.T) {
	e := setup(t)
	e.backend.FailNext(http.StatusNotFound)

	err := e.api.Get(context.Background(), "/indicadores", nil)
	require.Error(t, err)

	var apiErr *dispatch.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, dispatch.KindNotFound, apiErr.Kind)
	assert.Len(t, e.notifier.Errors, 1)
}

func TestInbound_TransportFailureNotifiesAndRejects(t *testing.T) {
	e := setup(t)
	e.backend.Close()

	err := e.api.Get(context.Background(), "/indicadores", nil)
	require.Error(t, err)

	var apiErr *dispatch.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, dispatch.KindTransport, apiErr.Kind)
	assert.Zero(t, apiErr.Status)
	assert.Len(t, e.notifier.Errors, 1)

	cred, loadErr := e.creds.Load()
	require.NoError(t, loadErr)
	assert.Nil(t, cred, "slot was empty and must stay empty")
}

func TestInbound_RejectionCarriesBackendDetail(t *testing.T) {
	e := setup(t)
	e.backend.Seed("alice", "secret1", "alice@x.com", "Flamengo")

	err := e.api.Post(context.Background(), "/users/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	}, nil)
	require.Error(t, err)

	var apiErr *dispatch.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, dispatch.KindRejected, apiErr.Kind)
	assert.Equal(t, "invalid credentials", apiErr.Detail)
	assert.Empty(t, e.notifier.Errors, "business rejections are surfaced inline, not globally")
}

// --- Error Helper Tests ---

func TestDetail_FallsBackWhenNoBackendMessage(t *testing.T) {
	err := &dispatch.APIError{Kind: dispatch.KindTransport}
	assert.Equal(t, "unable to log in", dispatch.Detail(context.DeadlineExceeded, "unable to log in"))
	assert.Equal(t, "request failed", err.Error())
}

func TestDetail_PrefersBackendMessage(t *testing.T) {
	err := &dispatch.APIError{Kind: dispatch.KindRejected, Status: 400, Detail: "invalid credentials"}
	assert.Equal(t, "invalid credentials", dispatch.Detail(err, "fallback"))
	assert.Equal(t, "invalid credentials", err.Error())
}
