package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graphqlServer responds with a fixed body. httptest.NewTLSServer uses
// a self-signed certificate, which doubles as a check that insecure TLS
// handling works against the targets this client is built for.
func graphqlServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewRequiresURLAndKey(t *testing.T) {
	_, err := New("", "key")
	assert.Error(t, err)

	_, err = New("https://example.com", "")
	assert.Error(t, err)
}

func TestExecuteSendsAPIKeyHeader(t *testing.T) {
	var gotKey, gotContentType string
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"data": {"ok": true}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "secret-key", WithInsecureTLS())
	require.NoError(t, err)

	require.NoError(t, c.Execute(context.Background(), "query { ok }", nil, nil))
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
}

func TestExecuteReturnsData(t *testing.T) {
	srv := graphqlServer(t, `{"data": "x", "errors": null}`)

	c, err := New(srv.URL, "key", WithInsecureTLS())
	require.NoError(t, err)

	var out string
	require.NoError(t, c.Execute(context.Background(), "query {}", nil, &out))
	assert.Equal(t, "x", out)
}

func TestExecuteEmptyErrorListIsNotAnError(t *testing.T) {
	srv := graphqlServer(t, `{"data": "x", "errors": []}`)

	c, err := New(srv.URL, "key", WithInsecureTLS())
	require.NoError(t, err)

	var out string
	require.NoError(t, c.Execute(context.Background(), "query {}", nil, &out))
	assert.Equal(t, "x", out)
}

func TestExecuteNoDataAndNoErrors(t *testing.T) {
	srv := graphqlServer(t, `{"data": null, "errors": null}`)

	c, err := New(srv.URL, "key", WithInsecureTLS())
	require.NoError(t, err)

	err = c.Execute(context.Background(), "query {}", nil, nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestExecuteJoinsGraphQLErrorMessages(t *testing.T) {
	srv := graphqlServer(t, `{"data": "x", "errors": [{"message": "a"}, {"message": "b"}]}`)

	c, err := New(srv.URL, "key", WithInsecureTLS())
	require.NoError(t, err)

	err = c.Execute(context.Background(), "query {}", nil, nil)
	var gqlErr *GraphQLError
	require.ErrorAs(t, err, &gqlErr)
	assert.Contains(t, err.Error(), "a")
	assert.Contains(t, err.Error(), "b")
	assert.Equal(t, []string{"a", "b"}, gqlErr.Messages)
}

func TestExecuteMalformedBodyIsDecodeError(t *testing.T) {
	srv := graphqlServer(t, `{not json`)

	c, err := New(srv.URL, "key", WithInsecureTLS())
	require.NoError(t, err)

	err = c.Execute(context.Background(), "query {}", nil, nil)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestExecuteNetworkFailureIsTransportError(t *testing.T) {
	srv := graphqlServer(t, `{"data": {}}`)
	url := srv.URL
	srv.Close()

	c, err := New(url, "key", WithInsecureTLS())
	require.NoError(t, err)

	err = c.Execute(context.Background(), "query {}", nil, nil)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, url, transportErr.URL)
}

func TestSelfSignedCertificateRejectedWithoutOptIn(t *testing.T) {
	srv := graphqlServer(t, `{"data": {}}`)

	c, err := New(srv.URL, "key")
	require.NoError(t, err)

	err = c.Execute(context.Background(), "query {}", nil, nil)
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestExecuteHonorsTimeout(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data": {}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "key", WithInsecureTLS(), WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	err = c.Execute(context.Background(), "query {}", nil, nil)
	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}
