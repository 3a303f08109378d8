package translate_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingualearn/linguaflash/internal/translate"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *translate.HTTPClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, translate.New(translate.WithBaseURL(srv.URL))
}

func TestTranslate_Success(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get", r.URL.Path)
		assert.Equal(t, "hello", r.URL.Query().Get("q"))
		assert.Equal(t, "en|uk", r.URL.Query().Get("langpair"))
		fmt.Fprint(w, `{"responseStatus":200,"responseData":{"translatedText":"привіт"}}`)
	})

	translated, err := client.Translate(context.Background(), "hello", "en", "uk")

	require.NoError(t, err)
	assert.Equal(t, "привіт", translated)
}

func TestTranslate_EchoedInputMeansNotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"responseStatus":200,"responseData":{"translatedText":"xyzzy"}}`)
	})

	translated, err := client.Translate(context.Background(), "XYZZY", "en", "uk")

	require.NoError(t, err)
	assert.Empty(t, translated, "an echoed query is treated as no translation")
}

func TestTranslate_APIError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"responseStatus":"403","responseDetails":"invalid language pair"}`)
	})

	_, err := client.Translate(context.Background(), "hello", "en", "zz")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid language pair")
}

func TestTranslate_HTTPError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Translate(context.Background(), "hello", "en", "uk")

	require.Error(t, err)
}

func TestTranslate_EmptyTextShortCircuits(t *testing.T) {
	called := false
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	translated, err := client.Translate(context.Background(), "", "en", "uk")

	require.NoError(t, err)
	assert.Empty(t, translated)
	assert.False(t, called, "no request is made for empty input")
}
