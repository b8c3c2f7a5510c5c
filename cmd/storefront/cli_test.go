package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	backpack := map[string]any{"id": 1, "title": "Fjallraven Backpack", "price": 109.95, "category": "men's clothing"}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Username, Password string }
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != "83r5^_" {
			http.Error(w, "username or password is incorrect", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "abc"})
	})
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]any{backpack})
	})
	mux.HandleFunc("GET /products/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(backpack)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type runner struct {
	t    *testing.T
	base []string
}

func (r runner) run(stdin string, args ...string) (int, string, string) {
	r.t.Helper()

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), append(append([]string{}, args...), r.base...),
		strings.NewReader(stdin), &stdout, &stderr)
	return code, strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String())
}

func TestCLI_Session(t *testing.T) {
	srv := fakeAPI(t)
	r := runner{t: t, base: []string{
		"--store", "file",
		"--file", filepath.Join(t.TempDir(), "storage.json"),
		"--api-url", srv.URL,
		"--log-level", "error",
	}}

	code, _, errOut := r.run("", "cart")
	assert.Equal(t, 1, code)
	assert.Equal(t, "You must be logged in to view this page", errOut)

	code, _, errOut = r.run("", "login", "mor_2314", "nope")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Username or password is incorrect", errOut)

	code, out, _ := r.run("83r5^_\n", "login", "mor_2314")
	require.Equal(t, 0, code)
	assert.Equal(t, "Logged in as mor_2314", out)

	code, out, _ = r.run("", "whoami")
	require.Equal(t, 0, code)
	assert.Equal(t, "Logged in as mor_2314", out)

	for range 2 {
		code, out, _ = r.run("", "cart", "add", "1")
		require.Equal(t, 0, code)
	}
	assert.Contains(t, out, "Total items: 2")

	code, out, _ = r.run("", "cart", "show")
	require.Equal(t, 0, code)
	assert.Equal(t, strings.Join([]string{
		"Fjallraven Backpack - Price: $109.95 - Quantity: 2",
		"Total items: 2",
		"Total price: $219.90",
	}, "\n"), out)

	code, _, errOut = r.run("", "cart", "add", "x")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)

	code, out, _ = r.run("", "lang", "fr")
	require.Equal(t, 0, code)
	assert.Equal(t, "Langue définie sur fr", out)

	code, out, _ = r.run("", "whoami")
	require.Equal(t, 0, code)
	assert.Equal(t, "Connecté en tant que mor_2314", out)

	code, out, _ = r.run("", "logout")
	require.Equal(t, 0, code)
	assert.Equal(t, "Vous êtes déconnecté", out)

	code, out, _ = r.run("", "whoami", "--lang", "en")
	require.Equal(t, 0, code)
	assert.Equal(t, "Not logged in", out)

	code, out, _ = r.run("", "logout", "--lang", "en")
	require.Equal(t, 0, code)
	assert.Equal(t, "You are already logged out", out)

	code, out, _ = r.run("", "cart", "add", "1", "--lang", "en")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Total items: 1")

	code, out, _ = r.run("", "logout", "--lang", "en")
	require.Equal(t, 0, code)
	assert.Equal(t, "You are already logged out", out)

	code, _, errOut = r.run("", "cart", "show", "--lang", "en")
	assert.Equal(t, 1, code)
	assert.Equal(t, "You must be logged in to view this page", errOut)
}

func TestCLI_Products(t *testing.T) {
	srv := fakeAPI(t)
	r := runner{t: t, base: []string{"--store", "memory", "--api-url", srv.URL, "--lang", "en", "--log-level", "error"}}

	code, out, _ := r.run("", "products", "--search", "BACK")
	require.Equal(t, 0, code)
	assert.Equal(t, "#1 Fjallraven Backpack (men's clothing) $109.95", out)

	code, out, _ = r.run("", "products", "--max-price", "10")
	require.Equal(t, 0, code)
	assert.Equal(t, "No products match your filters", out)

	code, _, errOut := r.run("", "products", "--max-price", "ten")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Please enter a valid maximum price", errOut)
}

func TestCLI_UnknownStore(t *testing.T) {
	code, _, errOut := runner{t: t}.run("", "whoami", "--store", "floppy")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown store backend")
}
