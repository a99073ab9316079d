package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/callscore"
	main "github.com/fwojciec/callscore/cmd/callscore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongBody = `{"consensus":{"overall_score":8,"verdict":"Strong","confidence":"High","recommendation":"Buy","red_flags":["None detected"]},"detailed_analysis":{"revenue":{"score":9,"verdict":"Excellent","highlights":["Grew 12%"]}}}`

// writeFile creates a file with the given content in a temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// analysisService starts a fake analysis service that answers every
// analyze request with the given status and body and records the text it
// received.
func analysisService(t *testing.T, status int, body string) (*httptest.Server, <-chan string) {
	t.Helper()
	received := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/analyze" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req callscore.AnalysisRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		select {
		case received <- req.Text:
		default:
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts, received
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = main.NewMain().Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestMain_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("renders report for plain-text transcript", func(t *testing.T) {
		t.Parallel()

		ts, received := analysisService(t, http.StatusOK, strongBody)
		path := writeFile(t, "q3.txt", "Q3 revenue grew 12%...")

		stdout, stderr, err := run(t, "--endpoint", ts.URL, "analyze", path)

		require.NoError(t, err)
		assert.Equal(t, "Q3 revenue grew 12%...", <-received)
		assert.Contains(t, stdout, "Overall Score: 8/10")
		assert.Contains(t, stdout, "[+] Revenue: 9/10 - Excellent")
		assert.Contains(t, stdout, "No Red Flags Detected")
		assert.Contains(t, stderr, "File loaded: q3.txt")
		assert.Contains(t, stderr, callscore.TriggerLoadingLabel)
		assert.NotContains(t, stderr, "error:")
	})

	t.Run("server error is surfaced and no report is rendered", func(t *testing.T) {
		t.Parallel()

		ts, _ := analysisService(t, http.StatusInternalServerError, "internal error")
		path := writeFile(t, "q3.txt", "text")

		stdout, stderr, err := run(t, "--endpoint", ts.URL, "analyze", path)

		require.Error(t, err)
		assert.Equal(t, callscore.ESERVER, callscore.ErrorCode(err))
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "500")
		assert.Contains(t, stderr, "internal error")
	})

	t.Run("invalid structure shows raw payload", func(t *testing.T) {
		t.Parallel()

		ts, _ := analysisService(t, http.StatusOK, `{"error":"quota"}`)
		path := writeFile(t, "q3.txt", "text")

		stdout, _, err := run(t, "--endpoint", ts.URL, "analyze", path)

		require.NoError(t, err)
		assert.Contains(t, stdout, "Error: Invalid response structure")
		assert.Contains(t, stdout, `"error": "quota"`)
	})

	t.Run("markdown format", func(t *testing.T) {
		t.Parallel()

		ts, _ := analysisService(t, http.StatusOK, strongBody)
		path := writeFile(t, "q3.txt", "text")

		stdout, _, err := run(t, "--endpoint", ts.URL, "analyze", "--format", "markdown", path)

		require.NoError(t, err)
		assert.Contains(t, stdout, "## Agent Breakdown")
		assert.Contains(t, stdout, "- Grew 12%")
	})

	t.Run("html format", func(t *testing.T) {
		t.Parallel()

		ts, _ := analysisService(t, http.StatusOK, strongBody)
		path := writeFile(t, "q3.txt", "text")

		stdout, _, err := run(t, "--endpoint", ts.URL, "analyze", "-f", "html", path)

		require.NoError(t, err)
		assert.Contains(t, stdout, `<div class="agent-card tier-positive">`)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "q3.txt", "text")

		_, stderr, err := run(t, "analyze", "--format", "yaml", path)

		require.Error(t, err)
		assert.Equal(t, callscore.EINVALID, callscore.ErrorCode(err))
		assert.Contains(t, stderr, "unknown format")
	})

	t.Run("corrupt pdf alerts without calling the service", func(t *testing.T) {
		t.Parallel()

		ts, received := analysisService(t, http.StatusOK, strongBody)
		path := writeFile(t, "q3.pdf", "%PDF-1.4 garbage")

		_, stderr, err := run(t, "--endpoint", ts.URL, "analyze", path)

		require.Error(t, err)
		assert.Equal(t, callscore.EEXTRACT, callscore.ErrorCode(err))
		assert.Contains(t, stderr, "Could not read file")
		assert.Empty(t, received)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		ts, _ := analysisService(t, http.StatusOK, strongBody)
		endpoint := ts.URL
		ts.Close()
		path := writeFile(t, "q3.txt", "text")

		_, stderr, err := run(t, "--endpoint", endpoint, "analyze", path)

		require.Error(t, err)
		assert.Equal(t, callscore.ETRANSPORT, callscore.ErrorCode(err))
		assert.Contains(t, stderr, "Analysis failed:")
	})

	t.Run("config file supplies endpoint and format", func(t *testing.T) {
		t.Parallel()

		ts, _ := analysisService(t, http.StatusOK, strongBody)
		config := writeFile(t, "callscore.yaml", fmt.Sprintf("endpoint: %s\nformat: markdown\ntimeout: 10s\n", ts.URL))
		path := writeFile(t, "q3.txt", "text")

		stdout, _, err := run(t, "--config", config, "analyze", path)

		require.NoError(t, err)
		assert.Contains(t, stdout, "## Agent Breakdown")
	})
}

func TestMain_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prints plain text verbatim", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "q3.txt", "Line one\nLine two\n")

		stdout, _, err := run(t, "extract", path)

		require.NoError(t, err)
		assert.Equal(t, "Line one\nLine two\n", stdout)
	})

	t.Run("missing file is rejected by the parser", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "extract", filepath.Join(t.TempDir(), "missing.txt"))

		require.Error(t, err)
	})
}

func TestMain_Service(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/health":
			_, _ = io.WriteString(w, `{"status":"ok","components":{"revenue":"ready","management":"ready"}}`)
		case "/api/samples":
			_, _ = io.WriteString(w, `{"count":1,"samples":[{"key":"acme-q3","company":"Acme","overall_score":7.5}]}`)
		case "/api/sample/acme-q3":
			_, _ = io.WriteString(w, strongBody)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(ts.Close)

	t.Run("health", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "--endpoint", ts.URL, "health")

		require.NoError(t, err)
		assert.Equal(t, "status: ok\n  management: ready\n  revenue: ready\n", stdout)
	})

	t.Run("samples", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "--endpoint", ts.URL, "samples")

		require.NoError(t, err)
		assert.Equal(t, "acme-q3  Acme  7.5/10\n", stdout)
	})

	t.Run("sample", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "--endpoint", ts.URL, "sample", "acme-q3")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Overall Score: 8/10")
	})

	t.Run("unknown sample", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "--endpoint", ts.URL, "sample", "nope")

		require.Error(t, err)
		assert.Equal(t, callscore.ENOTFOUND, callscore.ErrorCode(err))
		assert.Contains(t, stderr, "error:")
	})
}

func TestMain_Serve(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	var stdout, stderr bytes.Buffer
	go func() {
		done <- main.NewMain().Run(ctx, []string{"serve", "--addr", "127.0.0.1:0"}, &stdout, &stderr)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop after cancellation")
	}
	assert.Contains(t, stdout.String(), "Serving on http://127.0.0.1:")
}

func TestMain_Usage(t *testing.T) {
	t.Parallel()

	t.Run("no arguments is an error", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t)

		require.Error(t, err)
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "--help")

		require.NoError(t, err)
		assert.Contains(t, stdout, "analyze")
	})

	t.Run("invalid config file", func(t *testing.T) {
		t.Parallel()

		config := writeFile(t, "callscore.yaml", "endpont: http://typo\n")

		_, stderr, err := run(t, "--config", config, "health")

		require.Error(t, err)
		assert.Contains(t, stderr, "invalid config")
	})
}
