package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_planner/planner"
)

func newTestServer(t *testing.T, llm planner.LLMClient) *httptest.Server {
	t.Helper()
	agent, err := planner.NewAgent(llm)
	require.NoError(t, err)
	srv, err := New(agent, nil)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAnalyzeBriefEndpoint(t *testing.T) {
	ts := newTestServer(t, planner.MockLLM{})

	resp := postJSON(t, ts.URL+"/api/content-planner/analyze-brief", planner.AnalyzeBriefRequest{
		SourceContent: "source", WorkingTitle: "title",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out planner.BriefResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.Brief)
	assert.NotEmpty(t, out.Brief.CoreMessage)
	assert.Empty(t, out.Error)
}

func TestAllStepEndpointsRespond(t *testing.T) {
	ts := newTestServer(t, planner.MockLLM{})
	paths := []string{
		"/api/content-planner/analyze-brief",
		"/api/content-planner/research-keywords",
		"/api/content-planner/research-audience",
		"/api/content-planner/analyze-competitors",
		"/api/content-planner/gather-sources",
		"/api/content-planner/generate-outline",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			resp := postJSON(t, ts.URL+path, map[string]string{"workingTitle": "t"})
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

type failingLLM struct{}

func (failingLLM) Complete(context.Context, planner.Prompt) (string, error) {
	return "", errors.New("model unavailable")
}

func TestGenerationFailureReturns502(t *testing.T) {
	ts := newTestServer(t, failingLLM{})

	resp := postJSON(t, ts.URL+"/api/content-planner/analyze-brief", planner.AnalyzeBriefRequest{})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "model unavailable", out["error"])
}

func TestBadJSONReturns400(t *testing.T) {
	ts := newTestServer(t, planner.MockLLM{})

	resp, err := http.Post(ts.URL+"/api/content-planner/analyze-brief", "application/json", strings.NewReader("{broken"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out["error"])
}

func TestGetMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, planner.MockLLM{})

	resp, err := http.Get(ts.URL + "/api/content-planner/analyze-brief")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestPreviewRendersMarkdown(t *testing.T) {
	ts := newTestServer(t, planner.MockLLM{})

	resp := postJSON(t, ts.URL+"/api/content-planner/preview", map[string]string{
		"markdown": "# Title\n\nSome **bold** text.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		HTML string `json:"html"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.HTML, "<h1>Title</h1>")
	assert.Contains(t, out.HTML, "<strong>bold</strong>")
}

func TestNewRequiresAgent(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}
