package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hitanshu04/coldleads-ai/internal/config"
	"github.com/hitanshu04/coldleads-ai/internal/lead"
	"github.com/hitanshu04/coldleads-ai/internal/search"
)

func postLead(t *testing.T, serverURL string, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(serverURL+"/generate-lead", "application/json", bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	return resp
}

func TestGenerateLead_MissingCredentials(t *testing.T) {
	server := newTestServer(t, NewCapabilities(config.Config{}), config.Config{})
	defer server.Close()

	resp := postLead(t, server.URL, `{"url": "https://example.com"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestGenerateLead_InvalidURL(t *testing.T) {
	server := newTestServer(t, NewStaticCapabilities(&MockSearchProvider{}, &MockGenerator{}), config.Config{})
	defer server.Close()

	for _, body := range []string{
		`{"url": "not a url"}`,
		`{"url": "example.com"}`,
		`{"url": "ftp://example.com"}`,
		`{"url": ""}`,
		`{}`,
		`not json`,
	} {
		resp := postLead(t, server.URL, body)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "body: %s", body)
		resp.Body.Close()
	}
}

func TestGenerateLead_AllProvidersDegraded(t *testing.T) {
	searcher := &MockSearchProvider{}
	searcher.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return([]search.Result{}, nil)
	generator := &MockGenerator{}
	generator.On("Generate", mock.Anything, mock.Anything).
		Return("", errors.New("quota exceeded"))

	cfg := config.Config{SenderName: "Hitanshu", SenderRole: "GenAI engineer"}
	server := newTestServer(t, NewStaticCapabilities(searcher, generator), cfg)
	defer server.Close()

	resp := postLead(t, server.URL, `{"url": "https://www.brightforge.ai"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payload lead.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, lead.DefaultContactName, payload.CTO)
	require.Equal(t, lead.DefaultPulse, payload.CompanyPulse)
	require.NotEmpty(t, payload.EmailDraft)
	require.Contains(t, payload.EmailDraft, "Hi The Hiring Manager,")
	require.Contains(t, payload.EmailDraft, "Brightforge's recent updates regarding "+lead.DefaultPulse)
	require.Contains(t, payload.EmailDraft, "Best,\nHitanshu")
}

func TestGenerateLead_ExtractsContact(t *testing.T) {
	searcher := &MockSearchProvider{}
	searcher.On("Search", mock.Anything, "site:https://brightforge.ai", mock.Anything).
		Return([]search.Result{}, nil)
	searcher.On("Search", mock.Anything, "CTO of Brightforge LinkedIn", search.Options{MaxResults: 4}).
		Return([]search.Result{{Content: "Jane Doe is the CTO of Brightforge."}}, nil)
	searcher.On("Search", mock.Anything, mock.Anything, search.Options{MaxResults: 3, Topic: search.TopicNews}).
		Return([]search.Result{{Content: "Brightforge shipped an agent platform."}}, nil)
	generator := &MockGenerator{}
	generator.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Extract the full name of the CTO")
	})).Return("Jane Doe", nil)
	generator.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Write a short, punchy cold email")
	})).Return("Hi Jane, congrats on the agent platform launch.", nil)

	cfg := config.Config{SenderName: "Hitanshu", SenderRole: "GenAI engineer"}
	server := newTestServer(t, NewStaticCapabilities(searcher, generator), cfg)
	defer server.Close()

	resp := postLead(t, server.URL, `{"url": "https://brightforge.ai"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payload lead.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "Jane Doe", payload.CTO)
	require.Equal(t, "Brightforge shipped an agent platform.", payload.CompanyPulse)
	require.Equal(t, "Hi Jane, congrats on the agent platform launch.", payload.EmailDraft)
}

func TestIsAbsoluteURL(t *testing.T) {
	require.True(t, isAbsoluteURL("https://example.com"))
	require.True(t, isAbsoluteURL("http://example.com/path"))
	require.False(t, isAbsoluteURL("example.com"))
	require.False(t, isAbsoluteURL("ftp://example.com"))
	require.False(t, isAbsoluteURL("https://"))
	require.False(t, isAbsoluteURL(""))
}
