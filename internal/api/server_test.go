// File path: internal/api/server_test.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/bizdocai/bizdoc/internal/export"
	"github.com/bizdocai/bizdoc/internal/generator"
	"github.com/bizdocai/bizdoc/internal/model"
	"github.com/bizdocai/bizdoc/internal/state"
	"github.com/bizdocai/bizdoc/internal/store"
	"github.com/bizdocai/bizdoc/internal/template"
)

type memRecorder struct {
	records map[string]string
}

func newMemRecorder() *memRecorder {
	return &memRecorder{records: make(map[string]string)}
}

func (m *memRecorder) LoadJSON(_ context.Context, key string, out any) error {
	value, ok := m.records[key]
	if !ok {
		return store.ErrNotFound
	}
	return json.Unmarshal([]byte(value), out)
}

func (m *memRecorder) SaveJSON(_ context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.records[key] = string(data)
	return nil
}

func (m *memRecorder) LoadCounter(_ context.Context, key string) (int, error) {
	value, ok := m.records[key]
	if !ok {
		return 1, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 1, nil
	}
	return n, nil
}

func (m *memRecorder) SaveCounter(_ context.Context, key string, value int) error {
	m.records[key] = strconv.Itoa(value)
	return nil
}

func (m *memRecorder) LoadText(_ context.Context, key string) (string, error) {
	return m.records[key], nil
}

func (m *memRecorder) SaveText(_ context.Context, key, value string) error {
	m.records[key] = value
	return nil
}

type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Generate(_ context.Context, system, user string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubProvider) Name() string { return "stub" }

func newTestServer(t *testing.T, provider *stubProvider) *Server {
	t.Helper()
	st, err := state.New(context.Background(), newMemRecorder())
	if err != nil {
		t.Fatalf("state init failed: %v", err)
	}
	gen := generator.NewService(st, provider)
	exporter := export.NewPDFExporter(t.TempDir())
	srv, err := NewServer(st, gen, exporter)
	if err != nil {
		t.Fatalf("server init failed: %v", err)
	}
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})
	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestClientLifecycle(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	rec := doJSON(t, srv, http.MethodPost, "/v1/clients", model.Client{
		Name: "Jane", Company: "Acme", Address: "1 Main Road",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create client = %d: %s", rec.Code, rec.Body.String())
	}
	var created model.Client
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created client: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("client id not assigned")
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/clients", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list clients = %d", rec.Code)
	}
	var listed struct {
		Clients []model.Client `json:"clients"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode client list: %v", err)
	}
	if len(listed.Clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(listed.Clients))
	}

	rec = doJSON(t, srv, http.MethodDelete, "/v1/clients/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete client = %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodDelete, "/v1/clients/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete = %d, want 404", rec.Code)
	}
}

func TestClientValidationIsRejected(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})
	rec := doJSON(t, srv, http.MethodPost, "/v1/clients", model.Client{Name: "only"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid client = %d, want 400", rec.Code)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubProvider{
		response: "<!-- START_DOC:SLA --><div>sla</div><!-- END_DOC:SLA -->",
	})
	rec := doJSON(t, srv, http.MethodPost, "/v1/generate", generator.Request{SLA: true, FreeText: "site"})
	if rec.Code != http.StatusOK {
		t.Fatalf("generate = %d: %s", rec.Code, rec.Body.String())
	}
	var result generator.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(result.Documents) != 1 || result.Documents[0].Type != template.TypeSLA {
		t.Fatalf("unexpected documents: %+v", result.Documents)
	}
}

func TestGenerateEmptySelectionIsBadRequest(t *testing.T) {
	srv := newTestServer(t, &stubProvider{response: "x"})
	rec := doJSON(t, srv, http.MethodPost, "/v1/generate", generator.Request{FreeText: "x"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty selection = %d, want 400", rec.Code)
	}
}

func TestGenerateGatewayFailureIsBadGateway(t *testing.T) {
	srv := newTestServer(t, &stubProvider{err: errors.New("down")})
	rec := doJSON(t, srv, http.MethodPost, "/v1/generate", generator.Request{Invoice: true, FreeText: "x"})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("gateway failure = %d, want 502", rec.Code)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	profile := model.DefaultCompanyProfile()
	profile.CompanyName = "Changed Co"
	rec := doJSON(t, srv, http.MethodPut, "/v1/profile", profile)
	if rec.Code != http.StatusOK {
		t.Fatalf("put profile = %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/profile", nil)
	var got model.CompanyProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if got.CompanyName != "Changed Co" {
		t.Fatalf("profile not overwritten: %+v", got)
	}
}

func TestLogoLifecycle(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	rec := doJSON(t, srv, http.MethodPut, "/v1/logo", map[string]string{"logo": "data:image/png;base64,AA"})
	if rec.Code != http.StatusOK {
		t.Fatalf("put logo = %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/v1/logo", nil)
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode logo: %v", err)
	}
	if got["logo"] != "data:image/png;base64,AA" {
		t.Fatalf("logo = %q", got["logo"])
	}
	rec = doJSON(t, srv, http.MethodDelete, "/v1/logo", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete logo = %d", rec.Code)
	}
}

func TestCountersEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubProvider{
		response: "<!-- START_DOC:INVOICE -->x<!-- END_DOC:INVOICE -->",
	})
	rec := doJSON(t, srv, http.MethodPost, "/v1/generate", generator.Request{Invoice: true, FreeText: "x"})
	if rec.Code != http.StatusOK {
		t.Fatalf("generate = %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/v1/counters", nil)
	var counters map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &counters); err != nil {
		t.Fatalf("decode counters: %v", err)
	}
	if counters["invoice"] != 2 || counters["quote"] != 1 {
		t.Fatalf("counters = %+v, want invoice 2, quote 1", counters)
	}
}

func TestDocumentSetLifecycle(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})

	rec := doJSON(t, srv, http.MethodPost, "/v1/document-sets", map[string]any{
		"documents": []model.Document{
			{Type: template.TypeInvoice, HTML: `<div><p>BILL TO</p><p>Acme Ltd</p></div>`},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("save set = %d: %s", rec.Code, rec.Body.String())
	}
	var set model.SavedDocumentSet
	if err := json.Unmarshal(rec.Body.Bytes(), &set); err != nil {
		t.Fatalf("decode set: %v", err)
	}
	if set.ClientCompany != "Acme Ltd" {
		t.Fatalf("label = %q", set.ClientCompany)
	}

	rec = doJSON(t, srv, http.MethodPut, "/v1/document-sets/"+set.ID, map[string]any{
		"documents": []model.Document{
			{Type: template.TypeInvoice, HTML: `<div><p>BILL TO</p><p>Acme Ltd</p><p data-bizdoc-date="true">old</p></div>`},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update set = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/document-sets/"+set.ID+"/export", export.Options{PageSize: "a4"})
	if rec.Code != http.StatusOK {
		t.Fatalf("export set = %d: %s", rec.Code, rec.Body.String())
	}
	var exported struct {
		Files []string `json:"files"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &exported); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if len(exported.Files) != 1 {
		t.Fatalf("expected 1 exported file, got %d", len(exported.Files))
	}

	rec = doJSON(t, srv, http.MethodDelete, "/v1/document-sets/"+set.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete set = %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/v1/document-sets", nil)
	var listed struct {
		DocumentSets []model.SavedDocumentSet `json:"documentSets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.DocumentSets) != 0 {
		t.Fatalf("set not deleted")
	}
}

func TestLogsEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubProvider{})
	rec := doJSON(t, srv, http.MethodGet, "/v1/logs", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logs = %d", rec.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode logs: %v", err)
	}
	if _, ok := payload["logs"]; !ok {
		t.Fatalf("logs key missing")
	}
}
