package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"legaldesk/internal/config"
	"legaldesk/internal/domain/document"
	"legaldesk/internal/domain/session"
	"legaldesk/internal/infrastructure/migration"
	"legaldesk/internal/infrastructure/storage"
)

type sentMail struct {
	to, subject, body, name string
	attachment              []byte
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeSender) Send(_ context.Context, to, subject, body string, attachment []byte, name string) (bool, string) {
	if to == "" {
		return false, "recipient address is required"
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body, name: name, attachment: attachment})
	return true, "Success"
}

type fakeAdvisor struct{}

func (fakeAdvisor) Analyze(_ context.Context, text, domain string) (string, error) {
	return domain + ": 60% for " + text[:10], nil
}

func (fakeAdvisor) Transcribe(context.Context, []byte, string) (string, error) {
	return "FIR text", nil
}

func (fakeAdvisor) Citations(_ context.Context, query, domain string) (string, error) {
	return "3 " + domain + " citations for " + query, nil
}

type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func newClient(t *testing.T, base string) *client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &client{t: t, base: base, http: &http.Client{Jar: jar}}
}

func (c *client) do(method, path string, body any) (*http.Response, []byte) {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, r)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, data
}

func (c *client) json(method, path string, body any, want int, out any) {
	c.t.Helper()
	resp, data := c.do(method, path, body)
	require.Equal(c.t, want, resp.StatusCode, "%s %s: %s", method, path, data)
	if out != nil {
		require.NoError(c.t, json.Unmarshal(data, out))
	}
}

func newServer(t *testing.T) (*httptest.Server, *fakeSender) {
	t.Helper()
	dbCfg := config.DB{Driver: config.DriverSQLite, DSN: t.TempDir() + "/legal.db"}
	require.NoError(t, migration.NewMigration(dbCfg, nil).Up())

	store, err := storage.Open(context.Background(), dbCfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	sender := &fakeSender{}
	mux := New(Deps{
		Store:    store,
		Sessions: session.NewManager(time.Hour, slog.Default()),
		Cookie:   config.Defaults().Session,
		Renderer: document.NewPDFRenderer(slog.Default()),
		Sender:   sender,
		Advisor:  fakeAdvisor{},
	}, slog.Default())

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, sender
}

func register(c *client, username, password, enrollment string) {
	c.json(http.MethodPost, "/api/v1/users", map[string]string{
		"username": username, "password": password, "enrollment_id": enrollment,
	}, http.StatusCreated, nil)
}

func login(c *client, username, password string) {
	c.json(http.MethodPost, "/api/v1/session/login", map[string]string{
		"username": username, "password": password,
	}, http.StatusOK, nil)
}

func TestAPI_Health(t *testing.T) {
	srv, _ := newServer(t)
	c := newClient(t, srv.URL)

	var out struct{ Status, Storage string }
	c.json(http.MethodGet, "/api/v1/health", nil, http.StatusOK, &out)
	assert.Equal(t, "OK", out.Status)
	assert.Equal(t, "OK", out.Storage)
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	srv, _ := newServer(t)
	c := newClient(t, srv.URL)

	register(c, "adv1", "secret", "MAH/1/2010")
	c.json(http.MethodPost, "/api/v1/users", map[string]string{
		"username": "adv1", "password": "other", "enrollment_id": "X",
	}, http.StatusConflict, nil)

	c.json(http.MethodGet, "/api/v1/hearings/upcoming", nil, http.StatusUnauthorized, nil)
	c.json(http.MethodPost, "/api/v1/session/login", map[string]string{
		"username": "adv1", "password": "wrong",
	}, http.StatusUnauthorized, nil)

	var state struct {
		State        string `json:"state"`
		Username     string `json:"username"`
		EnrollmentID string `json:"enrollment_id"`
	}
	c.json(http.MethodPost, "/api/v1/session/login", map[string]string{
		"username": "adv1", "password": "secret",
	}, http.StatusOK, &state)
	assert.Equal(t, "authenticated", state.State)
	assert.Equal(t, "MAH/1/2010", state.EnrollmentID, "the first registration wins")

	c.json(http.MethodPost, "/api/v1/session/logout", nil, http.StatusOK, &state)
	assert.Equal(t, "anonymous", state.State)
	c.json(http.MethodGet, "/api/v1/drafting/buffer", nil, http.StatusUnauthorized, nil)
}

func TestAPI_UpcomingHearings(t *testing.T) {
	srv, _ := newServer(t)
	c := newClient(t, srv.URL)
	register(c, "adv1", "pw", "E")
	login(c, "adv1", "pw")

	for i, d := range []string{"2025-09-01", "2025-01-01", "2025-05-05", "2024-12-12", "2026-02-02", "2025-03-03"} {
		c.json(http.MethodPost, "/api/v1/hearings", map[string]string{
			"case_name": "Case " + string(rune('A'+i)), "date": d,
		}, http.StatusCreated, nil)
	}
	c.json(http.MethodPost, "/api/v1/hearings", map[string]string{
		"case_name": "Bad", "date": "01/02/2025",
	}, http.StatusUnprocessableEntity, nil)

	var out struct {
		Hearings []struct {
			CaseName string    `json:"case_name"`
			Category string    `json:"category"`
			Date     time.Time `json:"date"`
		} `json:"hearings"`
	}
	c.json(http.MethodGet, "/api/v1/hearings/upcoming", nil, http.StatusOK, &out)
	require.Len(t, out.Hearings, 5)

	var got []string
	for _, h := range out.Hearings {
		got = append(got, h.Date.Format("2006-01-02"))
		assert.Equal(t, "General", h.Category)
	}
	assert.Equal(t, []string{"2024-12-12", "2025-01-01", "2025-03-03", "2025-05-05", "2025-09-01"}, got)
}

func TestAPI_DraftingFlow(t *testing.T) {
	srv, sender := newServer(t)
	c := newClient(t, srv.URL)
	register(c, "adv1", "pw", "DEL/77/2001")
	login(c, "adv1", "pw")

	var buf struct {
		Category string `json:"category"`
		DocType  string `json:"doc_type"`
		Content  string `json:"content"`
	}
	c.json(http.MethodPost, "/api/v1/drafting/buffer/template", map[string]string{
		"category": "Criminal", "doc_type": "Anticipatory Bail",
	}, http.StatusOK, &buf)
	assert.True(t, strings.HasPrefix(buf.Content, "IN THE COURT OF THE HON'BLE SESSIONS JUDGE"))
	assert.Contains(t, buf.Content, "DEL/77/2001")

	c.json(http.MethodPost, "/api/v1/drafting/buffer/template", map[string]string{
		"category": "Civil", "doc_type": "Anticipatory Bail",
	}, http.StatusUnprocessableEntity, nil)

	edited := buf.Content + "\nFee: ₹5,000 – “urgent”"
	c.json(http.MethodPut, "/api/v1/drafting/buffer", map[string]string{"content": edited}, http.StatusOK, &buf)
	assert.Equal(t, "Anticipatory Bail", buf.DocType)

	var saved struct {
		ID      int64  `json:"id"`
		Content string `json:"content"`
	}
	c.json(http.MethodPost, "/api/v1/drafts", nil, http.StatusCreated, &saved)
	assert.Equal(t, edited, saved.Content)

	var list struct {
		Drafts []struct {
			ID       int64  `json:"id"`
			Category string `json:"category"`
		} `json:"drafts"`
	}
	c.json(http.MethodGet, "/api/v1/drafts", nil, http.StatusOK, &list)
	require.Len(t, list.Drafts, 1)
	assert.Equal(t, "Criminal", list.Drafts[0].Category)

	resp, pdf := c.do(http.MethodGet, "/api/v1/drafting/buffer/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	var sent struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
	}
	c.json(http.MethodPost, "/api/v1/drafting/buffer/send", map[string]string{"to": ""}, http.StatusOK, &sent)
	assert.False(t, sent.OK)
	assert.Equal(t, "recipient address is required", sent.Message)

	c.json(http.MethodPost, "/api/v1/drafting/buffer/send", map[string]string{"to": "client@example.com"}, http.StatusOK, &sent)
	assert.True(t, sent.OK)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Legal Doc: Anticipatory Bail", sender.sent[0].subject)
	assert.Equal(t, "Anticipatory Bail", sender.sent[0].name)
	assert.Equal(t, "Attached is your document.", sender.sent[0].body)
	assert.True(t, bytes.HasPrefix(sender.sent[0].attachment, []byte("%PDF")))

	var analysis struct {
		Analysis string `json:"analysis"`
	}
	c.json(http.MethodPost, "/api/v1/drafting/buffer/analysis", nil, http.StatusOK, &analysis)
	assert.True(t, strings.HasPrefix(analysis.Analysis, "Criminal: 60%"))
}

func TestAPI_InvoicesAreOwnerScoped(t *testing.T) {
	srv, _ := newServer(t)
	alice := newClient(t, srv.URL)
	bob := newClient(t, srv.URL)
	register(alice, "alice", "pw", "A-1")
	register(bob, "bob", "pw", "B-1")
	login(alice, "alice", "pw")
	login(bob, "bob", "pw")

	var inv struct {
		ID     int64   `json:"id"`
		Amount float64 `json:"amount"`
	}
	alice.json(http.MethodPost, "/api/v1/invoices", map[string]any{"client_name": "Mehta", "amount": 2500.0}, http.StatusCreated, &inv)
	alice.json(http.MethodPost, "/api/v1/invoices", map[string]any{"client_name": "Neg", "amount": -1}, http.StatusUnprocessableEntity, nil)

	var history struct {
		Invoices []struct {
			ClientName string `json:"client_name"`
		} `json:"invoices"`
	}
	bob.json(http.MethodGet, "/api/v1/invoices", nil, http.StatusOK, &history)
	assert.Empty(t, history.Invoices)

	path := "/api/v1/invoices/" + jsonNumber(inv.ID) + "/pdf"
	resp, _ := bob.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, pdf := alice.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Contains(t, string(pdf), "Client: Mehta")
}

func TestAPI_Research(t *testing.T) {
	srv, _ := newServer(t)
	c := newClient(t, srv.URL)
	register(c, "adv1", "pw", "E")
	login(c, "adv1", "pw")

	var out struct {
		Text string `json:"text"`
	}
	c.json(http.MethodPost, "/api/v1/research/citations", map[string]string{
		"query": "bail", "scope": "Criminal",
	}, http.StatusOK, &out)
	assert.Equal(t, "3 Criminal citations for bail", out.Text)

	c.json(http.MethodPost, "/api/v1/scanner", map[string]any{
		"image": []byte{0x89, 'P', 'N', 'G'}, "mime_type": "image/png",
	}, http.StatusOK, &out)
	assert.Equal(t, "FIR text", out.Text)
}

func TestAPI_EndSession(t *testing.T) {
	srv, _ := newServer(t)
	c := newClient(t, srv.URL)
	register(c, "adv1", "pw", "E")
	login(c, "adv1", "pw")

	c.json(http.MethodDelete, "/api/v1/session", nil, http.StatusOK, nil)

	var state struct {
		State string `json:"state"`
	}
	c.json(http.MethodGet, "/api/v1/session", nil, http.StatusOK, &state)
	assert.Equal(t, "anonymous", state.State)
}

func jsonNumber(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
