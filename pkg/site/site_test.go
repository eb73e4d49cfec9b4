package site

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/session"
)

const testDoc = `
profile:
  name: Ada Lovelace
  tagline: First programmer
  email: ada@example.com
intro:
  content: "Hello **world**"
projects:
  - name: Engine
    url: https://github.com/ada/engine
    tech: [Go]
techStacks:
  - name: Go
    proficiency: 3
meta:
  title: Ada's folio
  resumeExport:
    enabled: true
themes:
  current: minimal
sections:
  profile: 1
  intro: 2
  projects: 3
  education: 0
`

func newTestServer(t *testing.T, doc string) (*httptest.Server, *http.Client) {
	t.Helper()
	d, err := profile.Parse([]byte(doc), profile.FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	srv := httptest.NewServer(New(d, Config{Stars: map[string]int{"https://github.com/ada/engine": 42}}).Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return srv, &http.Client{Jar: jar}
}

func state(t *testing.T, srv *httptest.Server, client *http.Client) State {
	t.Helper()
	resp, err := client.Get(srv.URL + "/api/state")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var st State
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return st
}

func post(t *testing.T, srv *httptest.Server, client *http.Client, path string) *http.Response {
	t.Helper()
	resp, err := client.Post(srv.URL+path, "application/x-www-form-urlencoded", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestNavigation(t *testing.T) {
	srv, client := newTestServer(t, testDoc)

	st := state(t, srv, client)
	if strings.Join(st.Sections, ",") != "profile,intro,projects" {
		t.Fatalf("sections = %v", st.Sections)
	}
	if st.Current != 0 || st.HasPrevious || !st.HasNext {
		t.Fatalf("initial state = %+v", st)
	}

	steps := []struct {
		path string
		want int
	}{
		{"/next", 1},
		{"/next", 2},
		{"/next", 2},
		{"/prev", 1},
		{"/jump/0", 0},
		{"/jump/99", 2},
		{"/jump/-3", 0},
	}
	for _, step := range steps {
		resp := post(t, srv, client, step.path)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("POST %s: status %d", step.path, resp.StatusCode)
		}
		if got := state(t, srv, client).Current; got != step.want {
			t.Errorf("after POST %s: current = %d, want %d", step.path, got, step.want)
		}
	}
}

func TestNavigationRedirects(t *testing.T) {
	srv, _ := newTestServer(t, testDoc)
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}

	resp := post(t, srv, client, "/next")
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
	found := false
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName && session.ValidID(c.Value) {
			found = true
		}
	}
	if !found {
		t.Error("response should set the session cookie")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	srv, alice := newTestServer(t, testDoc)
	jar, _ := cookiejar.New(nil)
	bob := &http.Client{Jar: jar}

	post(t, srv, alice, "/next")
	if got := state(t, srv, bob).Current; got != 0 {
		t.Errorf("bob current = %d, want 0", got)
	}
	if got := state(t, srv, alice).Current; got != 1 {
		t.Errorf("alice current = %d, want 1", got)
	}
}

func TestPage(t *testing.T) {
	srv, client := newTestServer(t, testDoc)

	resp, err := client.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	html := body(t, resp)
	for _, want := range []string{"<title>Ada&#39;s folio</title>", "Ada Lovelace", `action="/jump/2"`, `action="/next"`, "Export Resume"} {
		if !strings.Contains(html, want) {
			t.Errorf("profile page missing %q", want)
		}
	}
	if strings.Contains(html, `action="/prev"`) {
		t.Error("first section should not link to a previous section")
	}

	post(t, srv, client, "/next")
	resp, _ = client.Get(srv.URL + "/")
	if html := body(t, resp); !strings.Contains(html, "<strong>world</strong>") {
		t.Errorf("intro page should render markdown, got %q", html)
	}

	post(t, srv, client, "/next")
	resp, _ = client.Get(srv.URL + "/")
	if html := body(t, resp); !strings.Contains(html, "★ 42") {
		t.Error("projects page should show star counts")
	}
}

func TestEmptyDocument(t *testing.T) {
	srv, client := newTestServer(t, "profile:\n  name: Nobody\nsections:\n  profile: 0\n")

	st := state(t, srv, client)
	if len(st.Sections) != 0 || st.Current != 0 || st.HasNext || st.HasPrevious {
		t.Errorf("empty state = %+v", st)
	}
	if resp := post(t, srv, client, "/next"); resp.StatusCode != http.StatusOK {
		t.Errorf("POST /next on empty document: status %d", resp.StatusCode)
	}
	resp, _ := client.Get(srv.URL + "/")
	if html := body(t, resp); !strings.Contains(html, "Loading") {
		t.Error("empty document should render the loading state")
	}
}

func TestTheme(t *testing.T) {
	srv, client := newTestServer(t, testDoc)

	if got := state(t, srv, client).Theme; got != "minimal" {
		t.Errorf("initial theme = %q, want minimal", got)
	}
	post(t, srv, client, "/theme/dark")
	if got := state(t, srv, client).Theme; got != "dark" {
		t.Errorf("theme after select = %q, want dark", got)
	}
	if resp := post(t, srv, client, "/theme/neon"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown theme: status %d, want 400", resp.StatusCode)
	}
}

func TestResume(t *testing.T) {
	srv, client := newTestServer(t, testDoc)

	tests := []struct {
		path   string
		status int
		ctype  string
	}{
		{"/resume.html", http.StatusOK, "text/html"},
		{"/resume.txt", http.StatusOK, "text/plain"},
		{"/resume.svg", http.StatusOK, "image/svg+xml"},
		{"/resume.pdf", http.StatusBadRequest, "application/json"},
	}
	for _, tt := range tests {
		resp, err := client.Get(srv.URL + tt.path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.status {
			t.Errorf("GET %s: status %d, want %d", tt.path, resp.StatusCode, tt.status)
		}
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.ctype) {
			t.Errorf("GET %s: content type %q, want %s", tt.path, ct, tt.ctype)
		}
	}
}

func TestResumeDisabled(t *testing.T) {
	doc := strings.Replace(testDoc, "enabled: true", "enabled: false", 1)
	srv, client := newTestServer(t, doc)

	for _, path := range []string{"/resume.html", "/resume.txt", "/resume.svg"} {
		resp, err := client.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s: status %d, want 404", path, resp.StatusCode)
		}
		if body["code"] != "NOT_FOUND" {
			t.Errorf("GET %s: code %q, want NOT_FOUND", path, body["code"])
		}
	}

	resp, err := client.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	page, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if strings.Contains(string(page), "/resume.") {
		t.Error("page links to the resume although export is disabled")
	}
}

func TestBadJump(t *testing.T) {
	srv, client := newTestServer(t, testDoc)
	if resp := post(t, srv, client, "/jump/two"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	srv, client := newTestServer(t, testDoc)
	resp, err := client.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	if got := body(t, resp); resp.StatusCode != http.StatusOK || !strings.Contains(got, "ok") {
		t.Errorf("healthz = %d %q", resp.StatusCode, got)
	}
}
