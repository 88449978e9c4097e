package server_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sprout-ui/sprout/pkg/components"
	"github.com/sprout-ui/sprout/pkg/dom"
	"github.com/sprout-ui/sprout/pkg/domtest"
	"github.com/sprout-ui/sprout/pkg/host/livedoc"
	"github.com/sprout-ui/sprout/pkg/server"
)

func newTestServer(t *testing.T, root func() *dom.Node) *httptest.Server {
	t.Helper()
	srv, err := server.New(server.Config{
		Title:    "test app",
		Root:     root,
		Registry: prometheus.NewRegistry(),
	})
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestNewRequiresRoot(t *testing.T) {
	if _, err := server.New(server.Config{}); err == nil {
		t.Error("New without Root succeeded")
	}
}

func TestIndexServesShell(t *testing.T) {
	ts := newTestServer(t, func() *dom.Node { return dom.New(nil, nil) })

	status, body := get(t, ts.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "<title>test app</title>") {
		t.Errorf("shell missing title:\n%s", body)
	}
	if !strings.Contains(body, `<div id="app"></div>`) {
		t.Errorf("shell missing mount container:\n%s", body)
	}
	if !strings.Contains(body, "WebSocket") {
		t.Errorf("shell missing client script:\n%s", body)
	}
}

func TestClientScriptRemovesStaleElement(t *testing.T) {
	ts := newTestServer(t, func() *dom.Node { return dom.New(nil, nil) })
	_, body := get(t, ts.URL+"/")

	// An update inserts the replacement before the stale element, so both
	// briefly share one identity. The remove handler must collect every
	// match and delete the last, never the first (the replacement).
	if !strings.Contains(body, "querySelectorAll") ||
		!strings.Contains(body, "els[els.length - 1].remove()") {
		t.Error("client remove handler must delete the last matching element")
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, func() *dom.Node { return dom.New(nil, nil) })
	status, body := get(t, ts.URL+"/healthz")
	if status != http.StatusOK || !strings.Contains(body, "ok") {
		t.Errorf("healthz = %d %q", status, body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, func() *dom.Node { return dom.New(nil, nil) })
	status, body := get(t, ts.URL+"/metrics")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if !strings.Contains(body, "sprout_active_sessions") {
		t.Errorf("metrics output missing server collectors:\n%s", body)
	}
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/sprout/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readOp(t *testing.T, conn *websocket.Conn) livedoc.Op {
	t.Helper()
	var op livedoc.Op
	if err := conn.ReadJSON(&op); err != nil {
		t.Fatalf("read op: %v", err)
	}
	return op
}

func TestSessionMountsRoot(t *testing.T) {
	domtest.Deterministic(t)
	ts := newTestServer(t, func() *dom.Node { return components.Rating(2, 3) })
	conn := dialWS(t, ts)

	first := readOp(t, conn)
	if first.Op != "setContents" || first.Selector != "#app" {
		t.Fatalf("first op = %+v, want setContents into #app", first)
	}
	if !strings.Contains(first.Markup, `class="rating"`) {
		t.Errorf("mount markup missing root:\n%s", first.Markup)
	}

	second := readOp(t, conn)
	if second.Op != "listen" || second.Event != "click" {
		t.Errorf("second op = %+v, want listen click", second)
	}
}

func TestSessionDispatchRoundTrip(t *testing.T) {
	domtest.Deterministic(t)
	ts := newTestServer(t, func() *dom.Node { return components.Rating(2, 3) })
	conn := dialWS(t, ts)

	mount := readOp(t, conn)
	listen := readOp(t, conn)
	rootSID := listen.SID
	if rootSID == "" || !strings.Contains(mount.Markup, rootSID) {
		t.Fatalf("listen op %+v does not reference mounted markup", listen)
	}

	// Simulate a click on the third position.
	ev := livedoc.ClientEvent{SID: rootSID, Type: "click"}
	ev.Target.Dataset = map[string]string{"value": "3"}
	if err := conn.WriteJSON(ev); err != nil {
		t.Fatalf("write event: %v", err)
	}

	insert := readOp(t, conn)
	if insert.Op != "insertBefore" || insert.SID != rootSID {
		t.Fatalf("op after event = %+v, want insertBefore %s", insert, rootSID)
	}
	if got := strings.Count(insert.Markup, `class="filled"`); got != 3 {
		t.Errorf("updated markup has %d filled positions, want 3:\n%s", got, insert.Markup)
	}

	remove := readOp(t, conn)
	if remove.Op != "remove" || remove.SID != rootSID {
		t.Errorf("op = %+v, want remove %s", remove, rootSID)
	}
	rebind := readOp(t, conn)
	if rebind.Op != "listen" || rebind.SID != rootSID {
		t.Errorf("op = %+v, want listen %s", rebind, rootSID)
	}
}
