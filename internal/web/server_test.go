package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"text-rpg/internal/dice"
	"text-rpg/internal/game"
	"text-rpg/internal/session"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestServer() (*Server, *session.Store) {
	store := session.New(session.Options{
		TTL: time.Minute,
		Max: 10,
		NewGame: func() *game.Game {
			return game.New(game.Options{Rand: dice.New(3), WorldSize: 12})
		},
	})
	return New(store, nil), store
}

func do(t *testing.T, h http.Handler, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) game.Response {
	t.Helper()
	var resp game.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return resp
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestStartGame(t *testing.T) {
	srv, store := newTestServer()
	h := srv.Handler()

	w := do(t, h, http.MethodPost, "/api/start_game", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	resp := decode(t, w)
	if resp.Event != game.EventFirstEncounter {
		t.Errorf("event = %q, want first_encounter", resp.Event)
	}
	if len(resp.Options) != 3 {
		t.Errorf("options = %v, want 3", resp.Options)
	}
	cookie := sessionCookie(t, w)

	// Starting again with the same cookie reuses the session.
	w = do(t, h, http.MethodPost, "/api/start_game", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("restart status = %d", w.Code)
	}
	if store.Len() != 1 {
		t.Errorf("sessions = %d, want 1", store.Len())
	}
}

func TestActionFlow(t *testing.T) {
	srv, _ := newTestServer()
	h := srv.Handler()
	cookie := sessionCookie(t, do(t, h, http.MethodPost, "/api/start_game", "", nil))

	w := do(t, h, http.MethodPost, "/api/action", `{"event":"first_encounter","choice":2}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	resp := decode(t, w)
	if resp.Event != game.EventMap {
		t.Errorf("event = %q, want map", resp.Event)
	}
	if resp.Player.Gold != 10 {
		t.Errorf("gold = %d, want 10", resp.Player.Gold)
	}

	w = do(t, h, http.MethodGet, "/api/state", "", cookie)
	if got := decode(t, w); got.Event != game.EventMap || got.Player.Gold != 10 {
		t.Errorf("state = %+v, want the map response", got)
	}
}

func TestActionIgnoresClientEnemyHealth(t *testing.T) {
	srv, _ := newTestServer()
	h := srv.Handler()
	cookie := sessionCookie(t, do(t, h, http.MethodPost, "/api/start_game", "", nil))

	resp := decode(t, do(t, h, http.MethodPost, "/api/action", `{"event":"first_encounter","choice":3}`, cookie))
	if resp.Event != game.EventBattle || resp.Enemy == nil {
		t.Fatalf("want battle, got %+v", resp)
	}
	want := resp.Enemy.Health

	// A stale battle request with a forged health changes nothing.
	body := `{"event":"map","choice":1,"enemy_name":"Old Man","enemy_health":1}`
	got := decode(t, do(t, h, http.MethodPost, "/api/action", body, cookie))
	if got.Event != game.EventBattle || got.Enemy.Health != want {
		t.Errorf("got event %q enemy %+v, want battle with health %d", got.Event, got.Enemy, want)
	}
}

func TestActionErrors(t *testing.T) {
	srv, _ := newTestServer()
	h := srv.Handler()
	cookie := sessionCookie(t, do(t, h, http.MethodPost, "/api/start_game", "", nil))

	tests := []struct {
		name   string
		body   string
		cookie *http.Cookie
		want   int
	}{
		{"no cookie", `{"event":"map","choice":1}`, nil, http.StatusNotFound},
		{"unknown session", `{"event":"map","choice":1}`, &http.Cookie{Name: CookieName, Value: "gone"}, http.StatusNotFound},
		{"malformed json", `{"event":`, cookie, http.StatusBadRequest},
		{"missing event", `{"choice":1}`, cookie, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/api/action", tt.body, tt.cookie)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer()
	h := srv.Handler()
	do(t, h, http.MethodPost, "/api/start_game", "", nil)
	do(t, h, http.MethodPost, "/api/start_game", "", nil)

	w := do(t, h, http.MethodGet, "/healthz", "", nil)
	var body struct {
		Status   string `json:"status"`
		Sessions int    `json:"sessions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Sessions != 2 {
		t.Errorf("healthz = %+v, want ok/2", body)
	}
}

func TestWebsocket(t *testing.T) {
	srv, store := newTestServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	id, _ := store.Create()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?session=" + id
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	var resp game.Response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read greeting: %v", err)
	}
	if resp.Event != game.EventFirstEncounter {
		t.Errorf("greeting event = %q", resp.Event)
	}

	msg, _ := json.Marshal(ActionRequest{Event: game.EventFirstEncounter, Choice: 1})
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		t.Fatal(err)
	}
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Event != game.EventMap {
		t.Errorf("event = %q, want map", resp.Event)
	}
}

func TestWebsocketUnknownSession(t *testing.T) {
	srv, _ := newTestServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?session=missing"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("dial succeeded for unknown session")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("resp = %v, want 404", resp)
	}
}


func TestWebsocketSessionExpired(t *testing.T) {
	srv, store := newTestServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	id, _ := store.Create()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?session=" + id
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	var greeting game.Response
	if err := conn.ReadJSON(&greeting); err != nil {
		t.Fatalf("read greeting: %v", err)
	}
	store.Remove(id)

	if err := conn.WriteJSON(ActionRequest{Event: game.EventFirstEncounter, Choice: 1}); err != nil {
		t.Fatal(err)
	}
	var body map[string]string
	if err := conn.ReadJSON(&body); err != nil {
		t.Fatalf("read error frame: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("error frame = %v", body)
	}
	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Errorf("err = %v, want policy violation close", err)
	}
}
