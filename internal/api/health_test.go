package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ok := func() error { return nil }
	fail := func() error { return assertErr{} }

	cases := []struct {
		name      string
		dbPing    func() error
		cachePing func() error
		path      string
		want      int
		wantDep   string
	}{
		{name: "healthz ok", path: "/healthz", want: 200},
		{name: "readyz ok", dbPing: ok, path: "/readyz", want: 200},
		{name: "readyz no checks", path: "/readyz", want: 200},
		{name: "readyz db degraded", dbPing: fail, path: "/readyz", want: 503, wantDep: "database"},
		{name: "readyz cache ok", dbPing: ok, cachePing: ok, path: "/readyz", want: 200},
		{name: "readyz cache degraded", dbPing: ok, cachePing: fail, path: "/readyz", want: 503, wantDep: "cache"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			h := NewHealthHandler(tc.dbPing)
			if tc.cachePing != nil {
				h = h.WithCachePing(tc.cachePing)
			}
			h.Register(r)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
			if tc.wantDep != "" {
				var body map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("json: %v", err)
				}
				if body["dependency"] != tc.wantDep {
					t.Fatalf("dependency=%q, want %q", body["dependency"], tc.wantDep)
				}
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
