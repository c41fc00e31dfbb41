package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// testConfig allows loopback targets so httptest servers can be scraped.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.DenyPrivateIPs = false
	cfg.Timeout = 2 * time.Second
	return cfg
}

func htmlServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Rates held steady</title></head>
<body>
  <nav><a href="/">Home</a></nav>
  <article>
    <h1>Rates held steady</h1>
    <p>The central bank left rates unchanged on Wednesday.</p>
    <p>   </p>
    <p>Officials said inflation was <b>cooling</b> faster than expected.</p>
    <div><p>Markets rallied after the announcement.</p></div>
  </article>
  <footer><p>Copyright 2025</p></footer>
</body>
</html>`
