package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/upb/meeting-summarizer/config"
	"github.com/upb/meeting-summarizer/handlers"
)

// indexPage is the thin presentation layer: a transcript form, an in-progress
// indicator while the orchestrator call is outstanding, and client-side
// markdown rendering of the returned analysis.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Meeting Summarizer</title>
<script src="https://cdn.jsdelivr.net/npm/marked/marked.min.js"></script>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
textarea { width: 100%; height: 18rem; font-family: monospace; }
#warning { color: #b00; }
#spinner { display: none; }
</style>
</head>
<body>
<h1>Meeting Summarizer</h1>
<p>Paste your meeting transcript below</p>
<textarea id="transcript" placeholder="Meeting Transcript"></textarea>
<p><button id="submit">Summarize</button> <span id="spinner">Processing&hellip;</span></p>
<p id="warning"></p>
<h2 id="output-heading" style="display:none">AI Output</h2>
<div id="output"></div>
<script>
document.getElementById('submit').addEventListener('click', async () => {
  const transcript = document.getElementById('transcript').value;
  const warning = document.getElementById('warning');
  warning.textContent = '';
  if (transcript.trim() === '') {
    warning.textContent = 'Please enter a meeting transcript.';
    return;
  }
  document.getElementById('spinner').style.display = 'inline';
  try {
    const resp = await fetch('/api/v1/summarize', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({transcript})
    });
    const body = await resp.json();
    if (!resp.ok) {
      warning.textContent = body.message || 'Request failed.';
      return;
    }
    document.getElementById('output-heading').style.display = 'block';
    document.getElementById('output').innerHTML = marked.parse(body.data.analysis);
  } finally {
    document.getElementById('spinner').style.display = 'none';
  }
});
</script>
</body>
</html>
`

// SetupRoutes configures all application routes and middleware
func SetupRoutes(summarizeHandler *handlers.SummarizeHandler, creds config.CredentialSource) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(180 * time.Second))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "https://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Presentation boundary
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexPage))
	})

	// Health check endpoints
	r.Get("/healthz", handlers.HealthCheck)
	r.Get("/readyz", handlers.ReadinessCheck(creds))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/summarize", summarizeHandler.HandleSummarize)
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
