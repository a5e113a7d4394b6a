// Package oauth provides the local OAuth callback server and browser
// utilities.
package oauth

import (
	"context"
	"fmt"
	"html"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/roomctl/roomctl/internal/core/ports/driven"
)

// callbackPath is the only path that resolves the listener.
const callbackPath = "/callback"

// Ensure CallbackServer implements the listener port.
var _ driven.CallbackListener = (*CallbackServer)(nil)

// callbackResult is the one-shot outcome of the browser redirect.
type callbackResult struct {
	code string
	err  error
}

// CallbackServer receives the OAuth redirect on the loopback address.
//
// It is strictly one-shot: the first request to the callback path resolves
// the result (code or failure) exactly once and shuts the listener down.
// Requests to any other path get a 404 and do not terminate the listener.
type CallbackServer struct {
	mu            sync.Mutex
	port          int
	expectedState string
	resultChan    chan callbackResult
	resolveOnce   sync.Once
	server        *http.Server
	listener      net.Listener
}

// NewCallbackServer creates a callback server for the given fixed port.
// The expectedState is matched against the redirect's state parameter.
func NewCallbackServer(port int, expectedState string) *CallbackServer {
	return &CallbackServer{
		port:          port,
		expectedState: expectedState,
		resultChan:    make(chan callbackResult, 1),
	}
}

// Start binds the loopback listener and serves on its own goroutine.
// A bind failure (port already in use) is fatal to the caller; there is
// no alternate-port fallback.
func (s *CallbackServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, s.handleCallback)
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		http.NotFound(w, nil)
	})

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.resolve(callbackResult{err: err})
		}
	}()

	return nil
}

// handleCallback processes the single redirect request and then shuts the
// server down, whatever the outcome was.
func (s *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	result := s.evaluate(r)

	w.Header().Set("Content-Type", "text/html")
	if result.err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, resultHTML("Authentication Failed", html.EscapeString(result.err.Error())))
	} else {
		fmt.Fprint(w, resultHTML("Authentication Successful!", "You can close this window and return to the terminal."))
	}

	s.resolve(result)

	// The listener served its one request; close it in the background so
	// this response still completes. Shutdown waits for in-flight
	// requests before closing the listener.
	go func() { _ = s.Stop() }()
}

// evaluate extracts the authorization code or the failure from the
// redirect's query string.
func (s *CallbackServer) evaluate(r *http.Request) callbackResult {
	q := r.URL.Query()

	if errParam := q.Get("error"); errParam != "" {
		return callbackResult{err: fmt.Errorf("oauth error: %s - %s", errParam, q.Get("error_description"))}
	}
	if state := q.Get("state"); state != s.expectedState {
		return callbackResult{err: fmt.Errorf("state mismatch: expected %s, got %s", s.expectedState, state)}
	}
	code := q.Get("code")
	if code == "" {
		return callbackResult{err: fmt.Errorf("no authorization code received")}
	}
	return callbackResult{code: code}
}

// resolve delivers the outcome exactly once.
func (s *CallbackServer) resolve(result callbackResult) {
	s.resolveOnce.Do(func() {
		s.resultChan <- result
	})
}

// WaitForCode blocks until the redirect delivers an outcome or the timeout
// elapses.
func (s *CallbackServer) WaitForCode(timeout time.Duration) (string, error) {
	select {
	case result := <-s.resultChan:
		return result.code, result.err
	case <-time.After(timeout):
		return "", fmt.Errorf("timeout waiting for authorization callback")
	}
}

// Stop shuts down the callback server. Idempotent.
func (s *CallbackServer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Port returns the port the server listens on.
func (s *CallbackServer) Port() int {
	return s.port
}

// RedirectURI returns the redirect URI for this callback server.
func (s *CallbackServer) RedirectURI() string {
	return fmt.Sprintf("http://localhost:%d%s", s.port, callbackPath)
}

func resultHTML(title, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>roomctl - OAuth Callback</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background: #FAFAFA;
        }
        .container {
            text-align: center;
            background: white;
            padding: 40px 60px;
            border-radius: 16px;
            box-shadow: 0 4px 24px rgba(0,0,0,0.08);
        }
        h1 { color: #333; margin-bottom: 10px; }
        p { color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <h1>%s</h1>
        <p>%s</p>
    </div>
</body>
</html>`, title, message)
}
