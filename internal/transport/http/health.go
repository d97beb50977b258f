package http

import stdhttp "net/http"

// HealthHandler answers the liveness probe. It says nothing about the
// database; a process that can serve this is "up".
func HealthHandler(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
