package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// records the status code and the number of body bytes written, so the
// logging middleware can report them after the downstream handler returns.
//
// WriteHeader is forwarded to the underlying writer exactly once; later
// calls are ignored, matching the [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly sets 200 on the first call if no status has been written,
// mirroring the standard library's response writer.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
