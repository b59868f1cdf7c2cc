package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// withGZip compresses the response body when the client advertises gzip
// support. Only the response side is handled: every API route is a GET, so
// there are no compressed request bodies to inflate.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
			gzipWriter:     gzipWriter,
		}

		next.ServeHTTP(gzipRW, req)

		gzipWriter.Close()
		gzipWriterPool.Put(gzipWriter)
	})
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	// a pre-computed length (static file serving) no longer matches the
	// compressed body
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}
