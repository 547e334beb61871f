package middleware

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

var compressibleTypes = []string{
	"application/json",
	"text/plain",
}

// Compress negotiates brotli or gzip/deflate for JSON responses.
func Compress() func(http.Handler) http.Handler {
	c := chimw.NewCompressor(compressionLevel, compressibleTypes...)
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, brotliLevel(level))
	})
	return c.Handler
}

func brotliLevel(level int) int {
	switch {
	case level < brotli.BestSpeed:
		return brotli.DefaultCompression
	case level > brotli.BestCompression:
		return brotli.BestCompression
	default:
		return level
	}
}
