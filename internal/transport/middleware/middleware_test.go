package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/taskmetrics/task-incentive/internal/transport/middleware"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Middleware Suite")
}

var _ = Describe("RequestID", func() {
	It("should generate a trace ID and expose it on context and response", func() {
		var seen string
		handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.TraceID(r.Context())
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		Expect(seen).NotTo(BeEmpty())
		Expect(w.Header().Get("X-Trace-ID")).To(Equal(seen))
	})

	It("should keep an inbound trace ID", func() {
		var seen string
		handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.TraceID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Trace-ID", "abc-123")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		Expect(seen).To(Equal("abc-123"))
	})

	It("should return empty for a context without a trace ID", func() {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		Expect(middleware.TraceID(req.Context())).To(BeEmpty())
	})
})

var _ = Describe("LoggingMiddleware", func() {
	var (
		logs    *bytes.Buffer
		handler http.Handler
	)

	BeforeEach(func() {
		logs = &bytes.Buffer{}
		logger := slog.New(slog.NewJSONHandler(logs, nil))

		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		handler = middleware.RequestID(middleware.LoggingMiddleware(logger)(inner))
	})

	It("should log the trace ID as the request id", func() {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Trace-ID", "abc-123")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		Expect(logs.String()).To(ContainSubstring(`"request_id":"abc-123"`))
	})

	It("should redact sensitive headers", func() {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer secret-token")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		Expect(logs.String()).To(ContainSubstring("[REDACTED]"))
		Expect(logs.String()).NotTo(ContainSubstring("secret-token"))
	})
})
