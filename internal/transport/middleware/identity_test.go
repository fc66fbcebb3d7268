package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/transport/middleware"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Middleware Suite")
}

var _ = Describe("Identity", func() {
	var seenUserID string

	handler := middleware.Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = internal.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	BeforeEach(func() {
		seenUserID = "unset"
	})

	It("should stamp the X-User-ID header onto the request context", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		req.Header.Set("X-User-ID", "u3")

		handler.ServeHTTP(httptest.NewRecorder(), req)

		Expect(seenUserID).To(Equal("u3"))
	})

	It("should leave the context empty when the header is absent", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)

		handler.ServeHTTP(httptest.NewRecorder(), req)

		Expect(seenUserID).To(BeEmpty())
	})
})
