package insights_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/insights"
	"github.com/plantworks/facilityops/internal/inventory"
	"github.com/plantworks/facilityops/internal/machine"
	"github.com/plantworks/facilityops/internal/worklog"
)

func TestInsightsClient(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Insights Client Suite")
}

var _ = Describe("Client", func() {
	var (
		logger *slog.Logger
		ctx    context.Context
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		ctx = context.Background()
	})

	newClient := func(baseURL string) *insights.Client {
		return insights.NewClient(insights.Config{
			BaseURL: baseURL,
			APIKey:  "test-key",
			Timeout: 2 * time.Second,
			Enabled: true,
		}, logger)
	}

	Context("when the client is not configured", func() {
		It("should degrade to the offline error", func() {
			client := insights.NewClient(insights.Config{Enabled: false}, logger)

			_, err := client.InventoryInsights(ctx, nil, nil)
			Expect(err).To(MatchError(internal.ErrInsightsOff))

			_, err = client.AnalyzeEfficiency(ctx, nil)
			Expect(err).To(MatchError(internal.ErrInsightsOff))
		})
	})

	Describe("InventoryInsights", func() {
		It("should post with bearer auth and return the text", func() {
			var gotAuth, gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				gotPath = r.URL.Path
				w.Write([]byte(`{"text": "copper stock is healthy"}`))
			}))
			defer server.Close()

			text, err := newClient(server.URL).InventoryInsights(ctx,
				[]inventory.Item{{Type: "COPPER", QuantityKg: 450}},
				[]machine.Machine{{Name: "Shredder X2000"}})

			Expect(err).ToNot(HaveOccurred())
			Expect(text).To(Equal("copper stock is healthy"))
			Expect(gotAuth).To(Equal("Bearer test-key"))
			Expect(gotPath).To(Equal("/v1/insights/inventory"))
		})

		It("should degrade when the service errors", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}))
			defer server.Close()

			_, err := newClient(server.URL).InventoryInsights(ctx, nil, nil)

			Expect(err).To(MatchError(internal.ErrInsightsOff))
		})
	})

	Describe("AnalyzeEfficiency", func() {
		It("should strip a markdown fence around the JSON", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("```json\n{\"summary\": \"steady output\", \"efficiencyScore\": 82}\n```"))
			}))
			defer server.Close()

			result, err := newClient(server.URL).AnalyzeEfficiency(ctx, []worklog.WorkLog{{ID: "l1"}})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Summary).To(Equal("steady output"))
			Expect(result.EfficiencyScore).To(Equal(82))
		})

		It("should degrade on a non-JSON body", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("sorry, try later"))
			}))
			defer server.Close()

			_, err := newClient(server.URL).AnalyzeEfficiency(ctx, nil)

			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("RecentWindow", func() {
	It("should cap the window at the sixty most recent logs", func() {
		logs := make([]worklog.WorkLog, 80)

		Expect(insights.RecentWindow(logs)).To(HaveLen(60))
	})

	It("should pass a short list through untouched", func() {
		logs := make([]worklog.WorkLog, 5)

		Expect(insights.RecentWindow(logs)).To(HaveLen(5))
	})
})
