package logistics_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal/logistics"
	"github.com/plantworks/facilityops/internal/store"
)

func TestLogisticsService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Logistics Service Suite")
}

var _ = Describe("NetWeight", func() {
	It("should subtract tare from gross", func() {
		Expect(logistics.NetWeight(105.5, 5.5)).To(Equal(100.0))
	})

	It("should floor at zero when tare exceeds gross", func() {
		Expect(logistics.NetWeight(10, 12)).To(BeZero())
	})
})

var _ = Describe("Entry", func() {
	Describe("Normalize", func() {
		It("should recompute item nets and the entry total", func() {
			entry := logistics.Entry{
				TotalNetWeight: 999,
				Breakdown: []logistics.ItemBreakdown{
					{Name: "Copper bundle", GrossWeight: 120, TareWeight: 20},
					{Name: "Steel scrap", GrossWeight: 50, TareWeight: 60, NetWeight: 44},
				},
			}

			entry.Normalize()

			Expect(entry.Breakdown[0].NetWeight).To(Equal(100.0))
			Expect(entry.Breakdown[1].NetWeight).To(BeZero())
			Expect(entry.TotalNetWeight).To(Equal(100.0))
		})

		It("should leave a direct total alone when there is no breakdown", func() {
			entry := logistics.Entry{TotalNetWeight: 420}

			entry.Normalize()

			Expect(entry.TotalNetWeight).To(Equal(420.0))
		})
	})
})

var _ = Describe("LogisticsService", func() {
	var service *logistics.Service

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		st := store.New(store.NewMemorySubstrate(), logger)
		service = logistics.NewService(st, logger)
	})

	Describe("Create", func() {
		It("should prepend so the newest dispatch lists first", func() {
			_, err := service.Create(logistics.Entry{CustomerName: "First Customer"})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.Create(logistics.Entry{CustomerName: "Second Customer"})
			Expect(err).ToNot(HaveOccurred())

			entries, err := service.GetAll()

			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].CustomerName).To(Equal("Second Customer"))
		})

		It("should normalize the breakdown before storing", func() {
			created, err := service.Create(logistics.Entry{
				CustomerName: "Metal Trader",
				Breakdown: []logistics.ItemBreakdown{
					{Name: "Copper", GrossWeight: 80, TareWeight: 10},
				},
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(created.TotalNetWeight).To(Equal(70.0))
		})
	})

	Describe("Update", func() {
		It("should renormalize edited weights", func() {
			created, err := service.Create(logistics.Entry{
				CustomerName: "Metal Trader",
				Breakdown: []logistics.ItemBreakdown{
					{Name: "Copper", GrossWeight: 80, TareWeight: 10},
				},
			})
			Expect(err).ToNot(HaveOccurred())

			edited := *created
			edited.Breakdown[0].GrossWeight = 100
			Expect(service.Update(edited)).To(Succeed())

			got, err := service.GetByID(created.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(got.TotalNetWeight).To(Equal(90.0))
		})
	})
})
