package worklog_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal/core/events"
	"github.com/plantworks/facilityops/internal/inventory"
	"github.com/plantworks/facilityops/internal/store"
	"github.com/plantworks/facilityops/internal/worklog"
)

func TestWorkLogService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "WorkLog Service Suite")
}

func timeYesterday() time.Time {
	return time.Now().AddDate(0, 0, -1)
}

var _ = Describe("WorkLogService", func() {
	var (
		st         *store.Store
		bus        *events.EventBus
		logService *worklog.Service
		invService *inventory.Service
		logger     *slog.Logger
		ctx        context.Context
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		st = store.New(store.NewMemorySubstrate(), logger)
		bus = events.NewEventBus(logger)
		invService = inventory.NewService(st, bus, logger)
		logService = worklog.NewService(st, bus, logger)
		inventory.NewEventHandler(invService, logger).RegisterEventHandlers(bus)
		ctx = context.Background()
	})

	currentStock := func(materialType string) float64 {
		items, err := invService.GetAll()
		Expect(err).ToNot(HaveOccurred())
		for _, item := range items {
			if item.Type == materialType && item.Status == inventory.StatusCurrent {
				return item.QuantityKg
			}
		}
		return 0
	}

	Describe("Create", func() {
		Context("when the log carries processed material", func() {
			It("should credit the matching inventory stock exactly once", func() {
				before := currentStock("COPPER")

				created, err := logService.Create(ctx, worklog.WorkLog{
					UserID:            "w1",
					UserName:          "Safther",
					Category:          worklog.CategoryDismantling,
					MaterialType:      "COPPER",
					WeightProcessedKg: 25.5,
				})

				Expect(err).ToNot(HaveOccurred())
				Expect(created.InventoryApplied).To(BeTrue())
				Expect(currentStock("COPPER")).To(Equal(before + 25.5))
			})

			It("should auto-create a stock record for an unknown material", func() {
				_, err := logService.Create(ctx, worklog.WorkLog{
					UserID:            "w1",
					Category:          worklog.CategoryDismantling,
					MaterialType:      "PALLADIUM",
					WeightProcessedKg: 2,
				})

				Expect(err).ToNot(HaveOccurred())
				Expect(currentStock("PALLADIUM")).To(Equal(2.0))
			})
		})

		Context("when the log carries no material", func() {
			It("should not touch inventory", func() {
				before := currentStock("COPPER")

				created, err := logService.Create(ctx, worklog.WorkLog{
					UserID:   "w1",
					Category: worklog.CategoryCleaning,
				})

				Expect(err).ToNot(HaveOccurred())
				Expect(created.InventoryApplied).To(BeFalse())
				Expect(currentStock("COPPER")).To(Equal(before))
			})
		})

		It("should reject a negative weight", func() {
			_, err := logService.Create(ctx, worklog.WorkLog{
				UserID:            "w1",
				MaterialType:      "COPPER",
				WeightProcessedKg: -5,
			})

			Expect(err).To(HaveOccurred())
		})

		It("should default the date and approval status", func() {
			created, err := logService.Create(ctx, worklog.WorkLog{UserID: "w1"})

			Expect(err).ToNot(HaveOccurred())
			Expect(created.Date).ToNot(BeEmpty())
			Expect(created.Status).To(Equal(worklog.StatusPending))
		})
	})

	Describe("Update", func() {
		It("should never re-credit inventory, even when the weight changed", func() {
			created, err := logService.Create(ctx, worklog.WorkLog{
				UserID:            "w1",
				Category:          worklog.CategoryDismantling,
				MaterialType:      "COPPER",
				WeightProcessedKg: 10,
			})
			Expect(err).ToNot(HaveOccurred())
			after := currentStock("COPPER")

			updated := *created
			updated.WeightProcessedKg = 500
			Expect(logService.Update(updated)).To(Succeed())

			Expect(currentStock("COPPER")).To(Equal(after))

			got, err := logService.GetByID(created.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(got.InventoryApplied).To(BeTrue())
			Expect(got.WeightProcessedKg).To(Equal(500.0))
		})
	})

	Describe("GetAll", func() {
		It("should return logs newest date first", func() {
			for _, date := range []string{"2026-08-01", "2026-08-15", "2026-08-03"} {
				_, err := logService.Create(ctx, worklog.WorkLog{UserID: "w1", Date: date})
				Expect(err).ToNot(HaveOccurred())
			}

			logs, err := logService.GetAll()

			Expect(err).ToNot(HaveOccurred())
			Expect(logs).To(HaveLen(3))
			Expect(logs[0].Date).To(Equal("2026-08-15"))
			Expect(logs[2].Date).To(Equal("2026-08-01"))
		})
	})

	Describe("GetByUser", func() {
		It("should return only that worker's logs", func() {
			_, err := logService.Create(ctx, worklog.WorkLog{UserID: "w1"})
			Expect(err).ToNot(HaveOccurred())
			_, err = logService.Create(ctx, worklog.WorkLog{UserID: "w2"})
			Expect(err).ToNot(HaveOccurred())

			logs, err := logService.GetByUser("w2")

			Expect(err).ToNot(HaveOccurred())
			Expect(logs).To(HaveLen(1))
			Expect(logs[0].UserID).To(Equal("w2"))
		})
	})

	Describe("ComputeHours", func() {
		It("should subtract the break from the shift span", func() {
			Expect(worklog.ComputeHours("08:00", "17:00", "13:00", "14:00")).To(Equal(8.0))
		})

		It("should ignore a non-positive break span", func() {
			Expect(worklog.ComputeHours("08:00", "17:30", "14:00", "13:00")).To(Equal(9.5))
		})

		It("should clamp a negative shift at zero", func() {
			Expect(worklog.ComputeHours("17:00", "08:00", "", "")).To(BeZero())
		})

		It("should return zero for unparseable clocks", func() {
			Expect(worklog.ComputeHours("8am", "5pm", "", "")).To(BeZero())
		})
	})

	Describe("YesterdayPerformance", func() {
		It("should sum yesterday's weight and pick the top performer", func() {
			yesterday := worklog.DayStamp(timeYesterday())
			_, err := logService.Create(ctx, worklog.WorkLog{
				UserID: "w1", UserName: "Safther", Date: yesterday,
				MaterialType: "COPPER", WeightProcessedKg: 30,
			})
			Expect(err).ToNot(HaveOccurred())
			_, err = logService.Create(ctx, worklog.WorkLog{
				UserID: "w2", UserName: "Shafeeq", Date: yesterday,
				MaterialType: "COPPER", WeightProcessedKg: 45,
			})
			Expect(err).ToNot(HaveOccurred())

			summary, err := logService.YesterdayPerformance()

			Expect(err).ToNot(HaveOccurred())
			Expect(summary.TotalWeightKg).To(Equal(75.0))
			Expect(summary.TopPerformer.Name).To(Equal("Shafeeq"))
			Expect(summary.TopPerformer.WeightKg).To(Equal(45.0))
		})

		It("should report N/A when nothing was logged", func() {
			summary, err := logService.YesterdayPerformance()

			Expect(err).ToNot(HaveOccurred())
			Expect(summary.TopPerformer.Name).To(Equal("N/A"))
			Expect(summary.TotalWeightKg).To(BeZero())
		})
	})
})
