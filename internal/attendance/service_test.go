package attendance_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal/attendance"
	"github.com/plantworks/facilityops/internal/store"
)

func TestAttendanceService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attendance Service Suite")
}

var _ = Describe("AttendanceService", func() {
	var service *attendance.Service

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		st := store.New(store.NewMemorySubstrate(), logger)
		service = attendance.NewService(st, logger)
	})

	Describe("Mark", func() {
		It("should create a record with a fresh id", func() {
			created, err := service.Mark(attendance.Record{
				UserID: "w1", UserName: "Safther", Date: "2026-08-31",
				InTime: "08:02", Status: attendance.StatusPresent,
				Source: attendance.SourceManual,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(created.ID).ToNot(BeEmpty())
		})

		Context("when a record for the same user and date exists", func() {
			It("should replace it and keep the original id", func() {
				first, err := service.Mark(attendance.Record{
					UserID: "w1", Date: "2026-08-31", Status: attendance.StatusPresent,
				})
				Expect(err).ToNot(HaveOccurred())

				second, err := service.Mark(attendance.Record{
					UserID: "w1", Date: "2026-08-31", Status: attendance.StatusLate,
					InTime: "09:40",
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(second.ID).To(Equal(first.ID))

				records, err := service.GetByDate("2026-08-31")
				Expect(err).ToNot(HaveOccurred())
				Expect(records).To(HaveLen(1))
				Expect(records[0].Status).To(Equal(attendance.StatusLate))
			})
		})

		It("should keep records for other dates apart", func() {
			_, err := service.Mark(attendance.Record{UserID: "w1", Date: "2026-08-30", Status: attendance.StatusPresent})
			Expect(err).ToNot(HaveOccurred())
			_, err = service.Mark(attendance.Record{UserID: "w1", Date: "2026-08-31", Status: attendance.StatusPresent})
			Expect(err).ToNot(HaveOccurred())

			all, err := service.GetAll()
			Expect(err).ToNot(HaveOccurred())
			Expect(all).To(HaveLen(2))
		})
	})

	Describe("SaveAll", func() {
		It("should drop existing records the batch replaces", func() {
			_, err := service.Mark(attendance.Record{
				UserID: "w1", Date: "2026-08-31", Status: attendance.StatusPresent,
				Source: attendance.SourceManual,
			})
			Expect(err).ToNot(HaveOccurred())

			batch := []attendance.Record{
				{UserID: "w1", Date: "2026-08-31", Status: attendance.StatusLate, Source: attendance.SourceBiometric},
				{UserID: "w2", Date: "2026-08-31", Status: attendance.StatusPresent, Source: attendance.SourceBiometric},
			}
			Expect(service.SaveAll(batch)).To(Succeed())

			records, err := service.GetByDate("2026-08-31")
			Expect(err).ToNot(HaveOccurred())
			Expect(records).To(HaveLen(2))
			for _, r := range records {
				Expect(r.Source).To(Equal(attendance.SourceBiometric))
				Expect(r.ID).ToNot(BeEmpty())
			}
		})

		It("should leave unrelated records alone", func() {
			_, err := service.Mark(attendance.Record{UserID: "w9", Date: "2026-08-30", Status: attendance.StatusLeave})
			Expect(err).ToNot(HaveOccurred())

			Expect(service.SaveAll([]attendance.Record{
				{UserID: "w1", Date: "2026-08-31", Status: attendance.StatusPresent},
			})).To(Succeed())

			kept, err := service.GetByDate("2026-08-30")
			Expect(err).ToNot(HaveOccurred())
			Expect(kept).To(HaveLen(1))
			Expect(kept[0].UserID).To(Equal("w9"))
		})
	})
})
