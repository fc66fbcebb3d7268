package maintenance_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal/maintenance"
	"github.com/plantworks/facilityops/internal/store"
)

func TestMaintenanceService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Maintenance Service Suite")
}

var _ = Describe("ValidTransition", func() {
	It("should allow the forward moves", func() {
		Expect(maintenance.ValidTransition(maintenance.StatusInProgress, maintenance.StatusScheduled)).To(BeTrue())
		Expect(maintenance.ValidTransition(maintenance.StatusCompleted, maintenance.StatusInProgress)).To(BeTrue())
		Expect(maintenance.ValidTransition(maintenance.StatusCompleted, maintenance.StatusScheduled)).To(BeTrue())
	})

	It("should reject backward moves", func() {
		Expect(maintenance.ValidTransition(maintenance.StatusScheduled, maintenance.StatusInProgress)).To(BeFalse())
		Expect(maintenance.ValidTransition(maintenance.StatusScheduled, maintenance.StatusCompleted)).To(BeFalse())
		Expect(maintenance.ValidTransition(maintenance.StatusInProgress, maintenance.StatusCompleted)).To(BeFalse())
	})
})

var _ = Describe("MaintenanceService", func() {
	var service *maintenance.Service

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		st := store.New(store.NewMemorySubstrate(), logger)
		service = maintenance.NewService(st, logger)
	})

	schedule := func(task maintenance.Task) *maintenance.Task {
		created, err := service.Schedule(task)
		Expect(err).ToNot(HaveOccurred())
		return created
	}

	Describe("Schedule", func() {
		It("should force new tasks into SCHEDULED state", func() {
			created := schedule(maintenance.Task{
				MachineName:   "Shredder Unit 1",
				Status:        maintenance.StatusCompleted,
				ScheduledDate: "2026-09-10",
			})

			Expect(created.Status).To(Equal(maintenance.StatusScheduled))
			Expect(created.ID).ToNot(BeEmpty())
		})
	})

	Describe("UpdateStatus", func() {
		It("should reject a backward move", func() {
			created := schedule(maintenance.Task{MachineName: "Baler", ScheduledDate: "2026-09-10"})
			Expect(service.UpdateStatus(created.ID, maintenance.StatusInProgress)).To(Succeed())

			err := service.UpdateStatus(created.ID, maintenance.StatusScheduled)

			Expect(err).To(HaveOccurred())
		})

		Context("when completing a recurring task", func() {
			It("should schedule the next weekly occurrence", func() {
				created := schedule(maintenance.Task{
					MachineName:   "Conveyor Belt A",
					ScheduledDate: "2026-09-01",
					Frequency:     maintenance.FrequencyWeekly,
				})

				Expect(service.UpdateStatus(created.ID, maintenance.StatusCompleted)).To(Succeed())

				tasks, err := service.GetAll()
				Expect(err).ToNot(HaveOccurred())
				Expect(tasks).To(HaveLen(2))

				next := tasks[1]
				Expect(next.ScheduledDate).To(Equal("2026-09-08"))
				Expect(next.Status).To(Equal(maintenance.StatusScheduled))
				Expect(next.ParentTaskID).To(Equal(created.ID))
				Expect(next.Frequency).To(Equal(maintenance.FrequencyWeekly))
			})

			It("should advance a monthly task by a calendar month", func() {
				created := schedule(maintenance.Task{
					MachineName:   "Granulator",
					ScheduledDate: "2026-01-31",
					Frequency:     maintenance.FrequencyMonthly,
				})

				Expect(service.UpdateStatus(created.ID, maintenance.StatusCompleted)).To(Succeed())

				tasks, err := service.GetAll()
				Expect(err).ToNot(HaveOccurred())
				Expect(tasks[1].ScheduledDate).To(Equal("2026-03-03"))
			})
		})

		Context("when completing a one-off task", func() {
			It("should not schedule anything new", func() {
				created := schedule(maintenance.Task{
					MachineName:   "Baler",
					ScheduledDate: "2026-09-01",
					Frequency:     maintenance.FrequencyNone,
				})

				Expect(service.UpdateStatus(created.ID, maintenance.StatusCompleted)).To(Succeed())

				tasks, err := service.GetAll()
				Expect(err).ToNot(HaveOccurred())
				Expect(tasks).To(HaveLen(1))
			})
		})
	})

	Describe("GetForTechnician", func() {
		It("should scope the schedule to one technician", func() {
			schedule(maintenance.Task{MachineName: "Baler", TechnicianID: "t1", ScheduledDate: "2026-09-10"})
			schedule(maintenance.Task{MachineName: "Shredder", TechnicianID: "t2", ScheduledDate: "2026-09-11"})

			scoped, err := service.GetForTechnician("t1")

			Expect(err).ToNot(HaveOccurred())
			Expect(scoped).To(HaveLen(1))
			Expect(scoped[0].TechnicianID).To(Equal("t1"))
		})

		It("should return everything for an empty technician id", func() {
			schedule(maintenance.Task{MachineName: "Baler", TechnicianID: "t1", ScheduledDate: "2026-09-10"})
			schedule(maintenance.Task{MachineName: "Shredder", TechnicianID: "t2", ScheduledDate: "2026-09-11"})

			all, err := service.GetForTechnician("")

			Expect(err).ToNot(HaveOccurred())
			Expect(all).To(HaveLen(2))
		})
	})

	Describe("Upcoming", func() {
		day := func(offset int) string {
			return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
		}

		It("should include tasks due within seven days, overdue ones too", func() {
			schedule(maintenance.Task{MachineName: "Baler", ScheduledDate: day(3)})
			schedule(maintenance.Task{MachineName: "Shredder", ScheduledDate: day(-2)})
			schedule(maintenance.Task{MachineName: "Granulator", ScheduledDate: day(30)})

			upcoming, err := service.Upcoming()

			Expect(err).ToNot(HaveOccurred())
			Expect(upcoming).To(HaveLen(2))
		})

		It("should skip completed tasks", func() {
			created := schedule(maintenance.Task{MachineName: "Baler", ScheduledDate: day(2)})
			Expect(service.UpdateStatus(created.ID, maintenance.StatusCompleted)).To(Succeed())

			upcoming, err := service.Upcoming()

			Expect(err).ToNot(HaveOccurred())
			Expect(upcoming).To(BeEmpty())
		})
	})
})
