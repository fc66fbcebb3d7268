package machine_test

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal/machine"
	"github.com/plantworks/facilityops/internal/store"
)

func TestMachineService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Machine Service Suite")
}

var _ = Describe("MachineService", func() {
	var service *machine.Service

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		st := store.New(store.NewMemorySubstrate(), logger)
		service = machine.NewService(st, logger)
	})

	Describe("Toggle", func() {
		It("should take an operational machine offline at rest readings", func() {
			toggled, err := service.Toggle("m1")

			Expect(err).ToNot(HaveOccurred())
			Expect(toggled.Status).To(Equal(machine.StatusOffline))
			Expect(toggled.IsManualControl).To(BeTrue())
			Expect(toggled.RPM).To(BeZero())
			Expect(toggled.PowerUsageKw).To(BeZero())
			Expect(toggled.Temperature).To(Equal(25.0))
		})

		It("should bring a stopped machine back at nominal readings", func() {
			_, err := service.Toggle("m1")
			Expect(err).ToNot(HaveOccurred())

			toggled, err := service.Toggle("m1")

			Expect(err).ToNot(HaveOccurred())
			Expect(toggled.Status).To(Equal(machine.StatusOperational))
			Expect(toggled.RPM).To(Equal(1200.0))
			Expect(toggled.PowerUsageKw).To(Equal(25.0))
			Expect(toggled.Temperature).To(Equal(60.0))
		})
	})

	Describe("SimulateTelemetry", func() {
		It("should refresh readings only for running machines", func() {
			machines, err := service.SimulateTelemetry()

			Expect(err).ToNot(HaveOccurred())
			for _, m := range machines {
				if m.Status != machine.StatusOperational {
					continue
				}
				Expect(m.Temperature).To(BeNumerically(">=", 40))
				Expect(m.Temperature).To(BeNumerically("<", 80))
				Expect(m.PowerUsageKw).To(BeNumerically(">=", 10))
				Expect(m.PowerUsageKw).To(BeNumerically("<=", 30))
			}
		})

		It("should idle conveyors at zero RPM", func() {
			created, err := service.Create(machine.Machine{
				Name:   "Conveyor Belt B",
				Status: machine.StatusOperational,
			})
			Expect(err).ToNot(HaveOccurred())

			machines, err := service.SimulateTelemetry()
			Expect(err).ToNot(HaveOccurred())

			for _, m := range machines {
				if m.ID == created.ID {
					Expect(m.RPM).To(BeZero())
				}
				if m.Status == machine.StatusOperational && !strings.Contains(m.Name, "Conveyor") {
					Expect(m.RPM).To(BeNumerically(">=", 1000))
				}
			}
		})

		It("should never touch a manually controlled machine", func() {
			toggled, err := service.Toggle("m1")
			Expect(err).ToNot(HaveOccurred())

			machines, err := service.SimulateTelemetry()
			Expect(err).ToNot(HaveOccurred())

			for _, m := range machines {
				if m.ID == "m1" {
					Expect(m.Status).To(Equal(toggled.Status))
					Expect(m.RPM).To(Equal(toggled.RPM))
					Expect(m.Temperature).To(Equal(toggled.Temperature))
				}
			}
		})

		It("should leave non-operational machines at their last readings", func() {
			before, err := service.GetByID("m2")
			Expect(err).ToNot(HaveOccurred())
			Expect(before.Status).To(Equal(machine.StatusMaintenance))

			_, err = service.SimulateTelemetry()
			Expect(err).ToNot(HaveOccurred())

			after, err := service.GetByID("m2")
			Expect(err).ToNot(HaveOccurred())
			Expect(after.Temperature).To(Equal(before.Temperature))
		})
	})
})
