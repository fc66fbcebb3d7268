package worklog_test

import (
	"context"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/core/events"
	"github.com/plantworks/facilityops/internal/inventory"
	"github.com/plantworks/facilityops/internal/store"
	"github.com/plantworks/facilityops/internal/worklog"
)

var _ = Describe("BuildDistribution", func() {
	contributors := map[string]string{"w1": "Safther", "w2": "Shafeeq"}

	Context("with a 30/70 unit split", func() {
		sources := []worklog.SourceEntry{
			{UserID: "w1", Item: "CPU", Qty: 30},
			{UserID: "w2", Item: "CPU", Qty: 70},
		}
		outputs := []worklog.OutputEntry{
			{Material: "COPPER", WeightKg: 100},
		}

		It("should allocate weights in proportion to input units", func() {
			plan, err := worklog.BuildDistribution(contributors, sources, outputs)

			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Shares).To(HaveLen(2))
			Expect(plan.Shares[0].UserID).To(Equal("w1"))
			Expect(plan.Shares[0].Allocations[0].WeightKg).To(Equal(30.0))
			Expect(plan.Shares[1].Allocations[0].WeightKg).To(Equal(70.0))
		})

		It("should render the share as a one-decimal percentage", func() {
			plan, err := worklog.BuildDistribution(contributors, sources, outputs)

			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Shares[0].SharePct).To(Equal("30.0"))
			Expect(plan.Shares[1].SharePct).To(Equal("70.0"))
		})

		It("should summarize each contributor's inputs", func() {
			plan, err := worklog.BuildDistribution(contributors, sources, outputs)

			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Shares[0].SourceSummary).To(Equal("30 CPU"))
		})

		It("should order contributors by user id", func() {
			plan, err := worklog.BuildDistribution(contributors, sources, outputs)

			Expect(err).ToNot(HaveOccurred())
			Expect(plan.Shares[0].UserID).To(Equal("w1"))
			Expect(plan.Shares[1].UserID).To(Equal("w2"))
		})
	})

	It("should round each allocation to two decimals", func() {
		plan, err := worklog.BuildDistribution(
			map[string]string{"w1": "A", "w2": "B", "w3": "C"},
			[]worklog.SourceEntry{
				{UserID: "w1", Item: "PSU", Qty: 1},
				{UserID: "w2", Item: "PSU", Qty: 1},
				{UserID: "w3", Item: "PSU", Qty: 1},
			},
			[]worklog.OutputEntry{{Material: "STEEL", WeightKg: 100}},
		)

		Expect(err).ToNot(HaveOccurred())
		for _, share := range plan.Shares {
			Expect(share.Allocations[0].WeightKg).To(Equal(33.33))
		}
	})

	It("should give a zero-unit contributor an empty share", func() {
		plan, err := worklog.BuildDistribution(
			contributors,
			[]worklog.SourceEntry{{UserID: "w1", Item: "CPU", Qty: 50}},
			[]worklog.OutputEntry{{Material: "COPPER", WeightKg: 20}},
		)

		Expect(err).ToNot(HaveOccurred())
		Expect(plan.Shares[1].UserID).To(Equal("w2"))
		Expect(plan.Shares[1].SharePct).To(Equal("0.0"))
		Expect(plan.Shares[1].Allocations[0].WeightKg).To(BeZero())
	})

	Context("when no input units were recorded", func() {
		It("should refuse instead of dividing by zero", func() {
			_, err := worklog.BuildDistribution(
				contributors,
				[]worklog.SourceEntry{{UserID: "w1", Item: "CPU", Qty: 0}},
				[]worklog.OutputEntry{{Material: "COPPER", WeightKg: 20}},
			)

			Expect(err).To(MatchError(internal.ErrNoSourceUnits))
		})
	})
})

var _ = Describe("DistributionPlan", func() {
	Describe("SetWeight", func() {
		It("should override one allocation without re-normalizing the rest", func() {
			plan, err := worklog.BuildDistribution(
				map[string]string{"w1": "Safther", "w2": "Shafeeq"},
				[]worklog.SourceEntry{
					{UserID: "w1", Item: "CPU", Qty: 50},
					{UserID: "w2", Item: "CPU", Qty: 50},
				},
				[]worklog.OutputEntry{{Material: "COPPER", WeightKg: 100}},
			)
			Expect(err).ToNot(HaveOccurred())

			Expect(plan.SetWeight(0, 0, 62.5)).To(Succeed())

			Expect(plan.Shares[0].Allocations[0].WeightKg).To(Equal(62.5))
			Expect(plan.Shares[1].Allocations[0].WeightKg).To(Equal(50.0))
		})

		It("should reject an out-of-range index", func() {
			plan := &worklog.DistributionPlan{}

			Expect(plan.SetWeight(0, 0, 10)).ToNot(Succeed())
		})
	})
})

var _ = Describe("ConfirmDistribution", func() {
	var (
		st         *store.Store
		logService *worklog.Service
		invService *inventory.Service
		ctx        context.Context
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		st = store.New(store.NewMemorySubstrate(), logger)
		bus := events.NewEventBus(logger)
		invService = inventory.NewService(st, bus, logger)
		logService = worklog.NewService(st, bus, logger)
		inventory.NewEventHandler(invService, logger).RegisterEventHandlers(bus)
		ctx = context.Background()
	})

	buildPlan := func() *worklog.DistributionPlan {
		plan, err := worklog.BuildDistribution(
			map[string]string{"w1": "Safther", "w2": "Shafeeq"},
			[]worklog.SourceEntry{
				{UserID: "w1", Item: "CPU", Qty: 30},
				{UserID: "w2", Item: "CPU", Qty: 70},
			},
			[]worklog.OutputEntry{
				{Material: "COPPER", WeightKg: 100},
				{Material: "ALUMINIUM", WeightKg: 40},
			},
		)
		Expect(err).ToNot(HaveOccurred())
		plan.Date = "2026-08-31"
		plan.StartTime = "08:00"
		plan.EndTime = "17:00"
		plan.BreakStartTime = "13:00"
		plan.BreakEndTime = "14:00"
		return plan
	}

	It("should create one pending log per contributor and material", func() {
		created, err := logService.ConfirmDistribution(ctx, buildPlan())

		Expect(err).ToNot(HaveOccurred())
		Expect(created).To(HaveLen(4))
		for _, log := range created {
			Expect(log.Status).To(Equal(worklog.StatusPending))
			Expect(log.Category).To(Equal(worklog.CategoryDismantling))
			Expect(log.SourceItem).To(Equal("Batch Mixed"))
			Expect(log.HoursWorked).To(Equal(8.0))
		}
	})

	It("should stamp every log with the same batch id", func() {
		created, err := logService.ConfirmDistribution(ctx, buildPlan())

		Expect(err).ToNot(HaveOccurred())
		Expect(created[0].BatchID).ToNot(BeEmpty())
		for _, log := range created {
			Expect(log.BatchID).To(Equal(created[0].BatchID))
		}
	})

	It("should describe each log with the summary and share", func() {
		created, err := logService.ConfirmDistribution(ctx, buildPlan())

		Expect(err).ToNot(HaveOccurred())
		Expect(created[0].TaskDescription).To(Equal("Batch Dismantling: 30 CPU. (Share: 30.0%)"))
	})

	It("should credit inventory with each allocated weight", func() {
		var before float64
		items, err := invService.GetAll()
		Expect(err).ToNot(HaveOccurred())
		for _, item := range items {
			if item.Type == "COPPER" && item.Status == inventory.StatusCurrent {
				before = item.QuantityKg
			}
		}

		_, err = logService.ConfirmDistribution(ctx, buildPlan())
		Expect(err).ToNot(HaveOccurred())

		items, err = invService.GetAll()
		Expect(err).ToNot(HaveOccurred())
		var after float64
		for _, item := range items {
			if item.Type == "COPPER" && item.Status == inventory.StatusCurrent {
				after = item.QuantityKg
			}
		}
		Expect(after).To(Equal(before + 100))
	})

	Context("when the plan carries no allocations", func() {
		It("should refuse", func() {
			_, err := logService.ConfirmDistribution(ctx, &worklog.DistributionPlan{
				Shares: []worklog.ContributorShare{{UserID: "w1"}},
			})

			Expect(err).To(MatchError(internal.ErrEmptyBatch))
		})
	})
})
