package inventory_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal/core/events"
	"github.com/plantworks/facilityops/internal/inventory"
	"github.com/plantworks/facilityops/internal/store"
)

func TestInventoryService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inventory Service Suite")
}

var _ = Describe("InventoryService", func() {
	var (
		service *inventory.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		st := store.New(store.NewMemorySubstrate(), logger)
		bus := events.NewEventBus(logger)
		service = inventory.NewService(st, bus, logger)
		ctx = context.Background()
	})

	findCurrent := func(materialType string) *inventory.Item {
		items, err := service.GetAll()
		Expect(err).ToNot(HaveOccurred())
		for i := range items {
			if items[i].Type == materialType && items[i].Status == inventory.StatusCurrent {
				return &items[i]
			}
		}
		return nil
	}

	Describe("Increment", func() {
		Context("when a current record for the material exists", func() {
			It("should add the weight to it", func() {
				before := findCurrent("COPPER")
				Expect(before).ToNot(BeNil())

				Expect(service.Increment("COPPER", 12.5, inventory.CategoryOperations)).To(Succeed())

				after := findCurrent("COPPER")
				Expect(after.QuantityKg).To(Equal(before.QuantityKg + 12.5))
				Expect(after.ID).To(Equal(before.ID))
			})
		})

		Context("when no current record exists", func() {
			It("should auto-create one at the default location", func() {
				Expect(findCurrent("PALLADIUM")).To(BeNil())

				Expect(service.Increment("PALLADIUM", 3, inventory.CategoryTechOps)).To(Succeed())

				created := findCurrent("PALLADIUM")
				Expect(created).ToNot(BeNil())
				Expect(created.QuantityKg).To(Equal(3.0))
				Expect(created.Location).To(Equal(inventory.DefaultLocation))
				Expect(created.Category).To(Equal(inventory.CategoryTechOps))
			})
		})

		It("should reject a non-positive amount", func() {
			Expect(service.Increment("COPPER", 0, inventory.CategoryOperations)).ToNot(Succeed())
			Expect(service.Increment("COPPER", -4, inventory.CategoryOperations)).ToNot(Succeed())
		})
	})

	Describe("MoveStockToSales", func() {
		It("should debit the source and create a matching FOR_SALE record", func() {
			source := findCurrent("COPPER")
			Expect(source).ToNot(BeNil())
			before := source.QuantityKg

			sale, err := service.MoveStockToSales(ctx, source.ID, 100, 0, &inventory.SalesDetails{
				GrossWeight:   105,
				TareWeight:    5,
				NetWeight:     100,
				PackagingType: inventory.PackagingJumboBag,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(sale.Status).To(Equal(inventory.StatusForSale))
			Expect(sale.QuantityKg).To(Equal(100.0))
			Expect(sale.ID).ToNot(Equal(source.ID))

			debited, err := service.GetByID(source.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(debited.QuantityKg).To(Equal(before - 100))
		})

		It("should clamp the source at zero when the move exceeds the stock", func() {
			source := findCurrent("COPPER")
			Expect(source).ToNot(BeNil())

			sale, err := service.MoveStockToSales(ctx, source.ID, source.QuantityKg+50, 0, nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(sale.QuantityKg).To(Equal(source.QuantityKg + 50))

			debited, err := service.GetByID(source.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(debited.QuantityKg).To(BeZero())
		})

		It("should refuse a move with neither weight nor units", func() {
			source := findCurrent("COPPER")
			Expect(source).ToNot(BeNil())

			_, err := service.MoveStockToSales(ctx, source.ID, 0, 0, nil)

			Expect(err).To(HaveOccurred())
		})

		It("should return not found for an unknown item", func() {
			_, err := service.MoveStockToSales(ctx, "missing", 10, 0, nil)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Create", func() {
		It("should reject negative quantities", func() {
			_, err := service.Create(inventory.Item{Type: "STEEL", QuantityKg: -1})

			Expect(err).To(HaveOccurred())
		})

		It("should default the status to CURRENT", func() {
			created, err := service.Create(inventory.Item{Type: "STEEL", QuantityKg: 10})

			Expect(err).ToNot(HaveOccurred())
			Expect(created.Status).To(Equal(inventory.StatusCurrent))
			Expect(created.ID).ToNot(BeEmpty())
		})
	})

	Describe("CSV import", func() {
		It("should update rows by id and create the rest", func() {
			items, err := service.GetAll()
			Expect(err).ToNot(HaveOccurred())
			existing := items[0]

			csv := "id,type,category,status,quantityKg,location\n" +
				`"` + existing.ID + `","` + existing.Type + `","OPERATIONS","CURRENT","9999","Relocated"` + "\n" +
				`"","ZINC","OPERATIONS","CURRENT","42","Yard C"`

			stats, err := service.ImportCSV(csv)

			Expect(err).ToNot(HaveOccurred())
			Expect(stats.Updated).To(Equal(1))
			Expect(stats.Created).To(Equal(1))

			updated, err := service.GetByID(existing.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.QuantityKg).To(Equal(9999.0))
			Expect(updated.Location).To(Equal("Relocated"))

			Expect(findCurrent("ZINC")).ToNot(BeNil())
		})
	})
})
