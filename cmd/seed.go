package cmd

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/plantworks/facilityops/internal/attendance"
	"github.com/plantworks/facilityops/internal/core/events"
	"github.com/plantworks/facilityops/internal/inventory"
	"github.com/plantworks/facilityops/internal/logistics"
	"github.com/plantworks/facilityops/internal/machine"
	"github.com/plantworks/facilityops/internal/maintenance"
	"github.com/plantworks/facilityops/internal/store"
	"github.com/plantworks/facilityops/internal/sysconfig"
	"github.com/plantworks/facilityops/internal/task"
	"github.com/plantworks/facilityops/internal/user"
	"github.com/plantworks/facilityops/internal/visitor"
	"github.com/plantworks/facilityops/internal/worklog"
	"github.com/plantworks/facilityops/pkg/database"
	"github.com/plantworks/facilityops/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the record store with defaults",
	Long:  `Writes the default roster, inventory, machines, configuration and water levels into the store. With --history, also generates a month of demo work logs.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSeed(); err != nil {
			fmt.Fprintf(os.Stderr, "Seed failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func openStore() (*store.Store, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	db, err := database.Connect(database.Config{
		Driver:          cfg.Storage.Driver,
		DSN:             cfg.Storage.Source,
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: cfg.Storage.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect storage: %w", err)
	}

	substrate, err := store.NewGormSubstrate(db)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare record store: %w", err)
	}
	return store.New(substrate, logger.L()), nil
}

func runSeed() error {
	st, err := openStore()
	if err != nil {
		return err
	}
	lg := logger.L()

	if clearData {
		if err := st.Reset(); err != nil {
			return fmt.Errorf("failed to clear store: %w", err)
		}
		lg.Info("store cleared")
	}

	bus := events.NewEventBus(lg)

	// A first load of each collection persists its seed.
	touches := []func() error{
		func() error { _, err := user.NewService(st, lg).GetAll(); return err },
		func() error { _, err := inventory.NewService(st, bus, lg).GetAll(); return err },
		func() error { _, err := worklog.NewService(st, bus, lg).GetAll(); return err },
		func() error { _, err := logistics.NewService(st, lg).GetAll(); return err },
		func() error { _, err := visitor.NewService(st, lg).GetAll(); return err },
		func() error { _, err := maintenance.NewService(st, lg).GetAll(); return err },
		func() error { _, err := task.NewService(st, lg).GetAll(); return err },
		func() error { _, err := attendance.NewService(st, lg).GetAll(); return err },
		func() error { _, err := machine.NewService(st, lg).GetAll(); return err },
		func() error { _, err := sysconfig.NewService(st, lg).Get(); return err },
		func() error { _, err := sysconfig.NewService(st, lg).WaterLevels(); return err },
	}
	for _, touch := range touches {
		if err := touch(); err != nil {
			return err
		}
	}

	if seedHistory {
		if err := seedDemoHistory(st, lg); err != nil {
			return err
		}
	}

	lg.Info("seed complete", "history", seedHistory)
	return nil
}

// seedDemoHistory writes a month of plausible dismantling output so
// charts and performance views have something to show. Fridays are the
// plant's weekend.
func seedDemoHistory(st *store.Store, lg *slog.Logger) error {
	var logs []worklog.WorkLog
	if err := st.Load(store.CollectionLogs, &logs, []worklog.WorkLog{}); err != nil {
		return err
	}

	var workers []user.User
	if err := st.Load(store.CollectionUsers, &workers, user.DefaultUsers()); err != nil {
		return err
	}

	today := time.Now()
	generated := 0
	for i := 0; i < 30; i++ {
		date := today.AddDate(0, 0, -i)
		if date.Weekday() == time.Friday {
			continue
		}
		dateStr := worklog.DayStamp(date)

		for _, w := range workers {
			if w.Role != user.RoleWorker {
				continue
			}
			if rand.Float64() <= 0.3 {
				continue
			}
			logs = append(logs, worklog.WorkLog{
				ID:                uuid.NewString(),
				UserID:            w.ID,
				UserName:          w.Name,
				Date:              dateStr,
				Category:          worklog.CategoryDismantling,
				TaskDescription:   "Routine dismantling",
				MaterialType:      "COPPER",
				WeightProcessedKg: float64(10 + rand.Intn(50)),
				Status:            worklog.StatusApproved,
				HoursWorked:       8,
				StartTime:         "08:00",
				EndTime:           "17:00",
				BreakStartTime:    "13:00",
				BreakEndTime:      "14:00",
			})
			generated++
		}
	}

	if err := st.Save(store.CollectionLogs, logs); err != nil {
		return err
	}
	lg.Info("demo history generated", "logs", generated)
	return nil
}
