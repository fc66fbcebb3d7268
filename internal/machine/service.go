package machine

import (
	"log/slog"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/store"
)

type Service struct {
	store  *store.Store
	logger *slog.Logger
}

func NewService(st *store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

func (s *Service) load() ([]Machine, error) {
	var machines []Machine
	if err := s.store.Load(store.CollectionMachines, &machines, DefaultMachines()); err != nil {
		return nil, err
	}
	return machines, nil
}

func (s *Service) save(machines []Machine) error {
	return s.store.Save(store.CollectionMachines, machines)
}

func (s *Service) GetAll() ([]Machine, error) {
	return s.load()
}

func (s *Service) GetByID(id string) (*Machine, error) {
	machines, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range machines {
		if machines[i].ID == id {
			return &machines[i], nil
		}
	}
	return nil, internal.ErrRecordNotFound
}

func (s *Service) Create(m Machine) (*Machine, error) {
	machines, err := s.load()
	if err != nil {
		return nil, err
	}

	m.ID = uuid.NewString()
	if m.Status == "" {
		m.Status = StatusOperational
	}

	machines = append(machines, m)
	if err := s.save(machines); err != nil {
		return nil, err
	}
	s.logger.Info("machine registered", "machine_id", m.ID, "name", m.Name)
	return &m, nil
}

func (s *Service) Update(updated Machine) error {
	machines, err := s.load()
	if err != nil {
		return err
	}
	for i := range machines {
		if machines[i].ID == updated.ID {
			machines[i] = updated
			return s.save(machines)
		}
	}
	return internal.ErrRecordNotFound
}

func (s *Service) Delete(id string) error {
	machines, err := s.load()
	if err != nil {
		return err
	}
	for i := range machines {
		if machines[i].ID == id {
			machines = append(machines[:i], machines[i+1:]...)
			return s.save(machines)
		}
	}
	return internal.ErrRecordNotFound
}

// Toggle flips a machine between OPERATIONAL and OFFLINE and pins it to
// manual control so the next telemetry sweep leaves it alone. Readings
// snap to rest or nominal values for the new state.
func (s *Service) Toggle(id string) (*Machine, error) {
	machines, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range machines {
		if machines[i].ID != id {
			continue
		}
		m := &machines[i]
		m.IsManualControl = true
		if m.Status == StatusOperational {
			m.Status = StatusOffline
			m.RPM = 0
			m.PowerUsageKw = 0
			m.Temperature = 25
		} else {
			m.Status = StatusOperational
			m.RPM = 1200
			m.PowerUsageKw = 25
			m.Temperature = 60
		}
		if err := s.save(machines); err != nil {
			return nil, err
		}
		s.logger.Info("machine toggled", "machine_id", id, "status", m.Status)
		return m, nil
	}
	return nil, internal.ErrRecordNotFound
}

// SimulateTelemetry refreshes readings for running machines the way a
// gateway poll would. Manually controlled machines and machines that
// are not operational keep their last readings. Conveyors idle at zero
// RPM.
func (s *Service) SimulateTelemetry() ([]Machine, error) {
	machines, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range machines {
		m := &machines[i]
		if m.IsManualControl || m.Status != StatusOperational {
			continue
		}

		m.Temperature = float64(40 + rand.Intn(40))
		if strings.Contains(m.Name, "Conveyor") {
			m.RPM = 0
		} else {
			m.RPM = float64(1000 + rand.Intn(2000))
		}
		m.PowerUsageKw = math.Round((10+rand.Float64()*20)*10) / 10
	}

	if err := s.save(machines); err != nil {
		return nil, err
	}
	s.logger.Debug("machine telemetry synced", "count", len(machines))
	return machines, nil
}
