package sysconfig

import (
	"log/slog"
	"time"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/store"
)

// Service manages the AppConfig and WaterLevels singletons.
type Service struct {
	store  *store.Store
	logger *slog.Logger
}

func NewService(st *store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

func (s *Service) Get() (*AppConfig, error) {
	var cfg AppConfig
	if err := s.store.Load(store.CollectionConfig, &cfg, DefaultConfig()); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *Service) save(cfg *AppConfig) error {
	return s.store.Save(store.CollectionConfig, cfg)
}

func (s *Service) UpdateAdminRemark(remark string) error {
	cfg, err := s.Get()
	if err != nil {
		return err
	}
	cfg.AdminRemark = remark
	cfg.LastUpdated = time.Now()
	return s.save(cfg)
}

func (s *Service) UpdateCloudBackupURL(url string) error {
	cfg, err := s.Get()
	if err != nil {
		return err
	}
	cfg.CloudBackupURL = url
	return s.save(cfg)
}

// Options returns the merged list for one dropdown kind.
func (s *Service) Options(kind OptionKind) (OptionList, error) {
	cfg, err := s.Get()
	if err != nil {
		return OptionList{}, err
	}
	return OptionList{
		Builtin: builtinFor(kind),
		Custom:  *customListFor(cfg, kind),
	}, nil
}

// AddCustomOption appends a value to the custom sublist; adding a value
// already present (builtin or custom) is a no-op.
func (s *Service) AddCustomOption(kind OptionKind, value string) error {
	if value == "" {
		return internal.NewValidationError("option value cannot be empty", internal.ErrCodeValidationFailed)
	}
	cfg, err := s.Get()
	if err != nil {
		return err
	}
	list := customListFor(cfg, kind)
	for _, v := range *list {
		if v == value {
			return nil
		}
	}
	for _, v := range builtinFor(kind) {
		if v == value {
			return nil
		}
	}
	*list = append(*list, value)
	s.logger.Info("custom option added", "kind", kind, "value", value)
	return s.save(cfg)
}

// RemoveCustomOption deletes a custom value. Built-in members are fixed
// and refuse removal.
func (s *Service) RemoveCustomOption(kind OptionKind, value string) error {
	cfg, err := s.Get()
	if err != nil {
		return err
	}
	list := customListFor(cfg, kind)
	for i, v := range *list {
		if v == value {
			*list = append((*list)[:i], (*list)[i+1:]...)
			s.logger.Info("custom option removed", "kind", kind, "value", value)
			return s.save(cfg)
		}
	}
	for _, v := range builtinFor(kind) {
		if v == value {
			return internal.ErrBuiltinOption
		}
	}
	return internal.ErrRecordNotFound
}

// RenameCustomOption replaces a custom value in place, keeping its list
// position.
func (s *Service) RenameCustomOption(kind OptionKind, oldName, newName string) error {
	if newName == "" {
		return internal.NewValidationError("option value cannot be empty", internal.ErrCodeValidationFailed)
	}
	cfg, err := s.Get()
	if err != nil {
		return err
	}
	list := customListFor(cfg, kind)
	for i, v := range *list {
		if v == oldName {
			(*list)[i] = newName
			s.logger.Info("custom option renamed", "kind", kind, "from", oldName, "to", newName)
			return s.save(cfg)
		}
	}
	for _, v := range builtinFor(kind) {
		if v == oldName {
			return internal.ErrBuiltinOption
		}
	}
	return internal.ErrRecordNotFound
}

func (s *Service) IsCustom(kind OptionKind, name string) (bool, error) {
	cfg, err := s.Get()
	if err != nil {
		return false, err
	}
	for _, v := range *customListFor(cfg, kind) {
		if v == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) WaterLevels() (*WaterLevels, error) {
	var levels WaterLevels
	if err := s.store.Load(store.CollectionWaterLevels, &levels, DefaultWaterLevels()); err != nil {
		return nil, err
	}
	return &levels, nil
}

func (s *Service) UpdateWaterLevels(levels WaterLevels) error {
	return s.store.Save(store.CollectionWaterLevels, &levels)
}

func customListFor(cfg *AppConfig, kind OptionKind) *[]string {
	switch kind {
	case OptionSourceItems:
		return &cfg.CustomSourceItems
	case OptionMaterialTypes:
		return &cfg.CustomMaterialTypes
	case OptionTechItems:
		return &cfg.CustomTechItems
	case OptionRamGenerations:
		return &cfg.CustomRamGenerations
	case OptionRamSizes:
		return &cfg.CustomRamSizes
	case OptionProcessorTypes:
		return &cfg.CustomProcessorTypes
	case OptionProcessorGenerations:
		return &cfg.CustomProcessorGenerations
	case OptionWipingDevices:
		return &cfg.CustomWipingDevices
	default:
		return &cfg.CustomSourceItems
	}
}
