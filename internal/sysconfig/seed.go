package sysconfig

import "time"

// DefaultConfig is the seed persisted on first access to the config
// collection. The tech-ops lists start populated because they have no
// built-in catalog behind them.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		AdminRemark:         "Keep safety gear on at all times.",
		LastUpdated:         time.Now(),
		CloudBackupURL:      "",
		CustomSourceItems:   []string{},
		CustomMaterialTypes: []string{},
		CustomTechItems:     []string{},

		CustomRamGenerations: []string{"PC2", "PC3", "PC4", "PC5"},
		CustomRamSizes:       []string{"1GB", "2GB", "4GB", "8GB", "16GB", "32GB", "64GB"},
		CustomProcessorTypes: []string{
			"Intel i3", "Intel i5", "Intel i7", "Intel i9",
			"Intel Xeon", "AMD Ryzen", "AMD EPYC",
		},
		CustomProcessorGenerations: []string{
			"1st Gen", "2nd Gen", "3rd Gen", "4th Gen", "5th Gen",
			"6th Gen", "7th Gen", "8th Gen", "9th Gen", "10th Gen",
			"11th Gen", "12th Gen", "13th Gen", "14th Gen",
		},
		CustomWipingDevices: []string{"HDD", "SSD", "NVMe", "Laptop", "Desktop CPU", "Phone", "Tablet"},
	}
}

// DefaultWaterLevels is the seed for the tank-level singleton.
func DefaultWaterLevels() *WaterLevels {
	return &WaterLevels{
		Fire:      85,
		Normal:    60,
		Drinking:  40,
		Overhead1: 90,
		Overhead2: 55,
	}
}
