package sysconfig

import (
	"sort"
	"time"
)

// AppConfig is the singleton holding user-extensible dropdown lists, the
// dashboard remark and the optional external backup destination.
type AppConfig struct {
	AdminRemark    string    `json:"adminRemark"`
	LastUpdated    time.Time `json:"lastUpdated"`
	CloudBackupURL string    `json:"cloudBackupUrl,omitempty"`

	CustomSourceItems   []string `json:"customSourceItems"`
	CustomMaterialTypes []string `json:"customMaterialTypes"`
	CustomTechItems     []string `json:"customTechItems"`

	CustomRamGenerations       []string `json:"customRamGenerations"`
	CustomRamSizes             []string `json:"customRamSizes"`
	CustomProcessorTypes       []string `json:"customProcessorTypes"`
	CustomProcessorGenerations []string `json:"customProcessorGenerations"`
	CustomWipingDevices        []string `json:"customWipingDevices"`
}

// WaterLevels is the singleton of tank fill percentages shown on the
// dashboard.
type WaterLevels struct {
	Fire      int `json:"fire"`
	Normal    int `json:"normal"`
	Drinking  int `json:"drinking"`
	Overhead1 int `json:"overhead1"`
	Overhead2 int `json:"overhead2"`
}

// OptionKind names one dropdown-backed list that merges a built-in
// catalog with custom additions.
type OptionKind string

const (
	OptionSourceItems          OptionKind = "SOURCE_ITEMS"
	OptionMaterialTypes        OptionKind = "MATERIAL_TYPES"
	OptionTechItems            OptionKind = "TECH_ITEMS"
	OptionRamGenerations       OptionKind = "RAM_GENERATIONS"
	OptionRamSizes             OptionKind = "RAM_SIZES"
	OptionProcessorTypes       OptionKind = "PROCESSOR_TYPES"
	OptionProcessorGenerations OptionKind = "PROCESSOR_GENERATIONS"
	OptionWipingDevices        OptionKind = "WIPING_DEVICES"
)

// OptionList pairs the fixed built-in members of a dropdown with the
// user-added custom ones. Built-ins are never removable; only the custom
// sublist is mutated.
type OptionList struct {
	Builtin []string `json:"builtin"`
	Custom  []string `json:"custom"`
}

// All returns the deduplicated union, sorted lexically.
func (l OptionList) All() []string {
	seen := make(map[string]struct{}, len(l.Builtin)+len(l.Custom))
	var all []string
	for _, v := range l.Builtin {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			all = append(all, v)
		}
	}
	for _, v := range l.Custom {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			all = append(all, v)
		}
	}
	sort.Strings(all)
	return all
}

func (l OptionList) IsCustom(name string) bool {
	for _, v := range l.Custom {
		if v == name {
			return true
		}
	}
	return false
}

func (l OptionList) IsBuiltin(name string) bool {
	for _, v := range l.Builtin {
		if v == name {
			return true
		}
	}
	return false
}
