package sysconfig

// Built-in catalogs for the dropdown-backed enums. These are the fixed
// members; anything the plant adds on top lives in AppConfig's custom
// lists and is flagged as custom to the caller.

// BuiltinMaterialTypes are the raw materials recovered during
// dismantling.
var BuiltinMaterialTypes = []string{
	"PCB",
	"MOTHERBOARD",
	"GOLD_PLATE_BOARD",
	"COPPER",
	"DIRTY_COPPER",
	"ALUMINUM",
	"CAST_ALUMINUM",
	"HARD_ALUMINUM",
	"DIRTY_ALUMINUM",
	"SOFT_ALUMINUM",
	"IRON",
	"PLASTIC",
	"METAL",
	"BRASS",
	"BATTERY",
	"SCREEN",
	"CABLE",
	"SIMPLE_CABLE",
	"SIMPLE_SMALL_CABLE",
	"MEDIUM_BOARD",
	"HIGH_GRADE_BOARD",
	"HARD_DRIVE_BOARD",
	"SERVER_BOARD",
	"NETWORK_BOARD",
	"BACK_PLAIN_BOARD",
	"POWER_SUPPLY_GREEN",
	"POWER_SUPPLY_NOT_GREEN",
	"DVR_BOARD",
	"FINGER_BOARD",
	"LMS",
	"HMS",
	"MAGNETS",
	"FANS",
	"RAM",
	"PROCESSOR",
	"HARD_DISK",
}

// BuiltinSourceItems are the device kinds that arrive for dismantling.
var BuiltinSourceItems = []string{
	"POS_MACHINE",
	"HDD",
	"ODU_DEVICE",
	"NETWORK_EQUIPMENT",
	"SERVER",
	"TV_LCD",
	"UPS",
	"PRINTER",
	"OTHER",
}

// BuiltinTechItems are the tech-ops item kinds handled in the secure
// vault.
var BuiltinTechItems = []string{
	"RAM_DESKTOP",
	"RAM_SERVER",
	"RAM_LAPTOP",
	"PROCESSOR_DESKTOP",
	"PROCESSOR_SERVER",
	"CPU",
	"LAPTOP",
	"HDD",
	"SSD",
	"MONITOR",
	"KEYBOARD",
	"MOUSE",
	"EARPHONES",
	"CHARGER",
	"MOBILE",
	"TABLET",
	"SERVER_UNIT",
	"SERVER_CHASSIS",
	"NETWORK_SWITCH",
}

// builtinFor maps an option kind to its fixed members. Kinds without a
// fixed catalog (pure custom lists seeded in DefaultConfig) map to nil.
func builtinFor(kind OptionKind) []string {
	switch kind {
	case OptionMaterialTypes:
		return BuiltinMaterialTypes
	case OptionSourceItems:
		return BuiltinSourceItems
	case OptionTechItems:
		return BuiltinTechItems
	default:
		return nil
	}
}
