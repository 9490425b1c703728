package models

// Icon identifies one of the fixed service icons. Stored services carry the
// icon as a string key; ServiceIcon resolves it.
type Icon int

const (
	IconGrassMushroom Icon = iota
	IconGardeningShears
	IconOakLeaf
	IconFlowerPot
	IconMapleLeaf
	IconPlantSeed
)

var iconKeys = map[string]Icon{
	"GiGrassMushroom":   IconGrassMushroom,
	"GiGardeningShears": IconGardeningShears,
	"GiOakLeaf":         IconOakLeaf,
	"GiFlowerPot":       IconFlowerPot,
	"GiMapleLeaf":       IconMapleLeaf,
	"GiPlantSeed":       IconPlantSeed,
}

// ServiceIcon resolves a stored icon key. Unknown keys fall back to the grass
// icon.
func ServiceIcon(key string) Icon {
	if icon, ok := iconKeys[key]; ok {
		return icon
	}
	return IconGrassMushroom
}

func (i Icon) Key() string {
	switch i {
	case IconGardeningShears:
		return "GiGardeningShears"
	case IconOakLeaf:
		return "GiOakLeaf"
	case IconFlowerPot:
		return "GiFlowerPot"
	case IconMapleLeaf:
		return "GiMapleLeaf"
	case IconPlantSeed:
		return "GiPlantSeed"
	default:
		return "GiGrassMushroom"
	}
}

// Glyph is the text glyph used when the icon is rendered outside the browser
// (SMS, digests, plain-text previews).
func (i Icon) Glyph() string {
	switch i {
	case IconGardeningShears:
		return "✂"
	case IconOakLeaf:
		return "🍂"
	case IconFlowerPot:
		return "🪴"
	case IconMapleLeaf:
		return "🍁"
	case IconPlantSeed:
		return "🌱"
	default:
		return "🌿"
	}
}

// ValueIcon identifies the icon shown next to a company value on the about
// page.
type ValueIcon int

const (
	ValueIconStar ValueIcon = iota
	ValueIconClock
	ValueIconHandsHelping
)

// CompanyValueIcon resolves a value title to its icon; unknown titles get the
// star.
func CompanyValueIcon(title string) ValueIcon {
	switch title {
	case "Reliability":
		return ValueIconClock
	case "Community":
		return ValueIconHandsHelping
	default:
		return ValueIconStar
	}
}

func (v ValueIcon) Key() string {
	switch v {
	case ValueIconClock:
		return "FaClock"
	case ValueIconHandsHelping:
		return "FaHandsHelping"
	default:
		return "FaStar"
	}
}
