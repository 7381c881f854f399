package ssb

// nationSeed mirrors TPC-H's 25-nation reference table. SSB denormalizes
// nation and region straight onto Customer and Supplier rows instead of
// keeping a separate Nation dimension, but draws from the same geography;
// the reference's 90-nation ceiling (kNationsMax) is headroom for a wider
// table this pack's data never populates.
type nationSeed struct {
	Name       string
	RegionName string
}

var nationSeeds = []nationSeed{
	{"ALGERIA", "AFRICA"}, {"ARGENTINA", "AMERICA"}, {"BRAZIL", "AMERICA"}, {"CANADA", "AMERICA"}, {"EGYPT", "MIDDLE EAST"},
	{"ETHIOPIA", "AFRICA"}, {"FRANCE", "EUROPE"}, {"GERMANY", "EUROPE"}, {"INDIA", "ASIA"}, {"INDONESIA", "ASIA"},
	{"IRAN", "MIDDLE EAST"}, {"IRAQ", "MIDDLE EAST"}, {"JAPAN", "ASIA"}, {"JORDAN", "MIDDLE EAST"}, {"KENYA", "AFRICA"},
	{"MOROCCO", "AFRICA"}, {"MOZAMBIQUE", "AFRICA"}, {"PERU", "AMERICA"}, {"CHINA", "ASIA"}, {"ROMANIA", "EUROPE"},
	{"SAUDI ARABIA", "MIDDLE EAST"}, {"VIETNAM", "ASIA"}, {"RUSSIA", "EUROPE"}, {"UNITED KINGDOM", "EUROPE"},
	{"UNITED STATES", "AMERICA"},
}

// cityName builds one of CityFix candidate cities for a nation: dbgen's SSB
// mode suffixes the nation name with a single digit rather than drawing
// from an independent city distribution.
func cityName(nationKey, suffix int64) string {
	seed := nationSeeds[nationKey]
	return formatCity(seed.Name, suffix)
}

func formatCity(nation string, suffix int64) string {
	return nation[:min(len(nation), CityFix)] + string(rune('0'+suffix%10))
}
