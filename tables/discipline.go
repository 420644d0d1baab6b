package tables

// disciplineEntries is WMO code table 0.0, the discipline (domain) a
// GRIB2 message's data belongs to. Section 0 carries this code
// directly, ahead of any product-definition template dispatch.
var disciplineEntries = []*Entry{
	{0, "Meteorological", "Meteorological products", ""},
	{1, "Hydrological", "Hydrological products", ""},
	{2, "Land Surface", "Land surface products", ""},
	{3, "Space", "Space products", ""},
	{4, "Space Weather", "Space weather products", ""},
	{10, "Oceanographic", "Oceanographic products", ""},
	{20, "Health", "Health and socioeconomic impacts", ""},
}

var disciplineRanges = []RangeEntry{
	{192, 254, "Local", "Reserved for local use"},
	{255, 255, "Missing", "Missing"},
}

// DisciplineTable is code table 0.0.
var DisciplineTable = NewRangeTable(disciplineEntries, disciplineRanges, "Unknown discipline")

func GetDisciplineName(code int) string        { return DisciplineTable.Name(code) }
func GetDisciplineDescription(code int) string { return DisciplineTable.Description(code) }
