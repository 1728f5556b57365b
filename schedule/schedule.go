// Package schedule carries the static 2026 World Cup match table the
// read-side export joins against stored listings.
package schedule

// Match is one scheduled fixture.
type Match struct {
	Date    string
	Venue   string
	Stadium string
	Stage   string
}

// Lookup returns the fixture for a match number, reporting whether the
// number is known.
func Lookup(matchNumber int) (Match, bool) {
	m, ok := table[matchNumber]
	return m, ok
}

// Country maps a venue to its host country. Unknown venues default to USA,
// which is where every venue not in the Canadian or Mexican lists sits.
func Country(venue string) string {
	switch venue {
	case "Toronto", "Vancouver":
		return "Canada"
	case "Mexico City", "Zapopan", "Guadalupe", "Monterrey":
		return "Mexico"
	default:
		return "USA"
	}
}

var table = map[int]Match{
	// Group stage, matchday 1
	1:  {"June 11, 2026", "Mexico City", "Estadio Azteca", "Group A"},
	2:  {"June 11, 2026", "Zapopan", "Estadio Akron", "Group A"},
	3:  {"June 12, 2026", "Toronto", "BMO Field", "Group B"},
	4:  {"June 12, 2026", "Inglewood", "SoFi Stadium", "Group D"},
	5:  {"June 13, 2026", "Foxborough", "Gillette Stadium", "Group C"},
	6:  {"June 13, 2026", "Vancouver", "BC Place", "Group D"},
	7:  {"June 13, 2026", "East Rutherford", "MetLife Stadium", "Group C"},
	8:  {"June 13, 2026", "Santa Clara", "Levi's Stadium", "Group B"},
	9:  {"June 14, 2026", "Philadelphia", "Lincoln Financial Field", "Group E"},
	10: {"June 14, 2026", "Houston", "NRG Stadium", "Group E"},
	11: {"June 14, 2026", "Arlington", "AT&T Stadium", "Group F"},
	12: {"June 14, 2026", "Guadalupe", "Estadio BBVA", "Group F"},
	13: {"June 15, 2026", "Miami Gardens", "Hard Rock Stadium", "Group H"},
	14: {"June 15, 2026", "Atlanta", "Mercedes-Benz Stadium", "Group H"},
	15: {"June 15, 2026", "Inglewood", "SoFi Stadium", "Group G"},
	16: {"June 15, 2026", "Seattle", "Lumen Field", "Group G"},
	17: {"June 16, 2026", "East Rutherford", "MetLife Stadium", "Group I"},
	18: {"June 16, 2026", "Foxborough", "Gillette Stadium", "Group I"},
	19: {"June 16, 2026", "Kansas City", "Arrowhead Stadium", "Group J"},
	20: {"June 16, 2026", "Santa Clara", "Levi's Stadium", "Group J"},
	21: {"June 17, 2026", "Toronto", "BMO Field", "Group L"},
	22: {"June 17, 2026", "Arlington", "AT&T Stadium", "Group L"},
	23: {"June 17, 2026", "Houston", "NRG Stadium", "Group K"},
	24: {"June 17, 2026", "Mexico City", "Estadio Azteca", "Group K"},

	// Group stage, matchday 2
	25: {"June 18, 2026", "Atlanta", "Mercedes-Benz Stadium", "Group A"},
	26: {"June 18, 2026", "Inglewood", "SoFi Stadium", "Group B"},
	27: {"June 18, 2026", "Vancouver", "BC Place", "Group B"},
	28: {"June 18, 2026", "Zapopan", "Estadio Akron", "Group A"},
	29: {"June 19, 2026", "Philadelphia", "Lincoln Financial Field", "Group C"},
	30: {"June 19, 2026", "Foxborough", "Gillette Stadium", "Group C"},
	31: {"June 19, 2026", "Santa Clara", "Levi's Stadium", "Group D"},
	32: {"June 19, 2026", "Seattle", "Lumen Field", "Group D"},
	33: {"June 20, 2026", "Toronto", "BMO Field", "Group E"},
	34: {"June 20, 2026", "Kansas City", "Arrowhead Stadium", "Group E"},
	35: {"June 20, 2026", "Houston", "NRG Stadium", "Group F"},
	36: {"June 20, 2026", "Guadalupe", "Estadio BBVA", "Group F"},
	37: {"June 21, 2026", "Miami Gardens", "Hard Rock Stadium", "Group H"},
	38: {"June 21, 2026", "Atlanta", "Mercedes-Benz Stadium", "Group H"},
	39: {"June 21, 2026", "Inglewood", "SoFi Stadium", "Group G"},
	40: {"June 21, 2026", "Vancouver", "BC Place", "Group G"},
	41: {"June 22, 2026", "East Rutherford", "MetLife Stadium", "Group I"},
	42: {"June 22, 2026", "Philadelphia", "Lincoln Financial Field", "Group I"},
	43: {"June 22, 2026", "Arlington", "AT&T Stadium", "Group J"},
	44: {"June 22, 2026", "Santa Clara", "Levi's Stadium", "Group J"},
	45: {"June 23, 2026", "Foxborough", "Gillette Stadium", "Group L"},
	46: {"June 23, 2026", "Toronto", "BMO Field", "Group L"},
	47: {"June 23, 2026", "Houston", "NRG Stadium", "Group K"},
	48: {"June 23, 2026", "Zapopan", "Estadio Akron", "Group K"},

	// Group stage, matchday 3
	49: {"June 24, 2026", "Miami Gardens", "Hard Rock Stadium", "Group C"},
	50: {"June 24, 2026", "Atlanta", "Mercedes-Benz Stadium", "Group C"},
	51: {"June 24, 2026", "Vancouver", "BC Place", "Group B"},
	52: {"June 24, 2026", "Seattle", "Lumen Field", "Group B"},
	53: {"June 24, 2026", "Mexico City", "Estadio Azteca", "Group A"},
	54: {"June 24, 2026", "Guadalupe", "Estadio BBVA", "Group A"},
	55: {"June 25, 2026", "Philadelphia", "Lincoln Financial Field", "Group E"},
	56: {"June 25, 2026", "East Rutherford", "MetLife Stadium", "Group E"},
	57: {"June 25, 2026", "Arlington", "AT&T Stadium", "Group F"},
	58: {"June 25, 2026", "Kansas City", "Arrowhead Stadium", "Group F"},
	59: {"June 25, 2026", "Inglewood", "SoFi Stadium", "Group D"},
	60: {"June 25, 2026", "Santa Clara", "Levi's Stadium", "Group D"},
	61: {"June 26, 2026", "Foxborough", "Gillette Stadium", "Group I"},
	62: {"June 26, 2026", "Toronto", "BMO Field", "Group I"},
	63: {"June 26, 2026", "Seattle", "Lumen Field", "Group G"},
	64: {"June 26, 2026", "Vancouver", "BC Place", "Group G"},
	65: {"June 26, 2026", "Houston", "NRG Stadium", "Group H"},
	66: {"June 26, 2026", "Zapopan", "Estadio Akron", "Group H"},
	67: {"June 27, 2026", "East Rutherford", "MetLife Stadium", "Group L"},
	68: {"June 27, 2026", "Philadelphia", "Lincoln Financial Field", "Group L"},
	69: {"June 27, 2026", "Kansas City", "Arrowhead Stadium", "Group J"},
	70: {"June 27, 2026", "Arlington", "AT&T Stadium", "Group J"},
	71: {"June 27, 2026", "Miami Gardens", "Hard Rock Stadium", "Group K"},
	72: {"June 27, 2026", "Atlanta", "Mercedes-Benz Stadium", "Group K"},

	// Round of 32
	73: {"June 28, 2026", "Inglewood", "SoFi Stadium", "Round of 32"},
	74: {"June 29, 2026", "Foxborough", "Gillette Stadium", "Round of 32"},
	75: {"June 29, 2026", "Guadalupe", "Estadio BBVA", "Round of 32"},
	76: {"June 29, 2026", "Houston", "NRG Stadium", "Round of 32"},
	77: {"June 30, 2026", "East Rutherford", "MetLife Stadium", "Round of 32"},
	78: {"June 30, 2026", "Arlington", "AT&T Stadium", "Round of 32"},
	79: {"June 30, 2026", "Mexico City", "Estadio Azteca", "Round of 32"},
	80: {"July 1, 2026", "Atlanta", "Mercedes-Benz Stadium", "Round of 32"},
	81: {"July 1, 2026", "Santa Clara", "Levi's Stadium", "Round of 32"},
	82: {"July 1, 2026", "Seattle", "Lumen Field", "Round of 32"},
	83: {"July 2, 2026", "Toronto", "BMO Field", "Round of 32"},
	84: {"July 2, 2026", "Inglewood", "SoFi Stadium", "Round of 32"},
	85: {"July 2, 2026", "Vancouver", "BC Place", "Round of 32"},
	86: {"July 3, 2026", "Miami Gardens", "Hard Rock Stadium", "Round of 32"},
	87: {"July 3, 2026", "Kansas City", "Arrowhead Stadium", "Round of 32"},
	88: {"July 3, 2026", "Arlington", "AT&T Stadium", "Round of 32"},

	// Round of 16
	89: {"July 4, 2026", "Philadelphia", "Lincoln Financial Field", "Round of 16"},
	90: {"July 4, 2026", "Houston", "NRG Stadium", "Round of 16"},
	91: {"July 5, 2026", "East Rutherford", "MetLife Stadium", "Round of 16"},
	92: {"July 5, 2026", "Mexico City", "Estadio Azteca", "Round of 16"},
	93: {"July 6, 2026", "Arlington", "AT&T Stadium", "Round of 16"},
	94: {"July 6, 2026", "Seattle", "Lumen Field", "Round of 16"},
	95: {"July 7, 2026", "Atlanta", "Mercedes-Benz Stadium", "Round of 16"},
	96: {"July 7, 2026", "Vancouver", "BC Place", "Round of 16"},

	// Quarterfinals
	97:  {"July 9, 2026", "Foxborough", "Gillette Stadium", "Quarterfinal"},
	98:  {"July 10, 2026", "Inglewood", "SoFi Stadium", "Quarterfinal"},
	99:  {"July 11, 2026", "Miami Gardens", "Hard Rock Stadium", "Quarterfinal"},
	100: {"July 11, 2026", "Kansas City", "Arrowhead Stadium", "Quarterfinal"},

	// Semifinals, third place, final
	101: {"July 14, 2026", "Arlington", "AT&T Stadium", "Semifinal"},
	102: {"July 15, 2026", "Atlanta", "Mercedes-Benz Stadium", "Semifinal"},
	103: {"July 18, 2026", "Miami Gardens", "Hard Rock Stadium", "3rd Place"},
	104: {"July 19, 2026", "East Rutherford", "MetLife Stadium", "Final"},
}
