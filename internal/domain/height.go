package domain

import (
	"sort"
	"strconv"
)

// HeightParamName is the storefront display name of the height parameter.
const HeightParamName = "Wzrost"

// heightToRemoteID maps a height in centimeters to the storefront option id
// assigned to that exact value. The table is fixed by the storefront and is
// not contiguous in id space.
var heightToRemoteID = map[int]string{
	82: "26031", 83: "26030", 84: "26029", 85: "26028", 86: "26027", 87: "26026",
	88: "26025", 89: "26024", 90: "26023", 91: "26022", 92: "26021", 93: "26020",
	94: "26019", 95: "25963", 96: "25964", 97: "25965", 98: "25966", 99: "25967",
	100: "25968", 101: "25969", 102: "25970", 103: "25971", 104: "25972", 105: "25973",
	106: "25974", 107: "25975", 108: "25976", 109: "25977", 110: "25978", 111: "25979",
	112: "25980", 113: "25981", 114: "25982", 115: "25983", 116: "25984", 117: "25985",
	118: "25986", 119: "25987", 120: "25988", 121: "25989", 122: "25990", 123: "25991",
	124: "25992", 125: "25993", 126: "25994", 127: "25995", 128: "25996", 129: "25997",
	130: "25998", 131: "25999", 132: "26000", 133: "26001", 134: "26002", 135: "26003",
	136: "26004", 137: "26005", 138: "26006", 139: "26007", 140: "23503", 141: "23504",
	142: "23505", 143: "23506", 144: "23507", 145: "23508", 146: "23509", 147: "23510",
	148: "23511", 149: "23512", 150: "23513", 151: "23514", 152: "23515", 153: "23516",
	154: "23517", 155: "23518", 156: "23519", 157: "23520", 158: "23521", 159: "23522",
	160: "23523", 161: "23524", 162: "23525", 163: "23526", 164: "23527", 165: "23528",
	166: "23529", 167: "23530", 168: "23531", 169: "23532", 170: "23533", 171: "23534",
	172: "23535", 173: "23536", 174: "23537", 175: "23538", 176: "23539", 177: "23540",
	178: "23541", 179: "23542", 180: "23543", 181: "23544", 182: "23545", 183: "23546",
	184: "23547", 185: "23548", 186: "23549", 187: "23550", 188: "23551", 189: "23552",
	190: "23554", 191: "23555", 192: "23556", 193: "23557", 194: "23558", 195: "23559",
	196: "23560", 197: "23561", 198: "23562", 199: "23563", 200: "23564", 201: "23565",
	202: "23567", 203: "23568", 204: "23569", 205: "23570",
}

// HeightRange is an inclusive range of heights in centimeters.
// Invariant: Min <= Max.
type HeightRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// NewHeightRange builds a range, swapping the endpoints if given in reverse.
func NewHeightRange(min, max int) HeightRange {
	if min > max {
		min, max = max, min
	}
	return HeightRange{Min: min, Max: max}
}

// IsValidHeight reports whether the height exists in the storefront table.
func IsValidHeight(height int) bool {
	_, ok := heightToRemoteID[height]
	return ok
}

// RemoteIDForHeight returns the storefront option id for a height.
func RemoteIDForHeight(height int) (string, bool) {
	id, ok := heightToRemoteID[height]
	return id, ok
}

// HeightExport is a single height entry ready for XML serialization.
type HeightExport struct {
	Name     string `json:"name"`
	RemoteID string `json:"remote_id"`
	Value    string `json:"value"`
}

// ExportValues returns one entry per valid height in the range, ascending.
// Heights missing from the table are skipped.
func (r HeightRange) ExportValues() []HeightExport {
	var out []HeightExport
	for h := r.Min; h <= r.Max; h++ {
		id, ok := heightToRemoteID[h]
		if !ok {
			continue
		}
		out = append(out, HeightExport{
			Name:     HeightParamName,
			RemoteID: id,
			Value:    strconv.Itoa(h),
		})
	}
	return out
}

// SelectedHeightsCount returns the number of valid heights in the range.
func (r HeightRange) SelectedHeightsCount() int {
	count := 0
	for h := r.Min; h <= r.Max; h++ {
		if IsValidHeight(h) {
			count++
		}
	}
	return count
}

// AvailableHeights returns all heights in the table, ascending.
func AvailableHeights() []int {
	heights := make([]int, 0, len(heightToRemoteID))
	for h := range heightToRemoteID {
		heights = append(heights, h)
	}
	sort.Ints(heights)
	return heights
}

// SuggestedRange is a named height range presented to the operator.
type SuggestedRange struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}

// SuggestedRanges returns the preset ranges offered for quick selection.
func SuggestedRanges() []SuggestedRange {
	return []SuggestedRange{
		{82, 95, "Bardzo małe dzieci (82-95 cm)"},
		{95, 110, "Małe dzieci (95-110 cm)"},
		{110, 130, "Dzieci (110-130 cm)"},
		{130, 150, "Młodzież (130-150 cm)"},
		{150, 170, "Dorośli niskiego wzrostu (150-170 cm)"},
		{170, 185, "Dorośli średniego wzrostu (170-185 cm)"},
		{185, 205, "Dorośli wysokiego wzrostu (185-205 cm)"},
		{82, 205, "Wszystkie dostępne wzrosty (82-205 cm)"},
	}
}
