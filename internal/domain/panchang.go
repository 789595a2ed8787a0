package domain

import "math"

// Paksha names the waxing and waning halves of the lunar month.
const (
	PakshaShukla  = "Shukla"
	PakshaKrishna = "Krishna"
)

// tithiNames is 1-indexed via position: entries 1-15 are the Shukla paksha
// labels ending in Purnima, entries 16-30 repeat the base labels and end in
// Amavasya. The ordering is part of the wire contract.
var tithiNames = [30]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Amavasya",
}

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha", "Magha",
	"Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati",
	"Vishakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// movableKaranas repeat eight times across half-tithis 2..57; the four fixed
// karanas occupy the first and last three half-tithis of the month.
var movableKaranas = [7]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
}

var fixedEndKaranas = [3]string{"Shakuni", "Chatushpada", "Naga"}

var rashiNames = [12]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrishchika", "Dhanu", "Makara", "Kumbha", "Meena",
}

// PanchangElement is one limb of the panchang: a 1-based position in its
// name table and how far the element has progressed, in [0, 1) rounded to
// four decimals.
type PanchangElement struct {
	Index    int
	Name     string
	Progress float64
}

// Tithi is the lunar day, 1..30 across both pakshas.
type Tithi struct {
	PanchangElement
	Paksha string
}

// Nakshatra is the lunar mansion occupied by a longitude, 1..27, subdivided
// into four padas.
type Nakshatra struct {
	PanchangElement
	Pada int
}

// Rashi is the zodiac sign occupied by a longitude.
type Rashi struct {
	Index        int
	Name         string
	DegreeInSign float64
}

// Panchang bundles the four lunisolar limbs derived from the Sun and Moon
// longitudes.
type Panchang struct {
	Tithi     Tithi
	Nakshatra Nakshatra
	Yoga      PanchangElement
	Karana    PanchangElement
}

const nakshatraSegment = 360.0 / 27.0

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

// TithiFor derives the lunar day from the Sun and Moon longitudes.
//
// A separation sitting exactly on a 12° multiple belongs to the tithi that
// starts there: floor advances the index and progress restarts at zero.
func TithiFor(sun, moon float64) Tithi {
	diff := DegreesBetween(sun, moon)
	idx := int(math.Floor(diff/12)) + 1

	paksha := PakshaShukla
	if idx > 15 {
		paksha = PakshaKrishna
	}

	return Tithi{
		PanchangElement: PanchangElement{
			Index:    idx,
			Name:     tithiNames[idx-1],
			Progress: round4(math.Mod(diff, 12) / 12),
		},
		Paksha: paksha,
	}
}

// NakshatraFor locates a longitude within the 27 lunar mansions.
func NakshatraFor(lon float64) Nakshatra {
	l := NormalizeDegrees(lon)
	idx0 := int(math.Floor(l / nakshatraSegment))
	within := l - float64(idx0)*nakshatraSegment

	return Nakshatra{
		PanchangElement: PanchangElement{
			Index:    idx0 + 1,
			Name:     nakshatraNames[idx0],
			Progress: round4(within / nakshatraSegment),
		},
		Pada: int(math.Floor(within/(nakshatraSegment/4))) + 1,
	}
}

// YogaFor derives the yoga from the combined Sun and Moon longitudes, using
// the same 13°20' segmentation as the nakshatras.
func YogaFor(sun, moon float64) PanchangElement {
	total := NormalizeDegrees(sun + moon)
	idx0 := int(math.Floor(total / nakshatraSegment))
	within := total - float64(idx0)*nakshatraSegment

	return PanchangElement{
		Index:    idx0 + 1,
		Name:     yogaNames[idx0],
		Progress: round4(within / nakshatraSegment),
	}
}

// KaranaFor derives the half-tithi karana, 1..60. The first half-tithi and
// the final three carry fixed karanas; the 54 in between cycle through the
// seven movable names aligned so half-tithi 2 is Bava.
func KaranaFor(sun, moon float64) PanchangElement {
	diff := DegreesBetween(sun, moon)
	halfTithi := int(math.Floor(diff/6)) + 1

	var name string
	switch {
	case halfTithi == 1:
		name = "Kimstughna"
	case halfTithi >= 58:
		name = fixedEndKaranas[halfTithi-58]
	default:
		name = movableKaranas[(halfTithi-2)%7]
	}

	return PanchangElement{
		Index:    halfTithi,
		Name:     name,
		Progress: round4(math.Mod(diff, 6) / 6),
	}
}

// RashiFor locates a longitude within the twelve signs.
func RashiFor(lon float64) Rashi {
	l := NormalizeDegrees(lon)
	idx0 := int(math.Floor(l / 30))

	return Rashi{
		Index:        idx0 + 1,
		Name:         rashiNames[idx0],
		DegreeInSign: l - float64(idx0)*30,
	}
}

// PanchangFor computes all four limbs for normalized Sun and Moon
// longitudes. It is total over finite inputs; callers guarantee both
// longitudes are present.
func PanchangFor(sun, moon float64) Panchang {
	s := NormalizeDegrees(sun)
	m := NormalizeDegrees(moon)

	return Panchang{
		Tithi:     TithiFor(s, m),
		Nakshatra: NakshatraFor(m),
		Yoga:      YogaFor(s, m),
		Karana:    KaranaFor(s, m),
	}
}
