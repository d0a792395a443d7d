package astro

// Star is a cataloged star with a position relative to the observer.
type Star struct {
	Name         string  // Common name (e.g., "Sirius", "Vega")
	RAdeg        float64 // Right Ascension in degrees (J2000)
	DecDeg       float64 // Declination in degrees (J2000)
	DistanceLy   float64 // Distance from the observer in light-years
	DiameterRsun float64 // Physical diameter in units of the solar radius
	PositionLy   Vec3    // Cartesian position in light-years
}

// NewEquatorialStar places a star from RA/Dec and distance.
func NewEquatorialStar(name string, raDeg, decDeg, distanceLy, diameterRsun float64) Star {
	return Star{
		Name:         name,
		RAdeg:        raDeg,
		DecDeg:       decDeg,
		DistanceLy:   distanceLy,
		DiameterRsun: diameterRsun,
		PositionLy:   PositionFromEquatorial(raDeg, decDeg, distanceLy),
	}
}

// NewCartesianStar places a star from a Cartesian position in light-years.
func NewCartesianStar(name string, positionLy Vec3, diameterRsun float64) Star {
	ra, dec, dist := EquatorialFromPosition(positionLy)
	return Star{
		Name:         name,
		RAdeg:        ra,
		DecDeg:       dec,
		DistanceLy:   dist,
		DiameterRsun: diameterRsun,
		PositionLy:   positionLy,
	}
}

// PositionKm returns the star's position converted to kilometres,
// component by component.
func (s Star) PositionKm() Vec3 {
	return Vec3{
		X: KmFromLightYears(s.PositionLy.X),
		Y: KmFromLightYears(s.PositionLy.Y),
		Z: KmFromLightYears(s.PositionLy.Z),
	}
}

// DiameterKm returns the star's physical diameter in kilometres.
func (s Star) DiameterKm() float64 {
	return s.DiameterRsun * SunRadiusKm
}

// Project returns the star's projection with both lengths in kilometres.
func (s Star) Project() (Projection, error) {
	return CheckedProjectStar(s.DiameterKm(), s.PositionKm())
}

// StarCatalog holds a collection of stars.
type StarCatalog struct {
	Stars []Star
}

// Find returns the star with the given name.
func (c StarCatalog) Find(name string) (Star, bool) {
	for _, s := range c.Stars {
		if s.Name == name {
			return s, true
		}
	}
	return Star{}, false
}

// ReferenceStarName names the 1.2 R☉ star at (1, 3, 5) ly.
const ReferenceStarName = "Reference"

// ReferenceStar returns the star used by the default run.
func ReferenceStar() Star {
	return NewCartesianStar(ReferenceStarName, Vec3{X: 1, Y: 3, Z: 5}, 1.2)
}

// DefaultStarCatalog returns the reference star followed by a few nearby
// and well-known stars, nearest first. Coordinates are J2000; diameters are
// twice the published mean radius.
func DefaultStarCatalog() StarCatalog {
	stars := []Star{ReferenceStar()}
	for _, s := range defaultStars {
		stars = append(stars, NewEquatorialStar(s.name, s.ra, s.dec, s.ly, s.diam))
	}
	return StarCatalog{Stars: stars}
}

var defaultStars = []struct {
	name        string
	ra, dec, ly float64
	diam        float64
}{
	{"Alpha Centauri A", 219.902, -60.834, 4.37, 2.44},
	{"Sirius", 101.287, -16.716, 8.60, 3.42},
	{"Procyon", 114.826, 5.225, 11.46, 4.10},
	{"Altair", 297.696, 8.868, 16.73, 3.58},
	{"Vega", 279.235, 38.784, 25.04, 4.72},
	{"Arcturus", 213.915, 19.182, 36.7, 50.8},
	{"Aldebaran", 68.980, 16.509, 65.3, 88.4},
	{"Polaris", 37.954, 89.264, 433, 75.0},
	{"Betelgeuse", 88.793, 7.407, 548, 1528},
}
