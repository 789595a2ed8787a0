package timezone

// MockZoneFinder answers every coordinate with a fixed zone name. An empty
// Zone simulates an uncovered coordinate.
type MockZoneFinder struct {
	Zone string
}

func (m *MockZoneFinder) ZoneName(lat, lon float64) string {
	return m.Zone
}
