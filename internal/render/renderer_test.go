package render

import "testing"

func TestGeoMZeroValueIsIdentity(t *testing.T) {
	var g GeoM
	x, y := g.Apply(3, 4)
	if x != 3 || y != 4 {
		t.Errorf("Expected (3, 4), got (%v, %v)", x, y)
	}
}

func TestGeoMTranslateAccumulates(t *testing.T) {
	var g GeoM
	g.Translate(10, 20)
	g.Translate(-4, 5)

	if tx, ty := g.Elements(); tx != 6 || ty != 25 {
		t.Errorf("Expected (6, 25), got (%v, %v)", tx, ty)
	}
	if x, y := g.Apply(1, 1); x != 7 || y != 26 {
		t.Errorf("Expected (7, 26), got (%v, %v)", x, y)
	}
}
