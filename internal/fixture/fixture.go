package fixture

import (
	"embed"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/frontier/geom"
	"github.com/pkg/errors"
)

// Point cloud fixtures for tests. This is not a full (or even correct) svg
// parser. Every <circle> contributes its centre as a point, in document order.
// A fixture may also carry one <polygon>, which describes the shape the points
// were sampled from.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func parse(name string) (*svgparser.Element, error) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, errors.Wrapf(err, "could not load fixture %q", name)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse fixture %q", name)
	}
	return rootEl, nil
}

func Load(name string) ([]geom.Point, error) {
	rootEl, err := parse(name)
	if err != nil {
		return nil, err
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		return nil, errors.Errorf("no circles found in fixture %q", name)
	}
	points := make([]geom.Point, 0, len(circles))
	for _, circle := range circles {
		x, err := strconv.ParseFloat(circle.Attributes["cx"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cx in fixture %q", name)
		}
		y, err := strconv.ParseFloat(circle.Attributes["cy"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cy in fixture %q", name)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}

// Outline returns the fixture's polygon, wound counterclockwise.
func Outline(name string) (geom.Polygon, error) {
	rootEl, err := parse(name)
	if err != nil {
		return nil, err
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		return nil, errors.Errorf("expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	var result geom.Polygon
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		result = append(result, geom.Point{X: x, Y: y})
	}

	if !result.IsCCW() {
		result = result.Reverse()
	}
	return result, nil
}

// MustLoad is Load for tests, where a broken fixture is a programming error.
func MustLoad(name string) []geom.Point {
	points, err := Load(name)
	if err != nil {
		panic(err)
	}
	return points
}
