package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/frontier/geom"
	"github.com/pkg/errors"
)

// One point per line, as "x y". Blank lines are skipped.
func readPoints(in io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		point, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "y")
	}
	return geom.Point{X: x, Y: y}, nil
}

func writePoints(w io.Writer, points []geom.Point) error {
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%g %g\n", p.X, p.Y); err != nil {
			return errors.Wrap(err, "writing points")
		}
	}
	return nil
}
