package main

import (
	"image"
	"strconv"
	"strings"

	"github.com/srlehn/dpiscale/internal/errors"
)

// parseSize parses "<w>x<h>".
func parseSize(s string) (image.Point, error) {
	parts := strings.SplitN(strings.ToLower(s), `x`, 2)
	if len(parts) != 2 {
		return image.Point{}, errors.Errorf(`invalid size %q, expected <w>x<h>`, s)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return image.Point{}, errors.Errorf(`invalid size %q, expected <w>x<h>`, s)
	}
	return image.Pt(w, h), nil
}

// parseRect parses "<x>,<y>,<w>,<h>".
func parseRect(s string) (image.Rectangle, error) {
	parts := strings.Split(s, `,`)
	if len(parts) != 4 {
		return image.Rectangle{}, errors.Errorf(`invalid rectangle %q, expected <x>,<y>,<w>,<h>`, s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, errors.WrapPrefix(err, `rectangle `+s, 0)
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return image.Rectangle{}, errors.Errorf(`negative extent in rectangle %q`, s)
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}

func formatRect(r image.Rectangle) string {
	return strconv.Itoa(r.Min.X) + `,` + strconv.Itoa(r.Min.Y) + `,` + strconv.Itoa(r.Dx()) + `,` + strconv.Itoa(r.Dy())
}

// parseInts parses all arguments as int.
func parseInts(args []string) ([]int, error) {
	vals := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, errors.New(err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
