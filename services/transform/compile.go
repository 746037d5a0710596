package transform

import (
	"fmt"
	"strconv"
)

// simpleEffectTags maps the request value of a simple effect to the tag the
// image service expects. Most coincide; "negative" and "black_white" do not.
var simpleEffectTags = map[string]string{
	"grayscale":   "grayscale",
	"negative":    "negate",
	"cartoonify":  "cartoonify",
	"oil_paint":   "oil_paint",
	"black_white": "blackwhite",
}

// Compile flattens a Request into the ordered directive list. Section order
// is fixed: resize, rotate, radius, art effect, then simple, contrast and
// blur effects each in input order.
func Compile(body *Request) []Directive {
	var list []Directive

	if body.Resize != nil {
		d := Directive{}
		if body.Resize.Width > 0 {
			d["width"] = strconv.Itoa(body.Resize.Width)
		}
		if body.Resize.Height > 0 {
			d["height"] = strconv.Itoa(body.Resize.Height)
		}
		if body.Resize.Crop != "" {
			d["crop"] = body.Resize.Crop
		}
		if body.Resize.Gravity != "" {
			d["gravity"] = body.Resize.Gravity
		}
		if body.Resize.Background != "" {
			d["background"] = body.Resize.Background
		}
		list = append(list, d)
	}

	if body.Rotate != nil {
		// emitted even for a zero degree rotation
		list = append(list, Directive{"angle": strconv.Itoa(body.Rotate.Degree)})
	}

	if body.Radius != nil {
		switch {
		case body.Radius.Max:
			list = append(list, Directive{"radius": "max"})
		case body.Radius.All > 0:
			list = append(list, Directive{"radius": strconv.Itoa(body.Radius.All)})
		default:
			list = append(list, Directive{"radius": fmt.Sprintf("%d:%d:%d:%d",
				body.Radius.LeftTop, body.Radius.RightTop,
				body.Radius.RightBottom, body.Radius.LeftBottom)})
		}
	}

	if body.ArtEffect != nil {
		list = append(list, Directive{"effect": "art:" + body.ArtEffect.Effect})
	}

	for _, item := range body.SimpleEffects {
		list = append(list, Directive{
			"effect": fmt.Sprintf("%s:%d", simpleEffectTags[item.Effect], item.Strength),
		})
	}

	for _, item := range body.ContrastEffects {
		list = append(list, Directive{
			"effect": fmt.Sprintf("%s:%d", item.Effect, item.Level),
		})
	}

	for _, item := range body.BlurEffects {
		d := Directive{"effect": fmt.Sprintf("%s:%d", item.Effect, item.Strength)}
		if item.X != nil {
			d["x"] = strconv.Itoa(*item.X)
		}
		if item.Y != nil {
			d["y"] = strconv.Itoa(*item.Y)
		}
		if item.Width != nil {
			d["width"] = strconv.Itoa(*item.Width)
		}
		if item.Height != nil {
			d["height"] = strconv.Itoa(*item.Height)
		}
		list = append(list, d)
	}

	return list
}
