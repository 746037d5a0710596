package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestCompileEmptyRequest(t *testing.T) {
	assert.Empty(t, Compile(&Request{}))
}

func TestCompileResizeSkipsUnsetFields(t *testing.T) {
	list := Compile(&Request{Resize: &Resize{Width: 250, Crop: "fill", Gravity: "face"}})

	assert.Len(t, list, 1)
	assert.Equal(t, Directive{"width": "250", "crop": "fill", "gravity": "face"}, list[0])
}

func TestCompileRotateZeroDegreeStillEmitted(t *testing.T) {
	list := Compile(&Request{Rotate: &Rotate{Degree: 0}})

	assert.Equal(t, []Directive{{"angle": "0"}}, list)
}

func TestCompileRadiusBranches(t *testing.T) {
	tests := []struct {
		name   string
		radius Radius
		want   string
	}{
		{"max wins", Radius{Max: true, All: 40}, "max"},
		{"uniform", Radius{All: 40, LeftTop: 3}, "40"},
		{"four corners", Radius{LeftTop: 1, RightTop: 2, RightBottom: 3, LeftBottom: 4}, "1:2:3:4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := Compile(&Request{Radius: &tt.radius})
			assert.Equal(t, []Directive{{"radius": tt.want}}, list)
		})
	}
}

func TestCompileEffectTagsLowered(t *testing.T) {
	list := Compile(&Request{
		ArtEffect: &ArtEffect{Effect: "zorro"},
		SimpleEffects: []SimpleEffect{
			{Effect: "negative", Strength: 80},
			{Effect: "black_white", Strength: 50},
		},
		ContrastEffects: []ContrastEffect{{Effect: "brightness", Level: -60}},
	})

	assert.Equal(t, []Directive{
		{"effect": "art:zorro"},
		{"effect": "negate:80"},
		{"effect": "blackwhite:50"},
		{"effect": "brightness:-60"},
	}, list)
}

func TestCompileBlurMergesGeometry(t *testing.T) {
	list := Compile(&Request{
		BlurEffects: []BlurEffect{
			{Effect: "blur_region", Strength: 800, X: intPtr(10), Y: intPtr(20), Width: intPtr(300)},
			{Effect: "blur_faces", Strength: 500},
		},
	})

	assert.Equal(t, []Directive{
		{"effect": "blur_region:800", "x": "10", "y": "20", "width": "300"},
		{"effect": "blur_faces:500"},
	}, list)
}

// Sections always compile in the same order no matter which are present.
func TestCompileSectionOrderFixed(t *testing.T) {
	body := &Request{
		BlurEffects:     []BlurEffect{{Effect: "blur", Strength: 100}},
		ContrastEffects: []ContrastEffect{{Effect: "contrast", Level: 30}},
		SimpleEffects:   []SimpleEffect{{Effect: "grayscale", Strength: 10}},
		ArtEffect:       &ArtEffect{Effect: "frost"},
		Radius:          &Radius{All: 15},
		Rotate:          &Rotate{Degree: 90},
		Resize:          &Resize{Width: 100, Height: 100, Crop: "thumb"},
	}

	list := Compile(body)
	assert.Equal(t, []Directive{
		{"width": "100", "height": "100", "crop": "thumb"},
		{"angle": "90"},
		{"radius": "15"},
		{"effect": "art:frost"},
		{"effect": "grayscale:10"},
		{"effect": "contrast:30"},
		{"effect": "blur:100"},
	}, list)

	// determinism: a second compile of the same body is identical
	assert.Equal(t, list, Compile(body))
}
