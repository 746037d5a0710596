// Package transform compiles structured image-transformation requests into
// the ordered directive list the image CDN consumes.
package transform

// Resize crops or scales the source image. Zero-valued fields are left out
// of the compiled directive.
type Resize struct {
	Width      int    `json:"width" binding:"omitempty,gte=0"`
	Height     int    `json:"height" binding:"omitempty,gte=0"`
	Crop       string `json:"crop" binding:"omitempty,oneof=crop scale fill pad thumb fit fill_pad"`
	Gravity    string `json:"gravity" binding:"omitempty,oneof=auto face center north west east south north_west north_east south_west south_east"`
	Background string `json:"background"`
}

type Rotate struct {
	Degree int `json:"degree" binding:"gte=-360,lte=360"`
}

// Radius rounds corners. Max wins over the uniform value, which wins over
// the per-corner values.
type Radius struct {
	All         int  `json:"all" binding:"gte=0"`
	LeftTop     int  `json:"left_top" binding:"gte=0"`
	RightTop    int  `json:"right_top" binding:"gte=0"`
	RightBottom int  `json:"right_bottom" binding:"gte=0"`
	LeftBottom  int  `json:"left_bottom" binding:"gte=0"`
	Max         bool `json:"max"`
}

type ArtEffect struct {
	Effect string `json:"effect" binding:"required,oneof=al_dente athena audrey aurora daguerre eucalyptus fes frost hairspray hokusai incognito linen peacock primavera quartz red_rock refresh sizzle sonnet ukulele zorro"`
}

type SimpleEffect struct {
	Effect   string `json:"effect" binding:"required,oneof=grayscale negative cartoonify oil_paint black_white"`
	Strength int    `json:"strength" binding:"gte=0,lte=100"`
}

type ContrastEffect struct {
	Effect string `json:"effect" binding:"required,oneof=contrast brightness"`
	Level  int    `json:"level" binding:"gte=-100,lte=100"`
}

type BlurEffect struct {
	Effect   string `json:"effect" binding:"required,oneof=blur blur_faces blur_region"`
	Strength int    `json:"strength" binding:"gte=0,lte=2000"`
	X        *int   `json:"x" binding:"omitempty,gte=0"`
	Y        *int   `json:"y" binding:"omitempty,gte=0"`
	Width    *int   `json:"width" binding:"omitempty,gte=0"`
	Height   *int   `json:"height" binding:"omitempty,gte=0"`
}

// Request is the full transformation body. Every section is optional;
// section order in the compiled output is fixed regardless of input.
type Request struct {
	Resize          *Resize          `json:"resize"`
	Rotate          *Rotate          `json:"rotate"`
	Radius          *Radius          `json:"radius"`
	ArtEffect       *ArtEffect       `json:"art_effect"`
	SimpleEffects   []SimpleEffect   `json:"simple_effect" binding:"omitempty,dive"`
	ContrastEffects []ContrastEffect `json:"contrast_effect" binding:"omitempty,dive"`
	BlurEffects     []BlurEffect     `json:"blur_effect" binding:"omitempty,dive"`
}

// Directive is one flat key-value instruction for the image service.
type Directive map[string]string
