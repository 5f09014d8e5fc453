package perceptron

import "image"
import "image/color"
import "io"

import "github.com/disintegration/imaging"
import "github.com/pkg/errors"

// Image renders the weights as a grayscale map, cols weights per row. Gray means a
// weight close to 0, white means close to +scale and black close to -scale.
func (p Perceptron) Image(cols int, scale float64) (*image.Gray, error) {
	if cols <= 0 {
		return nil, errors.Errorf("invalid column count %d", cols)
	}
	if scale <= 0 {
		return nil, errors.Errorf("invalid scale %v", scale)
	}
	var rows = (len(p.weights) + cols - 1) / cols
	var img = image.NewGray(image.Rect(0, 0, cols, rows))
	for i, w := range p.weights {
		img.SetGray(i%cols, i/cols, shade(w, scale))
	}
	return img, nil
}

// WritePNG writes the weight map as a png, each weight drawn as a zoom x zoom square
func (p Perceptron) WritePNG(w io.Writer, cols int, scale float64, zoom int) error {
	img, err := p.Image(cols, scale)
	if err != nil {
		return err
	}
	return imaging.Encode(w, upscale(img, zoom), imaging.PNG)
}

// SavePNG writes the weight map into the named png file
func (p Perceptron) SavePNG(name string, cols int, scale float64, zoom int) error {
	img, err := p.Image(cols, scale)
	if err != nil {
		return err
	}
	return imaging.Save(upscale(img, zoom), name)
}

func upscale(img *image.Gray, zoom int) image.Image {
	if zoom <= 1 {
		return img
	}
	var b = img.Bounds()
	return imaging.Resize(img, b.Dx()*zoom, b.Dy()*zoom, imaging.NearestNeighbor)
}

func shade(w, scale float64) color.Gray {
	var v = 127.5 + 127.5*w/scale
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return color.Gray{Y: uint8(v)}
}
