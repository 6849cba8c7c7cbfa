package pixel

import "image/color"

// Model returns a color model that quantizes colors through the descriptor,
// so a converted color is exactly what a store and load would produce.
// Indexed formats have no color mapping and convert to gray.
func (d *Descriptor) Model() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		if d.IsIndexed() {
			y := color.GrayModel.Convert(c).(color.Gray).Y
			return d.Decode(d.EncodeIndex(uint32(y)))
		}
		return d.Decode(d.Encode(color.NRGBAModel.Convert(c).(color.NRGBA)))
	})
}
