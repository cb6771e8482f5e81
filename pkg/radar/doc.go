// Package radar defines the inputs of a radar diagram: the [Definition]
// with its segment, sub-segment and ring labels, the [Blip] requests to
// place, and the [Options] that size the diagram and bound placement.
//
// Options are layered: [DefaultOptions] supplies every value and
// [Options.Merge] overlays the non-zero fields of a partial configuration,
// including the nested label, blip and placement groups.
//
//	opts := radar.DefaultOptions().Merge(radar.Options{
//	    Diameter: 1200,
//	    Blip:     radar.BlipOptions{Shape: "square"},
//	})
package radar
