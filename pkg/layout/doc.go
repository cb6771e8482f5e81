// Package layout turns a radar definition into a placed diagram.
//
// [Build] resolves the definition's options, builds the [scene.Scene],
// seeds the random source and runs the [placement.Placer]. The returned
// [Layout] holds everything a renderer needs: the scene geometry, the
// resolved options and one outcome per blip in input order.
//
//	l, err := layout.Build(def,
//	    layout.WithObserver(placement.LogObserver{Logger: logger}),
//	)
//
// [Layout.Export] converts a layout into a [Document], the serializable form
// written by the JSON sink and read back by pkg/io.
package layout
