package geometry_test

import (
	"fmt"
	"math"

	"github.com/matzehuels/techradar/pkg/geometry"
)

func ExampleAngles() {
	for _, a := range geometry.Angles(4) {
		fmt.Printf("%.0f° ", geometry.ToDegree(a))
	}
	fmt.Println()
	// Output:
	// 0° 90° 180° 270° 360°
}

func ExampleRadiusProfile_Compute() {
	for _, p := range []geometry.Policy{geometry.PolicyEqualThickness, geometry.PolicyEqualArea} {
		radii, err := geometry.RadiusProfile{Policy: p}.Compute(100, 4, 4)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(p, radii)
	}
	// Output:
	// equal-thickness [0 25 50 75 100]
	// equal-area [0 50 71 87 100]
}

func ExampleToCartesianRounded() {
	c := geometry.ToCartesianRounded(100, math.Pi/2, 2)
	fmt.Println(c.X, c.Y)
	// Output:
	// 100 0
}
