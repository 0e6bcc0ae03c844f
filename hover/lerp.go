// Package hover holds the frame logic for the hover plane: pointer easing,
// alpha fading, texture swapping and the camera that keeps one world unit
// equal to one css pixel.
//
// Nothing in here touches syscall/js, the browser side lives in the dom and
// webgl packages.
package hover

import "math"

// Lerp blends start towards end by t.
func Lerp(start, end, t float64) float64 {
	return start*(1-t) + end*t
}

// FOV returns the vertical field of view in degrees for a camera placed at
// perspective distance so that height world units fill the viewport.
func FOV(height, perspective float64) float64 {
	return 2 * math.Atan(height/2/perspective) * 180 / math.Pi
}
