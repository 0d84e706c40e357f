//go:build tinygo

package widgets

// A single offset shadow keeps text rendering inside the frame budget on
// the target.
const fullOutline = false
