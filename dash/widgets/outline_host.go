//go:build !tinygo

package widgets

// Full 8-direction outline is cheap on the host.
const fullOutline = true
