// Package viz is the geometry core of a data-visualization library.
//
// viz turns tabular numeric data into geometry suitable for a
// retained-mode GPU renderer: scales map data domains to visual ranges,
// shape generators emit vector path commands, geographic projections
// flatten spherical geometry to the plane, and the contour and surface
// packages produce polygon rings and GPU vertex buffers from sampled
// scalar fields.
//
// The root package holds the shared vocabulary: Point and Matrix for
// plane geometry, Path for vector path command streams, RGBA for
// colors, and the error values shared by the subpackages. Drawing is
// delegated entirely to the host renderer; nothing in this module
// touches a window, a font, or a GPU device.
//
// # Data flow
//
// A typical chart: raw numeric arrays flow through array reductions to
// establish extents, scales map domains to pixel ranges, shape
// generators consume scales plus data and emit Path command streams,
// and the host renderer paints them. The contour and surface packages
// short-circuit the path stage and emit polygon rings or vertex/index
// buffers directly.
//
// # Coordinate system
//
// Standard computer graphics coordinates: origin at top-left,
// X increases right, Y increases down, angles in radians.
package viz

// Default plot dimensions in pixels, used by hosts that do not
// specify a size.
const (
	DefaultWidth  = 600.0
	DefaultHeight = 400.0
)

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
