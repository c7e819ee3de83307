// Package figure holds rendered plot figures and decorates them with a
// scannable code linking back to their source.
//
// A Figure wraps an already rendered plot image and a set of inset Axes laid
// over it. AddCodeOverlay encodes a link as a QR code, places it in a small
// inset in the top-right corner and covers the inset with an invisible
// clickable hotspot carrying the same link. Raster output (WritePNG) only
// shows the code; paginated output (WritePDF) also keeps the hotspot as a link
// annotation.
package figure
