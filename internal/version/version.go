// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Anchor charts, YAML config, run summary
// 0.2.0 - Morse-dashed ecliptic fitted between borders
// 0.1.0 - Initial release: Hipparcos loader, zodiac figures, plate carrée SVG
