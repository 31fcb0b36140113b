package errors

import "strings"

// Limits shared by every front-end.
const (
	MinDimension = 1
	MaxDimension = 100

	MinSpeed = 0
	MaxSpeed = 100

	MinCellSize = 2
	MaxCellSize = 200
)

// ValidateDimensions checks a grid width and height.
// Both must lie in [MinDimension, MaxDimension]; larger grids make the
// linear-scan decrease-key of the frontier heap noticeably slow.
func ValidateDimensions(width, height int) error {
	if width < MinDimension || width > MaxDimension {
		return New(ErrCodeInvalidDimensions, "width must be between %d and %d, got %d", MinDimension, MaxDimension, width)
	}
	if height < MinDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions, "height must be between %d and %d, got %d", MinDimension, MaxDimension, height)
	}
	return nil
}

// ValidateSpeed checks a stepping speed in steps per second.
// Zero is valid and means paused.
func ValidateSpeed(speed int) error {
	if speed < MinSpeed || speed > MaxSpeed {
		return New(ErrCodeInvalidSpeed, "speed must be between %d and %d, got %d", MinSpeed, MaxSpeed, speed)
	}
	return nil
}

// ValidateCellSize checks the pixel size of one rendered grid cell.
func ValidateCellSize(size int) error {
	if size < MinCellSize || size > MaxCellSize {
		return New(ErrCodeInvalidInput, "cell size must be between %d and %d, got %d", MinCellSize, MaxCellSize, size)
	}
	return nil
}

// validFormats is the set of supported frame export formats.
var validFormats = map[string]bool{"svg": true, "png": true, "dot": true, "json": true, "txt": true}

// ValidateFormat checks that a single export format is supported.
// Formats are case-sensitive.
func ValidateFormat(format string) error {
	if !validFormats[format] {
		return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of svg, png, dot, json, txt)", format)
	}
	return nil
}

// ValidateFormats checks every format in formats.
// An empty slice is valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(strings.TrimSpace(f)); err != nil {
			return err
		}
	}
	return nil
}
