package main

// Default command-line flag values
const (
	defaultOrder = 3   // quadratic fit
	defaultX1    = 0.0 // table start
	defaultXN    = 1.0 // table end
)

// Demo table parameters
const (
	demoSamples   = 9               // sine table length
	demoX1        = 0.0             // radians
	demoXN        = 4.0             // radians, past the sine peak and zero
	demoGridCount = 17              // evaluation grid points
	demoSinePeakX = 1.5707963267949 // pi/2, where sin peaks
)
