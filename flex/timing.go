package flex

import "time"

// Timings has fields for coefficient-construction and linear-solve time,
// mirroring f1d.py's coeff_creation_time/time_to_solve fields. Solve holds
// the full run time of each method; no solver in this package fills
// Assemble, which stays zero.
type Timings struct {
	Assemble time.Duration
	Solve    time.Duration
}
