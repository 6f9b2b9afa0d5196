// Package smooth provides control signal smoothers.
//
// [Ramp] moves linearly towards each new target over a given period.
// [Lag] is a one-pole exponential smoother whose time constant is expressed
// as the time to reach -60 dB. Both run either on a block of samples or on
// one control value per call.
package smooth
