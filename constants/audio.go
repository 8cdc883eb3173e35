package constants

import "time"

// Audio output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap throttles repeats of the same cue
	MinSoundGap = 30 * time.Millisecond
)

// Cue shapes
const (
	ExplodeSoundDuration = 350 * time.Millisecond
	GrainSoundDuration   = 40 * time.Millisecond
	GrainSoundFreq       = 1320.0
	CompleteNoteDuration = 140 * time.Millisecond
)

// CompleteArpeggio is the rising major arpeggio for level complete
var CompleteArpeggio = [...]float64{523.25, 659.25, 783.99, 1046.50}
