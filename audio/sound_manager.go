package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/sugar-pop/constants"
	"github.com/lixenwraith/sugar-pop/core"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager plays synthesized cues through one mixer on the speaker
// Every method is a no-op until Initialize succeeds, so the game runs silent without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	lastPlayed  [core.SoundTypeCount]time.Time
	logger      *zap.Logger
}

// NewSoundManager creates a sound manager; volume is a log2 gain, 0 leaves cues unchanged
func NewSoundManager(volume float64, logger *zap.Logger) *SoundManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	// beep has no speaker Close; an empty mixer streams silence
	sm.initialized = false
}

// IsInitialized reports whether cues reach the speaker
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a cue; repeats of the same cue within MinSoundGap are dropped
func (sm *SoundManager) Play(sound core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sound < 0 || sound >= core.SoundTypeCount {
		return
	}
	now := time.Now()
	if now.Sub(sm.lastPlayed[sound]) < constants.MinSoundGap {
		return
	}
	sm.lastPlayed[sound] = now

	streamer, err := Cue(sound, sm.volume)
	if err != nil {
		sm.logger.Warn("build cue", zap.Stringer("sound", sound), zap.Error(err))
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Cue builds the finite streamer for a sound at the given log2 volume
func Cue(sound core.SoundType, volume float64) (beep.Streamer, error) {
	var s beep.Streamer
	switch sound {
	case core.SoundBucketExplode:
		s = beep.Take(sampleRate.N(constants.ExplodeSoundDuration), NewExplodeGenerator(sampleRate))
	case core.SoundGrainAdded:
		tone, err := NewTone(sampleRate, constants.GrainSoundFreq, constants.GrainSoundDuration)
		if err != nil {
			return nil, err
		}
		s = tone
	case core.SoundLevelComplete:
		notes := make([]beep.Streamer, 0, len(constants.CompleteArpeggio))
		for _, f := range constants.CompleteArpeggio {
			tone, err := NewTone(sampleRate, f, constants.CompleteNoteDuration)
			if err != nil {
				return nil, err
			}
			notes = append(notes, tone)
		}
		s = beep.Seq(notes...)
	default:
		return nil, fmt.Errorf("unknown sound %d", sound)
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}, nil
}
