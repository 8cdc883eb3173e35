package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundBucketExplode SoundType = iota // Bucket quota met
	SoundGrainAdded                     // Grain credited to a bucket
	SoundLevelComplete                  // All buckets exploded, or sequence exhausted
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundBucketExplode:
		return "bucket-explode"
	case SoundGrainAdded:
		return "grain-added"
	case SoundLevelComplete:
		return "level-complete"
	default:
		return "unknown"
	}
}
