// Package level holds the per-level record: spout, statics, buckets and limits.
package level

import (
	"strconv"
	"strings"
)

// StaticSpec describes an immovable line segment
type StaticSpec struct {
	X1          float64 `json:"x1" yaml:"x1"`
	Y1          float64 `json:"y1" yaml:"y1"`
	X2          float64 `json:"x2" yaml:"x2"`
	Y2          float64 `json:"y2" yaml:"y2"`
	Color       string  `json:"color" yaml:"color"`
	LineWidth   float64 `json:"line_width" yaml:"line_width"`
	Friction    float64 `json:"friction" yaml:"friction"`
	Restitution float64 `json:"restitution" yaml:"restitution"`
}

// BucketSpec describes a collection region; X, Y is the bottom-left corner
type BucketSpec struct {
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	Width       float64 `json:"width" yaml:"width"`
	Height      float64 `json:"height" yaml:"height"`
	NeededSugar int     `json:"needed_sugar" yaml:"needed_sugar"`
}

// Level is the immutable configuration of one level
type Level struct {
	NumberSugarGrains   int          `json:"number_sugar_grains" yaml:"number_sugar_grains"`
	Statics             []StaticSpec `json:"statics" yaml:"statics"`
	Buckets             []BucketSpec `json:"buckets" yaml:"buckets"`
	TimeToCompleteLevel int          `json:"time_to_complete_level" yaml:"time_to_complete_level"`
	SpoutX              float64      `json:"spout_x" yaml:"spout_x"`
	SpoutY              float64      `json:"spout_y" yaml:"spout_y"`
}

// Default material and look for statics added without explicit values
const (
	DefaultColor       = "white"
	DefaultLineWidth   = 2
	DefaultFriction    = 0.5
	DefaultRestitution = 0.5
)

// New returns an empty level
func New() *Level {
	return &Level{
		Statics: []StaticSpec{},
		Buckets: []BucketSpec{},
	}
}

// AddStatic appends a static segment with the default look and material
func (l *Level) AddStatic(x1, y1, x2, y2 float64) {
	l.AddStaticWith(StaticSpec{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Color:       DefaultColor,
		LineWidth:   DefaultLineWidth,
		Friction:    DefaultFriction,
		Restitution: DefaultRestitution,
	})
}

// AddStaticWith appends a fully specified static segment
func (l *Level) AddStaticWith(s StaticSpec) {
	l.Statics = append(l.Statics, s)
}

// AddBucket appends a bucket
func (l *Level) AddBucket(x, y, width, height float64, neededSugar int) {
	l.Buckets = append(l.Buckets, BucketSpec{
		X: x, Y: y, Width: width, Height: height,
		NeededSugar: neededSugar,
	})
}

// SetNumberSugarGrains sets the total grains the spout emits
func (l *Level) SetNumberSugarGrains(count int) {
	l.NumberSugarGrains = count
}

// SetTimeToComplete sets the time limit in seconds, 0 disables it
func (l *Level) SetTimeToComplete(seconds int) {
	l.TimeToCompleteLevel = seconds
}

// SetSpout sets the emission point
func (l *Level) SetSpout(x, y float64) {
	l.SpoutX, l.SpoutY = x, y
}

// FileName substitutes the level number for every 'X' in pattern
func FileName(pattern string, number int) string {
	return strings.ReplaceAll(pattern, "X", strconv.Itoa(number))
}
