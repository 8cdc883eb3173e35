package constants

import "time"

// HUD layout
const (
	// HUDRows is the number of terminal rows above the play area
	HUDRows = 1
)

// Transient messages
const (
	MessageLevelComplete = "Level Complete!"
	MessagePaused        = "Paused"
	MessageYouWin        = "You Win!"
	MessageTimeUp        = "Time's up!"

	// MessageLevelStartFormat takes the level number
	MessageLevelStartFormat = "Level %d Start!"

	LevelStartMessageDuration    = 2 * time.Second
	LevelCompleteMessageDuration = 3 * time.Second
	PausedMessageDuration        = 2 * time.Second
	YouWinMessageDuration        = 5 * time.Second
	TimeUpMessageDuration        = 2 * time.Second
)
