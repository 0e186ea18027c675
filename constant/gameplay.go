package constant

import "time"

// Obstacles
const (
	ObstacleWidth = 70.0

	// ObstacleSpawnMargin is the distance right of the play area where obstacles appear
	ObstacleSpawnMargin = 80.0

	// ObstacleGapFactor scales bird height into the vertical opening
	ObstacleGapFactor = 5.0

	// ObstacleRemoveMargin is how far left of x=0 the trailing edge must travel before removal
	ObstacleRemoveMargin = 10.0

	// ScrollSpeed is the base leftward speed per frame
	ScrollSpeed = 3.0

	// SlowSpeedFactor applies while the slow power-up is active
	SlowSpeedFactor = 0.5

	// SpawnInterval is the game time between obstacle spawns
	SpawnInterval = 2200 * time.Millisecond
)

// Power-ups
const (
	PowerUpSize = 26.0

	// PowerUpSpawnMargin is the distance right of the play area where power-ups appear
	PowerUpSpawnMargin = 50.0

	// PowerUpMinY and PowerUpMaxY bound the random vertical spawn band
	PowerUpMinY = 60.0
	PowerUpMaxY = PlayHeight - 80.0

	// PowerUpChance is the probability of a power-up per obstacle spawn
	PowerUpChance = 0.12

	SlowEffectDuration   = 4 * time.Second
	DoubleEffectDuration = 5 * time.Second
)

// Scoring
const (
	PointsPerObstacle = 1
	DoubleMultiplier  = 2
)
