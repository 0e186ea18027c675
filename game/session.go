package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/noisy-bird/audio"
	"github.com/lixenwraith/noisy-bird/constant"
)

// State is the round lifecycle phase
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateRoundOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// EndReason records why the last round finished
type EndReason int

const (
	EndNone EndReason = iota
	EndCollision
	EndOutOfBounds
	EndAborted // Player quit the round; no death feedback
)

// ErrNotInMenu is returned when a round is started outside the menu
var ErrNotInMenu = errors.New("round can only start from the menu")

// VolumeSource is the microphone as seen by the session
type VolumeSource interface {
	Start() error
	Stop()
	LatestVolume() float64
}

// HighscoreSaver persists a new highscore; failures are the saver's concern
type HighscoreSaver interface {
	SaveHighscore(score int)
}

// Control holds the tunable flap trigger
type Control struct {
	Sensitivity float64
	Threshold   float64
}

// Config wires a session's collaborators; nil fields get inert defaults
type Config struct {
	Mic       VolumeSource
	Saver     HighscoreSaver
	Listener  Listener
	Rand      *rand.Rand
	Control   Control
	Highscore int

	// SmoothingWindow is the trailing sample count, 0 uses the default
	SmoothingWindow int

	PlayWidth  float64
	PlayHeight float64
}

// Session owns one bird, the obstacle and power-up collections, score and effect timers
// All methods run on the frame thread
type Session struct {
	mic      VolumeSource
	saver    HighscoreSaver
	listener Listener
	rng      *rand.Rand
	control  Control

	width, height float64

	state     State
	endReason EndReason

	bird      *Bird
	obstacles []*Obstacle
	powerUps  []*PowerUp
	smoother  *audio.VolumeSmoother

	score     int
	highscore int

	spawnTimer  time.Duration
	slowUntil   time.Time
	doubleUntil time.Time

	rawVolume      float64
	smoothedVolume float64
	frames         uint64
}

// NewSession creates a session in the menu state
func NewSession(cfg Config) *Session {
	if cfg.Listener == nil {
		cfg.Listener = NopListener{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.SmoothingWindow <= 0 {
		cfg.SmoothingWindow = constant.SmoothingWindow
	}
	if cfg.PlayWidth <= 0 {
		cfg.PlayWidth = constant.PlayWidth
	}
	if cfg.PlayHeight <= 0 {
		cfg.PlayHeight = constant.PlayHeight
	}
	if cfg.Highscore < 0 {
		cfg.Highscore = 0
	}
	return &Session{
		mic:       cfg.Mic,
		saver:     cfg.Saver,
		listener:  cfg.Listener,
		rng:       cfg.Rand,
		control:   cfg.Control,
		width:     cfg.PlayWidth,
		height:    cfg.PlayHeight,
		state:     StateMenu,
		bird:      NewBird(),
		smoother:  audio.NewVolumeSmoother(cfg.SmoothingWindow),
		highscore: cfg.Highscore,
	}
}

// StartRound resets the round and starts capture; Menu -> Playing
// A capture failure is logged and the round runs with zero input
func (s *Session) StartRound() error {
	if s.state != StateMenu {
		return ErrNotInMenu
	}

	s.bird.Reset()
	s.obstacles = nil
	s.powerUps = nil
	s.smoother.Reset()
	s.score = 0
	s.spawnTimer = 0
	s.slowUntil = time.Time{}
	s.doubleUntil = time.Time{}
	s.rawVolume = 0
	s.smoothedVolume = 0
	s.frames = 0
	s.endReason = EndNone

	if s.mic != nil {
		if err := s.mic.Start(); err != nil {
			log.Warn().Err(err).Msg("round started without microphone")
		}
	}

	s.state = StatePlaying
	log.Info().Int("highscore", s.highscore).Msg("round started")
	return nil
}

// Update advances one frame; now is game time and dt the game time since the previous frame
// No-op outside Playing
func (s *Session) Update(now time.Time, dt time.Duration) {
	if s.state != StatePlaying {
		return
	}
	s.frames++

	// 1-2: mic -> smoother -> flap trigger
	s.rawVolume = 0
	if s.mic != nil {
		s.rawVolume = s.mic.LatestVolume()
	}
	s.smoother.Add(s.rawVolume)
	s.smoothedVolume = s.smoother.Value()
	if s.ShouldFlap(s.smoothedVolume) {
		s.bird.Flap()
	}

	// 3
	s.bird.Update()

	// 4
	s.spawnTimer += dt
	if s.spawnTimer > constant.SpawnInterval {
		s.spawnTimer = 0
		s.spawnObstacle()
		if s.rng.Float64() < constant.PowerUpChance {
			s.spawnPowerUp()
		}
	}

	// 5
	speed := s.ScrollSpeed(now)

	// 6
	if s.updateObstacles(now, speed) {
		s.die(EndCollision)
		return
	}

	// 7
	s.updatePowerUps(now, speed)

	// 8
	if s.bird.IsOutOfBounds(s.height) {
		s.die(EndOutOfBounds)
	}
}

// ShouldFlap applies the sensitivity scale and threshold to a smoothed volume
func (s *Session) ShouldFlap(smoothed float64) bool {
	return smoothed*s.control.Sensitivity > s.control.Threshold
}

// ScrollSpeed returns the base speed, halved while the slow effect is active
func (s *Session) ScrollSpeed(now time.Time) float64 {
	if now.Before(s.slowUntil) {
		return constant.ScrollSpeed * constant.SlowSpeedFactor
	}
	return constant.ScrollSpeed
}

// updateObstacles moves, scores and culls obstacles; returns true on the first collision
// Survivors are collected into a fresh slice
func (s *Session) updateObstacles(now time.Time, speed float64) bool {
	birdBox := s.bird.Bounds()
	survivors := make([]*Obstacle, 0, len(s.obstacles))

	for i, o := range s.obstacles {
		o.Move(speed)
		if o.CollidesWith(birdBox) {
			// Remaining obstacles are left as they were this frame
			survivors = append(survivors, s.obstacles[i:]...)
			s.obstacles = survivors
			return true
		}
		if o.CheckPassed(s.bird.X) {
			pts := constant.PointsPerObstacle
			if now.Before(s.doubleUntil) {
				pts *= constant.DoubleMultiplier
			}
			s.score += pts
			s.listener.OnScore(pts)
		}
		if !o.IsOffScreen() {
			survivors = append(survivors, o)
		}
	}
	s.obstacles = survivors
	return false
}

// updatePowerUps moves pickups, applies collected effects and drops inactive ones
func (s *Session) updatePowerUps(now time.Time, speed float64) {
	birdBox := s.bird.Bounds()
	survivors := make([]*PowerUp, 0, len(s.powerUps))

	for _, p := range s.powerUps {
		p.Move(speed)
		if p.Active && p.CollidesWith(birdBox) {
			p.Active = false
			s.applyPowerUp(now, p.Kind)
			s.listener.OnCollect(p.Kind)
		}
		if p.Active {
			survivors = append(survivors, p)
		}
	}
	s.powerUps = survivors
}

// applyPowerUp sets the effect expiry from now; a repeat collection restarts, never adds
func (s *Session) applyPowerUp(now time.Time, kind PowerUpKind) {
	switch kind {
	case PowerUpSlow:
		s.slowUntil = now.Add(constant.SlowEffectDuration)
	case PowerUpDouble:
		s.doubleUntil = now.Add(constant.DoubleEffectDuration)
	}
}

func (s *Session) spawnObstacle() {
	gap := s.bird.H * constant.ObstacleGapFactor
	top := s.rng.Float64() * (s.height / 2)
	s.obstacles = append(s.obstacles, NewObstacle(
		s.width+constant.ObstacleSpawnMargin,
		constant.ObstacleWidth,
		top,
		gap,
		s.height,
	))
}

func (s *Session) spawnPowerUp() {
	kind := PowerUpKind(s.rng.Intn(int(powerUpKindCount)))
	y := constant.PowerUpMinY + s.rng.Float64()*(constant.PowerUpMaxY-constant.PowerUpMinY)
	s.powerUps = append(s.powerUps, NewPowerUp(kind, s.width+constant.PowerUpSpawnMargin, y, constant.PowerUpSize))
	s.listener.OnPowerUpSpawned(kind)
}

func (s *Session) die(reason EndReason) {
	s.listener.OnDeath()
	s.finish(reason)
}

// EndRound finishes the current round without death feedback; Playing -> RoundOver
// Returns false outside Playing
func (s *Session) EndRound() bool {
	if s.state != StatePlaying {
		return false
	}
	s.finish(EndAborted)
	return true
}

// finish stops capture and settles the highscore
func (s *Session) finish(reason EndReason) {
	if s.mic != nil {
		s.mic.Stop()
	}
	s.state = StateRoundOver
	s.endReason = reason

	if s.score > s.highscore {
		s.highscore = s.score
		if s.saver != nil {
			s.saver.SaveHighscore(s.score)
		}
		log.Info().Int("highscore", s.highscore).Msg("new highscore")
	}
	log.Info().Int("score", s.score).Int("reason", int(reason)).Uint64("frames", s.frames).Msg("round over")
}

// Acknowledge returns to the menu after a round; RoundOver -> Menu
func (s *Session) Acknowledge() bool {
	if s.state != StateRoundOver {
		return false
	}
	s.state = StateMenu
	return true
}

// SetControl updates sensitivity and threshold, effective next frame
func (s *Session) SetControl(c Control) {
	s.control = c
}

// Control returns the flap trigger settings
func (s *Session) Control() Control { return s.control }

// State returns the lifecycle phase
func (s *Session) State() State { return s.state }

// EndReason returns why the last round ended
func (s *Session) EndReason() EndReason { return s.endReason }

// Score returns the current or last round score
func (s *Session) Score() int { return s.score }

// Highscore returns the best score seen
func (s *Session) Highscore() int { return s.highscore }

// Bird returns the live bird
func (s *Session) Bird() *Bird { return s.bird }

// Obstacles returns the obstacle collection in spawn order; callers must not retain or mutate it
func (s *Session) Obstacles() []*Obstacle { return s.obstacles }

// PowerUps returns the power-up collection in spawn order; callers must not retain or mutate it
func (s *Session) PowerUps() []*PowerUp { return s.powerUps }

// Volumes returns the last raw and smoothed microphone levels
func (s *Session) Volumes() (raw, smoothed float64) {
	return s.rawVolume, s.smoothedVolume
}

// SlowActive reports the slow effect at now
func (s *Session) SlowActive(now time.Time) bool { return now.Before(s.slowUntil) }

// DoubleActive reports the double-score effect at now
func (s *Session) DoubleActive(now time.Time) bool { return now.Before(s.doubleUntil) }

// EffectExpiry returns the slow and double expiry times
func (s *Session) EffectExpiry() (slowUntil, doubleUntil time.Time) {
	return s.slowUntil, s.doubleUntil
}
