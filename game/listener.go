package game

// Listener receives gameplay feedback events on the frame thread
type Listener interface {
	// OnDeath fires once per round on collision or out-of-bounds
	OnDeath()
	// OnScore fires per passed obstacle with the points awarded
	OnScore(points int)
	OnCollect(kind PowerUpKind)
	OnPowerUpSpawned(kind PowerUpKind)
}

// NopListener ignores every event
type NopListener struct{}

func (NopListener) OnDeath()                     {}
func (NopListener) OnScore(int)                  {}
func (NopListener) OnCollect(PowerUpKind)        {}
func (NopListener) OnPowerUpSpawned(PowerUpKind) {}
