package system

import "github.com/milk9111/speedrun/ecs"

// NewGameplayScheduler returns the per-frame systems of a running level in
// execution order. The player is resolved against where platforms stood at
// the end of the previous frame, then platforms move. Collision dispatch
// sees the resolved player.
func NewGameplayScheduler(effects EffectApplier) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewPlayerControllerSystem(),
		NewSpeedBoostSystem(),
		NewTrailSystem(),
		NewAnimationSystem(),
		NewPlayerPhysicsSystem(),
		NewMovingPlatformSystem(),
		NewPowerUpHoverSystem(),
		NewCollisionDispatchSystem(effects),
		NewPickupMessageSystem(),
		NewFinishArrowSystem(),
	)
}
