package systems

// Gameplay lists the per-tick gameplay systems in the order they must run.
var Gameplay = []func(*Session){
	UpdateStarSpawner,
	UpdateStarCleanup,
	UpdateJoin,
	UpdateMovement,
	UpdateCatch,
}

// Simulation lists the systems that run after gameplay each tick.
var Simulation = []func(*Session){
	UpdatePhysics,
	UpdateEffects,
	UpdateScoreboard,
}

// Step runs one full tick of gameplay and simulation.
func Step(s *Session) {
	for _, system := range Gameplay {
		system(s)
	}
	for _, system := range Simulation {
		system(s)
	}
}
