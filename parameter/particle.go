package parameter

// Fruit Burst Particles
const (
	// ParticleBurst is the particle count spawned per eaten fruit
	ParticleBurst = 10

	// ParticleAngleJitter is the random spread added to each evenly spaced angle (radians)
	ParticleAngleJitter = 0.4

	// ParticleSpeedMin is the minimum initial speed in canvas pixels per baseline frame
	ParticleSpeedMin = 0.5

	// ParticleSpeedRange is the random speed added on top of ParticleSpeedMin
	ParticleSpeedRange = 0.9

	// ParticleSizeMin and ParticleSizeRange define radius in canvas pixels
	ParticleSizeMin   = 0.8
	ParticleSizeRange = 1.2

	// ParticleGravity is the downward acceleration per baseline frame
	ParticleGravity = 0.03

	// ParticleLifeDecay is life lost per baseline frame, 40 frames to cull
	ParticleLifeDecay = 0.025

	// ParticleEmojiChance is the probability a particle carries the fruit emoji
	ParticleEmojiChance = 0.4

	// ParticleMax caps live particles, oldest are overwritten
	ParticleMax = 256
)
