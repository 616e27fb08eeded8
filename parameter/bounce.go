package parameter

// ===== BOUNCE DEMO =====

const (
	// BallSpeedX is the horizontal ball speed in cells per second
	BallSpeedX = 18.0
	// BallSpeedY is the vertical ball speed in cells per second
	BallSpeedY = 11.0
)
