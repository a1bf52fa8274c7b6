package breakout

// Fixed-point scale factor: 1 cell = 1000 units.
// Sub-cell precision without floating point keeps the simulation
// deterministic across platforms.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to cell coordinate (truncated).
func (f Fixed) ToCell() int {
	return int(f) / Scale
}

// Add adds two fixed-point values.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// Sub subtracts two fixed-point values.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Mul multiplies fixed-point by an integer.
func (f Fixed) Mul(n int) Fixed {
	return Fixed(int(f) * n)
}

// Div divides fixed-point by an integer.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int(f) / n)
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// ClampFixed restricts a value to [minVal, maxVal].
func ClampFixed(val, minVal, maxVal Fixed) Fixed {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Ball is the single ball, positioned and moved in fixed-point.
type Ball struct {
	X, Y   Fixed // Position (center)
	VX, VY Fixed // Velocity per tick
	Stuck  bool  // Riding the paddle before launch
}

// CellX returns the ball's X position in cell coordinates.
func (b *Ball) CellX() int {
	return b.X.ToCell()
}

// CellY returns the ball's Y position in cell coordinates.
func (b *Ball) CellY() int {
	return b.Y.ToCell()
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X = b.X.Add(b.VX)
	b.Y = b.Y.Add(b.VY)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Paddle is the player's paddle. X is the left edge in fixed-point; Y is
// a fixed cell row near the bottom of the screen.
type Paddle struct {
	X     Fixed
	Y     int
	Width int // Width in cells
}

// CellX returns paddle's left edge in cell coordinates.
func (p *Paddle) CellX() int {
	return p.X.ToCell()
}

// CenterX returns paddle's center in fixed-point.
func (p *Paddle) CenterX() Fixed {
	return p.X.Add(ToFixed(p.Width).Div(2))
}

// Left returns left edge in fixed-point.
func (p *Paddle) Left() Fixed {
	return p.X
}

// Right returns right edge in fixed-point.
func (p *Paddle) Right() Fixed {
	return p.X.Add(ToFixed(p.Width))
}

// CollisionSide indicates which screen edge the ball touched.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionLeft
	CollisionRight
)

// CheckWallCollision checks the ball against the screen boundaries.
// Side walls and the top (below the HUD rows) reflect; crossing the
// bottom edge reports fellOff instead.
func CheckWallCollision(ball *Ball, screenW, screenH int) (side CollisionSide, fellOff bool) {
	if ball.X < ToFixed(1) {
		ball.X = ToFixed(1)
		return CollisionLeft, false
	}

	if ball.X >= ToFixed(screenW-1) {
		ball.X = ToFixed(screenW - 2)
		return CollisionRight, false
	}

	if ball.Y < ToFixed(2) {
		ball.Y = ToFixed(2)
		return CollisionTop, false
	}

	if ball.Y >= ToFixed(screenH) {
		return CollisionNone, true
	}

	return CollisionNone, false
}

// ApplyCollisionBounce reflects the velocity component matching the side.
func ApplyCollisionBounce(ball *Ball, side CollisionSide) {
	switch side {
	case CollisionTop:
		ball.BounceY()
	case CollisionLeft, CollisionRight:
		ball.BounceX()
	}
}

// CheckPaddleCollision bounces the ball off the paddle. The outgoing
// vertical speed is always the base speed upward; the horizontal speed is
// a linear mapping of the hit offset (-1..+1 across the paddle) into
// at most three quarters of the base speed, so edge hits give shallow
// angles and center hits go straight up.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, speed Fixed) bool {
	// Only a downward-moving ball at the paddle's row can connect
	if ball.VY <= 0 {
		return false
	}
	ballY := ball.Y.ToCell()
	if ballY != paddle.Y && ballY != paddle.Y-1 {
		return false
	}
	if ball.X < paddle.Left() || ball.X > paddle.Right() {
		return false
	}

	// Normalized hit offset in fixed-point: -Scale..+Scale
	hitOffset := ball.X.Sub(paddle.CenterX())
	halfWidth := ToFixed(paddle.Width).Div(2)
	var hit Fixed
	if halfWidth > 0 {
		hit = hitOffset.Mul(Scale).Div(int(halfWidth))
	}
	hit = ClampFixed(hit, -Scale, Scale)

	ball.VX = Fixed(int(hit) * int(speed) * 3 / 4 / Scale)
	ball.VY = -speed
	ball.Y = ToFixed(paddle.Y - 1)

	return true
}
