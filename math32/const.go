package math32

// Named constants, reproduced to the literal precision downstream trig
// identities are tested against.
const (
	Pi       float32 = 3.14159265359
	PiOver2  float32 = 1.570796326
	PiOver4  float32 = 0.785398163
	TwoPi    float32 = 6.28318530718
	E        float32 = 2.71828182845
	DegToRad float32 = 0.01745329251
	RadToDeg float32 = 57.2957795131
	Ln2      float32 = 0.69314718056
	Ln10     float32 = 2.30258509299
)
