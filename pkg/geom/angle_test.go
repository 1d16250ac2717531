package geom

import (
	"math"
	"testing"
)

func TestAngularDistance(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		beta  float64
		want  float64
	}{
		{
			name:  "opposite angles",
			alpha: 0,
			beta:  math.Pi,
			want:  math.Pi,
		},
		{
			name:  "wraps across zero",
			alpha: 0.1,
			beta:  2*math.Pi - 0.1,
			want:  0.2,
		},
		{
			name:  "identical angles",
			alpha: 1.234,
			beta:  1.234,
			want:  0,
		},
		{
			name:  "symmetric",
			alpha: -math.Pi / 2,
			beta:  math.Pi / 2,
			want:  math.Pi,
		},
		{
			name:  "small difference",
			alpha: 0.5,
			beta:  0.7,
			want:  0.2,
		},
		{
			name:  "negative input",
			alpha: -0.1,
			beta:  0.1,
			want:  0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularDistance(tt.alpha, tt.beta)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngularDistance(%v, %v) = %v, want %v", tt.alpha, tt.beta, got, tt.want)
			}
		})
	}
}

func TestAngularDistanceCommutes(t *testing.T) {
	for _, pair := range [][2]float64{{0, 1}, {-2, 3}, {0.1, 6.1}, {math.Pi, -math.Pi}} {
		a, b := pair[0], pair[1]
		if d1, d2 := AngularDistance(a, b), AngularDistance(b, a); d1 != d2 {
			t.Errorf("AngularDistance not symmetric for (%v, %v): %v vs %v", a, b, d1, d2)
		}
	}
}

func TestVec2Normalized(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{
			name: "unit x stays",
			v:    Vec2{1, 0},
			want: Vec2{1, 0},
		},
		{
			name: "diagonal",
			v:    Vec2{3, 4},
			want: Vec2{0.6, 0.8},
		},
		{
			name: "zero vector",
			v:    Vec2{},
			want: Vec2{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalized()
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Normalized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2Angle(t *testing.T) {
	if got := (Vec2{0, 1}).Angle(); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("Angle of +y = %v, want π/2", got)
	}
	if got := (Vec2{-1, 0}).Angle(); math.Abs(got-math.Pi) > 1e-9 {
		t.Errorf("Angle of -x = %v, want π", got)
	}
}

func TestFromAngleRoundTrip(t *testing.T) {
	for _, a := range []float64{0, 0.5, math.Pi / 2, -math.Pi / 2, 3} {
		v := FromAngle(a)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("FromAngle(%v) not unit length: %v", a, v.Length())
		}
		if d := AngularDistance(v.Angle(), a); d > 1e-9 {
			t.Errorf("FromAngle(%v).Angle() off by %v", a, d)
		}
	}
}
