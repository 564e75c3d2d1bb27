package service

import (
	"math/rand"
	"testing"
)

func TestSeasonTotal(t *testing.T) {
	tests := []struct {
		perGame float64
		games   float64
		want    float64
	}{
		{24.5, 70, 1715},
		{0, 82, 0},
		{10.04, 10, 100},
		{10.05, 10, 101},
	}
	for _, tt := range tests {
		if got := seasonTotal(tt.perGame, tt.games); got != tt.want {
			t.Errorf("seasonTotal(%v, %v) = %v, want %v", tt.perGame, tt.games, got, tt.want)
		}
	}
}

func TestPointsFromShootingProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		fgm := float64(rng.Intn(30))
		fg3m := float64(rng.Intn(15))
		ftm := float64(rng.Intn(20))

		want := fgm*2 + fg3m*3 + ftm
		if got := pointsFromShooting(fgm, fg3m, ftm); got != want {
			t.Fatalf("pointsFromShooting(%v, %v, %v) = %v, want %v", fgm, fg3m, ftm, got, want)
		}
	}
}

func TestRounding(t *testing.T) {
	if got := round1(6.14999); got != 6.1 {
		t.Errorf("round1 = %v, want 6.1", got)
	}
	if got := round1(6.15); got != 6.2 {
		t.Errorf("round1 = %v, want 6.2", got)
	}
	if got := round3(0.44825); got != 0.448 {
		t.Errorf("round3 = %v, want 0.448", got)
	}
	if got := round0(4.5); got != 5 {
		t.Errorf("round0 = %v, want 5", got)
	}
}

func TestLastToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Stephen Curry", "Curry"},
		{"  Curry  ", "Curry"},
		{"Juan Soto Jr", "Jr"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := lastToken(tt.in); got != tt.want {
			t.Errorf("lastToken(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
