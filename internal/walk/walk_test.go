package walk

import "testing"

func TestGenerate_Shape(t *testing.T) {
	s := Generate()
	if len(s) != Steps {
		t.Fatalf("expected %d points, got %d", Steps, len(s))
	}
	if s[0].Time != 0 {
		t.Errorf("expected first time 0, got %d", s[0].Time)
	}
	if s[len(s)-1].Time != Steps-1 {
		t.Errorf("expected last time %d, got %d", Steps-1, s[len(s)-1].Time)
	}
	if s[0].Price != StartPrice {
		t.Errorf("expected starting price %.1f, got %.4f", StartPrice, s[0].Price)
	}
	for i := 1; i < len(s); i++ {
		if s[i].Time != s[i-1].Time+1 {
			t.Fatalf("time step at %d: %d -> %d", i, s[i-1].Time, s[i].Time)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate()
	b := Generate()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// fixedSource returns a canned sequence of draws.
type fixedSource struct {
	draws []float64
	i     int
}

func (f *fixedSource) Norm() float64 {
	v := f.draws[f.i%len(f.draws)]
	f.i++
	return v
}

func TestGenerateFrom_AppliesSigma(t *testing.T) {
	src := &fixedSource{draws: []float64{1, -1}}
	s := GenerateFrom(src)
	if s[1].Price != StartPrice+NoiseSigma {
		t.Errorf("expected %.1f, got %.4f", StartPrice+NoiseSigma, s[1].Price)
	}
	if s[2].Price != StartPrice {
		t.Errorf("expected walk to return to %.1f, got %.4f", StartPrice, s[2].Price)
	}
}
