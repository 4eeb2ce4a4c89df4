package game

import "testing"

func TestEmitterEmitsAndExpires(t *testing.T) {
	e := NewParticleEmitter(0, 0, 32)
	e.EmissionRate = 100
	e.Life = 0.2
	e.LifeVariance = 0
	e.Duration = 0.1

	e.Update(0.05)
	if !e.anyActive() {
		t.Fatal("no particles after emission window")
	}
	for i := 0; i < 100 && e.Active; i++ {
		e.Update(0.05)
	}
	if e.Active {
		t.Fatal("emitter never finished")
	}
	if e.anyActive() {
		t.Fatal("emitter stopped with live particles")
	}
}

func TestSystemDropsFinishedEmitters(t *testing.T) {
	ps := NewParticleSystem()
	e := NewParticleEmitter(0, 0, 8)
	e.Duration = 0.05
	e.Life = 0.05
	e.LifeVariance = 0
	ps.AddEmitter(e)

	for i := 0; i < 100 && len(ps.Emitters) > 0; i++ {
		ps.Update(0.05)
	}
	if len(ps.Emitters) != 0 {
		t.Fatalf("%d emitters left", len(ps.Emitters))
	}
}

func TestSeekingParticlesArrive(t *testing.T) {
	e := NewParticleEmitter(0, 0, 16)
	e.Speed = 0
	e.SpeedVariance = 0
	e.Life = 10
	e.LifeVariance = 0
	e.EmissionRate = 1000
	e.Duration = 0.1
	e.Drag = 1
	e.SeekX = 50
	e.SeekY = 0
	e.SeekStrength = 500

	e.Update(0.05)
	if !e.anyActive() {
		t.Fatal("nothing emitted")
	}
	for i := 0; i < 400 && e.anyActive(); i++ {
		e.Update(1.0 / 60)
	}
	if e.anyActive() {
		t.Fatal("seeking particles never reached the target")
	}
}

func TestPoolCapsEmission(t *testing.T) {
	e := NewParticleEmitter(0, 0, 4)
	e.EmissionRate = 10000
	e.Life = 100
	e.LifeVariance = 0
	e.Update(0.1)
	if got := activeCount(e); got != 4 {
		t.Fatalf("active = %d, want pool cap 4", got)
	}
}

func activeCount(e *ParticleEmitter) int {
	n := 0
	for _, p := range e.Particles {
		if p.Active {
			n++
		}
	}
	return n
}
