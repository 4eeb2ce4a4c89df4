package game

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// VizQuality scales spawn rates and pool caps.
type VizQuality int

const (
	QualityLow VizQuality = iota
	QualityMedium
	QualityHigh
)

// VizMode is the rendering strategy picked from the currency
// magnitude.
type VizMode int

const (
	ModeIndividual VizMode = iota // < 1e3: single bits spiraling out
	ModeClusters                  // < 1e6: rotating bit formations
	ModeFormations                // < 1e8: hexagonal byte blocks
	ModeStreams                   // beyond: raw data streams
)

var clusterShapes = []string{"square", "cross", "hexagon", "star"}

type spiralDot struct {
	angle  float64
	radius float64
	speed  float64
	size   float64
	one    bool
}

type bitCluster struct {
	x, y     float64
	rotation float64
	rotSpeed float64
	shape    string
	size     float64
	drift    float64
}

type streamDot struct {
	x, y   float64
	vx, vy float64
	size   float64
}

// SmartBitVisualization renders the accumulator's holdings around a
// central pulsing core, switching strategy as the number grows.
type SmartBitVisualization struct {
	CenterX, CenterY float64
	Amount           float64
	Quality          VizQuality
	Theme            *CircuitTheme

	pulse    float64
	dots     []*spiralDot
	clusters []*bitCluster
	streams  []*streamDot
}

// NewSmartBitVisualization creates the visualization centered on the
// accumulator.
func NewSmartBitVisualization(theme *CircuitTheme) *SmartBitVisualization {
	return &SmartBitVisualization{Theme: theme, Quality: QualityHigh}
}

// Mode picks the strategy for the current amount.
func (v *SmartBitVisualization) Mode() VizMode {
	switch {
	case v.Amount < 1e3:
		return ModeIndividual
	case v.Amount < 1e6:
		return ModeClusters
	case v.Amount < 1e8:
		return ModeFormations
	default:
		return ModeStreams
	}
}

func (v *SmartBitVisualization) cap(base int) int {
	switch v.Quality {
	case QualityLow:
		return base / 4
	case QualityMedium:
		return base / 2
	default:
		return base
	}
}

// Update advances the pulse and the per-mode element pools.
func (v *SmartBitVisualization) Update(dt float64) {
	v.pulse += dt

	switch v.Mode() {
	case ModeIndividual:
		want := int(v.Amount / 20)
		if max := v.cap(48); want > max {
			want = max
		}
		for len(v.dots) < want {
			v.dots = append(v.dots, &spiralDot{
				angle:  rand.Float64() * 2 * math.Pi,
				radius: 20,
				speed:  0.5 + rand.Float64(),
				size:   2 + rand.Float64()*2,
				one:    rand.Intn(2) == 1,
			})
		}
		if len(v.dots) > want {
			v.dots = v.dots[:want]
		}
		for _, d := range v.dots {
			d.angle += d.speed * dt
			d.radius += 8 * dt
			if d.radius > 120 {
				d.radius = 20
			}
		}
		v.clusters = v.clusters[:0]
		v.streams = v.streams[:0]

	case ModeClusters, ModeFormations:
		want := v.cap(10)
		for len(v.clusters) < want {
			v.clusters = append(v.clusters, &bitCluster{
				x:        v.CenterX + (rand.Float64()-0.5)*220,
				y:        v.CenterY + (rand.Float64()-0.5)*220,
				rotSpeed: (rand.Float64() - 0.5) * 2,
				shape:    clusterShapes[rand.Intn(len(clusterShapes))],
				size:     10 + rand.Float64()*14,
				drift:    rand.Float64() * 2 * math.Pi,
			})
		}
		if len(v.clusters) > want {
			v.clusters = v.clusters[:want]
		}
		for _, c := range v.clusters {
			c.rotation += c.rotSpeed * dt
			c.drift += dt * 0.4
			c.x += math.Cos(c.drift) * 6 * dt
			c.y += math.Sin(c.drift) * 6 * dt
		}
		v.dots = v.dots[:0]
		v.streams = v.streams[:0]

	case ModeStreams:
		want := v.cap(80)
		for len(v.streams) < want {
			angle := rand.Float64() * 2 * math.Pi
			dist := 160 + rand.Float64()*120
			s := &streamDot{
				x:    v.CenterX + math.Cos(angle)*dist,
				y:    v.CenterY + math.Sin(angle)*dist,
				size: 1.5 + rand.Float64()*2,
			}
			v.streams = append(v.streams, s)
		}
		if len(v.streams) > want {
			v.streams = v.streams[:want]
		}
		for _, s := range v.streams {
			dx := v.CenterX - s.x
			dy := v.CenterY - s.y
			dist := math.Hypot(dx, dy)
			if dist < 24 {
				angle := rand.Float64() * 2 * math.Pi
				d := 160 + rand.Float64()*120
				s.x = v.CenterX + math.Cos(angle)*d
				s.y = v.CenterY + math.Sin(angle)*d
				continue
			}
			speed := 90.0
			s.x += dx / dist * speed * dt
			s.y += dy / dist * speed * dt
		}
		v.dots = v.dots[:0]
		v.clusters = v.clusters[:0]
	}
}

// Draw renders the core pulse and the active element pool.
func (v *SmartBitVisualization) Draw(screen *ebiten.Image) {
	// Central pulse.
	base := 34 + math.Sin(v.pulse*2.2)*4
	glow := v.Theme.Glow
	glow.A = 50
	vector.DrawFilledCircle(screen, float32(v.CenterX), float32(v.CenterY), float32(base+10), glow, true)
	vector.DrawFilledCircle(screen, float32(v.CenterX), float32(v.CenterY), float32(base), v.Theme.Surface, true)
	vector.StrokeCircle(screen, float32(v.CenterX), float32(v.CenterY), float32(base), 2, v.Theme.Primary, true)

	one := v.Theme.Primary
	zero := v.Theme.Secondary
	for _, d := range v.dots {
		x := v.CenterX + math.Cos(d.angle)*d.radius
		y := v.CenterY + math.Sin(d.angle)*d.radius
		col := zero
		if d.one {
			col = one
		}
		fade := 1 - (d.radius-20)/100
		col.A = uint8(200 * fade)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(d.size), col, true)
	}

	for _, c := range v.clusters {
		v.drawCluster(screen, c)
	}

	stream := v.Theme.Accent
	stream.A = 170
	for _, s := range v.streams {
		vector.DrawFilledCircle(screen, float32(s.x), float32(s.y), float32(s.size), stream, true)
	}
}

// drawCluster renders one rotating formation as point dots.
func (v *SmartBitVisualization) drawCluster(screen *ebiten.Image, c *bitCluster) {
	col := v.Theme.Primary
	col.A = 180
	points := clusterPoints(c.shape)
	for _, p := range points {
		px := p[0]*c.size*math.Cos(c.rotation) - p[1]*c.size*math.Sin(c.rotation)
		py := p[0]*c.size*math.Sin(c.rotation) + p[1]*c.size*math.Cos(c.rotation)
		vector.DrawFilledCircle(screen, float32(c.x+px), float32(c.y+py), 2.2, col, true)
	}
}

// clusterPoints returns unit-space dot offsets for a formation shape.
func clusterPoints(shape string) [][2]float64 {
	switch shape {
	case "cross":
		return [][2]float64{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	case "hexagon":
		pts := make([][2]float64, 0, 6)
		for i := 0; i < 6; i++ {
			a := float64(i) / 6 * 2 * math.Pi
			pts = append(pts, [2]float64{math.Cos(a), math.Sin(a)})
		}
		return pts
	case "star":
		pts := make([][2]float64, 0, 10)
		for i := 0; i < 10; i++ {
			a := float64(i) / 10 * 2 * math.Pi
			r := 1.0
			if i%2 == 1 {
				r = 0.45
			}
			pts = append(pts, [2]float64{r * math.Cos(a), r * math.Sin(a)})
		}
		return pts
	default: // square
		return [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	}
}
