package animation

import "fmt"

// Event is a named marker fired when a clip crosses a normalized time.
type Event struct {
	Name string
	At   float64
}

// Clip describes a single animation clip bound to a layer.
type Clip struct {
	Name   string
	Layer  int
	Length float64 // seconds
	Loop   bool
	Static bool // holds its pose; reports zero speed
	Tags   []string
	Events []Event
	Next   string // clip to play once a one-shot clip ends
}

type playback struct {
	clip *Clip
	time float64
}

func (p *playback) normalized() float64 {
	if p.clip.Length <= 0 {
		return 1
	}
	return p.time / p.clip.Length
}

// Timeline is a minimal Animator: one clip per layer, bool parameters
// that can trigger clips, and events collected for the caller to drain.
type Timeline struct {
	clips    map[string]*Clip
	layers   []playback
	weights  []float64
	bools    map[string]bool
	triggers map[string]string
	events   []string
}

// NewTimeline creates a timeline with the given number of layers. Each
// entry of defaults names the clip a layer starts in.
func NewTimeline(layers int, clips []Clip, defaults ...string) (*Timeline, error) {
	t := &Timeline{
		clips:    make(map[string]*Clip, len(clips)),
		layers:   make([]playback, layers),
		weights:  make([]float64, layers),
		bools:    make(map[string]bool),
		triggers: make(map[string]string),
	}
	for i := range clips {
		c := clips[i]
		if c.Layer < 0 || c.Layer >= layers {
			return nil, fmt.Errorf("clip %q: layer %d out of range", c.Name, c.Layer)
		}
		t.clips[c.Name] = &c
	}
	for _, name := range defaults {
		if _, ok := t.clips[name]; !ok {
			return nil, fmt.Errorf("default clip %q not defined", name)
		}
		t.Play(name)
	}
	if layers > 0 {
		t.weights[0] = 1
	}
	return t, nil
}

// BindTrigger plays clip whenever the bool parameter flips to true.
func (t *Timeline) BindTrigger(param, clip string) {
	t.triggers[param] = clip
}

// Advance steps every layer by dt seconds, following Next chains and
// collecting crossed events.
func (t *Timeline) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range t.layers {
		p := &t.layers[i]
		if p.clip == nil || p.clip.Static {
			continue
		}
		before := p.normalized()
		p.time += dt
		after := p.normalized()

		for _, ev := range p.clip.Events {
			if ev.At > before && ev.At <= after {
				t.events = append(t.events, ev.Name)
			} else if p.clip.Loop && after >= 1 && ev.At <= after-1 {
				t.events = append(t.events, ev.Name)
			}
		}

		if after < 1 {
			continue
		}
		switch {
		case p.clip.Loop && p.clip.Length > 0:
			for p.time >= p.clip.Length {
				p.time -= p.clip.Length
			}
		case p.clip.Next != "":
			t.Play(p.clip.Next)
		}
	}
}

// DrainEvents returns and clears the events fired since the last drain.
func (t *Timeline) DrainEvents() []string {
	out := t.events
	t.events = nil
	return out
}

// Layer returns the state of the clip playing on a layer.
func (t *Timeline) Layer(index int) (LayerState, bool) {
	if index < 0 || index >= len(t.layers) || t.layers[index].clip == nil {
		return LayerState{}, false
	}
	p := t.layers[index]
	speed := 1.0
	if p.clip.Static {
		speed = 0
	}
	return LayerState{
		Name:           p.clip.Name,
		Tags:           p.clip.Tags,
		NormalizedTime: p.normalized(),
		Speed:          speed,
	}, true
}

func (t *Timeline) Bool(name string) bool {
	return t.bools[name]
}

func (t *Timeline) SetBool(name string, value bool) {
	was := t.bools[name]
	t.bools[name] = value
	if value && !was {
		if clip, ok := t.triggers[name]; ok {
			t.Play(clip)
		}
	}
}

// Play restarts a clip from the beginning on its layer. Unknown clips are ignored.
func (t *Timeline) Play(name string) {
	c, ok := t.clips[name]
	if !ok {
		return
	}
	t.layers[c.Layer] = playback{clip: c}
}

func (t *Timeline) SetLayerWeight(index int, weight float64) {
	if index < 0 || index >= len(t.weights) {
		return
	}
	t.weights[index] = weight
}

// LayerWeight returns the last weight written for a layer.
func (t *Timeline) LayerWeight(index int) float64 {
	if index < 0 || index >= len(t.weights) {
		return 0
	}
	return t.weights[index]
}
