// Package sfx keeps track of the sound effects a weapon is playing. It is a
// keyed pool: one-shots get a unique key each time, named sounds are
// restarted in place, and finished players are closed on Sweep.
package sfx

import (
	"fmt"
	"strconv"
)

// Player is a single playing sound. *audio.Player from ebiten satisfies it.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// Source creates a fresh player for an asset path.
type Source func(path string) (Player, error)

type playing struct {
	player Player
	volume float64
}

// Pool owns every player it starts until the player finishes or is stopped.
type Pool struct {
	source  Source
	playing map[string]*playing
	master  float64
	paused  bool
	counter int
	wrapAt  int
}

// NewPool creates a pool that loads players from source. One-shot keys
// cycle back to zero after wrapAt plays.
func NewPool(source Source, master float64, wrapAt int) *Pool {
	return &Pool{
		source:  source,
		playing: make(map[string]*playing),
		master:  master,
		wrapAt:  wrapAt,
	}
}

// PlayOneShot starts an overlapping, fire-and-forget copy of a sound.
func (p *Pool) PlayOneShot(name, path string, volume float64) error {
	key := name + strconv.Itoa(p.counter)
	p.counter++
	if p.counter > p.wrapAt {
		p.counter = 0
	}
	if _, ok := p.playing[key]; ok {
		return nil
	}
	return p.start(key, path, volume)
}

// PlayRestart plays a named sound, stopping the previous instance first.
func (p *Pool) PlayRestart(name, path string, volume float64) error {
	p.Stop(name)
	return p.start(name, path, volume)
}

func (p *Pool) start(key, path string, volume float64) error {
	player, err := p.source(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	player.SetVolume(p.master * volume)
	if !p.paused {
		player.Play()
	}
	p.playing[key] = &playing{player: player, volume: volume}
	return nil
}

// Stop closes a named sound if it is playing.
func (p *Pool) Stop(name string) {
	pl, ok := p.playing[name]
	if !ok {
		return
	}
	delete(p.playing, name)
	_ = pl.player.Close()
}

// IsPlaying reports whether the pool still holds the named sound.
func (p *Pool) IsPlaying(name string) bool {
	_, ok := p.playing[name]
	return ok
}

// SetVolume changes the per-sound volume of a playing named sound.
func (p *Pool) SetVolume(name string, volume float64) {
	pl, ok := p.playing[name]
	if !ok {
		return
	}
	pl.volume = volume
	pl.player.SetVolume(p.master * volume)
}

// SetMaster changes the master volume of every sound in the pool.
func (p *Pool) SetMaster(master float64) {
	p.master = master
	for _, pl := range p.playing {
		pl.player.SetVolume(master * pl.volume)
	}
}

// Pause holds every sound in place. Sounds started while paused wait
// for Resume.
func (p *Pool) Pause() {
	if p.paused {
		return
	}
	p.paused = true
	for _, pl := range p.playing {
		pl.player.Pause()
	}
}

// Resume continues every held sound.
func (p *Pool) Resume() {
	if !p.paused {
		return
	}
	p.paused = false
	for _, pl := range p.playing {
		pl.player.Play()
	}
}

// Paused reports whether the pool is holding its sounds.
func (p *Pool) Paused() bool {
	return p.paused
}

// Sweep closes and forgets every player that has finished. A paused pool
// keeps its players.
func (p *Pool) Sweep() {
	if p.paused {
		return
	}
	for key, pl := range p.playing {
		if pl.player.IsPlaying() {
			continue
		}
		delete(p.playing, key)
		_ = pl.player.Close()
	}
}

// StopAll closes every player.
func (p *Pool) StopAll() {
	for key, pl := range p.playing {
		delete(p.playing, key)
		_ = pl.player.Close()
	}
}

// Len returns the number of sounds held by the pool.
func (p *Pool) Len() int {
	return len(p.playing)
}
