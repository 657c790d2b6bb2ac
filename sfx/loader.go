package sfx

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Loader decodes sound effects from a filesystem and caches the PCM bytes.
type Loader struct {
	fsys    fs.FS
	cache   map[string][]byte
	context *audio.Context
}

// NewLoader creates a loader reading from fsys with the given context.
func NewLoader(ctx *audio.Context, fsys fs.FS) *Loader {
	return &Loader{
		fsys:    fsys,
		cache:   make(map[string][]byte),
		context: ctx,
	}
}

// Preload decodes a sound effect and caches it without creating a player.
func (l *Loader) Preload(path string) error {
	if _, ok := l.cache[path]; ok {
		return nil
	}
	decoded, err := l.decode(path)
	if err != nil {
		return err
	}
	l.cache[path] = decoded
	return nil
}

// Load returns a new player for a sound effect. It is a Source.
func (l *Loader) Load(path string) (Player, error) {
	if err := l.Preload(path); err != nil {
		return nil, err
	}
	player, err := l.context.NewPlayer(bytes.NewReader(l.cache[path]))
	if err != nil {
		return nil, fmt.Errorf("failed to create player %s: %w", path, err)
	}
	return player, nil
}

func (l *Loader) decode(path string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
