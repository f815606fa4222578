package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	cfg "github.com/perfidia-game/perfidia/config"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // decoded PCM per path
	context  *audio.Context
}

func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

func (l *AudioLoader) decode(p string) (decodedStream, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read audio %s: %w", p, err)
	}

	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode ogg %s: %w", p, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode wav %s: %w", p, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(p string) error {
	if _, ok := l.sfxCache[p]; ok {
		return nil
	}
	stream, err := l.decode(p)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read decoded audio %s: %w", p, err)
	}
	l.sfxCache[p] = decoded
	return nil
}

// LoadSFX returns a new player for a cached sound effect.
func (l *AudioLoader) LoadSFX(p string) (*audio.Player, error) {
	if err := l.PreloadSFX(p); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[p]))
}

// LoadMusic returns a looping streaming player.
func (l *AudioLoader) LoadMusic(p string) (*audio.Player, error) {
	stream, err := l.decode(p)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
}

// SoundBoard plays sound cues and one music track at a time. Missing files
// are logged once and then ignored.
type SoundBoard struct {
	loader   *AudioLoader
	music    *audio.Player
	musicKey string
	failed   map[string]bool
}

func NewSoundBoard(fsys fs.FS) *SoundBoard {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.Audio.SampleRate)
	}
	return &SoundBoard{
		loader: NewAudioLoader(ctx, fsys),
		failed: make(map[string]bool),
	}
}

// Preload decodes every configured sound effect up front.
func (b *SoundBoard) Preload() {
	for _, p := range cfg.Sound.SFXPaths {
		if err := b.loader.PreloadSFX(p); err != nil {
			b.fail(p, err)
		}
	}
}

// Play starts a sound effect. It never blocks.
func (b *SoundBoard) Play(id cfg.SoundID) {
	p, ok := cfg.Sound.SFXPaths[id]
	if !ok || b.failed[p] {
		return
	}
	player, err := b.loader.LoadSFX(p)
	if err != nil {
		b.fail(p, err)
		return
	}
	player.SetVolume(cfg.Audio.SFXVol)
	player.Play()
}

// PlayMusic switches to the track at p. Asking for the current track keeps
// it playing.
func (b *SoundBoard) PlayMusic(p string) {
	if p == "" || (p == b.musicKey && b.music != nil) {
		return
	}
	b.StopMusic()
	if b.failed[p] {
		return
	}
	player, err := b.loader.LoadMusic(p)
	if err != nil {
		b.fail(p, err)
		return
	}
	player.SetVolume(cfg.Audio.MusicVol)
	player.Play()
	b.music, b.musicKey = player, p
}

func (b *SoundBoard) StopMusic() {
	if b.music != nil {
		_ = b.music.Close()
	}
	b.music, b.musicKey = nil, ""
}

func (b *SoundBoard) fail(p string, err error) {
	b.failed[p] = true
	logger.Warn("asset missing", "path", p, "err", err)
}
