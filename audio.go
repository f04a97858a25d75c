package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/go-mp3"
	"github.com/hajimehoshi/oto/v2"
)

// SoundEffect is an enum for the different sound cues.
type SoundEffect int

const (
	SoundCardPlace SoundEffect = iota
	SoundCardDraw
	SoundShuffle
	SoundGameStart
	SoundPlayerWins
	SoundOpponentWins
	SoundBackground
)

// placeVariants is the number of alternate card-place recordings; one is
// picked at random per play so the table does not sound mechanical.
const placeVariants = 3

// soundBank is an explicitly constructed audio service. The UI owns one
// instance and plays cues in response to game events; nothing in the turn
// engine touches it.
type soundBank struct {
	ctx    *oto.Context
	volume float64

	mu            sync.Mutex
	ready         bool
	data          map[SoundEffect][][]byte
	lastPlayed    map[SoundEffect]time.Time
	activePlayers map[oto.Player]bool
	background    oto.Player
	rng           *rand.Rand
}

// soundRateLimit is the minimum delay between two plays of the same cue.
const soundRateLimit = 10 * time.Millisecond

// newSoundBank initializes the audio context and loads the embedded sounds
// in the background. The bank silently ignores Play calls until it is ready,
// and stays disabled if the audio device cannot be opened.
func newSoundBank(volume float64) *soundBank {
	bank := &soundBank{
		volume:        volume,
		data:          make(map[SoundEffect][][]byte),
		lastPlayed:    make(map[SoundEffect]time.Time),
		activePlayers: make(map[oto.Player]bool),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	// 44100 Hz, stereo, 16-bit is a standard setting.
	ctx, readyChan, err := oto.NewContext(44100, 2, 2)
	if err != nil {
		log.Printf("failed to initialize audio context: %v, audio disabled", err)
		return bank
	}
	bank.ctx = ctx
	// The context needs a moment to initialize; wait for the ready signal
	// off the UI thread, then load sounds and start the background track.
	go func() {
		<-readyChan
		bank.loadAll()
		bank.mu.Lock()
		bank.ready = true
		bank.mu.Unlock()
		go bank.reapFinishedPlayers()
		bank.PlayBackground()
	}()
	return bank
}

func (b *soundBank) loadAll() {
	for i := 1; i <= placeVariants; i++ {
		b.load(SoundCardPlace, fmt.Sprintf("assets/sounds/place-%d.mp3", i))
	}
	b.load(SoundCardDraw, "assets/sounds/draw.mp3")
	b.load(SoundShuffle, "assets/sounds/shuffle.mp3")
	b.load(SoundGameStart, "assets/sounds/start.mp3")
	b.load(SoundPlayerWins, "assets/sounds/win.mp3")
	b.load(SoundOpponentWins, "assets/sounds/lose.mp3")
	b.load(SoundBackground, "assets/sounds/background.mp3")
}

// load decodes one embedded mp3 into raw PCM and appends it to the effect's
// variant list.
func (b *soundBank) load(effect SoundEffect, path string) {
	fileBytes, err := embeddedAssets.ReadFile(path)
	if err != nil {
		log.Printf("failed to load sound asset %s: %v", path, err)
		return
	}
	decoder, err := mp3.NewDecoder(bytes.NewReader(fileBytes))
	if err != nil {
		log.Printf("failed to decode mp3 %s: %v", path, err)
		return
	}
	decoded, err := io.ReadAll(decoder)
	if err != nil {
		log.Printf("failed to read decoded mp3 %s: %v", path, err)
		return
	}
	b.mu.Lock()
	b.data[effect] = append(b.data[effect], decoded)
	b.mu.Unlock()
}

// reapFinishedPlayers periodically closes finished one-shot players so they
// do not accumulate.
func (b *soundBank) reapFinishedPlayers() {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		b.mu.Lock()
		for player := range b.activePlayers {
			if !player.IsPlaying() {
				player.Close()
				delete(b.activePlayers, player)
			}
		}
		b.mu.Unlock()
	}
}

// Play starts one-shot playback of a cue, picking a random variant when the
// cue has several recordings. Rapid repeats of the same cue are dropped.
func (b *soundBank) Play(effect SoundEffect) {
	b.mu.Lock()
	if !b.ready || b.ctx == nil {
		b.mu.Unlock()
		return
	}
	if time.Since(b.lastPlayed[effect]) < soundRateLimit {
		b.mu.Unlock()
		return
	}
	b.lastPlayed[effect] = time.Now()
	variants := b.data[effect]
	if len(variants) == 0 {
		b.mu.Unlock()
		return
	}
	data := variants[b.rng.Intn(len(variants))]
	player := b.ctx.NewPlayer(bytes.NewReader(data))
	player.SetVolume(b.volume)
	// Keep a reference while the sound plays; the reaper closes it later.
	b.activePlayers[player] = true
	b.mu.Unlock()
	player.Play()
}

// PlayBackground starts the looping background track at reduced volume.
func (b *soundBank) PlayBackground() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctx == nil || (b.background != nil && b.background.IsPlaying()) {
		return
	}
	variants := b.data[SoundBackground]
	if len(variants) == 0 {
		return
	}
	stream := &loopingReader{reader: bytes.NewReader(variants[0])}
	b.background = b.ctx.NewPlayer(stream)
	b.background.SetVolume(b.volume * 0.2)
	b.background.Play()
}

// loopingReader wraps a ReadSeeker and seeks back to the start on EOF,
// producing an endless stream.
type loopingReader struct {
	reader io.ReadSeeker
}

func (lr *loopingReader) Read(p []byte) (n int, err error) {
	n, err = lr.reader.Read(p)
	if err == io.EOF {
		if _, seekErr := lr.reader.Seek(0, io.SeekStart); seekErr != nil {
			return 0, seekErr
		}
		err = nil
	}
	return n, err
}
