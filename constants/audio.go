package constants

import "time"

// SampleRate is the speaker sample rate in Hz
const SampleRate = 44100

// SpeakerBuffer is the speaker buffer length
const SpeakerBuffer = 50 * time.Millisecond

// Click Sound Timing
const (
	ClickSoundDuration = 40 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 30 * time.Millisecond
)

// Error Sound Timing
const (
	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond
)

// Coin Sound Timing (purchase)
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Bell Sound Timing (click tier reached)
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// DefaultVolume is the linear master volume when none is configured
const DefaultVolume = 0.5
