package audio

import (
	"time"

	"github.com/lixenwraith/noisy-bird/constant"
)

func samplesFor(d time.Duration, rate int) int {
	return int(d.Seconds() * float64(rate))
}

// Descending saw glide with a long tail
func generateDeathSound(rate int) floatBuffer {
	n := samplesFor(constant.DeathSoundDuration, rate)
	glide := sweep(440, 110, n, rate)
	grit := oscillator(waveSaw, 110, n, rate)
	buf := mix(glide, grit, 0.25)
	for i := range buf {
		buf[i] *= 0.8
	}
	applyEnvelope(buf, constant.DeathSoundAttack.Seconds(), constant.DeathSoundRelease.Seconds(), rate)
	return buf
}

// Two rising square notes, B5 then E6
func generatePointSound(rate int) floatBuffer {
	n1 := oscillator(waveSquare, 987.77, samplesFor(constant.PointNote1Duration, rate), rate)
	applyEnvelope(n1, constant.PointSoundAttack.Seconds(), constant.PointNote1Release.Seconds(), rate)

	n2 := oscillator(waveSquare, 1318.51, samplesFor(constant.PointNote2Duration, rate), rate)
	applyEnvelope(n2, constant.PointSoundAttack.Seconds(), constant.PointNote2Release.Seconds(), rate)

	return concat(n1, n2)
}

// Bell: A5 fundamental with an A6 overtone
func generatePowerUpSound(rate int) floatBuffer {
	n := samplesFor(constant.PowerUpSoundDuration, rate)

	fund := oscillator(waveSine, 880.0, n, rate)
	applyEnvelope(fund, constant.PowerUpSoundAttack.Seconds(), constant.PowerUpSoundFundamentalRelease.Seconds(), rate)

	over := oscillator(waveSine, 1760.0, n, rate)
	applyEnvelope(over, constant.PowerUpSoundAttack.Seconds(), constant.PowerUpSoundOvertoneRelease.Seconds(), rate)

	buf := mix(fund, over, 0.3/0.7)
	for i := range buf {
		buf[i] *= 0.7
	}
	return buf
}

// generateSound dispatches to the cue generator
func generateSound(st SoundType, rate int) floatBuffer {
	switch st {
	case SoundDeath:
		return generateDeathSound(rate)
	case SoundPoint:
		return generatePointSound(rate)
	case SoundPowerUp:
		return generatePowerUpSound(rate)
	default:
		return nil
	}
}
