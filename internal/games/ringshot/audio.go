package ringshot

// Audio receives fire-and-forget sound cues. Implementations must not block
// the tick and may fail silently.
type Audio interface {
	Shoot()
	Hit()
	Perfect()
	Fail()
	Win()
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) Shoot()   {}
func (NopAudio) Hit()     {}
func (NopAudio) Perfect() {}
func (NopAudio) Fail()    {}
func (NopAudio) Win()     {}
