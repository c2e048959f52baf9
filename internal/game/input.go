package game

// Keystroke routes one printable character through the typing state
// machine. Ignored outside the playing state.
func (s *Session) Keystroke(r rune) {
	if s.State != StatePlaying {
		return
	}
	s.recordKeystrokeTime()
	s.TotalKeystrokes++

	if s.active != nil && !s.alive(s.active) {
		// Target removed by collision or escape within this frame:
		// clear and re-evaluate the keystroke against the rest.
		s.clearActive()
	}

	if s.active == nil {
		s.acquireTarget(r)
		s.recomputeAccuracy()
		return
	}

	expected, ok := s.active.NextRune()
	if ok && expected == r {
		s.active.Typed++
		s.CorrectKeystrokes++
		s.emitSound(CueType)
		s.emit(Event{Kind: EventLaser, X: s.active.X, Y: s.active.Y})
		if s.active.Complete() {
			s.completeWord(s.active)
		}
	} else {
		s.active.Mistakes++
		s.wrongKey()
	}
	s.recomputeAccuracy()
}

// acquireTarget scans live enemies in order for one whose word starts
// with the typed rune; the keystroke that locks a target also counts as
// its first correct character.
func (s *Session) acquireTarget(r rune) {
	for _, e := range s.Enemies {
		if e.Active {
			continue
		}
		first, ok := e.NextRune()
		if !ok || first != r || e.Typed != 0 {
			continue
		}
		e.Active = true
		e.Typed = 1
		s.active = e
		s.CorrectKeystrokes++
		s.emitSound(CueType)
		s.emit(Event{Kind: EventLaser, X: e.X, Y: e.Y})
		if e.Complete() {
			s.completeWord(e)
		}
		return
	}
	s.wrongKey()
}

// CycleTarget moves the active target to the previous (dir < 0) or next
// (dir > 0) live enemy, circularly. The old target loses its typed
// progress; the new one starts empty.
func (s *Session) CycleTarget(dir int) {
	if s.State != StatePlaying || len(s.Enemies) == 0 {
		return
	}
	idx := -1
	for i, e := range s.Enemies {
		if e == s.active {
			idx = i
			break
		}
	}
	if s.active != nil {
		s.active.Typed = 0
		s.active.Mistakes = 0
		s.clearActive()
	}
	next := 0
	if idx >= 0 {
		step := 1
		if dir < 0 {
			step = -1
		}
		next = (idx + step + len(s.Enemies)) % len(s.Enemies)
	} else if dir < 0 {
		next = len(s.Enemies) - 1
	}
	e := s.Enemies[next]
	e.Active = true
	e.Typed = 0
	e.Mistakes = 0
	s.active = e
}

func (s *Session) wrongKey() {
	s.emit(Event{Kind: EventWrongKey})
	s.emitSound(CueWrong)
}

func (s *Session) alive(target *Enemy) bool {
	for _, e := range s.Enemies {
		if e == target {
			return true
		}
	}
	return false
}

// recordKeystrokeTime maintains the rolling WPM window over
// inter-keystroke intervals, dropping outlier gaps.
func (s *Session) recordKeystrokeTime() {
	now := s.clockMs
	if s.hasLastKey {
		d := now - s.lastKeyMs
		if d >= wpmMinIntervalMs && d <= wpmMaxIntervalMs {
			s.intervals = append(s.intervals, d)
			if len(s.intervals) > wpmWindow {
				s.intervals = s.intervals[len(s.intervals)-wpmWindow:]
			}
		}
	}
	s.lastKeyMs = now
	s.hasLastKey = true

	if len(s.intervals) >= wpmMinSamples {
		sum := 0.0
		for _, d := range s.intervals {
			sum += d
		}
		mean := sum / float64(len(s.intervals))
		s.WPM = (60000.0 / mean) / charsPerWord
		if s.WPM > s.PeakWPM {
			s.PeakWPM = s.WPM
		}
	}
}

func (s *Session) recomputeAccuracy() {
	if s.TotalKeystrokes == 0 {
		s.Accuracy = 0
		return
	}
	s.Accuracy = float64(s.CorrectKeystrokes) / float64(s.TotalKeystrokes) * 100
}
