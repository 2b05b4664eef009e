package stream

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/gopxl/beep/v2"
)

const frameBytes = 4

// S16LEStreamer reads interleaved stereo little-endian 16-bit frames from a
// reader. A trailing partial frame is dropped.
type S16LEStreamer struct {
	r     *bufio.Reader
	frame [frameBytes]byte
	done  bool
	err   error
}

func NewS16LEStreamer(r io.Reader) *S16LEStreamer {
	return &S16LEStreamer{r: bufio.NewReader(r)}
}

func (s *S16LEStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.done {
		return 0, false
	}
	for n < len(samples) {
		if _, err := io.ReadFull(s.r, s.frame[:]); err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				s.err = err
			}
			s.done = true
			return n, n > 0
		}
		samples[n][0] = sampleFromS16(s.frame[0:2])
		samples[n][1] = sampleFromS16(s.frame[2:4])
		n++
	}
	return n, true
}

func (s *S16LEStreamer) Err() error {
	return s.err
}

func sampleFromS16(b []byte) float64 {
	return float64(int16(binary.LittleEndian.Uint16(b))) / -math.MinInt16
}

// ReadStereoBuffer drains r into a seekable beep buffer at rate without
// keeping the raw bytes around.
func ReadStereoBuffer(r io.Reader, rate beep.SampleRate) (*beep.Buffer, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})

	pcm := NewS16LEStreamer(r)
	buf.Append(pcm)
	if err := pcm.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}
