package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

func TestGeneratorsStayInRange(t *testing.T) {
	generators := map[string]beep.Streamer{
		"pad":     newPadDrone(sampleRate),
		"bass":    newBassPulse(sampleRate),
		"arp":     newArpeggio(sampleRate),
		"shimmer": newChimeShimmer(sampleRate),
	}

	for name, g := range generators {
		t.Run(name, func(t *testing.T) {
			buf := make([][2]float64, 4096)
			quiet := true
			for block := 0; block < 20; block++ {
				n, ok := g.Stream(buf)
				if n != len(buf) || !ok {
					t.Fatalf("Stream = (%d, %v), want full buffer from an endless generator", n, ok)
				}
				for i, s := range buf {
					if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
						t.Fatalf("block %d sample %d out of range: %v", block, i, s)
					}
					if s[0] != s[1] {
						t.Fatalf("generator output not mono-paired: %v", s)
					}
					if s[0] != 0 {
						quiet = false
					}
				}
			}
			if quiet {
				t.Fatalf("generator produced pure silence")
			}
			if err := g.Err(); err != nil {
				t.Fatalf("Err = %v", err)
			}
		})
	}
}
