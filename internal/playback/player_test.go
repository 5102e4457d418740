package playback_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

// fiveSteps is four checks followed by found.
func fiveSteps() *step.Sequence {
	return algo.LinearSearch([]int{1, 2, 3, 4}, 4)
}

var _ = Describe("Player", func() {
	var p *playback.Player

	BeforeEach(func() {
		p = playback.New()
	})

	Context("when empty", func() {
		It("ignores every transport operation", func() {
			p.Play()
			p.StepForward()
			p.StepBackward()
			p.GoToStep(3)
			p.Reset()
			p.Toggle()

			Expect(p.State()).To(Equal(playback.Empty))
			Expect(p.IsPlaying()).To(BeFalse())
			Expect(p.Cursor()).To(BeZero())
			Expect(p.Progress()).To(BeZero())
			Expect(p.IsAtStart()).To(BeFalse())
			Expect(p.IsAtEnd()).To(BeFalse())

			_, ok := p.Current()
			Expect(ok).To(BeFalse())
		})

		It("stays empty when loading an empty sequence", func() {
			p.Load(step.NewSequence("none", nil))
			Expect(p.State()).To(Equal(playback.Empty))
			Expect(p.Sequence()).To(BeNil())
		})
	})

	Context("with a five step sequence", func() {
		BeforeEach(func() {
			p.Load(fiveSteps())
		})

		It("starts paused at the first step", func() {
			Expect(p.State()).To(Equal(playback.Paused))
			Expect(p.Len()).To(Equal(5))
			Expect(p.IsAtStart()).To(BeTrue())
			Expect(p.Progress()).To(BeNumerically("~", 0.2, 1e-9))
		})

		It("clamps stepping forward at the terminal step", func() {
			for i := 0; i < 4; i++ {
				p.StepForward()
			}
			Expect(p.IsAtEnd()).To(BeTrue())

			p.StepForward()
			Expect(p.Cursor()).To(Equal(4))
			Expect(p.Progress()).To(BeNumerically("~", 1.0, 1e-9))

			cur, ok := p.Current()
			Expect(ok).To(BeTrue())
			Expect(cur.Head().Kind).To(Equal(step.Found))
		})

		It("clamps stepping backward at the first step", func() {
			p.StepBackward()
			Expect(p.Cursor()).To(BeZero())
		})

		It("pauses on manual stepping", func() {
			p.Play()
			p.StepForward()
			Expect(p.IsPlaying()).To(BeFalse())
			Expect(p.Cursor()).To(Equal(1))
		})

		It("clamps GoToStep and pauses", func() {
			p.Play()
			p.GoToStep(99)
			Expect(p.Cursor()).To(Equal(4))
			Expect(p.IsPlaying()).To(BeFalse())

			p.GoToStep(-7)
			Expect(p.Cursor()).To(BeZero())
		})

		It("restarts from the first step when toggled at the end", func() {
			p.GoToStep(4)
			p.Toggle()
			Expect(p.Cursor()).To(BeZero())
			Expect(p.IsPlaying()).To(BeTrue())

			p.Toggle()
			Expect(p.State()).To(Equal(playback.Paused))
		})

		It("rewinds and pauses on Reset", func() {
			p.GoToStep(3)
			p.Play()
			p.Reset()
			Expect(p.Cursor()).To(BeZero())
			Expect(p.IsPlaying()).To(BeFalse())
		})

		It("rewinds and pauses when a new sequence is loaded", func() {
			p.GoToStep(2)
			p.Play()
			p.Load(algo.BubbleSort([]int{2, 1}))
			Expect(p.Cursor()).To(BeZero())
			Expect(p.State()).To(Equal(playback.Paused))
			Expect(p.Sequence().Algorithm()).To(Equal("bubble_sort"))
		})
	})

	Describe("ticks", func() {
		BeforeEach(func() {
			p.Load(fiveSteps())
		})

		It("advances once per tick and pauses on the terminal step", func() {
			p.Play()
			epoch := p.Epoch()
			for i := 1; i <= 4; i++ {
				Expect(p.Tick(epoch)).To(BeTrue())
				Expect(p.Cursor()).To(Equal(i))
			}
			Expect(p.IsPlaying()).To(BeTrue())

			Expect(p.Tick(epoch)).To(BeTrue())
			Expect(p.IsPlaying()).To(BeFalse())
			Expect(p.Cursor()).To(Equal(4))

			Expect(p.Tick(p.Epoch())).To(BeFalse())
		})

		It("restarts when toggled on the terminal step while still playing", func() {
			p.Play()
			epoch := p.Epoch()
			for range 4 {
				Expect(p.Tick(epoch)).To(BeTrue())
			}
			Expect(p.IsAtEnd()).To(BeTrue())
			Expect(p.IsPlaying()).To(BeTrue())

			p.Toggle()
			Expect(p.Cursor()).To(BeZero())
			Expect(p.IsPlaying()).To(BeTrue())
			Expect(p.Epoch()).NotTo(Equal(epoch))
			Expect(p.Tick(epoch)).To(BeFalse())
		})

		It("restarts when played on the terminal step while still playing", func() {
			p.Play()
			epoch := p.Epoch()
			for range 4 {
				p.Tick(epoch)
			}

			p.Play()
			Expect(p.Cursor()).To(BeZero())
			Expect(p.IsPlaying()).To(BeTrue())
			Expect(p.Epoch()).NotTo(Equal(epoch))
		})

		It("keeps Play a no-op while playing mid-sequence", func() {
			p.Play()
			epoch := p.Epoch()
			Expect(p.Tick(epoch)).To(BeTrue())

			p.Play()
			Expect(p.Epoch()).To(Equal(epoch))
			Expect(p.Cursor()).To(Equal(1))
		})

		It("ignores ticks while paused", func() {
			Expect(p.Tick(p.Epoch())).To(BeFalse())
			Expect(p.Cursor()).To(BeZero())
		})

		It("discards a tick scheduled before a seek", func() {
			p.Play()
			stale := p.Epoch()
			p.GoToStep(2)
			p.Play()

			Expect(p.Tick(stale)).To(BeFalse())
			Expect(p.Cursor()).To(Equal(2))

			Expect(p.Tick(p.Epoch())).To(BeTrue())
			Expect(p.Cursor()).To(Equal(3))
		})

		It("discards a tick scheduled before Load", func() {
			p.Play()
			stale := p.Epoch()
			p.Load(fiveSteps())
			p.Play()
			Expect(p.Tick(stale)).To(BeFalse())
			Expect(p.Cursor()).To(BeZero())
		})
	})

	Describe("speed", func() {
		It("clamps to the supported range", func() {
			p.SetSpeed(0)
			Expect(p.Speed()).To(Equal(playback.MinSpeed))
			p.SetSpeed(5 * time.Second)
			Expect(p.Speed()).To(Equal(playback.MaxSpeed))
			p.SetSpeed(300 * time.Millisecond)
			Expect(p.Speed()).To(Equal(300 * time.Millisecond))
		})

		It("does not cancel a scheduled tick", func() {
			p.Load(fiveSteps())
			p.Play()
			epoch := p.Epoch()
			p.SetSpeed(playback.MaxSpeed)
			Expect(p.Epoch()).To(Equal(epoch))
			Expect(p.Tick(epoch)).To(BeTrue())
		})

		It("honours WithSpeed", func() {
			Expect(playback.New(playback.WithSpeed(time.Millisecond)).Speed()).To(Equal(playback.MinSpeed))
		})
	})

	It("reports a frame for renderers", func() {
		p.Load(fiveSteps())
		p.StepForward()
		f := p.Frame()
		Expect(f.Algorithm).To(Equal("linear_search"))
		Expect(f.Cursor).To(Equal(1))
		Expect(f.Len).To(Equal(5))
		Expect(f.State).To(Equal(playback.Paused))
		Expect(f.Step).NotTo(BeNil())
		Expect(f.State.String()).To(Equal("paused"))
	})
})
