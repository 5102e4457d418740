package playback_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/playback"
)

type frameLog struct {
	mu     sync.Mutex
	frames []playback.Frame
}

func (l *frameLog) add(f playback.Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frames = append(l.frames, f)
}

func (l *frameLog) last() playback.Frame {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.frames) == 0 {
		return playback.Frame{}
	}
	return l.frames[len(l.frames)-1]
}

func (l *frameLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.frames)
}

var _ = Describe("Autoplay", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		log    *frameLog
		errc   chan error
	)

	start := func(a *playback.Autoplay) {
		errc = make(chan error, 1)
		go func() { errc <- a.Run(ctx) }()
	}

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		log = &frameLog{}
	})

	AfterEach(func() {
		cancel()
	})

	It("plays to the terminal step and pauses", func() {
		p := playback.New(playback.WithSpeed(playback.MinSpeed))
		p.Load(fiveSteps())
		a := playback.NewAutoplay(p, log.add, logging.NewNop())
		start(a)

		Expect(a.Send(ctx, playback.Command{Type: playback.CommandPlay})).To(Succeed())
		Eventually(func() bool {
			f := log.last()
			return f.AtEnd && f.State == playback.Paused
		}, 2*time.Second, 10*time.Millisecond).Should(BeTrue())
		Expect(log.last().Cursor).To(Equal(4))

		cancel()
		Eventually(errc).Should(Receive(MatchError(context.Canceled)))
	})

	It("keeps ticking after a render panic", func() {
		p := playback.New(playback.WithSpeed(playback.MinSpeed))
		p.Load(fiveSteps())
		var once sync.Once
		render := func(f playback.Frame) {
			once.Do(func() { panic("render broke") })
			log.add(f)
		}
		a := playback.NewAutoplay(p, render, logging.NewNop())
		start(a)

		Expect(a.Send(ctx, playback.Command{Type: playback.CommandPlay})).To(Succeed())
		Eventually(func() bool { return log.last().AtEnd }, 2*time.Second, 10*time.Millisecond).Should(BeTrue())
	})

	It("applies a seek without a stale tick overwriting it", func() {
		p := playback.New(playback.WithSpeed(playback.MaxSpeed))
		p.Load(fiveSteps())
		a := playback.NewAutoplay(p, log.add, logging.NewNop())
		start(a)

		Expect(a.Send(ctx, playback.Command{Type: playback.CommandPlay})).To(Succeed())
		Expect(a.Send(ctx, playback.Command{Type: playback.CommandSeek, Step: 3})).To(Succeed())
		Eventually(func() int { return log.last().Cursor }).Should(Equal(3))
		Consistently(func() int { return log.last().Cursor }, 200*time.Millisecond).Should(Equal(3))
		Expect(log.last().State).To(Equal(playback.Paused))
	})

	It("loads a replacement sequence", func() {
		p := playback.New()
		a := playback.NewAutoplay(p, log.add, nil)
		start(a)

		Eventually(log.count).Should(BeNumerically(">=", 1))
		Expect(log.last().State).To(Equal(playback.Empty))

		Expect(a.Send(ctx, playback.Command{Type: playback.CommandLoad, Sequence: fiveSteps()})).To(Succeed())
		Eventually(func() int { return log.last().Len }).Should(Equal(5))
	})

	It("rejects commands after the loop stops", func() {
		a := playback.NewAutoplay(playback.New(), nil, nil)
		start(a)
		cancel()
		Eventually(a.Done()).Should(BeClosed())

		Expect(a.Send(context.Background(), playback.Command{Type: playback.CommandPlay})).To(MatchError(playback.ErrStopped))
	})
})
