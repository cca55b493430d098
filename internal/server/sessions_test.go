package server_test

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/julianshen/buildgen/internal/server"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var _ = Describe("SessionStore", func() {
	var (
		clock *fakeClock
		store *server.SessionStore
	)

	BeforeEach(func() {
		clock = &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
		store = server.NewSessionStore(30*time.Minute, clock.Now)
	})

	It("creates sessions with distinct ids", func() {
		a := store.Create()
		b := store.Create()
		Expect(a.ID).NotTo(Equal(b.ID))
		Expect(store.Len()).To(Equal(2))
	})

	It("prunes idle sessions only", func() {
		idle := store.Create()
		clock.Advance(20 * time.Minute)
		active := store.Create()

		clock.Advance(15 * time.Minute)
		Expect(store.Prune()).To(Equal(1))

		_, ok := store.Get(idle.ID)
		Expect(ok).To(BeFalse())
		_, ok = store.Get(active.ID)
		Expect(ok).To(BeTrue())
	})

	It("refreshes a session when it is read", func() {
		sess := store.Create()
		clock.Advance(25 * time.Minute)
		_, ok := store.Get(sess.ID)
		Expect(ok).To(BeTrue())

		clock.Advance(25 * time.Minute)
		Expect(store.Prune()).To(Equal(0))
	})

	It("never prunes with a zero ttl", func() {
		s := server.NewSessionStore(0, clock.Now)
		s.Create()
		clock.Advance(24 * time.Hour)
		Expect(s.Prune()).To(Equal(0))
		Expect(s.Len()).To(Equal(1))
	})

	It("is safe for concurrent use", func() {
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sess := store.Create()
				store.Get(sess.ID)
				store.Prune()
			}()
		}
		wg.Wait()
		Expect(store.Len()).To(Equal(50))
	})
})

var _ = Describe("Serve", func() {
	It("serves until the context is cancelled", func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())

		srv := server.New(server.Options{SessionTTL: time.Minute})
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Serve(ctx, ln) }()

		Eventually(func() error {
			resp, err := http.Get("http://" + ln.Addr().String() + "/health")
			if err != nil {
				return err
			}
			return resp.Body.Close()
		}).Should(Succeed())

		cancel()
		Eventually(done, 10*time.Second).Should(Receive(BeNil()))
	})
})
