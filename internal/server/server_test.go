package server_test

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustification/spog-ui-e2e/internal/server"
)

var _ = Describe("Server", func() {
	var (
		srv  *server.Server
		done chan error
	)

	BeforeEach(func() {
		var err error
		srv, err = server.NewServer("127.0.0.1:0", func(router *gin.RouterGroup) {
			router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
			router.GET("/panic", func(c *gin.Context) { panic("boom") })
		})
		Expect(err).NotTo(HaveOccurred())

		done = make(chan error, 1)
		go func() { done <- srv.Start(context.Background()) }()
	})

	AfterEach(func() {
		_ = srv.Stop(context.Background())
	})

	It("should serve routes under /api/v1", func() {
		Eventually(func() (int, error) {
			resp, err := http.Get(srv.URL() + "/api/v1/ping")
			if err != nil {
				return 0, err
			}
			resp.Body.Close()
			return resp.StatusCode, nil
		}, 2*time.Second, 50*time.Millisecond).Should(Equal(http.StatusOK))
	})

	It("should answer unknown routes with 404", func() {
		resp, err := http.Get(srv.URL() + "/api/v1/nope")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("should recover from handler panics", func() {
		resp, err := http.Get(srv.URL() + "/api/v1/panic")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusInternalServerError))
	})

	It("should return nil from Start after Stop", func() {
		Expect(srv.Stop(context.Background())).To(Succeed())
		Eventually(done, 2*time.Second).Should(Receive(BeNil()))
	})

	It("should stop when the context is cancelled", func() {
		other, err := server.NewServer("127.0.0.1:0", func(*gin.RouterGroup) {})
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		stopped := make(chan error, 1)
		go func() { stopped <- other.Start(ctx) }()
		cancel()

		Eventually(stopped, 2*time.Second).Should(Receive(BeNil()))
	})
})
