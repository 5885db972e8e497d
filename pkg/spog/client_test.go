package spog_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
	"github.com/trustification/spog-ui-e2e/pkg/spog"
)

var _ = Describe("Client", func() {
	var (
		ctx    context.Context
		server *httptest.Server
		client *spog.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case "/api/v1/sbom/search":
				if r.URL.Query().Get("q") == "ubi" && r.URL.Query().Get("limit") == "10" {
					_, _ = w.Write([]byte(`{"total":1,"result":[{"id":"ubi9-container.json","name":"ubi9-container","href":"/api/v1/sbom?id=ubi9-container.json","created":"2023-10-01T00:00:00Z"}]}`))
					return
				}
				_, _ = w.Write([]byte(`{"total":0,"result":[]}`))
			case "/api/v1/advisory/search":
				_, _ = w.Write([]byte(`{"total":1,"result":[{"id":"RHSA-2023:1441","title":"RHSA-2023:1441","href":"/api/v1/advisory?id=RHSA-2023:1441"}]}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		client = spog.NewClient(server.URL, server.Client())
	})

	AfterEach(func() {
		server.Close()
	})

	It("should decode sbom search hits", func() {
		result, err := client.SearchSBOMs(ctx, "tok", "ubi", 0, 10)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Total).NotTo(BeNil())
		Expect(*result.Total).To(Equal(1))
		Expect(result.Result).To(HaveLen(1))
		Expect(result.Result[0].Name).To(Equal("ubi9-container"))
	})

	It("should return an empty result for unknown names", func() {
		result, err := client.SearchSBOMs(ctx, "tok", "non existent sbom", 0, 10)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Result).To(BeEmpty())
	})

	It("should decode advisory search hits", func() {
		result, err := client.SearchAdvisories(ctx, "tok", "RHSA", 0, 0)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Result[0].Title).To(Equal("RHSA-2023:1441"))
	})

	It("should map 401 to UnauthorizedError", func() {
		_, err := client.SearchSBOMs(ctx, "wrong", "ubi", 0, 10)

		Expect(srvErrors.IsUnauthorizedError(err)).To(BeTrue())
	})

	It("should fail on unexpected statuses", func() {
		c := spog.NewClient(server.URL+"/missing", server.Client())

		_, err := c.SearchSBOMs(ctx, "tok", "ubi", 0, 10)

		Expect(err).To(MatchError(ContainSubstring("404")))
	})
})
