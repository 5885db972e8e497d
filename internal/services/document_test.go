package services_test

import (
	"context"
	"database/sql"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustification/spog-ui-e2e/internal/models"
	"github.com/trustification/spog-ui-e2e/internal/services"
	"github.com/trustification/spog-ui-e2e/internal/store"
	"github.com/trustification/spog-ui-e2e/internal/store/migrations"
	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
)

var _ = Describe("DocumentService", func() {
	var (
		ctx context.Context
		db  *sql.DB
		srv *services.DocumentService
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db)).To(Succeed())

		srv = services.NewDocumentService(store.NewStore(db))
	})

	AfterEach(func() {
		db.Close()
	})

	Context("Ingest", func() {
		It("should name an SPDX SBOM after its name field", func() {
			doc, err := srv.Ingest(ctx, models.FixtureKindSBOM, "ubi9-container.json", []byte(`{"spdxVersion":"SPDX-2.2","name":"ubi9-container"}`))

			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Name).To(Equal("ubi9-container"))
		})

		It("should name a CycloneDX SBOM after its main component", func() {
			doc, err := srv.Ingest(ctx, models.FixtureKindSBOM, "seedwing.json", []byte(`{"bomFormat":"CycloneDX","metadata":{"component":{"name":"seedwing-java-example"}}}`))

			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Name).To(Equal("seedwing-java-example"))
		})

		It("should name a CSAF advisory after its tracking id", func() {
			doc, err := srv.Ingest(ctx, models.FixtureKindAdvisory, "rhsa.json", []byte(`{"document":{"title":"Important","tracking":{"id":"RHSA-2023:1441"}}}`))

			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Name).To(Equal("RHSA-2023:1441"))
		})

		It("should fall back to the id", func() {
			doc, err := srv.Ingest(ctx, models.FixtureKindSBOM, "anonymous.json", []byte(`{}`))

			Expect(err).NotTo(HaveOccurred())
			Expect(doc.Name).To(Equal("anonymous.json"))
		})

		It("should reject a body that is not a JSON object", func() {
			for _, body := range []string{`{"name":`, `[1,2]`, `"text"`} {
				_, err := srv.Ingest(ctx, models.FixtureKindSBOM, "bad.json", []byte(body))

				var invalid *services.InvalidDocumentError
				Expect(errors.As(err, &invalid)).To(BeTrue(), body)
			}
		})

		It("should keep one document per id", func() {
			body := []byte(`{"name":"ubi9-container"}`)
			_, err := srv.Ingest(ctx, models.FixtureKindSBOM, "ubi9-container.json", body)
			Expect(err).NotTo(HaveOccurred())
			_, err = srv.Ingest(ctx, models.FixtureKindSBOM, "ubi9-container.json", body)
			Expect(err).NotTo(HaveOccurred())

			res, err := srv.Search(ctx, services.SearchParams{Kind: models.FixtureKindSBOM})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Total).To(Equal(1))
		})
	})

	Context("Search", func() {
		BeforeEach(func() {
			for id, name := range map[string]string{"a.json": "ubi9-container", "b.json": "seedwing-java-example", "c.json": "ubi8-minimal"} {
				_, err := srv.Ingest(ctx, models.FixtureKindSBOM, id, []byte(`{"name":"`+name+`"}`))
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should report the unpaged total", func() {
			res, err := srv.Search(ctx, services.SearchParams{Kind: models.FixtureKindSBOM, Query: "ubi", Limit: 1})

			Expect(err).NotTo(HaveOccurred())
			Expect(res.Documents).To(HaveLen(1))
			Expect(res.Total).To(Equal(2))
		})

		It("should not mix kinds", func() {
			res, err := srv.Search(ctx, services.SearchParams{Kind: models.FixtureKindAdvisory})

			Expect(err).NotTo(HaveOccurred())
			Expect(res.Documents).To(BeEmpty())
			Expect(res.Total).To(Equal(0))
		})
	})

	Context("Get", func() {
		It("should return DocumentNotFoundError for unknown ids", func() {
			_, err := srv.Get(ctx, models.FixtureKindSBOM, "nope.json")
			Expect(srvErrors.IsDocumentNotFoundError(err)).To(BeTrue())
		})
	})
})
