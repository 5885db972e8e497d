package importer_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustification/spog-ui-e2e/internal/config"
	"github.com/trustification/spog-ui-e2e/internal/models"
	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
	"github.com/trustification/spog-ui-e2e/pkg/importer"
	"github.com/trustification/spog-ui-e2e/test"
)

func writeFixture(dir, name, content string) {
	Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
	Expect(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)).To(Succeed())
}

var _ = Describe("ReadFixtures", func() {
	It("should read files in name order and skip directories", func() {
		dir := GinkgoT().TempDir()
		writeFixture(dir, "b.json", `{}`)
		writeFixture(dir, "a.json", `{"a":1}`)
		Expect(os.Mkdir(filepath.Join(dir, "nested"), 0o755)).To(Succeed())

		fixtures, err := importer.ReadFixtures(dir, models.FixtureKindSBOM)
		Expect(err).NotTo(HaveOccurred())
		Expect(fixtures).To(HaveLen(2))
		Expect(fixtures[0].Filename).To(Equal("a.json"))
		Expect(fixtures[0].Content).To(Equal([]byte(`{"a":1}`)))
		Expect(fixtures[0].Kind).To(Equal(models.FixtureKindSBOM))
		Expect(fixtures[1].Filename).To(Equal("b.json"))
	})

	It("should return an empty list for an empty directory", func() {
		fixtures, err := importer.ReadFixtures(GinkgoT().TempDir(), models.FixtureKindAdvisory)
		Expect(err).NotTo(HaveOccurred())
		Expect(fixtures).To(BeEmpty())
	})

	It("should fail on a missing directory", func() {
		_, err := importer.ReadFixtures("/does/not/exist", models.FixtureKindAdvisory)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Importer", func() {
	var (
		ctx      context.Context
		root     string
		tokens   *test.MockTokenSource
		uploader *test.MockUploader
		imp      *importer.Importer
	)

	BeforeEach(func() {
		ctx = context.Background()
		root = GinkgoT().TempDir()
		tokens = test.NewMockTokenSource("t0k3n")
		uploader = test.NewMockUploader()
		imp = importer.NewImporter(tokens, uploader, uploader, config.Fixtures{Directory: root, Workers: 4})
	})

	Describe("ImportSBOMs", func() {
		// Given two SBOM fixtures
		// When we import them
		// Then each is uploaded once with its filename as id and the shared token
		It("should upload every SBOM with its filename as id", func() {
			writeFixture(filepath.Join(root, "sboms"), "ubi9-container.json", `{"name":"ubi9-container"}`)
			writeFixture(filepath.Join(root, "sboms"), "seedwing-java-example.json", `{"name":"seedwing-java-example"}`)

			report := imp.ImportSBOMs(ctx)

			Expect(report.OK()).To(BeTrue())
			Expect(report.Kind).To(Equal(models.FixtureKindSBOM))
			Expect(report.Succeeded()).To(HaveLen(2))
			Expect(tokens.Calls()).To(Equal(1))

			uploads := uploader.SBOMs()
			Expect(uploads).To(HaveLen(2))
			ids := []string{uploads[0].ID, uploads[1].ID}
			Expect(ids).To(ConsistOf("ubi9-container.json", "seedwing-java-example.json"))
			for _, u := range uploads {
				Expect(u.Token).To(Equal("t0k3n"))
			}
			Expect(uploader.Advisories()).To(BeEmpty())
		})

		It("should fail only the file with invalid JSON", func() {
			writeFixture(filepath.Join(root, "sboms"), "good.json", `{"name":"good"}`)
			writeFixture(filepath.Join(root, "sboms"), "broken.json", `{"name":`)

			report := imp.ImportSBOMs(ctx)

			Expect(report.OK()).To(BeFalse())
			Expect(report.Err).NotTo(HaveOccurred())
			Expect(report.Succeeded()).To(HaveLen(1))
			Expect(report.Failed()).To(HaveLen(1))
			Expect(report.Failed()[0].Fixture).To(Equal("broken.json"))
			Expect(report.Failed()[0].FailureKind).To(Equal(models.FailureParse))
			Expect(uploader.SBOMs()).To(HaveLen(1))
		})

		It("should classify rejected and unauthorized uploads", func() {
			writeFixture(filepath.Join(root, "sboms"), "rejected.json", `{}`)
			writeFixture(filepath.Join(root, "sboms"), "denied.json", `{}`)
			writeFixture(filepath.Join(root, "sboms"), "offline.json", `{}`)
			uploader.Errs["rejected.json"] = srvErrors.NewUploadRejectedError("rejected.json", 500, "500 Internal Server Error")
			uploader.Errs["denied.json"] = srvErrors.NewUnauthorizedError("http://sbom/api/v1/sbom")
			uploader.Errs["offline.json"] = errors.New("connection refused")

			report := imp.ImportSBOMs(ctx)

			kinds := map[string]models.FailureKind{}
			for _, r := range report.Failed() {
				kinds[r.Fixture] = r.FailureKind
			}
			Expect(kinds).To(Equal(map[string]models.FailureKind{
				"rejected.json": models.FailureRejected,
				"denied.json":   models.FailureUnauthorized,
				"offline.json":  models.FailureTransport,
			}))
			Expect(report.Error()).To(HaveOccurred())
		})

		// Given a token endpoint that rejects the client
		// When we import
		// Then the whole batch fails and nothing is uploaded
		It("should fail the whole batch when no token can be obtained", func() {
			writeFixture(filepath.Join(root, "sboms"), "ubi9-container.json", `{}`)
			tokens.Err = srvErrors.NewTokenError("http://sso/token", errors.New("401"))

			report := imp.ImportSBOMs(ctx)

			Expect(report.OK()).To(BeFalse())
			Expect(report.FailureKind).To(Equal(models.FailureToken))
			Expect(report.Results).To(BeEmpty())
			Expect(uploader.SBOMs()).To(BeEmpty())
		})

		It("should fail with a read error when the directory is missing", func() {
			report := imp.ImportSBOMs(ctx)

			Expect(report.FailureKind).To(Equal(models.FailureRead))
			Expect(tokens.Calls()).To(Equal(0))
		})
	})

	Describe("ImportAdvisories", func() {
		It("should post every advisory", func() {
			writeFixture(filepath.Join(root, "advisories"), "rhsa-2023_1441.json", `{"document":{"tracking":{"id":"RHSA-2023:1441"}}}`)

			report := imp.ImportAdvisories(ctx)

			Expect(report.OK()).To(BeTrue())
			Expect(uploader.Advisories()).To(HaveLen(1))
			Expect(uploader.Advisories()[0].ID).To(Equal("rhsa-2023_1441.json"))
		})
	})

	Describe("ImportAll", func() {
		It("should return one report per kind even if one batch fails", func() {
			writeFixture(filepath.Join(root, "sboms"), "ubi9-container.json", `{}`)

			reports := imp.ImportAll(ctx)

			Expect(reports).To(HaveLen(2))
			Expect(reports[0].Kind).To(Equal(models.FixtureKindAdvisory))
			Expect(reports[0].FailureKind).To(Equal(models.FailureRead))
			Expect(reports[1].Kind).To(Equal(models.FixtureKindSBOM))
			Expect(reports[1].OK()).To(BeTrue())
		})
	})

	Describe("PrintSummary", func() {
		It("should list batches and failed fixtures", func() {
			writeFixture(filepath.Join(root, "sboms"), "broken.json", `nope`)
			reports := imp.ImportAll(ctx)

			var buf bytes.Buffer
			importer.PrintSummary(&buf, reports...)

			Expect(buf.String()).To(ContainSubstring("Advisories"))
			Expect(buf.String()).To(ContainSubstring("SBOMs"))
			Expect(buf.String()).To(ContainSubstring("0/1 imported"))
			Expect(buf.String()).To(ContainSubstring("broken.json"))
		})
	})
})

var _ = Describe("Wait", func() {
	It("should pick the indexing delay from the interactive flag", func() {
		r := config.Runner{InteractiveIndexWait: 500 * time.Millisecond, IndexWait: 10 * time.Second}
		Expect(importer.IndexingDelay(true, r)).To(Equal(500 * time.Millisecond))
		Expect(importer.IndexingDelay(false, r)).To(Equal(10 * time.Second))
	})

	It("should stop sleeping when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(importer.Sleep(ctx, time.Minute)).To(MatchError(context.Canceled))
	})

	Describe("PollIndexed", func() {
		It("should return once every name is indexed", func() {
			searcher := test.NewMockSearcher()
			go func() {
				time.Sleep(300 * time.Millisecond)
				searcher.Index("ubi9-container.json")
			}()

			err := importer.PollIndexed(context.Background(), searcher, test.NewMockTokenSource("t"), []string{"ubi9-container.json"}, 5*time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(searcher.Calls()).To(BeNumerically(">", 1))
		})

		It("should give up after the max elapsed time", func() {
			searcher := test.NewMockSearcher()

			err := importer.PollIndexed(context.Background(), searcher, test.NewMockTokenSource("t"), []string{"missing.json"}, 500*time.Millisecond)
			Expect(err).To(MatchError(ContainSubstring("missing.json")))
		})

		It("should stop at once on an unauthorized answer", func() {
			searcher := test.NewMockSearcher()
			searcher.Err = srvErrors.NewUnauthorizedError("http://spog/api/v1/sbom/search")

			err := importer.PollIndexed(context.Background(), searcher, test.NewMockTokenSource("t"), []string{"a.json"}, 5*time.Second)
			Expect(srvErrors.IsUnauthorizedError(err)).To(BeTrue())
			Expect(searcher.Calls()).To(Equal(1))
		})
	})
})

var _ = Describe("Hook", func() {
	var (
		root     string
		tokens   *test.MockTokenSource
		uploader *test.MockUploader
		imp      *importer.Importer
		out      bytes.Buffer
	)

	BeforeEach(func() {
		out.Reset()
		root = GinkgoT().TempDir()
		writeFixture(filepath.Join(root, "sboms"), "ubi9-container.json", `{"name":"ubi9-container"}`)
		writeFixture(filepath.Join(root, "advisories"), "rhsa.json", `{}`)
		tokens = test.NewMockTokenSource("t")
		uploader = test.NewMockUploader()
		imp = importer.NewImporter(tokens, uploader, uploader, config.Fixtures{Directory: root, Workers: 2})
	})

	// Given a failing upload and the default best-effort policy
	// When the hook runs
	// Then it reports the failure without returning an error
	It("should be best effort by default", func() {
		uploader.Errs["rhsa.json"] = errors.New("boom")
		hook := importer.NewHook(imp, tokens, config.Runner{IndexWait: 10 * time.Millisecond}, importer.WithOutput(&out))

		reports, err := hook.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(reports).To(HaveLen(2))
		Expect(reports[0].OK()).To(BeFalse())
		Expect(out.String()).To(ContainSubstring("rhsa.json"))
	})

	It("should return the import failure when asked to", func() {
		uploader.Errs["rhsa.json"] = errors.New("boom")
		hook := importer.NewHook(imp, tokens, config.Runner{IndexWait: 10 * time.Millisecond, FailOnImportError: true}, importer.WithOutput(&out))

		_, err := hook.Run(context.Background())
		Expect(err).To(MatchError(ContainSubstring("boom")))
	})

	It("should wait the indexing delay", func() {
		hook := importer.NewHook(imp, tokens, config.Runner{IndexWait: 200 * time.Millisecond}, importer.WithOutput(&out))

		start := time.Now()
		_, err := hook.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically(">=", 200*time.Millisecond))
	})

	It("should poll the search index when enabled", func() {
		searcher := test.NewMockSearcher("ubi9-container.json")
		runner := config.Runner{IndexWait: time.Hour, PollIndex: true, IndexTimeout: 2 * time.Second}
		hook := importer.NewHook(imp, tokens, runner, importer.WithOutput(&out), importer.WithSearcher(searcher))

		_, err := hook.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(searcher.Calls()).To(BeNumerically(">=", 1))
	})
})
