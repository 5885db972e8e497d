package browser_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustification/spog-ui-e2e/pkg/browser"
	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
)

func newUIServer() *httptest.Server {
	mux := http.NewServeMux()
	page := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, "testdata/"+name)
		}
	}
	mux.HandleFunc("/signin", page("login.html"))
	mux.HandleFunc("/sboms", page("sboms.html"))
	mux.HandleFunc("/", page("landing.html"))
	return httptest.NewServer(mux)
}

var _ = Describe("Credentials", func() {
	fallback := browser.Credentials{Username: "admin", Password: "admin123456"}

	It("should keep explicit credentials", func() {
		c := browser.Credentials{Username: "alice", Password: "pw"}
		Expect(c.Or(fallback)).To(Equal(c))
	})

	It("should fall back when a field is missing", func() {
		Expect(browser.Credentials{Username: "alice"}.Or(fallback)).To(Equal(fallback))
		Expect(browser.Credentials{}.Or(fallback)).To(Equal(fallback))
	})
})

var _ = Describe("Session", Label(chromeLabel), func() {
	var srv *httptest.Server

	BeforeEach(func() {
		srv = newUIServer()
	})

	AfterEach(func() {
		if srv != nil {
			srv.Close()
		}
	})

	Describe("Login", func() {
		// Given the login form
		// When we log in with valid credentials
		// Then the form is submitted and the landing page is shown
		It("should sign in when the login form is shown", func() {
			performed, err := session.Login(srv.URL+"/signin", browser.Credentials{Username: "admin", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())
			Expect(performed).To(BeTrue())
		})

		It("should not touch the form when already signed in", func() {
			performed, err := session.Login(srv.URL+"/", browser.Credentials{Username: "admin", Password: "secret"})
			Expect(err).NotTo(HaveOccurred())
			Expect(performed).To(BeFalse())
		})

		It("should fail when the landing page never shows up", func() {
			performed, err := session.Login(srv.URL+"/signin", browser.Credentials{Username: "admin", Password: "wrong"})
			Expect(performed).To(BeTrue())
			Expect(srvErrors.IsElementNotFoundError(err)).To(BeTrue())
		})
	})

	Describe("navigation", func() {
		It("should open the SBOM list from the sidebar", func() {
			Expect(session.Visit(srv.URL + "/")).To(Succeed())
			Expect(session.ClickByText(browser.NavMenu, browser.SidebarSBOMs)).To(Succeed())
			Expect(session.ExpectHeading("SBOMs")).To(Succeed())
		})

		It("should also click with the mouse", func() {
			Expect(session.Visit(srv.URL + "/")).To(Succeed())
			Expect(session.ClickByText(browser.NavMenu, browser.SidebarSBOMs, browser.Unforced())).To(Succeed())
			Expect(session.ExpectHeading("SBOMs")).To(Succeed())
		})
	})

	Describe("filters", func() {
		BeforeEach(func() {
			Expect(session.Visit(srv.URL + "/sboms")).To(Succeed())
		})

		It("should filter by search text", func() {
			Expect(session.ApplySearchFilterText("ubi")).To(Succeed())
			Expect(session.ExistsRow("ubi9-container")).To(Succeed())

			Expect(session.ApplySearchFilterText("seedwing")).To(Succeed())
			Expect(session.ExistsRow("seedwing-java-example")).To(Succeed())

			Expect(session.ApplySearchFilterText("non existent sbom")).To(Succeed())
			Expect(session.ExpectHeading(browser.NoResults)).To(Succeed())
		})

		It("should filter by checkbox and radio", func() {
			Expect(session.ApplyCheckboxFilter("Container")).To(Succeed())
			Expect(session.ExistsRow("ubi9-container")).To(Succeed())
			Expect(session.ClickByText(browser.Button, browser.ClearAllFilters)).To(Succeed())

			Expect(session.ApplyRadioButtonFilter("This year")).To(Succeed())
			Expect(session.ExistsRow("seedwing-java-example")).To(Succeed())
			Expect(session.ClickByText(browser.Button, browser.ClearAllFilters)).To(Succeed())

			Expect(session.ApplyRadioButtonFilter("Last 30 days")).To(Succeed())
			Expect(session.ExpectHeading(browser.NoResults)).To(Succeed())
		})

		It("should fail when the row is missing", func() {
			Expect(session.ApplySearchFilterText("ubi")).To(Succeed())
			err := session.ExistsRow("seedwing-java-example")
			Expect(srvErrors.IsElementNotFoundError(err)).To(BeTrue())
		})

		It("should accept any row on the empty state", func() {
			Expect(session.ApplySearchFilterText("nothing here")).To(Succeed())
			Expect(session.ExistsRow("ubi9-container")).To(Succeed())
		})

		It("should read the first heading", func() {
			text, err := session.HeadingText()
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("SBOMs"))
		})

		It("should reload the page", func() {
			Expect(session.ApplySearchFilterText("ubi")).To(Succeed())
			Expect(session.Reload()).To(Succeed())
			Expect(session.ExistsRow("seedwing-java-example")).To(Succeed())
		})

		It("should capture the page as PNG", func() {
			png, err := session.Screenshot()
			Expect(err).NotTo(HaveOccurred())
			Expect(png).To(HavePrefix("\x89PNG"))
		})
	})
})
