package sso_test

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trustification/spog-ui-e2e/pkg/sso"
)

var _ = Describe("Verifier", func() {
	var key *rsa.PrivateKey

	sign := func(k *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(k)
		Expect(err).NotTo(HaveOccurred())
		return signed
	}

	valid := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Issuer:    "http://sso/realms/chicken",
			Subject:   "walker",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}
	}

	BeforeEach(func() {
		var err error
		key, err = rsa.GenerateKey(rand.Reader, 2048)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should accept a token signed by the realm key", func() {
		v := sso.NewVerifier(&key.PublicKey, "http://sso/realms/chicken")

		claims, err := v.Verify(sign(key, valid()))
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.Subject).To(Equal("walker"))
	})

	It("should reject a token signed by another key", func() {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		Expect(err).NotTo(HaveOccurred())

		_, err = sso.NewVerifier(&key.PublicKey, "").Verify(sign(other, valid()))
		Expect(errors.Is(err, sso.ErrInvalidToken)).To(BeTrue())
	})

	It("should reject an expired token", func() {
		claims := valid()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

		_, err := sso.NewVerifier(&key.PublicKey, "").Verify(sign(key, claims))
		Expect(errors.Is(err, sso.ErrInvalidToken)).To(BeTrue())
	})

	It("should reject a foreign issuer", func() {
		claims := valid()
		claims.Issuer = "http://elsewhere"

		_, err := sso.NewVerifier(&key.PublicKey, "http://sso/realms/chicken").Verify(sign(key, claims))
		Expect(errors.Is(err, sso.ErrInvalidToken)).To(BeTrue())
	})

	It("should reject garbage", func() {
		_, err := sso.NewVerifier(&key.PublicKey, "").Verify("not-a-jwt")
		Expect(errors.Is(err, sso.ErrInvalidToken)).To(BeTrue())
	})
})
