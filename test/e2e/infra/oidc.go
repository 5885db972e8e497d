package infra

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenLifetime = 5 * time.Minute

// SSOServer is an in-process mock of one SSO realm. It generates an RSA key
// pair at startup and serves the realm's token and certs endpoints for the
// client-credentials grant.
type SSOServer struct {
	server     *http.Server
	privateKey *rsa.PrivateKey
	kid        string
	baseURL    string
	realm      Realm
}

// tokenResponse is the OAuth2 token response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type oauthError struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

type jwksResponse struct {
	Keys []jwkKey `json:"keys"`
}

type jwkKey struct {
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// NewSSOServer starts the mock realm on addr (":0" picks a free port).
func NewSSOServer(addr string, realm Realm) (*SSOServer, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("generating RSA key: %w", err)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}

	actualAddr := listener.Addr().String()

	s := &SSOServer{
		privateKey: privateKey,
		kid:        uuid.NewString(),
		baseURL:    fmt.Sprintf("http://%s", actualAddr),
		realm:      realm,
	}

	prefix := "/realms/" + realm.Name + "/protocol/openid-connect"
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+prefix+"/token", s.handleToken)
	mux.HandleFunc("GET "+prefix+"/certs", s.handleJWKS)

	s.server = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		zap.S().Named("sso").Infof("mock SSO realm %q started on %s", realm.Name, actualAddr)
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			zap.S().Named("sso").Errorf("mock SSO server error: %v", err)
		}
	}()

	return s, nil
}

func (s *SSOServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *SSOServer) BaseURL() string {
	return s.baseURL
}

// Issuer is the iss claim of every token, as a real realm would set it.
func (s *SSOServer) Issuer() string {
	return s.baseURL + "/realms/" + s.realm.Name
}

func (s *SSOServer) PublicKey() *rsa.PublicKey {
	return &s.privateKey.PublicKey
}

// GenerateToken signs an RS256 access token for the given client.
func (s *SSOServer) GenerateToken(clientID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    s.Issuer(),
		Subject:   clientID,
		ID:        uuid.NewString(),
		Audience:  jwt.ClaimStrings{clientID},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = s.kid

	signed, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func (s *SSOServer) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, oauthError{Error: "invalid_request"})
		return
	}

	if grant := r.PostForm.Get("grant_type"); grant != "client_credentials" {
		writeJSON(w, http.StatusBadRequest, oauthError{Error: "unsupported_grant_type", Description: grant})
		return
	}

	clientID, clientSecret := r.PostForm.Get("client_id"), r.PostForm.Get("client_secret")
	if id, secret, ok := r.BasicAuth(); ok {
		clientID, clientSecret = id, secret
	}
	if clientID != s.realm.ClientID || subtle.ConstantTimeCompare([]byte(clientSecret), []byte(s.realm.ClientSecret)) != 1 {
		writeJSON(w, http.StatusUnauthorized, oauthError{Error: "unauthorized_client", Description: "Invalid client or Invalid client credentials"})
		return
	}

	signed, err := s.GenerateToken(clientID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, oauthError{Error: "server_error", Description: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int(tokenLifetime.Seconds()),
	})
}

// handleJWKS serves the JSON Web Key Set containing the RSA public key.
func (s *SSOServer) handleJWKS(w http.ResponseWriter, _ *http.Request) {
	pub := &s.privateKey.PublicKey

	writeJSON(w, http.StatusOK, jwksResponse{
		Keys: []jwkKey{
			{
				Kty: "RSA",
				Alg: "RS256",
				Kid: s.kid,
				Use: "sig",
				N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
				E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
			},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
