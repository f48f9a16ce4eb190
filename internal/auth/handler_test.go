package auth

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskmetrics/task-incentive/internal/core/model"
)

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler  *Handler
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator("test-secret", time.Hour)
		service := NewService(mockRepo, tokenGen, bcrypt.MinCost, slog.Default())
		handler = NewHandler(service)
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should return 201 without the password hash", func() {
			body := bytes.NewBufferString(`{"username":"budi","password":"secret123"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(w.Body.String()).ToNot(gomega.ContainSubstring("PasswordHash"))

			var resp map[string]interface{}
			gomega.Expect(json.NewDecoder(w.Body).Decode(&resp)).To(gomega.Succeed())
			user := resp["user"].(map[string]interface{})
			gomega.Expect(user["Username"]).To(gomega.Equal("budi"))
			gomega.Expect(user["Role"]).To(gomega.Equal(model.RoleEmployee))
		})

		ginkgo.It("should return 409 for a taken username", func() {
			body := bytes.NewBufferString(`{"username":"sari","password":"secret123"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusConflict))
		})

		ginkgo.It("should return 400 for a malformed body", func() {
			body := bytes.NewBufferString(`{"username": not-json`)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("should return the token and role", func() {
			body := bytes.NewBufferString(`{"username":"admin","password":"correct_password"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var resp map[string]interface{}
			gomega.Expect(json.NewDecoder(w.Body).Decode(&resp)).To(gomega.Succeed())
			gomega.Expect(resp["token"]).ToNot(gomega.BeEmpty())
			gomega.Expect(resp["role"]).To(gomega.Equal(model.RoleAdmin))
		})

		ginkgo.It("should return 401 with the generic message for bad credentials", func() {
			body := bytes.NewBufferString(`{"username":"sari","password":"wrong"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))

			var resp map[string]interface{}
			gomega.Expect(json.NewDecoder(w.Body).Decode(&resp)).To(gomega.Succeed())
			gomega.Expect(resp["message"]).To(gomega.Equal("invalid username or password"))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		var protected http.Handler

		ginkgo.BeforeEach(func() {
			protected = handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := ClaimsFromContext(r.Context())
				gomega.Expect(ok).To(gomega.BeTrue())
				w.Header().Set("X-Seen-User", claims.Username)
				w.WriteHeader(http.StatusOK)
			}))
		})

		callWith := func(header string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, req)
			return w
		}

		ginkgo.It("should pass claims through for a valid token", func() {
			token, err := tokenGen.Generate(mockRepo.users["sari"])
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			w := callWith("Bearer " + token)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(w.Header().Get("X-Seen-User")).To(gomega.Equal("sari"))
		})

		ginkgo.It("should return 401 when the header is missing", func() {
			w := callWith("")

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("authorization header missing"))
		})

		ginkgo.It("should return 401 token expired for an expired token", func() {
			expiredGen := NewJWTTokenGenerator("test-secret", time.Nanosecond)
			token, err := expiredGen.Generate(mockRepo.users["sari"])
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			time.Sleep(10 * time.Millisecond)

			w := callWith("Bearer " + token)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("token expired"))
		})

		ginkgo.It("should return 403 for a tampered token", func() {
			token, err := tokenGen.Generate(mockRepo.users["sari"])
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			w := callWith("Bearer " + token + "tampered")

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("failed to authenticate token"))
		})
	})

	ginkgo.Describe("RBACAuthorization", func() {
		var (
			rbac  *RBACAuthorization
			gated http.Handler
		)

		ginkgo.BeforeEach(func() {
			rbac = NewRBACAuthorization(slog.Default())
			gated = rbac.RequireGroup(GroupAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
		})

		callAs := func(claims *Claims) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/departments", nil)
			if claims != nil {
				req = req.WithContext(ContextWithClaims(req.Context(), claims))
			}
			w := httptest.NewRecorder()
			gated.ServeHTTP(w, req)
			return w
		}

		ginkgo.It("should admit an admin", func() {
			w := callAs(&Claims{UserID: 2, Username: "admin", Role: model.RoleAdmin})

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should reject a manager from the admin group", func() {
			w := callAs(&Claims{UserID: 3, Username: "budi", Role: model.RoleManager})

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
		})

		ginkgo.It("should reject requests with no claims", func() {
			w := callAs(nil)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should admit every role to the user group", func() {
			userGated := rbac.RequireGroup(GroupUser)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			for _, role := range []string{model.RoleEmployee, model.RoleManager, model.RoleAdmin} {
				req := httptest.NewRequest(http.MethodGet, "/api/user/employees", nil)
				req = req.WithContext(ContextWithClaims(req.Context(), &Claims{UserID: 1, Role: role}))
				w := httptest.NewRecorder()
				userGated.ServeHTTP(w, req)
				gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			}
		})
	})
})
