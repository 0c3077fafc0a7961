package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuthWithRole(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.MustGet("role")})
	})
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthWithRole(t *testing.T) {
	staffToken, err := GenerateToken(7, "staff")
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}
	passengerToken, err := GenerateToken(8, "passenger")
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}

	r := protectedRouter("staff", "admin")

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"allowed role", staffToken, http.StatusOK},
		{"wrong role", passengerToken, http.StatusForbidden},
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "not.a.jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := request(r, tt.token); w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tokenStr, err := GenerateToken(42, "admin")
	if err != nil {
		t.Fatalf("could not generate token: %v", err)
	}
	token, err := ValidateToken(tokenStr)
	if err != nil || !token.Valid {
		t.Fatalf("generated token does not validate: %v", err)
	}
}
