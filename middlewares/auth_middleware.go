package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Chaves usadas no contexto do Echo após a verificação do token.
const (
	CtxUserID = "user_id"
	CtxTipo   = "tipo_usuario"
)

// Claims assinadas no login (ver handlers/auth_handler.go).
type Claims struct {
	Sub  uint   `json:"sub"`
	Tipo string `json:"tipo_usuario"`
	jwt.RegisteredClaims
}

func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"message": "Token de autenticação ausente."})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"message": "Cabeçalho de autenticação inválido."})
	}
	return parts[1], nil
}

// RequireAuth valida o JWT (HS256) e anexa id e tipo do usuário ao contexto.
// Token ausente, inválido ou expirado recebe sempre 401.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			token, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
				// impede troca de algoritmo
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"message": "Token inválido ou expirado."})
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"message": "Token inválido ou expirado."})
			}
			if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"message": "Token inválido ou expirado."})
			}
			c.Set(CtxUserID, claims.Sub)
			c.Set(CtxTipo, claims.Tipo)
			return next(c)
		}
	}
}

// RequireRole libera a rota apenas para os tipos informados. O tipo vem das
// claims verificadas, nunca do corpo da requisição.
func RequireRole(tipos ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(tipos))
	for _, t := range tipos {
		allowed[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tipo, _ := c.Get(CtxTipo).(string)
			if _, ok := allowed[strings.ToLower(tipo)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"message": "Acesso negado para este perfil."})
			}
			return next(c)
		}
	}
}
