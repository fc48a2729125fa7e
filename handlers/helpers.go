package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Validator adapta o go-playground/validator para o Echo (c.Validate).
type Validator struct {
	V *validator.Validate
}

func NewValidator() *Validator { return &Validator{V: validator.New()} }

func (cv *Validator) Validate(i any) error {
	if err := cv.V.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"message": "Campos obrigatórios ausentes ou inválidos."})
	}
	return nil
}

/* ---------- respostas ---------- */

func erroJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"message": msg})
}

// erroInterno loga o erro com o nome da operação e devolve 500 com corpo
// sanitizado; o detalhe só sai fora de produção.
func erroInterno(c echo.Context, op string, err error, debug bool) error {
	c.Logger().Errorf("%s: %v", op, err)
	body := map[string]any{"message": "Erro interno do servidor."}
	if debug && err != nil {
		body["error"] = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, body)
}

/* ---------- tradução de erros do banco ---------- */

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

/* ---------- diversos ---------- */

func paramUint(c echo.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// arredonda1 arredonda para uma casa decimal (half up), como o boletim exige.
func arredonda1(v float64) float64 {
	return math.Round(v*10) / 10
}

// mediaNP calcula a média simples de NP1 e NP2; nota ausente entra como zero.
func mediaNP(np1, np2 float64) float64 {
	return arredonda1((np1 + np2) / 2)
}
