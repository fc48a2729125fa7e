package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luvas-jpeg/PIM-II-Sistema-Academico/models"
)

func TestPresencaCreateStatusInvalido(t *testing.T) {
	h := NewPresencaHandler(nil, true)

	for _, status := range []string{"atrasado", "Presente", "PRESENTE", "falta"} {
		c, rec := contextoJSON(http.MethodPost, "/api/academico/presenca",
			`{"matricula_id":7,"status":"`+status+`"}`)

		err := h.Create(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "status %q deveria ser rejeitado", status)
	}
}

func TestPresencaCreateCamposObrigatorios(t *testing.T) {
	h := NewPresencaHandler(nil, true)
	c, _ := contextoJSON(http.MethodPost, "/api/academico/presenca", `{"status":"presente"}`)

	err := h.Create(c)

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

// Presença é write-once no dia: a segunda marcação responde 409 citando a
// data e nada é sobrescrito, nem com status diferente.
func TestPresencaCreateDuplicadaNoDia(t *testing.T) {
	db := bancoDeTeste(t)
	cen := criarMatricula(t, db)
	h := NewPresencaHandler(db, true)

	c, rec := contextoJSON(http.MethodPost, "/api/academico/presenca",
		fmt.Sprintf(`{"matricula_id":%d,"status":"presente"}`, cen.Matricula.ID))
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = contextoJSON(http.MethodPost, "/api/academico/presenca",
		fmt.Sprintf(`{"matricula_id":%d,"status":"ausente"}`, cen.Matricula.ID))
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	hoje := time.Now().Truncate(24 * time.Hour).Format("2006-01-02")
	assert.Contains(t, rec.Body.String(), hoje)

	var presencas []models.Presenca
	require.NoError(t, db.Find(&presencas).Error)
	require.Len(t, presencas, 1)
	assert.Equal(t, models.StatusPresente, presencas[0].Status)
}

func TestPresencaCreateMatriculaInexistente(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewPresencaHandler(db, true)

	c, rec := contextoJSON(http.MethodPost, "/api/academico/presenca",
		`{"matricula_id":999,"status":"presente"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
